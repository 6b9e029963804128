package dtos

// GraphQLRequest is the body of the query endpoint: a query string plus
// optional variables.
type GraphQLRequest struct {
	Query     string                 `json:"query" binding:"required"`
	Variables map[string]interface{} `json:"variables"`
}

// GraphQLResponse reports execution errors alongside any partial data
// rather than aborting the whole response.
type GraphQLResponse struct {
	Data   interface{} `json:"data,omitempty"`
	Errors []string    `json:"errors,omitempty"`
}
