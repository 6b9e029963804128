package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	gql "github.com/graphql-go/graphql"
	"github.com/rockartdb/rockartdb-backend/src/dtos"
)

type GraphQLController struct {
	schema gql.Schema
}

func NewGraphQLController(schema gql.Schema) *GraphQLController {
	return &GraphQLController{schema: schema}
}

// Execute runs one query. Resolver errors come back in the errors list next
// to whatever data resolved; only an unparseable body is a 400.
func (c *GraphQLController) Execute(ctx *gin.Context) {
	var req dtos.GraphQLRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := gql.Do(gql.Params{
		Schema:         c.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		Context:        ctx.Request.Context(),
	})

	response := dtos.GraphQLResponse{Data: result.Data}
	for _, gqlErr := range result.Errors {
		response.Errors = append(response.Errors, gqlErr.Message)
	}
	ctx.JSON(http.StatusOK, response)
}
