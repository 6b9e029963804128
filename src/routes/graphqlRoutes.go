package routes

import (
	"github.com/gin-gonic/gin"
	gql "github.com/graphql-go/graphql"
	"github.com/rockartdb/rockartdb-backend/src/controllers"
	"github.com/rockartdb/rockartdb-backend/src/middleware"
)

func SetupGraphQLRoutes(router *gin.Engine, schema gql.Schema) {
	controller := controllers.NewGraphQLController(schema)

	// Read-only query surface; any authenticated user may query
	graphqlGroup := router.Group("/api/graphql")
	graphqlGroup.Use(middleware.AuthMiddleware())
	{
		graphqlGroup.POST("", controller.Execute)
	}
}
