package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rockartdb/rockartdb-backend/src/controllers"
	"github.com/rockartdb/rockartdb-backend/src/middleware"
	"github.com/rockartdb/rockartdb-backend/src/services"
)

func SetupUserRoutes(router *gin.Engine, service *services.UserService) {
	controller := controllers.NewUserController(service)

	// Public routes
	router.POST("/login", controller.AuthenticateUser)
	router.POST("/register", controller.RegisterUser)

	// Protected routes
	userGroup := router.Group("/users")
	userGroup.Use(middleware.AuthMiddleware())
	{
		userGroup.GET("", controller.GetAllUsers)
		userGroup.POST("", middleware.RequireStaff(), controller.CreateUser)
		userGroup.DELETE("/:id", middleware.RequireStaff(), controller.DeleteUser)
	}
}
