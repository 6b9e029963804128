package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rockartdb/rockartdb-backend/src/controllers"
	"github.com/rockartdb/rockartdb-backend/src/middleware"
	"github.com/rockartdb/rockartdb-backend/src/services"
)

func SetupRockArtTypeRoutes(router *gin.Engine, service *services.RockArtTypeService) {
	controller := controllers.NewRockArtTypeController(service)

	// Protected routes
	typeGroup := router.Group("/api/rock-art-types")
	typeGroup.Use(middleware.AuthMiddleware())
	{
		typeGroup.GET("", controller.GetRockArtTypes)
		typeGroup.GET("/:id", controller.GetRockArtType)
		typeGroup.POST("", middleware.RequireStaff(), controller.CreateRockArtType)
		typeGroup.PUT("/:id", middleware.RequireStaff(), controller.UpdateRockArtType)
		typeGroup.PATCH("/:id", middleware.RequireStaff(), controller.UpdateRockArtType)
		typeGroup.DELETE("/:id", middleware.RequireStaff(), controller.DeleteRockArtType)
	}
}

func SetupRockArtCategoryRoutes(router *gin.Engine, service *services.RockArtCategoryService) {
	controller := controllers.NewRockArtCategoryController(service)

	// Protected routes
	categoryGroup := router.Group("/api/rock-art-categories")
	categoryGroup.Use(middleware.AuthMiddleware())
	{
		categoryGroup.GET("", controller.GetRockArtCategories)
		categoryGroup.GET("/:id", controller.GetRockArtCategory)
		categoryGroup.POST("", middleware.RequireStaff(), controller.CreateRockArtCategory)
		categoryGroup.PUT("/:id", middleware.RequireStaff(), controller.UpdateRockArtCategory)
		categoryGroup.PATCH("/:id", middleware.RequireStaff(), controller.UpdateRockArtCategory)
		categoryGroup.DELETE("/:id", middleware.RequireStaff(), controller.DeleteRockArtCategory)
	}
}
