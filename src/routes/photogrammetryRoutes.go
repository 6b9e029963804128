package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rockartdb/rockartdb-backend/src/controllers"
	"github.com/rockartdb/rockartdb-backend/src/middleware"
	"github.com/rockartdb/rockartdb-backend/src/services"
)

func SetupPhotogrammetryRoutes(router *gin.Engine, service *services.PhotogrammetryService) {
	controller := controllers.NewPhotogrammetryController(service)

	// Protected routes
	entryGroup := router.Group("/api/photogrammetry-logs")
	entryGroup.Use(middleware.AuthMiddleware())
	{
		entryGroup.GET("", controller.GetEntries)
		entryGroup.GET("/:id", controller.GetEntry)
		entryGroup.POST("", middleware.RequireStaff(), controller.CreateEntry)
		entryGroup.PUT("/:id", middleware.RequireStaff(), controller.UpdateEntry)
		entryGroup.PATCH("/:id", middleware.RequireStaff(), controller.UpdateEntry)
		entryGroup.DELETE("/:id", middleware.RequireStaff(), controller.DeleteEntry)
	}
}
