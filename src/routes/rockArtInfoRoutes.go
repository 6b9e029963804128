package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rockartdb/rockartdb-backend/src/controllers"
	"github.com/rockartdb/rockartdb-backend/src/middleware"
	"github.com/rockartdb/rockartdb-backend/src/services"
)

func SetupRockArtInfoRoutes(router *gin.Engine, service *services.RockArtInfoService) {
	controller := controllers.NewRockArtInfoController(service)

	// Protected routes
	infoGroup := router.Group("/api/rock-art-info")
	infoGroup.Use(middleware.AuthMiddleware())
	{
		infoGroup.GET("", controller.GetRockArtInfoRecords)
		infoGroup.GET("/:id", controller.GetRockArtInfo)
		infoGroup.POST("", middleware.RequireStaff(), controller.CreateRockArtInfo)
		infoGroup.PUT("/:id", middleware.RequireStaff(), controller.UpdateRockArtInfo)
		infoGroup.PATCH("/:id", middleware.RequireStaff(), controller.UpdateRockArtInfo)
		infoGroup.DELETE("/:id", middleware.RequireStaff(), controller.DeleteRockArtInfo)
	}
}
