package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rockartdb/rockartdb-backend/src/controllers"
	"github.com/rockartdb/rockartdb-backend/src/middleware"
	"github.com/rockartdb/rockartdb-backend/src/services"
)

func SetupSiteRoutes(router *gin.Engine, service *services.SiteService, exportService *services.ExportService) {
	controller := controllers.NewSiteController(service, exportService)

	// Protected routes
	siteGroup := router.Group("/api/sites")
	siteGroup.Use(middleware.AuthMiddleware())
	{
		// CRUD
		siteGroup.GET("", controller.GetSites)
		siteGroup.GET("/:id", controller.GetSite)
		siteGroup.POST("", middleware.RequireStaff(), controller.CreateSite)
		siteGroup.PUT("/:id", middleware.RequireStaff(), controller.UpdateSite)
		siteGroup.PATCH("/:id", middleware.RequireStaff(), controller.UpdateSite)
		siteGroup.DELETE("/:id", middleware.RequireStaff(), controller.DeleteSite)

		// Aggregate read and workbook export
		siteGroup.GET("/:id/full", controller.GetSiteFull)
		siteGroup.GET("/:id/export", controller.ExportSite)
	}
}
