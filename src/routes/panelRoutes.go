package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rockartdb/rockartdb-backend/src/controllers"
	"github.com/rockartdb/rockartdb-backend/src/middleware"
	"github.com/rockartdb/rockartdb-backend/src/services"
)

func SetupPanelRoutes(router *gin.Engine, service *services.PanelService) {
	controller := controllers.NewPanelController(service)

	// Protected routes
	panelGroup := router.Group("/api/panels")
	panelGroup.Use(middleware.AuthMiddleware())
	{
		panelGroup.GET("", controller.GetPanels)
		panelGroup.GET("/:id", controller.GetPanel)
		panelGroup.POST("", middleware.RequireStaff(), controller.CreatePanel)
		panelGroup.PUT("/:id", middleware.RequireStaff(), controller.UpdatePanel)
		panelGroup.PATCH("/:id", middleware.RequireStaff(), controller.UpdatePanel)
		panelGroup.DELETE("/:id", middleware.RequireStaff(), controller.DeletePanel)
	}
}
