package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rockartdb/rockartdb-backend/src/controllers"
	"github.com/rockartdb/rockartdb-backend/src/middleware"
	"github.com/rockartdb/rockartdb-backend/src/services"
)

// SetupTabRoutes wires one singleton tab collection under the given path.
// It is instantiated once per tab entity, like the service and controller.
func SetupTabRoutes[T any, PT services.SiteTab[T]](router *gin.Engine, path string, service *services.SingletonTabService[T, PT]) {
	controller := controllers.NewTabController(service)

	// Protected routes
	tabGroup := router.Group(path)
	tabGroup.Use(middleware.AuthMiddleware())
	{
		tabGroup.GET("", controller.List)
		tabGroup.GET("/:id", controller.Get)
		tabGroup.POST("", middleware.RequireStaff(), controller.Create)
		tabGroup.PUT("/:id", middleware.RequireStaff(), controller.Update)
		tabGroup.PATCH("/:id", middleware.RequireStaff(), controller.Update)
		tabGroup.DELETE("/:id", middleware.RequireStaff(), controller.Delete)
	}
}
