package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rockartdb/rockartdb-backend/src/controllers"
	"github.com/rockartdb/rockartdb-backend/src/middleware"
)

// SetupWizardRoutes wires the recording wizard: the site selector home plus
// the nine per-site steps, in their fixed order. Reading a step is open to
// any authenticated user; saving one requires staff.
func SetupWizardRoutes(router *gin.Engine, controller *controllers.WizardController) {
	wizardGroup := router.Group("/sites")
	wizardGroup.Use(middleware.AuthMiddleware())
	{
		wizardGroup.GET("", controller.Home)
		wizardGroup.POST("", middleware.RequireStaff(), controller.StartProject)

		wizardGroup.GET("/:id/project", controller.GetProject)
		wizardGroup.POST("/:id/project", middleware.RequireStaff(), controller.SaveProject)

		wizardGroup.GET("/:id/rock-art", controller.GetRockArt)
		wizardGroup.POST("/:id/rock-art", middleware.RequireStaff(), controller.SaveRockArt)

		wizardGroup.GET("/:id/panel", controller.GetPanelStep)
		wizardGroup.POST("/:id/panel", middleware.RequireStaff(), controller.SavePanelStep)

		wizardGroup.GET("/:id/conditions", controller.GetConditions)
		wizardGroup.POST("/:id/conditions", middleware.RequireStaff(), controller.SaveConditions)

		wizardGroup.GET("/:id/attributes", controller.GetAttributes)
		wizardGroup.POST("/:id/attributes", middleware.RequireStaff(), controller.SaveAttributes)

		wizardGroup.GET("/:id/inventory/anthropomorphs", controller.GetAnthropomorphs)
		wizardGroup.POST("/:id/inventory/anthropomorphs", middleware.RequireStaff(), controller.SaveAnthropomorphs)

		wizardGroup.GET("/:id/inventory/continued", controller.GetContinuedInventory)
		wizardGroup.POST("/:id/inventory/continued", middleware.RequireStaff(), controller.SaveContinuedInventory)

		wizardGroup.GET("/:id/photogrammetry", controller.GetPhotogrammetryStep)
		wizardGroup.POST("/:id/photogrammetry", middleware.RequireStaff(), controller.SavePhotogrammetryStep)

		wizardGroup.GET("/:id/notes", controller.GetNotesStep)
		wizardGroup.POST("/:id/notes", middleware.RequireStaff(), controller.SaveNotesStep)
	}
}
