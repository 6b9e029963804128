package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rockartdb/rockartdb-backend/src/controllers"
	"github.com/rockartdb/rockartdb-backend/src/middleware"
	"github.com/rockartdb/rockartdb-backend/src/services"
)

func SetupNoteRoutes(router *gin.Engine, service *services.NoteService) {
	controller := controllers.NewNoteController(service)

	// Protected routes
	noteGroup := router.Group("/api/rock-art-notes")
	noteGroup.Use(middleware.AuthMiddleware())
	{
		noteGroup.GET("", controller.GetNotes)
		noteGroup.GET("/:id", controller.GetNote)
		noteGroup.POST("", middleware.RequireStaff(), controller.CreateNote)
		noteGroup.PUT("/:id", middleware.RequireStaff(), controller.UpdateNote)
		noteGroup.PATCH("/:id", middleware.RequireStaff(), controller.UpdateNote)
		noteGroup.DELETE("/:id", middleware.RequireStaff(), controller.DeleteNote)
	}
}
