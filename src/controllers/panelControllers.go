package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rockartdb/rockartdb-backend/src/models"
	"github.com/rockartdb/rockartdb-backend/src/services"
)

type PanelController struct {
	service *services.PanelService
}

func NewPanelController(service *services.PanelService) *PanelController {
	return &PanelController{service: service}
}

// GetPanels lists all panels, optionally filtered with ?site_id=N.
func (c *PanelController) GetPanels(ctx *gin.Context) {
	siteID := 0
	if raw := ctx.Query("site_id"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid site_id"})
			return
		}
		siteID = parsed
	}
	panels, err := c.service.GetAllPanels(siteID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, panels)
}

func (c *PanelController) GetPanel(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}
	panel, err := c.service.GetPanelByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, panel)
}

func (c *PanelController) CreatePanel(ctx *gin.Context) {
	var panel models.PanelModel
	if err := ctx.ShouldBindJSON(&panel); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := c.service.CreatePanel(&panel)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

func (c *PanelController) UpdatePanel(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}
	var updated models.PanelModel
	if err := ctx.ShouldBindJSON(&updated); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	panel, err := c.service.UpdatePanel(id, &updated)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, panel)
}

func (c *PanelController) DeletePanel(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}
	if err := c.service.DeletePanel(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
