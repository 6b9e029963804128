package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rockartdb/rockartdb-backend/src/models"
	"github.com/rockartdb/rockartdb-backend/src/services"
)

type PhotogrammetryController struct {
	service *services.PhotogrammetryService
}

func NewPhotogrammetryController(service *services.PhotogrammetryService) *PhotogrammetryController {
	return &PhotogrammetryController{service: service}
}

// GetEntries lists all photogrammetry log entries, optionally filtered with
// ?site_id=N.
func (c *PhotogrammetryController) GetEntries(ctx *gin.Context) {
	siteID := 0
	if raw := ctx.Query("site_id"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid site_id"})
			return
		}
		siteID = parsed
	}
	entries, err := c.service.GetAllEntries(siteID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, entries)
}

func (c *PhotogrammetryController) GetEntry(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}
	entry, err := c.service.GetEntryByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, entry)
}

func (c *PhotogrammetryController) CreateEntry(ctx *gin.Context) {
	var entry models.PhotogrammetryLogEntryModel
	if err := ctx.ShouldBindJSON(&entry); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := c.service.CreateEntry(&entry)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

func (c *PhotogrammetryController) UpdateEntry(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}
	var updated models.PhotogrammetryLogEntryModel
	if err := ctx.ShouldBindJSON(&updated); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry, err := c.service.UpdateEntry(id, &updated)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, entry)
}

func (c *PhotogrammetryController) DeleteEntry(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}
	if err := c.service.DeleteEntry(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
