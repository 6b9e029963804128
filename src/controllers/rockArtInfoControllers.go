package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rockartdb/rockartdb-backend/src/models"
	"github.com/rockartdb/rockartdb-backend/src/services"
)

type RockArtInfoController struct {
	service *services.RockArtInfoService
}

func NewRockArtInfoController(service *services.RockArtInfoService) *RockArtInfoController {
	return &RockArtInfoController{service: service}
}

// GetRockArtInfoRecords lists all rock art info records, optionally filtered
// with ?site_id=N.
func (c *RockArtInfoController) GetRockArtInfoRecords(ctx *gin.Context) {
	siteID := 0
	if raw := ctx.Query("site_id"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid site_id"})
			return
		}
		siteID = parsed
	}
	records, err := c.service.GetAllRockArtInfo(siteID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, records)
}

func (c *RockArtInfoController) GetRockArtInfo(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}
	info, err := c.service.GetRockArtInfoByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, info)
}

func (c *RockArtInfoController) CreateRockArtInfo(ctx *gin.Context) {
	var info models.RockArtInfoModel
	if err := ctx.ShouldBindJSON(&info); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := c.service.CreateRockArtInfo(&info)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

func (c *RockArtInfoController) UpdateRockArtInfo(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}
	var updated models.RockArtInfoModel
	if err := ctx.ShouldBindJSON(&updated); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	info, err := c.service.UpdateRockArtInfo(id, &updated)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, info)
}

func (c *RockArtInfoController) DeleteRockArtInfo(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}
	if err := c.service.DeleteRockArtInfo(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
