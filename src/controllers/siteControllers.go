package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rockartdb/rockartdb-backend/src/models"
	"github.com/rockartdb/rockartdb-backend/src/services"
)

type SiteController struct {
	service       *services.SiteService
	exportService *services.ExportService
}

func NewSiteController(service *services.SiteService, exportService *services.ExportService) *SiteController {
	return &SiteController{service: service, exportService: exportService}
}

// GetSites handles GET requests to list sites, optionally filtered by a
// search term over site number and project name
func (c *SiteController) GetSites(ctx *gin.Context) {
	sites, err := c.service.GetAllSites(ctx.Query("search"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, sites)
}

// GetSite handles GET requests to retrieve one site record
func (c *SiteController) GetSite(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}
	site, err := c.service.GetSiteByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, site)
}

// GetSiteFull handles GET requests for the full aggregate: the site plus
// every tab record hanging off it
func (c *SiteController) GetSiteFull(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}
	site, err := c.service.GetSiteFull(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, site)
}

// CreateSite handles POST requests to create a new site record
func (c *SiteController) CreateSite(ctx *gin.Context) {
	var site models.SiteModel
	if err := ctx.ShouldBindJSON(&site); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	createdSite, err := c.service.CreateSite(&site)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, createdSite)
}

// UpdateSite handles PUT requests to update an existing site record
func (c *SiteController) UpdateSite(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var updated models.SiteModel
	if err := ctx.ShouldBindJSON(&updated); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updatedSite, err := c.service.UpdateSite(id, &updated)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updatedSite)
}

// DeleteSite handles DELETE requests; the whole aggregate goes with the site
func (c *SiteController) DeleteSite(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}
	if err := c.service.DeleteSite(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}

// ExportSite handles GET requests for the site's survey workbook
func (c *SiteController) ExportSite(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}
	site, err := c.service.GetSiteByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	workbook, err := c.exportService.ExportSiteWorkbook(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	defer workbook.Close()

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", services.WorkbookFilename(site)))
	ctx.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := workbook.Write(ctx.Writer); err != nil {
		// headers are already out; nothing useful left to send
		_ = ctx.Error(err)
	}
}
