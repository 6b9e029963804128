package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rockartdb/rockartdb-backend/src/models"
	"github.com/rockartdb/rockartdb-backend/src/services"
)

type RockArtTypeController struct {
	service *services.RockArtTypeService
}

func NewRockArtTypeController(service *services.RockArtTypeService) *RockArtTypeController {
	return &RockArtTypeController{service: service}
}

func (c *RockArtTypeController) GetRockArtTypes(ctx *gin.Context) {
	types, err := c.service.GetAllRockArtTypes()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, types)
}

func (c *RockArtTypeController) GetRockArtType(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}
	artType, err := c.service.GetRockArtTypeByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, artType)
}

func (c *RockArtTypeController) CreateRockArtType(ctx *gin.Context) {
	var artType models.RockArtTypeModel
	if err := ctx.ShouldBindJSON(&artType); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := c.service.CreateRockArtType(&artType)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

func (c *RockArtTypeController) UpdateRockArtType(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}
	var updated models.RockArtTypeModel
	if err := ctx.ShouldBindJSON(&updated); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	artType, err := c.service.UpdateRockArtType(id, &updated)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, artType)
}

func (c *RockArtTypeController) DeleteRockArtType(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}
	if err := c.service.DeleteRockArtType(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}

type RockArtCategoryController struct {
	service *services.RockArtCategoryService
}

func NewRockArtCategoryController(service *services.RockArtCategoryService) *RockArtCategoryController {
	return &RockArtCategoryController{service: service}
}

func (c *RockArtCategoryController) GetRockArtCategories(ctx *gin.Context) {
	categories, err := c.service.GetAllRockArtCategories()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, categories)
}

func (c *RockArtCategoryController) GetRockArtCategory(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}
	category, err := c.service.GetRockArtCategoryByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, category)
}

func (c *RockArtCategoryController) CreateRockArtCategory(ctx *gin.Context) {
	var category models.RockArtCategoryModel
	if err := ctx.ShouldBindJSON(&category); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := c.service.CreateRockArtCategory(&category)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

func (c *RockArtCategoryController) UpdateRockArtCategory(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}
	var updated models.RockArtCategoryModel
	if err := ctx.ShouldBindJSON(&updated); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	category, err := c.service.UpdateRockArtCategory(id, &updated)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, category)
}

func (c *RockArtCategoryController) DeleteRockArtCategory(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}
	if err := c.service.DeleteRockArtCategory(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
