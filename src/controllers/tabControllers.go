package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rockartdb/rockartdb-backend/src/services"
)

// TabController exposes one singleton tab collection over HTTP. It is
// instantiated once per tab entity, mirroring the service underneath.
type TabController[T any, PT services.SiteTab[T]] struct {
	service *services.SingletonTabService[T, PT]
}

func NewTabController[T any, PT services.SiteTab[T]](service *services.SingletonTabService[T, PT]) *TabController[T, PT] {
	return &TabController[T, PT]{service: service}
}

// List returns every record, optionally filtered with ?site_id=N.
func (c *TabController[T, PT]) List(ctx *gin.Context) {
	siteID := 0
	if raw := ctx.Query("site_id"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid site_id"})
			return
		}
		siteID = parsed
	}
	records, err := c.service.GetAll(siteID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, records)
}

func (c *TabController[T, PT]) Get(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}
	record, err := c.service.GetByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, record)
}

func (c *TabController[T, PT]) Create(ctx *gin.Context) {
	var record T
	if err := ctx.ShouldBindJSON(&record); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := c.service.Create(PT(&record))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

func (c *TabController[T, PT]) Update(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}
	var updated T
	if err := ctx.ShouldBindJSON(&updated); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	record, err := c.service.Update(id, PT(&updated))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, record)
}

func (c *TabController[T, PT]) Delete(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}
	if err := c.service.Delete(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
