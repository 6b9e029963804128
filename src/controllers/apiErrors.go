package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rockartdb/rockartdb-backend/src/forms"
	"gorm.io/gorm"
)

// respondError maps service failures onto the API's error contract:
// validation failures carry a field map, missing records are 404, duplicate
// keys are 409, everything else is a 500. Services fail fast and never
// retry; the mapping happens only here at the boundary.
func respondError(ctx *gin.Context, err error) {
	var validationErr *forms.ValidationError
	switch {
	case errors.As(err, &validationErr):
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": validationErr.Fields})
	case errors.Is(err, gorm.ErrRecordNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
	case errors.Is(err, gorm.ErrDuplicatedKey):
		ctx.JSON(http.StatusConflict, gin.H{"error": "Duplicate value for a unique field"})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
