package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/rockartdb/rockartdb-backend/src/db"
	"github.com/rockartdb/rockartdb-backend/src/forms"
	"github.com/rockartdb/rockartdb-backend/src/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a fresh in-memory database per test, migrated to the full
// schema. TranslateError is on so conflict tests see gorm.ErrDuplicatedKey
// exactly as the postgres deployment would.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(database))
	return database
}

func mustCreateSite(t *testing.T, database *gorm.DB, siteNumber string) *models.SiteModel {
	t.Helper()
	site, err := NewSiteService(database).CreateSite(&models.SiteModel{SiteNumber: siteNumber})
	require.NoError(t, err)
	return site
}

func countRows(t *testing.T, database *gorm.DB, model interface{}, siteID int) int64 {
	t.Helper()
	var count int64
	require.NoError(t, database.Model(model).Where("site_id = ?", siteID).Count(&count).Error)
	return count
}

func requireValidationError(t *testing.T, err error) forms.Errors {
	t.Helper()
	require.Error(t, err)
	verr, ok := err.(*forms.ValidationError)
	require.True(t, ok, "expected a *forms.ValidationError, got %T: %v", err, err)
	return verr.Fields
}
