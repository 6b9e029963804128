package services

import (
	"testing"

	"github.com/rockartdb/rockartdb-backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreatePanelDuplicateNumberWithinSite(t *testing.T) {
	database := newTestDB(t)
	service := NewPanelService(database)
	site := mustCreateSite(t, database, "41VV123")
	otherSite := mustCreateSite(t, database, "41VV456")

	_, err := service.CreatePanel(&models.PanelModel{SiteID: site.ID, PanelNumber: 1})
	require.NoError(t, err)

	// Same number within the same site conflicts
	_, err = service.CreatePanel(&models.PanelModel{SiteID: site.ID, PanelNumber: 1})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// The same number is free under a different site
	_, err = service.CreatePanel(&models.PanelModel{SiteID: otherSite.ID, PanelNumber: 1})
	assert.NoError(t, err)
}

func TestCreatePanelUnknownSite(t *testing.T) {
	database := newTestDB(t)
	service := NewPanelService(database)

	_, err := service.CreatePanel(&models.PanelModel{SiteID: 999, PanelNumber: 1})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCreatePanelValidatesBeforeWriting(t *testing.T) {
	database := newTestDB(t)
	service := NewPanelService(database)
	site := mustCreateSite(t, database, "41VV123")

	_, err := service.CreatePanel(&models.PanelModel{SiteID: site.ID, PanelNumber: 0, HeightM: -2})
	fields := requireValidationError(t, err)
	assert.Contains(t, fields, "panel_number")
	assert.Contains(t, fields, "height_m")
	assert.Zero(t, countRows(t, database, &models.PanelModel{}, site.ID))
}

func TestGetPanelsBySiteOrdered(t *testing.T) {
	database := newTestDB(t)
	service := NewPanelService(database)
	site := mustCreateSite(t, database, "41VV123")

	for _, n := range []int{5, 2, 9} {
		_, err := service.CreatePanel(&models.PanelModel{SiteID: site.ID, PanelNumber: n})
		require.NoError(t, err)
	}

	panels, err := service.GetPanelsBySite(site.ID)
	require.NoError(t, err)
	require.Len(t, panels, 3)
	assert.Equal(t, 2, panels[0].PanelNumber)
	assert.Equal(t, 5, panels[1].PanelNumber)
	assert.Equal(t, 9, panels[2].PanelNumber)
}

func TestGetPanelsBySiteUnknownSite(t *testing.T) {
	database := newTestDB(t)
	service := NewPanelService(database)

	_, err := service.GetPanelsBySite(42)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdatePanelResetsCountsToZero(t *testing.T) {
	database := newTestDB(t)
	service := NewPanelService(database)
	site := mustCreateSite(t, database, "41VV123")

	panel, err := service.CreatePanel(&models.PanelModel{SiteID: site.ID, PanelNumber: 1, ZoomorphsInitial: 7})
	require.NoError(t, err)

	updated, err := service.UpdatePanel(panel.ID, &models.PanelModel{PanelNumber: 1})
	require.NoError(t, err)
	assert.Zero(t, updated.ZoomorphsInitial)
	assert.Equal(t, site.ID, updated.SiteID)
}

func TestDeletePanel(t *testing.T) {
	database := newTestDB(t)
	service := NewPanelService(database)
	site := mustCreateSite(t, database, "41VV123")

	panel, err := service.CreatePanel(&models.PanelModel{SiteID: site.ID, PanelNumber: 1})
	require.NoError(t, err)

	require.NoError(t, service.DeletePanel(panel.ID))
	assert.ErrorIs(t, service.DeletePanel(panel.ID), gorm.ErrRecordNotFound)
}
