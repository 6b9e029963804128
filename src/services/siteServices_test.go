package services

import (
	"testing"

	"github.com/rockartdb/rockartdb-backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateSiteDuplicateSiteNumber(t *testing.T) {
	database := newTestDB(t)
	service := NewSiteService(database)

	original, err := service.CreateSite(&models.SiteModel{SiteNumber: "41VV123", ProjectName: "Lower Pecos Survey"})
	require.NoError(t, err)

	_, err = service.CreateSite(&models.SiteModel{SiteNumber: "41VV123", ProjectName: "Imposter"})
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// The original row is untouched and remains the only one
	stored, err := service.GetSiteByID(original.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lower Pecos Survey", stored.ProjectName)

	sites, err := service.GetAllSites("")
	require.NoError(t, err)
	assert.Len(t, sites, 1)
}

func TestCreateSiteRequiresSiteNumber(t *testing.T) {
	database := newTestDB(t)
	service := NewSiteService(database)

	_, err := service.CreateSite(&models.SiteModel{ProjectName: "No number"})
	fields := requireValidationError(t, err)
	assert.Contains(t, fields, "site_number")

	sites, err := service.GetAllSites("")
	require.NoError(t, err)
	assert.Empty(t, sites)
}

func TestGetAllSitesOrderedAndSearched(t *testing.T) {
	database := newTestDB(t)
	service := NewSiteService(database)

	mustCreateSite(t, database, "41VV9")
	mustCreateSite(t, database, "41VV1")
	_, err := service.CreateSite(&models.SiteModel{SiteNumber: "41VV5", ProjectName: "Eagle Nest Canyon"})
	require.NoError(t, err)

	sites, err := service.GetAllSites("")
	require.NoError(t, err)
	require.Len(t, sites, 3)
	assert.Equal(t, "41VV1", sites[0].SiteNumber)
	assert.Equal(t, "41VV5", sites[1].SiteNumber)
	assert.Equal(t, "41VV9", sites[2].SiteNumber)

	matched, err := service.GetAllSites("Eagle Nest")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "41VV5", matched[0].SiteNumber)
}

func TestUpdateSiteOverwritesClearedFields(t *testing.T) {
	database := newTestDB(t)
	service := NewSiteService(database)

	site, err := service.CreateSite(&models.SiteModel{SiteNumber: "41VV10", Recorders: "A. Recorder"})
	require.NoError(t, err)

	updated, err := service.UpdateSite(site.ID, &models.SiteModel{SiteNumber: "41VV10"})
	require.NoError(t, err)
	assert.Empty(t, updated.Recorders)
	assert.Equal(t, site.ID, updated.ID)
}

func TestUpdateSiteUnknownID(t *testing.T) {
	database := newTestDB(t)
	service := NewSiteService(database)

	_, err := service.UpdateSite(999, &models.SiteModel{SiteNumber: "41VV1"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteSiteCascadesToEveryTab(t *testing.T) {
	database := newTestDB(t)
	service := NewSiteService(database)

	site := mustCreateSite(t, database, "41VV100")
	other := mustCreateSite(t, database, "41VV200")

	// Panels, notes and a singleton tab row for both sites
	panelService := NewPanelService(database)
	for _, s := range []*models.SiteModel{site, other} {
		_, err := panelService.CreatePanel(&models.PanelModel{SiteID: s.ID, PanelNumber: 1})
		require.NoError(t, err)
		_, err = NewNoteService(database).CreateNote(&models.RockArtNoteModel{SiteID: s.ID, Text: "note"})
		require.NoError(t, err)
		_, err = NewSingletonTabService[models.RockArtConditionModel](database, nil).EnsureForSite(s.ID)
		require.NoError(t, err)
	}

	// Rock art info with vocabulary join rows
	artType, err := NewRockArtTypeService(database).CreateRockArtType(&models.RockArtTypeModel{Name: "Pictographs"})
	require.NoError(t, err)
	infoService := NewRockArtInfoService(database)
	_, err = infoService.CreateRockArtInfo(&models.RockArtInfoModel{
		SiteID:       site.ID,
		RockArtTypes: []models.RockArtTypeModel{{ID: artType.ID}},
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteSite(site.ID))

	_, err = service.GetSiteByID(site.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.Zero(t, countRows(t, database, &models.PanelModel{}, site.ID))
	assert.Zero(t, countRows(t, database, &models.RockArtNoteModel{}, site.ID))
	assert.Zero(t, countRows(t, database, &models.RockArtConditionModel{}, site.ID))
	assert.Zero(t, countRows(t, database, &models.RockArtInfoModel{}, site.ID))

	var joinRows int64
	require.NoError(t, database.Table("rock_art_info_types").Count(&joinRows).Error)
	assert.Zero(t, joinRows)

	// The other site keeps everything
	assert.EqualValues(t, 1, countRows(t, database, &models.PanelModel{}, other.ID))
	assert.EqualValues(t, 1, countRows(t, database, &models.RockArtNoteModel{}, other.ID))
	assert.EqualValues(t, 1, countRows(t, database, &models.RockArtConditionModel{}, other.ID))

	// Vocabulary itself survives the cascade
	types, err := NewRockArtTypeService(database).GetAllRockArtTypes()
	require.NoError(t, err)
	assert.Len(t, types, 1)
}

func TestGetSiteFullOrdersPanels(t *testing.T) {
	database := newTestDB(t)
	service := NewSiteService(database)
	panelService := NewPanelService(database)

	site := mustCreateSite(t, database, "41VV300")
	for _, n := range []int{3, 1, 2} {
		_, err := panelService.CreatePanel(&models.PanelModel{SiteID: site.ID, PanelNumber: n})
		require.NoError(t, err)
	}

	full, err := service.GetSiteFull(site.ID)
	require.NoError(t, err)
	require.Len(t, full.Panels, 3)
	assert.Equal(t, 1, full.Panels[0].PanelNumber)
	assert.Equal(t, 2, full.Panels[1].PanelNumber)
	assert.Equal(t, 3, full.Panels[2].PanelNumber)
}

func TestGetSiteSummariesCounts(t *testing.T) {
	database := newTestDB(t)
	service := NewSiteService(database)
	panelService := NewPanelService(database)
	noteService := NewNoteService(database)

	site := mustCreateSite(t, database, "41VV400")
	mustCreateSite(t, database, "41VV401")

	for _, n := range []int{1, 2} {
		_, err := panelService.CreatePanel(&models.PanelModel{SiteID: site.ID, PanelNumber: n})
		require.NoError(t, err)
	}
	_, err := noteService.CreateNote(&models.RockArtNoteModel{SiteID: site.ID, Text: "shelter faces south"})
	require.NoError(t, err)

	summaries, err := service.GetSiteSummaries()
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "41VV400", summaries[0].SiteNumber)
	assert.Equal(t, 2, summaries[0].PanelCount)
	assert.Equal(t, 1, summaries[0].NoteCount)
	assert.Zero(t, summaries[1].PanelCount)
}
