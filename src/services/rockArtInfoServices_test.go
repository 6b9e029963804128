package services

import (
	"testing"

	"github.com/rockartdb/rockartdb-backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestEnsureRockArtInfoCreatesWithDefaults(t *testing.T) {
	database := newTestDB(t)
	service := NewRockArtInfoService(database)
	site := mustCreateSite(t, database, "41VV123")

	info, err := service.EnsureForSite(site.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LocationUnknown, info.LocationType)
	assert.Equal(t, models.TechniqueNone, info.EngravingTechnique)
	assert.Equal(t, models.PaintingNone, info.PaintingTechnique)

	again, err := service.EnsureForSite(site.ID)
	require.NoError(t, err)
	assert.Equal(t, info.ID, again.ID)
}

func TestCreateRockArtInfoResolvesVocabulary(t *testing.T) {
	database := newTestDB(t)
	service := NewRockArtInfoService(database)
	site := mustCreateSite(t, database, "41VV123")

	artType, err := NewRockArtTypeService(database).CreateRockArtType(&models.RockArtTypeModel{Name: "Pictographs"})
	require.NoError(t, err)
	category, err := NewRockArtCategoryService(database).CreateRockArtCategory(&models.RockArtCategoryModel{Name: "Pecos River Style"})
	require.NoError(t, err)

	info, err := service.CreateRockArtInfo(&models.RockArtInfoModel{
		SiteID:            site.ID,
		RockArtTypes:      []models.RockArtTypeModel{{ID: artType.ID}},
		RockArtCategories: []models.RockArtCategoryModel{{ID: category.ID}},
	})
	require.NoError(t, err)
	require.Len(t, info.RockArtTypes, 1)
	assert.Equal(t, "Pictographs", info.RockArtTypes[0].Name)
	require.Len(t, info.RockArtCategories, 1)
	assert.Equal(t, "Pecos River Style", info.RockArtCategories[0].Name)
}

func TestCreateRockArtInfoRejectsUnknownVocabulary(t *testing.T) {
	database := newTestDB(t)
	service := NewRockArtInfoService(database)
	site := mustCreateSite(t, database, "41VV123")

	_, err := service.CreateRockArtInfo(&models.RockArtInfoModel{
		SiteID:       site.ID,
		RockArtTypes: []models.RockArtTypeModel{{ID: 999}},
	})
	fields := requireValidationError(t, err)
	assert.Contains(t, fields, "rock_art_types")

	// The rejected submission wrote nothing
	assert.Zero(t, countRows(t, database, &models.RockArtInfoModel{}, site.ID))
}

func TestUpdateRockArtInfoReplacesVocabularyWholesale(t *testing.T) {
	database := newTestDB(t)
	service := NewRockArtInfoService(database)
	typeService := NewRockArtTypeService(database)
	site := mustCreateSite(t, database, "41VV123")

	first, err := typeService.CreateRockArtType(&models.RockArtTypeModel{Name: "Pictographs"})
	require.NoError(t, err)
	second, err := typeService.CreateRockArtType(&models.RockArtTypeModel{Name: "Grooves"})
	require.NoError(t, err)

	info, err := service.CreateRockArtInfo(&models.RockArtInfoModel{
		SiteID:       site.ID,
		RockArtTypes: []models.RockArtTypeModel{{ID: first.ID}},
	})
	require.NoError(t, err)

	updated, err := service.UpdateRockArtInfo(info.ID, &models.RockArtInfoModel{
		RockArtTypes: []models.RockArtTypeModel{{ID: second.ID}},
	})
	require.NoError(t, err)
	require.Len(t, updated.RockArtTypes, 1)
	assert.Equal(t, "Grooves", updated.RockArtTypes[0].Name)
}

func TestUpdateRockArtInfoCanClearVocabulary(t *testing.T) {
	database := newTestDB(t)
	service := NewRockArtInfoService(database)
	site := mustCreateSite(t, database, "41VV123")

	artType, err := NewRockArtTypeService(database).CreateRockArtType(&models.RockArtTypeModel{Name: "Pictographs"})
	require.NoError(t, err)

	info, err := service.CreateRockArtInfo(&models.RockArtInfoModel{
		SiteID:       site.ID,
		RockArtTypes: []models.RockArtTypeModel{{ID: artType.ID}},
	})
	require.NoError(t, err)

	updated, err := service.UpdateRockArtInfo(info.ID, &models.RockArtInfoModel{})
	require.NoError(t, err)
	assert.Empty(t, updated.RockArtTypes)
}

func TestSecondRockArtInfoForSiteConflicts(t *testing.T) {
	database := newTestDB(t)
	service := NewRockArtInfoService(database)
	site := mustCreateSite(t, database, "41VV123")

	_, err := service.CreateRockArtInfo(&models.RockArtInfoModel{SiteID: site.ID})
	require.NoError(t, err)

	_, err = service.CreateRockArtInfo(&models.RockArtInfoModel{SiteID: site.ID})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestDeleteRockArtInfoClearsJoinRows(t *testing.T) {
	database := newTestDB(t)
	service := NewRockArtInfoService(database)
	site := mustCreateSite(t, database, "41VV123")

	artType, err := NewRockArtTypeService(database).CreateRockArtType(&models.RockArtTypeModel{Name: "Pictographs"})
	require.NoError(t, err)
	info, err := service.CreateRockArtInfo(&models.RockArtInfoModel{
		SiteID:       site.ID,
		RockArtTypes: []models.RockArtTypeModel{{ID: artType.ID}},
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteRockArtInfo(info.ID))

	var joinRows int64
	require.NoError(t, database.Table("rock_art_info_types").Count(&joinRows).Error)
	assert.Zero(t, joinRows)
}
