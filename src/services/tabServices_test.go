package services

import (
	"testing"

	"github.com/rockartdb/rockartdb-backend/src/forms"
	"github.com/rockartdb/rockartdb-backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestEnsureForSiteIsIdempotent(t *testing.T) {
	database := newTestDB(t)
	service := NewSingletonTabService[models.RockArtConditionModel](database, nil)
	site := mustCreateSite(t, database, "41VV123")

	first, err := service.EnsureForSite(site.ID)
	require.NoError(t, err)
	second, err := service.EnsureForSite(site.ID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.EqualValues(t, 1, countRows(t, database, &models.RockArtConditionModel{}, site.ID))
}

func TestEnsureForSiteUnknownSite(t *testing.T) {
	database := newTestDB(t)
	service := NewSingletonTabService[models.RockArtConditionModel](database, nil)

	_, err := service.EnsureForSite(999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestTabCreateSecondRowForSiteConflicts(t *testing.T) {
	database := newTestDB(t)
	service := NewSingletonTabService[models.RockArtAttributesModel](database, nil)
	site := mustCreateSite(t, database, "41VV123")

	_, err := service.Create(&models.RockArtAttributesModel{SiteID: site.ID})
	require.NoError(t, err)

	_, err = service.Create(&models.RockArtAttributesModel{SiteID: site.ID})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestTabCreateRunsValidation(t *testing.T) {
	database := newTestDB(t)
	service := NewSingletonTabService[models.AnthropomorphInventoryModel](database, forms.ValidateAnthropomorphInventory)
	site := mustCreateSite(t, database, "41VV123")

	_, err := service.Create(&models.AnthropomorphInventoryModel{SiteID: site.ID, Mask: -1})
	fields := requireValidationError(t, err)
	assert.Contains(t, fields, "mask")
	assert.Zero(t, countRows(t, database, &models.AnthropomorphInventoryModel{}, site.ID))
}

func TestTabUpdateOverwritesCountersWithZero(t *testing.T) {
	database := newTestDB(t)
	service := NewSingletonTabService[models.AnthropomorphInventoryModel](database, forms.ValidateAnthropomorphInventory)
	site := mustCreateSite(t, database, "41VV123")

	record, err := service.Create(&models.AnthropomorphInventoryModel{SiteID: site.ID, Frontal: 5, Headdress: 2})
	require.NoError(t, err)

	updated, err := service.Update(record.ID, &models.AnthropomorphInventoryModel{Profile: 1})
	require.NoError(t, err)
	assert.Zero(t, updated.Frontal)
	assert.Zero(t, updated.Headdress)
	assert.Equal(t, 1, updated.Profile)
	assert.Equal(t, site.ID, updated.SiteID)
}

func TestTabGetAllFiltersBySite(t *testing.T) {
	database := newTestDB(t)
	service := NewSingletonTabService[models.ZoomorphInventoryModel](database, forms.ValidateZoomorphInventory)
	site := mustCreateSite(t, database, "41VV123")
	other := mustCreateSite(t, database, "41VV456")

	_, err := service.Create(&models.ZoomorphInventoryModel{SiteID: site.ID, Feline: 1})
	require.NoError(t, err)
	_, err = service.Create(&models.ZoomorphInventoryModel{SiteID: other.ID, Avian: 2})
	require.NoError(t, err)

	all, err := service.GetAll(0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := service.GetAll(other.ID)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, 2, filtered[0].Avian)
}

func TestTabDeleteUnknownID(t *testing.T) {
	database := newTestDB(t)
	service := NewSingletonTabService[models.EnigmaticInventoryModel](database, forms.ValidateEnigmaticInventory)

	assert.ErrorIs(t, service.Delete(12345), gorm.ErrRecordNotFound)
}
