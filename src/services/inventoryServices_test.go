package services

import (
	"testing"

	"github.com/rockartdb/rockartdb-backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestEnsureContinuedForSiteCreatesAllThreeRows(t *testing.T) {
	database := newTestDB(t)
	service := NewInventoryService(database)
	site := mustCreateSite(t, database, "41VV123")

	first, err := service.EnsureContinuedForSite(site.ID)
	require.NoError(t, err)
	require.NotNil(t, first.Enigmatic)
	require.NotNil(t, first.Zoomorph)
	require.NotNil(t, first.General)

	second, err := service.EnsureContinuedForSite(site.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Enigmatic.ID, second.Enigmatic.ID)

	assert.EqualValues(t, 1, countRows(t, database, &models.EnigmaticInventoryModel{}, site.ID))
	assert.EqualValues(t, 1, countRows(t, database, &models.ZoomorphInventoryModel{}, site.ID))
	assert.EqualValues(t, 1, countRows(t, database, &models.GeneralIconographicAttributesModel{}, site.ID))
}

func TestEnsureContinuedForSiteUnknownSite(t *testing.T) {
	database := newTestDB(t)
	service := NewInventoryService(database)

	_, err := service.EnsureContinuedForSite(999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateContinuedWritesAllThreeTables(t *testing.T) {
	database := newTestDB(t)
	service := NewInventoryService(database)
	site := mustCreateSite(t, database, "41VV123")

	result, err := service.UpdateContinued(site.ID, &ContinuedInventory{
		Enigmatic: &models.EnigmaticInventoryModel{Spiral: 3},
		Zoomorph:  &models.ZoomorphInventoryModel{AntleredDeer: 2},
		General:   &models.GeneralIconographicAttributesModel{SpeechBreath: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Enigmatic.Spiral)
	assert.Equal(t, 2, result.Zoomorph.AntleredDeer)
	assert.Equal(t, 1, result.General.SpeechBreath)
}

func TestUpdateContinuedAllOrNothing(t *testing.T) {
	database := newTestDB(t)
	service := NewInventoryService(database)
	site := mustCreateSite(t, database, "41VV123")

	_, err := service.UpdateContinued(site.ID, &ContinuedInventory{
		Zoomorph: &models.ZoomorphInventoryModel{Feline: 4},
	})
	require.NoError(t, err)

	// One invalid sub-form rejects the whole submission
	_, err = service.UpdateContinued(site.ID, &ContinuedInventory{
		Enigmatic: &models.EnigmaticInventoryModel{Grid: -1},
		Zoomorph:  &models.ZoomorphInventoryModel{Feline: 9},
	})
	fields := requireValidationError(t, err)
	assert.Contains(t, fields, "enigmatic.grid")

	// The valid zoomorph part of the rejected submission was not applied
	current, err := service.EnsureContinuedForSite(site.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, current.Zoomorph.Feline)
	assert.Zero(t, current.Enigmatic.Grid)
}

func TestUpdateContinuedLeavesOmittedTablesAlone(t *testing.T) {
	database := newTestDB(t)
	service := NewInventoryService(database)
	site := mustCreateSite(t, database, "41VV123")

	_, err := service.UpdateContinued(site.ID, &ContinuedInventory{
		General: &models.GeneralIconographicAttributesModel{PeyotismMotif: 2},
	})
	require.NoError(t, err)

	_, err = service.UpdateContinued(site.ID, &ContinuedInventory{
		Zoomorph: &models.ZoomorphInventoryModel{Snakes: 1},
	})
	require.NoError(t, err)

	current, err := service.EnsureContinuedForSite(site.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, current.General.PeyotismMotif)
	assert.Equal(t, 1, current.Zoomorph.Snakes)
}
