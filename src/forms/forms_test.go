package forms

import (
	"testing"
	"time"

	"github.com/rockartdb/rockartdb-backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldErrors(t *testing.T, err error) Errors {
	t.Helper()
	require.Error(t, err)
	verr, ok := err.(*ValidationError)
	require.True(t, ok, "expected a *ValidationError, got %T", err)
	return verr.Fields
}

func TestValidateSiteRequiresSiteNumber(t *testing.T) {
	err := ValidateSite(&models.SiteModel{SiteNumber: "   "})
	fields := fieldErrors(t, err)
	assert.Equal(t, "this field is required", fields["site_number"])
}

func TestValidateSiteTrimsSiteNumber(t *testing.T) {
	site := &models.SiteModel{SiteNumber: "  41VV123  "}
	require.NoError(t, ValidateSite(site))
	assert.Equal(t, "41VV123", site.SiteNumber)
}

func TestValidateSiteRejectsOverlongSiteNumber(t *testing.T) {
	long := make([]byte, 65)
	for i := range long {
		long[i] = 'x'
	}
	err := ValidateSite(&models.SiteModel{SiteNumber: string(long)})
	fields := fieldErrors(t, err)
	assert.Contains(t, fields, "site_number")
}

func TestValidateRockArtInfoDefaultsEmptyEnums(t *testing.T) {
	info := &models.RockArtInfoModel{}
	require.NoError(t, ValidateRockArtInfo(info))
	assert.Equal(t, models.LocationUnknown, info.LocationType)
	assert.Equal(t, models.TechniqueNone, info.EngravingTechnique)
	assert.Equal(t, models.PaintingNone, info.PaintingTechnique)
}

func TestValidateRockArtInfoRejectsUnknownEnums(t *testing.T) {
	info := &models.RockArtInfoModel{
		LocationType:       "volcano",
		EngravingTechnique: "sandblasted",
		PaintingTechnique:  "airbrushed",
	}
	fields := fieldErrors(t, ValidateRockArtInfo(info))
	assert.Contains(t, fields, "location_type")
	assert.Contains(t, fields, "engraving_technique")
	assert.Contains(t, fields, "painting_technique")
}

func TestValidatePanelRequiresPositivePanelNumber(t *testing.T) {
	fields := fieldErrors(t, ValidatePanel(&models.PanelModel{PanelNumber: 0}))
	assert.Contains(t, fields, "panel_number")
}

func TestValidatePanelRejectsNegativeValues(t *testing.T) {
	panel := &models.PanelModel{
		PanelNumber:      1,
		HeightM:          -0.5,
		ExposureDegrees:  -45,
		GraffitiFinal:    -3,
		ZoomorphsInitial: -1,
	}
	fields := fieldErrors(t, ValidatePanel(panel))
	assert.Contains(t, fields, "height_m")
	assert.Contains(t, fields, "exposure_degrees")
	assert.Contains(t, fields, "graffiti_final")
	assert.Contains(t, fields, "zoomorphs_initial")
	assert.NotContains(t, fields, "panel_number")
}

func TestValidatePanelAcceptsZeroCounts(t *testing.T) {
	assert.NoError(t, ValidatePanel(&models.PanelModel{PanelNumber: 1}))
}

func TestValidatePhotogrammetryLogEntryRequiresDate(t *testing.T) {
	fields := fieldErrors(t, ValidatePhotogrammetryLogEntry(&models.PhotogrammetryLogEntryModel{}))
	assert.Equal(t, "this field is required", fields["date"])
}

func TestValidatePhotogrammetryLogEntryDefaultsPhotoType(t *testing.T) {
	entry := &models.PhotogrammetryLogEntryModel{Date: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, ValidatePhotogrammetryLogEntry(entry))
	assert.Equal(t, models.PhotoSfM, entry.PhotoType)
}

func TestValidateRockArtNoteRequiresText(t *testing.T) {
	fields := fieldErrors(t, ValidateRockArtNote(&models.RockArtNoteModel{Text: " \n "}))
	assert.Equal(t, "this field is required", fields["text"])
}

func TestValidateRockArtNoteDefaults(t *testing.T) {
	note := &models.RockArtNoteModel{Text: "faded red anthropomorph near drip line"}
	require.NoError(t, ValidateRockArtNote(note))
	assert.Equal(t, models.NoteSiteNarrative, note.NoteType)
	assert.Equal(t, models.NoteCategoryField, note.Category)
}

func TestValidateAnthropomorphInventoryRejectsNegativeCounts(t *testing.T) {
	inv := &models.AnthropomorphInventoryModel{Frontal: -1, RabbitStick: -2}
	fields := fieldErrors(t, ValidateAnthropomorphInventory(inv))
	assert.Contains(t, fields, "frontal")
	assert.Contains(t, fields, "rabbit_stick")
	assert.Len(t, fields, 2)
}

func TestValidateEnigmaticInventoryAcceptsZeroValues(t *testing.T) {
	assert.NoError(t, ValidateEnigmaticInventory(&models.EnigmaticInventoryModel{}))
}

func TestValidationErrorMessageListsFieldsSorted(t *testing.T) {
	err := &ValidationError{Fields: Errors{"zebra": "bad", "apple": "bad"}}
	assert.Equal(t, "validation failed on: apple, zebra", err.Error())
}

func TestErrorsAddKeepsFirstReason(t *testing.T) {
	errs := Errors{}
	errs.Add("field", "first reason")
	errs.Add("field", "second reason")
	assert.Equal(t, "first reason", errs["field"])
}
