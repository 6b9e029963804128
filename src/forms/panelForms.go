package forms

import "github.com/rockartdb/rockartdb-backend/src/models"

// ValidatePanel checks panel measurements and figure counts. The panel
// number is recorder-assigned and must be positive; uniqueness within the
// site is enforced by the persistence layer.
func ValidatePanel(panel *models.PanelModel) error {
	errs := Errors{}

	if panel.PanelNumber < 1 {
		errs.Add("panel_number", "must be a positive integer")
	}

	checkNonNegativeFloat(errs, "height_m", panel.HeightM)
	checkNonNegativeFloat(errs, "width_m", panel.WidthM)
	checkNonNegativeFloat(errs, "area_m2", panel.AreaM2)
	checkNonNegativeFloat(errs, "exposure_degrees", panel.ExposureDegrees)

	checkNonNegative(errs, "anthropomorphs_initial", panel.AnthropomorphsInitial)
	checkNonNegative(errs, "anthropomorphs_final", panel.AnthropomorphsFinal)
	checkNonNegative(errs, "enigmatics_initial", panel.EnigmaticsInitial)
	checkNonNegative(errs, "enigmatics_final", panel.EnigmaticsFinal)
	checkNonNegative(errs, "zoomorphs_initial", panel.ZoomorphsInitial)
	checkNonNegative(errs, "zoomorphs_final", panel.ZoomorphsFinal)
	checkNonNegative(errs, "graffiti_initial", panel.GraffitiInitial)
	checkNonNegative(errs, "graffiti_final", panel.GraffitiFinal)
	checkNonNegative(errs, "remnant_initial", panel.RemnantInitial)
	checkNonNegative(errs, "remnant_final", panel.RemnantFinal)
	checkNonNegative(errs, "unclassified_initial", panel.UnclassifiedInitial)
	checkNonNegative(errs, "unclassified_final", panel.UnclassifiedFinal)
	checkNonNegative(errs, "figurative_petros_initial", panel.FigurativePetrosInitial)
	checkNonNegative(errs, "figurative_petros_final", panel.FigurativePetrosFinal)
	checkNonNegative(errs, "grooves_initial", panel.GroovesInitial)
	checkNonNegative(errs, "grooves_final", panel.GroovesFinal)

	return errs.err()
}
