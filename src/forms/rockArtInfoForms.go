package forms

import "github.com/rockartdb/rockartdb-backend/src/models"

// ValidateRockArtInfo normalizes empty enum fields to their defaults and
// rejects values outside the closed sets.
func ValidateRockArtInfo(info *models.RockArtInfoModel) error {
	errs := Errors{}

	if info.LocationType == "" {
		info.LocationType = models.LocationUnknown
	}
	if !info.LocationType.Valid() {
		errs.Add("location_type", "not a valid location type")
	}

	if info.EngravingTechnique == "" {
		info.EngravingTechnique = models.TechniqueNone
	}
	if !info.EngravingTechnique.Valid() {
		errs.Add("engraving_technique", "not a valid engraving technique")
	}

	if info.PaintingTechnique == "" {
		info.PaintingTechnique = models.PaintingNone
	}
	if !info.PaintingTechnique.Valid() {
		errs.Add("painting_technique", "not a valid painting technique")
	}

	return errs.err()
}
