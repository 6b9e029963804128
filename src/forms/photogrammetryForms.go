package forms

import "github.com/rockartdb/rockartdb-backend/src/models"

// ValidatePhotogrammetryLogEntry requires a session date; the photo type
// defaults to SfM when left blank.
func ValidatePhotogrammetryLogEntry(entry *models.PhotogrammetryLogEntryModel) error {
	errs := Errors{}

	if entry.Date.IsZero() {
		errs.Add("date", "this field is required")
	}

	if entry.PhotoType == "" {
		entry.PhotoType = models.PhotoSfM
	}
	if !entry.PhotoType.Valid() {
		errs.Add("photo_type", "not a valid photo type")
	}

	return errs.err()
}
