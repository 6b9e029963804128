package forms

import (
	"strings"

	"github.com/rockartdb/rockartdb-backend/src/models"
)

// ValidateRockArtNote requires the note text; type and category default to
// site narrative / field.
func ValidateRockArtNote(note *models.RockArtNoteModel) error {
	errs := Errors{}

	if strings.TrimSpace(note.Text) == "" {
		errs.Add("text", "this field is required")
	}

	if note.NoteType == "" {
		note.NoteType = models.NoteSiteNarrative
	}
	if !note.NoteType.Valid() {
		errs.Add("note_type", "not a valid note type")
	}

	if note.Category == "" {
		note.Category = models.NoteCategoryField
	}
	if !note.Category.Valid() {
		errs.Add("category", "not a valid note category")
	}

	return errs.err()
}
