package models

import "time"

type NoteType string

const (
	NoteSiteNarrative         NoteType = "site_narrative"
	NoteIconographicInventory NoteType = "iconographic_inventory"
	NoteDailyRecorder         NoteType = "daily_recorder"
)

func (t NoteType) Valid() bool {
	switch t {
	case NoteSiteNarrative, NoteIconographicInventory, NoteDailyRecorder:
		return true
	}
	return false
}

type NoteCategory string

const (
	NoteCategoryField NoteCategory = "field"
	NoteCategoryLab   NoteCategory = "lab"
)

func (c NoteCategory) Valid() bool {
	switch c {
	case NoteCategoryField, NoteCategoryLab:
		return true
	}
	return false
}

// RockArtNoteModel holds free-text narratives attached to a site. Notes
// append; there is no implicit deduplication.
type RockArtNoteModel struct {
	ID int `json:"id" gorm:"primaryKey;autoIncrement"`
	Timestamps

	SiteID int        `json:"site_id" gorm:"column:site_id;not null;index"`
	Site   *SiteModel `json:"site,omitempty" gorm:"foreignKey:SiteID;references:ID;constraint:OnDelete:CASCADE"`

	Author string     `json:"author" gorm:"type:varchar(128)"`
	Date   *time.Time `json:"date" gorm:"type:date"`

	NoteType NoteType     `json:"note_type" gorm:"type:varchar(32);default:site_narrative;not null"`
	Category NoteCategory `json:"category" gorm:"type:varchar(16);default:field;not null"`

	Text string `json:"text" gorm:"type:text;not null"`
}

func (RockArtNoteModel) TableName() string {
	return "rock_art_notes"
}
