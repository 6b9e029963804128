package models

import "time"

type PhotoType string

const (
	PhotoSfM     PhotoType = "sfm"
	PhotoGigapan PhotoType = "gigapan"
	PhotoOther   PhotoType = "other"
)

func (t PhotoType) Valid() bool {
	switch t {
	case PhotoSfM, PhotoGigapan, PhotoOther:
		return true
	}
	return false
}

// PhotogrammetryLogEntryModel records one photogrammetry session at a site.
// Entries append; there is no implicit deduplication.
type PhotogrammetryLogEntryModel struct {
	ID int `json:"id" gorm:"primaryKey;autoIncrement"`
	Timestamps

	SiteID int        `json:"site_id" gorm:"column:site_id;not null;index"`
	Site   *SiteModel `json:"site,omitempty" gorm:"foreignKey:SiteID;references:ID;constraint:OnDelete:CASCADE"`

	Date      time.Time `json:"date" gorm:"type:date;not null"`
	PhotoType PhotoType `json:"photo_type" gorm:"type:varchar(16);default:sfm;not null"`

	PhotoRange  string `json:"photo_range" gorm:"type:varchar(128)"`
	ScaleUsed   string `json:"scale_used" gorm:"type:varchar(128)"`
	Description string `json:"description" gorm:"type:text"`
}

func (PhotogrammetryLogEntryModel) TableName() string {
	return "photogrammetry_log_entries"
}
