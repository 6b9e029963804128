package models

import "time"

// Timestamps is embedded by every survey record. CreatedAt is set once on
// insert, UpdatedAt is touched by gorm on every mutation.
type Timestamps struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SiteModel is the aggregate root: every tab record hangs off a site and is
// removed when the site is deleted.
type SiteModel struct {
	ID int `json:"id" gorm:"primaryKey;autoIncrement"`
	Timestamps

	SiteNumber   string     `json:"site_number" gorm:"type:varchar(64);not null;uniqueIndex"`
	DateRecorded *time.Time `json:"date_recorded" gorm:"type:date"`

	ProjectName        string `json:"project_name" gorm:"type:varchar(255)"`
	ProjectDescription string `json:"project_description" gorm:"type:text"`
	Recorders          string `json:"recorders" gorm:"type:varchar(255)"`

	TemporaryHousing string `json:"temporary_housing" gorm:"type:varchar(255)"`
	PermanentHousing string `json:"permanent_housing" gorm:"type:varchar(255)"`

	RockArt                       *RockArtInfoModel                   `json:"rock_art,omitempty" gorm:"foreignKey:SiteID"`
	Panels                        []PanelModel                        `json:"panels,omitempty" gorm:"foreignKey:SiteID"`
	Conditions                    *RockArtConditionModel              `json:"conditions,omitempty" gorm:"foreignKey:SiteID"`
	Attributes                    *RockArtAttributesModel             `json:"attributes,omitempty" gorm:"foreignKey:SiteID"`
	AnthropomorphInventory        *AnthropomorphInventoryModel        `json:"anthropomorph_inventory,omitempty" gorm:"foreignKey:SiteID"`
	EnigmaticInventory            *EnigmaticInventoryModel            `json:"enigmatic_inventory,omitempty" gorm:"foreignKey:SiteID"`
	ZoomorphInventory             *ZoomorphInventoryModel             `json:"zoomorph_inventory,omitempty" gorm:"foreignKey:SiteID"`
	GeneralIconographicAttributes *GeneralIconographicAttributesModel `json:"general_iconographic_attributes,omitempty" gorm:"foreignKey:SiteID"`
	PhotogrammetryLogs            []PhotogrammetryLogEntryModel       `json:"photogrammetry_logs,omitempty" gorm:"foreignKey:SiteID"`
	Notes                         []RockArtNoteModel                  `json:"notes,omitempty" gorm:"foreignKey:SiteID"`
}

func (SiteModel) TableName() string {
	return "sites"
}
