package models

// PanelModel records one rock art panel within a site. Panel numbers are
// assigned by the recorder and must be unique within the site.
type PanelModel struct {
	ID int `json:"id" gorm:"primaryKey;autoIncrement"`
	Timestamps

	SiteID int        `json:"site_id" gorm:"column:site_id;not null;uniqueIndex:idx_panels_site_panel"`
	Site   *SiteModel `json:"site,omitempty" gorm:"foreignKey:SiteID;references:ID;constraint:OnDelete:CASCADE"`

	PanelNumber int `json:"panel_number" gorm:"not null;uniqueIndex:idx_panels_site_panel;check:panel_number > 0"`

	OverallShelterOrientation string `json:"overall_shelter_orientation" gorm:"type:varchar(64)"`

	HeightM         float64 `json:"height_m" gorm:"default:0;check:height_m >= 0"`
	WidthM          float64 `json:"width_m" gorm:"default:0;check:width_m >= 0"`
	AreaM2          float64 `json:"area_m2" gorm:"default:0;check:area_m2 >= 0"`
	ExposureDegrees float64 `json:"exposure_degrees" gorm:"default:0"`

	// Figure counts within the panel, initial and final pass
	AnthropomorphsInitial    int `json:"anthropomorphs_initial" gorm:"default:0;check:anthropomorphs_initial >= 0"`
	AnthropomorphsFinal      int `json:"anthropomorphs_final" gorm:"default:0;check:anthropomorphs_final >= 0"`
	EnigmaticsInitial        int `json:"enigmatics_initial" gorm:"default:0;check:enigmatics_initial >= 0"`
	EnigmaticsFinal          int `json:"enigmatics_final" gorm:"default:0;check:enigmatics_final >= 0"`
	ZoomorphsInitial         int `json:"zoomorphs_initial" gorm:"default:0;check:zoomorphs_initial >= 0"`
	ZoomorphsFinal           int `json:"zoomorphs_final" gorm:"default:0;check:zoomorphs_final >= 0"`
	GraffitiInitial          int `json:"graffiti_initial" gorm:"default:0;check:graffiti_initial >= 0"`
	GraffitiFinal            int `json:"graffiti_final" gorm:"default:0;check:graffiti_final >= 0"`
	RemnantInitial           int `json:"remnant_initial" gorm:"default:0;check:remnant_initial >= 0"`
	RemnantFinal             int `json:"remnant_final" gorm:"default:0;check:remnant_final >= 0"`
	UnclassifiedInitial      int `json:"unclassified_initial" gorm:"default:0;check:unclassified_initial >= 0"`
	UnclassifiedFinal        int `json:"unclassified_final" gorm:"default:0;check:unclassified_final >= 0"`
	FigurativePetrosInitial  int `json:"figurative_petros_initial" gorm:"default:0;check:figurative_petros_initial >= 0"`
	FigurativePetrosFinal    int `json:"figurative_petros_final" gorm:"default:0;check:figurative_petros_final >= 0"`
	GroovesInitial           int `json:"grooves_initial" gorm:"default:0;check:grooves_initial >= 0"`
	GroovesFinal             int `json:"grooves_final" gorm:"default:0;check:grooves_final >= 0"`
}

func (PanelModel) TableName() string {
	return "panels"
}
