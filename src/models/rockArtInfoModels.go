package models

type LocationType string

const (
	LocationUnknown     LocationType = "unknown"
	LocationRockShelter LocationType = "rock_shelter"
	LocationCave        LocationType = "cave"
	LocationOpenAir     LocationType = "open_air"
	LocationOther       LocationType = "other"
)

func (l LocationType) Valid() bool {
	switch l {
	case LocationUnknown, LocationRockShelter, LocationCave, LocationOpenAir, LocationOther:
		return true
	}
	return false
}

type RockArtTechnique string

const (
	TechniqueNone     RockArtTechnique = "none"
	TechniquePecked   RockArtTechnique = "pecked"
	TechniqueIncised  RockArtTechnique = "incised"
	TechniquePolished RockArtTechnique = "polished"
	TechniqueOther    RockArtTechnique = "other"
)

func (t RockArtTechnique) Valid() bool {
	switch t {
	case TechniqueNone, TechniquePecked, TechniqueIncised, TechniquePolished, TechniqueOther:
		return true
	}
	return false
}

type PaintingTechnique string

const (
	PaintingNone          PaintingTechnique = "none"
	PaintingWetApplied    PaintingTechnique = "wet_applied"
	PaintingDryApplied    PaintingTechnique = "dry_applied"
	PaintingFingerPainted PaintingTechnique = "finger_painted"
	PaintingStenciled     PaintingTechnique = "stenciled"
	PaintingBlown         PaintingTechnique = "blown"
	PaintingSplatter      PaintingTechnique = "splatter"
	PaintingOther         PaintingTechnique = "other"
)

func (t PaintingTechnique) Valid() bool {
	switch t {
	case PaintingNone, PaintingWetApplied, PaintingDryApplied, PaintingFingerPainted,
		PaintingStenciled, PaintingBlown, PaintingSplatter, PaintingOther:
		return true
	}
	return false
}

// RockArtInfoModel is the general characterization tab: one row per site.
type RockArtInfoModel struct {
	ID int `json:"id" gorm:"primaryKey;autoIncrement"`
	Timestamps

	SiteID int        `json:"site_id" gorm:"column:site_id;not null;uniqueIndex"`
	Site   *SiteModel `json:"site,omitempty" gorm:"foreignKey:SiteID;references:ID;constraint:OnDelete:CASCADE"`

	ReasonForVisit        string `json:"reason_for_visit" gorm:"type:text"`
	PreviouslyRecorded    bool   `json:"previously_recorded" gorm:"default:false;not null"`
	PreviousRecordDetails string `json:"previous_record_details" gorm:"type:text"`

	LocationType LocationType `json:"location_type" gorm:"type:varchar(32);default:unknown"`

	RockArtTypes      []RockArtTypeModel     `json:"rock_art_types" gorm:"many2many:rock_art_info_types;joinForeignKey:rock_art_info_id;joinReferences:rock_art_type_id"`
	RockArtCategories []RockArtCategoryModel `json:"rock_art_categories" gorm:"many2many:rock_art_info_categories;joinForeignKey:rock_art_info_id;joinReferences:rock_art_category_id"`

	RadiocarbonAssay    string `json:"radiocarbon_assay" gorm:"type:varchar(64)"`
	RadiocarbonCitation string `json:"radiocarbon_citation" gorm:"type:text"`

	UnidentifiedDescription string `json:"unidentified_description" gorm:"type:text"`

	// Best time of day for photography, per season
	BestWinter string `json:"best_winter" gorm:"type:varchar(64)"`
	BestSpring string `json:"best_spring" gorm:"type:varchar(64)"`
	BestSummer string `json:"best_summer" gorm:"type:varchar(64)"`
	BestFall   string `json:"best_fall" gorm:"type:varchar(64)"`

	EngravingTechnique RockArtTechnique `json:"engraving_technique" gorm:"type:varchar(32);default:none"`
	EngravingOther     string           `json:"engraving_other" gorm:"type:varchar(128)"`

	PaintingTechnique PaintingTechnique `json:"painting_technique" gorm:"type:varchar(32);default:none"`
	PaintingOther     string            `json:"painting_other" gorm:"type:varchar(128)"`
}

func (RockArtInfoModel) TableName() string {
	return "rock_art_info"
}
