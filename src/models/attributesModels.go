package models

// RockArtAttributesModel is the attribute coding tab: one row per site.
// The category reference survives category deletion as NULL.
type RockArtAttributesModel struct {
	ID int `json:"id" gorm:"primaryKey;autoIncrement"`
	Timestamps

	SiteID int        `json:"site_id" gorm:"column:site_id;not null;uniqueIndex"`
	Site   *SiteModel `json:"site,omitempty" gorm:"foreignKey:SiteID;references:ID;constraint:OnDelete:CASCADE"`

	RockArtCategoryID *int                  `json:"rock_art_category_id" gorm:"column:rock_art_category_id"`
	RockArtCategory   *RockArtCategoryModel `json:"rock_art_category,omitempty" gorm:"foreignKey:RockArtCategoryID;references:ID;constraint:OnDelete:SET NULL"`

	StyleDescription string `json:"style_description" gorm:"type:text"`

	// Post-painting modification
	PostPecking            string `json:"post_pecking" gorm:"type:varchar(128)"`
	PostAbrading           string `json:"post_abrading" gorm:"type:varchar(128)"`
	PostIncising           string `json:"post_incising" gorm:"type:varchar(128)"`
	PostAdditionalComments string `json:"post_additional_comments" gorm:"type:text"`

	Incorporation       string `json:"incorporation" gorm:"type:varchar(128)"`
	ScaffoldingRequired string `json:"scaffolding_required" gorm:"type:varchar(64)"`
	PotentialForC14     string `json:"potential_for_c14" gorm:"type:varchar(64)"`
	GeneralComments     string `json:"general_comments" gorm:"type:text"`

	// Colors present in style
	HasBlack    bool   `json:"has_black" gorm:"default:false;not null"`
	HasRed      bool   `json:"has_red" gorm:"default:false;not null"`
	HasYellow   bool   `json:"has_yellow" gorm:"default:false;not null"`
	HasWhite    bool   `json:"has_white" gorm:"default:false;not null"`
	OtherColors string `json:"other_colors" gorm:"type:varchar(255)"`
}

func (RockArtAttributesModel) TableName() string {
	return "rock_art_attributes"
}
