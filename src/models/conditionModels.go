package models

// RockArtConditionModel is the condition assessment tab: one row per site,
// pairing each agent of deterioration with free-text notes.
type RockArtConditionModel struct {
	ID int `json:"id" gorm:"primaryKey;autoIncrement"`
	Timestamps

	SiteID int        `json:"site_id" gorm:"column:site_id;not null;uniqueIndex"`
	Site   *SiteModel `json:"site,omitempty" gorm:"foreignKey:SiteID;references:ID;constraint:OnDelete:CASCADE"`

	Repainting           string `json:"repainting" gorm:"type:varchar(128)"`
	RepaintingComments   string `json:"repainting_comments" gorm:"type:text"`
	Revarnishing         string `json:"revarnishing" gorm:"type:varchar(128)"`
	RevarnishingComments string `json:"revarnishing_comments" gorm:"type:text"`

	ClarityOverall string `json:"clarity_overall" gorm:"type:varchar(128)"`

	PhysicalAgent      string `json:"physical_agent" gorm:"type:varchar(128)"`
	PhysicalNotes      string `json:"physical_notes" gorm:"type:text"`
	ChemicalAgent      string `json:"chemical_agent" gorm:"type:varchar(128)"`
	ChemicalNotes      string `json:"chemical_notes" gorm:"type:text"`
	BiochemicalAgent   string `json:"biochemical_agent" gorm:"type:varchar(128)"`
	BiochemicalNotes   string `json:"biochemical_notes" gorm:"type:text"`
	HumanImpacts       string `json:"human_impacts" gorm:"type:varchar(128)"`
	HumanImpactsNotes  string `json:"human_impacts_notes" gorm:"type:text"`
	AnimalImpacts      string `json:"animal_impacts" gorm:"type:varchar(128)"`
	AnimalImpactsNotes string `json:"animal_impacts_notes" gorm:"type:text"`

	KnownOrPerceivedFutureImpacts string `json:"known_or_perceived_future_impacts" gorm:"type:text"`
	FutureResearchPotential       string `json:"future_research_potential" gorm:"type:text"`
}

func (RockArtConditionModel) TableName() string {
	return "rock_art_conditions"
}
