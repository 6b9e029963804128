package models

// RockArtTypeModel holds vocabulary values like "Pictographs" or
// "Figurative Petroglyphs", referenced by rock art info records.
type RockArtTypeModel struct {
	ID   int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"type:varchar(128);not null;uniqueIndex"`
}

func (RockArtTypeModel) TableName() string {
	return "rock_art_types"
}

// RockArtCategoryModel holds vocabulary values like "Pecos River Style" or
// "Red Linear", referenced by rock art info and attribute records.
type RockArtCategoryModel struct {
	ID   int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"type:varchar(128);not null;uniqueIndex"`
}

func (RockArtCategoryModel) TableName() string {
	return "rock_art_categories"
}
