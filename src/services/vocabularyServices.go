package services

import (
	"strings"

	"github.com/rockartdb/rockartdb-backend/src/forms"
	"github.com/rockartdb/rockartdb-backend/src/models"
	"gorm.io/gorm"
)

func validateVocabularyName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", &forms.ValidationError{Fields: forms.Errors{"name": "this field is required"}}
	}
	if len(name) > 128 {
		return "", &forms.ValidationError{Fields: forms.Errors{"name": "must be 128 characters or fewer"}}
	}
	return name, nil
}

type RockArtTypeService struct {
	db *gorm.DB
}

// NewRockArtTypeService creates a new instance of RockArtTypeService
func NewRockArtTypeService(db *gorm.DB) *RockArtTypeService {
	return &RockArtTypeService{db: db}
}

// GetAllRockArtTypes retrieves the type vocabulary ordered by name
func (s *RockArtTypeService) GetAllRockArtTypes() ([]models.RockArtTypeModel, error) {
	var types []models.RockArtTypeModel
	if err := s.db.Order("name").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (s *RockArtTypeService) GetRockArtTypeByID(id int) (*models.RockArtTypeModel, error) {
	var artType models.RockArtTypeModel
	if err := s.db.First(&artType, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &artType, nil
}

func (s *RockArtTypeService) CreateRockArtType(artType *models.RockArtTypeModel) (*models.RockArtTypeModel, error) {
	name, err := validateVocabularyName(artType.Name)
	if err != nil {
		return nil, err
	}
	artType.Name = name
	if err := s.db.Create(artType).Error; err != nil {
		return nil, err
	}
	return artType, nil
}

func (s *RockArtTypeService) UpdateRockArtType(id int, updated *models.RockArtTypeModel) (*models.RockArtTypeModel, error) {
	var artType models.RockArtTypeModel
	if err := s.db.First(&artType, "id = ?", id).Error; err != nil {
		return nil, err
	}
	name, err := validateVocabularyName(updated.Name)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(&artType).Update("name", name).Error; err != nil {
		return nil, err
	}
	return &artType, nil
}

// DeleteRockArtType removes a vocabulary value and its references from any
// rock art info records.
func (s *RockArtTypeService) DeleteRockArtType(id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var artType models.RockArtTypeModel
		if err := tx.First(&artType, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM rock_art_info_types WHERE rock_art_type_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&artType).Error
	})
}

type RockArtCategoryService struct {
	db *gorm.DB
}

// NewRockArtCategoryService creates a new instance of RockArtCategoryService
func NewRockArtCategoryService(db *gorm.DB) *RockArtCategoryService {
	return &RockArtCategoryService{db: db}
}

// GetAllRockArtCategories retrieves the category vocabulary ordered by name
func (s *RockArtCategoryService) GetAllRockArtCategories() ([]models.RockArtCategoryModel, error) {
	var categories []models.RockArtCategoryModel
	if err := s.db.Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *RockArtCategoryService) GetRockArtCategoryByID(id int) (*models.RockArtCategoryModel, error) {
	var category models.RockArtCategoryModel
	if err := s.db.First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *RockArtCategoryService) CreateRockArtCategory(category *models.RockArtCategoryModel) (*models.RockArtCategoryModel, error) {
	name, err := validateVocabularyName(category.Name)
	if err != nil {
		return nil, err
	}
	category.Name = name
	if err := s.db.Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

func (s *RockArtCategoryService) UpdateRockArtCategory(id int, updated *models.RockArtCategoryModel) (*models.RockArtCategoryModel, error) {
	var category models.RockArtCategoryModel
	if err := s.db.First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	name, err := validateVocabularyName(updated.Name)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(&category).Update("name", name).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteRockArtCategory removes a vocabulary value. Attribute records that
// referenced it keep their row with the reference nulled; rock art info
// references are dropped with the join rows.
func (s *RockArtCategoryService) DeleteRockArtCategory(id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var category models.RockArtCategoryModel
		if err := tx.First(&category, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.RockArtAttributesModel{}).
			Where("rock_art_category_id = ?", id).
			Update("rock_art_category_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM rock_art_info_categories WHERE rock_art_category_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
}
