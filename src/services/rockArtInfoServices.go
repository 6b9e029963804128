package services

import (
	"errors"

	"github.com/rockartdb/rockartdb-backend/src/forms"
	"github.com/rockartdb/rockartdb-backend/src/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RockArtInfoService struct {
	db *gorm.DB
}

// NewRockArtInfoService creates a new instance of RockArtInfoService
func NewRockArtInfoService(db *gorm.DB) *RockArtInfoService {
	return &RockArtInfoService{db: db}
}

func (s *RockArtInfoService) preloaded() *gorm.DB {
	return s.db.
		Preload("Site").
		Preload("RockArtTypes").
		Preload("RockArtCategories")
}

// GetAllRockArtInfo retrieves all rock art info records with their site and
// vocabulary sets batch-loaded.
func (s *RockArtInfoService) GetAllRockArtInfo(siteID int) ([]models.RockArtInfoModel, error) {
	var records []models.RockArtInfoModel
	query := s.preloaded().Order("site_id")
	if siteID != 0 {
		query = query.Where("site_id = ?", siteID)
	}
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (s *RockArtInfoService) GetRockArtInfoByID(id int) (*models.RockArtInfoModel, error) {
	var info models.RockArtInfoModel
	if err := s.preloaded().First(&info, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &info, nil
}

// EnsureForSite fetches the site's rock art info record, creating it with
// defaults on the first visit.
func (s *RockArtInfoService) EnsureForSite(siteID int) (*models.RockArtInfoModel, error) {
	if err := requireSite(s.db, siteID); err != nil {
		return nil, err
	}

	var info models.RockArtInfoModel
	err := s.preloaded().Where("site_id = ?", siteID).First(&info).Error
	if err == nil {
		return &info, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	info = models.RockArtInfoModel{
		SiteID:             siteID,
		LocationType:       models.LocationUnknown,
		EngravingTechnique: models.TechniqueNone,
		PaintingTechnique:  models.PaintingNone,
	}
	if err := s.db.Omit(clause.Associations).Create(&info).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var existing models.RockArtInfoModel
			if ferr := s.preloaded().Where("site_id = ?", siteID).First(&existing).Error; ferr == nil {
				return &existing, nil
			}
		}
		return nil, err
	}
	return s.GetRockArtInfoByID(info.ID)
}

// CreateRockArtInfo creates the record and attaches its vocabulary sets.
// Submitted types and categories are matched by id against the vocabulary
// tables; unknown ids are a validation failure and nothing is written.
func (s *RockArtInfoService) CreateRockArtInfo(info *models.RockArtInfoModel) (*models.RockArtInfoModel, error) {
	if err := requireSite(s.db, info.SiteID); err != nil {
		return nil, err
	}
	if err := forms.ValidateRockArtInfo(info); err != nil {
		return nil, err
	}

	types := info.RockArtTypes
	categories := info.RockArtCategories
	info.RockArtTypes = nil
	info.RockArtCategories = nil

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(info).Error; err != nil {
			return err
		}
		return s.replaceVocabulary(tx, info, types, categories)
	})
	if err != nil {
		return nil, err
	}
	return s.GetRockArtInfoByID(info.ID)
}

// UpdateRockArtInfo overwrites the record's fields and replaces both
// vocabulary sets wholesale with the submitted ones.
func (s *RockArtInfoService) UpdateRockArtInfo(id int, updated *models.RockArtInfoModel) (*models.RockArtInfoModel, error) {
	var info models.RockArtInfoModel
	if err := s.db.First(&info, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := forms.ValidateRockArtInfo(updated); err != nil {
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&info).
			Select("*").
			Omit("id", "site_id", "created_at", clause.Associations).
			Updates(updated).Error; err != nil {
			return err
		}
		return s.replaceVocabulary(tx, &info, updated.RockArtTypes, updated.RockArtCategories)
	})
	if err != nil {
		return nil, err
	}
	return s.GetRockArtInfoByID(id)
}

func (s *RockArtInfoService) DeleteRockArtInfo(id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var info models.RockArtInfoModel
		if err := tx.First(&info, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM rock_art_info_types WHERE rock_art_info_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM rock_art_info_categories WHERE rock_art_info_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&info).Error
	})
}

// replaceVocabulary resolves the submitted vocabulary rows by id and
// replaces both associations. Rows are fetched in one query per set.
func (s *RockArtInfoService) replaceVocabulary(tx *gorm.DB, info *models.RockArtInfoModel, types []models.RockArtTypeModel, categories []models.RockArtCategoryModel) error {
	typeIDs := make([]int, 0, len(types))
	for _, t := range types {
		typeIDs = append(typeIDs, t.ID)
	}
	var resolvedTypes []models.RockArtTypeModel
	if len(typeIDs) > 0 {
		if err := tx.Find(&resolvedTypes, typeIDs).Error; err != nil {
			return err
		}
		if len(resolvedTypes) != len(typeIDs) {
			return &forms.ValidationError{Fields: forms.Errors{"rock_art_types": "unknown rock art type"}}
		}
	}

	categoryIDs := make([]int, 0, len(categories))
	for _, c := range categories {
		categoryIDs = append(categoryIDs, c.ID)
	}
	var resolvedCategories []models.RockArtCategoryModel
	if len(categoryIDs) > 0 {
		if err := tx.Find(&resolvedCategories, categoryIDs).Error; err != nil {
			return err
		}
		if len(resolvedCategories) != len(categoryIDs) {
			return &forms.ValidationError{Fields: forms.Errors{"rock_art_categories": "unknown rock art category"}}
		}
	}

	if err := tx.Model(info).Association("RockArtTypes").Replace(resolvedTypes); err != nil {
		return err
	}
	return tx.Model(info).Association("RockArtCategories").Replace(resolvedCategories)
}
