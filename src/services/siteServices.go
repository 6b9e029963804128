package services

import (
	"errors"

	"github.com/rockartdb/rockartdb-backend/src/dtos"
	"github.com/rockartdb/rockartdb-backend/src/forms"
	"github.com/rockartdb/rockartdb-backend/src/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SiteService struct {
	db *gorm.DB
}

// NewSiteService creates a new instance of SiteService
func NewSiteService(db *gorm.DB) *SiteService {
	return &SiteService{db: db}
}

// requireSite fails with gorm.ErrRecordNotFound when the site id does not
// exist; every tab operation starts here.
func requireSite(db *gorm.DB, siteID int) error {
	var site models.SiteModel
	return db.Select("id").First(&site, "id = ?", siteID).Error
}

// GetAllSites retrieves all Site records, optionally matched against the
// site number or project name, ordered by site number.
func (s *SiteService) GetAllSites(search string) ([]models.SiteModel, error) {
	var sites []models.SiteModel
	query := s.db.Order("site_number")
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("site_number LIKE ? OR project_name LIKE ?", pattern, pattern)
	}
	if err := query.Find(&sites).Error; err != nil {
		return nil, err
	}
	return sites, nil
}

// GetSiteByID retrieves a Site record by its ID
func (s *SiteService) GetSiteByID(id int) (*models.SiteModel, error) {
	var site models.SiteModel
	if err := s.db.First(&site, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &site, nil
}

// GetSiteFull retrieves a Site with every tab record batch-loaded: one
// query per related table regardless of how many rows hang off the site.
func (s *SiteService) GetSiteFull(id int) (*models.SiteModel, error) {
	var site models.SiteModel
	err := s.db.
		Preload("RockArt.RockArtTypes").
		Preload("RockArt.RockArtCategories").
		Preload("RockArt").
		Preload("Panels", func(db *gorm.DB) *gorm.DB { return db.Order("panel_number") }).
		Preload("Conditions").
		Preload("Attributes.RockArtCategory").
		Preload("Attributes").
		Preload("AnthropomorphInventory").
		Preload("EnigmaticInventory").
		Preload("ZoomorphInventory").
		Preload("GeneralIconographicAttributes").
		Preload("PhotogrammetryLogs", func(db *gorm.DB) *gorm.DB { return db.Order("date") }).
		Preload("Notes", func(db *gorm.DB) *gorm.DB { return db.Order("date, created_at") }).
		First(&site, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &site, nil
}

// GetSiteSummaries returns the site-selector rows in one query.
func (s *SiteService) GetSiteSummaries() ([]dtos.SiteSummaryDTO, error) {
	var summaries []dtos.SiteSummaryDTO
	err := s.db.Table("sites").
		Select(`sites.id, sites.site_number, sites.project_name, sites.date_recorded,
			(SELECT COUNT(*) FROM panels WHERE panels.site_id = sites.id) AS panel_count,
			(SELECT COUNT(*) FROM rock_art_notes WHERE rock_art_notes.site_id = sites.id) AS note_count`).
		Order("sites.site_number").
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

// CreateSite creates a new Site record in the database
func (s *SiteService) CreateSite(site *models.SiteModel) (*models.SiteModel, error) {
	if err := forms.ValidateSite(site); err != nil {
		return nil, err
	}
	if err := s.db.Omit(clause.Associations).Create(site).Error; err != nil {
		return nil, err
	}
	return site, nil
}

// UpdateSite updates an existing Site record in the database
func (s *SiteService) UpdateSite(id int, updated *models.SiteModel) (*models.SiteModel, error) {
	var site models.SiteModel
	if err := s.db.First(&site, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := forms.ValidateSite(updated); err != nil {
		return nil, err
	}
	if err := s.db.Model(&site).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(updated).Error; err != nil {
		return nil, err
	}
	var fresh models.SiteModel
	if err := s.db.First(&fresh, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &fresh, nil
}

// DeleteSite removes a Site and everything recorded against it. All nine
// dependent tables are cleared in the same transaction so no orphaned rows
// survive a partial failure.
func (s *SiteService) DeleteSite(id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var site models.SiteModel
		if err := tx.First(&site, "id = ?", id).Error; err != nil {
			return err
		}

		var info models.RockArtInfoModel
		err := tx.Where("site_id = ?", id).First(&info).Error
		if err == nil {
			if err := tx.Exec("DELETE FROM rock_art_info_types WHERE rock_art_info_id = ?", info.ID).Error; err != nil {
				return err
			}
			if err := tx.Exec("DELETE FROM rock_art_info_categories WHERE rock_art_info_id = ?", info.ID).Error; err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		dependents := []interface{}{
			&models.RockArtInfoModel{},
			&models.PanelModel{},
			&models.RockArtConditionModel{},
			&models.RockArtAttributesModel{},
			&models.AnthropomorphInventoryModel{},
			&models.EnigmaticInventoryModel{},
			&models.ZoomorphInventoryModel{},
			&models.GeneralIconographicAttributesModel{},
			&models.PhotogrammetryLogEntryModel{},
			&models.RockArtNoteModel{},
		}
		for _, dependent := range dependents {
			if err := tx.Where("site_id = ?", id).Delete(dependent).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&site).Error
	})
}
