package services

import (
	"github.com/rockartdb/rockartdb-backend/src/forms"
	"github.com/rockartdb/rockartdb-backend/src/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PanelService struct {
	db *gorm.DB
}

// NewPanelService creates a new instance of PanelService
func NewPanelService(db *gorm.DB) *PanelService {
	return &PanelService{db: db}
}

// GetAllPanels retrieves panel records, optionally restricted to one site,
// ordered by panel number within each site.
func (s *PanelService) GetAllPanels(siteID int) ([]models.PanelModel, error) {
	var panels []models.PanelModel
	query := s.db.Preload("Site").Order("site_id, panel_number")
	if siteID != 0 {
		query = query.Where("site_id = ?", siteID)
	}
	if err := query.Find(&panels).Error; err != nil {
		return nil, err
	}
	return panels, nil
}

// GetPanelsBySite retrieves a site's panels ordered by panel number.
func (s *PanelService) GetPanelsBySite(siteID int) ([]models.PanelModel, error) {
	if err := requireSite(s.db, siteID); err != nil {
		return nil, err
	}
	var panels []models.PanelModel
	if err := s.db.Where("site_id = ?", siteID).Order("panel_number").Find(&panels).Error; err != nil {
		return nil, err
	}
	return panels, nil
}

func (s *PanelService) GetPanelByID(id int) (*models.PanelModel, error) {
	var panel models.PanelModel
	if err := s.db.Preload("Site").First(&panel, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &panel, nil
}

// CreatePanel appends a panel to its site. A duplicate panel number within
// the same site surfaces as a duplicate-key conflict; the same number on a
// different site is fine.
func (s *PanelService) CreatePanel(panel *models.PanelModel) (*models.PanelModel, error) {
	if err := requireSite(s.db, panel.SiteID); err != nil {
		return nil, err
	}
	if err := forms.ValidatePanel(panel); err != nil {
		return nil, err
	}
	if err := s.db.Omit(clause.Associations).Create(panel).Error; err != nil {
		return nil, err
	}
	return panel, nil
}

// UpdatePanel overwrites a panel's measurements and counts. Renumbering onto
// an existing panel number of the same site is a duplicate-key conflict.
func (s *PanelService) UpdatePanel(id int, updated *models.PanelModel) (*models.PanelModel, error) {
	var panel models.PanelModel
	if err := s.db.First(&panel, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := forms.ValidatePanel(updated); err != nil {
		return nil, err
	}
	if err := s.db.Model(&panel).
		Select("*").
		Omit("id", "site_id", "created_at", clause.Associations).
		Updates(updated).Error; err != nil {
		return nil, err
	}
	var fresh models.PanelModel
	if err := s.db.First(&fresh, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &fresh, nil
}

func (s *PanelService) DeletePanel(id int) error {
	result := s.db.Delete(&models.PanelModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
