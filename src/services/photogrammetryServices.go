package services

import (
	"github.com/rockartdb/rockartdb-backend/src/forms"
	"github.com/rockartdb/rockartdb-backend/src/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PhotogrammetryService struct {
	db *gorm.DB
}

// NewPhotogrammetryService creates a new instance of PhotogrammetryService
func NewPhotogrammetryService(db *gorm.DB) *PhotogrammetryService {
	return &PhotogrammetryService{db: db}
}

// GetAllEntries retrieves log entries, optionally restricted to one site,
// ordered by session date within each site.
func (s *PhotogrammetryService) GetAllEntries(siteID int) ([]models.PhotogrammetryLogEntryModel, error) {
	var entries []models.PhotogrammetryLogEntryModel
	query := s.db.Preload("Site").Order("site_id, date")
	if siteID != 0 {
		query = query.Where("site_id = ?", siteID)
	}
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// GetEntriesBySite retrieves a site's log ordered by session date.
func (s *PhotogrammetryService) GetEntriesBySite(siteID int) ([]models.PhotogrammetryLogEntryModel, error) {
	if err := requireSite(s.db, siteID); err != nil {
		return nil, err
	}
	var entries []models.PhotogrammetryLogEntryModel
	if err := s.db.Where("site_id = ?", siteID).Order("date").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *PhotogrammetryService) GetEntryByID(id int) (*models.PhotogrammetryLogEntryModel, error) {
	var entry models.PhotogrammetryLogEntryModel
	if err := s.db.Preload("Site").First(&entry, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// CreateEntry appends a log entry to its site; entries are never deduplicated.
func (s *PhotogrammetryService) CreateEntry(entry *models.PhotogrammetryLogEntryModel) (*models.PhotogrammetryLogEntryModel, error) {
	if err := requireSite(s.db, entry.SiteID); err != nil {
		return nil, err
	}
	if err := forms.ValidatePhotogrammetryLogEntry(entry); err != nil {
		return nil, err
	}
	if err := s.db.Omit(clause.Associations).Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *PhotogrammetryService) UpdateEntry(id int, updated *models.PhotogrammetryLogEntryModel) (*models.PhotogrammetryLogEntryModel, error) {
	var entry models.PhotogrammetryLogEntryModel
	if err := s.db.First(&entry, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := forms.ValidatePhotogrammetryLogEntry(updated); err != nil {
		return nil, err
	}
	if err := s.db.Model(&entry).
		Select("*").
		Omit("id", "site_id", "created_at", clause.Associations).
		Updates(updated).Error; err != nil {
		return nil, err
	}
	var fresh models.PhotogrammetryLogEntryModel
	if err := s.db.First(&fresh, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &fresh, nil
}

func (s *PhotogrammetryService) DeleteEntry(id int) error {
	result := s.db.Delete(&models.PhotogrammetryLogEntryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
