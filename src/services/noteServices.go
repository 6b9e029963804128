package services

import (
	"github.com/rockartdb/rockartdb-backend/src/forms"
	"github.com/rockartdb/rockartdb-backend/src/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NoteService struct {
	db *gorm.DB
}

// NewNoteService creates a new instance of NoteService
func NewNoteService(db *gorm.DB) *NoteService {
	return &NoteService{db: db}
}

// GetAllNotes retrieves note records, optionally restricted to one site or
// matched against author and text, ordered by date then creation time.
func (s *NoteService) GetAllNotes(siteID int, search string) ([]models.RockArtNoteModel, error) {
	var notes []models.RockArtNoteModel
	query := s.db.Preload("Site").Order("site_id, date, created_at")
	if siteID != 0 {
		query = query.Where("site_id = ?", siteID)
	}
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("author LIKE ? OR text LIKE ?", pattern, pattern)
	}
	if err := query.Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

// GetNotesBySite retrieves a site's notes ordered by date then creation time.
func (s *NoteService) GetNotesBySite(siteID int) ([]models.RockArtNoteModel, error) {
	if err := requireSite(s.db, siteID); err != nil {
		return nil, err
	}
	var notes []models.RockArtNoteModel
	if err := s.db.Where("site_id = ?", siteID).Order("date, created_at").Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (s *NoteService) GetNoteByID(id int) (*models.RockArtNoteModel, error) {
	var note models.RockArtNoteModel
	if err := s.db.Preload("Site").First(&note, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

// CreateNote appends a note to its site; notes are never deduplicated.
func (s *NoteService) CreateNote(note *models.RockArtNoteModel) (*models.RockArtNoteModel, error) {
	if err := requireSite(s.db, note.SiteID); err != nil {
		return nil, err
	}
	if err := forms.ValidateRockArtNote(note); err != nil {
		return nil, err
	}
	if err := s.db.Omit(clause.Associations).Create(note).Error; err != nil {
		return nil, err
	}
	return note, nil
}

func (s *NoteService) UpdateNote(id int, updated *models.RockArtNoteModel) (*models.RockArtNoteModel, error) {
	var note models.RockArtNoteModel
	if err := s.db.First(&note, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := forms.ValidateRockArtNote(updated); err != nil {
		return nil, err
	}
	if err := s.db.Model(&note).
		Select("*").
		Omit("id", "site_id", "created_at", clause.Associations).
		Updates(updated).Error; err != nil {
		return nil, err
	}
	var fresh models.RockArtNoteModel
	if err := s.db.First(&fresh, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &fresh, nil
}

func (s *NoteService) DeleteNote(id int) error {
	result := s.db.Delete(&models.RockArtNoteModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
