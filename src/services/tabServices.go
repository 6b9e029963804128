package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SiteTab constrains the singleton tab models: tables with at most one row
// per site (conditions, attributes, the four inventories).
type SiteTab[T any] interface {
	*T
	GetID() int
	GetSiteID() int
	SetSiteID(int)
}

// SingletonTabService is the repository contract shared by every singleton
// tab, instantiated once per entity type. The optional validate func runs
// before any write; a nil validate means the tab has no field rules beyond
// its schema.
type SingletonTabService[T any, PT SiteTab[T]] struct {
	db       *gorm.DB
	validate func(*T) error
}

func NewSingletonTabService[T any, PT SiteTab[T]](db *gorm.DB, validate func(*T) error) *SingletonTabService[T, PT] {
	return &SingletonTabService[T, PT]{db: db, validate: validate}
}

// GetAll retrieves every record, optionally restricted to one site. The
// owning site rows are batch-loaded alongside.
func (s *SingletonTabService[T, PT]) GetAll(siteID int) ([]T, error) {
	var records []T
	query := s.db.Preload("Site").Order("site_id")
	if siteID != 0 {
		query = query.Where("site_id = ?", siteID)
	}
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (s *SingletonTabService[T, PT]) GetByID(id int) (PT, error) {
	var record T
	if err := s.db.Preload("Site").First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// EnsureForSite fetches the site's record, creating it with defaults on the
// first visit. Calling it repeatedly never yields a second row; losing a
// concurrent create race falls back to the winner's row.
func (s *SingletonTabService[T, PT]) EnsureForSite(siteID int) (PT, error) {
	if err := requireSite(s.db, siteID); err != nil {
		return nil, err
	}

	var record T
	err := s.db.Where("site_id = ?", siteID).First(&record).Error
	if err == nil {
		return &record, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	PT(&record).SetSiteID(siteID)
	if err := s.db.Create(PT(&record)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var existing T
			if ferr := s.db.Where("site_id = ?", siteID).First(&existing).Error; ferr == nil {
				return &existing, nil
			}
		}
		return nil, err
	}
	return &record, nil
}

func (s *SingletonTabService[T, PT]) Create(record PT) (PT, error) {
	if err := requireSite(s.db, record.GetSiteID()); err != nil {
		return nil, err
	}
	if s.validate != nil {
		if err := s.validate((*T)(record)); err != nil {
			return nil, err
		}
	}
	if err := s.db.Omit(clause.Associations).Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// Update overwrites every editable field with the submitted values; the
// record's identity and owning site are never reassigned.
func (s *SingletonTabService[T, PT]) Update(id int, updated PT) (PT, error) {
	var existing T
	if err := s.db.First(&existing, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if s.validate != nil {
		if err := s.validate((*T)(updated)); err != nil {
			return nil, err
		}
	}
	if err := s.db.Model(PT(&existing)).
		Select("*").
		Omit("id", "site_id", "created_at", clause.Associations).
		Updates(updated).Error; err != nil {
		return nil, err
	}
	var fresh T
	if err := s.db.First(&fresh, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &fresh, nil
}

func (s *SingletonTabService[T, PT]) Delete(id int) error {
	result := s.db.Delete(new(T), "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
