package services

import (
	"errors"

	"github.com/rockartdb/rockartdb-backend/src/forms"
	"github.com/rockartdb/rockartdb-backend/src/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InventoryService handles the combined Inventory-Continued submission:
// three tables written together, all or nothing.
type InventoryService struct {
	db *gorm.DB
}

// NewInventoryService creates a new instance of InventoryService
func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{db: db}
}

// ContinuedInventory bundles the three records the continued inventory step
// edits together.
type ContinuedInventory struct {
	Enigmatic *models.EnigmaticInventoryModel            `json:"enigmatic"`
	Zoomorph  *models.ZoomorphInventoryModel             `json:"zoomorph"`
	General   *models.GeneralIconographicAttributesModel `json:"general"`
}

// EnsureContinuedForSite get-or-creates all three continued inventory rows
// for the site.
func (s *InventoryService) EnsureContinuedForSite(siteID int) (*ContinuedInventory, error) {
	if err := requireSite(s.db, siteID); err != nil {
		return nil, err
	}
	out := &ContinuedInventory{
		Enigmatic: &models.EnigmaticInventoryModel{},
		Zoomorph:  &models.ZoomorphInventoryModel{},
		General:   &models.GeneralIconographicAttributesModel{},
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureTabRow(tx, siteID, out.Enigmatic); err != nil {
			return err
		}
		if err := ensureTabRow(tx, siteID, out.Zoomorph); err != nil {
			return err
		}
		return ensureTabRow(tx, siteID, out.General)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateContinued validates all three sub-forms before writing anything,
// then commits the three updates in one transaction. A failure in any
// sub-form persists none of them.
func (s *InventoryService) UpdateContinued(siteID int, submitted *ContinuedInventory) (*ContinuedInventory, error) {
	if err := requireSite(s.db, siteID); err != nil {
		return nil, err
	}

	combined := forms.Errors{}
	if submitted.Enigmatic != nil {
		mergePrefixed(combined, "enigmatic", forms.ValidateEnigmaticInventory(submitted.Enigmatic))
	}
	if submitted.Zoomorph != nil {
		mergePrefixed(combined, "zoomorph", forms.ValidateZoomorphInventory(submitted.Zoomorph))
	}
	if submitted.General != nil {
		mergePrefixed(combined, "general", forms.ValidateGeneralIconographicAttributes(submitted.General))
	}
	if len(combined) > 0 {
		return nil, &forms.ValidationError{Fields: combined}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if submitted.Enigmatic != nil {
			if err := updateTabRow(tx, siteID, &models.EnigmaticInventoryModel{}, submitted.Enigmatic); err != nil {
				return err
			}
		}
		if submitted.Zoomorph != nil {
			if err := updateTabRow(tx, siteID, &models.ZoomorphInventoryModel{}, submitted.Zoomorph); err != nil {
				return err
			}
		}
		if submitted.General != nil {
			if err := updateTabRow(tx, siteID, &models.GeneralIconographicAttributesModel{}, submitted.General); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.EnsureContinuedForSite(siteID)
}

func mergePrefixed(into forms.Errors, prefix string, err error) {
	if err == nil {
		return
	}
	var verr *forms.ValidationError
	if errors.As(err, &verr) {
		for field, reason := range verr.Fields {
			into.Add(prefix+"."+field, reason)
		}
	}
}

type tabRow interface {
	GetID() int
	GetSiteID() int
	SetSiteID(int)
}

// ensureTabRow get-or-creates a singleton tab row within the supplied
// transaction, filling dest either way.
func ensureTabRow(tx *gorm.DB, siteID int, dest tabRow) error {
	err := tx.Where("site_id = ?", siteID).First(dest).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	dest.SetSiteID(siteID)
	return tx.Omit(clause.Associations).Create(dest).Error
}

// updateTabRow ensures the site's row exists and overwrites its counters
// with the submitted values.
func updateTabRow(tx *gorm.DB, siteID int, existing tabRow, submitted tabRow) error {
	if err := ensureTabRow(tx, siteID, existing); err != nil {
		return err
	}
	return tx.Model(existing).
		Select("*").
		Omit("id", "site_id", "created_at", clause.Associations).
		Updates(submitted).Error
}
