package forms

import (
	"strings"

	"github.com/rockartdb/rockartdb-backend/src/models"
)

// ValidateSite checks the project information form. Only the site number is
// mandatory; everything else on the tab is optional free text.
func ValidateSite(site *models.SiteModel) error {
	errs := Errors{}
	site.SiteNumber = strings.TrimSpace(site.SiteNumber)
	if site.SiteNumber == "" {
		errs.Add("site_number", "this field is required")
	} else if len(site.SiteNumber) > 64 {
		errs.Add("site_number", "must be 64 characters or fewer")
	}
	return errs.err()
}
