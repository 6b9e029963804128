package dtos

import "time"

// SiteSummaryDTO is one row of the site-selector listing.
type SiteSummaryDTO struct {
	ID           int        `json:"id"`
	SiteNumber   string     `json:"site_number"`
	ProjectName  string     `json:"project_name"`
	DateRecorded *time.Time `json:"date_recorded"`
	PanelCount   int        `json:"panel_count"`
	NoteCount    int        `json:"note_count"`
}
