package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rockartdb/rockartdb-backend/src/models"
	"github.com/rockartdb/rockartdb-backend/src/services"
)

// Recording wizard step order. Every step after the first is keyed by the
// site created in the project step; notes has no successor.
const (
	StepProject        = "project"
	StepRockArt        = "rock-art"
	StepPanel          = "panel"
	StepConditions     = "conditions"
	StepAttributes     = "attributes"
	StepInventory      = "inventory/anthropomorphs"
	StepInventoryCont  = "inventory/continued"
	StepPhotogrammetry = "photogrammetry"
	StepNotes          = "notes"
)

var stepOrder = []string{
	StepProject,
	StepRockArt,
	StepPanel,
	StepConditions,
	StepAttributes,
	StepInventory,
	StepInventoryCont,
	StepPhotogrammetry,
	StepNotes,
}

func nextStep(current string) string {
	for i, step := range stepOrder {
		if step == current && i+1 < len(stepOrder) {
			return stepOrder[i+1]
		}
	}
	return ""
}

// WizardController walks a recorder through one site's tabs in order.
// Singleton tabs are created empty on first visit; panels, photogrammetry
// entries and notes append.
type WizardController struct {
	sites          *services.SiteService
	rockArt        *services.RockArtInfoService
	panels         *services.PanelService
	conditions     *services.SingletonTabService[models.RockArtConditionModel, *models.RockArtConditionModel]
	attributes     *services.SingletonTabService[models.RockArtAttributesModel, *models.RockArtAttributesModel]
	anthro         *services.SingletonTabService[models.AnthropomorphInventoryModel, *models.AnthropomorphInventoryModel]
	inventory      *services.InventoryService
	photogrammetry *services.PhotogrammetryService
	notes          *services.NoteService
}

func NewWizardController(
	sites *services.SiteService,
	rockArt *services.RockArtInfoService,
	panels *services.PanelService,
	conditions *services.SingletonTabService[models.RockArtConditionModel, *models.RockArtConditionModel],
	attributes *services.SingletonTabService[models.RockArtAttributesModel, *models.RockArtAttributesModel],
	anthro *services.SingletonTabService[models.AnthropomorphInventoryModel, *models.AnthropomorphInventoryModel],
	inventory *services.InventoryService,
	photogrammetry *services.PhotogrammetryService,
	notes *services.NoteService,
) *WizardController {
	return &WizardController{
		sites:          sites,
		rockArt:        rockArt,
		panels:         panels,
		conditions:     conditions,
		attributes:     attributes,
		anthro:         anthro,
		inventory:      inventory,
		photogrammetry: photogrammetry,
		notes:          notes,
	}
}

func siteParam(ctx *gin.Context) (int, bool) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid site ID"})
		return 0, false
	}
	return id, true
}

func stepResponse(ctx *gin.Context, status int, step string, data interface{}) {
	body := gin.H{"step": step, "data": data}
	if next := nextStep(step); next != "" {
		body["next"] = next
	}
	ctx.JSON(status, body)
}

// Home lists the site selector rows: one summary per recorded site.
func (c *WizardController) Home(ctx *gin.Context) {
	summaries, err := c.sites.GetSiteSummaries()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"sites": summaries})
}

// StartProject begins a new recording: creates the site and points the
// client at the next step.
func (c *WizardController) StartProject(ctx *gin.Context) {
	var site models.SiteModel
	if err := ctx.ShouldBindJSON(&site); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := c.sites.CreateSite(&site)
	if err != nil {
		respondError(ctx, err)
		return
	}
	stepResponse(ctx, http.StatusCreated, StepProject, created)
}

func (c *WizardController) GetProject(ctx *gin.Context) {
	siteID, ok := siteParam(ctx)
	if !ok {
		return
	}
	site, err := c.sites.GetSiteByID(siteID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	stepResponse(ctx, http.StatusOK, StepProject, site)
}

func (c *WizardController) SaveProject(ctx *gin.Context) {
	siteID, ok := siteParam(ctx)
	if !ok {
		return
	}
	var submitted models.SiteModel
	if err := ctx.ShouldBindJSON(&submitted); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	site, err := c.sites.UpdateSite(siteID, &submitted)
	if err != nil {
		respondError(ctx, err)
		return
	}
	stepResponse(ctx, http.StatusOK, StepProject, site)
}

func (c *WizardController) GetRockArt(ctx *gin.Context) {
	siteID, ok := siteParam(ctx)
	if !ok {
		return
	}
	info, err := c.rockArt.EnsureForSite(siteID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	stepResponse(ctx, http.StatusOK, StepRockArt, info)
}

func (c *WizardController) SaveRockArt(ctx *gin.Context) {
	siteID, ok := siteParam(ctx)
	if !ok {
		return
	}
	var submitted models.RockArtInfoModel
	if err := ctx.ShouldBindJSON(&submitted); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	existing, err := c.rockArt.EnsureForSite(siteID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	info, err := c.rockArt.UpdateRockArtInfo(existing.ID, &submitted)
	if err != nil {
		respondError(ctx, err)
		return
	}
	stepResponse(ctx, http.StatusOK, StepRockArt, info)
}

func (c *WizardController) GetPanelStep(ctx *gin.Context) {
	siteID, ok := siteParam(ctx)
	if !ok {
		return
	}
	panels, err := c.panels.GetPanelsBySite(siteID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	stepResponse(ctx, http.StatusOK, StepPanel, panels)
}

// SavePanelStep appends one panel to the site.
func (c *WizardController) SavePanelStep(ctx *gin.Context) {
	siteID, ok := siteParam(ctx)
	if !ok {
		return
	}
	var submitted models.PanelModel
	if err := ctx.ShouldBindJSON(&submitted); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	submitted.SiteID = siteID
	panel, err := c.panels.CreatePanel(&submitted)
	if err != nil {
		respondError(ctx, err)
		return
	}
	stepResponse(ctx, http.StatusCreated, StepPanel, panel)
}

func (c *WizardController) GetConditions(ctx *gin.Context) {
	siteID, ok := siteParam(ctx)
	if !ok {
		return
	}
	record, err := c.conditions.EnsureForSite(siteID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	stepResponse(ctx, http.StatusOK, StepConditions, record)
}

func (c *WizardController) SaveConditions(ctx *gin.Context) {
	siteID, ok := siteParam(ctx)
	if !ok {
		return
	}
	var submitted models.RockArtConditionModel
	if err := ctx.ShouldBindJSON(&submitted); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	existing, err := c.conditions.EnsureForSite(siteID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	record, err := c.conditions.Update(existing.ID, &submitted)
	if err != nil {
		respondError(ctx, err)
		return
	}
	stepResponse(ctx, http.StatusOK, StepConditions, record)
}

func (c *WizardController) GetAttributes(ctx *gin.Context) {
	siteID, ok := siteParam(ctx)
	if !ok {
		return
	}
	record, err := c.attributes.EnsureForSite(siteID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	stepResponse(ctx, http.StatusOK, StepAttributes, record)
}

func (c *WizardController) SaveAttributes(ctx *gin.Context) {
	siteID, ok := siteParam(ctx)
	if !ok {
		return
	}
	var submitted models.RockArtAttributesModel
	if err := ctx.ShouldBindJSON(&submitted); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	existing, err := c.attributes.EnsureForSite(siteID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	record, err := c.attributes.Update(existing.ID, &submitted)
	if err != nil {
		respondError(ctx, err)
		return
	}
	stepResponse(ctx, http.StatusOK, StepAttributes, record)
}

func (c *WizardController) GetAnthropomorphs(ctx *gin.Context) {
	siteID, ok := siteParam(ctx)
	if !ok {
		return
	}
	record, err := c.anthro.EnsureForSite(siteID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	stepResponse(ctx, http.StatusOK, StepInventory, record)
}

func (c *WizardController) SaveAnthropomorphs(ctx *gin.Context) {
	siteID, ok := siteParam(ctx)
	if !ok {
		return
	}
	var submitted models.AnthropomorphInventoryModel
	if err := ctx.ShouldBindJSON(&submitted); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	existing, err := c.anthro.EnsureForSite(siteID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	record, err := c.anthro.Update(existing.ID, &submitted)
	if err != nil {
		respondError(ctx, err)
		return
	}
	stepResponse(ctx, http.StatusOK, StepInventory, record)
}

func (c *WizardController) GetContinuedInventory(ctx *gin.Context) {
	siteID, ok := siteParam(ctx)
	if !ok {
		return
	}
	record, err := c.inventory.EnsureContinuedForSite(siteID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	stepResponse(ctx, http.StatusOK, StepInventoryCont, record)
}

// SaveContinuedInventory commits the enigmatic, zoomorph and general rows
// together; a validation failure in any one of them saves nothing.
func (c *WizardController) SaveContinuedInventory(ctx *gin.Context) {
	siteID, ok := siteParam(ctx)
	if !ok {
		return
	}
	var submitted services.ContinuedInventory
	if err := ctx.ShouldBindJSON(&submitted); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	record, err := c.inventory.UpdateContinued(siteID, &submitted)
	if err != nil {
		respondError(ctx, err)
		return
	}
	stepResponse(ctx, http.StatusOK, StepInventoryCont, record)
}

func (c *WizardController) GetPhotogrammetryStep(ctx *gin.Context) {
	siteID, ok := siteParam(ctx)
	if !ok {
		return
	}
	entries, err := c.photogrammetry.GetEntriesBySite(siteID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	stepResponse(ctx, http.StatusOK, StepPhotogrammetry, entries)
}

// SavePhotogrammetryStep appends one log entry to the site.
func (c *WizardController) SavePhotogrammetryStep(ctx *gin.Context) {
	siteID, ok := siteParam(ctx)
	if !ok {
		return
	}
	var submitted models.PhotogrammetryLogEntryModel
	if err := ctx.ShouldBindJSON(&submitted); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	submitted.SiteID = siteID
	entry, err := c.photogrammetry.CreateEntry(&submitted)
	if err != nil {
		respondError(ctx, err)
		return
	}
	stepResponse(ctx, http.StatusCreated, StepPhotogrammetry, entry)
}

func (c *WizardController) GetNotesStep(ctx *gin.Context) {
	siteID, ok := siteParam(ctx)
	if !ok {
		return
	}
	notes, err := c.notes.GetNotesBySite(siteID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	stepResponse(ctx, http.StatusOK, StepNotes, notes)
}

// SaveNotesStep appends one note; this is the last step, so no next is
// reported.
func (c *WizardController) SaveNotesStep(ctx *gin.Context) {
	siteID, ok := siteParam(ctx)
	if !ok {
		return
	}
	var submitted models.RockArtNoteModel
	if err := ctx.ShouldBindJSON(&submitted); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	submitted.SiteID = siteID
	note, err := c.notes.CreateNote(&submitted)
	if err != nil {
		respondError(ctx, err)
		return
	}
	stepResponse(ctx, http.StatusCreated, StepNotes, note)
}
