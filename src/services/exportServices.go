package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/rockartdb/rockartdb-backend/src/models"
	excelize "github.com/xuri/excelize/v2"
)

// ExportService renders a site's full survey as a spreadsheet, one sheet
// per tab.
type ExportService struct {
	siteService *SiteService
}

// NewExportService creates a new instance of ExportService
func NewExportService(siteService *SiteService) *ExportService {
	return &ExportService{siteService: siteService}
}

// ExportSiteWorkbook loads the full site aggregate and lays it out across
// sheets. The caller owns the returned file and must Close it.
func (s *ExportService) ExportSiteWorkbook(siteID int) (*excelize.File, error) {
	site, err := s.siteService.GetSiteFull(siteID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", "Project"); err != nil {
		return nil, err
	}

	writePairs(f, "Project", [][2]interface{}{
		{"Site number", site.SiteNumber},
		{"Date recorded", fmtDate(site.DateRecorded)},
		{"Project name", site.ProjectName},
		{"Project description", site.ProjectDescription},
		{"Recorders", site.Recorders},
		{"Temporary housing", site.TemporaryHousing},
		{"Permanent housing", site.PermanentHousing},
	})

	if info := site.RockArt; info != nil {
		typeNames := make([]string, 0, len(info.RockArtTypes))
		for _, t := range info.RockArtTypes {
			typeNames = append(typeNames, t.Name)
		}
		categoryNames := make([]string, 0, len(info.RockArtCategories))
		for _, c := range info.RockArtCategories {
			categoryNames = append(categoryNames, c.Name)
		}
		if _, err := f.NewSheet("Rock Art"); err != nil {
			return nil, err
		}
		writePairs(f, "Rock Art", [][2]interface{}{
			{"Reason for visit", info.ReasonForVisit},
			{"Previously recorded", info.PreviouslyRecorded},
			{"Previous record details", info.PreviousRecordDetails},
			{"Location type", string(info.LocationType)},
			{"Rock art types", joinNames(typeNames)},
			{"Rock art categories", joinNames(categoryNames)},
			{"Radiocarbon assay", info.RadiocarbonAssay},
			{"Radiocarbon citation", info.RadiocarbonCitation},
			{"Best time (winter)", info.BestWinter},
			{"Best time (spring)", info.BestSpring},
			{"Best time (summer)", info.BestSummer},
			{"Best time (fall)", info.BestFall},
			{"Engraving technique", string(info.EngravingTechnique)},
			{"Painting technique", string(info.PaintingTechnique)},
		})
	}

	if _, err := f.NewSheet("Panels"); err != nil {
		return nil, err
	}
	panelHeader := []interface{}{
		"Panel", "Orientation", "Height (m)", "Width (m)", "Area (m2)", "Exposure (deg)",
		"Anthro initial", "Anthro final", "Enigmatic initial", "Enigmatic final",
		"Zoomorph initial", "Zoomorph final", "Graffiti initial", "Graffiti final",
		"Remnant initial", "Remnant final", "Unclassified initial", "Unclassified final",
		"Fig petro initial", "Fig petro final", "Grooves initial", "Grooves final",
	}
	if err := f.SetSheetRow("Panels", "A1", &panelHeader); err != nil {
		return nil, err
	}
	for i, panel := range site.Panels {
		row := []interface{}{
			panel.PanelNumber, panel.OverallShelterOrientation,
			panel.HeightM, panel.WidthM, panel.AreaM2, panel.ExposureDegrees,
			panel.AnthropomorphsInitial, panel.AnthropomorphsFinal,
			panel.EnigmaticsInitial, panel.EnigmaticsFinal,
			panel.ZoomorphsInitial, panel.ZoomorphsFinal,
			panel.GraffitiInitial, panel.GraffitiFinal,
			panel.RemnantInitial, panel.RemnantFinal,
			panel.UnclassifiedInitial, panel.UnclassifiedFinal,
			panel.FigurativePetrosInitial, panel.FigurativePetrosFinal,
			panel.GroovesInitial, panel.GroovesFinal,
		}
		if err := f.SetSheetRow("Panels", fmt.Sprintf("A%d", i+2), &row); err != nil {
			return nil, err
		}
	}

	if cond := site.Conditions; cond != nil {
		if _, err := f.NewSheet("Conditions"); err != nil {
			return nil, err
		}
		writePairs(f, "Conditions", [][2]interface{}{
			{"Repainting", cond.Repainting},
			{"Repainting comments", cond.RepaintingComments},
			{"Revarnishing", cond.Revarnishing},
			{"Revarnishing comments", cond.RevarnishingComments},
			{"Clarity (overall)", cond.ClarityOverall},
			{"Physical agent", cond.PhysicalAgent},
			{"Physical notes", cond.PhysicalNotes},
			{"Chemical agent", cond.ChemicalAgent},
			{"Chemical notes", cond.ChemicalNotes},
			{"Biochemical agent", cond.BiochemicalAgent},
			{"Biochemical notes", cond.BiochemicalNotes},
			{"Human impacts", cond.HumanImpacts},
			{"Human impacts notes", cond.HumanImpactsNotes},
			{"Animal impacts", cond.AnimalImpacts},
			{"Animal impacts notes", cond.AnimalImpactsNotes},
			{"Known or perceived future impacts", cond.KnownOrPerceivedFutureImpacts},
			{"Future research potential", cond.FutureResearchPotential},
		})
	}

	if attrs := site.Attributes; attrs != nil {
		categoryName := ""
		if attrs.RockArtCategory != nil {
			categoryName = attrs.RockArtCategory.Name
		}
		if _, err := f.NewSheet("Attributes"); err != nil {
			return nil, err
		}
		writePairs(f, "Attributes", [][2]interface{}{
			{"Rock art category", categoryName},
			{"Style description", attrs.StyleDescription},
			{"Post pecking", attrs.PostPecking},
			{"Post abrading", attrs.PostAbrading},
			{"Post incising", attrs.PostIncising},
			{"Post additional comments", attrs.PostAdditionalComments},
			{"Incorporation", attrs.Incorporation},
			{"Scaffolding required", attrs.ScaffoldingRequired},
			{"Potential for C14", attrs.PotentialForC14},
			{"General comments", attrs.GeneralComments},
			{"Black", attrs.HasBlack},
			{"Red", attrs.HasRed},
			{"Yellow", attrs.HasYellow},
			{"White", attrs.HasWhite},
			{"Other colors", attrs.OtherColors},
		})
	}

	if _, err := f.NewSheet("Inventories"); err != nil {
		return nil, err
	}
	inventoryRows := [][2]interface{}{}
	if inv := site.AnthropomorphInventory; inv != nil {
		inventoryRows = append(inventoryRows,
			[2]interface{}{"Anthropomorphs: frontal", inv.Frontal},
			[2]interface{}{"Anthropomorphs: profile", inv.Profile},
			[2]interface{}{"Anthropomorphs: upside down", inv.UpsideDown},
			[2]interface{}{"Anthropomorphs: horizontal", inv.Horizontal},
			[2]interface{}{"Anthropomorphs: impaled", inv.ImpaledAnthropomorph},
			[2]interface{}{"Anthropomorphs: central styling", inv.Centralstyling},
			[2]interface{}{"Anthropomorphs: non central styled", inv.NonCentralstyled},
			[2]interface{}{"Headshape: round", inv.HeadshapeRound},
			[2]interface{}{"Headshape: square", inv.HeadshapeSquare},
			[2]interface{}{"Headshape: U shape", inv.HeadshapeUShape},
			[2]interface{}{"Headshape: other", inv.HeadshapeOther},
			[2]interface{}{"Arms extended up", inv.ArmsExtendedUp},
			[2]interface{}{"Arms extended down", inv.ArmsExtendedDown},
			[2]interface{}{"Right handed", inv.RightHanded},
			[2]interface{}{"Left handed", inv.LeftHanded},
			[2]interface{}{"Headdress", inv.Headdress},
			[2]interface{}{"Mask", inv.Mask},
			[2]interface{}{"Staff", inv.Staff},
			[2]interface{}{"Rabbit stick", inv.RabbitStick},
			[2]interface{}{"Other paraphernalia", inv.OtherParaphernalia},
		)
	}
	if inv := site.EnigmaticInventory; inv != nil {
		inventoryRows = append(inventoryRows,
			[2]interface{}{"Enigmatics: box with legs", inv.BoxWithLegs},
			[2]interface{}{"Enigmatics: arch with portal", inv.ArchWithPortal},
			[2]interface{}{"Enigmatics: crenelated box", inv.CrenelatedBox},
			[2]interface{}{"Enigmatics: comb shape", inv.CombShape},
			[2]interface{}{"Enigmatics: grid", inv.Grid},
			[2]interface{}{"Enigmatics: zig zag line", inv.ZigZagLine},
			[2]interface{}{"Enigmatics: spiral", inv.Spiral},
			[2]interface{}{"Enigmatics: serpentine lines", inv.SerpentineLines},
			[2]interface{}{"Enigmatics: other", inv.OtherEnigmatics},
		)
	}
	if inv := site.ZoomorphInventory; inv != nil {
		inventoryRows = append(inventoryRows,
			[2]interface{}{"Zoomorphs: feline", inv.Feline},
			[2]interface{}{"Zoomorphs: avian", inv.Avian},
			[2]interface{}{"Zoomorphs: snakes", inv.Snakes},
			[2]interface{}{"Zoomorphs: antlered deer", inv.AntleredDeer},
			[2]interface{}{"Zoomorphs: deer without antlers", inv.DeerWithoutAntlers},
			[2]interface{}{"Zoomorphs: other", inv.OtherZoomorphs},
		)
	}
	if inv := site.GeneralIconographicAttributes; inv != nil {
		inventoryRows = append(inventoryRows,
			[2]interface{}{"General: antlers with dots", inv.AntlersWithDots},
			[2]interface{}{"General: speech breath", inv.SpeechBreath},
			[2]interface{}{"General: large cluster single motif", inv.LargeClusterSingleMotif},
			[2]interface{}{"General: half bodied figures", inv.HalfBodiedFigures},
			[2]interface{}{"General: full bodied figures", inv.FullBodiedFigures},
			[2]interface{}{"General: dismembered figures", inv.DismemberedFigures},
			[2]interface{}{"General: procession of anthropomorphs", inv.ProcessionOfAnthropomorphs},
			[2]interface{}{"General: procession of zoomorphs", inv.ProcessionOfZoomorphs},
			[2]interface{}{"General: peyotism motif", inv.PeyotismMotif},
			[2]interface{}{"General: otherworld journey motif", inv.OtherworldJourneyMotif},
		)
	}
	writePairs(f, "Inventories", inventoryRows)

	if _, err := f.NewSheet("Photogrammetry"); err != nil {
		return nil, err
	}
	photoHeader := []interface{}{"Date", "Photo type", "Photo range", "Scale used", "Description"}
	if err := f.SetSheetRow("Photogrammetry", "A1", &photoHeader); err != nil {
		return nil, err
	}
	for i, entry := range site.PhotogrammetryLogs {
		row := []interface{}{
			entry.Date.Format("2006-01-02"), string(entry.PhotoType),
			entry.PhotoRange, entry.ScaleUsed, entry.Description,
		}
		if err := f.SetSheetRow("Photogrammetry", fmt.Sprintf("A%d", i+2), &row); err != nil {
			return nil, err
		}
	}

	if _, err := f.NewSheet("Notes"); err != nil {
		return nil, err
	}
	noteHeader := []interface{}{"Author", "Date", "Type", "Category", "Text"}
	if err := f.SetSheetRow("Notes", "A1", &noteHeader); err != nil {
		return nil, err
	}
	for i, note := range site.Notes {
		row := []interface{}{
			note.Author, fmtDate(note.Date), string(note.NoteType),
			string(note.Category), note.Text,
		}
		if err := f.SetSheetRow("Notes", fmt.Sprintf("A%d", i+2), &row); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// WorkbookFilename names the download after the site.
func WorkbookFilename(site *models.SiteModel) string {
	return fmt.Sprintf("%s-survey.xlsx", site.SiteNumber)
}

func writePairs(f *excelize.File, sheet string, pairs [][2]interface{}) {
	for i, pair := range pairs {
		row := []interface{}{pair[0], pair[1]}
		// SetSheetRow only fails on malformed references; the axis here is generated
		_ = f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+1), &row)
	}
}

func joinNames(names []string) string {
	return strings.Join(names, ", ")
}

func fmtDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
