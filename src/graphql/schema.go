package graphql

import (
	gql "github.com/graphql-go/graphql"
	"github.com/rockartdb/rockartdb-backend/src/models"
	"github.com/rockartdb/rockartdb-backend/src/services"
)

// Services collects everything the query resolvers read from. The schema is
// read-only; all writes go through the REST surface.
type Services struct {
	Sites          *services.SiteService
	RockArtInfo    *services.RockArtInfoService
	Panels         *services.PanelService
	Notes          *services.NoteService
	Photogrammetry *services.PhotogrammetryService
	Types          *services.RockArtTypeService
	Categories     *services.RockArtCategoryService

	Conditions  *services.SingletonTabService[models.RockArtConditionModel, *models.RockArtConditionModel]
	Attributes  *services.SingletonTabService[models.RockArtAttributesModel, *models.RockArtAttributesModel]
	Anthro      *services.SingletonTabService[models.AnthropomorphInventoryModel, *models.AnthropomorphInventoryModel]
	Enigmatic   *services.SingletonTabService[models.EnigmaticInventoryModel, *models.EnigmaticInventoryModel]
	Zoomorph    *services.SingletonTabService[models.ZoomorphInventoryModel, *models.ZoomorphInventoryModel]
	GeneralIcon *services.SingletonTabService[models.GeneralIconographicAttributesModel, *models.GeneralIconographicAttributesModel]
}

// intFields builds a block of Int fields, one per name. Struct fields are
// matched case-insensitively by the default resolver, so camelCase names
// here land on the CamelCase model fields.
func intFields(names ...string) gql.Fields {
	fields := gql.Fields{}
	for _, name := range names {
		fields[name] = &gql.Field{Type: gql.Int}
	}
	return fields
}

func stringFields(names ...string) gql.Fields {
	fields := gql.Fields{}
	for _, name := range names {
		fields[name] = &gql.Field{Type: gql.String}
	}
	return fields
}

func merge(dst gql.Fields, blocks ...gql.Fields) gql.Fields {
	for _, block := range blocks {
		for name, field := range block {
			dst[name] = field
		}
	}
	return dst
}

// recordFields is the common prefix of every per-site record type. Audit
// timestamps live in an embedded struct the default resolver cannot reach,
// so the query surface leaves them out.
func recordFields() gql.Fields {
	return gql.Fields{
		"id":     &gql.Field{Type: gql.Int},
		"siteId": &gql.Field{Type: gql.Int},
	}
}

func sourceSite(p gql.ResolveParams) (*models.SiteModel, bool) {
	switch site := p.Source.(type) {
	case *models.SiteModel:
		return site, true
	case models.SiteModel:
		return &site, true
	}
	return nil, false
}

func siteIDArg(p gql.ResolveParams) int {
	if raw, ok := p.Args["siteId"].(int); ok {
		return raw
	}
	return 0
}

var siteIDArgs = gql.FieldConfigArgument{
	"siteId": &gql.ArgumentConfig{Type: gql.Int},
}

// firstOrNil unwraps the singleton tab convention: zero or one row per site.
func firstOrNil[T any](records []T, err error) (interface{}, error) {
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[0], nil
}

// New builds the read query schema over the survey data.
func New(svc Services) (gql.Schema, error) {
	vocabularyType := gql.NewObject(gql.ObjectConfig{
		Name: "RockArtType",
		Fields: gql.Fields{
			"id":   &gql.Field{Type: gql.Int},
			"name": &gql.Field{Type: gql.String},
		},
	})

	vocabularyCategoryType := gql.NewObject(gql.ObjectConfig{
		Name: "RockArtCategory",
		Fields: gql.Fields{
			"id":   &gql.Field{Type: gql.Int},
			"name": &gql.Field{Type: gql.String},
		},
	})

	rockArtInfoType := gql.NewObject(gql.ObjectConfig{
		Name: "RockArtInfo",
		Fields: merge(recordFields(),
			stringFields(
				"reasonForVisit", "previousRecordDetails", "locationType",
				"radiocarbonAssay", "radiocarbonCitation", "unidentifiedDescription",
				"bestWinter", "bestSpring", "bestSummer", "bestFall",
				"engravingTechnique", "engravingOther",
				"paintingTechnique", "paintingOther",
			),
			gql.Fields{
				"previouslyRecorded": &gql.Field{Type: gql.Boolean},
				"rockArtTypes":       &gql.Field{Type: gql.NewList(vocabularyType)},
				"rockArtCategories":  &gql.Field{Type: gql.NewList(vocabularyCategoryType)},
			},
		),
	})

	panelType := gql.NewObject(gql.ObjectConfig{
		Name: "Panel",
		Fields: merge(recordFields(),
			gql.Fields{
				"panelNumber":               &gql.Field{Type: gql.Int},
				"overallShelterOrientation": &gql.Field{Type: gql.String},
				"heightM":                   &gql.Field{Type: gql.Float},
				"widthM":                    &gql.Field{Type: gql.Float},
				"areaM2":                    &gql.Field{Type: gql.Float},
				"exposureDegrees":           &gql.Field{Type: gql.Float},
			},
			intFields(
				"anthropomorphsInitial", "anthropomorphsFinal",
				"enigmaticsInitial", "enigmaticsFinal",
				"zoomorphsInitial", "zoomorphsFinal",
				"graffitiInitial", "graffitiFinal",
				"remnantInitial", "remnantFinal",
				"unclassifiedInitial", "unclassifiedFinal",
				"figurativePetrosInitial", "figurativePetrosFinal",
				"groovesInitial", "groovesFinal",
			),
		),
	})

	conditionType := gql.NewObject(gql.ObjectConfig{
		Name: "RockArtCondition",
		Fields: merge(recordFields(),
			stringFields(
				"repainting", "repaintingComments",
				"revarnishing", "revarnishingComments",
				"clarityOverall",
				"physicalAgent", "physicalNotes",
				"chemicalAgent", "chemicalNotes",
				"biochemicalAgent", "biochemicalNotes",
				"humanImpacts", "humanImpactsNotes",
				"animalImpacts", "animalImpactsNotes",
				"knownOrPerceivedFutureImpacts", "futureResearchPotential",
			),
		),
	})

	attributesType := gql.NewObject(gql.ObjectConfig{
		Name: "RockArtAttributes",
		Fields: merge(recordFields(),
			stringFields(
				"styleDescription",
				"postPecking", "postAbrading", "postIncising", "postAdditionalComments",
				"incorporation", "scaffoldingRequired", "potentialForC14",
				"generalComments", "otherColors",
			),
			gql.Fields{
				"rockArtCategoryId": &gql.Field{Type: gql.Int},
				"rockArtCategory":   &gql.Field{Type: vocabularyCategoryType},
				"hasBlack":          &gql.Field{Type: gql.Boolean},
				"hasRed":            &gql.Field{Type: gql.Boolean},
				"hasYellow":         &gql.Field{Type: gql.Boolean},
				"hasWhite":          &gql.Field{Type: gql.Boolean},
			},
		),
	})

	anthropomorphType := gql.NewObject(gql.ObjectConfig{
		Name: "AnthropomorphInventory",
		Fields: merge(recordFields(),
			intFields(
				"frontal", "profile", "upsideDown", "horizontal",
				"impaledAnthropomorph", "centralstyling", "nonCentralstyled",
				"headshapeRound", "headshapeSquare", "headshapeUShape", "headshapeOther",
				"armsExtendedUp", "armsExtendedDown", "rightHanded", "leftHanded",
				"headdress", "mask", "staff", "rabbitStick", "otherParaphernalia",
			),
		),
	})

	enigmaticType := gql.NewObject(gql.ObjectConfig{
		Name: "EnigmaticInventory",
		Fields: merge(recordFields(),
			intFields(
				"boxWithLegs", "archWithPortal", "crenelatedBox", "combShape",
				"grid", "zigZagLine", "spiral", "serpentineLines", "otherEnigmatics",
			),
		),
	})

	zoomorphType := gql.NewObject(gql.ObjectConfig{
		Name: "ZoomorphInventory",
		Fields: merge(recordFields(),
			intFields(
				"feline", "avian", "snakes",
				"antleredDeer", "deerWithoutAntlers", "otherZoomorphs",
			),
		),
	})

	generalIconType := gql.NewObject(gql.ObjectConfig{
		Name: "GeneralIconographicAttributes",
		Fields: merge(recordFields(),
			intFields(
				"antlersWithDots", "speechBreath", "largeClusterSingleMotif",
				"halfBodiedFigures", "fullBodiedFigures", "dismemberedFigures",
				"processionOfAnthropomorphs", "processionOfZoomorphs",
				"peyotismMotif", "otherworldJourneyMotif",
			),
		),
	})

	photogrammetryType := gql.NewObject(gql.ObjectConfig{
		Name: "PhotogrammetryLogEntry",
		Fields: merge(recordFields(),
			gql.Fields{
				"date":        &gql.Field{Type: gql.DateTime},
				"photoType":   &gql.Field{Type: gql.String},
				"photoRange":  &gql.Field{Type: gql.String},
				"scaleUsed":   &gql.Field{Type: gql.String},
				"description": &gql.Field{Type: gql.String},
			},
		),
	})

	noteType := gql.NewObject(gql.ObjectConfig{
		Name: "RockArtNote",
		Fields: merge(recordFields(),
			gql.Fields{
				"author":   &gql.Field{Type: gql.String},
				"date":     &gql.Field{Type: gql.DateTime},
				"noteType": &gql.Field{Type: gql.String},
				"category": &gql.Field{Type: gql.String},
				"text":     &gql.Field{Type: gql.String},
			},
		),
	})

	// Association fields fall back to a service fetch when the parent row
	// was loaded without its children, so nesting works from any root.
	siteType := gql.NewObject(gql.ObjectConfig{
		Name: "Site",
		Fields: gql.Fields{
			"id":           &gql.Field{Type: gql.Int},
			"siteNumber":   &gql.Field{Type: gql.String},
			"dateRecorded": &gql.Field{Type: gql.DateTime},

			"projectName":        &gql.Field{Type: gql.String},
			"projectDescription": &gql.Field{Type: gql.String},
			"recorders":          &gql.Field{Type: gql.String},
			"temporaryHousing":   &gql.Field{Type: gql.String},
			"permanentHousing":   &gql.Field{Type: gql.String},

			"rockArt": &gql.Field{
				Type: rockArtInfoType,
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					site, ok := sourceSite(p)
					if !ok {
						return nil, nil
					}
					if site.RockArt != nil {
						return site.RockArt, nil
					}
					return firstOrNil(svc.RockArtInfo.GetAllRockArtInfo(site.ID))
				},
			},
			"panels": &gql.Field{
				Type: gql.NewList(panelType),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					site, ok := sourceSite(p)
					if !ok {
						return nil, nil
					}
					if site.Panels != nil {
						return site.Panels, nil
					}
					return svc.Panels.GetPanelsBySite(site.ID)
				},
			},
			"conditions": &gql.Field{
				Type: conditionType,
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					site, ok := sourceSite(p)
					if !ok {
						return nil, nil
					}
					if site.Conditions != nil {
						return site.Conditions, nil
					}
					return firstOrNil(svc.Conditions.GetAll(site.ID))
				},
			},
			"attributes": &gql.Field{
				Type: attributesType,
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					site, ok := sourceSite(p)
					if !ok {
						return nil, nil
					}
					if site.Attributes != nil {
						return site.Attributes, nil
					}
					return firstOrNil(svc.Attributes.GetAll(site.ID))
				},
			},
			"anthropomorphInventory": &gql.Field{
				Type: anthropomorphType,
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					site, ok := sourceSite(p)
					if !ok {
						return nil, nil
					}
					if site.AnthropomorphInventory != nil {
						return site.AnthropomorphInventory, nil
					}
					return firstOrNil(svc.Anthro.GetAll(site.ID))
				},
			},
			"enigmaticInventory": &gql.Field{
				Type: enigmaticType,
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					site, ok := sourceSite(p)
					if !ok {
						return nil, nil
					}
					if site.EnigmaticInventory != nil {
						return site.EnigmaticInventory, nil
					}
					return firstOrNil(svc.Enigmatic.GetAll(site.ID))
				},
			},
			"zoomorphInventory": &gql.Field{
				Type: zoomorphType,
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					site, ok := sourceSite(p)
					if !ok {
						return nil, nil
					}
					if site.ZoomorphInventory != nil {
						return site.ZoomorphInventory, nil
					}
					return firstOrNil(svc.Zoomorph.GetAll(site.ID))
				},
			},
			"generalIconographicAttributes": &gql.Field{
				Type: generalIconType,
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					site, ok := sourceSite(p)
					if !ok {
						return nil, nil
					}
					if site.GeneralIconographicAttributes != nil {
						return site.GeneralIconographicAttributes, nil
					}
					return firstOrNil(svc.GeneralIcon.GetAll(site.ID))
				},
			},
			"photogrammetryLogs": &gql.Field{
				Type: gql.NewList(photogrammetryType),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					site, ok := sourceSite(p)
					if !ok {
						return nil, nil
					}
					if site.PhotogrammetryLogs != nil {
						return site.PhotogrammetryLogs, nil
					}
					return svc.Photogrammetry.GetEntriesBySite(site.ID)
				},
			},
			"notes": &gql.Field{
				Type: gql.NewList(noteType),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					site, ok := sourceSite(p)
					if !ok {
						return nil, nil
					}
					if site.Notes != nil {
						return site.Notes, nil
					}
					return svc.Notes.GetNotesBySite(site.ID)
				},
			},
		},
	})

	queryType := gql.NewObject(gql.ObjectConfig{
		Name: "Query",
		Fields: gql.Fields{
			"sites": &gql.Field{
				Type: gql.NewList(siteType),
				Args: gql.FieldConfigArgument{
					"search": &gql.ArgumentConfig{Type: gql.String},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					search, _ := p.Args["search"].(string)
					return svc.Sites.GetAllSites(search)
				},
			},
			"site": &gql.Field{
				Type: siteType,
				Args: gql.FieldConfigArgument{
					"id": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.Int)},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(int)
					return svc.Sites.GetSiteFull(id)
				},
			},
			"rockArtInfo": &gql.Field{
				Type: gql.NewList(rockArtInfoType),
				Args: siteIDArgs,
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					return svc.RockArtInfo.GetAllRockArtInfo(siteIDArg(p))
				},
			},
			"panels": &gql.Field{
				Type: gql.NewList(panelType),
				Args: siteIDArgs,
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					return svc.Panels.GetAllPanels(siteIDArg(p))
				},
			},
			"conditions": &gql.Field{
				Type: gql.NewList(conditionType),
				Args: siteIDArgs,
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					return svc.Conditions.GetAll(siteIDArg(p))
				},
			},
			"attributes": &gql.Field{
				Type: gql.NewList(attributesType),
				Args: siteIDArgs,
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					return svc.Attributes.GetAll(siteIDArg(p))
				},
			},
			"anthropomorphInventories": &gql.Field{
				Type: gql.NewList(anthropomorphType),
				Args: siteIDArgs,
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					return svc.Anthro.GetAll(siteIDArg(p))
				},
			},
			"enigmaticInventories": &gql.Field{
				Type: gql.NewList(enigmaticType),
				Args: siteIDArgs,
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					return svc.Enigmatic.GetAll(siteIDArg(p))
				},
			},
			"zoomorphInventories": &gql.Field{
				Type: gql.NewList(zoomorphType),
				Args: siteIDArgs,
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					return svc.Zoomorph.GetAll(siteIDArg(p))
				},
			},
			"generalIconographicAttributes": &gql.Field{
				Type: gql.NewList(generalIconType),
				Args: siteIDArgs,
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					return svc.GeneralIcon.GetAll(siteIDArg(p))
				},
			},
			"photogrammetryEntries": &gql.Field{
				Type: gql.NewList(photogrammetryType),
				Args: siteIDArgs,
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					return svc.Photogrammetry.GetAllEntries(siteIDArg(p))
				},
			},
			"notes": &gql.Field{
				Type: gql.NewList(noteType),
				Args: gql.FieldConfigArgument{
					"siteId": &gql.ArgumentConfig{Type: gql.Int},
					"search": &gql.ArgumentConfig{Type: gql.String},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					search, _ := p.Args["search"].(string)
					return svc.Notes.GetAllNotes(siteIDArg(p), search)
				},
			},
			"rockArtTypes": &gql.Field{
				Type: gql.NewList(vocabularyType),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					return svc.Types.GetAllRockArtTypes()
				},
			},
			"rockArtCategories": &gql.Field{
				Type: gql.NewList(vocabularyCategoryType),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					return svc.Categories.GetAllRockArtCategories()
				},
			},
		},
	})

	return gql.NewSchema(gql.SchemaConfig{Query: queryType})
}
