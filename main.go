package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/rockartdb/rockartdb-backend/src/config"
	"github.com/rockartdb/rockartdb-backend/src/controllers"
	"github.com/rockartdb/rockartdb-backend/src/db"
	"github.com/rockartdb/rockartdb-backend/src/forms"
	gqlschema "github.com/rockartdb/rockartdb-backend/src/graphql"
	"github.com/rockartdb/rockartdb-backend/src/middleware"
	"github.com/rockartdb/rockartdb-backend/src/models"
	"github.com/rockartdb/rockartdb-backend/src/routes"
	"github.com/rockartdb/rockartdb-backend/src/seed"
	"github.com/rockartdb/rockartdb-backend/src/services"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v\n", err)
	}

	var logger *zap.Logger
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Error building logger: %v\n", err)
	}
	defer logger.Sync()

	middleware.SetSecretKey(cfg.JWTSecret)

	// Database connection
	database, err := db.Connect(cfg)
	if err != nil {
		logger.Fatal("error connecting to database", zap.Error(err))
	}
	if err := db.Migrate(database); err != nil {
		logger.Fatal("error during auto-migration", zap.Error(err))
	}
	if cfg.Seed {
		seed.Seed(database, logger)
	}

	// Gin router setup
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.SetupCORS(cfg.CORSOrigins))

	// Services setup
	userService := services.NewUserService(database)
	siteService := services.NewSiteService(database)
	exportService := services.NewExportService(siteService)
	typeService := services.NewRockArtTypeService(database)
	categoryService := services.NewRockArtCategoryService(database)
	rockArtInfoService := services.NewRockArtInfoService(database)
	panelService := services.NewPanelService(database)
	photogrammetryService := services.NewPhotogrammetryService(database)
	noteService := services.NewNoteService(database)
	inventoryService := services.NewInventoryService(database)

	conditionService := services.NewSingletonTabService[models.RockArtConditionModel](database, nil)
	attributesService := services.NewSingletonTabService[models.RockArtAttributesModel](database, nil)
	anthroService := services.NewSingletonTabService[models.AnthropomorphInventoryModel](database, forms.ValidateAnthropomorphInventory)
	enigmaticService := services.NewSingletonTabService[models.EnigmaticInventoryModel](database, forms.ValidateEnigmaticInventory)
	zoomorphService := services.NewSingletonTabService[models.ZoomorphInventoryModel](database, forms.ValidateZoomorphInventory)
	generalIconService := services.NewSingletonTabService[models.GeneralIconographicAttributesModel](database, forms.ValidateGeneralIconographicAttributes)

	// Read query schema
	schema, err := gqlschema.New(gqlschema.Services{
		Sites:          siteService,
		RockArtInfo:    rockArtInfoService,
		Panels:         panelService,
		Notes:          noteService,
		Photogrammetry: photogrammetryService,
		Types:          typeService,
		Categories:     categoryService,
		Conditions:     conditionService,
		Attributes:     attributesService,
		Anthro:         anthroService,
		Enigmatic:      enigmaticService,
		Zoomorph:       zoomorphService,
		GeneralIcon:    generalIconService,
	})
	if err != nil {
		logger.Fatal("error building query schema", zap.Error(err))
	}

	// Routes setup
	routes.SetupUserRoutes(router, userService)
	routes.SetupSiteRoutes(router, siteService, exportService)
	routes.SetupRockArtTypeRoutes(router, typeService)
	routes.SetupRockArtCategoryRoutes(router, categoryService)
	routes.SetupRockArtInfoRoutes(router, rockArtInfoService)
	routes.SetupPanelRoutes(router, panelService)
	routes.SetupPhotogrammetryRoutes(router, photogrammetryService)
	routes.SetupNoteRoutes(router, noteService)
	routes.SetupTabRoutes(router, "/api/rock-art-conditions", conditionService)
	routes.SetupTabRoutes(router, "/api/rock-art-attributes", attributesService)
	routes.SetupTabRoutes(router, "/api/anthropomorph-inventories", anthroService)
	routes.SetupTabRoutes(router, "/api/enigmatic-inventories", enigmaticService)
	routes.SetupTabRoutes(router, "/api/zoomorph-inventories", zoomorphService)
	routes.SetupTabRoutes(router, "/api/general-iconographic-attributes", generalIconService)
	routes.SetupGraphQLRoutes(router, schema)

	wizardController := controllers.NewWizardController(
		siteService,
		rockArtInfoService,
		panelService,
		conditionService,
		attributesService,
		anthroService,
		inventoryService,
		photogrammetryService,
		noteService,
	)
	routes.SetupWizardRoutes(router, wizardController)

	logger.Info("server starting", zap.String("host", cfg.ServerHost), zap.String("driver", cfg.DBDriver))

	// Server run
	if err := router.Run(cfg.ServerHost); err != nil {
		logger.Fatal("error starting server", zap.String("host", cfg.ServerHost), zap.Error(err))
	}
}
