package main

import (
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"seedwizard/config"
	"seedwizard/database"
	"seedwizard/pkg/ai"
	"seedwizard/pkg/middleware"
	"seedwizard/pkg/scraper"
	"seedwizard/router"

	authCtrlImp "seedwizard/pkg/auth/controllerImp"
	calCtrlImp "seedwizard/pkg/calendar/controllerImp"
	extractCtrlImp "seedwizard/pkg/extract/controllerImp"
	healthCtrlImp "seedwizard/pkg/health/controllerImp"
	locCtrlImp "seedwizard/pkg/location/controllerImp"
	locRepoImp "seedwizard/pkg/location/repositoryImp"
	locSvcImp "seedwizard/pkg/location/serviceImp"
	profCtrlImp "seedwizard/pkg/profile/controllerImp"
	profRepoImp "seedwizard/pkg/profile/repositoryImp"
	seedCtrlImp "seedwizard/pkg/seeds/controllerImp"
	seedRepoImp "seedwizard/pkg/seeds/repositoryImp"
)

func main() {
	// 1) Config
	cfg := config.Load()
	if loc, err := time.LoadLocation(cfg.Timezone); err == nil {
		time.Local = loc
	} else {
		log.Printf("[tz] bad TZ %q, keeping system zone: %v", cfg.Timezone, err)
	}

	// 2) DB (sqlite) + automigrate + static frost table
	db := database.OpenSQLite(cfg.DBPath)
	database.SeedFrostTable(db, cfg.ZipFrostCSV, cfg.ZipFrostXLSX)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Logger())
	e.Validator = middleware.NewValidator()

	// Static frontend (optional)
	e.Static("/static", "static")
	if _, err := os.Stat("static/index.html"); err == nil {
		e.File("/", "static/index.html")
	}

	// 4) LLM (mock fallback when no key is configured)
	var llm ai.Client
	if cfg.LLMEndpoint != "" && cfg.LLMAPIKey != "" {
		llm = ai.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel)
	} else {
		log.Printf("[llm] no endpoint/key configured, using mock extractor")
		llm = ai.NewMock()
	}

	// 5) Repos / services / controllers
	seedRepo := seedRepoImp.New(db)
	profRepo := profRepoImp.New(db)
	locRepo := locRepoImp.New(db)

	seedCtrl := seedCtrlImp.New(seedRepo)
	profCtrl := profCtrlImp.New(profRepo)
	locCtrl := locCtrlImp.New(locSvcImp.New(locRepo))
	extractCtrl := extractCtrlImp.New(scraper.New(cfg.ScraperMaxBytes), llm)
	calCtrl := calCtrlImp.New(seedRepo, profRepo, cfg.PlantableWindowWeeks)
	authCtrl := authCtrlImp.New()
	hCtrl := healthCtrlImp.New(db)

	// 6) Router
	r := router.New(e, seedCtrl, profCtrl, locCtrl, extractCtrl, calCtrl, authCtrl, hCtrl)

	// 7) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
