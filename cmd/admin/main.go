package main

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/browser"

	"oliadmin/internal/adapter/api"
	"oliadmin/internal/adapter/api/handler"
	"oliadmin/internal/adapter/api/router"
	"oliadmin/internal/adapter/repository"
	"oliadmin/internal/infrastructure/gitrepo"
	"oliadmin/internal/infrastructure/jsonstore"
	"oliadmin/internal/usecase"
	"oliadmin/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	store, err := jsonstore.New(filepath.Join(cfg.SiteDir, cfg.DBDir))
	if err != nil {
		log.Fatalf("Failed to open data directory: %v", err)
	}

	gitClient := gitrepo.NewClient(cfg.SiteDir, cfg.DBDir, time.Duration(cfg.CommitTimeout)*time.Second)

	productRepo := repository.NewJSONFileProductRepository(store)
	categoryRepo := repository.NewJSONFileCategoryRepository(store)
	settingsRepo := repository.NewJSONFileSettingsRepository(store)

	productUseCase := usecase.NewProductUseCase(productRepo, store)
	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo, store)
	settingsUseCase := usecase.NewSettingsUseCase(settingsRepo, store)
	checkpointUseCase := usecase.NewCheckpointUseCase(productRepo, categoryRepo, gitClient, gitClient, store)

	handler.Setup(productUseCase, categoryUseCase, settingsUseCase, checkpointUseCase)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	router.Setup(e)

	// Product images come straight from the site working copy, the panel
	// itself is a static page.
	e.Static("/files", cfg.SiteDir)
	e.Static("/", cfg.WebDir)

	addr := "127.0.0.1:" + cfg.ServerPort
	url := fmt.Sprintf("http://%s", addr)

	if cfg.OpenBrowser {
		go func() {
			time.Sleep(1500 * time.Millisecond)
			if err := browser.OpenURL(url); err != nil {
				log.Printf("Could not open browser: %v", err)
			}
		}()
	}

	log.Printf("Starting admin panel on %s...", url)
	if err := e.Start(addr); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
