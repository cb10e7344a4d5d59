package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/Ak270/grid-trader-pro/internal/api/handlers"
	"github.com/Ak270/grid-trader-pro/internal/api/middleware"
	"github.com/Ak270/grid-trader-pro/internal/config"
	"github.com/Ak270/grid-trader-pro/internal/engine"
	"github.com/Ak270/grid-trader-pro/internal/pricing"
	"github.com/Ak270/grid-trader-pro/internal/store"
)

func main() {
	settings := config.LoadSettings()

	level, err := zerolog.ParseLevel(settings.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()

	// Asset config: YAML file when given, otherwise the standard four-asset
	// setup.
	cfg := config.Default()
	if settings.ConfigPath != "" {
		cfg, err = config.Load(settings.ConfigPath)
		if err != nil {
			log.Fatalf("Failed to load config %s: %v", settings.ConfigPath, err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(settings.DBPath), 0o755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}
	tradeStore, err := store.Open(settings.DBPath)
	if err != nil {
		log.Fatalf("Failed to open trade store: %v", err)
	}
	defer tradeStore.Close()

	prices := pricing.NewTickerClient(settings.PriceBaseURL, settings.QuoteAsset, settings.PriceCacheTTL)

	assets := make(map[string]engine.AssetConfig, len(cfg.Assets))
	startCapital := 0.0
	for name, ac := range cfg.Assets {
		assets[name] = engine.AssetConfig{
			InitialCapital: ac.InitialCapital,
			GridSpacing:    ac.GridSpacing,
			GridLevels:     ac.GridLevels,
		}
		startCapital += ac.InitialCapital
	}
	eng, err := engine.New(assets, prices, tradeStore, logger)
	if err != nil {
		log.Fatalf("Failed to build engine: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// The loop runs for the lifetime of the process; start/stop over HTTP
	// only toggles whether cycles execute.
	go eng.RunLoop(ctx, settings.CycleInterval, settings.Cooldown)

	if settings.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler())

	statusHandler := handlers.NewStatusHandler(eng)
	tradesHandler := handlers.NewTradesHandler(tradeStore)
	dashboardHandler := handlers.NewDashboardHandler(eng, tradeStore, startCapital)
	backtestHandler := handlers.NewBacktestHandler()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	{
		api.GET("/status", statusHandler.GetStatus)
		api.POST("/start", statusHandler.Start)
		api.POST("/stop", statusHandler.Stop)

		api.GET("/trades", tradesHandler.ListTrades)
		api.GET("/dashboard", dashboardHandler.GetDashboard)

		api.POST("/backtest", backtestHandler.RunBacktest)
	}

	addr := fmt.Sprintf(":%s", settings.Port)
	log.Printf("Starting API server on %s (assets: %v)", addr, cfg.AssetNames())
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
