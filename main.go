package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventhub/config"
	"eventhub/cron"
	"eventhub/database"
	vendorRepo "eventhub/database/repository/vendor"
	"eventhub/handlers"
	"eventhub/middleware"
	"eventhub/routes"
	"eventhub/services/cache"
	"eventhub/services/dynamic"
	"eventhub/services/filters"
	"eventhub/services/location"
	"eventhub/services/search"
	"eventhub/services/taxonomy"
	"eventhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Vendor repository.
	var repo vendorRepo.VendorRepository
	if config.AppConfig.UsesMemoryStore() {
		logger.Warn("main: serving vendors from the in-memory store")
		repo = vendorRepo.NewMemoryVendorRepo()
	} else {
		if err := database.InitDB(); err != nil {
			logger.Fatal("main: failed to initialize MongoDB", zap.Error(err))
		}
		repo = vendorRepo.NewMongoVendorRepo(logger)
	}

	// Shared cache for location and lookup results.
	var store cache.Store = cache.NewMemoryStore()
	if config.AppConfig.CacheBackend == "redis" {
		if err := utils.InitCache(); err != nil {
			logger.Fatal("main: failed to initialize redis cache", zap.Error(err))
		}
		store = cache.NewRedisStore(utils.GetCacheClient())
	}

	tx := taxonomy.Default()
	if path := config.AppConfig.TaxonomyFile; path != "" {
		loaded, err := taxonomy.LoadFile(path)
		if err != nil {
			logger.Fatal("main: failed to load taxonomy", zap.String("path", path), zap.Error(err))
		}
		tx = loaded
	}

	overpass := location.NewOverpassClient(
		location.WithMirrors(config.AppConfig.OverpassMirrors()...),
		location.WithMinInterval(config.AppConfig.OverpassMinInterval),
		location.WithTimeout(config.AppConfig.OverpassTimeout),
		location.WithCache(store),
		location.WithLogger(logger.Named("overpass")),
	)

	// services.
	searchService := search.NewDefaultSearchService(repo, logger.Named("search"))
	filterService := filters.NewDefaultFilterService(tx)
	locationService := location.NewDefaultLocationService(overpass)
	dynamicService := dynamic.NewDefaultDynamicService(repo, tx, store, logger.Named("dynamic"))

	handlerBundle := handlers.NewHandlerBundle(
		handlers.NewSearchHandler(searchService, filterService, tx, logger),
		handlers.NewLocationHandler(locationService, logger),
		handlers.NewDynamicHandler(dynamicService, logger),
	)

	prewarmWorker, err := cron.InitPrewarmWorker(config.AppConfig.PrewarmSchedule, overpass, logger.Named("prewarm"))
	if err != nil {
		logger.Fatal("main: failed to start prewarm worker", zap.Error(err))
	}

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	utils.StartHealthMonitor(monitorCtx, utils.GetCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlerBundle)

	srv := &http.Server{
		Addr:    "0.0.0.0:" + config.AppConfig.AppPort,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	stopMonitor()
	prewarmWorker.Shutdown()
	if err := database.Disconnect(ctx); err != nil {
		logger.Warn("main: mongo disconnect failed", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
