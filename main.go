package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/arrebolmedia/video-editor/config"
	"github.com/arrebolmedia/video-editor/handler"
	"github.com/arrebolmedia/video-editor/middleware"
	"github.com/arrebolmedia/video-editor/pkg/logger"
	"github.com/arrebolmedia/video-editor/service"
)

func main() {
	// Local overrides; the file is optional
	_ = godotenv.Load()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Init(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	slog.Info("configuration loaded successfully")

	// Storage: postgresql when reachable, in-memory otherwise
	store := service.OpenStore(&cfg.DB)

	// Signed-contract archive is optional; the app runs without it
	var archive *service.ArchiveService
	if cfg.Minio.Endpoint != "" {
		archive, err = service.NewArchiveService(&cfg.Minio)
		if err != nil {
			slog.Error("failed to initialize object storage", "error", err)
			os.Exit(1)
		}
		if err := archive.EnsureBucket(context.Background()); err != nil {
			slog.Error("failed to ensure archive bucket", "error", err)
			os.Exit(1)
		}
	}

	baserow := service.NewBaserowClient(&cfg.Baserow)
	syncer := service.NewSyncer(store, baserow)
	suggester := service.NewSuggester(rand.New(rand.NewSource(time.Now().UnixNano())))
	landings := service.NewLandingService(store, &service.DirSiteWriter{Root: cfg.Landing.SiteDir})

	scheduler := service.NewScheduler(syncer)
	if err := scheduler.Start(cfg.Baserow.SyncCron); err != nil {
		slog.Error("failed to start sync scheduler", "error", err)
		os.Exit(1)
	}
	defer scheduler.Stop()

	authHandler := handler.NewAuthHandler(cfg)
	projectHandler := handler.NewProjectHandler(store)
	sceneHandler := handler.NewSceneHandler(store)
	versionHandler := handler.NewVersionHandler(store, suggester, syncer)
	landingHandler := handler.NewLandingHandler(store, landings)
	contratoHandler := handler.NewContratoHandler(store, archive)
	reciboHandler := handler.NewReciboHandler(store)
	syncHandler := handler.NewSyncHandler(syncer)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(corsMiddleware())
	router.Use(noCacheMiddleware())
	router.Use(middleware.RateLimit(300, time.Minute))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"storage": store.Kind(),
		})
	})

	api := router.Group("/api")
	{
		api.POST("/login", authHandler.Login)
		api.GET("/users", authHandler.ListUsers)

		api.POST("/sync/baserow", syncHandler.SyncBaserow)
		api.POST("/sync/past-weddings", syncHandler.SyncPastWeddings)

		api.GET("/projects", projectHandler.List)
		api.POST("/projects", projectHandler.Create)
		api.GET("/projects/:id", projectHandler.Get)
		api.PUT("/projects/:id", projectHandler.Update)
		api.PUT("/projects/:id/assign", projectHandler.Assign)
		api.POST("/projects/:id/initialize-scenes", projectHandler.InitializeScenes)
		api.GET("/projects/:id/scenes", withParamAlias("id", "projectId", sceneHandler.List))
		api.POST("/projects/:id/scenes", withParamAlias("id", "projectId", sceneHandler.Create))
		api.GET("/projects/:id/versions", withParamAlias("id", "projectId", versionHandler.List))
		api.POST("/projects/:id/versions", withParamAlias("id", "projectId", versionHandler.Create))

		api.POST("/scenes", sceneHandler.Create)
		api.PUT("/scenes/:id", sceneHandler.Update)
		api.PATCH("/scenes/reorder", sceneHandler.Reorder)

		api.POST("/versions", versionHandler.Create)
		api.GET("/versions/:id/scenes", withParamAlias("id", "versionId", versionHandler.GetScenes))
		api.POST("/versions/:id/scenes", withParamAlias("id", "versionId", versionHandler.SetScenes))
		api.GET("/versions/:id/suggestions", versionHandler.GetSuggestions)
		api.POST("/versions/:id/suggestions", versionHandler.SaveSuggestions)
		api.PATCH("/versions/:id/status", versionHandler.UpdateStatus)

		api.GET("/landings", landingHandler.List)
		api.POST("/landings", landingHandler.Create)
		api.PUT("/landings/:id", landingHandler.Update)
		api.DELETE("/landings/:id", landingHandler.Delete)
		api.POST("/landings/seed", landingHandler.Seed)
		api.POST("/landings/:id/generate", landingHandler.Generate)
		api.POST("/landings/preview", landingHandler.Preview)

		api.GET("/contratos", contratoHandler.List)
		api.POST("/contratos", contratoHandler.Create)
		api.GET("/contratos/:id", contratoHandler.Get)
		api.PUT("/contratos/:id", contratoHandler.Update)
		api.DELETE("/contratos/:id", contratoHandler.Delete)
		api.POST("/contratos/:id/signed", contratoHandler.UploadSigned)
		api.GET("/contratos/:id/signed-url", contratoHandler.SignedURL)
		api.GET("/contratos/:id/pdf", contratoHandler.PDF)

		api.GET("/recibos", reciboHandler.List)
		api.POST("/recibos", reciboHandler.Create)
		api.GET("/recibos/:id", reciboHandler.Get)
		api.PUT("/recibos/:id", reciboHandler.Update)
		api.DELETE("/recibos/:id", reciboHandler.Delete)
		api.GET("/recibos/:id/pdf", reciboHandler.PDF)

		// Destructive bulk delete stays behind authentication
		admin := api.Group("/")
		admin.Use(middleware.AuthMiddleware(&cfg.Auth), middleware.RequireRole("admin"))
		admin.DELETE("/projects/all", projectHandler.DeleteAll)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Server.Port, "storage", store.Kind())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited gracefully")
}

// withParamAlias exposes a route's :id parameter under the name the handler
// expects, so the same handler serves both nesting styles.
func withParamAlias(from, to string, fn gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Params = append(c.Params, gin.Param{Key: to, Value: c.Param(from)})
		fn(c)
	}
}

// corsMiddleware handles CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// noCacheMiddleware keeps API responses out of intermediary caches
func noCacheMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
			c.Header("Pragma", "no-cache")
			c.Header("Expires", "0")
		}
		c.Next()
	}
}
