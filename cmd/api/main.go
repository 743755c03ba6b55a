package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"workforce/internal/adapter/db"
	httpadapter "workforce/internal/adapter/http"
	"workforce/internal/adapter/http/handlers"
	httpmiddleware "workforce/internal/adapter/http/middleware"
	"workforce/internal/adapter/store"
	"workforce/internal/app/audit"
	"workforce/internal/app/service"
	"workforce/internal/config"
	"workforce/internal/core/ports"
	"workforce/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()

	var taskStore ports.TaskStore
	var sqlDB *sqlx.DB
	switch cfg.StoreDriver {
	case config.StoreDriverMysql:
		sqlDB, err = db.ConnectDB(cfg)
		if err != nil {
			logger.Fatal("failed to connect to mysql", zap.Error(err))
		}
		defer func() {
			if err := sqlDB.Close(); err != nil {
				logger.Warn("failed to close mysql connection", zap.Error(err))
			}
		}()
		if err := db.EnsureSchema(sqlDB); err != nil {
			logger.Fatal("failed to apply schema", zap.Error(err))
		}
		taskStore = db.NewTaskStore(sqlDB)
	case config.StoreDriverMemory:
		memStore := store.NewTaskStore()
		if cfg.SeedDemoData {
			memStore.Seed()
		}
		taskStore = memStore
	default:
		logger.Fatal("unknown store driver", zap.String("driver", cfg.StoreDriver))
	}

	taskService := service.NewTaskService(taskStore, audit.NewComposer(time.Now))

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if cfg.TrustedProxies != nil {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("failed to set trusted proxies", zap.Error(err))
		}
	}

	healthHandler := handlers.NewHealthHandler(sqlDB)
	taskHandler := handlers.NewTaskHandler(taskService)
	httpadapter.RegisterRoutes(r, healthHandler, taskHandler)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr), zap.String("store", cfg.StoreDriver))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
