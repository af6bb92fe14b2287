// Package v1 provides the HTTP API.
package v1

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tonkho/internal/domain/importing"
	"tonkho/internal/domain/ledger"
	"tonkho/internal/domain/materials"
	"tonkho/internal/domain/reports"
	"tonkho/internal/infrastructure/http/v1/handlers"
	"tonkho/internal/infrastructure/http/v1/middleware"
	"tonkho/internal/infrastructure/storage/postgres"
	"tonkho/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	// Pool is the database connection pool (for health checks).
	Pool *postgres.Pool

	// TxManager provides request-scoped transactions for all repos.
	TxManager *postgres.TxManager

	// Logger for request logging.
	Logger *logger.Logger

	// AdminKey guards the destructive reset endpoint.
	AdminKey string

	// MetricsEnabled exposes /metrics and request metrics.
	MetricsEnabled bool
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	if cfg.MetricsEnabled {
		router.Use(middleware.Metrics())
	}
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
	}))
	router.Use(middleware.ErrorHandler())

	// Repositories share one TxManager (explicit injection, no globals)
	materialRepo := postgres.NewMaterialRepo(cfg.TxManager)
	ledgerRepo := postgres.NewLedgerRepo(cfg.TxManager)
	reportRepo := postgres.NewReportRepo(cfg.TxManager)

	// Services
	materialService := materials.NewService(materialRepo, cfg.TxManager)
	ledgerService := ledger.NewService(ledgerRepo, materialRepo, cfg.TxManager)
	reportService := reports.NewService(reportRepo, cfg.TxManager)
	importService := importing.NewService(materialRepo, ledgerService, cfg.TxManager)

	// Handlers
	base := handlers.NewBaseHandler()
	materialsHandler := handlers.NewMaterialsHandler(base, materialService)
	stockHandler := handlers.NewStockHandler(base, ledgerService, reportService)
	importsHandler := handlers.NewImportsHandler(base, importService)
	adminHandler := handlers.NewAdminHandler(base, ledgerService, cfg.AdminKey)
	healthHandler := handlers.NewHealthHandler(cfg.Pool.Unwrap())

	// Routes
	router.GET("/materials", materialsHandler.List)
	router.POST("/in", stockHandler.StockIn)
	router.POST("/out", stockHandler.StockOut)
	router.GET("/stock", stockHandler.GetStock)
	router.GET("/history", stockHandler.GetHistory)
	router.GET("/report/full", stockHandler.GetFullReport)

	router.POST("/import-excel", importsHandler.ImportExcel)
	router.GET("/download/template-import", materialsHandler.DownloadTemplate)
	router.GET("/download/materials", materialsHandler.DownloadMaterials)

	router.POST("/admin/clear-data", adminHandler.ClearData)

	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
	}

	if cfg.MetricsEnabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	return router
}
