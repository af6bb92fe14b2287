// Command import-materials seeds the materials catalog from a JSON
// export. Safe to re-run: existing codes are skipped.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"tonkho/internal/config"
	appctx "tonkho/internal/core/context"
	"tonkho/internal/domain/importing"
	"tonkho/internal/domain/ledger"
	"tonkho/internal/infrastructure/storage/postgres"
	"tonkho/pkg/logger"
)

func main() {
	configPath := flag.String("config", "config/example.yaml", "path to config file")
	seedPath := flag.String("file", "data.json", "path to catalog seed file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{Level: cfg.App.LogLevel})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := logger.WithLogger(context.Background(), log)
	ctx = appctx.WithTrace(ctx, appctx.NewTraceContext())

	if err := postgres.Migrate(ctx, cfg.Postgres.DSN); err != nil {
		log.Fatalw("migrations failed", "error", err)
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(cfg.Postgres.DSN))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)
	materialRepo := postgres.NewMaterialRepo(txManager)
	ledgerRepo := postgres.NewLedgerRepo(txManager)
	ledgerService := ledger.NewService(ledgerRepo, materialRepo, txManager)
	importer := importing.NewService(materialRepo, ledgerService, txManager)

	summary, err := importer.ImportCatalogFile(ctx, *seedPath)
	if err != nil {
		log.Fatalw("catalog import failed", "file", *seedPath, "error", err)
	}

	fmt.Printf("catalog import done: inserted=%d skipped=%d errors=%d\n",
		summary.Inserted, summary.Skipped(), summary.Failed())
	for _, e := range summary.Errors {
		fmt.Printf("  row %d (%s): %s\n", e.Row, e.Code, e.Error)
	}
}
