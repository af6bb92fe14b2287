// Command import-opening-stock seeds opening balances from a JSON
// export, writing one IN movement per valid row.
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
	seedPath := flag.String("file", "stock.json", "path to opening stock seed file")
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

	summary, err := importer.ImportOpeningStockFile(ctx, *seedPath)
	if err != nil {
		log.Fatalw("opening stock import failed", "file", *seedPath, "error", err)
	}

	fmt.Printf("opening stock import done: inserted=%d skipped=%d errors=%d\n",
		summary.Inserted, summary.Skipped(), summary.Failed())
	for _, e := range summary.Errors {
		fmt.Printf("  row %d (%s): %s\n", e.Row, e.Code, e.Error)
	}
}
