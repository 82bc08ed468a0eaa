package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jornada-hq/jornada/internal/cli"
	"github.com/jornada-hq/jornada/internal/db"
	"github.com/jornada-hq/jornada/internal/erp"
	"github.com/jornada-hq/jornada/internal/queue"
	"github.com/jornada-hq/jornada/internal/repository"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.jornada/jornada.db
	dbPath := os.Getenv("JORNADA_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".jornada", "jornada.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	queueRepo := repository.NewSQLiteQueueRepo(database)
	cacheRepo := repository.NewSQLiteEventCacheRepo(database)

	app := &cli.App{
		Queue: queue.New(queueRepo, nil),
		Cache: cacheRepo,
	}

	// Wire the ERP client only when an endpoint is configured; queue capture
	// and cycle reconstruction work fully offline without it.
	erpCfg := erp.LoadConfig()
	if erpCfg.Configured() {
		var observer erp.Observer = erp.NoopObserver{}
		if isatty.IsTerminal(os.Stderr.Fd()) {
			observer = erp.NewLogObserver(os.Stderr)
		}
		client := erp.NewClient(erpCfg, observer)
		app.Submitter = client
		app.History = client
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
