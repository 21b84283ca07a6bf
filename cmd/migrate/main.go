// Command migrate applies the SQL files under migrations/ in lexical order.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/task-forge/task_forge/internal/config"
	"github.com/task-forge/task_forge/internal/infra"
	"github.com/task-forge/task_forge/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel)
	ctx := context.Background()

	db, err := infra.NewPostgresPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("connect postgres", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	dir := "migrations"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		logger.Error("list migrations", "error", err)
		os.Exit(1)
	}
	sort.Strings(files)

	for _, file := range files {
		sql, err := os.ReadFile(file)
		if err != nil {
			logger.Error("read migration", "file", file, "error", err)
			os.Exit(1)
		}
		if _, err := db.Exec(ctx, string(sql)); err != nil {
			logger.Error("apply migration", "file", file, "error", err)
			os.Exit(1)
		}
		logger.Info("applied migration", "file", file)
	}
}
