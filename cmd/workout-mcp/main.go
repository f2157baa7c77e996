// workout-mcp serves the exercise log to MCP clients over stdio. It can read
// straight from PostgreSQL or, with -server, proxy a remote workout tracker
// through its REST API.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/claude/workout-tracker/internal/config"
	"github.com/claude/workout-tracker/internal/mcp"
	"github.com/claude/workout-tracker/internal/storage"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file (local mode)")
	serverURL := flag.String("server", "", "remote tracker base URL; uses the REST API instead of the database")
	token := flag.String("token", "", "bearer token for the remote tracker (remote mode)")
	flag.Parse()

	// Logs go to stderr: stdout is the MCP transport.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var ds mcp.DataSource

	if *serverURL != "" {
		ds = mcp.NewHTTPClient(*serverURL, *token)
		log.Info("mcp starting", "mode", "remote", "server", *serverURL)
	} else {
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Error("failed to load config", "error", err)
			os.Exit(1)
		}

		db, err := storage.New(context.Background(), cfg.Database.DSN())
		if err != nil {
			log.Error("failed to connect database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		ds = db
		log.Info("mcp starting", "mode", "local")
	}

	srv := mcp.New(ds, Version, log)
	if err := server.ServeStdio(srv); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
