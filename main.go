package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Siyabonga-Makhubu/Survey-Assessment/cliparse"
	"github.com/Siyabonga-Makhubu/Survey-Assessment/db"
	"github.com/Siyabonga-Makhubu/Survey-Assessment/middleware"
	"github.com/Siyabonga-Makhubu/Survey-Assessment/router"
	"github.com/Siyabonga-Makhubu/Survey-Assessment/survey"
)

func main() {
	var err error

	// A missing .env is fine; real env vars and flags still apply
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not load .env", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	dialect, err := db.ParseDialect(cfg.DatabaseType)
	if err != nil {
		slog.Error("invalid database type", "error", err)
		os.Exit(1)
	}

	// Connect, retrying until the database answers or DBWait elapses
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbConn, err := db.Open(ctx, dialect, cfg.DatabaseURL, cfg.DBWait)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn, dialect); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "dialect", dialect)

	svc := survey.NewService(db.NewSQLStore(dbConn))
	mux := router.NewRouter(svc)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(cfg.CORSOrigin)(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	go func() {
		// Wait for Ctrl-C signal
		<-ctx.Done()
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
