package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/gcbaptista/smart-selector/api"
	"github.com/gcbaptista/smart-selector/config"
	"github.com/gcbaptista/smart-selector/internal/analytics"
	"github.com/gcbaptista/smart-selector/internal/association"
)

func main() {
	// Define command-line flags
	var (
		help       = flag.Bool("help", false, "Show help message")
		version    = flag.Bool("version", false, "Show version information")
		configPath = flag.String("config", config.DefaultPath, "Path to the TOML config file")
		port       = flag.String("port", "", "Port to run the server on (overrides the config file)")
		seed       = flag.Int64("seed", 0, "Seed for the tie-break random source (0 = time based)")
	)

	flag.Parse()

	// Handle help flag
	if *help {
		fmt.Printf("Smart Selector - associates phrases with the file names that best match them\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  %s                          # Start server on default port 5555\n", os.Args[0])
		fmt.Printf("  %s --port 9000              # Start server on port 9000\n", os.Args[0])
		fmt.Printf("  %s --seed 42                # Repeatable tie-breaks\n", os.Args[0])
		return
	}

	// Handle version flag
	if *version {
		fmt.Printf("Smart Selector v1.0.0\n")
		fmt.Printf("Keyword-based file association with stopword filtering and random tie-breaks\n")
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *port != "" {
		cfg.Server.Port = *port
	}
	if *seed != 0 {
		cfg.Matcher.Seed = *seed
	}

	if cfg.Server.LogFile != "" {
		logFile := &lumberjack.Logger{
			Filename:   cfg.Server.LogFile,
			MaxSize:    cfg.Server.LogMaxSizeMB,
			MaxBackups: 3,
		}
		defer logFile.Close()

		logOutput := io.MultiWriter(os.Stderr, logFile)
		log.SetOutput(logOutput)
		gin.DefaultWriter = io.MultiWriter(os.Stdout, logFile)
		gin.DefaultErrorWriter = logOutput
	}

	if err := run(cfg); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// run serves until SIGINT or SIGTERM, then shuts the server down within the
// configured shutdown timeout.
func run(cfg *config.Config) error {
	associator := association.NewService(cfg.Matcher, nil)
	tracker := analytics.NewService()
	router := api.NewRouter(cfg.Server, associator, tracker)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("Starting server on port %s...", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Printf("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
		log.Printf("Server shut down cleanly")
		return nil
	})

	return g.Wait()
}
