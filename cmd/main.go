package main

import (
	"context"
	"log"
	"os"

	"firestore-export-verify/internal/shared/logger"
	"firestore-export-verify/internal/verify"
	"firestore-export-verify/internal/verify/config"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load verifier configuration: %v", err)
	}

	appLogger := logger.NewLoggerWithConfig(cfg.LogLevel, cfg.LogFormat)

	module := verify.NewModule(cfg, os.Stdout, appLogger)
	report := module.Run(context.Background())

	if !report.Success {
		os.Exit(1)
	}
}
