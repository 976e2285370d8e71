package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/formtrack/formtrack/internal/api"
	"github.com/formtrack/formtrack/internal/config"
	"github.com/formtrack/formtrack/internal/form"
	"github.com/formtrack/formtrack/internal/tui"
	"github.com/formtrack/formtrack/pkg/utils"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := utils.NewLogger(cfg.LoggerValue())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := os.MkdirAll(cfg.Export.OutputDir, 0o755); err != nil {
		logger.Error("Failed to create export directory", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Failed to create export directory: %v\n", err)
		os.Exit(1)
	}

	client := api.NewClient(api.Config{
		BaseURL:       cfg.API.BaseURL,
		PublicBaseURL: cfg.API.PublicBaseURL,
		Timeout:       cfg.API.Timeout,
	}, logger)

	identity := cfg.IdentityValue()
	logger.Info("Starting formtrack",
		zap.String("base_url", cfg.API.BaseURL),
		zap.Int64("user_id", identity.UserID),
		zap.String("role", string(identity.Role)))

	app := tui.App{
		Client:   client,
		Identity: identity,
		Limits: form.UploadLimits{
			MaxSize:           cfg.Upload.MaxSize,
			AllowedExtensions: cfg.Upload.AllowedExtensions,
		},
		ExportDir: cfg.Export.OutputDir,
		Logger:    logger,
	}

	if err := tui.Run(app); err != nil {
		logger.Error("Terminal UI exited with error", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
