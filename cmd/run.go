package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/traitsort/internal/app"
	"github.com/abhisek/traitsort/internal/bank"
	"github.com/abhisek/traitsort/internal/config"
	"github.com/abhisek/traitsort/internal/logging"
	"github.com/abhisek/traitsort/internal/session"
)

// env is what every command needs before it can do work.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	bank   *bank.Bank
}

// setup loads config, applies flag overrides, then builds the logger and
// the question bank.
func setup(cmd *cobra.Command) (*env, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cmd.Context(), path)
	if err != nil {
		return nil, err
	}

	if v, _ := cmd.Flags().GetString("bank"); v != "" {
		cfg.BankFile = v
	}
	if v, _ := cmd.Flags().GetString("log-file"); v != "" {
		cfg.LogFile = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg)
	if err != nil {
		return nil, err
	}

	b := bank.Default()
	if cfg.BankFile != "" {
		b, err = bank.LoadFile(cfg.BankFile)
		if err != nil {
			_ = logger.Sync()
			return nil, fmt.Errorf("load question bank: %w", err)
		}
		logger.Info("question bank loaded", zap.String("path", cfg.BankFile))
	}

	return &env{cfg: cfg, logger: logger, bank: b}, nil
}

// runApp builds a session and launches the TUI.
func runApp(cmd *cobra.Command, skipWelcome bool) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = e.logger.Sync() }()

	return app.Run(app.Options{
		Session:     session.New(e.bank, session.WithLogger(e.logger)),
		Logger:      e.logger,
		SkipWelcome: skipWelcome,
	})
}
