package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/leavedesk/leavedesk-mcp/internal/server"
	"github.com/leavedesk/leavedesk-mcp/pkg/types"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RootCmd is the root Cobra command that gets called from the main func.
// All other sub-commands should be registered here.
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leavedesk-mcp",
		Short: "leavedesk-mcp is an MCP server for a mock leave management system",
		Long: `leavedesk-mcp serves leave management tools over the Model Context Protocol,
backed by a local SQLite database of employees, leave balances and leave
requests. Running it with no arguments serves MCP over stdio, which is what
MCP client configurations expect.`,
		SilenceUsage: true,
		RunE:         serveCmdE,
	}

	cmd.PersistentFlags().String("db-path", "leave_management.db", "Path to the SQLite database file")
	cmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("transport", types.TransportStdio, "MCP transport (stdio or http)")
	cmd.PersistentFlags().String("http-addr", ":8937", "Listen address for the http transport")
	cmd.PersistentFlags().Bool("seed", true, "Seed an empty database with the demo dataset")

	viper.BindPFlag("db-path", cmd.PersistentFlags().Lookup("db-path"))
	viper.BindPFlag("log-level", cmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("transport", cmd.PersistentFlags().Lookup("transport"))
	viper.BindPFlag("http-addr", cmd.PersistentFlags().Lookup("http-addr"))
	viper.BindPFlag("seed", cmd.PersistentFlags().Lookup("seed"))

	viper.SetEnvPrefix("LEAVEDESK")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	cmd.AddCommand(
		seedCmd(),
		versionCmd(),
	)

	return cmd
}

func loadConfig() *types.Config {
	return &types.Config{
		DBPath:    viper.GetString("db-path"),
		LogLevel:  viper.GetString("log-level"),
		Transport: viper.GetString("transport"),
		HTTPAddr:  viper.GetString("http-addr"),
		Seed:      viper.GetBool("seed"),
	}
}

// newLogger builds the process logger. Logs go to stderr; stdout carries the
// MCP stdio framing and must stay clean.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}

func serveCmdE(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	config := loadConfig()
	logger, err := newLogger(config.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	srv := server.NewLeavedeskServer(config, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ctx)
	}()

	var serveErr error
	select {
	case serveErr = <-errCh:
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("shutdown did not complete cleanly", zap.Error(err))
	}

	if serveErr != nil && !errors.Is(serveErr, context.Canceled) && !errors.Is(serveErr, http.ErrServerClosed) {
		return serveErr
	}
	return nil
}
