package cmd

import (
	"github.com/leavedesk/leavedesk-mcp/internal/store"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the schema and load the demo dataset without serving",
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()

			config := loadConfig()
			logger, err := newLogger(config.LogLevel)
			if err != nil {
				return err
			}
			defer logger.Sync()
			zap.ReplaceGlobals(logger)

			st, err := store.Open(config.DBPath, logger)
			if err != nil {
				return err
			}
			defer st.Close()

			ctx := cmd.Context()
			if err := st.Setup(ctx); err != nil {
				return err
			}
			if err := st.Seed(ctx); err != nil {
				return err
			}

			logger.Info("database ready", zap.String("db_path", config.DBPath))
			return nil
		},
	}
}
