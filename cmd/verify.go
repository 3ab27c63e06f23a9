package cmd

import (
	"context"
	"fmt"

	"rankings-sync/core/config"
	"rankings-sync/core/logger"
	"rankings-sync/core/notion"
	"rankings-sync/feature/rankings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// verifyCmd checks the configured credential/database pair without syncing.
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify the Notion credential and database id",
	Long: `Verify constructs the syncer against the configured Notion database
and reports whether the credential and database id are accepted. No page is
read or written.`,
	RunE: runVerify,
}

func init() {
	RootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	client, err := notion.NewClient(cfg.Notion)
	if err != nil {
		return err
	}

	if _, err := rankings.NewNotionSyncer(ctx, client, cfg.Notion.DatabaseID, l); err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}

	l.Info("Credential and database verified", zap.String("database_id", cfg.Notion.DatabaseID))
	return nil
}
