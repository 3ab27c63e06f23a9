package cmd

import (
	"context"
	"fmt"

	"rankings-sync/core/config"
	"rankings-sync/core/database"
	"rankings-sync/core/logger"
	"rankings-sync/core/notion"
	"rankings-sync/core/storage"
	"rankings-sync/feature/history"
	"rankings-sync/feature/rankings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var feedPath string

// syncCmd runs one full-replace synchronization from the feed file.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Replace the Notion database contents with the current ranking",
	Long: `Sync reads the ranking feed file, archives every page currently in
the target Notion database and inserts one fresh page per player, in feed
order.

The run is not transactional: if an insert fails after archival, the
database is left with fewer pages than the ranking and the run reports
failure. Re-running the sync repairs the state.`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringVar(&feedPath, "feed", "", "Path to the ranking feed JSON (defaults to FEED_PATH)")
	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if feedPath != "" {
		cfg.Feed.Path = feedPath
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	svc, err := buildService(ctx, cfg, l)
	if err != nil {
		return err
	}

	report, err := svc.SyncFeed(ctx)
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	l.Info("Sync report",
		zap.String("run_id", report.RunID),
		zap.Int("pages_archived", report.PagesArchived),
		zap.Int("pages_created", report.PagesCreated),
		zap.String("execution_time", report.ExecutionTime))

	return nil
}

// buildService wires the syncer with its optional side channels (history
// ledger, feed snapshots) from configuration.
func buildService(ctx context.Context, cfg *config.Config, l *zap.Logger) (*rankings.Service, error) {
	client, err := notion.NewClient(cfg.Notion)
	if err != nil {
		return nil, err
	}

	// Verifies the credential/database pair; an AuthError here is fatal.
	syncer, err := rankings.NewNotionSyncer(ctx, client, cfg.Notion.DatabaseID, l)
	if err != nil {
		return nil, fmt.Errorf("failed to verify notion database: %w", err)
	}

	var hist *history.Store
	if cfg.Database.Enabled {
		if db, err := database.Connect(cfg.Database); err != nil {
			l.Warn("History database unavailable, continuing without ledger", zap.Error(err))
		} else {
			hist = history.NewStore(db)
			if err := hist.Migrate(); err != nil {
				l.Warn("History migration failed, continuing without ledger", zap.Error(err))
				hist = nil
			}
		}
	}

	var snapshots storage.Client
	if cfg.Storage.Enabled {
		if sc, err := storage.NewClient(cfg.Storage); err != nil {
			l.Warn("Snapshot storage unavailable, continuing without snapshots", zap.Error(err))
		} else {
			snapshots = sc
		}
	}

	return rankings.NewService(syncer, hist, snapshots, cfg.Storage.Bucket, cfg.Feed.Path, l), nil
}
