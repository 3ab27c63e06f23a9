package rankings

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"rankings-sync/core/storage"
	"rankings-sync/feature/history"
	"rankings-sync/feature/rankings/models"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// SyncReport summarizes one sync run.
type SyncReport struct {
	RunID         string `json:"run_id"`
	PagesArchived int    `json:"pages_archived"`
	PagesCreated  int    `json:"pages_created"`
	Success       bool   `json:"success"`
	Error         string `json:"error,omitempty"`
	ExecutionTime string `json:"execution_time"`
}

// Service orchestrates a sync run: snapshot the feed, run the syncer, record
// the outcome in the history ledger. History and snapshots are optional;
// their failures are logged and never fail the run.
type Service struct {
	syncer    Syncer
	history   *history.Store
	snapshots storage.Client
	bucket    string
	feedPath  string
	logger    *zap.Logger
}

// NewService creates a new rankings service. history and snapshots may be
// nil, disabling the corresponding side channel.
func NewService(syncer Syncer, hist *history.Store, snapshots storage.Client, bucket, feedPath string, logger *zap.Logger) *Service {
	return &Service{
		syncer:    syncer,
		history:   hist,
		snapshots: snapshots,
		bucket:    bucket,
		feedPath:  feedPath,
		logger:    logger,
	}
}

// SyncFeed loads the configured feed file and runs a full sync.
func (s *Service) SyncFeed(ctx context.Context) (*SyncReport, error) {
	players, err := LoadFeed(s.feedPath)
	if err != nil {
		return nil, err
	}
	return s.Sync(ctx, players)
}

// Sync runs a full-replace sync for the given players and reports on it.
// The returned report is non-nil even when the run fails.
func (s *Service) Sync(ctx context.Context, players []models.Player) (*SyncReport, error) {
	start := time.Now()
	runID := uuid.NewString()
	l := s.logger.With(zap.String("run_id", runID))

	l.Info("Sync started", zap.Int("players", len(players)))

	s.archiveSnapshot(ctx, l, runID, players)

	stats, err := s.syncer.UpdateDB(ctx, players)

	report := &SyncReport{
		RunID:         runID,
		PagesArchived: stats.Archived,
		PagesCreated:  stats.Created,
		Success:       err == nil,
		ExecutionTime: time.Since(start).String(),
	}
	if err != nil {
		report.Error = err.Error()
		l.Error("Sync failed", zap.Error(err),
			zap.Int("archived", stats.Archived),
			zap.Int("created", stats.Created))
	} else {
		l.Info("Sync completed",
			zap.Int("archived", stats.Archived),
			zap.Int("created", stats.Created),
			zap.String("execution_time", report.ExecutionTime))
	}

	s.recordRun(l, report, start)

	return report, err
}

// RecentRuns lists the newest recorded runs. Returns an empty slice when the
// history ledger is disabled.
func (s *Service) RecentRuns(n int) ([]history.SyncRun, error) {
	if s.history == nil {
		return []history.SyncRun{}, nil
	}
	return s.history.Recent(n)
}

// archiveSnapshot uploads the raw feed to object storage for later audit.
func (s *Service) archiveSnapshot(ctx context.Context, l *zap.Logger, runID string, players []models.Player) {
	if s.snapshots == nil {
		return
	}

	data, err := json.Marshal(players)
	if err != nil {
		l.Warn("Snapshot marshal failed", zap.Error(err))
		return
	}

	objName := "snapshots/" + runID + ".json"
	_, err = s.snapshots.PutObject(ctx, s.bucket, objName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		l.Warn("Snapshot upload failed", zap.String("object", objName), zap.Error(err))
		return
	}

	l.Info("Feed snapshot archived", zap.String("object", objName))
}

func (s *Service) recordRun(l *zap.Logger, report *SyncReport, start time.Time) {
	if s.history == nil {
		return
	}

	run := &history.SyncRun{
		RunID:         report.RunID,
		StartedAt:     start,
		DurationMS:    time.Since(start).Milliseconds(),
		PagesArchived: report.PagesArchived,
		PagesCreated:  report.PagesCreated,
		Success:       report.Success,
		Error:         report.Error,
	}
	if err := s.history.Record(run); err != nil {
		l.Warn("History record failed", zap.Error(err))
	}
}
