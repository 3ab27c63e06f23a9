package history

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// SyncRun is one recorded synchronization attempt.
type SyncRun struct {
	ID            uint      `gorm:"primaryKey" json:"-"`
	RunID         string    `gorm:"size:36;uniqueIndex" json:"run_id"`
	StartedAt     time.Time `json:"started_at"`
	DurationMS    int64     `json:"duration_ms"`
	PagesArchived int       `json:"pages_archived"`
	PagesCreated  int       `json:"pages_created"`
	Success       bool      `json:"success"`
	Error         string    `gorm:"size:1024" json:"error,omitempty"`
}

// TableName sets the table name for GORM.
func (SyncRun) TableName() string {
	return "sync_runs"
}

// Store persists sync-run records.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store on the given connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the sync_runs table.
func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(&SyncRun{}); err != nil {
		return fmt.Errorf("migrating sync_runs: %w", err)
	}
	return nil
}

// Record persists one sync run.
func (s *Store) Record(run *SyncRun) error {
	if err := s.db.Create(run).Error; err != nil {
		return fmt.Errorf("recording sync run %s: %w", run.RunID, err)
	}
	return nil
}

// Recent returns the newest n runs, newest first.
func (s *Store) Recent(n int) ([]SyncRun, error) {
	var runs []SyncRun
	err := s.db.Order("started_at DESC").Limit(n).Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("listing sync runs: %w", err)
	}
	return runs, nil
}
