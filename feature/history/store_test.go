package history

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestStore_Record(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	store := NewStore(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `sync_runs`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	run := &SyncRun{
		RunID:         "run-1",
		StartedAt:     time.Now(),
		DurationMS:    1200,
		PagesArchived: 2,
		PagesCreated:  2,
		Success:       true,
	}
	require.NoError(t, store.Record(run))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Record_Failure(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	store := NewStore(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `sync_runs`").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := store.Record(&SyncRun{RunID: "run-2"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run-2")
}

func TestStore_Recent(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	store := NewStore(gormDB)

	started := time.Date(2026, time.August, 25, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "run_id", "started_at", "duration_ms",
		"pages_archived", "pages_created", "success", "error",
	}).
		AddRow(2, "run-2", started.Add(time.Hour), 900, 0, 0, false, "store rejected page").
		AddRow(1, "run-1", started, 1200, 2, 2, true, "")

	mock.ExpectQuery("SELECT \\* FROM `sync_runs` ORDER BY started_at DESC").
		WillReturnRows(rows)

	runs, err := store.Recent(2)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	assert.Equal(t, "run-2", runs[0].RunID)
	assert.False(t, runs[0].Success)
	assert.Equal(t, "run-1", runs[1].RunID)
	assert.True(t, runs[1].Success)
	assert.NoError(t, mock.ExpectationsWereMet())
}
