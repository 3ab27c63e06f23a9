package rankings

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T, svc *Service) *fiber.App {
	t.Helper()
	app := fiber.New()
	NewHandler(svc).RegisterRoutes(app)
	return app
}

func TestHandler_Sync(t *testing.T) {
	feedPath := filepath.Join(t.TempDir(), "ranking.json")
	require.NoError(t, os.WriteFile(feedPath, []byte(`[{"name": "Alice", "rank": 1}]`), 0o644))

	svc := NewService(&fakeSyncer{stats: Stats{Archived: 1, Created: 1}}, nil, nil, "", feedPath, zap.NewNop())
	app := newTestApp(t, svc)

	res, err := app.Test(httptest.NewRequest("POST", "/rankings/sync", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	var report SyncReport
	require.NoError(t, json.NewDecoder(res.Body).Decode(&report))
	assert.True(t, report.Success)
	assert.Equal(t, 1, report.PagesCreated)
}

func TestHandler_Sync_BadFeed(t *testing.T) {
	svc := NewService(&fakeSyncer{}, nil, nil, "", filepath.Join(t.TempDir(), "missing.json"), zap.NewNop())
	app := newTestApp(t, svc)

	res, err := app.Test(httptest.NewRequest("POST", "/rankings/sync", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, res.StatusCode)
}

func TestHandler_Sync_StoreFailure(t *testing.T) {
	feedPath := filepath.Join(t.TempDir(), "ranking.json")
	require.NoError(t, os.WriteFile(feedPath, []byte(`[{"name": "Alice", "rank": 1}]`), 0o644))

	svc := NewService(&fakeSyncer{err: assert.AnError}, nil, nil, "", feedPath, zap.NewNop())
	app := newTestApp(t, svc)

	res, err := app.Test(httptest.NewRequest("POST", "/rankings/sync", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, res.StatusCode)

	var report SyncReport
	require.NoError(t, json.NewDecoder(res.Body).Decode(&report))
	assert.False(t, report.Success)
	assert.NotEmpty(t, report.Error)
}

func TestHandler_Runs_NoLedger(t *testing.T) {
	svc := NewService(&fakeSyncer{}, nil, nil, "", "", zap.NewNop())
	app := newTestApp(t, svc)

	res, err := app.Test(httptest.NewRequest("GET", "/rankings/runs", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	var body struct {
		Runs []any `json:"runs"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Empty(t, body.Runs)
}

func TestFeature_Load(t *testing.T) {
	svc := NewService(&fakeSyncer{}, nil, nil, "", "", zap.NewNop())
	feature := NewFeature(svc)

	assert.Equal(t, "rankings", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	assert.NoError(t, feature.Load(app))
}
