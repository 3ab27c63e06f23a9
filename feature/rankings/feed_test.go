package rankings

import (
	"os"
	"path/filepath"
	"testing"

	"rankings-sync/feature/rankings/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ranking.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFeed(t *testing.T) {
	path := writeFeed(t, `[
		{"name": "Alice", "rank": 1, "country": "FRA"},
		{"name": "Bob", "rank": 2, "country": "USA"},
		{"name": "Carol", "rank": 3}
	]`)

	players, err := LoadFeed(path)
	require.NoError(t, err)

	assert.Equal(t, []models.Player{
		{Name: "Alice", Rank: 1, Country: "FRA"},
		{Name: "Bob", Rank: 2, Country: "USA"},
		{Name: "Carol", Rank: 3},
	}, players)
}

func TestLoadFeed_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "invalid json", content: `{not json`, wantErr: "parsing feed"},
		{name: "empty name", content: `[{"name": "", "rank": 1}]`, wantErr: "name is empty"},
		{name: "zero rank", content: `[{"name": "Alice", "rank": 0}]`, wantErr: "rank must be positive"},
		{name: "negative rank", content: `[{"name": "Alice", "rank": -2}]`, wantErr: "rank must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFeed(writeFeed(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFeed(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})
}
