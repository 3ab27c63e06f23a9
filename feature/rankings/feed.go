package rankings

import (
	"encoding/json"
	"fmt"
	"os"

	"rankings-sync/feature/rankings/models"
)

// LoadFeed reads an ordered player ranking from a JSON file. The feed itself
// is produced externally (scraper); this is the whole of its contract: a
// JSON array of players with non-empty names and positive ranks.
func LoadFeed(path string) ([]models.Player, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading feed: %w", err)
	}

	var players []models.Player
	if err := json.Unmarshal(data, &players); err != nil {
		return nil, fmt.Errorf("parsing feed %s: %w", path, err)
	}

	for i, p := range players {
		if p.Name == "" {
			return nil, fmt.Errorf("feed entry %d: name is empty", i)
		}
		if p.Rank <= 0 {
			return nil, fmt.Errorf("feed entry %d (%s): rank must be positive, got %d", i, p.Name, p.Rank)
		}
	}

	return players, nil
}
