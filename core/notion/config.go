package notion

// Config holds configuration for the Notion API client.
type Config struct {
	// APIKey is the Notion integration token used as the bearer credential.
	APIKey string `mapstructure:"api_key" default:""`
	// DatabaseID is the id of the database holding the ranking pages.
	DatabaseID string `mapstructure:"database_id" default:""`
	// BaseURL is the root of the Notion REST API.
	BaseURL string `mapstructure:"base_url" default:"https://api.notion.com/v1"`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
