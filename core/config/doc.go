// Package config loads the application configuration.
//
// Configuration comes from environment variables, optionally seeded from a
// .env file. Defaults are declared as 'default' struct tags on each section
// and registered in Viper via reflection, so every key is visible to
// AutomaticEnv (e.g. NOTION_DATABASE_ID maps to notion.database_id).
package config
