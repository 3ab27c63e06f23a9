// Package database manages the optional MySQL connection used by the
// sync-run history ledger.
//
// The connection is established through GORM with conservative pool settings
// and an initial ping with timeout. Syncing works without it: when the
// database is disabled or unreachable the application logs a warning and
// runs without recording history.
package database
