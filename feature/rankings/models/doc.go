// Package models defines the data structures exchanged between the ranking
// feed, the syncer, and the page store.
package models
