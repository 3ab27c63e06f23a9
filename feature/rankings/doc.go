// Package rankings synchronizes a player ranking into the page store.
//
// The reconciliation is full-replace: every page currently in the target
// database is archived, then one fresh page per player is inserted in feed
// order. There is no diffing, no partial update of individual pages, and no
// retry. If archival fails the run aborts before inserting anything, so
// stale and fresh pages never coexist; if an insert fails the run aborts
// with the store holding fewer pages than the input ranking, an accepted
// consequence of the design.
//
// The Syncer interface is the capability the rest of the application depends
// on. NotionSyncer is the store-backed implementation; it verifies the
// credential/database pair once at construction and is stateless afterwards
// apart from that pair. Calls are issued strictly sequentially; concurrent
// UpdateDB calls on one instance are not supported.
//
// Presentation rules (rank to emoji, country code to label) are pure
// functions, usable without a syncer instance.
package rankings
