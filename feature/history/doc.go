// Package history records sync runs in the optional MySQL ledger.
//
// Each run is stored with its counters and outcome so operators can see what
// a failed run did before aborting. The ledger is best-effort: persistence
// failures are logged and never fail a sync.
package history
