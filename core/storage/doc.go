// Package storage provides the object storage client used for feed
// snapshot archival.
//
// Before each sync run the raw feed JSON can be uploaded to an S3-compatible
// bucket so that any run can later be replayed or audited. The Client
// interface exposes only the operations the snapshot path needs and is
// mocked in tests.
package storage
