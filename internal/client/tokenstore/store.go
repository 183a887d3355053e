// Package tokenstore persists the single bearer credential the client
// holds between runs. The credential is opaque: no validation, no expiry
// tracking.
package tokenstore

import "context"

// Store is the single source of truth for the persisted credential.
//
// Contract:
//   - Read returns the empty string (no error) when nothing is stored.
//   - Write overwrites any prior value.
//   - Clear is idempotent.
//
// The session manager is the only writer; everything else only reads.
type Store interface {
	Read(ctx context.Context) (string, error)
	Write(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
