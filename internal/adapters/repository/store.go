// Package repository defines the health log record store interface and its
// backends.
package repository

import (
	"context"

	"healthlog/internal/domain/record"
)

// Store provides per-identity load/save of health log records. A missing
// record is signalled with ErrNoRecord, not treated as a failure; callers
// distinguish "never started" from "started but empty". Save is an
// unconditional overwrite: no merge, no optimistic concurrency, last
// writer wins.
type Store interface {
	// Load returns the record stored for identity, or ErrNoRecord.
	Load(ctx context.Context, identity string) (*record.Record, error)

	// Save replaces the record stored for identity.
	Save(ctx context.Context, identity string, rec *record.Record) error

	// Close releases backend resources.
	Close() error
}
