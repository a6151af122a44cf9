// Package storage provides the durable map store the engine persists into.
//
// The store is a flat keyspace of byte values with point lookups and
// insert/overwrite semantics. There are no range queries: every list the
// engine needs is itself a value stored at a well-known key (see package
// index). Mutations run inside Update, which commits all of a callback's
// writes or none of them, so a primary record and the index entries that
// reference it always change together.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound indicates a requested key is missing.
var ErrNotFound = errors.New("record not found")

// Tx is a unit of work against the store.
// A Tx is only valid inside the View or Update callback that received it.
type Tx interface {
	// Get returns the value stored at key, or ErrNotFound.
	Get(key string) ([]byte, error)

	// Put inserts or overwrites the value at key.
	// It fails inside a read-only transaction.
	Put(key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error
}

// Store defines the interface for durable map storage.
// This abstraction allows swapping storage backends (bbolt, SQLite)
// without changing the engine.
type Store interface {
	// View runs fn in a read-only transaction.
	View(ctx context.Context, fn func(tx Tx) error) error

	// Update runs fn in a read-write transaction. If fn returns an error
	// nothing it wrote is committed. Update calls are serialized by the
	// backend, so a read-modify-write inside fn never races another Update.
	Update(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any resources held by the store.
	Close() error
}
