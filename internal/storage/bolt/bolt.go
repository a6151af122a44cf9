// Package bolt provides a bbolt-backed implementation of the storage.Store interface.
package bolt

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"

	"github.com/mmynk/tal3a/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

const bucketName = "tal3a"

// Store keeps the whole keyspace in a single bbolt bucket.
// bbolt allows one writer at a time, which gives Update its serialization.
type Store struct {
	db *bbolt.DB
}

// Open opens (or creates) the database at path.
// It creates the parent directories and the bucket automatically.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(cleanPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := bbolt.Open(cleanPath, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open storage db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(bucketName)); err != nil {
			return fmt.Errorf("create %s bucket: %w", bucketName, err)
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// View runs fn in a read-only bbolt transaction.
func (s *Store) View(ctx context.Context, fn func(tx storage.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		if bucket == nil {
			return fmt.Errorf("%s bucket is missing", bucketName)
		}
		return fn(boltTx{bucket: bucket})
	})
}

// Update runs fn in a read-write bbolt transaction.
func (s *Store) Update(ctx context.Context, fn func(tx storage.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		if bucket == nil {
			return fmt.Errorf("%s bucket is missing", bucketName)
		}
		return fn(boltTx{bucket: bucket})
	})
}

type boltTx struct {
	bucket *bbolt.Bucket
}

func (t boltTx) Get(key string) ([]byte, error) {
	payload := t.bucket.Get([]byte(key))
	if payload == nil {
		return nil, storage.ErrNotFound
	}
	// bbolt memory is only valid for the life of the transaction.
	out := make([]byte, len(payload))
	copy(out, payload)
	return out, nil
}

func (t boltTx) Put(key string, value []byte) error {
	if err := t.bucket.Put([]byte(key), value); err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

func (t boltTx) Delete(key string) error {
	if err := t.bucket.Delete([]byte(key)); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}
