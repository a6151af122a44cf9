// Package storagetest holds the behavior every storage.Store backend must share.
package storagetest

import (
	"context"
	"errors"
	"testing"

	"github.com/mmynk/tal3a/internal/storage"
)

// Open returns a fresh, empty store. It is called once per subtest.
type Open func(t *testing.T) storage.Store

// Run exercises the storage.Store contract against a backend.
func Run(t *testing.T, open Open) {
	ctx := context.Background()

	t.Run("Put then Get returns the value", func(t *testing.T) {
		store := open(t)
		mustUpdate(t, store, func(tx storage.Tx) error {
			return tx.Put("event/1", []byte("hello"))
		})

		var got []byte
		mustView(t, store, func(tx storage.Tx) error {
			var err error
			got, err = tx.Get("event/1")
			return err
		})
		if string(got) != "hello" {
			t.Fatalf("expected %q, got %q", "hello", got)
		}
	})

	t.Run("Get on a missing key returns ErrNotFound", func(t *testing.T) {
		store := open(t)
		err := store.View(ctx, func(tx storage.Tx) error {
			_, err := tx.Get("missing")
			return err
		})
		if !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Put overwrites", func(t *testing.T) {
		store := open(t)
		mustUpdate(t, store, func(tx storage.Tx) error {
			if err := tx.Put("k", []byte("one")); err != nil {
				return err
			}
			return tx.Put("k", []byte("two"))
		})
		mustView(t, store, func(tx storage.Tx) error {
			got, err := tx.Get("k")
			if err != nil {
				return err
			}
			if string(got) != "two" {
				t.Errorf("expected overwrite to win, got %q", got)
			}
			return nil
		})
	})

	t.Run("Delete removes and tolerates missing keys", func(t *testing.T) {
		store := open(t)
		mustUpdate(t, store, func(tx storage.Tx) error {
			if err := tx.Put("k", []byte("v")); err != nil {
				return err
			}
			if err := tx.Delete("k"); err != nil {
				return err
			}
			return tx.Delete("never-written")
		})
		mustView(t, store, func(tx storage.Tx) error {
			ok, err := storage.Exists(tx, "k")
			if err != nil {
				return err
			}
			if ok {
				t.Error("expected key to be deleted")
			}
			return nil
		})
	})

	t.Run("Update rolls back when the callback fails", func(t *testing.T) {
		store := open(t)
		boom := errors.New("boom")
		err := store.Update(ctx, func(tx storage.Tx) error {
			if err := tx.Put("partial", []byte("x")); err != nil {
				return err
			}
			return boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("expected callback error, got %v", err)
		}
		mustView(t, store, func(tx storage.Tx) error {
			ok, err := storage.Exists(tx, "partial")
			if err != nil {
				return err
			}
			if ok {
				t.Error("expected write from failed update to be discarded")
			}
			return nil
		})
	})

	t.Run("View rejects writes", func(t *testing.T) {
		store := open(t)
		err := store.View(ctx, func(tx storage.Tx) error {
			return tx.Put("k", []byte("v"))
		})
		if err == nil {
			t.Fatal("expected write inside View to fail")
		}
	})

	t.Run("JSON helpers round trip typed values", func(t *testing.T) {
		store := open(t)
		type record struct {
			ID   uint64 `json:"id"`
			Name string `json:"name"`
		}
		mustUpdate(t, store, func(tx storage.Tx) error {
			return storage.PutJSON(tx, storage.EventKey(7), record{ID: 7, Name: "Padel night"})
		})
		mustView(t, store, func(tx storage.Tx) error {
			var got record
			if err := storage.GetJSON(tx, storage.EventKey(7), &got); err != nil {
				return err
			}
			if got.ID != 7 || got.Name != "Padel night" {
				t.Errorf("unexpected record %+v", got)
			}
			return nil
		})
	})

	t.Run("Canceled context is refused", func(t *testing.T) {
		store := open(t)
		canceled, cancel := context.WithCancel(ctx)
		cancel()
		err := store.Update(canceled, func(tx storage.Tx) error {
			return tx.Put("k", []byte("v"))
		})
		if err == nil {
			t.Fatal("expected error for canceled context")
		}
	})
}

// RunReopen checks that committed data survives closing and reopening the
// same database. open must return a store on the same path each call.
func RunReopen(t *testing.T, open Open) {
	first := open(t)
	mustUpdate(t, first, func(tx storage.Tx) error {
		return tx.Put(storage.SeqKey("event"), []byte("41"))
	})
	if err := first.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	second := open(t)
	defer second.Close()
	mustView(t, second, func(tx storage.Tx) error {
		got, err := tx.Get(storage.SeqKey("event"))
		if err != nil {
			return err
		}
		if string(got) != "41" {
			t.Errorf("expected persisted value %q, got %q", "41", got)
		}
		return nil
	})
}

func mustUpdate(t *testing.T, store storage.Store, fn func(tx storage.Tx) error) {
	t.Helper()
	if err := store.Update(context.Background(), fn); err != nil {
		t.Fatalf("update: %v", err)
	}
}

func mustView(t *testing.T, store storage.Store, fn func(tx storage.Tx) error) {
	t.Helper()
	if err := store.View(context.Background(), fn); err != nil {
		t.Fatalf("view: %v", err)
	}
}
