// Package ids allocates monotonically increasing identifiers per entity kind.
package ids

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/mmynk/tal3a/internal/storage"
)

// Kind names an independent ID sequence.
type Kind string

const (
	KindEvent   Kind = "event"
	KindReview  Kind = "review"
	KindComment Kind = "comment"
)

// Next advances the counter for kind and returns the new value.
// Counters start at 0, so the first ID handed out is 1. The counter is
// written through tx, so an ID is only consumed if the surrounding unit of
// work commits; committed IDs are never handed out again.
func Next(tx storage.Tx, kind Kind) (uint64, error) {
	current, err := Current(tx, kind)
	if err != nil {
		return 0, err
	}
	next := current + 1
	if next == 0 {
		return 0, fmt.Errorf("%s id sequence exhausted", kind)
	}
	if err := tx.Put(storage.SeqKey(string(kind)), []byte(strconv.FormatUint(next, 10))); err != nil {
		return 0, fmt.Errorf("persist %s sequence: %w", kind, err)
	}
	return next, nil
}

// Current returns the last ID handed out for kind, or 0 if none has been.
func Current(tx storage.Tx, kind Kind) (uint64, error) {
	raw, err := tx.Get(storage.SeqKey(string(kind)))
	if errors.Is(err, storage.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read %s sequence: %w", kind, err)
	}
	n, err := strconv.ParseUint(string(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s sequence: %w", kind, err)
	}
	return n, nil
}
