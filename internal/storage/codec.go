package storage

import (
	"encoding/json"
	"errors"
	"fmt"
)

// GetJSON loads the value at key into v.
// It returns ErrNotFound (wrapped) when the key is missing.
func GetJSON(tx Tx, key string, v any) error {
	payload, err := tx.Get(key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return nil
}

// PutJSON encodes v and stores it at key.
func PutJSON(tx Tx, key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return tx.Put(key, payload)
}

// Exists reports whether key holds a value.
func Exists(tx Tx, key string) (bool, error) {
	_, err := tx.Get(key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
