// Package index maintains the engine's secondary indexes.
//
// An index entry is an ordered list stored at a single key of the map store,
// e.g. every event organized by a principal. Lists preserve insertion order
// and never hold the same value twice. All functions take the storage.Tx of
// the caller's unit of work, so index changes commit or roll back together
// with the primary record they describe.
package index

import (
	"errors"
	"slices"
	"strconv"

	"github.com/mmynk/tal3a/internal/models"
	"github.com/mmynk/tal3a/internal/storage"
)

// Key identifies one index entry.
type Key struct {
	Name  string
	Value string
}

func (k Key) storageKey() string {
	return storage.IndexKey(k.Name, k.Value)
}

func u64(v uint64) string { return strconv.FormatUint(v, 10) }

// ByOrganizer lists the events a principal created.
func ByOrganizer(p models.Principal) Key { return Key{"organizer", string(p)} }

// ByParticipant lists the events a principal is a member of.
func ByParticipant(p models.Principal) Key { return Key{"participant", string(p)} }

// ByGroup lists the events of a group.
func ByGroup(groupID uint64) Key { return Key{"group", u64(groupID)} }

// BySport lists the events of a sport.
func BySport(s models.Sport) Key { return Key{"sport", string(s)} }

// ByCity lists the events located in a city.
func ByCity(cityID uint16) Key { return Key{"city", u64(uint64(cityID))} }

// ByGovernorate lists the events located in a governorate.
func ByGovernorate(governorateID uint8) Key {
	return Key{"governorate", u64(uint64(governorateID))}
}

// EventReviews lists the reviews left on an event.
func EventReviews(eventID uint64) Key { return Key{"event-reviews", u64(eventID)} }

// EventComments lists the comments posted on an event.
func EventComments(eventID uint64) Key { return Key{"event-comments", u64(eventID)} }

// ByReviewer lists the reviews a principal wrote.
func ByReviewer(p models.Principal) Key { return Key{"reviewer", string(p)} }

// AllEvents is the registry of every live event.
func AllEvents() Key { return Key{"events", "all"} }

// EventMembers lists the principals enrolled in an event.
func EventMembers(eventID uint64) Key { return Key{"event-members", u64(eventID)} }

func load[T any](tx storage.Tx, key Key) ([]T, error) {
	var values []T
	err := storage.GetJSON(tx, key.storageKey(), &values)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return values, nil
}

func save[T any](tx storage.Tx, key Key, values []T) error {
	if len(values) == 0 {
		return tx.Delete(key.storageKey())
	}
	return storage.PutJSON(tx, key.storageKey(), values)
}

func add[T comparable](tx storage.Tx, key Key, value T) error {
	values, err := load[T](tx, key)
	if err != nil {
		return err
	}
	if slices.Contains(values, value) {
		return nil
	}
	return save(tx, key, append(values, value))
}

func remove[T comparable](tx storage.Tx, key Key, value T) error {
	values, err := load[T](tx, key)
	if err != nil {
		return err
	}
	i := slices.Index(values, value)
	if i < 0 {
		return nil
	}
	return save(tx, key, slices.Delete(values, i, i+1))
}

// Append adds id to the end of the list at key unless it is already there.
func Append(tx storage.Tx, key Key, id uint64) error {
	return add(tx, key, id)
}

// Remove drops id from the list at key. Missing ids are ignored.
func Remove(tx storage.Tx, key Key, id uint64) error {
	return remove(tx, key, id)
}

// List returns the ids at key in insertion order. A missing entry is empty.
func List(tx storage.Tx, key Key) ([]uint64, error) {
	return load[uint64](tx, key)
}

// AppendMember adds a principal to an event's member list.
func AppendMember(tx storage.Tx, eventID uint64, p models.Principal) error {
	return add(tx, EventMembers(eventID), p)
}

// RemoveMember drops a principal from an event's member list.
func RemoveMember(tx storage.Tx, eventID uint64, p models.Principal) error {
	return remove(tx, EventMembers(eventID), p)
}

// Members returns an event's members in join order.
func Members(tx storage.Tx, eventID uint64) ([]models.Principal, error) {
	return load[models.Principal](tx, EventMembers(eventID))
}

// Compact rewrites the list at key keeping only ids for which live reports
// true, and returns how many ids were dropped. It repairs entries written
// before index maintenance pruned on delete.
func Compact(tx storage.Tx, key Key, live func(id uint64) (bool, error)) (int, error) {
	ids, err := List(tx, key)
	if err != nil {
		return 0, err
	}
	kept := make([]uint64, 0, len(ids))
	for _, id := range ids {
		ok, err := live(id)
		if err != nil {
			return 0, err
		}
		if ok {
			kept = append(kept, id)
		}
	}
	dropped := len(ids) - len(kept)
	if dropped == 0 {
		return 0, nil
	}
	return dropped, save(tx, key, kept)
}
