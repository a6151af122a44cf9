package index

import (
	"github.com/mmynk/tal3a/internal/models"
	"github.com/mmynk/tal3a/internal/storage"
)

// eventKeys returns every attribute index an event is listed under.
func eventKeys(e *models.Event) []Key {
	return []Key{
		AllEvents(),
		ByOrganizer(e.CreatorID),
		ByGroup(e.GroupID),
		BySport(e.Sport),
		ByCity(e.CityID),
		ByGovernorate(e.GovernorateID),
	}
}

// RegisterEvent lists a new event under the registry and its organizer,
// group, sport, city and governorate indexes.
func RegisterEvent(tx storage.Tx, e *models.Event) error {
	for _, key := range eventKeys(e) {
		if err := Append(tx, key, e.ID); err != nil {
			return err
		}
	}
	return nil
}

// UnregisterEvent removes an event from every attribute index it was
// registered under.
func UnregisterEvent(tx storage.Tx, e *models.Event) error {
	for _, key := range eventKeys(e) {
		if err := Remove(tx, key, e.ID); err != nil {
			return err
		}
	}
	return nil
}

// MoveSport relists an event whose sport changed.
func MoveSport(tx storage.Tx, eventID uint64, from, to models.Sport) error {
	if from == to {
		return nil
	}
	if err := Remove(tx, BySport(from), eventID); err != nil {
		return err
	}
	return Append(tx, BySport(to), eventID)
}

// CompactEvents drops ids of events that no longer exist from every index
// that lists event ids under the given keys.
func CompactEvents(tx storage.Tx, keys ...Key) (int, error) {
	live := func(id uint64) (bool, error) {
		return storage.Exists(tx, storage.EventKey(id))
	}
	total := 0
	for _, key := range keys {
		n, err := Compact(tx, key, live)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
