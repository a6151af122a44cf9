package models

// Group is the slice of a social group that events depend on.
// Groups are owned elsewhere; the engine only reads them to resolve where
// an event takes place.
type Group struct {
	// ID is the numeric group identifier.
	ID uint64 `json:"id" yaml:"id"`

	// Name is the display name of the group (e.g., "Maadi Runners").
	Name string `json:"name" yaml:"name"`

	// Sport is the group's primary sport.
	Sport Sport `json:"sport" yaml:"sport"`

	// CityID and GovernorateID locate the group. Events created in the group
	// inherit them and are indexed under both.
	CityID        uint16 `json:"city_id" yaml:"city_id"`
	GovernorateID uint8  `json:"governorate_id" yaml:"governorate_id"`
}
