// Package groups resolves the social groups events belong to.
//
// Groups are owned by the social collaborator; the engine only needs a
// read-only view of each group's location. Directory abstracts that lookup,
// and LoadFile builds a Static directory from a YAML export.
package groups

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mmynk/tal3a/internal/models"
)

// ErrNotFound indicates the group does not exist.
var ErrNotFound = errors.New("group not found")

// Directory looks up groups by ID.
type Directory interface {
	// Lookup returns the group, or ErrNotFound.
	Lookup(ctx context.Context, groupID uint64) (models.Group, error)
}

// Static is an in-memory Directory. It is read-only after construction.
type Static struct {
	groups map[uint64]models.Group
}

// NewStatic creates a directory holding the given groups.
func NewStatic(groups ...models.Group) *Static {
	d := &Static{groups: make(map[uint64]models.Group, len(groups))}
	for _, g := range groups {
		d.groups[g.ID] = g
	}
	return d
}

// Lookup implements Directory.
func (d *Static) Lookup(ctx context.Context, groupID uint64) (models.Group, error) {
	if err := ctx.Err(); err != nil {
		return models.Group{}, err
	}
	g, ok := d.groups[groupID]
	if !ok {
		return models.Group{}, ErrNotFound
	}
	return g, nil
}

// Len returns how many groups are known.
func (d *Static) Len() int {
	return len(d.groups)
}

type groupFile struct {
	Groups []models.Group `yaml:"groups"`
}

// LoadFile reads a YAML export of the form
//
//	groups:
//	  - id: 1
//	    name: Maadi Runners
//	    sport: Running
//	    city_id: 101
//	    governorate_id: 1
//
// A missing file yields an empty directory.
func LoadFile(path string) (*Static, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return NewStatic(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read groups file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML group export.
func Parse(data []byte) (*Static, error) {
	var file groupFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse groups file: %w", err)
	}
	seen := make(map[uint64]bool, len(file.Groups))
	for _, g := range file.Groups {
		if g.ID == 0 {
			return nil, fmt.Errorf("group %q has no id", g.Name)
		}
		if seen[g.ID] {
			return nil, fmt.Errorf("duplicate group id %d", g.ID)
		}
		seen[g.ID] = true
	}
	return NewStatic(file.Groups...), nil
}
