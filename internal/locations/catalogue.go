// Package locations holds the school's immutable floor-plan catalogue:
// buildings and the places inside them. The engine treats it as an
// authoritative lookup table; unknown ids simply miss.
package locations

import "school-security-backend/internal/model"

// Catalogue is a read-only index of school locations.
type Catalogue struct {
	byID      map[string]model.Location
	ordered   []model.Location
	buildings []model.Building
}

// NewCatalogue builds an index over the given locations and buildings.
func NewCatalogue(locs []model.Location, buildings []model.Building) *Catalogue {
	byID := make(map[string]model.Location, len(locs))
	for _, l := range locs {
		byID[l.ID] = l
	}
	return &Catalogue{byID: byID, ordered: locs, buildings: buildings}
}

// Default returns the catalogue seeded with the school's floor-plan data.
func Default() *Catalogue {
	return NewCatalogue(schoolLocations, schoolBuildings)
}

// ByID looks up a location. The second return value reports existence.
func (c *Catalogue) ByID(id string) (model.Location, bool) {
	l, ok := c.byID[id]
	return l, ok
}

// All returns every location in catalogue order.
func (c *Catalogue) All() []model.Location {
	out := make([]model.Location, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Buildings returns the school's buildings.
func (c *Catalogue) Buildings() []model.Building {
	out := make([]model.Building, len(c.buildings))
	copy(out, c.buildings)
	return out
}

// IDs returns every location id in catalogue order.
func (c *Catalogue) IDs() []string {
	ids := make([]string, len(c.ordered))
	for i, l := range c.ordered {
		ids[i] = l.ID
	}
	return ids
}
