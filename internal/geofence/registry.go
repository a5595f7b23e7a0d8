// Package geofence implements the zone-transition engine: a registry of
// named zones, a per-user location tracker, the entry/exit/dwell evaluator,
// authorization and time-window checks, and alert dispatch.
package geofence

import "school-security-backend/internal/model"

// Registry is the static catalogue of geofence zones. Zones are defined at
// startup and never created or destroyed afterwards; only the Active flag of
// a zone may be toggled.
type Registry struct {
	zones []model.Zone
}

// NewRegistry creates a registry over the given zones. Zone order is
// preserved and determines evaluation order for simultaneous transitions.
func NewRegistry(zones []model.Zone) *Registry {
	return &Registry{zones: zones}
}

// ActiveZones returns all zones currently flagged active, in registry order.
func (r *Registry) ActiveZones() []model.Zone {
	out := make([]model.Zone, 0, len(r.zones))
	for _, z := range r.zones {
		if z.Active {
			out = append(out, z)
		}
	}
	return out
}

// ZonesContaining returns the active zones whose member set includes the
// location id, in registry order. Unknown ids yield no matches.
func (r *Registry) ZonesContaining(locationID string) []model.Zone {
	var out []model.Zone
	for _, z := range r.zones {
		if z.Active && z.Contains(locationID) {
			out = append(out, z)
		}
	}
	return out
}

// ZoneByID returns the zone with the given id, active or not.
func (r *Registry) ZoneByID(id string) (model.Zone, bool) {
	for _, z := range r.zones {
		if z.ID == id {
			return z, true
		}
	}
	return model.Zone{}, false
}

// SetActive toggles a zone's active flag. Unknown ids are ignored.
func (r *Registry) SetActive(id string, active bool) {
	for i := range r.zones {
		if r.zones[i].ID == id {
			r.zones[i].Active = active
			return
		}
	}
}
