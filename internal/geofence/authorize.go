package geofence

import (
	"time"

	"school-security-backend/internal/model"
	"school-security-backend/internal/parse"
)

// IsAuthorized reports whether a role may be present in a zone. Roles absent
// from the allowed set are denied; authorization is never inferred.
func IsAuthorized(userRole string, zone model.Zone) bool {
	if userRole == "" {
		return false
	}
	return zone.AllowsRole(userRole)
}

// WithinTimeWindow reports whether the instant falls inside the zone's
// configured access window. Zones without a restriction are always open.
// Windows whose start is later than their end span midnight and are checked
// disjunctively: the time matches if it is at or after the start, or at or
// before the end. Malformed window configuration denies access.
func WithinTimeWindow(zone model.Zone, now time.Time) bool {
	tr := zone.Permissions.TimeRestrictions
	if tr == nil {
		return true
	}

	weekday := int(now.Weekday())
	dayAllowed := false
	for _, d := range tr.Days {
		if d == weekday {
			dayAllowed = true
			break
		}
	}
	if !dayAllowed {
		return false
	}

	start, err := parse.ParseClock(tr.StartTime)
	if err != nil {
		return false
	}
	end, err := parse.ParseClock(tr.EndTime)
	if err != nil {
		return false
	}

	at := parse.ClockOf(now)
	if start <= end {
		return at >= start && at <= end
	}
	return at >= start || at <= end
}
