package geofence

import (
	"time"

	"school-security-backend/internal/model"
)

// DefaultHistoryLimit caps each user's trailing visit history.
const DefaultHistoryLimit = 50

// Tracker holds the last-known location of every tracked user plus a bounded
// trailing history of visited locations. Records are created on first update,
// overwritten afterwards and never deleted.
//
// The tracker itself is not safe for concurrent use; the engine serializes
// access to it.
type Tracker struct {
	records      map[string]model.UserLocation
	history      map[string][]model.Visit
	historyLimit int
}

// NewTracker creates a tracker with the given history cap. A non-positive
// cap falls back to DefaultHistoryLimit.
func NewTracker(historyLimit int) *Tracker {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	return &Tracker{
		records:      make(map[string]model.UserLocation),
		history:      make(map[string][]model.Visit),
		historyLimit: historyLimit,
	}
}

// Update replaces the stored record for the user and appends the visit to the
// trailing history, dropping the oldest entry past the cap. It returns the
// new record and the previous one; prev is nil on first observation.
func (t *Tracker) Update(userID, userName, userRole string, loc model.Location, now time.Time) (cur model.UserLocation, prev *model.UserLocation) {
	if old, ok := t.records[userID]; ok {
		prevCopy := old
		prev = &prevCopy
	}

	cur = model.UserLocation{
		UserID:          userID,
		UserName:        userName,
		UserRole:        userRole,
		CurrentLocation: loc,
		LastUpdate:      now,
		IsTracking:      true,
	}
	t.records[userID] = cur

	h := append(t.history[userID], model.Visit{LocationID: loc.ID, At: now})
	if len(h) > t.historyLimit {
		h = h[len(h)-t.historyLimit:]
	}
	t.history[userID] = h

	return cur, prev
}

// Record returns the live record for a user, if one exists.
func (t *Tracker) Record(userID string) (model.UserLocation, bool) {
	r, ok := t.records[userID]
	return r, ok
}

// Records returns every live user record.
func (t *Tracker) Records() []model.UserLocation {
	out := make([]model.UserLocation, 0, len(t.records))
	for _, r := range t.records {
		out = append(out, r)
	}
	return out
}

// History returns the user's trailing visits, oldest first.
func (t *Tracker) History(userID string) []model.Visit {
	h := t.history[userID]
	out := make([]model.Visit, len(h))
	copy(out, h)
	return out
}
