package geofence

import (
	"fmt"
	"sync"
	"time"

	"school-security-backend/internal/model"
)

// EventSink receives every emitted geofence event.
type EventSink func(model.Event)

// AlertSink receives the outward payload of alert-triggering events.
// Delivery downstream is best-effort and must not block evaluation.
type AlertSink func(model.Alert)

// LocationSink receives user location updates. prev is nil on the user's
// first observation.
type LocationSink func(cur model.UserLocation, prev *model.UserLocation)

// Engine evaluates location updates against the zone registry and keeps the
// authoritative in-memory event log. It is an explicitly constructed
// instance; all state lives on the engine, nothing is package-global.
//
// Each update is processed to completion under a single lock, so updates for
// the same user are serialized and the entered/exited diff always runs
// against a consistent previous snapshot. Sinks are invoked outside the lock.
type Engine struct {
	mu       sync.Mutex
	registry *Registry
	tracker  *Tracker
	now      func() time.Time
	seq      uint64

	events     []model.Event
	eventIndex map[string]int

	eventSinks    []EventSink
	alertSinks    []AlertSink
	locationSinks []LocationSink
	resolveSinks  []EventSink
}

// NewEngine creates an engine over the given registry. historyLimit bounds
// each user's trailing visit history; pass 0 for the default cap.
func NewEngine(registry *Registry, historyLimit int) *Engine {
	return &Engine{
		registry:   registry,
		tracker:    NewTracker(historyLimit),
		now:        time.Now,
		eventIndex: make(map[string]int),
	}
}

// SetClock overrides the engine's time source. The main program uses it to
// evaluate time windows in the school's timezone; tests use it to pin the
// clock.
func (e *Engine) SetClock(now func() time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.now = now
}

// OnEvent registers a sink for every emitted event.
func (e *Engine) OnEvent(sink EventSink) { e.eventSinks = append(e.eventSinks, sink) }

// OnAlert registers a sink for alert payloads.
func (e *Engine) OnAlert(sink AlertSink) { e.alertSinks = append(e.alertSinks, sink) }

// OnLocationUpdate registers a sink for user location updates.
func (e *Engine) OnLocationUpdate(sink LocationSink) {
	e.locationSinks = append(e.locationSinks, sink)
}

// OnEventResolved registers a sink invoked when an operator resolves an event.
func (e *Engine) OnEventResolved(sink EventSink) {
	e.resolveSinks = append(e.resolveSinks, sink)
}

// Registry exposes the engine's zone registry.
func (e *Engine) Registry() *Registry { return e.registry }

// UpdateUserLocation is the single entry point into the evaluator. It stores
// the new location, diffs zone membership against the previous one, emits the
// resulting events and returns them in evaluation order.
func (e *Engine) UpdateUserLocation(userID, userName, userRole string, loc model.Location) []model.Event {
	e.mu.Lock()
	now := e.now()
	cur, prev := e.tracker.Update(userID, userName, userRole, loc, now)
	events := e.evaluate(cur, prev, now)

	alerts := make([]model.Alert, 0, len(events))
	for _, ev := range events {
		e.eventIndex[ev.ID] = len(e.events)
		e.events = append(e.events, ev)
		if ev.AlertTriggered {
			zone, _ := e.registry.ZoneByID(ev.ZoneID)
			alerts = append(alerts, buildAlert(ev, zone))
		}
	}
	e.mu.Unlock()

	for _, sink := range e.locationSinks {
		sink(cur, prev)
	}
	for _, ev := range events {
		for _, sink := range e.eventSinks {
			sink(ev)
		}
	}
	for _, a := range alerts {
		for _, sink := range e.alertSinks {
			sink(a)
		}
	}

	return events
}

// evaluate computes the events for one location update. Caller holds the lock.
func (e *Engine) evaluate(cur model.UserLocation, prev *model.UserLocation, now time.Time) []model.Event {
	currentZones := e.registry.ZonesContaining(cur.CurrentLocation.ID)
	var previousZones []model.Zone
	if prev != nil {
		previousZones = e.registry.ZonesContaining(prev.CurrentLocation.ID)
	}

	var events []model.Event

	for _, zone := range currentZones {
		if containsZone(previousZones, zone.ID) {
			continue
		}
		events = append(events, e.entryEvent(cur, zone, now))
	}

	for _, zone := range previousZones {
		if containsZone(currentZones, zone.ID) {
			continue
		}
		ev := e.newEvent(cur, zone, model.EventExit, now)
		ev.AlertTriggered = zone.AlertSettings.OnExit
		events = append(events, ev)
	}

	history := e.tracker.History(cur.UserID)
	for _, zone := range currentZones {
		if !zone.AlertSettings.OnDwellTime || zone.AlertSettings.DwellTimeMinutes <= 0 {
			continue
		}
		start, ok := dwellStart(history, zone)
		if !ok {
			continue
		}
		if now.Sub(start) >= time.Duration(zone.AlertSettings.DwellTimeMinutes)*time.Minute {
			ev := e.newEvent(cur, zone, model.EventDwellExceeded, now)
			ev.AlertTriggered = true
			events = append(events, ev)
		}
	}

	return events
}

// entryEvent classifies a zone entry. A role missing from the allowed set or
// an instant outside the zone's time window makes it unauthorized_access.
func (e *Engine) entryEvent(cur model.UserLocation, zone model.Zone, now time.Time) model.Event {
	authorized := IsAuthorized(cur.UserRole, zone)
	withinWindow := WithinTimeWindow(zone, now)

	eventType := model.EventEntry
	if !authorized || !withinWindow {
		eventType = model.EventUnauthorized
	}

	ev := e.newEvent(cur, zone, eventType, now)
	ev.AlertTriggered = zone.AlertSettings.OnEntry
	return ev
}

func (e *Engine) newEvent(cur model.UserLocation, zone model.Zone, eventType model.EventType, now time.Time) model.Event {
	e.seq++
	return model.Event{
		ID:        fmt.Sprintf("%d-%d", now.UnixMilli(), e.seq),
		ZoneID:    zone.ID,
		UserID:    cur.UserID,
		UserName:  cur.UserName,
		UserRole:  cur.UserRole,
		EventType: eventType,
		Timestamp: now,
		Location:  cur.CurrentLocation,
		RiskLevel: zone.RiskLevel,
	}
}

// dwellStart approximates when the user's current uninterrupted stay in the
// zone began, by walking the trailing history back from the newest visit.
// This is a heuristic over a capped list, not an exact entered-zone-at
// timestamp; it can both over- and under-estimate dwell time.
func dwellStart(history []model.Visit, zone model.Zone) (time.Time, bool) {
	var start time.Time
	found := false
	for i := len(history) - 1; i >= 0; i-- {
		if !zone.Contains(history[i].LocationID) {
			break
		}
		start = history[i].At
		found = true
	}
	return start, found
}

func containsZone(zones []model.Zone, id string) bool {
	for _, z := range zones {
		if z.ID == id {
			return true
		}
	}
	return false
}

// Resolve marks an event resolved. It is a no-op for unknown ids and for
// events already resolved; the resolution fields are settable exactly once.
func (e *Engine) Resolve(eventID, resolvedBy, notes string) (model.Event, bool) {
	e.mu.Lock()
	idx, ok := e.eventIndex[eventID]
	if !ok || e.events[idx].Resolved {
		e.mu.Unlock()
		return model.Event{}, false
	}

	now := e.now()
	ev := &e.events[idx]
	ev.Resolved = true
	ev.ResolvedBy = resolvedBy
	ev.ResolvedAt = &now
	ev.Notes = notes
	resolved := *ev
	e.mu.Unlock()

	for _, sink := range e.resolveSinks {
		sink(resolved)
	}
	return resolved, true
}

// EventFilter narrows the event log returned by Events.
type EventFilter struct {
	ZoneID   string
	UserID   string
	Resolved *bool
}

// Events returns a copy of the event log, newest last, optionally filtered.
func (e *Engine) Events(filter EventFilter) []model.Event {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]model.Event, 0, len(e.events))
	for _, ev := range e.events {
		if filter.ZoneID != "" && ev.ZoneID != filter.ZoneID {
			continue
		}
		if filter.UserID != "" && ev.UserID != filter.UserID {
			continue
		}
		if filter.Resolved != nil && ev.Resolved != *filter.Resolved {
			continue
		}
		out = append(out, ev)
	}
	return out
}

// UserLocations returns the live record of every tracked user.
func (e *Engine) UserLocations() []model.UserLocation {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tracker.Records()
}
