package model

import "time"

// EventType is the classified kind of a geofence transition.
type EventType string

const (
	EventEntry         EventType = "entry"
	EventExit          EventType = "exit"
	EventDwellExceeded EventType = "dwell_exceeded"
	EventUnauthorized  EventType = "unauthorized_access"
)

// Event is the audit record of a single zone transition. Once created it is
// immutable except for the resolution fields, which a human operator sets
// exactly once.
type Event struct {
	ID             string    `json:"id"`
	ZoneID         string    `json:"zone_id"`
	UserID         string    `json:"user_id"`
	UserName       string    `json:"user_name"`
	UserRole       string    `json:"user_role"`
	EventType      EventType `json:"event_type"`
	Timestamp      time.Time `json:"timestamp"`
	Location       Location  `json:"location"`
	RiskLevel      RiskLevel `json:"risk_level"`
	AlertTriggered bool      `json:"alert_triggered"`

	Resolved   bool       `json:"resolved"`
	ResolvedBy string     `json:"resolved_by,omitempty"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	Notes      string     `json:"notes,omitempty"`
}

// Alert is the outward notification payload built from an alert-triggering
// event. Delivery is best-effort; the Event record stays authoritative.
type Alert struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Message   string        `json:"message"`
	Priority  AlertPriority `json:"priority"`
	ZoneID    string        `json:"zone_id"`
	Zone      string        `json:"zone"`
	User      string        `json:"user"`
	Location  string        `json:"location"`
	Timestamp time.Time     `json:"timestamp"`
	RiskLevel RiskLevel     `json:"risk_level"`
}
