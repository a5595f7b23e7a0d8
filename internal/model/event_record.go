package model

import "time"

// EventRecord is the persisted form of an Event. The in-memory log is the
// authoritative source; rows here are an archive written best-effort by the
// dispatcher and updated once when an operator resolves the event.
type EventRecord struct {
	EventID        string    `gorm:"primaryKey;size:64"`
	ZoneID         string    `gorm:"index;size:64;not null"`
	UserID         string    `gorm:"index;size:64;not null"`
	UserName       string    `gorm:"size:128;not null"`
	UserRole       string    `gorm:"size:32;not null"`
	EventType      string    `gorm:"size:32;not null"`
	Timestamp      time.Time `gorm:"index;not null"`
	LocationID     string    `gorm:"size:64;not null"`
	LocationName   string    `gorm:"size:128;not null"`
	RiskLevel      string    `gorm:"size:16;not null"`
	AlertTriggered bool      `gorm:"not null"`

	Resolved   bool `gorm:"not null"`
	ResolvedBy string
	ResolvedAt *time.Time
	Notes      string

	CreatedAt time.Time `gorm:"not null"`
}

// NewEventRecord flattens an Event into its archive row.
func NewEventRecord(ev Event) EventRecord {
	return EventRecord{
		EventID:        ev.ID,
		ZoneID:         ev.ZoneID,
		UserID:         ev.UserID,
		UserName:       ev.UserName,
		UserRole:       ev.UserRole,
		EventType:      string(ev.EventType),
		Timestamp:      ev.Timestamp,
		LocationID:     ev.Location.ID,
		LocationName:   ev.Location.Name,
		RiskLevel:      string(ev.RiskLevel),
		AlertTriggered: ev.AlertTriggered,
		Resolved:       ev.Resolved,
		ResolvedBy:     ev.ResolvedBy,
		ResolvedAt:     ev.ResolvedAt,
		Notes:          ev.Notes,
	}
}
