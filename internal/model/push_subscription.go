package model

import "time"

// PushSubscription holds the information for a browser push subscription.
// A subscriber chooses the zones whose alerts they want delivered.
type PushSubscription struct {
	Endpoint  string    `gorm:"primaryKey"`
	P256DH    string    `gorm:"column:p256dh;not null"`
	Auth      string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`

	// Associations
	Zones []SubscriptionZone `gorm:"foreignKey:SubscriptionEndpoint;references:Endpoint;constraint:OnDelete:CASCADE"`
}

// SubscriptionZone maps a subscription to one zone id. Zones live in static
// configuration rather than the database, so the mapping stores bare ids.
type SubscriptionZone struct {
	SubscriptionEndpoint string `gorm:"primaryKey"`
	ZoneID               string `gorm:"primaryKey;size:64"`
}
