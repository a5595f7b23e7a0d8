package model

import "time"

// Visit is one entry of a user's trailing location history.
type Visit struct {
	LocationID string    `json:"location_id"`
	At         time.Time `json:"at"`
}

// UserLocation is the live last-known position of a tracked user. There is
// one record per user, overwritten on every update.
type UserLocation struct {
	UserID          string    `json:"user_id"`
	UserName        string    `json:"user_name"`
	UserRole        string    `json:"user_role"`
	CurrentLocation Location  `json:"current_location"`
	LastUpdate      time.Time `json:"last_update"`
	IsTracking      bool      `json:"is_tracking"`
}
