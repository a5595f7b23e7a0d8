package api

import (
	"github.com/SherClockHolmes/webpush-go"

	"school-security-backend/internal/geofence"
	"school-security-backend/internal/locations"
	"school-security-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	engine    *geofence.Engine
	catalogue *locations.Catalogue
	store     store.Store
	webpush   *webpush.Options
}

// NewHandler creates a new API handler.
func NewHandler(engine *geofence.Engine, catalogue *locations.Catalogue, s store.Store, webpushOptions *webpush.Options) *Handler {
	return &Handler{
		engine:    engine,
		catalogue: catalogue,
		store:     s,
		webpush:   webpushOptions,
	}
}
