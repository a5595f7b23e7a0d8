package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"school-security-backend/internal/geofence"
	"school-security-backend/internal/model"
)

type updateLocationRequest struct {
	UserID     string `json:"user_id" binding:"required"`
	UserName   string `json:"user_name" binding:"required"`
	UserRole   string `json:"user_role" binding:"required"`
	LocationID string `json:"location_id" binding:"required"`
}

// UpdateLocation handles the POST /api/locations/update request: the single
// entry point into the geofence evaluator.
func (h *Handler) UpdateLocation(c *gin.Context) {
	var req updateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	loc, ok := h.catalogue.ByID(req.LocationID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown location id"})
		return
	}

	events := h.engine.UpdateUserLocation(req.UserID, req.UserName, req.UserRole, loc)
	if events == nil {
		events = []model.Event{}
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

// GetEvents handles the GET /api/events request. Supports zone_id, user_id
// and resolved query filters.
func (h *Handler) GetEvents(c *gin.Context) {
	filter := geofence.EventFilter{
		ZoneID: c.Query("zone_id"),
		UserID: c.Query("user_id"),
	}
	if raw := c.Query("resolved"); raw != "" {
		resolved, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "resolved must be a boolean"})
			return
		}
		filter.Resolved = &resolved
	}

	c.JSON(http.StatusOK, h.engine.Events(filter))
}

type resolveEventRequest struct {
	ResolvedBy string `json:"resolved_by" binding:"required"`
	Notes      string `json:"notes"`
}

// ResolveEvent handles the POST /api/events/:event_id/resolve request.
// Resolving an unknown or already-resolved event is a no-op.
func (h *Handler) ResolveEvent(c *gin.Context) {
	var req resolveEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.engine.Resolve(c.Param("event_id"), req.ResolvedBy, req.Notes)
	c.Status(http.StatusNoContent)
}
