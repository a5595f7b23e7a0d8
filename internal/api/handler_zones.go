package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetZones handles the GET /api/zones request.
func (h *Handler) GetZones(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.Registry().ActiveZones())
}

// GetLocations handles the GET /api/locations request.
func (h *Handler) GetLocations(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogue.All())
}

// GetBuildings handles the GET /api/buildings request.
func (h *Handler) GetBuildings(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogue.Buildings())
}

// GetUserLocations handles the GET /api/users request.
func (h *Handler) GetUserLocations(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.UserLocations())
}
