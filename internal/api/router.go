package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"school-security-backend/config"
	"school-security-backend/internal/mw"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(h *Handler, cfg *config.ServerConfig) *gin.Engine {
	r := gin.Default()

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)

	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		// Static catalogue data; safe to cache.
		api.GET("/zones", caching, h.GetZones)
		api.GET("/locations", caching, h.GetLocations)
		api.GET("/buildings", caching, h.GetBuildings)

		// Live evaluator state; never cached.
		api.GET("/users", h.GetUserLocations)
		api.POST("/locations/update", h.UpdateLocation)
		api.GET("/events", h.GetEvents)
		api.POST("/events/:event_id/resolve", h.ResolveEvent)

		api.GET("/subscriptions", h.GetSubscription)
		api.PUT("/subscriptions", h.PutSubscription)
		api.DELETE("/subscriptions", h.DeleteSubscription)
		api.GET("/vapid_public_key", h.GetVAPIDPublicKey)
	}

	return r
}
