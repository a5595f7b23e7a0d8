// Package simulate feeds fabricated location updates through the geofence
// engine. The original system had no real GPS-to-location mapping, only a
// randomized stand-in; this package keeps that explicit. It is a demo
// placeholder, not a positioning system.
package simulate

import (
	"context"
	"log"
	"math/rand"
	"time"

	"school-security-backend/config"
	"school-security-backend/internal/geofence"
	"school-security-backend/internal/locations"
)

// Service periodically moves the configured demo users to random locations.
type Service struct {
	cfg       *config.Config
	engine    *geofence.Engine
	catalogue *locations.Catalogue
	rng       *rand.Rand
}

// NewService creates a simulator over the given engine and catalogue.
func NewService(cfg *config.Config, engine *geofence.Engine, catalogue *locations.Catalogue) *Service {
	return &Service{
		cfg:       cfg,
		engine:    engine,
		catalogue: catalogue,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run starts the simulation loop.
func (s *Service) Run(ctx context.Context) {
	if !s.cfg.Simulator.Enabled {
		log.Println("Location simulator is disabled. Not starting.")
		return
	}
	if len(s.cfg.Simulator.Users) == 0 {
		log.Println("Location simulator has no users configured. Not starting.")
		return
	}
	log.Println("Starting location simulator...")

	s.Step()

	timer := time.NewTimer(s.cfg.Simulator.Interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Location simulator shutting down.")
			return
		case <-timer.C:
			s.Step()
			timer.Reset(s.cfg.Simulator.Interval)
		}
	}
}

// Step moves every configured user to one random catalogue location.
func (s *Service) Step() {
	all := s.catalogue.All()
	for _, u := range s.cfg.Simulator.Users {
		loc := all[s.rng.Intn(len(all))]
		events := s.engine.UpdateUserLocation(u.ID, u.Name, u.Role, loc)
		if len(events) > 0 {
			log.Printf("Simulator: %s -> %s produced %d event(s)", u.Name, loc.ID, len(events))
		}
	}
}
