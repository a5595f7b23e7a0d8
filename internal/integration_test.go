package internal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"school-security-backend/internal/api"
	"school-security-backend/internal/geofence"
	"school-security-backend/internal/locations"
	"school-security-backend/internal/model"
	"school-security-backend/internal/store"
)

// TestEventLifecycle simulates a teacher walking into a restricted lab,
// seeing the unauthorized event raised and archived, resolving it, and
// finally leaving the zone. It verifies the in-memory log, the HTTP
// responses, and the database archive at each step.
func TestEventLifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// 1. In-memory SQLite database.
	testDB, err := gorm.Open(sqlite.Open("file:event_lifecycle?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, _ := testDB.DB()
	defer sqlDB.Close()

	require.NoError(t, testDB.AutoMigrate(
		&model.EventRecord{},
		&model.PushSubscription{},
		&model.SubscriptionZone{},
	))

	// 2. Evaluator with a pinned clock: a Monday at noon, inside the lab
	// zone's weekday window and outside the after-hours window.
	catalogue := locations.Default()
	registry := geofence.NewRegistry(geofence.DefaultZones(catalogue))
	engine := geofence.NewEngine(registry, geofence.DefaultHistoryLimit)
	mondayNoon := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	engine.SetClock(func() time.Time { return mondayNoon })

	// 3. Wire the background archive writer the way main does.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	gormStore := store.NewGormStore(testDB)
	archiver := store.NewArchiver(gormStore)
	archiver.Start(ctx)
	engine.OnEvent(archiver.RecordEvent)
	engine.OnEventResolved(archiver.RecordResolution)

	handler := api.NewHandler(engine, catalogue, gormStore, nil)
	router := gin.New()
	router.POST("/api/locations/update", handler.UpdateLocation)
	router.POST("/api/events/:event_id/resolve", handler.ResolveEvent)
	router.GET("/api/events", handler.GetEvents)

	post := func(path, body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		return w
	}

	var unauthorizedID string

	t.Run("Step 1: Teacher Enters Restricted Lab", func(t *testing.T) {
		w := post("/api/locations/update",
			`{"user_id":"prof-garcia","user_name":"Prof. García","user_role":"docente","location_id":"lab-quimica"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Events []model.Event `json:"events"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		// The lab zone and the catalogue-wide after-hours zone both contain
		// the lab, so the first observation raises two events.
		require.Len(t, resp.Events, 2)
		assert.Equal(t, "after-hours-restricted", resp.Events[1].ZoneID)

		ev := resp.Events[0]
		assert.Equal(t, model.EventUnauthorized, ev.EventType, "docente is not an allowed role for the lab zone")
		assert.Equal(t, "high-risk-labs", ev.ZoneID)
		assert.Equal(t, "lab-quimica", ev.Location.ID)
		assert.Equal(t, model.RiskHigh, ev.RiskLevel)
		assert.True(t, ev.AlertTriggered)
		assert.False(t, ev.Resolved)
		unauthorizedID = ev.ID

		// The archiver writes in the background; wait for the row.
		assert.Eventually(t, func() bool {
			var record model.EventRecord
			return testDB.First(&record, "event_id = ?", unauthorizedID).Error == nil
		}, 2*time.Second, 10*time.Millisecond, "Event should be archived to the database")

		var record model.EventRecord
		require.NoError(t, testDB.First(&record, "event_id = ?", unauthorizedID).Error)
		assert.Equal(t, "unauthorized_access", record.EventType)
		assert.Equal(t, "prof-garcia", record.UserID)
		assert.False(t, record.Resolved)
	})

	t.Run("Step 2: Operator Resolves The Event", func(t *testing.T) {
		w := post("/api/events/"+unauthorizedID+"/resolve",
			`{"resolved_by":"inspector-soto","notes":"autorización verbal del coordinador"}`)
		require.Equal(t, http.StatusNoContent, w.Code)

		// The in-memory log is updated immediately.
		resolved := true
		events := engine.Events(geofence.EventFilter{Resolved: &resolved})
		require.Len(t, events, 1)
		assert.Equal(t, unauthorizedID, events[0].ID)
		assert.Equal(t, "inspector-soto", events[0].ResolvedBy)
		require.NotNil(t, events[0].ResolvedAt)

		// The resolution is written through to the archive.
		assert.Eventually(t, func() bool {
			var record model.EventRecord
			if testDB.First(&record, "event_id = ?", unauthorizedID).Error != nil {
				return false
			}
			return record.Resolved
		}, 2*time.Second, 10*time.Millisecond, "Resolution should reach the database")

		var record model.EventRecord
		require.NoError(t, testDB.First(&record, "event_id = ?", unauthorizedID).Error)
		assert.Equal(t, "inspector-soto", record.ResolvedBy)
		assert.Equal(t, "autorización verbal del coordinador", record.Notes)
	})

	t.Run("Step 3: Teacher Leaves For The Assembly Yard", func(t *testing.T) {
		w := post("/api/locations/update",
			`{"user_id":"prof-garcia","user_name":"Prof. García","user_role":"docente","location_id":"patio-principal"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Events []model.Event `json:"events"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Events, 2, "Expected one entry and one exit")

		// Entries come before exits, in registry order.
		assert.Equal(t, model.EventEntry, resp.Events[0].EventType)
		assert.Equal(t, "safe-assembly", resp.Events[0].ZoneID)
		assert.Equal(t, model.EventExit, resp.Events[1].EventType)
		assert.Equal(t, "high-risk-labs", resp.Events[1].ZoneID)

		// Resolving the same event again does not overwrite the first resolution.
		w = post("/api/events/"+unauthorizedID+"/resolve",
			`{"resolved_by":"alguien-mas"}`)
		require.Equal(t, http.StatusNoContent, w.Code)
		resolved := true
		events := engine.Events(geofence.EventFilter{Resolved: &resolved})
		require.Len(t, events, 1)
		assert.Equal(t, "inspector-soto", events[0].ResolvedBy)
	})
}
