package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"school-security-backend/internal/model"
)

func newSQLiteStore(t *testing.T, name string) (Store, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	require.NoError(t, db.AutoMigrate(
		&model.EventRecord{},
		&model.PushSubscription{},
		&model.SubscriptionZone{},
	))
	return NewGormStore(db), db
}

func sampleEvent(id string) model.Event {
	return model.Event{
		ID:        id,
		ZoneID:    "high-risk-labs",
		UserID:    "u1",
		UserName:  "Usuario Uno",
		UserRole:  "docente",
		EventType: model.EventUnauthorized,
		Timestamp: time.Now().UTC(),
		Location:  model.Location{ID: "lab-quimica", Name: "Laboratorio de Química"},
		RiskLevel: model.RiskHigh,
	}
}

func TestGormStore_ArchiveEvent(t *testing.T) {
	s, db := newSQLiteStore(t, "archive_event")
	ctx := context.Background()

	ev := sampleEvent("ev-1")
	require.NoError(t, s.ArchiveEvent(ctx, ev))

	var record model.EventRecord
	require.NoError(t, db.First(&record, "event_id = ?", "ev-1").Error)
	assert.Equal(t, "high-risk-labs", record.ZoneID)
	assert.Equal(t, "unauthorized_access", record.EventType)
	assert.Equal(t, "lab-quimica", record.LocationID)
	assert.False(t, record.Resolved)

	// Re-archiving the same event is harmless.
	require.NoError(t, s.ArchiveEvent(ctx, ev))
	var count int64
	db.Model(&model.EventRecord{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestGormStore_MarkResolved(t *testing.T) {
	s, db := newSQLiteStore(t, "mark_resolved")
	ctx := context.Background()

	ev := sampleEvent("ev-2")
	require.NoError(t, s.ArchiveEvent(ctx, ev))

	resolvedAt := time.Now().UTC()
	ev.Resolved = true
	ev.ResolvedBy = "inspector-1"
	ev.ResolvedAt = &resolvedAt
	ev.Notes = "falsa alarma"
	require.NoError(t, s.MarkResolved(ctx, ev))

	var record model.EventRecord
	require.NoError(t, db.First(&record, "event_id = ?", "ev-2").Error)
	assert.True(t, record.Resolved)
	assert.Equal(t, "inspector-1", record.ResolvedBy)
	assert.Equal(t, "falsa alarma", record.Notes)
	require.NotNil(t, record.ResolvedAt)
}

func TestGormStore_MarkResolved_UnknownEventIsNoError(t *testing.T) {
	s, _ := newSQLiteStore(t, "resolve_unknown")
	ev := sampleEvent("never-archived")
	ev.Resolved = true
	assert.NoError(t, s.MarkResolved(context.Background(), ev))
}

func TestGormStore_SubscriptionsForZone(t *testing.T) {
	s, db := newSQLiteStore(t, "subs_for_zone")
	ctx := context.Background()

	require.NoError(t, db.Create(&model.PushSubscription{
		Endpoint: "https://example.com/a", P256DH: "p", Auth: "a",
	}).Error)
	require.NoError(t, db.Create(&model.PushSubscription{
		Endpoint: "https://example.com/b", P256DH: "p", Auth: "a",
	}).Error)
	require.NoError(t, db.Create(&[]model.SubscriptionZone{
		{SubscriptionEndpoint: "https://example.com/a", ZoneID: "high-risk-labs"},
		{SubscriptionEndpoint: "https://example.com/b", ZoneID: "safe-assembly"},
	}).Error)

	subs, err := s.SubscriptionsForZone(ctx, "high-risk-labs")
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "https://example.com/a", subs[0].Endpoint)

	subs, err = s.SubscriptionsForZone(ctx, "emergency-exits")
	require.NoError(t, err)
	assert.Empty(t, subs)
}

func TestGormStore_DeleteSubscription(t *testing.T) {
	s, db := newSQLiteStore(t, "delete_sub")
	ctx := context.Background()

	require.NoError(t, db.Create(&model.PushSubscription{
		Endpoint: "https://example.com/a", P256DH: "p", Auth: "a",
	}).Error)
	require.NoError(t, db.Create(&model.SubscriptionZone{
		SubscriptionEndpoint: "https://example.com/a", ZoneID: "high-risk-labs",
	}).Error)

	require.NoError(t, s.DeleteSubscription(ctx, "https://example.com/a"))

	var subCount, zoneCount int64
	db.Model(&model.PushSubscription{}).Count(&subCount)
	db.Model(&model.SubscriptionZone{}).Count(&zoneCount)
	assert.Equal(t, int64(0), subCount)
	assert.Equal(t, int64(0), zoneCount, "zone mappings are removed with the subscription")
}
