package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"school-security-backend/internal/model"
)

// Store defines the interface for all database operations.
type Store interface {
	DB() *gorm.DB

	// ArchiveEvent writes the persisted copy of an emitted event. The
	// in-memory log is authoritative; archiving is best-effort.
	ArchiveEvent(ctx context.Context, ev model.Event) error

	// MarkResolved updates the archived row with the resolution fields.
	// Unknown event ids are not an error.
	MarkResolved(ctx context.Context, ev model.Event) error

	// SubscriptionsForZone returns the push subscriptions that asked for
	// alerts of the given zone.
	SubscriptionsForZone(ctx context.Context, zoneID string) ([]model.PushSubscription, error)

	// DeleteSubscription removes a subscription and its zone mappings.
	DeleteSubscription(ctx context.Context, endpoint string) error
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) DB() *gorm.DB {
	return s.db
}

func (s *gormStore) ArchiveEvent(ctx context.Context, ev model.Event) error {
	record := model.NewEventRecord(ev)
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "event_id"}},
		DoNothing: true,
	}).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to archive event %s: %w", ev.ID, err)
	}
	return nil
}

func (s *gormStore) MarkResolved(ctx context.Context, ev model.Event) error {
	res := s.db.WithContext(ctx).
		Model(&model.EventRecord{}).
		Where("event_id = ?", ev.ID).
		Updates(map[string]any{
			"resolved":    true,
			"resolved_by": ev.ResolvedBy,
			"resolved_at": ev.ResolvedAt,
			"notes":       ev.Notes,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to mark event %s resolved: %w", ev.ID, res.Error)
	}
	return nil
}

func (s *gormStore) SubscriptionsForZone(ctx context.Context, zoneID string) ([]model.PushSubscription, error) {
	var subscriptions []model.PushSubscription
	err := s.db.WithContext(ctx).
		Joins("JOIN subscription_zones sz ON sz.subscription_endpoint = push_subscriptions.endpoint").
		Where("sz.zone_id = ?", zoneID).
		Find(&subscriptions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch subscriptions for zone %s: %w", zoneID, err)
	}
	return subscriptions, nil
}

func (s *gormStore) DeleteSubscription(ctx context.Context, endpoint string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("subscription_endpoint = ?", endpoint).
			Delete(&model.SubscriptionZone{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.PushSubscription{Endpoint: endpoint}).Error
	})
}
