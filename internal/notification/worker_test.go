package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/SherClockHolmes/webpush-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"school-security-backend/internal/model"
	"school-security-backend/internal/store"
)

// mockSender is a mock implementation of the Sender interface.
type mockSender struct {
	SendFunc func(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error)
}

// Send calls the mock SendFunc.
func (m *mockSender) Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
	return m.SendFunc(payload, sub, options)
}

// A helper function to create a mock database connection.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func testAlert() model.Alert {
	return model.Alert{
		ID:        "1700000000000-1",
		Title:     "Acceso No Autorizado - Laboratorios de Alto Riesgo",
		Message:   "Usuario Uno (docente) en Laboratorio de Química. Acceso no autorizado detectado.",
		Priority:  model.PriorityHigh,
		ZoneID:    "high-risk-labs",
		Zone:      "Laboratorios de Alto Riesgo",
		User:      "Usuario Uno",
		Location:  "Laboratorio de Química",
		Timestamp: time.Now(),
		RiskLevel: model.RiskHigh,
	}
}

func TestWorkerPool_Dispatch(t *testing.T) {
	db, _ := newTestDB(t)
	wp := NewWorkerPool(1, store.NewGormStore(db), &webpush.Options{})

	alert := testAlert()
	wp.Dispatch(alert)

	select {
	case job := <-wp.jobs:
		assert.Equal(t, alert.ID, job.ID)
	case <-time.After(1 * time.Second):
		t.Fatal("timed out waiting for alert to be dispatched")
	}
}

func TestWorkerPool_WorkerLogic(t *testing.T) {
	gormDB, mock := newTestDB(t)
	wp := NewWorkerPool(1, store.NewGormStore(gormDB), &webpush.Options{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wp.Start(ctx)

	t.Run("sends alert payload to one subscriber", func(t *testing.T) {
		var wg sync.WaitGroup
		wg.Add(1)

		alert := testAlert()
		wp.sender = &mockSender{
			SendFunc: func(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
				assert.Equal(t, "https://example.com/push", sub.Endpoint)

				var got model.Alert
				assert.NoError(t, json.Unmarshal(payload, &got))
				assert.Equal(t, alert.Title, got.Title)
				assert.Equal(t, alert.ZoneID, got.ZoneID)

				wg.Done()
				return &http.Response{
					StatusCode: http.StatusCreated,
					Body:       io.NopCloser(bytes.NewBufferString("")),
				}, nil
			},
		}

		mock.ExpectQuery(`SELECT .* FROM "push_subscriptions" JOIN subscription_zones sz ON sz\.subscription_endpoint = push_subscriptions\.endpoint WHERE sz\.zone_id = \$1`).
			WithArgs(alert.ZoneID).
			WillReturnRows(sqlmock.NewRows([]string{"endpoint", "p256dh", "auth", "created_at"}).
				AddRow("https://example.com/push", "test_p256dh", "test_auth", time.Now()))

		wp.Dispatch(alert)
		wg.Wait()
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("deletes expired subscription", func(t *testing.T) {
		alert := testAlert()
		wp.sender = &mockSender{
			SendFunc: func(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusGone,
					Body:       io.NopCloser(bytes.NewBufferString("")),
				}, nil
			},
		}

		mock.ExpectQuery(`SELECT .* FROM "push_subscriptions" JOIN subscription_zones sz ON sz\.subscription_endpoint = push_subscriptions\.endpoint WHERE sz\.zone_id = \$1`).
			WithArgs(alert.ZoneID).
			WillReturnRows(sqlmock.NewRows([]string{"endpoint", "p256dh", "auth", "created_at"}).
				AddRow("https://example.com/expired", "p", "a", time.Now()))

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "subscription_zones" WHERE subscription_endpoint = \$1`).
			WithArgs("https://example.com/expired").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`DELETE FROM "push_subscriptions" WHERE "push_subscriptions"."endpoint" = \$1`).
			WithArgs("https://example.com/expired").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		wp.Dispatch(alert)

		// A short sleep to allow the worker to process the job
		time.Sleep(100 * time.Millisecond)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no subscribers means no send", func(t *testing.T) {
		alert := testAlert()
		sendCalled := false
		wp.sender = &mockSender{
			SendFunc: func(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
				sendCalled = true
				return nil, nil
			},
		}

		mock.ExpectQuery(`SELECT .* FROM "push_subscriptions" JOIN subscription_zones sz ON sz\.subscription_endpoint = push_subscriptions\.endpoint WHERE sz\.zone_id = \$1`).
			WithArgs(alert.ZoneID).
			WillReturnRows(sqlmock.NewRows([]string{"endpoint", "p256dh", "auth", "created_at"}))

		wp.Dispatch(alert)
		time.Sleep(100 * time.Millisecond)

		assert.False(t, sendCalled)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
