package store

import (
	"context"
	"log"

	"school-security-backend/internal/model"
)

// Archiver subscribes to the geofence engine and copies emitted events into
// the database in the background. Writes are decoupled from the evaluation
// path: a failed write is logged and dropped, never retried, and never rolls
// back the in-memory event.
type Archiver struct {
	store Store
	jobs  chan archiveJob
}

type archiveJob struct {
	event   model.Event
	resolve bool
}

// NewArchiver creates an archiver over the given store.
func NewArchiver(s Store) *Archiver {
	return &Archiver{
		store: s,
		jobs:  make(chan archiveJob, 128),
	}
}

// Start launches the background writer. It runs until the context is done.
func (a *Archiver) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case job := <-a.jobs:
				a.process(ctx, job)
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (a *Archiver) process(ctx context.Context, job archiveJob) {
	var err error
	if job.resolve {
		err = a.store.MarkResolved(ctx, job.event)
	} else {
		err = a.store.ArchiveEvent(ctx, job.event)
	}
	if err != nil {
		log.Printf("Event archive write failed for %s: %v", job.event.ID, err)
	}
}

// RecordEvent queues an event for archiving. If the queue is full the event
// is dropped; the in-memory log remains the source of truth.
func (a *Archiver) RecordEvent(ev model.Event) {
	select {
	case a.jobs <- archiveJob{event: ev}:
	default:
		log.Printf("Event archive queue full, dropping event %s", ev.ID)
	}
}

// RecordResolution queues a resolution write-through.
func (a *Archiver) RecordResolution(ev model.Event) {
	select {
	case a.jobs <- archiveJob{event: ev, resolve: true}:
	default:
		log.Printf("Event archive queue full, dropping resolution of %s", ev.ID)
	}
}
