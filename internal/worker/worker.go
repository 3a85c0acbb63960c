package worker

import (
	"context"
	"log"

	"content-service/internal/broker"
	"content-service/internal/cache"
	"content-service/internal/models"
	"content-service/internal/util"
)

// InvalidationWorker drops cached API responses when content changes. It
// consumes entry events and deletes every cached response for the touched
// entity type.
type InvalidationWorker struct {
	consumer     *broker.Consumer
	eventHandler *broker.EventHandler
	cache        cache.Cache
}

// NewInvalidationWorker creates a new cache-invalidation worker
func NewInvalidationWorker(consumer *broker.Consumer, c cache.Cache) *InvalidationWorker {
	w := &InvalidationWorker{
		consumer: consumer,
		cache:    c,
	}

	eventHandler := broker.NewEventHandler()
	eventHandler.OnEntryEvent(w.handleEntryEvent)
	w.eventHandler = eventHandler

	return w
}

func (w *InvalidationWorker) handleEntryEvent(ctx context.Context, event *models.EntryEvent) error {
	if err := w.cache.DeletePrefix(ctx, event.Entity); err != nil {
		return err
	}
	util.CacheInvalidationsTotal.WithLabelValues(event.Entity).Inc()
	log.Printf("Invalidated cached responses: entity=%s, entry=%d", event.Entity, event.EntryID)
	return nil
}

// Start starts the worker
func (w *InvalidationWorker) Start(ctx context.Context) error {
	log.Println("Starting cache-invalidation worker...")
	return w.consumer.StartConsuming(ctx, w.eventHandler.HandleMessage)
}

// Stop stops the worker
func (w *InvalidationWorker) Stop() error {
	log.Println("Stopping cache-invalidation worker...")
	return w.consumer.Close()
}
