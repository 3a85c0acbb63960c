package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"content-service/internal/models"

	"github.com/segmentio/kafka-go"
)

// EventPublisher handles publishing content events
type EventPublisher struct {
	producer *Producer
}

// NewEventPublisher creates a new event publisher
func NewEventPublisher(producer *Producer) *EventPublisher {
	return &EventPublisher{producer: producer}
}

// PublishEntryEvent publishes an entry published/unpublished event
func (ep *EventPublisher) PublishEntryEvent(ctx context.Context, event *models.EntryEvent) error {
	key := fmt.Sprintf("%s-%d", event.Entity, event.EntryID)
	return ep.producer.PublishEvent(ctx, key, event)
}

// PublishInquiryReceived publishes an InquiryReceived event
func (ep *EventPublisher) PublishInquiryReceived(ctx context.Context, event *models.InquiryReceivedEvent) error {
	key := fmt.Sprintf("inquiry-%d", event.InquiryID)
	return ep.producer.PublishEvent(ctx, key, event)
}

// EventHandler routes incoming content events
type EventHandler struct {
	onEntryEvent      func(context.Context, *models.EntryEvent) error
	onInquiryReceived func(context.Context, *models.InquiryReceivedEvent) error
}

// NewEventHandler creates a new event handler
func NewEventHandler() *EventHandler {
	return &EventHandler{}
}

// OnEntryEvent registers a handler for entry published/unpublished events
func (eh *EventHandler) OnEntryEvent(handler func(context.Context, *models.EntryEvent) error) {
	eh.onEntryEvent = handler
}

// OnInquiryReceived registers a handler for InquiryReceived events
func (eh *EventHandler) OnInquiryReceived(handler func(context.Context, *models.InquiryReceivedEvent) error) {
	eh.onInquiryReceived = handler
}

// HandleMessage routes messages to appropriate handlers
func (eh *EventHandler) HandleMessage(ctx context.Context, msg kafka.Message) error {
	var baseEvent models.BaseEvent
	if err := json.Unmarshal(msg.Value, &baseEvent); err != nil {
		return fmt.Errorf("failed to unmarshal base event: %w", err)
	}

	log.Printf("Handling event: type=%s, id=%s", baseEvent.EventType, baseEvent.EventID)

	switch baseEvent.EventType {
	case models.EventTypeEntryPublished, models.EventTypeEntryUnpublished:
		if eh.onEntryEvent != nil {
			var event models.EntryEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				return fmt.Errorf("failed to unmarshal entry event: %w", err)
			}
			return eh.onEntryEvent(ctx, &event)
		}

	case models.EventTypeInquiryReceived:
		if eh.onInquiryReceived != nil {
			var event models.InquiryReceivedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				return fmt.Errorf("failed to unmarshal InquiryReceived event: %w", err)
			}
			return eh.onInquiryReceived(ctx, &event)
		}

	default:
		log.Printf("Unknown event type: %s", baseEvent.EventType)
	}

	return nil
}
