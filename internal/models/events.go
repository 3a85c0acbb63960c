package models

import "time"

// Event types
const (
	EventTypeEntryPublished   = "ENTRY_PUBLISHED"
	EventTypeEntryUnpublished = "ENTRY_UNPUBLISHED"
	EventTypeInquiryReceived  = "INQUIRY_RECEIVED"
)

// Entity names used in events and cache keys
const (
	EntityProduct       = "product"
	EntityFactoryUpdate = "factory-update"
	EntityInquiry       = "inquiry"
)

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

// EntryEvent published when a content entry is created, updated or
// unpublished. Consumers use Entity to invalidate cached responses.
type EntryEvent struct {
	BaseEvent
	Entity  string `json:"entity"`
	EntryID int64  `json:"entry_id"`
	Slug    string `json:"slug,omitempty"`
	Locale  string `json:"locale,omitempty"`
}

// InquiryReceivedEvent published when the storefront submits an inquiry.
type InquiryReceivedEvent struct {
	BaseEvent
	InquiryID   int64  `json:"inquiry_id"`
	Email       string `json:"email"`
	ProductSlug string `json:"product_slug,omitempty"`
}
