package mq

import (
	"log"
)

type Event struct {
	EntityType string `json:"entity_type"`
	Method     string `json:"method"`
	EntityID   string `json:"entity_id"`
	UserID     string `json:"user_id,omitempty"`
}

// Emit publishes a domain event. Currently just logs; a broker can be
// swapped in here without touching callers.
func Emit(eventName string, content Event) error {
	log.Printf("event %s: %s %s %s", eventName, content.Method, content.EntityType, content.EntityID)
	return nil
}
