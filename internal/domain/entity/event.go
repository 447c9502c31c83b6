// Package entity contains the core business objects of the project.
package entity

// EventType names a cross-subject event delivered to the real-time sink.
type EventType string

const (
	EventSuperLikeReceived EventType = "superlike_received"
	EventMatchCreated      EventType = "match_created"
	EventBoostActivated    EventType = "boost_activated"
)
