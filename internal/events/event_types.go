package events

// EventType identifies a domain event.
type EventType string

const (
	EventEntryCreated EventType = "box.entry.created"
	EventEntryUpdated EventType = "box.entry.updated"
	EventEntryDeleted EventType = "box.entry.deleted"
	EventBoxCleared   EventType = "box.cleared"
)

// Event carries the facts of a box mutation.
type Event struct {
	Type    EventType
	User    string
	EntryID string
	Payload map[string]any
}
