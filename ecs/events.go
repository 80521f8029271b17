package ecs

// EventType identifies what happened during a tick.
type EventType string

const (
	EventSpawned      EventType = "spawned"
	EventEntityKilled EventType = "entity_killed"
	EventLevelUp      EventType = "level_up"
	EventHealed       EventType = "healed"
	EventPlayerDied   EventType = "player_died"
	EventRespawned    EventType = "respawned"
)

// Event is a notification raised by a system for whoever drives the world.
type Event struct {
	Type     EventType
	EntityID int
	Data     any
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
