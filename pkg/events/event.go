package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "order.completed").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Event type codes used across the platform.
const (
	TypeOrderCreated   = "order.created"
	TypeOrderCompleted = "order.completed"
	TypeOrderFailed    = "order.failed"
	TypeOrderRefunded  = "order.refunded"
	TypePlanChanged    = "plan.changed"
	TypeTicketCreated  = "ticket.created"
	TypeTicketReplied  = "ticket.replied"
)

func NewOrderCompleted(orderId, userId string, amount float64) Event {
	return BaseEvent{
		Type: TypeOrderCompleted,
		Data: map[string]interface{}{
			"order_id": orderId,
			"user_id":  userId,
			"amount":   amount,
		},
		OccurredAt: time.Now(),
	}
}

func NewTicketReplied(ticketId, userId string) Event {
	return BaseEvent{
		Type: TypeTicketReplied,
		Data: map[string]interface{}{
			"ticket_id": ticketId,
			"user_id":   userId,
		},
		OccurredAt: time.Now(),
	}
}
