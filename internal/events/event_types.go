package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered EventType = "user_registered"
	EventUserLoggedIn   EventType = "user_logged_in"
	EventOrderPlaced    EventType = "order_placed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Email     string      `json:"email"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Name string `json:"name"`
}

// OrderPlacedPayload payload.
type OrderPlacedPayload struct {
	OrderName string `json:"order_name"`
	Amount    string `json:"amount"`
	Phone     string `json:"phone"`
	Receipt   string `json:"receipt"`
}
