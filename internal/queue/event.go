// Package queue carries booking events over RabbitMQ: the publisher side
// implements the real-time broadcast channel, the consumer side appends a
// human-readable line per event to logs/booking.log.
package queue

import "encoding/json"

const bookingQueueName = "booking.events"

// Envelope wraps a named event and its payload for transport. Payload is the
// affected booking marshaled as-is, so downstream consumers can log or react
// without querying the primary database.
type Envelope struct {
	Event     string          `json:"event"`
	Payload   json.RawMessage `json:"payload"`
	EmittedAt string          `json:"emitted_at"`
}
