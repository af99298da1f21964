package queue

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatLine(t *testing.T) {
	t.Parallel()

	payload := json.RawMessage(`{"id":7,"user":3,"status":"confirmed","eventType":"wedding"}`)
	line := formatLine(Envelope{
		Event:     "bookingConfirmed",
		Payload:   payload,
		EmittedAt: "2025-06-01T18:00:00Z",
	})

	assert.Contains(t, line, "[2025-06-01T18:00:00Z] bookingConfirmed")
	assert.Contains(t, line, "booking_id=7")
	assert.Contains(t, line, "user_id=3")
	assert.Contains(t, line, "status=confirmed")
	assert.Contains(t, line, `"eventType":"wedding"`)
	assert.Equal(t, byte('\n'), line[len(line)-1])
}

// A payload that is not a booking still produces a parseable line with zero
// values instead of failing the consumer.
func TestFormatLine_UnknownPayload(t *testing.T) {
	t.Parallel()

	line := formatLine(Envelope{
		Event:     "newBooking",
		Payload:   json.RawMessage(`"not an object"`),
		EmittedAt: "2025-06-01T18:00:00Z",
	})
	assert.Contains(t, line, "booking_id=0")
	assert.Contains(t, line, "status=")
}
