// Package webhook receives Mandrill webhook batches.
//
// Mandrill POSTs a form with a single mandrill_events field holding a JSON
// array of events, signed with the webhook key in X-Mandrill-Signature.
package webhook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// FormField is the form field carrying the JSON event batch.
const FormField = "mandrill_events"

// Event is one entry of a webhook batch. Message events (send, open, click,
// ...) and inbound events set Event and Msg; sync events set Type and Action.
type Event struct {
	Event     string          `json:"event"`
	ID        string          `json:"_id"`
	Timestamp time.Time       `json:"-"`
	Msg       map[string]any  `json:"msg"`
	Type      string          `json:"type"`
	Action    string          `json:"action"`
	Reject    map[string]any  `json:"reject"`
	Entry     map[string]any  `json:"entry"`
	Raw       json.RawMessage `json:"-"`
}

// Kind returns the event name, or "sync:<type>" for sync events.
func (e Event) Kind() string {
	if e.Event != "" {
		return e.Event
	}
	if e.Type != "" {
		return "sync:" + e.Type
	}
	return "unknown"
}

// ParseEvents decodes the mandrill_events payload. Numbers inside Msg are
// json.Number values.
func ParseEvents(payload string) ([]Event, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal([]byte(payload), &raws); err != nil {
		return nil, fmt.Errorf("invalid %s payload: %w", FormField, err)
	}

	events := make([]Event, 0, len(raws))
	for i, raw := range raws {
		var wire struct {
			Event
			TS json.Number `json:"ts"`
		}
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		if err := dec.Decode(&wire); err != nil {
			return nil, fmt.Errorf("invalid event at index %d: %w", i, err)
		}

		event := wire.Event
		event.Raw = raw
		if wire.TS != "" {
			ts, err := wire.TS.Float64()
			if err != nil {
				return nil, fmt.Errorf("invalid ts at index %d: %w", i, err)
			}
			event.Timestamp = time.Unix(int64(ts), 0).UTC()
		}
		events = append(events, event)
	}

	return events, nil
}
