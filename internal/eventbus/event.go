// Package eventbus bridges locally-produced domain events to every process
// holding relevant sockets. A single shared broker channel carries all room
// events; each process runs one subscription loop and routes by local room
// membership. The broker is the only cross-process shared state.
package eventbus

import "context"

// Outbound event types carried over the bus and pushed to sockets.
const (
	TypeNewMessage    = "new_message"
	TypeSystemMessage = "system_message"
	TypeTyping        = "typing"
)

// Message is the typed half of the envelope, also the exact frame a socket
// receives.
type Message struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

// Event is the broker envelope: a named channel plus the message.
type Event struct {
	Channel string  `json:"channel"`
	Message Message `json:"message"`
}

// Bus is the publish/subscribe abstraction. Subscribe delivers every event
// published on the channel to every current subscriber (broadcast, not
// queue-competing) until ctx is cancelled. Transport failures surface to
// the caller; no retries happen here.
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(ctx context.Context, channel string) (<-chan Event, error)
}
