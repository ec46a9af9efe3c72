package eventbus

import (
	"encoding/json"
	"log"

	"github.com/google/uuid"
)

// RoomBroadcaster is the slice of the connection registry the dispatcher
// needs: addressed delivery to locally-present room members.
type RoomBroadcaster interface {
	BroadcastToRoom(roomID uuid.UUID, payload []byte, excludeUser *uuid.UUID)
}

// Dispatcher maps broker events to local socket delivery. Unknown event
// types are ignored so newer producers do not break older processes.
type Dispatcher struct {
	conns RoomBroadcaster
}

func NewDispatcher(conns RoomBroadcaster) *Dispatcher {
	return &Dispatcher{conns: conns}
}

// Run drains events until the channel closes. Intended as the body of the
// process's single long-lived subscription goroutine.
func (d *Dispatcher) Run(events <-chan Event) {
	for event := range events {
		d.Dispatch(event)
	}
}

func (d *Dispatcher) Dispatch(event Event) {
	switch event.Message.Type {
	case TypeNewMessage, TypeSystemMessage, TypeTyping:
	default:
		// forward-compatible: unknown types are not an error
		return
	}

	roomID, ok := payloadUUID(event.Message.Payload, "room_id")
	if !ok {
		log.Printf("WARNING: event %q carries no valid room_id, skipping", event.Message.Type)
		return
	}

	payload, err := json.Marshal(event.Message)
	if err != nil {
		log.Printf("ERROR: failed to encode event %q: %v", event.Message.Type, err)
		return
	}

	if event.Message.Type == TypeTyping {
		// the typist already knows they are typing
		var exclude *uuid.UUID
		if userID, ok := payloadUUID(event.Message.Payload, "user_id"); ok {
			exclude = &userID
		}
		d.conns.BroadcastToRoom(roomID, payload, exclude)
		return
	}
	d.conns.BroadcastToRoom(roomID, payload, nil)
}

func payloadUUID(payload map[string]any, key string) (uuid.UUID, bool) {
	raw, ok := payload[key].(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
