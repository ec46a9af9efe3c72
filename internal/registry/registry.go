// Package registry tracks, per process, which users hold live sockets and
// which users are present in which rooms. It is a cache of presence, rebuilt
// from zero on restart; persistent membership lives in storage. The registry
// never talks to persistence or other processes — remote delivery is the
// event bus's job.
package registry

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

// Socket is one live connection. Implementations must make Send safe for
// concurrent use; the websocket client does this with a buffered channel.
type Socket interface {
	Send(payload []byte) error
}

// Registry is safe for concurrent use by many socket handlers. Broadcasts
// snapshot the member set under the lock and deliver outside it, so a send
// can never observe a half-updated set.
type Registry struct {
	mu          sync.Mutex
	userSockets map[uuid.UUID]map[Socket]struct{}
	roomMembers map[uuid.UUID]map[uuid.UUID]struct{}
}

func New() *Registry {
	return &Registry{
		userSockets: make(map[uuid.UUID]map[Socket]struct{}),
		roomMembers: make(map[uuid.UUID]map[uuid.UUID]struct{}),
	}
}

// Connect registers a live socket for the user. Additive: a user may hold
// several sockets on one process.
func (r *Registry) Connect(userID uuid.UUID, s Socket) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sockets, ok := r.userSockets[userID]
	if !ok {
		sockets = make(map[Socket]struct{})
		r.userSockets[userID] = sockets
	}
	sockets[s] = struct{}{}
}

// Disconnect removes the socket. When the user's last socket closes, the
// user is also purged from every locally-tracked room; the rooms left are
// returned so the caller can emit leave notices.
func (r *Registry) Disconnect(userID uuid.UUID, s Socket) []uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()

	sockets, ok := r.userSockets[userID]
	if !ok {
		return nil
	}
	delete(sockets, s)
	if len(sockets) > 0 {
		return nil
	}
	delete(r.userSockets, userID)

	var left []uuid.UUID
	for roomID, members := range r.roomMembers {
		if _, ok := members[userID]; !ok {
			continue
		}
		delete(members, userID)
		if len(members) == 0 {
			delete(r.roomMembers, roomID)
		}
		left = append(left, roomID)
	}
	return left
}

func (r *Registry) JoinRoom(roomID, userID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	members, ok := r.roomMembers[roomID]
	if !ok {
		members = make(map[uuid.UUID]struct{})
		r.roomMembers[roomID] = members
	}
	members[userID] = struct{}{}
}

func (r *Registry) LeaveRoom(roomID, userID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	members, ok := r.roomMembers[roomID]
	if !ok {
		return
	}
	delete(members, userID)
	if len(members) == 0 {
		delete(r.roomMembers, roomID)
	}
}

// SendToUser delivers to every live socket of the user on this process.
// No-op when the user has no local sockets.
func (r *Registry) SendToUser(userID uuid.UUID, payload []byte) {
	r.mu.Lock()
	sockets := make([]Socket, 0, len(r.userSockets[userID]))
	for s := range r.userSockets[userID] {
		sockets = append(sockets, s)
	}
	r.mu.Unlock()

	for _, s := range sockets {
		if err := s.Send(payload); err != nil {
			log.Printf("ERROR: failed to deliver to a socket of user %s: %v", userID, err)
		}
	}
}

// BroadcastToRoom delivers to every locally-present room member, skipping
// excludeUser when non-nil.
func (r *Registry) BroadcastToRoom(roomID uuid.UUID, payload []byte, excludeUser *uuid.UUID) {
	r.mu.Lock()
	members := make([]uuid.UUID, 0, len(r.roomMembers[roomID]))
	for userID := range r.roomMembers[roomID] {
		if excludeUser != nil && userID == *excludeUser {
			continue
		}
		members = append(members, userID)
	}
	r.mu.Unlock()

	for _, userID := range members {
		r.SendToUser(userID, payload)
	}
}

func (r *Registry) IsUserOnline(userID uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.userSockets[userID]
	return ok
}

// membersOf returns the locally-present members of a room.
func (r *Registry) membersOf(roomID uuid.UUID) []uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]uuid.UUID, 0, len(r.roomMembers[roomID]))
	for userID := range r.roomMembers[roomID] {
		out = append(out, userID)
	}
	return out
}

// roomsOf returns every room the user is locally present in.
func (r *Registry) roomsOf(userID uuid.UUID) []uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []uuid.UUID
	for roomID, members := range r.roomMembers {
		if _, ok := members[userID]; ok {
			out = append(out, roomID)
		}
	}
	return out
}
