package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

type RoomType string

const (
	RoomTypePublic  RoomType = "public"
	RoomTypePrivate RoomType = "private"
)

// Room is a chat room. A PRIVATE room has exactly two members, fixed at
// creation. The owner is always a member and can never leave.
type Room struct {
	id        uuid.UUID
	name      RoomName
	ownerID   uuid.UUID
	roomType  RoomType
	members   map[uuid.UUID]struct{}
	createdAt time.Time
}

// NewRoom creates a room owned by ownerID. For a public room members may be
// nil, in which case the owner is the sole member. For a private room
// members must be exactly the owner and one other user.
func NewRoom(name RoomName, ownerID uuid.UUID, roomType RoomType, members []uuid.UUID) (*Room, error) {
	return RestoreRoom(uuid.New(), name, ownerID, roomType, members, time.Now().UTC())
}

// RestoreRoom rebuilds a room from persisted state, re-checking the
// private-room cardinality and owner-membership invariants.
func RestoreRoom(id uuid.UUID, name RoomName, ownerID uuid.UUID, roomType RoomType, members []uuid.UUID, createdAt time.Time) (*Room, error) {
	set := make(map[uuid.UUID]struct{}, len(members)+1)
	for _, m := range members {
		set[m] = struct{}{}
	}
	// owner is always a member
	set[ownerID] = struct{}{}

	if roomType == RoomTypePrivate && len(set) != 2 {
		return nil, ErrPrivateRoomSize
	}

	return &Room{
		id:        id,
		name:      name,
		ownerID:   ownerID,
		roomType:  roomType,
		members:   set,
		createdAt: createdAt,
	}, nil
}

func (r *Room) ID() uuid.UUID        { return r.id }
func (r *Room) Name() RoomName       { return r.name }
func (r *Room) OwnerID() uuid.UUID   { return r.ownerID }
func (r *Room) Type() RoomType       { return r.roomType }
func (r *Room) CreatedAt() time.Time { return r.createdAt }

func (r *Room) IsMember(userID uuid.UUID) bool {
	_, ok := r.members[userID]
	return ok
}

// Members returns a defensive copy; mutating it does not touch room state.
func (r *Room) Members() []uuid.UUID {
	out := make([]uuid.UUID, 0, len(r.members))
	for m := range r.members {
		out = append(out, m)
	}
	return out
}

func (r *Room) AddMember(userID uuid.UUID) error {
	if r.IsMember(userID) {
		return ErrUserAlreadyInRoom
	}
	if r.roomType == RoomTypePrivate {
		return ErrPrivateRoomImmutable
	}
	r.members[userID] = struct{}{}
	return nil
}

func (r *Room) RemoveMember(userID uuid.UUID) error {
	if !r.IsMember(userID) {
		return ErrUserNotInRoom
	}
	if userID == r.ownerID {
		return ErrOwnerCannotLeave
	}
	if r.roomType == RoomTypePrivate {
		return ErrPrivateRoomImmutable
	}
	delete(r.members, userID)
	return nil
}

// PairKey builds an order-independent key for a private-room member pair.
// Existence checks index on this key instead of filtering member rows, so
// unrelated private rooms sharing one of the two users can never collide.
func PairKey(a, b uuid.UUID) string {
	ids := []string{a.String(), b.String()}
	sort.Strings(ids)
	return strings.Join(ids, ":")
}
