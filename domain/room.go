package domain

// RoomID is the canonical room identifier, e.g. "!p9cXjd:shell.chat".
type RoomID string

// RoomAlias is a human-readable room name, e.g. "#lobby:shell.chat".
type RoomAlias string

// GroupID identifies a grouping of rooms shown together in a grid view.
type GroupID string

// Membership is the current user's state in a room.
type Membership string

const (
	MembershipJoin   Membership = "join"
	MembershipInvite Membership = "invite"
	MembershipLeave  Membership = "leave"
)

// Room is the view-level room model handed out by the session collaborator.
type Room struct {
	ID         RoomID
	Alias      RoomAlias
	Name       string
	Membership Membership
	DirectWith string // account identifier for direct-message rooms, empty otherwise
}

// IsJoined reports whether the current user is joined to the room.
func (r *Room) IsJoined() bool {
	return r != nil && r.Membership == MembershipJoin
}

// CreateRoomOptions seeds room creation. At most one DM field is set; both
// empty means a plain multi-user room.
type CreateRoomOptions struct {
	Name     string
	DMUserID string
	DMEmail  string
}
