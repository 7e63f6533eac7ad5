// Package action defines the closed set of UI actions carried by
// dispatchers. Each action name is its own struct carrying only the fields
// relevant to it; the router matches the set exhaustively.
package action

import (
	"chat-shell/domain"
)

// Action is a named, payload-bearing UI action.
type Action interface {
	Name() string
}

// ViewRoom asks the router to show a single room, identified by id or alias.
// When only the alias is known the router resolves it first and re-dispatches
// with the id, carrying the metadata through.
type ViewRoom struct {
	RoomID      domain.RoomID
	Alias       domain.RoomAlias
	EventID     string // initial event to scroll to, optional
	Highlighted bool
	AutoJoin    bool
	OutOfBand   bool // room was reached from outside the client, e.g. a link
}

func (ViewRoom) Name() string { return "view_room" }

// ViewRoomError reports a failed alias resolution to the currently open room
// without touching router state.
type ViewRoomError struct {
	RoomID domain.RoomID
	Alias  domain.RoomAlias
	Err    error
}

func (ViewRoomError) Name() string { return "view_room_error" }

type ViewMyGroups struct{}

func (ViewMyGroups) Name() string { return "view_my_groups" }

type ViewGroup struct {
	GroupID domain.GroupID
}

func (ViewGroup) Name() string { return "view_group" }

// ViewGroupGrid asks the router to show every room of a group at once, one
// sub-store per room.
type ViewGroupGrid struct {
	GroupID domain.GroupID
}

func (ViewGroupGrid) Name() string { return "view_group_grid" }

// ForwardEvent remembers an event to be sent into the next room the user
// views.
type ForwardEvent struct {
	Event domain.Event
}

func (ForwardEvent) Name() string { return "forward_event" }

// SendEvent is emitted by the router once a pending forwarded event meets a
// resolved room id.
type SendEvent struct {
	RoomID domain.RoomID
	Event  domain.Event
}

func (SendEvent) Name() string { return "send_event" }

// StartChat is dispatched when the user chooses to start a fresh direct chat
// instead of reusing an existing one.
type StartChat struct{}

func (StartChat) Name() string { return "start_chat" }

type WillJoin struct{}

func (WillJoin) Name() string { return "will_join" }

type CancelJoin struct{}

func (CancelJoin) Name() string { return "cancel_join" }

type JoinRoom struct {
	RoomID domain.RoomID
}

func (JoinRoom) Name() string { return "join_room" }

type JoinRoomError struct {
	RoomID domain.RoomID
	Err    error
}

func (JoinRoomError) Name() string { return "join_room_error" }

type OnLoggedOut struct{}

func (OnLoggedOut) Name() string { return "on_logged_out" }

type ReplyToEvent struct {
	Event domain.Event
}

func (ReplyToEvent) Name() string { return "reply_to_event" }

type OpenRoomSettings struct {
	RoomID domain.RoomID
}

func (OpenRoomSettings) Name() string { return "open_room_settings" }

type CloseSettings struct{}

func (CloseSettings) Name() string { return "close_settings" }
