//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-shell/domain"
	"chat-shell/domain/action"
	"context"
	"reflect"
)

// HandlerID identifies one registered dispatch handler.
type HandlerID string

// Dispatcher is a publish/subscribe channel for named, payload-bearing
// actions. Delivery is run-to-completion: exactly one action is processed at
// a time, and an action dispatched from inside a handler is queued behind the
// one currently being delivered.
type Dispatcher interface {
	Register(handler func(action.Action)) HandlerID
	Unregister(id HandlerID)
	Dispatch(a action.Action)
}

// Store is a per-room UI state holder addressed through its own private
// dispatcher. The router only needs identity for routing comparisons and a
// way to detach the store on teardown.
type Store interface {
	RoomID() domain.RoomID
	RoomAlias() domain.RoomAlias
	Stop()
}

// Session is the chat-client access collaborator: the current user's handle
// on server-side state. Suspending calls take a context; there is no
// cancellation beyond it.
type Session interface {
	UserID() string
	ResolveAlias(ctx context.Context, alias domain.RoomAlias) (domain.RoomID, error)
	Room(id domain.RoomID) (*domain.Room, error)
	InviteUser(ctx context.Context, roomID domain.RoomID, userID string) error
	InviteEmail(ctx context.Context, roomID domain.RoomID, email string) error
}

// RoomCreator creates a room, optionally seeded as a direct chat.
type RoomCreator interface {
	CreateRoom(ctx context.Context, opts domain.CreateRoomOptions) (domain.RoomID, error)
}

// Inviter performs a multi-address invite batch. Failures live inside the
// returned result set, including whether the batch aborted fatally.
type Inviter interface {
	Invite(ctx context.Context, roomID domain.RoomID, addresses []domain.Address) *domain.InviteResultSet
}

// DMIndex knows the existing direct-message rooms per account identifier.
type DMIndex interface {
	RoomsForUser(userID string) []domain.RoomID
}

// GroupIndex knows which rooms belong to a group.
type GroupIndex interface {
	MemberRooms(groupID domain.GroupID) []domain.RoomID
}

// ChooserOptions describes a modal with two callback outcomes.
type ChooserOptions struct {
	Title          string
	Description    string
	PrimaryLabel   string
	SecondaryLabel string
	OnPrimary      func()
	OnSecondary    func()
}

// AddressPickerOptions describes the invite address picker. Picked addresses
// are filtered down to ValidKinds before OnFinished runs; OnFinished receives
// confirmed=false when the user declines the dialog.
type AddressPickerOptions struct {
	Title       string
	Description string
	Button      string
	ValidKinds  []domain.AddressKind
	OnFinished  func(confirmed bool, addresses []domain.Address)
}

// Modals presents titled, described dialogs.
type Modals interface {
	ErrorReport(title, description string)
	InviteFailures(title string, failures []domain.AddressFailure)
	Chooser(opts ChooserOptions)
	AddressPicker(opts AddressPickerOptions)
}

// Localizer renders a message key, with optional named substitutions, to
// display text.
type Localizer interface {
	T(key string, subs map[string]string) string
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker
// initialization or lifecycle events, avoiding the need for manual naming in
// the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
