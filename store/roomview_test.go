package store_test

import (
	"chat-shell/dispatch"
	"chat-shell/domain"
	"chat-shell/domain/action"
	"chat-shell/errors"
	"chat-shell/store"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func newRoomView(t *testing.T) (*dispatch.Dispatcher, *store.RoomViewStore) {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	d := dispatch.New(log)
	return d, store.NewRoomViewStore(log, d)
}

func TestRoomViewStore_ViewRoom_Sets_Room_And_Metadata(t *testing.T) {
	req := require.New(t)
	d, s := newRoomView(t)

	notified := 0
	s.Watch(func(store.RoomViewState) { notified++ })

	// When a view_room arrives on the private dispatcher
	d.Dispatch(action.ViewRoom{
		RoomID:      "!a:shell.chat",
		Alias:       "#lobby:shell.chat",
		EventID:     "$evt1",
		Highlighted: true,
	})

	// Then state reflects the payload and watchers were notified
	state := s.State()
	req.Equal(domain.RoomID("!a:shell.chat"), state.RoomID)
	req.Equal(domain.RoomAlias("#lobby:shell.chat"), state.RoomAlias)
	req.Equal("$evt1", state.InitialEventID)
	req.True(state.Highlighted)
	req.Equal(1, notified)
}

func TestRoomViewStore_Join_Lifecycle(t *testing.T) {
	req := require.New(t)
	d, s := newRoomView(t)
	d.Dispatch(action.ViewRoom{RoomID: "!a:shell.chat"})

	d.Dispatch(action.WillJoin{})
	req.True(s.State().Joining)

	d.Dispatch(action.JoinRoomError{RoomID: "!a:shell.chat", Err: errors.ErrNotPermitted})
	state := s.State()
	req.False(state.Joining)
	req.ErrorIs(state.JoinError, errors.ErrNotPermitted)

	d.Dispatch(action.JoinRoom{RoomID: "!a:shell.chat"})
	state = s.State()
	req.True(state.Joining)
	req.NoError(state.JoinError)

	d.Dispatch(action.CancelJoin{})
	req.False(s.State().Joining)
}

func TestRoomViewStore_Switching_Room_Clears_Transient_State(t *testing.T) {
	req := require.New(t)
	d, s := newRoomView(t)
	d.Dispatch(action.ViewRoom{RoomID: "!a:shell.chat"})
	d.Dispatch(action.OpenRoomSettings{RoomID: "!a:shell.chat"})
	d.Dispatch(action.ReplyToEvent{Event: domain.Event{ID: uuid.New(), CreatedAt: time.Now()}})

	// When another room takes over this store
	d.Dispatch(action.ViewRoom{RoomID: "!b:shell.chat"})

	state := s.State()
	req.Equal(domain.RoomID("!b:shell.chat"), state.RoomID)
	req.False(state.SettingsOpen)
	req.Nil(state.ReplyingTo)
}

func TestRoomViewStore_Logged_Out_Resets_Everything(t *testing.T) {
	req := require.New(t)
	d, s := newRoomView(t)
	d.Dispatch(action.ViewRoom{RoomID: "!a:shell.chat", Alias: "#lobby:shell.chat"})

	d.Dispatch(action.OnLoggedOut{})

	req.Equal(store.RoomViewState{}, s.State())
}

func TestRoomViewStore_Stop_Detaches_From_Dispatcher(t *testing.T) {
	req := require.New(t)
	d, s := newRoomView(t)
	d.Dispatch(action.ViewRoom{RoomID: "!a:shell.chat"})

	s.Stop()
	d.Dispatch(action.ViewRoom{RoomID: "!b:shell.chat"})

	// The store keeps its last state but no longer reacts
	req.Equal(domain.RoomID("!a:shell.chat"), s.RoomID())
}
