// Package store holds the view-layer state stores: one RoomViewStore per
// open room, and the Router that decides which of them receives a dispatched
// action.
package store

import (
	"chat-shell/contract"
	"chat-shell/domain"
	"chat-shell/domain/action"
	"log/slog"
	"sync"
)

// RoomViewState is the published state of one open room view.
type RoomViewState struct {
	RoomID         domain.RoomID
	RoomAlias      domain.RoomAlias
	InitialEventID string
	Highlighted    bool
	OutOfBand      bool
	Joining        bool
	JoinError      error
	ViewError      error
	ReplyingTo     *domain.Event
	SettingsOpen   bool
}

// RoomViewStore tracks the UI state of a single room. It subscribes to the
// private dispatcher it is given and mutates state only in response to
// actions arriving there. Every mutation is published to watchers.
type RoomViewStore struct {
	log        *slog.Logger
	dispatcher contract.Dispatcher
	token      contract.HandlerID

	mu       sync.RWMutex
	state    RoomViewState
	watchers []func(RoomViewState)
}

// NewRoomViewStore registers the store on its dispatcher. The dispatcher is
// private to this store for the store's entire lifetime.
func NewRoomViewStore(log *slog.Logger, dispatcher contract.Dispatcher) *RoomViewStore {
	s := &RoomViewStore{log: log, dispatcher: dispatcher}
	s.token = dispatcher.Register(s.onAction)
	return s
}

// Stop unregisters the store from its dispatcher. The store stops reacting
// to actions but keeps its last published state readable.
func (s *RoomViewStore) Stop() {
	s.dispatcher.Unregister(s.token)
}

// Watch subscribes to state changes. Watchers run after every mutation, on
// the dispatching goroutine.
func (s *RoomViewStore) Watch(fn func(RoomViewState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watchers = append(s.watchers, fn)
}

// State returns a copy of the current state.
func (s *RoomViewStore) State() RoomViewState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *RoomViewStore) RoomID() domain.RoomID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.RoomID
}

func (s *RoomViewStore) RoomAlias() domain.RoomAlias {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.RoomAlias
}

func (s *RoomViewStore) onAction(a action.Action) {
	s.mu.Lock()
	switch act := a.(type) {
	case action.ViewRoom:
		newRoom := act.RoomID != s.state.RoomID
		s.state.RoomID = act.RoomID
		if act.Alias != "" {
			s.state.RoomAlias = act.Alias
		}
		s.state.InitialEventID = act.EventID
		s.state.Highlighted = act.Highlighted
		s.state.OutOfBand = act.OutOfBand
		s.state.ViewError = nil
		if newRoom {
			s.state.Joining = false
			s.state.JoinError = nil
			s.state.ReplyingTo = nil
			s.state.SettingsOpen = false
		}
	case action.ViewRoomError:
		s.state.ViewError = act.Err
		if act.RoomID != "" {
			s.state.RoomID = act.RoomID
		}
		if act.Alias != "" {
			s.state.RoomAlias = act.Alias
		}
		s.log.Warn("Room view error", "room", string(s.state.RoomID), "error", act.Err)
	case action.WillJoin:
		s.state.Joining = true
		s.state.JoinError = nil
	case action.CancelJoin:
		s.state.Joining = false
	case action.JoinRoom:
		s.state.Joining = true
		s.state.JoinError = nil
	case action.JoinRoomError:
		s.state.Joining = false
		s.state.JoinError = act.Err
	case action.OnLoggedOut:
		s.state = RoomViewState{}
	case action.ReplyToEvent:
		evt := act.Event
		s.state.ReplyingTo = &evt
	case action.OpenRoomSettings:
		s.state.SettingsOpen = true
	case action.CloseSettings:
		s.state.SettingsOpen = false
	default:
		s.mu.Unlock()
		return
	}
	state := s.state
	watchers := make([]func(RoomViewState), len(s.watchers))
	copy(watchers, s.watchers)
	s.mu.Unlock()

	for _, fn := range watchers {
		fn(state)
	}
}
