package main

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"chat-shell/domain"
	errs "chat-shell/errors"
)

// world is the in-memory chat backend the demo shell runs against. It
// implements the session, room-creation, DM-index, and group-index
// collaborators. Addresses containing "down" fail their invites so
// partial-failure reporting can be exercised interactively.
type world struct {
	mu       sync.Mutex
	userID   string
	rooms    map[domain.RoomID]*domain.Room
	aliases  map[domain.RoomAlias]domain.RoomID
	dms      map[string][]domain.RoomID
	groups   map[domain.GroupID][]domain.RoomID
	nextRoom int
}

func newWorld(userID string) *world {
	w := &world{
		userID:  userID,
		rooms:   make(map[domain.RoomID]*domain.Room),
		aliases: make(map[domain.RoomAlias]domain.RoomID),
		dms:     make(map[string][]domain.RoomID),
		groups:  make(map[domain.GroupID][]domain.RoomID),
	}

	w.seedRoom("!lobby:shell.chat", "#lobby:shell.chat", "Lobby")
	w.seedRoom("!random:shell.chat", "#random:shell.chat", "Random")
	w.seedRoom("!backend:shell.chat", "#backend:shell.chat", "Backend")
	w.seedRoom("!frontend:shell.chat", "#frontend:shell.chat", "Frontend")
	w.seedRoom("!oncall:shell.chat", "#oncall:shell.chat", "On-call")
	w.groups["+team:shell.chat"] = []domain.RoomID{
		"!backend:shell.chat", "!frontend:shell.chat", "!oncall:shell.chat",
	}

	dm := w.seedRoom("!dm-bob:shell.chat", "", "Bob")
	dm.DirectWith = "@bob:shell.chat"
	w.dms["@bob:shell.chat"] = []domain.RoomID{dm.ID}
	return w
}

func (w *world) seedRoom(id domain.RoomID, alias domain.RoomAlias, name string) *domain.Room {
	room := &domain.Room{ID: id, Alias: alias, Name: name, Membership: domain.MembershipJoin}
	w.rooms[id] = room
	if alias != "" {
		w.aliases[alias] = id
	}
	return room
}

func (w *world) UserID() string { return w.userID }

func (w *world) ResolveAlias(ctx context.Context, alias domain.RoomAlias) (domain.RoomID, error) {
	// Pretend to hit the network so the suspension is visible
	select {
	case <-time.After(150 * time.Millisecond):
	case <-ctx.Done():
		return "", ctx.Err()
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	id, ok := w.aliases[alias]
	if !ok {
		return "", fmt.Errorf("%w: %s", errs.ErrUnknownAlias, alias)
	}
	return id, nil
}

func (w *world) Room(id domain.RoomID) (*domain.Room, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	room, ok := w.rooms[id]
	if !ok {
		return nil, errs.ErrRoomNotFound
	}
	copied := *room
	return &copied, nil
}

func (w *world) InviteUser(ctx context.Context, roomID domain.RoomID, userID string) error {
	return w.invite(ctx, roomID, userID)
}

func (w *world) InviteEmail(ctx context.Context, roomID domain.RoomID, email string) error {
	return w.invite(ctx, roomID, email)
}

func (w *world) invite(ctx context.Context, roomID domain.RoomID, target string) error {
	select {
	case <-time.After(100 * time.Millisecond):
	case <-ctx.Done():
		return ctx.Err()
	}
	w.mu.Lock()
	_, ok := w.rooms[roomID]
	w.mu.Unlock()
	if !ok {
		return errs.ErrRoomNotFound
	}
	if strings.Contains(target, "down") {
		return fmt.Errorf("server for %s is unreachable", target)
	}
	return nil
}

func (w *world) CreateRoom(ctx context.Context, opts domain.CreateRoomOptions) (domain.RoomID, error) {
	select {
	case <-time.After(100 * time.Millisecond):
	case <-ctx.Done():
		return "", ctx.Err()
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextRoom++
	id := domain.RoomID(fmt.Sprintf("!room-%d:shell.chat", w.nextRoom))
	room := &domain.Room{ID: id, Name: opts.Name, Membership: domain.MembershipJoin}
	switch {
	case opts.DMUserID != "":
		room.DirectWith = opts.DMUserID
		w.dms[opts.DMUserID] = append(w.dms[opts.DMUserID], id)
	case opts.DMEmail != "":
		room.DirectWith = opts.DMEmail
	}
	w.rooms[id] = room
	return id, nil
}

func (w *world) RoomsForUser(userID string) []domain.RoomID {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dms[userID]
}

func (w *world) MemberRooms(groupID domain.GroupID) []domain.RoomID {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.groups[groupID]
}
