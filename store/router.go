package store

import (
	"chat-shell/contract"
	"chat-shell/dispatch"
	"chat-shell/domain"
	"chat-shell/domain/action"
	"context"
	"log/slog"
	"sync"
)

// Entry pairs one room view store with the private dispatcher it is
// addressed through. The pairing is 1:1 for the entry's entire lifetime;
// teardown always removes both together.
type Entry struct {
	Store      contract.Store
	Dispatcher contract.Dispatcher
}

// EntryFactory builds a fresh store wired to a fresh private dispatcher.
type EntryFactory func() (contract.Dispatcher, contract.Store)

// Router owns the ordered set of currently open room views and decides which
// of them receives a dispatched action. It has no call-based API for
// navigation: all interaction happens through the shared dispatcher it is
// registered on. State is mutated only by the router itself; every mutation
// is published to watchers.
type Router struct {
	log      *slog.Logger
	session  contract.Session
	groups   contract.GroupIndex
	global   contract.Dispatcher
	newEntry EntryFactory
	token    contract.HandlerID

	mu         sync.RWMutex
	entries    []Entry
	current    int // index into entries, -1 when nothing is open
	groupID    domain.GroupID
	forwarding *domain.Event
	watchers   []func()
}

// NewRouter builds a router over the shared dispatcher. A nil factory means
// entries are real RoomViewStores, each on its own dispatch.Dispatcher.
func NewRouter(log *slog.Logger, session contract.Session, groups contract.GroupIndex,
	global contract.Dispatcher, factory EntryFactory) *Router {
	if factory == nil {
		factory = func() (contract.Dispatcher, contract.Store) {
			d := dispatch.New(log)
			return d, NewRoomViewStore(log, d)
		}
	}
	return &Router{
		log:      log,
		session:  session,
		groups:   groups,
		global:   global,
		newEntry: factory,
		current:  -1,
	}
}

// Init registers the router on the shared dispatcher. Construction and
// registration are split so the owner controls when routing starts.
func (r *Router) Init() {
	r.token = r.global.Register(r.onAction)
}

// Stop unregisters the router and tears down all open entries.
func (r *Router) Stop() {
	r.global.Unregister(r.token)
	r.cleanup()
	r.notify()
}

func (r *Router) onAction(a action.Action) {
	switch act := a.(type) {
	case action.ViewRoom:
		r.viewRoom(act)
	case action.ViewGroupGrid:
		r.viewGroupGrid(act)
	case action.ForwardEvent:
		r.mu.Lock()
		evt := act.Event
		r.forwarding = &evt
		r.mu.Unlock()
	case action.ViewMyGroups, action.ViewGroup:
		r.forwardToCurrent(a)
		r.cleanup()
		r.notify()
	case action.WillJoin, action.CancelJoin, action.JoinRoom, action.JoinRoomError,
		action.OnLoggedOut, action.ReplyToEvent, action.OpenRoomSettings, action.CloseSettings:
		r.forwardToCurrent(a)
	}
}

// viewRoom is the single-room transition. When only an alias is known the
// action suspends into an asynchronous resolution and re-enters the dispatch
// flow with the id filled in.
func (r *Router) viewRoom(act action.ViewRoom) {
	if act.RoomID == "" && act.Alias != "" {
		r.resolveAlias(act)
		return
	}
	if act.RoomID == "" {
		r.log.Warn("view_room carries neither id nor alias, ignoring")
		return
	}

	r.mu.Lock()
	if !r.matchesCurrentLocked(act) {
		if i := r.indexOfLocked(act); i >= 0 {
			r.current = i
		} else {
			r.cleanupLocked()
		}
	}
	if len(r.entries) == 0 {
		d, s := r.newEntry()
		r.entries = []Entry{{Store: s, Dispatcher: d}}
		r.current = 0
	}
	target := r.entries[r.current]
	pending := r.forwarding
	r.forwarding = nil
	r.mu.Unlock()

	target.Dispatcher.Dispatch(act)
	if pending != nil {
		r.global.Dispatch(action.SendEvent{RoomID: act.RoomID, Event: *pending})
	}
	r.notify()
}

// resolveAlias resolves alias to id off the dispatch flow and re-dispatches.
// A superseding view_room does not abort a pending resolution, so a stale
// resolution can still produce a late re-dispatch; the router handles it
// like any other view_room.
func (r *Router) resolveAlias(act action.ViewRoom) {
	go func() {
		id, err := r.session.ResolveAlias(context.Background(), act.Alias)
		if err != nil {
			r.log.Warn("Alias resolution failed", "alias", string(act.Alias), "error", err)
			r.forwardToCurrent(action.ViewRoomError{Alias: act.Alias, Err: err})
			return
		}
		resolved := act
		resolved.RoomID = id
		r.global.Dispatch(resolved)
	}()
}

// viewGroupGrid replaces the open rooms with one entry per member room of
// the group, order preserved from the group query. Dispatching the same
// group twice is a no-op.
func (r *Router) viewGroupGrid(act action.ViewGroupGrid) {
	r.mu.RLock()
	same := r.groupID == act.GroupID
	r.mu.RUnlock()
	if same {
		return
	}

	roomIDs := r.groups.MemberRooms(act.GroupID)

	r.mu.Lock()
	r.cleanupLocked()
	if len(roomIDs) == 0 {
		r.mu.Unlock()
		r.log.Warn("Group has no member rooms, leaving router empty", "group", string(act.GroupID))
		r.notify()
		return
	}
	entries := make([]Entry, 0, len(roomIDs))
	for _, roomID := range roomIDs {
		d, s := r.newEntry()
		// Preload the fresh store through its own dispatcher so its
		// reducers stay routing-unaware.
		d.Dispatch(action.ViewRoom{RoomID: roomID})
		entries = append(entries, Entry{Store: s, Dispatcher: d})
	}
	r.entries = entries
	r.current = 0
	r.groupID = act.GroupID
	r.mu.Unlock()
	r.notify()
}

// matchesCurrentLocked compares the payload against the current entry: by
// alias when the payload carries one, by id otherwise. A router with no
// current entry never matches.
func (r *Router) matchesCurrentLocked(act action.ViewRoom) bool {
	if r.current < 0 {
		return false
	}
	cur := r.entries[r.current].Store
	if act.Alias != "" {
		return cur.RoomAlias() == act.Alias
	}
	return cur.RoomID() == act.RoomID
}

func (r *Router) indexOfLocked(act action.ViewRoom) int {
	for i, e := range r.entries {
		if act.Alias != "" {
			if e.Store.RoomAlias() == act.Alias {
				return i
			}
			continue
		}
		if e.Store.RoomID() == act.RoomID {
			return i
		}
	}
	return -1
}

func (r *Router) forwardToCurrent(a action.Action) {
	r.mu.RLock()
	var target Entry
	open := r.current >= 0
	if open {
		target = r.entries[r.current]
	}
	r.mu.RUnlock()
	if !open {
		r.log.Debug("No current room to forward action to", "action", a.Name())
		return
	}
	target.Dispatcher.Dispatch(a)
}

// cleanup unregisters every entry's store from its private dispatcher and
// resets the router to empty. Entries are never partially torn down.
func (r *Router) cleanup() {
	r.mu.Lock()
	r.cleanupLocked()
	r.mu.Unlock()
}

func (r *Router) cleanupLocked() {
	for _, e := range r.entries {
		e.Store.Stop()
	}
	r.entries = nil
	r.current = -1
	r.groupID = ""
}

// Watch subscribes to router state changes.
func (r *Router) Watch(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.watchers = append(r.watchers, fn)
}

func (r *Router) notify() {
	r.mu.RLock()
	watchers := make([]func(), len(r.watchers))
	copy(watchers, r.watchers)
	r.mu.RUnlock()
	for _, fn := range watchers {
		fn()
	}
}

// OpenStores returns the currently open room stores, grid order preserved.
func (r *Router) OpenStores() []contract.Store {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stores := make([]contract.Store, len(r.entries))
	for i, e := range r.entries {
		stores[i] = e.Store
	}
	return stores
}

// CurrentStore returns the current room's store, nil when nothing is open.
func (r *Router) CurrentStore() contract.Store {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.current < 0 {
		return nil
	}
	return r.entries[r.current].Store
}

// CurrentIndex returns the index of the current entry, -1 when none is open.
func (r *Router) CurrentIndex() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// GroupID returns the active grid grouping, empty outside grid view.
func (r *Router) GroupID() domain.GroupID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.groupID
}

// ForwardingEvent returns the pending forwarded event, nil when none.
func (r *Router) ForwardingEvent() *domain.Event {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.forwarding == nil {
		return nil
	}
	evt := *r.forwarding
	return &evt
}
