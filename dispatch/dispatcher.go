// Package dispatch implements the action channel shared by the view layer.
// One process-wide instance carries navigation and invite actions; the room
// view router additionally creates one private instance per open room so
// each sub-store behaves as if it alone owned the channel.
package dispatch

import (
	"chat-shell/contract"
	"chat-shell/domain/action"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

type registration struct {
	id      contract.HandlerID
	handler func(action.Action)
}

// Dispatcher delivers actions to handlers in registration order.
//
// Delivery is run-to-completion: an action dispatched while another is being
// delivered (from a handler, or from another goroutine) is queued and
// processed once the current delivery finishes. Handlers therefore never
// observe interleaved actions.
type Dispatcher struct {
	mu          sync.Mutex
	log         *slog.Logger
	handlers    []registration
	queue       []action.Action
	dispatching bool
}

func New(log *slog.Logger) *Dispatcher {
	return &Dispatcher{log: log}
}

// Register subscribes a handler and returns its unregistration token.
func (d *Dispatcher) Register(handler func(action.Action)) contract.HandlerID {
	d.mu.Lock()
	defer d.mu.Unlock()
	id := contract.HandlerID(uuid.NewString())
	d.handlers = append(d.handlers, registration{id: id, handler: handler})
	return id
}

// Unregister removes a handler. Unknown tokens are ignored.
func (d *Dispatcher) Unregister(id contract.HandlerID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, reg := range d.handlers {
		if reg.id == id {
			d.handlers = append(d.handlers[:i], d.handlers[i+1:]...)
			return
		}
	}
	d.log.Debug("Unregister of unknown dispatch handler", "id", string(id))
}

// Dispatch queues an action for delivery. The caller that finds the
// dispatcher idle drains the queue itself, so nested dispatches return
// immediately without re-entering delivery.
func (d *Dispatcher) Dispatch(a action.Action) {
	d.mu.Lock()
	d.queue = append(d.queue, a)
	if d.dispatching {
		d.mu.Unlock()
		return
	}
	d.dispatching = true
	for len(d.queue) > 0 {
		next := d.queue[0]
		d.queue = d.queue[1:]
		// Snapshot so handlers can register or unregister mid-delivery.
		handlers := make([]registration, len(d.handlers))
		copy(handlers, d.handlers)
		d.mu.Unlock()

		for _, reg := range handlers {
			reg.handler(next)
		}
		d.mu.Lock()
	}
	d.dispatching = false
	d.mu.Unlock()
}
