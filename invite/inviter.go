// Package invite drives invite operations: fanning one batch out over the
// session, aggregating per-address outcomes, and surfacing failures through
// modal dialogs.
package invite

import (
	"chat-shell/contract"
	"chat-shell/domain"
	errs "chat-shell/errors"
	"context"
	"errors"
	"log/slog"
	"sync"
)

// MultiInviter invites every address of a batch concurrently. There is no
// concurrency bounding: with N addresses, N invite calls may be in flight at
// once. Aggregation waits for all of them.
//
// A fatal failure (room gone, not permitted) cancels the batch context;
// invites abandoned that way stay pending in the result set, since they were
// never genuinely attempted.
type MultiInviter struct {
	log     *slog.Logger
	session contract.Session
}

func NewMultiInviter(log *slog.Logger, session contract.Session) *MultiInviter {
	return &MultiInviter{log: log, session: session}
}

type attempt struct {
	addr domain.Address
	err  error
}

func (m *MultiInviter) Invite(ctx context.Context, roomID domain.RoomID, addresses []domain.Address) *domain.InviteResultSet {
	set := domain.NewInviteResultSet(addresses)
	if len(addresses) == 0 {
		return set
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	attempts := make(chan attempt, len(addresses))
	var wg sync.WaitGroup
	for _, addr := range addresses {
		wg.Add(1)
		go func(addr domain.Address) {
			defer wg.Done()
			if ctx.Err() != nil {
				// Batch already aborted, never attempted.
				return
			}
			err := m.inviteOne(ctx, roomID, addr)
			attempts <- attempt{addr: addr, err: err}
			if err != nil && errs.IsFatalInvite(err) {
				cancel()
			}
		}(addr)
	}
	wg.Wait()
	close(attempts)

	for a := range attempts {
		switch {
		case a.err == nil:
			set.MarkSuccess(a.addr)
		case errors.Is(a.err, context.Canceled):
			// Interrupted by the fatal abort, stays pending.
		default:
			set.MarkError(a.addr, a.err.Error())
			if errs.IsFatalInvite(a.err) {
				set.MarkFatal()
			}
			m.log.Warn("Invite failed", "room", string(roomID), "address", a.addr.Value, "error", a.err)
		}
	}
	return set
}

func (m *MultiInviter) inviteOne(ctx context.Context, roomID domain.RoomID, addr domain.Address) error {
	switch addr.Kind {
	case domain.AddressUser:
		return m.session.InviteUser(ctx, roomID, addr.Value)
	case domain.AddressEmail:
		return m.session.InviteEmail(ctx, roomID, addr.Value)
	default:
		return errs.ErrUnsupportedAddress
	}
}
