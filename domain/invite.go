package domain

import (
	"github.com/samber/lo"
)

// InviteOutcome is the per-address state of one invite operation.
type InviteOutcome string

const (
	InvitePending InviteOutcome = "pending"
	InviteSuccess InviteOutcome = "success"
	InviteError   InviteOutcome = "error"
)

// AddressFailure pairs a failed address with its human-readable reason.
type AddressFailure struct {
	Address Address
	Reason  string
}

// InviteResultSet accumulates per-address outcomes over the lifetime of one
// invite operation. It is owned by that operation and is not safe for
// concurrent mutation; the inviter aggregates before publishing it.
type InviteResultSet struct {
	order    []Address
	outcomes map[string]InviteOutcome
	reasons  map[string]string
	fatal    bool
}

// NewInviteResultSet starts every address in the pending state, so the set
// always covers the full input, including addresses never attempted after a
// fatal abort.
func NewInviteResultSet(addresses []Address) *InviteResultSet {
	set := &InviteResultSet{
		order:    addresses,
		outcomes: make(map[string]InviteOutcome, len(addresses)),
		reasons:  make(map[string]string, len(addresses)),
	}
	for _, addr := range addresses {
		set.outcomes[addr.Value] = InvitePending
	}
	return set
}

func (s *InviteResultSet) MarkSuccess(addr Address) {
	s.outcomes[addr.Value] = InviteSuccess
}

func (s *InviteResultSet) MarkError(addr Address, reason string) {
	s.outcomes[addr.Value] = InviteError
	s.reasons[addr.Value] = reason
}

// MarkFatal records that the batch aborted after the first error.
func (s *InviteResultSet) MarkFatal() { s.fatal = true }

// Fatal reports whether the batch aborted after the first error, making the
// remaining addresses' outcomes meaningless.
func (s *InviteResultSet) Fatal() bool { return s.fatal }

// Outcome returns the state recorded for an address, InvitePending if the
// address is unknown to the set.
func (s *InviteResultSet) Outcome(addr Address) InviteOutcome {
	if outcome, ok := s.outcomes[addr.Value]; ok {
		return outcome
	}
	return InvitePending
}

// ErrorText returns the human-readable reason recorded for a failed address.
func (s *InviteResultSet) ErrorText(addr Address) string {
	return s.reasons[addr.Value]
}

// Addresses returns the input addresses in their original order.
func (s *InviteResultSet) Addresses() []Address {
	return s.order
}

// Failed returns the addresses whose outcome is InviteError, input order
// preserved.
func (s *InviteResultSet) Failed() []Address {
	return lo.Filter(s.order, func(addr Address, _ int) bool {
		return s.outcomes[addr.Value] == InviteError
	})
}

// Succeeded returns the addresses whose outcome is InviteSuccess, input
// order preserved.
func (s *InviteResultSet) Succeeded() []Address {
	return lo.Filter(s.order, func(addr Address, _ int) bool {
		return s.outcomes[addr.Value] == InviteSuccess
	})
}

// Failures pairs every failed address with its reason, input order preserved.
func (s *InviteResultSet) Failures() []AddressFailure {
	return lo.Map(s.Failed(), func(addr Address, _ int) AddressFailure {
		return AddressFailure{Address: addr, Reason: s.reasons[addr.Value]}
	})
}
