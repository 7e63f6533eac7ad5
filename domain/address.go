package domain

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// AddressKind tags an invitee address with how it must be resolved.
type AddressKind string

const (
	// AddressUser is a chat account identifier, e.g. "@alice:shell.chat".
	AddressUser AddressKind = "user"
	// AddressEmail is a third-party contact identifier resolved at
	// room-creation time.
	AddressEmail AddressKind = "email"
	// AddressUnknown is anything the classifier could not place.
	AddressUnknown AddressKind = "unknown"
)

// Address identifies an invitee, tagged by kind.
type Address struct {
	Value string
	Kind  AddressKind
}

// ClassifyAddress tags a raw address string. Account identifiers follow the
// "@local:server" shape; everything that validates as an email is treated as
// a third-party identifier.
func ClassifyAddress(value string) Address {
	value = strings.TrimSpace(value)
	switch {
	case isUserID(value):
		return Address{Value: value, Kind: AddressUser}
	case validate.Var(value, "required,email") == nil:
		return Address{Value: value, Kind: AddressEmail}
	default:
		return Address{Value: value, Kind: AddressUnknown}
	}
}

func isUserID(value string) bool {
	if !strings.HasPrefix(value, "@") {
		return false
	}
	local, server, found := strings.Cut(value[1:], ":")
	return found && local != "" && server != ""
}
