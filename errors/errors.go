package errors

import (
	"errors"
	"fmt"
)

var (
	ErrWorkerPanic        = fmt.Errorf("worker panic")
	ErrNoAddresses        = fmt.Errorf("no addresses have been provided")
	ErrRoomNotFound       = fmt.Errorf("room not found")
	ErrNotPermitted       = fmt.Errorf("operation not permitted")
	ErrUnsupportedAddress = fmt.Errorf("unsupported address kind")
	ErrUnknownAlias       = fmt.Errorf("unknown room alias")
)

// IsFatalInvite reports whether an invite failure aborts the whole batch.
// A fatal failure means the remaining addresses were never genuinely
// attempted, so their outcomes stay pending.
func IsFatalInvite(err error) bool {
	return errors.Is(err, ErrRoomNotFound) ||
		errors.Is(err, ErrNotPermitted) ||
		errors.Is(err, ErrUnsupportedAddress)
}
