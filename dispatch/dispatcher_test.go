package dispatch

import (
	"chat-shell/domain"
	"chat-shell/domain/action"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_Delivers_In_Registration_Order(t *testing.T) {
	req := require.New(t)
	d := New(logs.GetLoggerFromLevel(slog.LevelDebug))

	var order []string
	d.Register(func(a action.Action) { order = append(order, "first") })
	d.Register(func(a action.Action) { order = append(order, "second") })

	// When an action is dispatched
	d.Dispatch(action.ViewMyGroups{})

	// Then both handlers ran, in registration order
	req.Equal([]string{"first", "second"}, order)
}

func TestDispatcher_Nested_Dispatch_Is_Queued(t *testing.T) {
	req := require.New(t)
	d := New(logs.GetLoggerFromLevel(slog.LevelDebug))

	var seen []string
	d.Register(func(a action.Action) {
		seen = append(seen, a.Name())
		// Dispatching from inside a handler must not interleave: the
		// nested action runs only after the current delivery finishes.
		if _, ok := a.(action.WillJoin); ok {
			d.Dispatch(action.CancelJoin{})
			seen = append(seen, "handler done")
		}
	})

	d.Dispatch(action.WillJoin{})

	req.Equal([]string{"will_join", "handler done", "cancel_join"}, seen)
}

func TestDispatcher_Unregister_Stops_Delivery(t *testing.T) {
	req := require.New(t)
	d := New(logs.GetLoggerFromLevel(slog.LevelDebug))

	count := 0
	id := d.Register(func(a action.Action) { count++ })

	d.Dispatch(action.CloseSettings{})
	d.Unregister(id)
	d.Dispatch(action.CloseSettings{})

	req.Equal(1, count)
}

func TestDispatcher_Handler_Can_Unregister_During_Delivery(t *testing.T) {
	req := require.New(t)
	d := New(logs.GetLoggerFromLevel(slog.LevelDebug))

	count := 0
	token := d.Register(func(a action.Action) { count++ })
	d.Register(func(a action.Action) {
		d.Unregister(token)
	})

	d.Dispatch(action.OnLoggedOut{})
	d.Dispatch(action.OnLoggedOut{})

	// First delivery still reached the handler, the second did not.
	req.Equal(1, count)
}

func TestDispatcher_Carries_Payload_Unchanged(t *testing.T) {
	req := require.New(t)
	d := New(logs.GetLoggerFromLevel(slog.LevelDebug))

	var got action.ViewRoom
	d.Register(func(a action.Action) {
		if vr, ok := a.(action.ViewRoom); ok {
			got = vr
		}
	})

	sent := action.ViewRoom{RoomID: domain.RoomID("!a:shell.chat"), Highlighted: true}
	d.Dispatch(sent)

	req.Equal(sent, got)
}
