package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"chat-shell/dispatch"
	"chat-shell/domain"
	"chat-shell/domain/action"
	"chat-shell/i18n"
	"chat-shell/internal"
	"chat-shell/invite"
	"chat-shell/observability"
	"chat-shell/runtime"
	"chat-shell/store"
	"chat-shell/ui"

	"github.com/Netflix/go-env"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the shell lifecycle, and
// centralizes error reporting so deferred cleanup always executes.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Locales
	bundle, err := i18n.LoadEmbedded()
	if err != nil {
		return fmt.Errorf("locale catalogs: %w", err)
	}
	loc := bundle.For(config.Locale)

	// 3. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Wiring: dispatcher, backend fixture, router, orchestrator
	global := dispatch.New(log)
	monitor := observability.NewMonitor(log)
	global.Register(func(a action.Action) {
		monitor.CountAction(a.Name())
	})

	world := newWorld(config.UserID)
	router := store.NewRouter(log, world, world, global, nil)
	router.Init()
	defer router.Stop()

	in := bufio.NewReader(os.Stdin)
	modals := ui.NewTerminalModals(log, in, os.Stdout, loc, config.Colours)
	inviter := invite.NewMultiInviter(log, world)
	orch := invite.NewOrchestrator(log, world, world, inviter, world, modals, loc, global)

	global.Register(func(a action.Action) {
		switch act := a.(type) {
		case action.StartChat:
			orch.ShowStartChatDialog()
		case action.SendEvent:
			log.Info("Event delivered", "room", string(act.RoomID), "event", act.Event.ID.String())
		}
	})

	// 5. Background workers
	sup := runtime.NewSupervisor(log, config.RestartInterval).Add(
		observability.NewSampler(log, monitor, config.MetricInterval),
		internal.NewDebugServer(log, router, monitor.Snapshot, config.DebugPort),
	)
	go sup.Run(ctx)
	defer sup.Stop()

	// 6. Interactive loop
	log.Info("Shell ready", "user", config.UserID, "locale", loc.Locale(),
		"inspect", fmt.Sprintf("http://localhost:%d/inspect", config.DebugPort))
	repl(ctx, log, in, global, router, orch, world)

	log.Info("Program stopped cleanly")
	return nil
}

// repl reads commands until EOF, quit, or signal. Each command maps onto a
// dispatched action so the whole surface exercises the routing layer.
func repl(ctx context.Context, log *slog.Logger, in *bufio.Reader,
	global *dispatch.Dispatcher, router *store.Router,
	orch *invite.Orchestrator, world *world) {
	fmt.Println("commands: view <room|#alias> | grid <+group> | groups | chat | invite | forward <text> | reply | settings | rooms | quit")
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Print("> ")
		line, err := in.ReadString('\n')
		if err != nil {
			return
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]
		switch cmd {
		case "view":
			if len(args) == 0 {
				fmt.Println("usage: view <room|#alias>")
				continue
			}
			if strings.HasPrefix(args[0], "#") {
				global.Dispatch(action.ViewRoom{Alias: domain.RoomAlias(args[0])})
			} else {
				global.Dispatch(action.ViewRoom{RoomID: domain.RoomID(args[0])})
			}
		case "grid":
			if len(args) == 0 {
				fmt.Println("usage: grid <+group>")
				continue
			}
			global.Dispatch(action.ViewGroupGrid{GroupID: domain.GroupID(args[0])})
		case "groups":
			global.Dispatch(action.ViewMyGroups{})
		case "chat":
			global.Dispatch(action.StartChat{})
		case "invite":
			current := router.CurrentStore()
			if current == nil {
				fmt.Println("no room open")
				continue
			}
			orch.ShowRoomInviteDialog(current.RoomID())
		case "forward":
			if len(args) == 0 {
				fmt.Println("usage: forward <text>")
				continue
			}
			global.Dispatch(action.ForwardEvent{Event: demoEvent(world.UserID(), strings.Join(args, " "))})
			fmt.Println("forwarding armed, next view delivers it")
		case "reply":
			global.Dispatch(action.ReplyToEvent{Event: demoEvent("@bob:shell.chat", "original message")})
		case "settings":
			current := router.CurrentStore()
			if current == nil {
				fmt.Println("no room open")
				continue
			}
			global.Dispatch(action.OpenRoomSettings{RoomID: current.RoomID()})
		case "rooms":
			printRooms(router)
		case "quit", "exit":
			return
		default:
			log.Warn("Unknown command", "command", cmd)
		}
	}
}

func demoEvent(sender, body string) domain.Event {
	return domain.Event{
		ID:        uuid.New(),
		SenderID:  sender,
		Type:      "m.room.message",
		Content:   body,
		CreatedAt: time.Now().UTC(),
	}
}

func printRooms(router *store.Router) {
	stores := router.OpenStores()
	if len(stores) == 0 {
		fmt.Println("no open rooms")
		return
	}
	if groupID := router.GroupID(); groupID != "" {
		fmt.Printf("group %s\n", groupID)
	}
	for i, s := range stores {
		marker := " "
		if i == router.CurrentIndex() {
			marker = "*"
		}
		fmt.Printf("%s [%d] %s %s\n", marker, i, s.RoomID(), s.RoomAlias())
	}
}
