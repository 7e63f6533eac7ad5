package internal

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"chat-shell/store"
)

//go:embed inspect.html
var templatesFS embed.FS

// InspectRow is one open room view as rendered by the inspector.
type InspectRow struct {
	Index   int
	RoomID  string
	Alias   string
	Current bool
}

type StatsProvider func() map[string]any

type PageData struct {
	GroupID string
	Rooms   []InspectRow
	Stats   map[string]any
}

// DebugServer serves a live HTML view of the router's open rooms and the
// monitor's counters. It is a supervised worker: Run blocks until the
// context is cancelled.
type DebugServer struct {
	log    *slog.Logger
	router *store.Router
	stats  StatsProvider
	port   int
}

func NewDebugServer(log *slog.Logger, router *store.Router, stats StatsProvider, port int) *DebugServer {
	return &DebugServer{log: log, router: router, stats: stats, port: port}
}

func (s *DebugServer) Run(ctx context.Context) error {
	tmpl := template.Must(template.ParseFS(templatesFS, "inspect.html"))

	mux := http.NewServeMux()
	mux.HandleFunc("/inspect", func(w http.ResponseWriter, r *http.Request) {
		data := PageData{
			GroupID: string(s.router.GroupID()),
			Stats:   map[string]any{},
		}
		if s.stats != nil {
			data.Stats = s.stats()
		}
		current := s.router.CurrentIndex()
		for i, st := range s.router.OpenStores() {
			data.Rooms = append(data.Rooms, InspectRow{
				Index:   i,
				RoomID:  string(st.RoomID()),
				Alias:   string(st.RoomAlias()),
				Current: i == current,
			})
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, data)
	})

	server := &http.Server{Addr: fmt.Sprintf("0.0.0.0:%d", s.port), Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	s.log.Info("Debug inspector listening", "port", s.port)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
