// Package observability collects live counters and process metrics for the
// debug inspector. It observes the view layer from the outside and never
// mutates it.
package observability

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/shirou/gopsutil/process"
)

// Monitor aggregates per-action dispatch counters and sampled process
// metrics. Safe for concurrent use.
type Monitor struct {
	log     *slog.Logger
	started time.Time

	mu      sync.RWMutex
	actions map[string]uint64

	statsMu sync.RWMutex
	alloc   uint64
	numGC   uint32
	cpuPct  float64
	rssMb   uint64
}

func NewMonitor(log *slog.Logger) *Monitor {
	return &Monitor{
		log:     log,
		started: time.Now(),
		actions: make(map[string]uint64),
	}
}

// CountAction records one dispatched action by name.
func (m *Monitor) CountAction(name string) {
	m.mu.Lock()
	m.actions[name]++
	m.mu.Unlock()
}

// ActionCount returns how many times an action name was dispatched.
func (m *Monitor) ActionCount(name string) uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.actions[name]
}

// Snapshot renders all counters and the latest process sample for the
// debug inspector.
func (m *Monitor) Snapshot() map[string]any {
	stats := map[string]any{
		"uptime": time.Since(m.started).Round(time.Second).String(),
	}

	m.mu.RLock()
	names := make([]string, 0, len(m.actions))
	for name := range m.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		stats["action:"+name] = m.actions[name]
	}
	m.mu.RUnlock()

	m.statsMu.RLock()
	stats["alloc_mem_mb"] = m.alloc
	stats["num_gc"] = m.numGC
	stats["cpu_percent"] = m.cpuPct
	stats["rss_mb"] = m.rssMb
	m.statsMu.RUnlock()
	return stats
}

func (m *Monitor) sample() {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	m.statsMu.Lock()
	m.alloc = mem.Alloc / 1024 / 1024
	m.numGC = mem.NumGC
	if proc, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if pct, err := proc.CPUPercent(); err == nil {
			m.cpuPct = pct
		}
		if info, err := proc.MemoryInfo(); err == nil {
			m.rssMb = info.RSS / 1024 / 1024
		}
	}
	m.statsMu.Unlock()
}

// Sampler refreshes a Monitor's process metrics on a fixed interval.
type Sampler struct {
	log      *slog.Logger
	monitor  *Monitor
	interval time.Duration
}

func NewSampler(log *slog.Logger, monitor *Monitor, interval time.Duration) *Sampler {
	return &Sampler{log: log, monitor: monitor, interval: interval}
}

func (s *Sampler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	s.monitor.sample()
	for {
		select {
		case <-ticker.C:
			s.monitor.sample()
		case <-ctx.Done():
			s.log.Debug("Context done, stopping metric sampling")
			return nil
		}
	}
}
