package connectivity

import (
	"context"
	"sync"
	"time"

	"github.com/nomadbikers/ridetrack/internal/pkg/logger"
)

// Status is the binary connectivity state.
type Status string

const (
	StatusOnline  Status = "online"
	StatusOffline Status = "offline"
)

// Prober checks whether the remote store is reachable.
type Prober interface {
	Probe(ctx context.Context) error
}

// ProberFunc adapts a function to the Prober interface.
type ProberFunc func(ctx context.Context) error

// Probe implements Prober.
func (f ProberFunc) Probe(ctx context.Context) error {
	return f(ctx)
}

// Monitor tracks online/offline transitions by probing the remote store on an
// interval. It is a pure observer: it exposes the current state and a
// subscription for transitions, and never queues or replays missed operations.
type Monitor struct {
	mu           sync.RWMutex
	status       Status
	subscribers  map[int]func(Status)
	nextSubID    int
	prober       Prober
	interval     time.Duration
	probeTimeout time.Duration
	cancel       context.CancelFunc
	done         chan struct{}
}

// NewMonitor creates a monitor. The initial state is determined by the first
// probe once Start is called; until then the monitor reports online so that
// startup is not spuriously gated.
func NewMonitor(prober Prober, interval, probeTimeout time.Duration) *Monitor {
	return &Monitor{
		status:       StatusOnline,
		subscribers:  make(map[int]func(Status)),
		prober:       prober,
		interval:     interval,
		probeTimeout: probeTimeout,
	}
}

// Start begins probing in the background until Stop is called.
func (m *Monitor) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	m.mu.Lock()
	m.cancel = cancel
	m.done = make(chan struct{})
	done := m.done
	m.mu.Unlock()

	go func() {
		defer close(done)
		m.probeOnce(ctx)

		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.probeOnce(ctx)
			}
		}
	}()
}

// Stop halts probing and waits for the probe loop to exit.
func (m *Monitor) Stop() {
	m.mu.Lock()
	cancel := m.cancel
	done := m.done
	m.cancel = nil
	m.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

func (m *Monitor) probeOnce(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, m.probeTimeout)
	defer cancel()

	next := StatusOnline
	if err := m.prober.Probe(probeCtx); err != nil {
		next = StatusOffline
	}
	m.setStatus(next)
}

// setStatus records the state and notifies subscribers on transitions only.
func (m *Monitor) setStatus(next Status) {
	m.mu.Lock()
	if m.status == next {
		m.mu.Unlock()
		return
	}
	m.status = next
	subs := make([]func(Status), 0, len(m.subscribers))
	for _, fn := range m.subscribers {
		subs = append(subs, fn)
	}
	m.mu.Unlock()

	logger.Info("Connectivity transition", logger.String("status", string(next)))
	for _, fn := range subs {
		fn(next)
	}
}

// Status returns the current connectivity state.
func (m *Monitor) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

// Online reports whether the remote store is currently reachable.
func (m *Monitor) Online() bool {
	return m.Status() == StatusOnline
}

// Subscribe registers a transition callback and returns an unsubscribe
// function. The callback fires only on state changes, not on every probe.
func (m *Monitor) Subscribe(fn func(Status)) func() {
	m.mu.Lock()
	id := m.nextSubID
	m.nextSubID++
	m.subscribers[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subscribers, id)
		m.mu.Unlock()
	}
}
