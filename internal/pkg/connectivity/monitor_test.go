package connectivity

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type flakyProber struct {
	mu   sync.Mutex
	fail bool
}

func (p *flakyProber) Probe(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail {
		return errors.New("connection refused")
	}
	return nil
}

func (p *flakyProber) setFail(fail bool) {
	p.mu.Lock()
	p.fail = fail
	p.mu.Unlock()
}

func TestMonitor_ReportsOfflineWhenProbeFails(t *testing.T) {
	prober := &flakyProber{fail: true}
	m := NewMonitor(prober, 10*time.Millisecond, 50*time.Millisecond)

	m.Start()
	defer m.Stop()

	assert.Eventually(t, func() bool {
		return m.Status() == StatusOffline
	}, time.Second, 5*time.Millisecond)
	assert.False(t, m.Online())
}

func TestMonitor_NotifiesOnTransitionsOnly(t *testing.T) {
	prober := &flakyProber{}
	m := NewMonitor(prober, 10*time.Millisecond, 50*time.Millisecond)

	var mu sync.Mutex
	var transitions []Status
	unsubscribe := m.Subscribe(func(s Status) {
		mu.Lock()
		transitions = append(transitions, s)
		mu.Unlock()
	})
	defer unsubscribe()

	m.Start()
	defer m.Stop()

	// online at start: no transition recorded while probes keep succeeding
	time.Sleep(50 * time.Millisecond)
	mu.Lock()
	assert.Empty(t, transitions)
	mu.Unlock()

	prober.setFail(true)
	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(transitions) == 1 && transitions[0] == StatusOffline
	}, time.Second, 5*time.Millisecond)

	prober.setFail(false)
	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(transitions) == 2 && transitions[1] == StatusOnline
	}, time.Second, 5*time.Millisecond)
}

func TestMonitor_UnsubscribeStopsNotifications(t *testing.T) {
	prober := &flakyProber{}
	m := NewMonitor(prober, 10*time.Millisecond, 50*time.Millisecond)

	var mu sync.Mutex
	count := 0
	unsubscribe := m.Subscribe(func(Status) {
		mu.Lock()
		count++
		mu.Unlock()
	})
	unsubscribe()

	m.Start()
	defer m.Stop()

	prober.setFail(true)
	assert.Eventually(t, func() bool {
		return m.Status() == StatusOffline
	}, time.Second, 5*time.Millisecond)

	mu.Lock()
	assert.Zero(t, count)
	mu.Unlock()
}
