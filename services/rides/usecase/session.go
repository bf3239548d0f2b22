package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nomadbikers/ridetrack/internal/pkg/logger"
	"github.com/nomadbikers/ridetrack/internal/pkg/models"
	"github.com/nomadbikers/ridetrack/internal/utils"
	"github.com/nomadbikers/ridetrack/services/rides"
	"github.com/nomadbikers/ridetrack/services/rides/sampler"
)

// Metrics is a point-in-time view of the live recording.
type Metrics struct {
	State           rides.SessionState
	RideID          uuid.UUID
	DurationMillis  int64
	DurationDisplay string
	DistanceKm      float64
	Samples         int
}

// Session is the recording state machine for one member. It owns the
// in-progress route buffer exclusively: the ticker and sampler watch are
// acquired together on Start and released together on Stop or on any
// sampler error, so a dangling ticker can never outlive its sample stream.
type Session struct {
	recorder rides.RideRecorder
	source   sampler.Sampler
	opts     sampler.Options
	tickEach time.Duration

	mu       sync.Mutex
	state    rides.SessionState
	ride     models.Ride
	route    []models.RoutePoint
	liveKm   float64
	start    int64
	end      int64
	lastErr  string
	watch    sampler.Watcher
	stopTick chan struct{}

	// epoch invalidates callbacks from a previous recording. Late ticks or
	// samples racing Stop compare their captured epoch and drop themselves.
	epoch uint64

	onMetrics func(Metrics)
	now       func() time.Time
}

// NewSession creates an idle session recording through the given sampler and
// persisting finished rides through the recorder.
func NewSession(recorder rides.RideRecorder, source sampler.Sampler, cfg *models.TrackingConfig) *Session {
	return &Session{
		recorder: recorder,
		source:   source,
		opts: sampler.Options{
			HighAccuracy: cfg.HighAccuracy,
			Timeout:      time.Duration(cfg.SampleTimeoutMs) * time.Millisecond,
			MaxAge:       time.Duration(cfg.SampleMaxAgeMs) * time.Millisecond,
		},
		tickEach: time.Duration(cfg.TickerIntervalMs) * time.Millisecond,
		state:    rides.SessionIdle,
		now:      time.Now,
	}
}

// OnMetrics registers the live-metrics callback, invoked on every accepted
// sample and every ticker tick while recording.
func (s *Session) OnMetrics(fn func(Metrics)) {
	s.mu.Lock()
	s.onMetrics = fn
	s.mu.Unlock()
}

// Select arms the session for the given ride. A finished ride cannot be
// re-recorded; arming a different ride after finishing is allowed.
func (s *Session) Select(ride models.Ride) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == rides.SessionRecording {
		return rides.ErrRecordingActive
	}
	if ride.Finished() {
		return rides.ErrRideFinished
	}

	s.ride = ride
	s.state = rides.SessionArmed
	s.route = nil
	s.liveKm = 0
	s.start = 0
	s.end = 0
	s.lastErr = ""
	return nil
}

// Start begins recording the armed ride: clears the route buffer, opens a
// sampler watch, stamps the start time and begins the live-duration ticker.
// Calling it mid-recording or after finishing is a no-op.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case rides.SessionIdle:
		return rides.ErrNoRideSelected
	case rides.SessionRecording, rides.SessionFinished:
		return nil
	}

	w, err := s.source.Watch(s.opts)
	if err != nil {
		return err
	}

	s.epoch++
	s.state = rides.SessionRecording
	s.route = s.route[:0]
	s.liveKm = 0
	s.lastErr = ""
	s.start = s.now().UnixMilli()
	s.end = 0
	s.watch = w
	s.stopTick = make(chan struct{})

	go s.pump(w, s.epoch)
	go s.tickLoop(s.stopTick, s.epoch)
	return nil
}

// Stop finishes the recording: the watch and ticker are torn down before the
// state flips to Finished, then the frozen record is handed to the recorder.
func (s *Session) Stop(ctx context.Context) (models.Ride, error) {
	s.mu.Lock()
	if s.state != rides.SessionRecording {
		s.mu.Unlock()
		return models.Ride{}, rides.ErrNotRecording
	}
	done := s.finishLocked()
	s.mu.Unlock()

	return done, s.recorder.CompleteRide(ctx, done)
}

// finishLocked tears down the watch and ticker, stamps the end time and
// freezes the final metrics. Caller holds the lock.
func (s *Session) finishLocked() models.Ride {
	s.epoch++
	if s.watch != nil {
		s.watch.Clear()
		s.watch = nil
	}
	if s.stopTick != nil {
		close(s.stopTick)
		s.stopTick = nil
	}

	s.end = s.now().UnixMilli()
	s.state = rides.SessionFinished

	distance := utils.TotalDistance(s.route)
	duration := s.end - s.start

	done := s.ride
	done.RoutePoints = append([]models.RoutePoint(nil), s.route...)
	done.StartTime = &s.start
	done.EndTime = &s.end
	done.Distance = &distance
	done.Duration = &duration
	s.ride = done
	return done
}

// pump drains the watch into the session until it closes or fails.
func (s *Session) pump(w sampler.Watcher, epoch uint64) {
	for pos := range w.Updates() {
		s.handleSample(epoch, pos.Point)
	}
	select {
	case werr := <-w.Errors():
		s.handleGeoError(epoch, werr)
	default:
	}
}

func (s *Session) tickLoop(stop <-chan struct{}, epoch uint64) {
	ticker := time.NewTicker(s.tickEach)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.handleTick(epoch)
		case <-stop:
			return
		}
	}
}

// handleSample appends the fix in arrival order and advances the running
// distance incrementally, so long rides avoid a full recompute per sample.
func (s *Session) handleSample(epoch uint64, point models.RoutePoint) {
	s.mu.Lock()
	if epoch != s.epoch || s.state != rides.SessionRecording {
		s.mu.Unlock()
		return
	}
	if n := len(s.route); n > 0 {
		s.liveKm += utils.CalculateDistance(s.route[n-1], point)
	}
	s.route = append(s.route, point)
	notify, m := s.onMetrics, s.metricsLocked()
	s.mu.Unlock()

	if notify != nil {
		notify(m)
	}
}

func (s *Session) handleTick(epoch uint64) {
	s.mu.Lock()
	if epoch != s.epoch || s.state != rides.SessionRecording {
		s.mu.Unlock()
		return
	}
	notify, m := s.onMetrics, s.metricsLocked()
	s.mu.Unlock()

	if notify != nil {
		notify(m)
	}
}

// handleGeoError records a user-facing description of the fault and forces
// the recording to stop. Any fault is fatal to the current recording; the
// member must explicitly restart.
func (s *Session) handleGeoError(epoch uint64, werr sampler.WatchError) {
	s.mu.Lock()
	if epoch != s.epoch || s.state != rides.SessionRecording {
		s.mu.Unlock()
		return
	}
	s.lastErr = werr.Error()
	done := s.finishLocked()
	s.mu.Unlock()

	logger.Warn("recording stopped by positioning fault",
		logger.String("ride_id", done.ID.String()),
		logger.String("code", string(werr.Code)),
		logger.String("message", werr.Message))

	if err := s.recorder.CompleteRide(context.Background(), done); err != nil {
		logger.Error("failed to persist ride after positioning fault",
			logger.String("ride_id", done.ID.String()),
			logger.Err(err))
	}
}

// Metrics returns the live view of the session.
func (s *Session) Metrics() Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.metricsLocked()
}

func (s *Session) metricsLocked() Metrics {
	var elapsed int64
	switch s.state {
	case rides.SessionRecording:
		elapsed = s.now().UnixMilli() - s.start
	case rides.SessionFinished:
		elapsed = s.end - s.start
	}

	km := s.liveKm
	if s.state == rides.SessionFinished {
		km = utils.TotalDistance(s.route)
	}

	return Metrics{
		State:           s.state,
		RideID:          s.ride.ID,
		DurationMillis:  elapsed,
		DurationDisplay: utils.FormatDuration(elapsed),
		DistanceKm:      km,
		Samples:         len(s.route),
	}
}

// State returns the current lifecycle state.
func (s *Session) State() rides.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LastError returns the user-facing description of the fault that ended the
// last recording, empty if it ended normally.
func (s *Session) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Route returns a copy of the recorded route buffer.
func (s *Session) Route() []models.RoutePoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.RoutePoint(nil), s.route...)
}
