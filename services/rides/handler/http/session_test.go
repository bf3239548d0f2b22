package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/nomadbikers/ridetrack/internal/pkg/middleware"
	"github.com/nomadbikers/ridetrack/internal/pkg/models"
	"github.com/nomadbikers/ridetrack/services/rides/mocks"
	"github.com/nomadbikers/ridetrack/services/rides/sampler"
	"github.com/nomadbikers/ridetrack/services/rides/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionHandler(t *testing.T) (*SessionHandler, *mocks.MockRideUC) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRideUC := mocks.NewMockRideUC(ctrl)
	session := usecase.NewSession(mockRideUC, sampler.NewFeed(), &models.TrackingConfig{
		SampleTimeoutMs:  10000,
		TickerIntervalMs: 1000,
		TilePrecision:    6,
	})
	return NewSessionHandler(session, mockRideUC), mockRideUC
}

func newSelectContext(rideID, memberID string) (echo.Context, *httptest.ResponseRecorder) {
	c, recorder := newJSONContext(http.MethodPost, "/session/select", map[string]string{"ride_id": rideID})
	c.Set(middleware.ContextKeyUserID, memberID)
	return c, recorder
}

func TestSelectRide_ArmsSession(t *testing.T) {
	handler, mockRideUC := newSessionHandler(t)

	ride := models.Ride{ID: uuid.New(), Date: time.Now(), MeetingPoint: "A", Destination: "B"}
	mockRideUC.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)

	c, recorder := newSelectContext(ride.ID.String(), uuid.New().String())

	require.NoError(t, handler.SelectRide(c))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "armed")
}

func TestSelectRide_MissingSession(t *testing.T) {
	handler, _ := newSessionHandler(t)

	c, recorder := newJSONContext(http.MethodPost, "/session/select", map[string]string{"ride_id": uuid.New().String()})

	require.NoError(t, handler.SelectRide(c))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestSelectRide_FinishedRideConflicts(t *testing.T) {
	handler, mockRideUC := newSessionHandler(t)

	end := time.Now().UnixMilli()
	ride := models.Ride{ID: uuid.New(), Date: time.Now(), EndTime: &end}
	mockRideUC.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)

	c, recorder := newSelectContext(ride.ID.String(), uuid.New().String())

	require.NoError(t, handler.SelectRide(c))
	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestStartRecording_WithoutArmedRide(t *testing.T) {
	handler, _ := newSessionHandler(t)

	c, recorder := newJSONContext(http.MethodPost, "/session/start", nil)

	require.NoError(t, handler.StartRecording(c))
	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestStopRecording_WithoutRecording(t *testing.T) {
	handler, _ := newSessionHandler(t)

	c, recorder := newJSONContext(http.MethodPost, "/session/stop", nil)

	require.NoError(t, handler.StopRecording(c))
	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestRecordingLifecycle(t *testing.T) {
	handler, mockRideUC := newSessionHandler(t)

	member := uuid.New()
	ride := models.Ride{ID: uuid.New(), Date: time.Now(), MeetingPoint: "A", Destination: "B"}
	mockRideUC.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)

	var completed models.Ride
	mockRideUC.EXPECT().CompleteRide(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r models.Ride) error {
			completed = r
			return nil
		})

	c, recorder := newSelectContext(ride.ID.String(), member.String())
	require.NoError(t, handler.SelectRide(c))
	require.Equal(t, http.StatusOK, recorder.Code)

	c, recorder = newJSONContext(http.MethodPost, "/session/start", nil)
	require.NoError(t, handler.StartRecording(c))
	require.Equal(t, http.StatusOK, recorder.Code)

	c, recorder = newJSONContext(http.MethodGet, "/session/metrics", nil)
	require.NoError(t, handler.SessionMetrics(c))
	assert.Contains(t, recorder.Body.String(), "recording")

	c, recorder = newJSONContext(http.MethodPost, "/session/stop", nil)
	require.NoError(t, handler.StopRecording(c))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "end_time")

	// The completed record attributes the distance to the selecting member.
	require.NotNil(t, completed.RecorderID)
	assert.Equal(t, member, *completed.RecorderID)
	assert.Contains(t, recorder.Body.String(), member.String())
}
