package profiles

import (
	"github.com/nomadbikers/ridetrack/internal/pkg/models"
)

// ProfileGW defines the interface for publishing profile events to the
// message bus
type ProfileGW interface {
	PublishChange(changeType models.ChangeType) error
}
