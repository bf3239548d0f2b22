package newrelic

import (
	"context"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/nomadbikers/ridetrack/internal/pkg/logger"
	"github.com/nomadbikers/ridetrack/internal/pkg/models"
)

// InitNewRelic initializes the New Relic application based on configuration.
// Returns nil when disabled; callers must tolerate a nil application.
func InitNewRelic(configs *models.Config) *newrelic.Application {
	if !configs.NewRelic.Enabled || configs.NewRelic.LicenseKey == "" {
		logger.Info("New Relic is disabled or license key not provided")
		return nil
	}

	nrApp, err := newrelic.NewApplication(
		newrelic.ConfigAppName(configs.NewRelic.AppName),
		newrelic.ConfigLicense(configs.NewRelic.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
		newrelic.ConfigAppLogForwardingEnabled(configs.NewRelic.ForwardLogs),
	)
	if err != nil {
		logger.Warn("Failed to initialize New Relic, continuing without New Relic",
			logger.Err(err))
		return nil
	}

	return nrApp
}

// FromContext retrieves the current transaction from context, if any.
func FromContext(ctx context.Context) *newrelic.Transaction {
	return newrelic.FromContext(ctx)
}

// WithSegment executes fn inside a named segment of the transaction in ctx.
// Without a transaction fn runs unwrapped.
func WithSegment(ctx context.Context, name string, fn func() error) error {
	txn := FromContext(ctx)
	if txn == nil {
		return fn()
	}

	segment := txn.StartSegment(name)
	defer segment.End()

	err := fn()
	if err != nil {
		txn.NoticeError(err)
	}
	return err
}
