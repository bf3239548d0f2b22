package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/nomadbikers/ridetrack/internal/pkg/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger is our custom Zap logger that supports multiple outputs and New
// Relic log forwarding.
type ZapLogger struct {
	*zap.Logger
	nrApp    *newrelic.Application
	filePath string
	file     *os.File
}

// newRelicCore is a zapcore.Core that forwards log entries to New Relic.
type newRelicCore struct {
	level zapcore.Level
	nrApp *newrelic.Application
}

func (c *newRelicCore) Enabled(level zapcore.Level) bool {
	return c.level.Enabled(level)
}

func (c *newRelicCore) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	return &clone
}

func (c *newRelicCore) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return checked.AddCore(entry, c)
	}
	return checked
}

func (c *newRelicCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	if c.nrApp == nil {
		return nil
	}

	encoder := zapcore.NewMapObjectEncoder()
	for _, field := range fields {
		field.AddTo(encoder)
	}

	logData := newrelic.LogData{
		Timestamp:  entry.Time.UnixMilli(),
		Message:    entry.Message,
		Severity:   entry.Level.String(),
		Attributes: encoder.Fields,
	}
	if logData.Attributes == nil {
		logData.Attributes = make(map[string]any)
	}
	logData.Attributes["caller"] = entry.Caller.TrimmedPath()

	c.nrApp.RecordLog(logData)
	return nil
}

func (c *newRelicCore) Sync() error {
	return nil
}

// NewZapLogger creates a new Zap application logger from the app config.
func NewZapLogger(config models.LoggerConfig, nrApp *newrelic.Application) (*ZapLogger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(config.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	var cores []zapcore.Core
	cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level))

	zapLogger := &ZapLogger{
		nrApp:    nrApp,
		filePath: config.FilePath,
	}

	if config.FilePath != "" {
		if err := zapLogger.setupFileOutput(config.FilePath); err != nil {
			return nil, fmt.Errorf("failed to setup file output: %w", err)
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(zapLogger.file), level))
	}

	if nrApp != nil {
		cores = append(cores, &newRelicCore{level: level, nrApp: nrApp})
	}

	zapLogger.Logger = zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	return zapLogger, nil
}

func (zl *ZapLogger) setupFileOutput(filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	zl.file = file
	return nil
}

// WithError returns a logger with an error field attached.
func (zl *ZapLogger) WithError(err error) *zap.Logger {
	return zl.Logger.With(zap.Error(err))
}

// WithFields returns a logger with additional fields attached.
func (zl *ZapLogger) WithFields(fields map[string]interface{}) *zap.Logger {
	zapFields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}
	return zl.Logger.With(zapFields...)
}

// Close flushes buffered entries and closes the log file if one is open.
func (zl *ZapLogger) Close() error {
	_ = zl.Logger.Sync()
	if zl.file != nil {
		return zl.file.Close()
	}
	return nil
}
