// Package logger configures the application's logging and
// observability plumbing.
//
// It builds the zerolog root logger (console output in local
// environments, JSON elsewhere) and, when a license key is configured,
// initializes New Relic so logs, traces, and metrics are forwarded.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/medialogapp/medialog-server/internal/config"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// LoggerService wraps the optional New Relic application instance.
// When New Relic is disabled the service still exists but carries a
// nil application; all call sites treat that as a no-op.
type LoggerService struct {
	nrApp *newrelic.Application
}

// GetApplication returns the New Relic application, or nil when APM is
// not configured.
func (s *LoggerService) GetApplication() *newrelic.Application {
	return s.nrApp
}

// Shutdown flushes pending telemetry. Safe to call with APM disabled.
func (s *LoggerService) Shutdown(timeout time.Duration) {
	if s.nrApp != nil {
		s.nrApp.Shutdown(timeout)
	}
}

// New builds the root logger and the observability service from config.
//
// With a New Relic license key configured, log output is routed through
// zerologWriter so entries are decorated with trace metadata and
// forwarded to New Relic. Otherwise output goes straight to stdout.
func New(cfg *config.Config) (*zerolog.Logger, *LoggerService, error) {
	level, err := zerolog.ParseLevel(cfg.Observability.GetLogLevel())
	if err != nil {
		return nil, nil, fmt.Errorf("parsing log level: %w", err)
	}

	service := &LoggerService{}

	if key := cfg.Observability.NewRelic.LicenseKey; key != "" {
		nrApp, err := newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.Observability.ServiceName),
			newrelic.ConfigLicense(key),
			newrelic.ConfigDistributedTracerEnabled(cfg.Observability.NewRelic.DistributedTracingEnabled),
			newrelic.ConfigAppLogForwardingEnabled(cfg.Observability.NewRelic.AppLogForwardingEnabled),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("initializing new relic: %w", err)
		}
		service.nrApp = nrApp
	}

	var out io.Writer = os.Stdout
	if service.nrApp != nil && cfg.Observability.NewRelic.AppLogForwardingEnabled {
		w := zerologWriter.New(os.Stdout, service.nrApp)
		out = &w
	}
	if cfg.Observability.Logging.Format == "console" || cfg.Primary.Env == "local" {
		out = zerolog.ConsoleWriter{Out: out}
	}

	log := zerolog.New(out).Level(level).With().
		Timestamp().
		Str("service", cfg.Observability.ServiceName).
		Str("env", cfg.Observability.Environment).
		Logger()

	return &log, service, nil
}

// WithTraceContext attaches trace.id and span.id from an active New
// Relic transaction so log lines correlate with distributed traces.
func WithTraceContext(log zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return log
	}
	md := txn.GetTraceMetadata()
	builder := log.With()
	if md.TraceID != "" {
		builder = builder.Str("trace.id", md.TraceID)
	}
	if md.SpanID != "" {
		builder = builder.Str("span.id", md.SpanID)
	}
	return builder.Logger()
}

// NewPgxLogger creates the logger used for SQL query logging in local
// environments. Kept separate from the root logger so query noise can
// carry its own component field.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().
		Timestamp().
		Str("component", "pgx").
		Logger()
}

// GetPgxTraceLogLevel maps the application log level onto pgx's
// tracelog levels.
func GetPgxTraceLogLevel(level zerolog.Level) tracelog.LogLevel {
	switch level {
	case zerolog.TraceLevel, zerolog.DebugLevel:
		return tracelog.LogLevelDebug
	case zerolog.InfoLevel:
		return tracelog.LogLevelInfo
	case zerolog.WarnLevel:
		return tracelog.LogLevelWarn
	default:
		return tracelog.LogLevelError
	}
}
