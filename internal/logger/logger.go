// Package logger configure the application's logging,
// monitoring, and observability.
//
// It uses *ZeroLog* for logging and integrates with
// *New Relic* to instrument the codebase, forwarding logs,
// metrics, and traces for debugging
package logger

import (
	"io"
	"os"

	"github.com/haleview/clinic-api/internal/config"

	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// New builds the application's main structured logger.
//
// Output format and level come from the observability config. When the
// New Relic agent is running and log forwarding is enabled, the output
// writer is wrapped so each line is decorated with linking metadata and
// shipped to New Relic alongside stdout.
func New(cfg *config.Config, loggerService *LoggerService) *zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Observability.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if cfg.Observability.Logging.Format == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	if app := loggerService.GetApplication(); app != nil && cfg.Observability.NewRelic.AppLogForwardingEnabled {
		nrWriter := zerologWriter.New(out, app)
		nrWriter.DebugLogging(cfg.Observability.NewRelic.DebugLogging)
		out = nrWriter
	}

	logger := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.Observability.ServiceName).
		Str("environment", cfg.Observability.Environment).
		Logger()

	return &logger
}

// WithTraceContext returns a child logger carrying New Relic linking
// metadata (trace.id, span.id) so log lines can be correlated with the
// distributed trace they belong to.
func WithTraceContext(l zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return l
	}

	md := txn.GetTraceMetadata()

	builder := l.With()
	if md.TraceID != "" {
		builder = builder.Str("trace.id", md.TraceID)
	}
	if md.SpanID != "" {
		builder = builder.Str("span.id", md.SpanID)
	}

	return builder.Logger()
}
