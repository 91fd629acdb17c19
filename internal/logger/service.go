package logger

import (
	"os"
	"time"

	"github.com/haleview/clinic-api/internal/config"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/pkg/errors"
)

// LoggerService owns the optional New Relic application instance.
//
// The service is safe to use when APM is not configured: GetApplication
// returns nil and callers skip instrumentation. This keeps New Relic an
// opt-in concern instead of a hard dependency.
type LoggerService struct {
	app *newrelic.Application
}

// NewLoggerService starts the New Relic agent when a license key is
// configured. Without a key it returns a service whose GetApplication
// reports nil and the application runs uninstrumented.
func NewLoggerService(cfg *config.Config) (*LoggerService, error) {
	svc := &LoggerService{}

	nrCfg := cfg.Observability.NewRelic
	if nrCfg.LicenseKey == "" {
		return svc, nil
	}

	opts := []newrelic.ConfigOption{
		newrelic.ConfigAppName(cfg.Observability.ServiceName),
		newrelic.ConfigLicense(nrCfg.LicenseKey),
		newrelic.ConfigAppLogForwardingEnabled(nrCfg.AppLogForwardingEnabled),
		newrelic.ConfigDistributedTracerEnabled(nrCfg.DistributedTracingEnabled),
		func(c *newrelic.Config) {
			c.Labels = map[string]string{
				"environment": cfg.Observability.Environment,
			}
		},
	}
	if nrCfg.DebugLogging {
		opts = append(opts, newrelic.ConfigDebugLogger(os.Stdout))
	}

	app, err := newrelic.NewApplication(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "initializing new relic application")
	}

	svc.app = app
	return svc, nil
}

// GetApplication returns the New Relic application, or nil when APM is
// not configured. Nil receivers are allowed so callers can chain
// `svc.GetApplication() != nil` checks without guarding the service.
func (s *LoggerService) GetApplication() *newrelic.Application {
	if s == nil {
		return nil
	}
	return s.app
}

// Shutdown flushes buffered telemetry and stops the agent. Called
// during graceful shutdown; a no-op when APM is not configured.
func (s *LoggerService) Shutdown(timeout time.Duration) {
	if s == nil || s.app == nil {
		return
	}
	s.app.Shutdown(timeout)
}
