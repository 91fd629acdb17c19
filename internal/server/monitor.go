package server

import (
	"context"
	"time"
)

// healthMonitor runs the configured dependency checks on a fixed
// interval and logs state transitions. It backs proactive alerting;
// the /health endpoint performs its own on-demand checks.
type healthMonitor struct {
	server *Server

	stopCh chan struct{}
	doneCh chan struct{}
}

func newHealthMonitor(s *Server) *healthMonitor {
	return &healthMonitor{
		server: s,
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

// start launches the monitor goroutine. The first check runs after one
// full interval, not at startup; server.New already pinged the DB.
func (m *healthMonitor) start() {
	cfg := m.server.Config.Observability.HealthChecks

	go func() {
		defer close(m.doneCh)

		ticker := time.NewTicker(cfg.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-m.stopCh:
				return
			case <-ticker.C:
				m.runChecks(cfg.Timeout, cfg.Checks)
			}
		}
	}()

	m.server.Logger.Info().
		Dur("interval", cfg.Interval).
		Strs("checks", cfg.Checks).
		Msg("health monitor started")
}

// stop signals the monitor goroutine and waits for it to exit.
func (m *healthMonitor) stop() {
	close(m.stopCh)
	<-m.doneCh
}

func (m *healthMonitor) runChecks(timeout time.Duration, checks []string) {
	for _, check := range checks {
		switch check {
		case "database":
			m.checkDatabase(timeout)
		default:
			m.server.Logger.Warn().Str("check", check).Msg("unknown health check configured")
		}
	}
}

func (m *healthMonitor) checkDatabase(timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	start := time.Now()
	if err := m.server.DB.Pool.Ping(ctx); err != nil {
		m.server.Logger.Error().
			Err(err).
			Dur("response_time", time.Since(start)).
			Msg("background database health check failed")

		if app := m.server.LoggerService.GetApplication(); app != nil {
			app.RecordCustomEvent("HealthCheckError", map[string]interface{}{
				"check_type":       "database",
				"operation":        "background_health_check",
				"error_type":       "database_unhealthy",
				"response_time_ms": time.Since(start).Milliseconds(),
				"error_message":    err.Error(),
			})
		}
		return
	}

	m.server.Logger.Debug().
		Dur("response_time", time.Since(start)).
		Msg("background database health check passed")
}
