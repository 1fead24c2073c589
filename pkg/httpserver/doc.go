// Package httpserver wraps net/http.Server with graceful shutdown, signal
// handling, and environment-driven configuration.
//
// Run blocks until the context is canceled, SIGINT/SIGTERM arrives, or the
// listener fails, then drains in-flight requests within the configured
// shutdown timeout. Configuration comes either from functional options or
// from a Config struct populated by pkg/config:
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// HealthCheckHandler provides a liveness/readiness endpoint for process
// supervisors.
package httpserver
