package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/authkit/modules/auth"
	"github.com/dmitrymomot/authkit/pkg/config"
	"github.com/dmitrymomot/authkit/pkg/httpserver"
	"github.com/dmitrymomot/authkit/pkg/jwt"
	"github.com/dmitrymomot/authkit/pkg/logger"
	"github.com/dmitrymomot/authkit/pkg/requestid"
)

func main() {
	// Missing JWT_SECRET fails here, before anything listens.
	var authCfg auth.Config
	config.MustLoad(&authCfg)

	var httpCfg httpserver.Config
	config.MustLoad(&httpCfg)

	log := logger.New(
		logger.WithAttr(slog.String("service", "authkit")),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	codec, err := jwt.NewFromString(authCfg.JWTSecret)
	if err != nil {
		log.Error("failed to initialize token codec", logger.Error(err))
		os.Exit(1)
	}

	svc := auth.NewService(authCfg, codec, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("Hello, World!"))
	})
	r.Get("/health", httpserver.HealthCheckHandler(ctx, log))
	auth.Mount(r, svc, auth.NewExtractor(codec))

	srv := httpserver.NewFromConfig(httpCfg,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger) {
			l.Info("server listening", slog.String("addr", httpCfg.Addr))
		}),
		httpserver.WithStopHook(func(l *slog.Logger) {
			l.Info("server stopped")
		}),
	)

	if err := srv.Run(ctx, r); err != nil {
		log.Error("server exited with error", logger.Error(err))
		os.Exit(1)
	}
}
