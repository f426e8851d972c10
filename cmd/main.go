package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"diary_gateway/internal/backend"
	"diary_gateway/internal/config"
	"diary_gateway/internal/handlers"
	"diary_gateway/internal/logger"
	"diary_gateway/internal/repository"
	"diary_gateway/internal/repository/db"
	"diary_gateway/internal/server"
	"diary_gateway/internal/service"
	"diary_gateway/internal/session"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// load configs/config.yml, .env and GATEWAY_* overrides
	cfg, err := config.Load()
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(cfg.LogLevel)
	if cfg.LogLevel != logger.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	// open activity DB
	conn, err := db.InitDB(cfg.Activity.DBPath)
	if err != nil {
		log.Fatalw("failed to init sqlite", "path", cfg.Activity.DBPath, "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	sessions, err := session.NewManager(session.Options{
		Secret:     cfg.Session.Secret,
		CookieName: cfg.Session.CookieName,
		MaxAge:     cfg.Session.MaxAge,
		Secure:     cfg.Session.Secure,
	})
	if err != nil {
		log.Fatalw("failed to init sessions", "err", err)
	}

	// wire dependencies
	repos := repository.NewRepository(conn)
	client := backend.NewClient(cfg.Backend.URL, cfg.Backend.Timeout)
	services := service.NewService(client, repos)
	apiHandler := handlers.NewHandler(services, sessions, log, handlers.Options{
		LoginRate:      rate.Limit(cfg.RateLimit.RPS),
		LoginBurst:     cfg.RateLimit.Burst,
		TrustedProxies: cfg.TrustedProxies,
		StaticDir:      cfg.Web.StaticDir,
	})

	log.Infow("starting gateway", "port", cfg.Port, "backend", cfg.Backend.URL)

	srv := &server.Server{}
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	waitForShutdown(srv, log)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
	_ = log.Sync()
}
