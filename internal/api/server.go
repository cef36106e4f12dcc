package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nikmy/intervald/pkg/errors"
	"github.com/nikmy/intervald/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

type stats struct {
	Intervals  int `json:"intervals"`
	Boundaries int `json:"boundaries"`
}

func NewServer(cfg Config, log logger.Logger, index statsProvider, gatherer prometheus.Gatherer) Server {
	serveLog := log.With("admin_http_server")

	fiberCfg := fiber.Config{
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		IdleTimeout:           cfg.IdleTimeout,
		DisableStartupMessage: true,
		RequestMethods:        []string{fiber.MethodGet, fiber.MethodHead},
	}

	fiberCfg.ErrorHandler = func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(map[string]string{"status": "ERROR", "message": fiberErr.Message})
		}

		serveLog.Warn(errors.WrapFail(err, "handle http request"))
		return c.Status(http.StatusInternalServerError).Send(nil)
	}

	s := &server{
		index:    index,
		gatherer: gatherer,
		http:     fiber.New(fiberCfg),
		addr:     cfg.Addr,
		log:      serveLog,
	}

	s.setupRoutes()

	return s
}

type server struct {
	index    statsProvider
	gatherer prometheus.Gatherer
	http     *fiber.App
	addr     string
	log      logger.Logger
}

// Serve listens on the configured address until ctx is done, then shuts
// the app down.
func (s *server) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() { errCh <- s.http.Listen(s.addr) }()

	s.log.Infof("admin HTTP server started on %s", s.addr)

	select {
	case err := <-errCh:
		return errors.WrapFailf(err, "serve http on %s", s.addr)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := s.Shutdown(shutdownCtx)
	if err != nil {
		return err
	}
	return <-errCh
}

func (s *server) Shutdown(ctx context.Context) error {
	err := s.http.ShutdownWithContext(ctx)
	if err != nil {
		return errors.WrapFail(err, "shutdown http server")
	}
	return nil
}

func (s *server) setupRoutes() {
	s.http.Get("/healthz", s.handleHealth)
	s.http.Get("/stats", s.handleStats)
	s.http.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
}

func (s *server) handleHealth(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(map[string]string{"status": "OK"})
}

func (s *server) handleStats(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(stats{
		Intervals:  s.index.Len(),
		Boundaries: s.index.Boundaries(),
	})
}
