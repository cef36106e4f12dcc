package server

import (
	"context"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nikmy/intervald/pkg/errors"
	"github.com/nikmy/intervald/pkg/logger"
	"github.com/nikmy/intervald/pkg/tools/await"
)

const (
	minBufferSize   = 16
	maxAcceptDelay  = time.Second
	baseAcceptDelay = 5 * time.Millisecond
)

// Server accepts TCP connections and serves each of them with its own
// worker, all sharing one index.
type Server struct {
	cfg     Config
	index   index
	rec     recorder
	spawner Spawner
	log     logger.Logger

	connID atomic.Int64
	conns  sync.Map
}

func New(cfg Config, log logger.Logger, ix index, rec recorder) *Server {
	if cfg.BufferSize < minBufferSize {
		cfg.BufferSize = minBufferSize
	}

	return &Server{
		cfg:     cfg,
		index:   ix,
		rec:     rec,
		spawner: NewSpawner(cfg.MaxConnections),
		log:     log.With("tcp_server"),
	}
}

// ListenAndServe binds the configured address and serves it until ctx is
// done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.cfg.Address())
	if err != nil {
		return errors.WrapFailf(err, "listen on %s", s.cfg.Address())
	}

	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then waits for the
// running workers to finish. Serve closes ln.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.log.Infof("TCP server started on %s", ln.Addr())

	stop := context.AfterFunc(ctx, func() {
		_ = ln.Close()
	})
	defer stop()

	var delay time.Duration
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				break
			}

			delay = min(max(2*delay, baseAcceptDelay), maxAcceptDelay)
			s.log.Warn(errors.WrapFailf(err, "accept connection, retrying in %s", delay))
			time.Sleep(delay)
			continue
		}
		delay = 0

		id, task := s.track(conn)
		if err := s.spawner.Spawn(ctx, task); err != nil {
			s.conns.Delete(id)
			_ = conn.Close()
			break
		}
	}

	_ = ln.Close()
	s.drain()
	return nil
}

func (s *Server) track(conn net.Conn) (int64, func()) {
	id := s.connID.Add(1)
	s.conns.Store(id, conn)

	w := &worker{
		conn:         conn,
		index:        s.index,
		rec:          s.rec,
		log:          s.log.With("worker"),
		bufferSize:   s.cfg.BufferSize,
		readTimeout:  s.cfg.ReadTimeout,
		writeTimeout: s.cfg.WriteTimeout,
	}

	return id, func() {
		defer s.conns.Delete(id)
		w.Run()
	}
}

func (s *Server) drain() {
	s.log.Infof("shutting down, waiting for open connections")

	done := make(chan struct{})
	go func() {
		s.spawner.Wait()
		close(done)
	}()

	if s.cfg.GracePeriod <= 0 {
		<-done
		s.log.Infof("shutdown complete")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.GracePeriod)
	defer cancel()

	if !await.FromChan(done).Await(ctx) {
		s.log.Warnf("grace period of %s exceeded, closing open connections", s.cfg.GracePeriod)
		s.conns.Range(func(_, value any) bool {
			_ = value.(net.Conn).Close()
			return true
		})
		<-done
	}
	s.log.Infof("shutdown complete")
}
