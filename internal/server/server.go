// Package server accepts ledger sessions over TCP. Each connection runs in
// its own goroutine; shutdown interrupts idle reads, waits for sessions to
// finish and force-closes whatever is left after the grace period.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"
)

// SessionHandler serves one connection until the session ends. A non-nil
// error is fatal for the whole server.
type SessionHandler interface {
	Serve(ctx context.Context, conn net.Conn) (string, error)
}

// HandlerFunc adapts a function to SessionHandler
type HandlerFunc func(ctx context.Context, conn net.Conn) (string, error)

func (f HandlerFunc) Serve(ctx context.Context, conn net.Conn) (string, error) {
	return f(ctx, conn)
}

const acceptBackoffMax = time.Second

type Server struct {
	handler     SessionHandler
	logger      *slog.Logger
	gracePeriod time.Duration
	mu          sync.Mutex
	conns       map[net.Conn]struct{}
	wg          sync.WaitGroup
	fatalOnce   sync.Once
	fatalErr    error
}

func New(handler SessionHandler, logger *slog.Logger, gracePeriod time.Duration) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		handler:     handler,
		logger:      logger,
		gracePeriod: gracePeriod,
		conns:       make(map[net.Conn]struct{}),
	}
}

// ListenAndServe listens on addr and serves until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled or a session
// reports a fatal error, which is returned. ln is closed on return.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stop := context.AfterFunc(ctx, func() { _ = ln.Close() })
	defer stop()

	s.logger.Info("ledger server listening", slog.String("addr", ln.Addr().String()))

	var backoff time.Duration
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				backoff = nextBackoff(backoff)
				s.logger.Warn("accept failed, retrying",
					slog.String("error", err.Error()),
					slog.Duration("backoff", backoff),
				)
				time.Sleep(backoff)
				continue
			}
			cancel()
			s.drain()
			return fmt.Errorf("accept failed: %w", err)
		}
		backoff = 0

		s.track(conn)
		s.wg.Add(1)
		go s.handle(ctx, cancel, conn)
	}

	s.drain()
	return s.fatalErr
}

func (s *Server) handle(ctx context.Context, cancel context.CancelFunc, conn net.Conn) {
	defer s.wg.Done()
	defer s.untrack(conn)
	defer conn.Close()

	reason, err := s.handler.Serve(ctx, conn)
	if err != nil {
		s.fatalOnce.Do(func() { s.fatalErr = err })
		s.logger.Error("fatal session error, stopping server",
			slog.String("remote", conn.RemoteAddr().String()),
			slog.String("error", err.Error()),
		)
		cancel()
		return
	}
	s.logger.Debug("session ended",
		slog.String("remote", conn.RemoteAddr().String()),
		slog.String("reason", reason),
	)
}

// drain interrupts blocked reads, waits for the sessions and closes the
// stragglers once the grace period is over
func (s *Server) drain() {
	s.mu.Lock()
	for conn := range s.conns {
		_ = conn.SetReadDeadline(time.Now())
	}
	live := len(s.conns)
	s.mu.Unlock()

	if live > 0 {
		s.logger.Info("waiting for sessions to finish", slog.Int("sessions", live))
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return
	case <-time.After(s.gracePeriod):
	}

	s.mu.Lock()
	s.logger.Warn("grace period over, closing sessions", slog.Int("sessions", len(s.conns)))
	for conn := range s.conns {
		_ = conn.Close()
	}
	s.mu.Unlock()
	<-done
}

func (s *Server) track(conn net.Conn) {
	s.mu.Lock()
	s.conns[conn] = struct{}{}
	s.mu.Unlock()
}

func (s *Server) untrack(conn net.Conn) {
	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()
}

// ActiveSessions returns the number of connections being served
func (s *Server) ActiveSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns)
}

func nextBackoff(d time.Duration) time.Duration {
	if d == 0 {
		return 5 * time.Millisecond
	}
	d *= 2
	if d > acceptBackoffMax {
		d = acceptBackoffMax
	}
	return d
}
