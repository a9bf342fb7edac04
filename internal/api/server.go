package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/nerrad567/device-inventory/internal/auth"
	"github.com/nerrad567/device-inventory/internal/device"
	"github.com/nerrad567/device-inventory/internal/infrastructure/config"
	"github.com/nerrad567/device-inventory/internal/infrastructure/logging"
)

// gracefulShutdownTimeout bounds how long Close waits for in-flight requests.
const gracefulShutdownTimeout = 10 * time.Second

// HealthChecker is implemented by infrastructure clients reported on
// /api/v1/health (database, MQTT, InfluxDB).
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Deps holds the dependencies for the API server.
type Deps struct {
	Config   config.APIConfig
	WS       config.WebSocketConfig
	Security config.SecurityConfig
	Logger   *logging.Logger
	Manager  *device.Manager

	// Authenticator is required when Security.Auth.Enabled is true.
	Authenticator *auth.Authenticator

	// Hub, if set, is used instead of a server-owned hub so the caller can
	// register it as a device.Notifier before the server starts.
	Hub *Hub

	// Checks are run by the health endpoint, keyed by component name.
	Checks map[string]HealthChecker

	Version string
}

// Server is the HTTP API server.
type Server struct {
	cfg      config.APIConfig
	wsCfg    config.WebSocketConfig
	secCfg   config.SecurityConfig
	logger   *logging.Logger
	manager  *device.Manager
	authn    *auth.Authenticator
	checks   map[string]HealthChecker
	version  string
	started  time.Time
	hub      *Hub
	ownsHub  bool
	server   *http.Server
	listener net.Listener
	cancel   context.CancelFunc
	mu       sync.Mutex
}

// New creates a Server. Call Start to begin serving.
func New(deps Deps) (*Server, error) {
	if deps.Logger == nil {
		return nil, errors.New("logger is required")
	}
	if deps.Manager == nil {
		return nil, errors.New("device manager is required")
	}
	if deps.Security.Auth.Enabled && deps.Authenticator == nil {
		return nil, errors.New("authenticator is required when auth is enabled")
	}

	s := &Server{
		cfg:     deps.Config,
		wsCfg:   deps.WS,
		secCfg:  deps.Security,
		logger:  deps.Logger,
		manager: deps.Manager,
		authn:   deps.Authenticator,
		checks:  deps.Checks,
		version: deps.Version,
		started: time.Now(),
		hub:     deps.Hub,
	}

	if s.hub == nil {
		s.hub = NewHub(deps.WS, deps.Logger)
		s.ownsHub = true
	}

	return s, nil
}

// Hub returns the WebSocket hub the server broadcasts through.
func (s *Server) Hub() *Hub {
	return s.hub
}

// Handler returns the fully wired router.
func (s *Server) Handler() http.Handler {
	return s.buildRouter()
}

// Start binds the listener and serves in the background. Bind errors are
// returned; later serve errors are logged.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.server != nil {
		return errors.New("api server already started")
	}

	var srvCtx context.Context
	srvCtx, s.cancel = context.WithCancel(ctx)

	if s.ownsHub {
		go s.hub.Run(srvCtx)
	}

	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		s.cancel()
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	s.listener = ln

	srv := &http.Server{
		Handler:           s.buildRouter(),
		ReadTimeout:       time.Duration(s.cfg.Timeouts.Read) * time.Second,
		ReadHeaderTimeout: time.Duration(s.cfg.Timeouts.Read) * time.Second,
		WriteTimeout:      time.Duration(s.cfg.Timeouts.Write) * time.Second,
		IdleTimeout:       time.Duration(s.cfg.Timeouts.Idle) * time.Second,
	}

	s.server = srv

	go func() {
		var err error
		if s.cfg.TLS.Enabled {
			s.logger.Info("API server starting with TLS", "address", ln.Addr().String(), "cert", s.cfg.TLS.CertFile)
			err = srv.ServeTLS(ln, s.cfg.TLS.CertFile, s.cfg.TLS.KeyFile)
		} else {
			s.logger.Info("API server starting", "address", ln.Addr().String())
			err = srv.Serve(ln)
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("API server error", "error", err)
		}
	}()

	return nil
}

// Addr returns the bound address, or "" before Start.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Port returns the bound TCP port. It fails before Start.
func (s *Server) Port() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return 0, errors.New("api server not started")
	}
	addr, ok := s.listener.Addr().(*net.TCPAddr)
	if !ok {
		return 0, fmt.Errorf("unexpected listener address %T", s.listener.Addr())
	}
	return addr.Port, nil
}

// Close stops background work and shuts the server down gracefully.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.server == nil {
		return nil
	}
	if s.cancel != nil {
		s.cancel()
	}

	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	s.logger.Info("API server shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down API server: %w", err)
	}
	s.server = nil
	return nil
}

// HealthCheck reports whether the server is serving.
func (s *Server) HealthCheck(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("api health check: %w", ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.server == nil {
		return errors.New("api server not started")
	}
	return nil
}
