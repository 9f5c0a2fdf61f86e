package agent

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/hpc-toolchain/license-manager/pkg/backend"
	"github.com/hpc-toolchain/license-manager/pkg/identity"
)

// Server is the agent's own HTTP surface: a reconciliation trigger and a
// health probe.
type Server struct {
	echo       *echo.Echo
	httpServer *http.Server

	reconciler *Reconciler
	backend    *backend.Client

	// validator is nil when no AUTH0_SECRET was configured; the trigger
	// then answers 503.
	validator *identity.Validator
}

// NewServer creates the agent surface.
func NewServer(reconciler *Reconciler, client *backend.Client, validator *identity.Validator) *Server {
	s := &Server{
		echo:       echo.New(),
		reconciler: reconciler,
		backend:    client,
		validator:  validator,
	}

	s.echo.POST("/reconcile", s.reconcileHandler)
	s.echo.GET("/health", s.healthHandler)
	return s
}

// reconcileHandler handles POST /reconcile: runs one cycle immediately.
func (s *Server) reconcileHandler(c *echo.Context) error {
	if s.validator == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "trigger disabled: no auth secret configured")
	}

	header := c.Request().Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
	}
	payload, err := s.validator.Validate(token)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid bearer token")
	}
	if !payload.HasScope(identity.ScopeReconcile) {
		return echo.NewHTTPError(http.StatusForbidden, "missing required scope: "+identity.ScopeReconcile)
	}

	if err := s.reconciler.Cycle(c.Request().Context()); err != nil {
		if errors.Is(err, ErrEmptyReport) || errors.Is(err, backend.ErrAuthToken) || errors.Is(err, backend.ErrBackendConnection) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "reconciled"})
}

// healthHandler handles GET /health: 204 when the ledger is reachable.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := s.backend.Health(reqCtx); err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "ledger unreachable")
	}
	return c.NoContent(http.StatusNoContent)
}

// Start runs the HTTP surface on addr. Blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the underlying router, used by tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}
