package integration

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/wlabs/patient-console/internal/api"
	"github.com/wlabs/patient-console/internal/console"
	"github.com/wlabs/patient-console/internal/platform/middleware"
	"github.com/wlabs/patient-console/internal/stubserver"
)

// env wires the full stack for one test: the echo stub service behind an
// httptest listener, the HTTP client over it, and a fresh console model.
type env struct {
	Store  *stubserver.Store
	Client *api.Client
	UI     *console.Console
}

func newEnv(t *testing.T) *env {
	t.Helper()

	logger := zerolog.Nop()
	store := stubserver.NewStore()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	stubserver.NewHandler(store, logger).RegisterRoutes(e.Group("/api"))

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	client := api.NewClient(srv.URL, 5*time.Second, logger)
	return &env{
		Store:  store,
		Client: client,
		UI:     console.New(client, logger),
	}
}
