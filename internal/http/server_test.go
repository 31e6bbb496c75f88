package http

import (
	"testing"

	httpH "github.com/devlink-app/devlink-backend/internal/http/handlers"
	"github.com/devlink-app/devlink-backend/internal/platform/logger"
)

func TestNewServerBuildsConfiguredRouter(t *testing.T) {
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}

	srv := NewServer(RouterConfig{
		Log:           log,
		HealthHandler: httpH.NewHealthHandler(),
	})
	if srv == nil || srv.Engine == nil {
		t.Fatalf("NewServer returned no engine")
	}

	found := false
	for _, route := range srv.Engine.Routes() {
		if route.Method == "GET" && route.Path == "/healthcheck" {
			found = true
		}
	}
	if !found {
		t.Fatalf("healthcheck route not registered on the server engine")
	}
}
