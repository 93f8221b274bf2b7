package server

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-fuel-dashboard/internal/config"
	"github.com/MKhiriev/go-fuel-dashboard/internal/handler"
	myHTTP "github.com/MKhiriev/go-fuel-dashboard/internal/handler/http"
	"github.com/MKhiriev/go-fuel-dashboard/internal/logger"
	"github.com/MKhiriev/go-fuel-dashboard/internal/service"
	"github.com/MKhiriev/go-fuel-dashboard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAppInfoService struct{}

func (stubAppInfoService) GetAppVersion(context.Context) string { return "test" }

func (stubAppInfoService) GetAppInfo(context.Context) models.AppInfo {
	return models.AppInfo{Version: "test"}
}

func newTestHandlers(cfg config.Server) *handler.Handlers {
	services := &service.Services{AppInfoService: stubAppInfoService{}}
	return &handler.Handlers{HTTP: myHTTP.NewHandler(services, cfg, logger.Nop())}
}

func TestNewServer(t *testing.T) {
	tests := []struct {
		name     string
		handlers *handler.Handlers
		cfg      config.Server
		wantErr  bool
	}{
		{name: "http", handlers: newTestHandlers(config.Server{}), cfg: config.Server{HTTPAddress: "127.0.0.1:0"}},
		{name: "no address", handlers: newTestHandlers(config.Server{}), cfg: config.Server{}, wantErr: true},
		{name: "no handlers", handlers: nil, cfg: config.Server{HTTPAddress: "127.0.0.1:0"}, wantErr: true},
		{name: "no http handler", handlers: &handler.Handlers{}, cfg: config.Server{HTTPAddress: "127.0.0.1:0"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, err := NewServer(tt.handlers, tt.cfg, logger.Nop())
			if tt.wantErr {
				assert.ErrorIs(t, err, errNoServersAreCreated)
				assert.Nil(t, srv)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, srv)
		})
	}
}

func TestRunServer_ShutsDownOnCancel(t *testing.T) {
	srv, err := NewServer(newTestHandlers(config.Server{}), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.RunServer(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRunServer_ListenError(t *testing.T) {
	srv, err := NewServer(newTestHandlers(config.Server{}), config.Server{HTTPAddress: "not-an-address"}, logger.Nop())
	require.NoError(t, err)

	err = srv.RunServer(context.Background())
	assert.Error(t, err)
}

func TestHTTPServer_ServesRequests(t *testing.T) {
	h := newTestHandlers(config.Server{})
	s := newHTTPServer(h.HTTP.Init(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())

	l, err := s.listen()
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- s.serve(l) }()

	resp, err := http.Get("http://" + l.Addr().String() + "/api/version/")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"version":"test"`)

	require.NoError(t, s.Shutdown(context.Background()))
	assert.NoError(t, <-done)
}
