package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"devonn-assistant-be/internal/bootstrap"
	"devonn-assistant-be/internal/config"
	"devonn-assistant-be/internal/controller"
	"devonn-assistant-be/internal/pkg/logger"
	"devonn-assistant-be/internal/service"
	"devonn-assistant-be/pkg/chat/conversation"
	"devonn-assistant-be/pkg/platform"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, secret string) *Server {
	t.Helper()
	log := logger.NewNopLogger()
	session := conversation.NewSession(conversation.DefaultPipeline(), conversation.Config{FollowUpDelay: time.Hour}, conversation.Options{Logger: log})
	t.Cleanup(session.Close)

	deployment, apis, processes := platform.NewDeploymentTracker(), platform.NewAPIRegistry(), platform.NewProcessRegistry()
	container := &bootstrap.Container{
		ChatController:      controller.NewChatController(service.NewChatService(session, log), nil),
		PlatformController:  controller.NewPlatformController(service.NewPlatformService(deployment, apis, processes, nil, log)),
		AnalyticsController: controller.NewAnalyticsController(service.NewAnalyticsService(nil)),
	}

	cfg := &config.Config{App: config.AppConfig{Port: "0", CorsAllowedOrigins: "*", JwtSecret: secret}}
	return New(cfg, container)
}

func TestServerExposesMetrics(t *testing.T) {
	srv := newTestServer(t, "")

	resp, err := srv.GetApp().Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.True(t, strings.Contains(string(body), "devonn_"), "expected devonn metrics in exposition")

	resp, err = srv.GetApp().Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServerProtectsAPIWhenSecretSet(t *testing.T) {
	open := newTestServer(t, "")
	resp, err := open.GetApp().Test(httptest.NewRequest(http.MethodGet, "/api/chat/v1/messages", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	locked := newTestServer(t, "s3cret")
	resp, err = locked.GetApp().Test(httptest.NewRequest(http.MethodGet, "/api/chat/v1/messages", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, err = locked.GetApp().Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
