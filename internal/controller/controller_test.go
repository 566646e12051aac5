package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"devonn-assistant-be/internal/dto"
	"devonn-assistant-be/internal/pkg/logger"
	"devonn-assistant-be/internal/pkg/serverutils"
	"devonn-assistant-be/internal/service"
	"devonn-assistant-be/pkg/chat/conversation"
	"devonn-assistant-be/pkg/platform"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	log := logger.NewNopLogger()

	deployment := platform.NewDeploymentTracker()
	apis := platform.NewAPIRegistry()
	processes := platform.NewProcessRegistry()

	session := conversation.NewSession(conversation.DefaultPipeline(), conversation.Config{FollowUpDelay: time.Hour}, conversation.Options{
		Snapshots: conversation.ProviderSnapshot{Deployment: deployment, APIs: apis},
		Processes: processes,
		Logger:    log,
	})
	t.Cleanup(session.Close)

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	api := app.Group("/api")
	NewChatController(service.NewChatService(session, log), nil).RegisterRoutes(api)
	NewPlatformController(service.NewPlatformService(deployment, apis, processes, nil, log)).RegisterRoutes(api)
	NewAnalyticsController(service.NewAnalyticsService(nil)).RegisterRoutes(api)
	return app
}

func call[T any](t *testing.T, app *fiber.App, method, path string, body interface{}) (int, serverutils.BaseResponse[T]) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)

	var res serverutils.BaseResponse[T]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	return resp.StatusCode, res
}

func TestChatController(t *testing.T) {
	app := newTestApp(t)

	t.Run("Send message", func(t *testing.T) {
		code, res := call[dto.SendMessageResponse](t, app, http.MethodPost, "/api/chat/v1/messages", dto.SendMessageRequest{Text: "hello"})
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, "greeting", res.Data.Intent.Type)
		assert.NotEmpty(t, res.Data.Reply.Content)
	})

	t.Run("Empty message is rejected", func(t *testing.T) {
		code, res := call[any](t, app, http.MethodPost, "/api/chat/v1/messages", dto.SendMessageRequest{})
		assert.Equal(t, http.StatusBadRequest, code)
		assert.False(t, res.Success)
	})

	t.Run("Messages", func(t *testing.T) {
		code, res := call[[]map[string]interface{}](t, app, http.MethodGet, "/api/chat/v1/messages", nil)
		require.Equal(t, http.StatusOK, code)
		assert.Len(t, res.Data, 3)
	})

	t.Run("Invalid feedback", func(t *testing.T) {
		code, _ := call[any](t, app, http.MethodPost, "/api/chat/v1/messages/x/feedback", dto.FeedbackRequest{Feedback: "meh"})
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("Unknown button", func(t *testing.T) {
		code, _ := call[any](t, app, http.MethodPost, "/api/chat/v1/messages/x/buttons/y", nil)
		assert.Equal(t, http.StatusNotFound, code)
	})

	t.Run("Status", func(t *testing.T) {
		code, res := call[dto.ChatStatusResponse](t, app, http.MethodGet, "/api/chat/v1/status", nil)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, 1, res.Data.MessageCount)
		assert.Equal(t, "greeting", res.Data.Context.LastIntent)
	})

	t.Run("Websocket requires upgrade", func(t *testing.T) {
		code, _ := call[any](t, app, http.MethodGet, "/api/chat/v1/ws", nil)
		assert.Equal(t, http.StatusUpgradeRequired, code)
	})

	t.Run("Clear", func(t *testing.T) {
		code, _ := call[any](t, app, http.MethodDelete, "/api/chat/v1/messages", nil)
		require.Equal(t, http.StatusOK, code)
		_, res := call[[]map[string]interface{}](t, app, http.MethodGet, "/api/chat/v1/messages", nil)
		assert.Len(t, res.Data, 1)
	})
}

func TestPlatformStateFeedsReplies(t *testing.T) {
	app := newTestApp(t)

	code, _ := call[any](t, app, http.MethodPut, "/api/platform/v1/apis", platform.APIConfig{Name: "billing", Endpoint: "https://billing.local", IsConnected: true})
	require.Equal(t, http.StatusOK, code)

	code, _ = call[any](t, app, http.MethodPut, "/api/platform/v1/apis", map[string]string{"name": "missing endpoint"})
	assert.Equal(t, http.StatusBadRequest, code)

	_, res := call[dto.SendMessageResponse](t, app, http.MethodPost, "/api/chat/v1/messages", dto.SendMessageRequest{Text: "show me the webhook endpoint"})
	assert.Equal(t, "api", res.Data.Intent.Type)
	assert.Contains(t, res.Data.Reply.Content, "I see you have 1 API configurations set up. 1 of them are currently connected.")

	code, _ = call[any](t, app, http.MethodDelete, "/api/platform/v1/apis/unknown", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestAnalyticsDisabled(t *testing.T) {
	app := newTestApp(t)

	code, res := call[any](t, app, http.MethodGet, "/api/analytics/v1/turns?limit=10", nil)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "turn analytics disabled", res.Message)

	code, _ = call[any](t, app, http.MethodGet, "/api/analytics/v1/turns?feedback=meh", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}
