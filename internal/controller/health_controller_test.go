package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"clinic-assistant-be/internal/config"
)

func TestHealthReportsPerDependencyStatus(t *testing.T) {
	app := fiber.New()
	// Nothing wired up and an unroutable model server: every check must
	// come back down, individually.
	ctl := NewHealthController(nil, nil, config.AIConfig{OllamaBaseURL: "http://127.0.0.1:1"})
	ctl.RegisterRoutes(app)

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	assert.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)

	var payload struct {
		Code    int               `json:"code"`
		Message string            `json:"message"`
		Data    map[string]string `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(body, &payload))

	assert.Equal(t, 200, payload.Code)
	assert.Equal(t, "degraded", payload.Message)
	for _, dep := range []string{"postgres", "vector", "mongo", "llm"} {
		assert.Contains(t, payload.Data, dep)
		assert.Contains(t, payload.Data[dep], "down")
	}
}
