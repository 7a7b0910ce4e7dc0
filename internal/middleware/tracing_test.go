package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestTracingMiddleware_SetsTraceContext(t *testing.T) {
	app := fiber.New()
	app.Use(TracingMiddleware())

	var traceID any
	app.Get("/ping", func(c *fiber.Ctx) error {
		traceID = c.Locals("traceID")
		return c.SendStatus(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Trace-ID"))
	assert.NotNil(t, traceID)
}
