package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"joinme/internal/observability"
)

func TestTracingMiddlewareSetsTraceHeader(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	old := observability.Tracer
	observability.Tracer = tp.Tracer("test")
	t.Cleanup(func() { observability.Tracer = old })

	app := fiber.New()
	app.Use(TracingMiddleware())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	traceID := resp.Header.Get("X-Trace-ID")
	require.NotEmpty(t, traceID)
	assert.Len(t, traceID, 32)
	assert.NotEqual(t, "00000000000000000000000000000000", traceID)
}
