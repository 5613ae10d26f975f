package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrometheus(t *testing.T) (*PrometheusMiddleware, *fiber.App) {
	t.Helper()
	// Fresh registry per test to avoid duplicate registration
	reg := prometheus.NewRegistry()
	promMiddleware, err := NewPrometheusMiddleware(reg)
	require.NoError(t, err)

	app := fiber.New()
	app.Use(promMiddleware.Handler())
	return promMiddleware, app
}

func TestPrometheusMiddleware(t *testing.T) {
	promMiddleware, app := newTestPrometheus(t)

	app.Get("/ocr/history", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/error", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusBadRequest, "bad request")
	})

	resp, _ := app.Test(httptest.NewRequest("GET", "/ocr/history", nil))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	count := testutil.ToFloat64(promMiddleware.requestCount.WithLabelValues("GET", "/ocr/history", "200"))
	assert.Equal(t, float64(1), count)

	app.Test(httptest.NewRequest("GET", "/error", nil))
	countErr := testutil.ToFloat64(promMiddleware.requestCount.WithLabelValues("GET", "/error", "400"))
	assert.Equal(t, float64(1), countErr)
}

func TestPrometheusMiddleware_ExcludeMetrics(t *testing.T) {
	promMiddleware, app := newTestPrometheus(t)

	app.Get("/metrics", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	app.Test(httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, 0, testutil.CollectAndCount(promMiddleware.requestCount))
}

func TestPrometheusMiddleware_PathPattern(t *testing.T) {
	promMiddleware, app := newTestPrometheus(t)

	app.Get("/ocr/:id", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	app.Test(httptest.NewRequest("GET", "/ocr/123", nil))

	// The route pattern is the label, not the raw path
	count := testutil.ToFloat64(promMiddleware.requestCount.WithLabelValues("GET", "/ocr/:id", "200"))
	assert.Equal(t, float64(1), count)

	assert.NotZero(t, testutil.CollectAndCount(promMiddleware.requestDuration))
}
