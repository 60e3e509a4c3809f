package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/beka-birhanu/vinom-mazegen/api/i"
	"github.com/beka-birhanu/vinom-mazegen/api/identity"
	mazeapi "github.com/beka-birhanu/vinom-mazegen/api/maze"
	metricsapi "github.com/beka-birhanu/vinom-mazegen/api/metrics"
	"github.com/beka-birhanu/vinom-mazegen/infrastruture/metrics"
	"github.com/beka-birhanu/vinom-mazegen/infrastruture/token"
	si "github.com/beka-birhanu/vinom-mazegen/service/i"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, tokenizer si.Tokenizer) *gin.Engine {
	t.Helper()

	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg)
	require.NoError(t, err)

	mazeController, err := mazeapi.NewMazeController(50, m, nil)
	require.NoError(t, err)

	router := NewRouter(Config{
		BaseURL:                 "/api",
		GinMode:                 gin.TestMode,
		Controllers:             []i.Controller{mazeController, metricsapi.NewMetricsController(reg)},
		AuthorizationMiddleware: identity.Authoriz(tokenizer),
	})
	return router.Handler()
}

func serve(h http.Handler, url, bearer string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	h.ServeHTTP(w, req)
	return w
}

func TestRouter(t *testing.T) {
	tokenizer, err := token.NewJwtService("router-test-secret", "mazegen-test")
	require.NoError(t, err)
	engine := newTestRouter(t, tokenizer)

	t.Run("public route needs no token", func(t *testing.T) {
		w := serve(engine, "/api/v1/mazes?rows=2&columns=2&seed=3", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("metrics rejects anonymous requests", func(t *testing.T) {
		w := serve(engine, "/api/v1/metrics", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("metrics rejects bad tokens", func(t *testing.T) {
		w := serve(engine, "/api/v1/metrics", "not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("metrics with a valid token", func(t *testing.T) {
		jwt, err := tokenizer.Generate(map[string]interface{}{"sub": "scraper"}, time.Minute)
		require.NoError(t, err)

		w := serve(engine, "/api/v1/metrics", jwt)
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "mazegen_mazes_generated_total 1")
		assert.True(t, strings.Contains(body, `mazegen_steps_total{kind="advance"} 3`), body)
	})
}

func TestRouterWithoutTokenizer(t *testing.T) {
	engine := newTestRouter(t, nil)

	w := serve(engine, "/api/v1/metrics", "anything")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = serve(engine, "/api/v1/mazes?rows=1&columns=1", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouterAddr(t *testing.T) {
	r := NewRouter(Config{Addr: "127.0.0.1:9090"})
	assert.Equal(t, "127.0.0.1:9090", r.Addr())
}
