package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"motorsport-backend/internal/api/middleware"
	"motorsport-backend/internal/logger"
	"motorsport-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(router *gin.Engine, method, target string, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, logger.RequestIDFromContext(c.Request.Context()))
	})

	t.Run("generates an id", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/ping", "", nil)
		id := w.Header().Get(middleware.RequestIDHeader)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("reuses the caller id", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/ping", "", map[string]string{middleware.RequestIDHeader: "trace-7"})
		assert.Equal(t, "trace-7", w.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, "trace-7", w.Body.String())
	})
}

func TestLogger_WritesAccessLine(t *testing.T) {
	var buf bytes.Buffer
	logger.SetupWithOutput("info", &buf)
	t.Cleanup(func() { logger.Setup("info") })

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logger())
	router.GET("/api/classes", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	serve(router, http.MethodGet, "/api/classes?page=2", "", map[string]string{middleware.RequestIDHeader: "req-1"})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "/api/classes?page=2", entry["path"])
	assert.Equal(t, float64(http.StatusTeapot), entry["status"])
	assert.Equal(t, "warning", entry["level"])
}

func TestRecovery(t *testing.T) {
	handler := func(c *gin.Context) { panic("boom: " + strings.Repeat("x", 300)) }

	t.Run("production hides details", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.Recovery(true))
		router.GET("/panic", handler)

		w := serve(router, http.MethodGet, "/panic", "", nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		body := decode(t, w)
		assert.Equal(t, "Internal server error", body["error"])
		assert.NotContains(t, body, "details")
	})

	t.Run("development echoes the panic", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.Recovery(false))
		router.GET("/panic", handler)

		w := serve(router, http.MethodGet, "/panic", "", nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, decode(t, w)["details"], "boom")
	})
}

func TestCORS(t *testing.T) {
	router := gin.New()
	router.Use(middleware.CORS([]string{"http://localhost:3000"}))
	called := false
	router.GET("/api/races", func(c *gin.Context) { called = true; c.Status(http.StatusOK) })

	t.Run("preflight is answered", func(t *testing.T) {
		w := serve(router, http.MethodOptions, "/api/races", "", map[string]string{
			"Origin":                        "http://localhost:3000",
			"Access-Control-Request-Method": http.MethodGet,
		})
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.False(t, called)
	})

	t.Run("unknown origin gets no allow header", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/api/races", "", map[string]string{"Origin": "http://evil.test"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestMetrics_CountsMatchedRoute(t *testing.T) {
	router := gin.New()
	router.Use(middleware.Metrics())
	router.GET("/api/cars/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/metrics", gin.WrapH(middleware.MetricsHandler()))

	serve(router, http.MethodGet, "/api/cars/"+uuid.NewString(), "", nil)
	w := serve(router, http.MethodGet, "/metrics", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `motorsport_http_requests_total{method="GET",route="/api/cars/:id",status="200"}`)
	assert.NotContains(t, w.Body.String(), `route="/metrics"`)
}

type createClass struct {
	Name string `json:"name" validate:"required,max=50"`
}

func TestUUIDParams(t *testing.T) {
	router := gin.New()
	handlerCalled := false
	router.GET("/races/:id/results/:resultId", middleware.UUIDParams("id", "resultId"), func(c *gin.Context) {
		handlerCalled = true
		c.String(http.StatusOK, middleware.Param(c, "resultId").String())
	})

	raceID, resultID := uuid.New(), uuid.New()

	w := serve(router, http.MethodGet, "/races/"+raceID.String()+"/results/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "resultId", decode(t, w)["field"])
	assert.False(t, handlerCalled)

	w = serve(router, http.MethodGet, "/races/"+raceID.String()+"/results/"+resultID.String(), "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, resultID.String(), w.Body.String())
}

func TestValidateJSON(t *testing.T) {
	router := gin.New()
	router.POST("/classes", middleware.ValidateJSON[createClass](service.NewValidator()), func(c *gin.Context) {
		c.JSON(http.StatusCreated, middleware.Body[createClass](c))
	})

	t.Run("malformed json", func(t *testing.T) {
		w := serve(router, http.MethodPost, "/classes", `{"name":`, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid request body", decode(t, w)["error"])
	})

	t.Run("failed rule", func(t *testing.T) {
		w := serve(router, http.MethodPost, "/classes", `{"name":""}`, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "name", decode(t, w)["field"])
	})

	t.Run("valid body reaches handler", func(t *testing.T) {
		w := serve(router, http.MethodPost, "/classes", `{"name":"GT3"}`, nil)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "GT3", decode(t, w)["name"])
	})
}

func TestValidateQuery(t *testing.T) {
	router := gin.New()
	router.GET("/drivers", middleware.ValidateQuery[service.ListQuery](service.NewValidator()), func(c *gin.Context) {
		q := middleware.Query[service.ListQuery](c)
		c.JSON(http.StatusOK, gin.H{"page": q.Page, "page_size": q.PageSize, "sort": q.Sort})
	})

	w := serve(router, http.MethodGet, "/drivers?page=2&page_size=10&sort=-last_name", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"page":2,"page_size":10,"sort":"-last_name"}`, w.Body.String())

	w = serve(router, http.MethodGet, "/drivers?page_size=500", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "page_size", decode(t, w)["field"])

	w = serve(router, http.MethodGet, "/drivers?page=abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
