package handlers_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"

	"motorsport-backend/internal/api/registry"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newRouter mounts the controllers under /api the way the server does
func newRouter(controllers ...registry.Controller) *gin.Engine {
	router := gin.New()
	reg := registry.New("/api")
	reg.Register(controllers...)
	reg.Mount(router)
	return router
}

func doRequest(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func errorBody(w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return body
}
