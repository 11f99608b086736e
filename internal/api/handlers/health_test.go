package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"motorsport-backend/internal/api/handlers"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newHealthRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)

	h := handlers.NewHealthHandler(db)
	router := gin.New()
	router.GET("/health", h.Health)
	router.GET("/health/ready", h.Ready)
	router.GET("/health/live", h.Live)
	return router, mock
}

func TestHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		router, mock := newHealthRouter(t)
		mock.ExpectPing()

		w := doRequest(router, http.MethodGet, "/health", "")

		assert.Equal(t, http.StatusOK, w.Code)
		body := errorBody(w)
		assert.Equal(t, "healthy", body["status"])
		assert.Equal(t, handlers.Version, body["version"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database down", func(t *testing.T) {
		router, mock := newHealthRouter(t)
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		w := doRequest(router, http.MethodGet, "/health", "")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "unhealthy", errorBody(w)["status"])
	})
}

func TestReady(t *testing.T) {
	router, mock := newHealthRouter(t)
	mock.ExpectPing().WillReturnError(errors.New("starting up"))

	w := doRequest(router, http.MethodGet, "/health/ready", "")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, false, errorBody(w)["ready"])
}

func TestLive(t *testing.T) {
	router, _ := newHealthRouter(t)

	w := doRequest(router, http.MethodGet, "/health/live", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, errorBody(w)["alive"])
}
