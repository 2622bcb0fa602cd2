// internal/handlers/helpers_test.go
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"skill_tracker/internal/config"
	"skill_tracker/internal/handlers"
	"skill_tracker/internal/middleware"
	"skill_tracker/internal/repository"
	"skill_tracker/internal/service"
	"skill_tracker/internal/service/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubPinger は固定の結果を返す Pinger です
type stubPinger struct{ err error }

func (p stubPinger) PingContext(context.Context) error { return p.err }

func testCORS() config.CORSConfig {
	return config.CORSConfig{
		AllowedOrigins:   config.DefaultAllowedOrigins,
		AllowedMethods:   config.DefaultAllowedMethods,
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           600,
	}
}

// newMockRouter はサービスをモックに差し替えたルーターを返します
func newMockRouter(t *testing.T) (http.Handler, *mocks.GoalService, *mocks.AnalyticsService) {
	t.Helper()
	goalSvc := mocks.NewGoalService(t)
	analyticsSvc := mocks.NewAnalyticsService(t)
	router := handlers.NewRouter(handlers.RouterDeps{
		Goals:     handlers.NewGoalHandler(goalSvc, 100, discardLogger()),
		Analytics: handlers.NewAnalyticsHandler(analyticsSvc, discardLogger()),
		Root:      handlers.NewRootHandler(nil, discardLogger()),
		CORS:      testCORS(),
		Timeout:   5 * time.Second,
		Logger:    discardLogger(),
	})
	return router, goalSvc, analyticsSvc
}

// newSQLiteRouter は実際のサービスとインメモリ SQLite を使うルーターを返します
func newSQLiteRouter(t *testing.T) (http.Handler, *gorm.DB) {
	t.Helper()
	db, err := repository.NewDB(config.DatabaseConfig{
		Driver: "sqlite",
		URL:    "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	}, discardLogger(), false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repository.Close(db) })

	sqlDB, err := db.DB()
	require.NoError(t, err)

	goalSvc := service.NewGoalService(db, repository.NewGormGoalRepository(), 100, discardLogger())
	analyticsSvc := service.NewAnalyticsService(db, repository.NewGormAnalyticsRepository(), discardLogger())

	router := handlers.NewRouter(handlers.RouterDeps{
		Goals:     handlers.NewGoalHandler(goalSvc, 100, discardLogger()),
		Analytics: handlers.NewAnalyticsHandler(analyticsSvc, discardLogger()),
		Root:      handlers.NewRootHandler(sqlDB, discardLogger()),
		Metrics:   middleware.NewMetrics(prometheus.NewRegistry()),
		CORS:      testCORS(),
		Timeout:   5 * time.Second,
		Logger:    discardLogger(),
	})
	return router, db
}

// doRequest はルーターにリクエストを投げてレスポンスを返します。body が string ならそのまま送ります。
func doRequest(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		buf, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewBuffer(buf)
	}
	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}

var errStorage = errors.New("database is locked")
