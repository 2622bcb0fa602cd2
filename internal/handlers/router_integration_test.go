// internal/handlers/router_integration_test.go
package handlers_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skill_tracker/internal/handlers"
	"skill_tracker/internal/model"
)

func TestRouter_GoalLifecycle(t *testing.T) {
	router, _ := newSQLiteRouter(t)

	// 作成
	rec := doRequest(t, router, http.MethodPost, "/goals/", validCreateBody())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeBody[model.Goal](t, rec)
	assert.NotZero(t, created.ID)
	assert.Equal(t, model.GoalStatusStarted, created.Status)
	assert.Zero(t, created.HoursSpent)
	assert.Equal(t, "", created.Notes)
	assert.True(t, created.CreatedAt.Equal(created.UpdatedAt))

	path := fmt.Sprintf("/goals/%d", created.ID)

	// 取得
	rec = doRequest(t, router, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	fetched := decodeBody[model.Goal](t, rec)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "Go", fetched.SkillName)

	// 部分更新
	rec = doRequest(t, router, http.MethodPatch, path, map[string]interface{}{"hours_spent": 5.5})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decodeBody[model.Goal](t, rec)
	assert.Equal(t, 5.5, updated.HoursSpent)
	assert.Equal(t, created.SkillName, updated.SkillName)
	assert.Equal(t, created.Platform, updated.Platform)
	assert.Equal(t, created.Status, updated.Status)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	// 空の更新でも updated_at は進む
	rec = doRequest(t, router, http.MethodPatch, path, map[string]interface{}{})
	require.Equal(t, http.StatusOK, rec.Code)
	touched := decodeBody[model.Goal](t, rec)
	assert.Equal(t, 5.5, touched.HoursSpent)
	assert.True(t, touched.UpdatedAt.After(updated.UpdatedAt))

	// 一覧
	rec = doRequest(t, router, http.MethodGet, "/goals", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]model.Goal](t, rec), 1)

	// 削除
	rec = doRequest(t, router, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(t, router, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Goal not found"}`, rec.Body.String())

	rec = doRequest(t, router, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, router, http.MethodPatch, path, map[string]interface{}{"notes": "again"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/goals/", nil)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestRouter_ListPaging(t *testing.T) {
	router, _ := newSQLiteRouter(t)

	for i := 0; i < 5; i++ {
		body := validCreateBody()
		body["skill_name"] = fmt.Sprintf("skill-%d", i)
		rec := doRequest(t, router, http.MethodPost, "/goals/", body)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doRequest(t, router, http.MethodGet, "/goals/?skip=1&limit=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	page := decodeBody[[]model.Goal](t, rec)
	require.Len(t, page, 2)
	assert.Equal(t, "skill-1", page[0].SkillName)
	assert.Equal(t, "skill-2", page[1].SkillName)

	rec = doRequest(t, router, http.MethodGet, "/goals/?skip=10", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestRouter_AnalyticsSummary(t *testing.T) {
	router, db := newSQLiteRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/analytics/summary", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	empty := decodeBody[map[string]interface{}](t, rec)
	assert.Equal(t, float64(0), empty["total_goals"])
	assert.Equal(t, map[string]interface{}{}, empty["goal_status_breakdown"])
	assert.Equal(t, map[string]interface{}{}, empty["resource_type_breakdown"])
	assert.Equal(t, []interface{}{}, empty["skill_hours_breakdown"])
	months := empty["hours_by_month_data"].([]interface{})
	require.Len(t, months, 1)
	assert.Equal(t, time.Now().UTC().Format(model.MonthLabelLayout), months[0].(map[string]interface{})["month"])

	for _, skill := range []string{"Go", "Go", "SQL"} {
		body := validCreateBody()
		body["skill_name"] = skill
		rec := doRequest(t, router, http.MethodPost, "/goals/", body)
		require.Equal(t, http.StatusCreated, rec.Code)
	}
	require.NoError(t, db.Model(&model.Goal{}).Where("id = ?", 1).
		Updates(map[string]interface{}{"status": model.GoalStatusCompleted, "hours_spent": 4}).Error)
	require.NoError(t, db.Model(&model.Goal{}).Where("id = ?", 3).
		Update("hours_spent", 1.5).Error)

	rec = doRequest(t, router, http.MethodGet, "/analytics/summary", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	summary := decodeBody[model.AnalyticsSummary](t, rec)
	assert.Equal(t, int64(3), summary.TotalGoals)
	assert.Equal(t, int64(1), summary.CompletedGoals)
	assert.InDelta(t, 5.5, summary.TotalHours, 1e-9)
	assert.Equal(t, map[string]int64{"Completed": 1, "Started": 2}, summary.GoalStatusBreakdown)
	assert.Equal(t, map[string]int64{"Course": 3}, summary.ResourceTypeBreakdown)
	assert.Equal(t, []model.SkillHours{{Skill: "Go", Hours: 4}, {Skill: "SQL", Hours: 1.5}}, summary.SkillHoursBreakdown)
	require.Len(t, summary.HoursByMonthData, 1)
	assert.InDelta(t, 5.5, summary.HoursByMonthData[0].TotalHours, 1e-9)
}

func TestRouter_RootHealthAndMetrics(t *testing.T) {
	router, _ := newSQLiteRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Welcome to the Skill Tracker API"}`, rec.Body.String())

	rec = doRequest(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	rec = doRequest(t, router, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_requests_total{endpoint="/health",method="GET",status="200"} 1`)
}

func TestRootHandler_HealthDown(t *testing.T) {
	h := handlers.NewRootHandler(stubPinger{err: errors.New("connection refused")}, discardLogger())
	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRouter_CORS(t *testing.T) {
	router, _ := newSQLiteRouter(t)

	tests := []struct {
		name        string
		origin      string
		wantAllowed bool
	}{
		{name: "allowed origin", origin: "http://localhost:3000", wantAllowed: true},
		{name: "other allowed origin", origin: "http://127.0.0.1:8000", wantAllowed: true},
		{name: "disallowed origin", origin: "http://evil.example.com", wantAllowed: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, "/goals/", nil)
			req.Header.Set("Origin", tc.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			req.Header.Set("Access-Control-Request-Headers", "content-type")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if tc.wantAllowed {
				assert.Equal(t, tc.origin, rec.Header().Get("Access-Control-Allow-Origin"))
				assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
				assert.True(t, strings.Contains(rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost))
			} else {
				assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}
