package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/vickhardth/site-pulse-api/internal/middleware"
	"github.com/vickhardth/site-pulse-api/internal/models"
	"github.com/vickhardth/site-pulse-api/internal/repository"
	"github.com/vickhardth/site-pulse-api/internal/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type hourlyTestEnv struct {
	db     *gorm.DB
	router *gin.Engine
}

func setupHourlyTestEnv(t *testing.T) hourlyTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.DailyReport{},
		&models.HourlyReport{},
	)
	require.NoError(t, err)

	reportRepo := repository.NewReportRepository(db)
	handler := NewHourlyReportHandler(reportRepo)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/api/hourly-report")
	group.Use(middleware.RequireAuth(testJWTSecret))
	{
		group.GET("/daily-targets/:date", handler.ListDailyTargetsByDate)
		group.GET("/:date", handler.ListByDate)
		group.POST("", handler.Create)
		group.PUT("/:id", handler.Update)
	}

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return hourlyTestEnv{db: db, router: r}
}

func (env hourlyTestEnv) createUser(t *testing.T, username, role string) *models.User {
	t.Helper()
	user := &models.User{
		Username:     username,
		PasswordHash: "hashedpassword",
		DOB:          time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Role:         role,
	}
	require.NoError(t, env.db.Create(user).Error)
	return user
}

func (env hourlyTestEnv) request(t *testing.T, method, path string, payload any, user *models.User) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if payload != nil {
		body, err := json.Marshal(payload)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	token, err := utils.IssueToken(testJWTSecret, user)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func hourlyPayload() map[string]any {
	return map[string]any{
		"reportDate":     "2025-03-10",
		"timePeriod":     "10:00-11:00",
		"projectName":    "PRJ-42",
		"dailyTarget":    "Wire the cabinet",
		"hourlyActivity": "Completed wiring",
	}
}

func TestHourlyReport_CreateAndListByDate(t *testing.T) {
	env := setupHourlyTestEnv(t)
	alice := env.createUser(t, "alice", "Engineer")

	w := env.request(t, http.MethodPost, "/api/hourly-report", hourlyPayload(), alice)
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.request(t, http.MethodGet, "/api/hourly-report/2025-03-10", nil, alice)
	require.Equal(t, http.StatusOK, w.Code)

	var reports []models.HourlyReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reports))
	require.Len(t, reports, 1)
	require.Equal(t, alice.ID, reports[0].UserID)
}

func TestHourlyReport_ListByDate_OwnRowsOnly(t *testing.T) {
	env := setupHourlyTestEnv(t)
	alice := env.createUser(t, "alice", "Engineer")
	carol := env.createUser(t, "carol", "Engineer")

	require.Equal(t, http.StatusCreated,
		env.request(t, http.MethodPost, "/api/hourly-report", hourlyPayload(), carol).Code)

	w := env.request(t, http.MethodGet, "/api/hourly-report/2025-03-10", nil, alice)
	require.Equal(t, http.StatusOK, w.Code)

	var reports []models.HourlyReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reports))
	require.Empty(t, reports)
}

func TestHourlyReport_CreateMissingFields(t *testing.T) {
	env := setupHourlyTestEnv(t)
	alice := env.createUser(t, "alice", "Engineer")

	payload := hourlyPayload()
	delete(payload, "hourlyActivity")

	w := env.request(t, http.MethodPost, "/api/hourly-report", payload, alice)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHourlyReport_UpdateOwnership(t *testing.T) {
	env := setupHourlyTestEnv(t)
	alice := env.createUser(t, "alice", "Engineer")
	carol := env.createUser(t, "carol", "Engineer")
	bob := env.createUser(t, "bob", "Manager")

	require.Equal(t, http.StatusCreated,
		env.request(t, http.MethodPost, "/api/hourly-report", hourlyPayload(), alice).Code)

	var report models.HourlyReport
	require.NoError(t, env.db.First(&report).Error)
	path := fmt.Sprintf("/api/hourly-report/%d", report.ID)

	update := hourlyPayload()
	update["hourlyActivity"] = "Rechecked wiring"

	// a stranger may not touch the row
	require.Equal(t, http.StatusForbidden,
		env.request(t, http.MethodPut, path, update, carol).Code)

	// the owner may
	require.Equal(t, http.StatusOK,
		env.request(t, http.MethodPut, path, update, alice).Code)

	// and so may a supervisor
	update["hourlyActivity"] = "Manager override"
	require.Equal(t, http.StatusOK,
		env.request(t, http.MethodPut, path, update, bob).Code)

	require.NoError(t, env.db.First(&report, report.ID).Error)
	require.Equal(t, "Manager override", report.HourlyActivity)
}

func TestHourlyReport_UpdateNotFound(t *testing.T) {
	env := setupHourlyTestEnv(t)
	alice := env.createUser(t, "alice", "Engineer")

	w := env.request(t, http.MethodPut, "/api/hourly-report/999", hourlyPayload(), alice)
	require.Equal(t, http.StatusNotFound, w.Code)
}
