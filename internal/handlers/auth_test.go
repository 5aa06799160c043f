package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/vickhardth/site-pulse-api/internal/dto"
	"github.com/vickhardth/site-pulse-api/internal/middleware"
	"github.com/vickhardth/site-pulse-api/internal/models"
	"github.com/vickhardth/site-pulse-api/internal/repository"
	"github.com/vickhardth/site-pulse-api/internal/services"
	"github.com/vickhardth/site-pulse-api/internal/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testJWTSecret = "test-secret"

type authTestEnv struct {
	db          *gorm.DB
	handler     *AuthHandler
	authService *services.AuthService
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{})
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	authService := services.NewAuthService(userRepo, testJWTSecret)
	handler := NewAuthHandler(authService)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return authTestEnv{
		db:          db,
		handler:     handler,
		authService: authService,
	}
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	env := setupAuthTestEnv(t)

	r := gin.New()
	r.POST("/api/register", env.handler.Register)

	w := postJSON(t, r, "/api/register", map[string]any{
		"username": "newuser",
		"password": "supersecret",
		"dob":      "1992-03-14",
		"role":     "Site Engineer",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "newuser", response.Username)
	require.Equal(t, "Site Engineer", response.Role)
	require.NotEmpty(t, response.Token)

	claims, err := utils.ParseToken(testJWTSecret, response.Token)
	require.NoError(t, err)
	require.Equal(t, "newuser", claims.Username)
	require.Equal(t, "Site Engineer", claims.Role)
}

func TestAuthHandler_Register_DuplicateUsername(t *testing.T) {
	env := setupAuthTestEnv(t)

	r := gin.New()
	r.POST("/api/register", env.handler.Register)

	payload := map[string]any{
		"username": "taken",
		"password": "supersecret",
		"dob":      "1988-11-02",
		"role":     "Engineer",
	}

	w := postJSON(t, r, "/api/register", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, r, "/api/register", payload)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_Register_FutureDOB(t *testing.T) {
	env := setupAuthTestEnv(t)

	r := gin.New()
	r.POST("/api/register", env.handler.Register)

	w := postJSON(t, r, "/api/register", map[string]any{
		"username": "timetraveler",
		"password": "supersecret",
		"dob":      "2999-01-01",
		"role":     "Engineer",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Register_DOBToday(t *testing.T) {
	env := setupAuthTestEnv(t)

	r := gin.New()
	r.POST("/api/register", env.handler.Register)

	w := postJSON(t, r, "/api/register", map[string]any{
		"username": "newborn",
		"password": "supersecret",
		"dob":      time.Now().Format("2006-01-02"),
		"role":     "Engineer",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Register_UnknownManager(t *testing.T) {
	env := setupAuthTestEnv(t)

	r := gin.New()
	r.POST("/api/register", env.handler.Register)

	w := postJSON(t, r, "/api/register", map[string]any{
		"username":  "orphan",
		"password":  "supersecret",
		"dob":       "1990-06-15",
		"role":      "Engineer",
		"managerId": 9999,
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupAuthTestEnv(t)

	_, _, err := env.authService.Register(services.RegisterInput{
		Username: "existing",
		Password: "supersecret",
		DOB:      "1985-07-21",
		Role:     "Manager",
	})
	require.NoError(t, err)

	r := gin.New()
	r.POST("/api/login", env.handler.Login)

	w := postJSON(t, r, "/api/login", map[string]any{
		"username": "existing",
		"password": "supersecret",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "existing", response.Username)
	require.Equal(t, "Manager", response.Role)
	require.NotEmpty(t, response.Token)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	env := setupAuthTestEnv(t)

	_, _, err := env.authService.Register(services.RegisterInput{
		Username: "existing",
		Password: "supersecret",
		DOB:      "1985-07-21",
		Role:     "Engineer",
	})
	require.NoError(t, err)

	r := gin.New()
	r.POST("/api/login", env.handler.Login)

	w := postJSON(t, r, "/api/login", map[string]any{
		"username": "existing",
		"password": "wrong",
	})

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_AcceptsIssuedToken(t *testing.T) {
	env := setupAuthTestEnv(t)

	user, token, err := env.authService.Register(services.RegisterInput{
		Username: "bearer",
		Password: "supersecret",
		DOB:      "1991-02-09",
		Role:     "Engineer",
	})
	require.NoError(t, err)

	r := gin.New()
	r.GET("/whoami", middleware.RequireAuth(testJWTSecret), func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"id": id})
	})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]uint64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, user.ID, response["id"])
}

func TestRequireAuth_RejectsMissingAndBadTokens(t *testing.T) {
	r := gin.New()
	r.GET("/whoami", middleware.RequireAuth(testJWTSecret), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
