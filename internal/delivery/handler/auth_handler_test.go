package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"identity-service/internal/application/services"
	"identity-service/internal/delivery/middleware"
	"identity-service/internal/infrastructure"
	"identity-service/internal/infrastructure/db/postgres"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, postgres.AutoMigrate(db))

	jwtService := infrastructure.NewJWTService("test-secret", "trm-api", "trm-clients", 15*time.Minute)
	authService := services.NewAuthService(
		postgres.NewUserRepository(db),
		postgres.NewRoleRepository(db),
		postgres.NewRefreshTokenRepository(db),
		jwtService,
		bcrypt.MinCost,
		14*24*time.Hour,
	)

	e := echo.New()
	authHandler := NewAuthHandler(authService)
	g := e.Group("/api/auth")
	g.POST("/register", authHandler.Register)
	g.POST("/login", authHandler.Login)
	g.POST("/refresh-token", authHandler.Refresh)
	g.POST("/logout", authHandler.Logout)
	g.GET("/me", authHandler.Me, middleware.JWTAuth(jwtService))
	return e
}

func doJSON(e *echo.Echo, method, path, body, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

type authResponse struct {
	Result struct {
		AccessToken  string    `json:"access_token"`
		RefreshToken string    `json:"refresh_token"`
		ExpiresAt    time.Time `json:"expires_at"`
	} `json:"result"`
}

const registerBody = `{"email":"a@x.com","username":"alice","password":"Aa1!aaaa","confirm_password":"Aa1!aaaa"}`

func TestRegisterEndpoint(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/auth/register", registerBody, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp authResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Result.AccessToken)
	assert.NotEmpty(t, resp.Result.RefreshToken)

	// Duplicate email conflicts.
	rec = doJSON(e, http.MethodPost, "/api/auth/register", registerBody, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegisterEndpointRejectsWeakPassword(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/auth/register",
		`{"email":"a@x.com","username":"alice","password":"abc","confirm_password":"abc"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"password"`)
}

func TestLoginAndMeEndpoints(t *testing.T) {
	e := newTestServer(t)
	doJSON(e, http.MethodPost, "/api/auth/register", registerBody, "")

	rec := doJSON(e, http.MethodPost, "/api/auth/login", `{"email":"a@x.com","password":"Aa1!aaaa"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp authResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	rec = doJSON(e, http.MethodGet, "/api/auth/me", "", resp.Result.AccessToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)

	rec = doJSON(e, http.MethodGet, "/api/auth/me", "", "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/auth/login", `{"email":"a@x.com","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRefreshAndLogoutEndpoints(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/auth/register", registerBody, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	var registered authResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &registered))

	refreshBody := fmt.Sprintf(`{"refresh_token":%q}`, registered.Result.RefreshToken)
	rec = doJSON(e, http.MethodPost, "/api/auth/refresh-token", refreshBody, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var rotated authResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rotated))
	assert.NotEqual(t, registered.Result.RefreshToken, rotated.Result.RefreshToken)

	// The consumed token is gone.
	rec = doJSON(e, http.MethodPost, "/api/auth/refresh-token", refreshBody, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Logout is idempotent, even for unknown tokens.
	logoutBody := fmt.Sprintf(`{"refresh_token":%q}`, rotated.Result.RefreshToken)
	rec = doJSON(e, http.MethodPost, "/api/auth/logout", logoutBody, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = doJSON(e, http.MethodPost, "/api/auth/logout", logoutBody, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/auth/refresh-token", logoutBody, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
