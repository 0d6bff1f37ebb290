package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"usersvc/internal/auth"
	"usersvc/internal/handler"
	"usersvc/internal/repository"
	"usersvc/internal/service"
)

const testSecret = "test-secret"

func newTestApp() *echo.Echo {
	e := echo.New()

	jwtService := auth.NewJWTService(testSecret)
	userRepo := repository.NewMemoryUserRepository()

	authService := service.NewAuthService(jwtService, "foo", "bar")
	userService := service.NewUserService(userRepo, nil)

	Register(e, jwtService, handler.NewAuthHandler(authService), handler.NewUserHandler(userService))
	return e
}

func doRequest(e *echo.Echo, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, e *echo.Echo) string {
	t.Helper()

	rec := doRequest(e, http.MethodPost, "/login", `{"user_name":"foo","password":"bar"}`, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["access_token"])
	assert.Equal(t, "Bearer", body["token_type"])

	return body["access_token"]
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["code"]
}

func TestLogin(t *testing.T) {
	e := newTestApp()
	login(t, e)
}

func TestLoginWrongCredentials(t *testing.T) {
	e := newTestApp()

	rec := doRequest(e, http.MethodPost, "/login", `{"user_name":"foo","password":"nope"}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "WRONG_CREDENTIALS", decodeError(t, rec))
}

func TestLoginMissingCredentials(t *testing.T) {
	e := newTestApp()

	rec := doRequest(e, http.MethodPost, "/login", `{"user_name":"foo","password":""}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "MISSING_CREDENTIALS", decodeError(t, rec))
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	e := newTestApp()

	rec := doRequest(e, http.MethodGet, "/users", "", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "MISSING_CREDENTIALS", decodeError(t, rec))
}

func TestProtectedRouteWithTamperedToken(t *testing.T) {
	e := newTestApp()
	token := login(t, e)

	rec := doRequest(e, http.MethodGet, "/users", "", token+"x")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_TOKEN", decodeError(t, rec))
}

func TestProtectedRouteWithExpiredToken(t *testing.T) {
	e := newTestApp()

	claims := &auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "foo",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	assert.NoError(t, err)

	rec := doRequest(e, http.MethodGet, "/users", "", expired)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_TOKEN", decodeError(t, rec))
}

func TestGetUserInfo(t *testing.T) {
	e := newTestApp()
	token := login(t, e)

	rec := doRequest(e, http.MethodGet, "/get-user-info", "", token)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "foo", body["username"])
	assert.NotEmpty(t, body["email"])
}

func TestCreateUserWithExistingID(t *testing.T) {
	e := newTestApp()
	token := login(t, e)

	rec := doRequest(e, http.MethodPost, "/user", `{"id":1,"user_name":"foo"}`, token)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "CANNOT_CREATE_EXISTING_USER", decodeError(t, rec))
}

func TestUpdateUserWithMissingID(t *testing.T) {
	e := newTestApp()
	token := login(t, e)

	rec := doRequest(e, http.MethodPut, "/user", `{"user_name":"foo"}`, token)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "MISSING_ID", decodeError(t, rec))
}

func TestListUsersEmptyStore(t *testing.T) {
	e := newTestApp()
	token := login(t, e)

	rec := doRequest(e, http.MethodGet, "/users", "", token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestUserLifecycle(t *testing.T) {
	e := newTestApp()
	token := login(t, e)

	// Create
	rec := doRequest(e, http.MethodPost, "/user", `{"user_name":"alice"}`, token)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "alice", created["user_name"])
	assert.NotNil(t, created["id"])

	id := int64(created["id"].(float64))
	userPath := fmt.Sprintf("/user/%d", id)

	// Read
	rec = doRequest(e, http.MethodGet, userPath, "", token)
	assert.Equal(t, http.StatusOK, rec.Code)

	var fetched map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, "alice", fetched["user_name"])

	// Update
	rec = doRequest(e, http.MethodPut, "/user", fmt.Sprintf(`{"id":%d,"user_name":"bob"}`, id), token)
	assert.Equal(t, http.StatusOK, rec.Code)

	var updated map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "bob", updated["user_name"])

	// List
	rec = doRequest(e, http.MethodGet, "/users", "", token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "bob")

	// Delete is idempotent in effect but not in reported status.
	rec = doRequest(e, http.MethodDelete, userPath, "", token)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(e, http.MethodDelete, userPath, "", token)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Read after delete
	rec = doRequest(e, http.MethodGet, userPath, "", token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decodeError(t, rec))
}

func TestHealthz(t *testing.T) {
	e := newTestApp()

	rec := doRequest(e, http.MethodGet, "/healthz", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
