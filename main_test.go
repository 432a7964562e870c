package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Feni2Backend/config/jwt"
	"Feni2Backend/util"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	body := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWelcomeRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := setupRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "Welcome to Feni-2 Backend!", body["message"])
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := setupRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/complaints/", nil)
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, util.NO_TOKEN_PROVIDED, body["message"])
}

func TestProtectedRouteWithBadToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := setupRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/complaints/", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, util.INVALID_TOKEN, body["message"])
}

func TestDeleteRequiresAdminRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")
	r := setupRouter()

	token, err := jwt.GenerateJWT("507f1f77bcf86cd799439011", "member@feni2.org", "member")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/notices/507f1f77bcf86cd799439011", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, util.ACCESS_DENIED, body["message"])
}

func TestAllowedOrigins(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "")
	assert.Equal(t, []string{"http://localhost:3000"}, allowedOrigins())

	t.Setenv("ALLOWED_ORIGINS", "https://feni2.org, https://admin.feni2.org ,")
	assert.Equal(t, []string{"https://feni2.org", "https://admin.feni2.org"}, allowedOrigins())
}
