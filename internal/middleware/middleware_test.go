package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adjei-dev/stagepress/internal/helpers"
)

const testSecret = "middleware-test-secret"

func protectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", Auth(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/admin", Auth(testSecret), RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/public", OptionalAuth(testSecret), func(c *gin.Context) {
		_, authed := c.Get("user")
		c.JSON(http.StatusOK, gin.H{"authed": authed})
	})
	return r
}

func sessionCookie(t *testing.T, role string) *http.Cookie {
	t.Helper()
	token, err := helpers.SignSession(testSecret, &helpers.SessionClaims{
		UserID: "6b7f3f0a-4f2e-4e0f-9a5d-2f4a9a0c1d22",
		Email:  "someone@blog.com",
		Role:   role,
	})
	require.NoError(t, err)
	return &http.Cookie{Name: helpers.SessionCookie, Value: token}
}

func get(r http.Handler, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRejectsMissingCookie(t *testing.T) {
	r := protectedRouter()
	w := get(r, "/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
}

func TestAuthRejectsBadToken(t *testing.T) {
	r := protectedRouter()
	w := get(r, "/me", &http.Cookie{Name: helpers.SessionCookie, Value: "garbage"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthAcceptsValidSession(t *testing.T) {
	r := protectedRouter()
	w := get(r, "/me", sessionCookie(t, "editor"))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	r := protectedRouter()

	w := get(r, "/admin", sessionCookie(t, "editor"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = get(r, "/admin", sessionCookie(t, "admin"))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOptionalAuth(t *testing.T) {
	r := protectedRouter()

	w := get(r, "/public", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"authed":false}`, w.Body.String())

	// An invalid cookie degrades to anonymous instead of failing.
	w = get(r, "/public", &http.Cookie{Name: helpers.SessionCookie, Value: "garbage"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"authed":false}`, w.Body.String())

	w = get(r, "/public", sessionCookie(t, "editor"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"authed":true}`, w.Body.String())
}
