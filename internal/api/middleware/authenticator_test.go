package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportsmate/sportsmate-api/internal/domain"
	"github.com/sportsmate/sportsmate-api/internal/pkg/jwthelper"
)

const testSigningKey = "test-signing-key"

func newTestRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protected", append(handlers, func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"userID": CurrentUserID(ctx),
			"role":   CurrentUserRole(ctx),
		})
	})...)

	return router
}

func doRequest(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestVerifyJWT(t *testing.T) {
	auth := NewAuthenticator(testSigningKey)

	t.Run("valid token passes", func(t *testing.T) {
		token, err := jwthelper.GenerateToken([]byte(testSigningKey), 42, domain.RoleMember, time.Hour)
		require.NoError(t, err)

		router := newTestRouter(auth.VerifyJWT())
		w := doRequest(router, "Bearer "+token)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"userID":42`)
	})

	t.Run("missing header", func(t *testing.T) {
		router := newTestRouter(auth.VerifyJWT())
		w := doRequest(router, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing bearer prefix", func(t *testing.T) {
		token, err := jwthelper.GenerateToken([]byte(testSigningKey), 42, domain.RoleMember, time.Hour)
		require.NoError(t, err)

		router := newTestRouter(auth.VerifyJWT())
		w := doRequest(router, token)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token signed with another key", func(t *testing.T) {
		token, err := jwthelper.GenerateToken([]byte("other-key"), 42, domain.RoleMember, time.Hour)
		require.NoError(t, err)

		router := newTestRouter(auth.VerifyJWT())
		w := doRequest(router, "Bearer "+token)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := jwthelper.GenerateToken([]byte(testSigningKey), 42, domain.RoleMember, -time.Minute)
		require.NoError(t, err)

		router := newTestRouter(auth.VerifyJWT())
		w := doRequest(router, "Bearer "+token)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	auth := NewAuthenticator(testSigningKey)

	t.Run("admin token passes", func(t *testing.T) {
		token, err := jwthelper.GenerateToken([]byte(testSigningKey), 1, domain.RoleAdmin, time.Hour)
		require.NoError(t, err)

		router := newTestRouter(auth.VerifyJWT(), RequireAdmin())
		w := doRequest(router, "Bearer "+token)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("member token rejected", func(t *testing.T) {
		token, err := jwthelper.GenerateToken([]byte(testSigningKey), 1, domain.RoleMember, time.Hour)
		require.NoError(t, err)

		router := newTestRouter(auth.VerifyJWT(), RequireAdmin())
		w := doRequest(router, "Bearer "+token)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("no identity rejected", func(t *testing.T) {
		router := newTestRouter(RequireAdmin())
		w := doRequest(router, "")

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
