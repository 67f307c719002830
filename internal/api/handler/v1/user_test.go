package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/sportsmate/sportsmate-api/internal/api/middleware"
	"github.com/sportsmate/sportsmate-api/internal/service"
)

type stubUserService struct {
	UserService

	delete func(ctx context.Context, id uint) error
}

func (s *stubUserService) Delete(ctx context.Context, id uint) error {
	return s.delete(ctx, id)
}

func newDeleteMeRouter(svc UserService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewUserHandler(svc)

	router := gin.New()
	router.DELETE("/user/me", func(ctx *gin.Context) {
		ctx.Set(middleware.ContextKeyUserID, uint(7))
		handler.HandleDeleteMe(ctx)
	})

	return router
}

func TestHandleDeleteMe(t *testing.T) {
	t.Run("deletes the authenticated user", func(t *testing.T) {
		svc := &stubUserService{
			delete: func(_ context.Context, id uint) error {
				assert.Equal(t, uint(7), id)

				return nil
			},
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/user/me", nil)
		newDeleteMeRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"success"`)
	})

	t.Run("maps a user who still owns events or groups to 409", func(t *testing.T) {
		svc := &stubUserService{
			delete: func(_ context.Context, _ uint) error {
				return service.ErrUserOwnsResources
			},
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/user/me", nil)
		newDeleteMeRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"fail"`)
	})

	t.Run("maps an unknown user to 404", func(t *testing.T) {
		svc := &stubUserService{
			delete: func(_ context.Context, _ uint) error {
				return service.ErrUserNotFound
			},
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/user/me", nil)
		newDeleteMeRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
