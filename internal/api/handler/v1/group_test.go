package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/sportsmate/sportsmate-api/internal/api/middleware"
	"github.com/sportsmate/sportsmate-api/internal/domain"
	"github.com/sportsmate/sportsmate-api/internal/service"
)

type stubGroupService struct {
	GroupService

	toggle func(ctx context.Context, groupID, userID uint) (domain.MembershipChange, error)
}

func (s *stubGroupService) Toggle(ctx context.Context, groupID, userID uint) (domain.MembershipChange, error) {
	return s.toggle(ctx, groupID, userID)
}

func newToggleRouter(svc GroupService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewGroupHandler(svc)

	router := gin.New()
	router.POST("/groups/:groupID/join", func(ctx *gin.Context) {
		ctx.Set(middleware.ContextKeyUserID, uint(7))
		handler.HandleToggleMembership(ctx)
	})

	return router
}

func TestHandleToggleMembership(t *testing.T) {
	t.Run("reports a switch with both group names and 201", func(t *testing.T) {
		svc := &stubGroupService{
			toggle: func(_ context.Context, groupID, userID uint) (domain.MembershipChange, error) {
				assert.Equal(t, uint(3), groupID)
				assert.Equal(t, uint(7), userID)

				return domain.MembershipChange{
					Action:        domain.MembershipSwitched,
					GroupName:     "team blue",
					FromGroupName: "team red",
				}, nil
			},
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/groups/3/join", nil)
		newToggleRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"success"`)
		assert.Contains(t, w.Body.String(), `switched from group \"team red\" to group \"team blue\"`)
	})

	t.Run("answers a join with 201", func(t *testing.T) {
		svc := &stubGroupService{
			toggle: func(_ context.Context, _, _ uint) (domain.MembershipChange, error) {
				return domain.MembershipChange{
					Action:    domain.MembershipJoined,
					GroupName: "team blue",
				}, nil
			},
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/groups/3/join", nil)
		newToggleRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `joined group \"team blue\"`)
	})

	t.Run("answers a leave with 200", func(t *testing.T) {
		svc := &stubGroupService{
			toggle: func(_ context.Context, _, _ uint) (domain.MembershipChange, error) {
				return domain.MembershipChange{
					Action:    domain.MembershipLeft,
					GroupName: "team blue",
				}, nil
			},
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/groups/3/join", nil)
		newToggleRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `left group \"team blue\"`)
	})

	t.Run("maps an unknown group to 404", func(t *testing.T) {
		svc := &stubGroupService{
			toggle: func(_ context.Context, _, _ uint) (domain.MembershipChange, error) {
				return domain.MembershipChange{}, service.ErrGroupNotFound
			},
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/groups/3/join", nil)
		newToggleRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"fail"`)
	})

	t.Run("rejects a non-numeric group ID", func(t *testing.T) {
		svc := &stubGroupService{
			toggle: func(_ context.Context, _, _ uint) (domain.MembershipChange, error) {
				t.Fatal("service must not be called")

				return domain.MembershipChange{}, nil
			},
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/groups/abc/join", nil)
		newToggleRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
