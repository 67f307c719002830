package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRenderErr(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("renders a fail envelope with the mapped status code", func(t *testing.T) {
		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)

		RenderErr(ctx, ErrNotFound(errors.New("group not found")))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"status":"fail","message":"group not found"}`, w.Body.String())
	})

	t.Run("surfaces the cause of an internal server error", func(t *testing.T) {
		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)

		cause := errors.New("v1.getUser -> h.svc.Get -> connection refused")
		RenderErr(ctx, ErrInternalServerError(cause))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "connection refused")
		assert.Contains(t, w.Body.String(), `"status":"fail"`)
	})
}

func TestSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)

	Success(ctx, "user found", gin.H{"id": 1})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success","message":"user found","data":{"id":1}}`, w.Body.String())
}
