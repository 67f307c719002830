package v1

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sportsmate/sportsmate-api/internal/api/handler/v1/request"
	"github.com/sportsmate/sportsmate-api/internal/api/handler/v1/response"
	"github.com/sportsmate/sportsmate-api/internal/api/middleware"
	"github.com/sportsmate/sportsmate-api/internal/domain"
	"github.com/sportsmate/sportsmate-api/internal/service"
)

var errInvalidID = errors.New("invalid ID in the URL")

type UserService interface {
	Get(ctx context.Context, id uint) (domain.User, error)
	Create(ctx context.Context, user domain.User) (domain.User, error)
	Update(ctx context.Context, user domain.User, newPassword string) (domain.User, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter domain.UserFilter, page domain.PageQuery) ([]domain.User, int64, error)
}

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{
		svc: svc,
	}
}

// HandleGetMe godoc
// @Summary      Get the authenticated user's profile
// @Tags         users
// @Produce      json
// @Success      200      {object}   response.Envelope
// @Failure      401      {object}   response.Envelope
// @Failure      500      {object}   response.Envelope
// @Router       /user/me [get]
func (h *UserHandler) HandleGetMe(ctx *gin.Context) {
	h.getUser(ctx, middleware.CurrentUserID(ctx))
}

// HandleUpdateMe godoc
// @Summary      Update the authenticated user's profile
// @Tags         users
// @Produce      json
// @Param        request   body      request.UpdateUserRequest true "request body"
// @Success      200      {object}   response.Envelope
// @Failure      400      {object}   response.Envelope
// @Failure      500      {object}   response.Envelope
// @Router       /user/me [put]
func (h *UserHandler) HandleUpdateMe(ctx *gin.Context) {
	h.updateUser(ctx, middleware.CurrentUserID(ctx))
}

// HandleDeleteMe godoc
// @Summary      Delete the authenticated user's account
// @Tags         users
// @Produce      json
// @Success      200      {object}   response.Envelope
// @Failure      404      {object}   response.Envelope
// @Failure      409      {object}   response.Envelope
// @Failure      500      {object}   response.Envelope
// @Router       /user/me [delete]
func (h *UserHandler) HandleDeleteMe(ctx *gin.Context) {
	h.deleteUser(ctx, middleware.CurrentUserID(ctx))
}

// HandleListUsers godoc
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Param        username   query     string false "username substring"
// @Param        nickname   query     string false "nickname substring"
// @Param        email      query     string false "email substring"
// @Param        phone      query     string false "phone substring"
// @Success      200      {object}   response.Envelope
// @Failure      500      {object}   response.Envelope
// @Router       /admin/users [get]
func (h *UserHandler) HandleListUsers(ctx *gin.Context) {
	filter := domain.UserFilter{
		Username: ctx.Query("username"),
		Nickname: ctx.Query("nickname"),
		Email:    ctx.Query("email"),
		Phone:    ctx.Query("phone"),
	}
	page := request.ParsePageQuery(ctx)

	users, total, err := h.svc.List(ctx.Request.Context(), filter, page)
	if err != nil {
		err = fmt.Errorf("v1.HandleListUsers -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.Success(ctx, "users listed", response.Paged{
		List:        users,
		Total:       total,
		CurrentPage: page.CurrentPage,
		PageSize:    page.PageSize,
	})
}

// HandleCreateUser godoc
// @Summary      Create a user
// @Tags         admin
// @Produce      json
// @Param        request   body      request.CreateUserRequest true "request body"
// @Success      201      {object}   response.Envelope
// @Failure      400      {object}   response.Envelope
// @Failure      409      {object}   response.Envelope
// @Failure      500      {object}   response.Envelope
// @Router       /admin/users [post]
func (h *UserHandler) HandleCreateUser(ctx *gin.Context) {
	var req request.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, err := h.svc.Create(ctx.Request.Context(), domain.User{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Nickname: req.Nickname,
		Role:     req.Role,
	})
	if err != nil {
		if errors.Is(err, service.ErrUsernameExists) || errors.Is(err, service.ErrUserEmailExists) {
			response.RenderErr(ctx, response.ErrConflict(err))

			return
		}

		err = fmt.Errorf("v1.HandleCreateUser -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.Created(ctx, "user created", user)
}

// HandleGetUser godoc
// @Summary      Get a user by ID
// @Tags         admin
// @Produce      json
// @Param        userID   path       int true "user ID"
// @Success      200      {object}   response.Envelope
// @Failure      404      {object}   response.Envelope
// @Failure      500      {object}   response.Envelope
// @Router       /admin/users/{userID} [get]
func (h *UserHandler) HandleGetUser(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "userID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	h.getUser(ctx, id)
}

// HandleUpdateUser godoc
// @Summary      Update a user by ID
// @Tags         admin
// @Produce      json
// @Param        userID   path       int true "user ID"
// @Param        request   body      request.UpdateUserRequest true "request body"
// @Success      200      {object}   response.Envelope
// @Failure      400      {object}   response.Envelope
// @Failure      404      {object}   response.Envelope
// @Failure      500      {object}   response.Envelope
// @Router       /admin/users/{userID} [put]
func (h *UserHandler) HandleUpdateUser(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "userID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	h.updateUser(ctx, id)
}

// HandleDeleteUser godoc
// @Summary      Delete a user by ID
// @Tags         admin
// @Produce      json
// @Param        userID   path       int true "user ID"
// @Success      200      {object}   response.Envelope
// @Failure      404      {object}   response.Envelope
// @Failure      409      {object}   response.Envelope
// @Failure      500      {object}   response.Envelope
// @Router       /admin/users/{userID} [delete]
func (h *UserHandler) HandleDeleteUser(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "userID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	h.deleteUser(ctx, id)
}

func (h *UserHandler) getUser(ctx *gin.Context, id uint) {
	user, err := h.svc.Get(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.getUser -> h.svc.Get -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.Success(ctx, "user found", user)
}

func (h *UserHandler) updateUser(ctx *gin.Context, id uint) {
	var req request.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, err := h.svc.Get(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.updateUser -> h.svc.Get -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	if req.Nickname != "" {
		user.Nickname = req.Nickname
	}
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}
	if req.Gender != nil {
		user.Gender = *req.Gender
	}
	if req.Introduce != "" {
		user.Introduce = req.Introduce
	}
	// Only admins may change roles; the field is silently ignored otherwise.
	if req.Role != nil && middleware.CurrentUserRole(ctx) == domain.RoleAdmin {
		user.Role = *req.Role
	}

	updated, err := h.svc.Update(ctx.Request.Context(), user, req.Password)
	if err != nil {
		err = fmt.Errorf("v1.updateUser -> h.svc.Update -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.Success(ctx, "user updated", updated)
}

func (h *UserHandler) deleteUser(ctx *gin.Context, id uint) {
	if err := h.svc.Delete(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}
		if errors.Is(err, service.ErrUserOwnsResources) {
			response.RenderErr(ctx, response.ErrConflict(err))

			return
		}

		err = fmt.Errorf("v1.deleteUser -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.Success(ctx, "user deleted", nil)
}

func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	raw := ctx.Param(name)

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errInvalidID
	}

	return uint(id), nil
}
