package v1

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sportsmate/sportsmate-api/internal/api/handler/v1/request"
	"github.com/sportsmate/sportsmate-api/internal/api/handler/v1/response"
	"github.com/sportsmate/sportsmate-api/internal/config"
	"github.com/sportsmate/sportsmate-api/internal/domain"
	"github.com/sportsmate/sportsmate-api/internal/pkg/jwthelper"
	"github.com/sportsmate/sportsmate-api/internal/service"
)

const (
	userTokenTTL  = 24 * time.Hour
	adminTokenTTL = 7 * 24 * time.Hour
)

type AuthService interface {
	Register(ctx context.Context, user domain.User) (domain.User, error)
	Login(ctx context.Context, login, password string) (domain.User, error)
	AdminLogin(ctx context.Context, login, password string) (domain.User, error)
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleRegister godoc
// @Summary      Register a new user
// @Tags         auth
// @Produce      json
// @Param        request   body      request.RegisterRequest true "request body"
// @Success      201      {object}   response.Envelope
// @Failure      400      {object}   response.Envelope
// @Failure      409      {object}   response.Envelope
// @Failure      500      {object}   response.Envelope
// @Router       /auth/register [post]
func (h *AuthHandler) HandleRegister(ctx *gin.Context) {
	var req request.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, err := h.svc.Register(ctx.Request.Context(), domain.User{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrUsernameExists) || errors.Is(err, service.ErrUserEmailExists) {
			response.RenderErr(ctx, response.ErrConflict(err))

			return
		}

		err = fmt.Errorf("v1.HandleRegister -> h.svc.Register -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.Created(ctx, "registered", user)
}

// HandleLogin godoc
// @Summary      Login with email or username
// @Tags         auth
// @Produce      json
// @Param        request   body      request.LoginRequest true "request body"
// @Success      200      {object}   response.Envelope
// @Failure      401      {object}   response.Envelope
// @Failure      500      {object}   response.Envelope
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	h.login(ctx, h.svc.Login, userTokenTTL)
}

// HandleAdminLogin godoc
// @Summary      Login to the admin surface
// @Tags         auth
// @Produce      json
// @Param        request   body      request.LoginRequest true "request body"
// @Success      200      {object}   response.Envelope
// @Failure      401      {object}   response.Envelope
// @Failure      403      {object}   response.Envelope
// @Failure      500      {object}   response.Envelope
// @Router       /admin/auth/login [post]
func (h *AuthHandler) HandleAdminLogin(ctx *gin.Context) {
	h.login(ctx, h.svc.AdminLogin, adminTokenTTL)
}

func (h *AuthHandler) login(ctx *gin.Context, fn func(ctx context.Context, login, password string) (domain.User, error), ttl time.Duration) {
	var req request.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, err := fn(ctx.Request.Context(), req.Login, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrWrongPassword):
			response.RenderErr(ctx, response.ErrUnauthorized(err))
		case errors.Is(err, service.ErrNotAdmin):
			response.RenderErr(ctx, response.ErrForbidden(err))
		default:
			err = fmt.Errorf("v1.login -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), user.ID, user.Role, ttl)
	if err != nil {
		err = fmt.Errorf("v1.login -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.Success(ctx, "logged in", response.LoginResponse{
		Token: token,
		User:  user,
	})
}
