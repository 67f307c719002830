package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sportsmate/sportsmate-api/internal/api/handler/v1/response"
	"github.com/sportsmate/sportsmate-api/internal/domain"
	"github.com/sportsmate/sportsmate-api/internal/pkg/jwthelper"
)

const (
	ContextKeyUserID   = "userID"
	ContextKeyUserRole = "userRole"
)

var (
	errMissingToken = errors.New("authorization token is missing")
	errInvalidToken = errors.New("authorization token is invalid")
	errAdminOnly    = errors.New("admin privileges required")
)

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

// VerifyJWT rejects requests without a valid bearer token and stores the
// caller's identity in the gin context.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingToken))

			return
		}

		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			response.RenderErr(ctx, response.ErrUnauthorized(errInvalidToken))

			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, tokenString)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(errInvalidToken))

			return
		}

		ctx.Set(ContextKeyUserID, claims.UserID)
		ctx.Set(ContextKeyUserRole, claims.Role)

		ctx.Next()
	}
}

// RequireAdmin gates a route group to admin tokens. It must run after
// VerifyJWT.
func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		role, ok := ctx.Get(ContextKeyUserRole)
		if !ok || role.(int) != domain.RoleAdmin {
			response.RenderErr(ctx, response.ErrForbidden(errAdminOnly))

			return
		}

		ctx.Next()
	}
}

// CurrentUserID returns the authenticated user's ID, or 0 when the request
// did not pass VerifyJWT.
func CurrentUserID(ctx *gin.Context) uint {
	id, ok := ctx.Get(ContextKeyUserID)
	if !ok {
		return 0
	}

	userID, ok := id.(uint)
	if !ok {
		return 0
	}

	return userID
}

// CurrentUserRole returns the authenticated user's role, defaulting to the
// member role.
func CurrentUserRole(ctx *gin.Context) int {
	role, ok := ctx.Get(ContextKeyUserRole)
	if !ok {
		return domain.RoleMember
	}

	r, ok := role.(int)
	if !ok {
		return domain.RoleMember
	}

	return r
}
