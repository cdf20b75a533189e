package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/authkit/authctx"
	apperrors "github.com/kbukum/authkit/errors"
	"github.com/kbukum/authkit/logger"
	"github.com/kbukum/authkit/token"
	"github.com/kbukum/authkit/user"
)

const bearerPrefix = "Bearer "

// RequireAuth returns the bearer authenticator. It verifies the token
// cryptographically, re-fetches the user so deleted accounts lose access
// immediately, cross-checks the email claim against the record, and
// attaches the principal to the request context.
func RequireAuth(codec *token.Codec, repo user.Repository, log *logger.Logger) gin.HandlerFunc {
	log = log.WithComponent("authenticator")

	return func(c *gin.Context) {
		raw := c.GetHeader("Authorization")
		if raw == "" {
			abortWithError(c, apperrors.Unauthorized("Authorization header required"))
			return
		}

		// Bare tokens without the Bearer prefix are accepted for
		// compatibility with older clients.
		tokenString := strings.TrimPrefix(raw, bearerPrefix)
		if strings.TrimSpace(tokenString) == "" {
			abortWithError(c, apperrors.Unauthorized("Invalid authorization header format"))
			return
		}

		claims, err := codec.Verify(tokenString)
		if err != nil {
			abortWithError(c, verificationError(err))
			return
		}

		u, err := repo.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			log.WithError(err).Error("user re-fetch failed", logger.Fields(logger.FieldUserID, claims.UserID))
			abortWithError(c, apperrors.Internal("Authentication failed", err))
			return
		}
		if u == nil {
			abortWithError(c, apperrors.Unauthorized("User not found"))
			return
		}

		// Defense in depth: the token's email claim must match the record.
		if u.Email != claims.Email {
			log.Warn("token email does not match user record", logger.Fields(logger.FieldUserID, claims.UserID))
			abortWithError(c, apperrors.Unauthorized("Token payload mismatch"))
			return
		}

		principal := &authctx.Principal{UserID: u.ID.String(), User: u.Sanitize()}
		c.Request = c.Request.WithContext(authctx.WithPrincipal(c.Request.Context(), principal))
		c.Set("user_id", principal.UserID)
		c.Next()
	}
}

// verificationError maps codec failures onto the client-facing taxonomy.
// Expired and invalid stay distinguishable; everything else collapses into
// a generic failure so internals never leak.
func verificationError(err error) *apperrors.AppError {
	switch {
	case errors.Is(err, token.ErrTokenExpired):
		return apperrors.Unauthorized("Token expired")
	case errors.Is(err, token.ErrTokenInvalid):
		return apperrors.Unauthorized("Invalid token")
	default:
		return apperrors.Unauthorized("Authentication failed")
	}
}

func abortWithError(c *gin.Context, appErr *apperrors.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse())
}
