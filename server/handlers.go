package server

import (
	"github.com/gin-gonic/gin"

	"github.com/kbukum/authkit/auth"
	"github.com/kbukum/authkit/authctx"
	"github.com/kbukum/authkit/credential"
	apperrors "github.com/kbukum/authkit/errors"
	"github.com/kbukum/authkit/logger"
	"github.com/kbukum/authkit/token"
)

// AuthHandler exposes the auth service over HTTP.
type AuthHandler struct {
	svc       *auth.Service
	codec     *token.Codec
	cookieCfg credential.Config
	log       *logger.Logger
}

// NewAuthHandler creates the handler set for /api/auth.
func NewAuthHandler(svc *auth.Service, codec *token.Codec, cookieCfg credential.Config, log *logger.Logger) *AuthHandler {
	cookieCfg.ApplyDefaults()
	return &AuthHandler{
		svc:       svc,
		codec:     codec,
		cookieCfg: cookieCfg,
		log:       log.WithComponent("auth_handler"),
	}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var in auth.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		RespondWithError(c, apperrors.InvalidInput("body", "request body must be valid JSON"))
		return
	}

	created, err := h.svc.Register(c.Request.Context(), in)
	if err != nil {
		RespondWithError(c, err)
		return
	}
	RespondCreated(c, created)
}

// Login handles POST /api/auth/login. On success the credential bundle is
// written to the cookie so the edge guard can see it on later requests.
func (h *AuthHandler) Login(c *gin.Context) {
	var creds auth.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		RespondWithError(c, apperrors.InvalidInput("body", "request body must be valid JSON"))
		return
	}

	result, err := h.svc.Login(c.Request.Context(), creds)
	if err != nil {
		RespondWithError(c, err)
		return
	}

	store := credential.NewStore(credential.NewCookieStorage(c, h.cookieCfg), h.codec)
	identity := credential.Identity{UserID: result.User.ID, Email: result.User.Email}
	if err := store.Save(result.Token, identity); err != nil {
		h.log.WithError(err).Error("credential save failed", logger.Fields(logger.FieldUserID, result.User.ID))
		RespondWithError(c, apperrors.Internal("Login failed. Please try again.", err))
		return
	}

	RespondOK(c, result)
}

// Logout handles POST /api/auth/logout. Logout is client-side only: the
// credential cookie is cleared, the token itself stays valid until expiry.
func (h *AuthHandler) Logout(c *gin.Context) {
	store := credential.NewStore(credential.NewCookieStorage(c, h.cookieCfg), h.codec)
	store.Clear()
	RespondNoContent(c)
}

// Me handles GET /api/auth/me. Runs behind the bearer authenticator.
func (h *AuthHandler) Me(c *gin.Context) {
	principal, ok := authctx.FromContext(c.Request.Context())
	if !ok {
		RespondWithError(c, apperrors.Unauthorized(""))
		return
	}
	RespondOK(c, principal.User)
}
