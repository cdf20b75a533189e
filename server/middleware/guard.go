package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/authkit/credential"
	"github.com/kbukum/authkit/logger"
)

// Redirect reasons appended to the login URL.
const (
	reasonAuthRequired  = "auth-required"
	reasonAdminRequired = "admin-required"
)

// Guard returns the edge route guard. It runs without the signing secret:
// the only checks are structural (parseable bundle JSON, required fields,
// three-segment token). Cryptographic verification belongs to RequireAuth.
func Guard(table RouteTable, cookieCfg credential.Config, log *logger.Logger) gin.HandlerFunc {
	table.ApplyDefaults()
	cookieCfg.ApplyDefaults()
	log = log.WithComponent("route_guard")

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		class := table.Classify(path)

		storage := credential.NewCookieStorage(c, cookieCfg)
		raw, present, err := storage.Read()

		valid := false
		if present && err == nil {
			if b, decodeErr := credential.DecodeBundle(raw); decodeErr == nil && b.TokenWellFormed() {
				valid = true
			}
		}

		// A present but broken cookie is cleared on every route class.
		if present && !valid {
			_ = storage.Clear()
			log.Debug("cleared malformed credential cookie", logger.Fields(logger.FieldPath, path))
			redirect(c, table.LoginPath)
			return
		}

		switch class {
		case ClassProtected:
			if !valid {
				redirect(c, table.LoginPath+"?redirect="+url.QueryEscape(path)+"&reason="+reasonAuthRequired)
				return
			}
			attachSecurityHeaders(c)
			c.Next()

		case ClassAdmin:
			if !valid {
				redirect(c, table.LoginPath+"?reason="+reasonAdminRequired)
				return
			}
			attachSecurityHeaders(c)
			c.Next()

		case ClassPublicOnly:
			if valid {
				redirect(c, authenticatedTarget(c, table.LandingPath))
				return
			}
			c.Next()

		default:
			c.Next()
		}
	}
}

// authenticatedTarget resolves where to bounce an authenticated client that
// hit a public-only page. The redirect query param is honored only when it
// is path-relative, so the guard cannot be used as an open redirector.
func authenticatedTarget(c *gin.Context, landing string) string {
	target := c.Query("redirect")
	if pathRelative(target) {
		return target
	}
	return landing
}

// pathRelative reports whether target is a same-site path. Scheme-relative
// URLs ("//evil.com") and backslash variants are rejected.
func pathRelative(target string) bool {
	if target == "" || !strings.HasPrefix(target, "/") {
		return false
	}
	if strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return false
	}
	return true
}

func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
	c.Abort()
}

func attachSecurityHeaders(c *gin.Context) {
	c.Header("X-Frame-Options", "DENY")
	c.Header("X-Content-Type-Options", "nosniff")
	c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
}
