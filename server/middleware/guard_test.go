package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/authkit/credential"
	"github.com/kbukum/authkit/logger"
	"github.com/kbukum/authkit/server/middleware"
)

func newGuardEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.Guard(middleware.RouteTable{}, credential.Config{}, logger.NewDefault("test")))
	engine.NoRoute(func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return engine
}

// validCookie encodes a structurally valid bundle the way gin's SetCookie
// does, with the value query-escaped.
func validCookie(t *testing.T) string {
	t.Helper()
	b := credential.Bundle{
		Token: "aGVhZGVy.cGF5bG9hZA.c2lnbmF0dXJl",
		User:  credential.Identity{UserID: "user-1", Email: "a@b.com"},
	}
	raw, err := b.Encode()
	if err != nil {
		t.Fatal(err)
	}
	return credential.DefaultCookieName + "=" + url.QueryEscape(raw)
}

func serveGuard(t *testing.T, target, cookie string) *httptest.ResponseRecorder {
	t.Helper()
	engine := newGuardEngine(t)
	req := httptest.NewRequest("GET", target, http.NoBody)
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	rr := httptest.NewRecorder()
	engine.ServeHTTP(rr, req)
	return rr
}

func TestGuard_ProtectedWithoutCookie(t *testing.T) {
	rr := serveGuard(t, "/dashboard", "")

	if rr.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rr.Code)
	}
	want := "/login?redirect=%2Fdashboard&reason=auth-required"
	if got := rr.Header().Get("Location"); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestGuard_AdminWithoutCookie(t *testing.T) {
	rr := serveGuard(t, "/admin/users", "")

	if rr.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rr.Code)
	}
	if got := rr.Header().Get("Location"); got != "/login?reason=admin-required" {
		t.Errorf("unexpected location: %s", got)
	}
}

func TestGuard_MalformedCookieClearedOnAnyRoute(t *testing.T) {
	cookie := credential.DefaultCookieName + "=" + url.QueryEscape("not json")
	rr := serveGuard(t, "/about", cookie)

	if rr.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rr.Code)
	}
	if got := rr.Header().Get("Location"); got != "/login" {
		t.Errorf("unexpected location: %s", got)
	}

	setCookie := rr.Header().Get("Set-Cookie")
	if !strings.Contains(setCookie, credential.DefaultCookieName+"=") || !strings.Contains(setCookie, "Max-Age=0") {
		t.Errorf("expected clearing Set-Cookie, got %q", setCookie)
	}
}

func TestGuard_TwoSegmentTokenIsMalformed(t *testing.T) {
	b := credential.Bundle{
		Token: "only.two",
		User:  credential.Identity{UserID: "user-1", Email: "a@b.com"},
	}
	raw, err := b.Encode()
	if err != nil {
		t.Fatal(err)
	}
	cookie := credential.DefaultCookieName + "=" + url.QueryEscape(raw)

	rr := serveGuard(t, "/dashboard", cookie)
	if rr.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rr.Code)
	}
	if got := rr.Header().Get("Location"); got != "/login" {
		t.Errorf("unexpected location: %s", got)
	}
}

func TestGuard_ProtectedWithValidCookie(t *testing.T) {
	rr := serveGuard(t, "/dashboard", validCookie(t))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	headers := map[string]string{
		"X-Frame-Options":        "DENY",
		"X-Content-Type-Options": "nosniff",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	}
	for name, want := range headers {
		if got := rr.Header().Get(name); got != want {
			t.Errorf("%s = %q, want %q", name, got, want)
		}
	}
}

func TestGuard_PublicOnlyWithValidCookie(t *testing.T) {
	cookie := validCookie(t)

	cases := []struct {
		target string
		want   string
	}{
		{"/login", "/dashboard"},
		{"/login?redirect=%2Fsettings", "/settings"},
		{"/login?redirect=https%3A%2F%2Fevil.com", "/dashboard"},
		{"/login?redirect=%2F%2Fevil.com", "/dashboard"},
	}
	for _, tc := range cases {
		rr := serveGuard(t, tc.target, cookie)
		if rr.Code != http.StatusFound {
			t.Fatalf("%s: expected 302, got %d", tc.target, rr.Code)
		}
		if got := rr.Header().Get("Location"); got != tc.want {
			t.Errorf("%s: expected %s, got %s", tc.target, tc.want, got)
		}
	}
}

func TestGuard_PublicOnlyWithoutCookie(t *testing.T) {
	rr := serveGuard(t, "/login", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestGuard_UnclassifiedPassesThrough(t *testing.T) {
	rr := serveGuard(t, "/about", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if rr.Header().Get("X-Frame-Options") != "" {
		t.Error("unclassified routes must not get defensive headers")
	}
}
