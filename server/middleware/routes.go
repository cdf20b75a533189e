package middleware

import "strings"

// RouteClass is the protection category assigned to a request path.
type RouteClass int

const (
	// ClassUnclassified paths pass through the guard unmodified.
	ClassUnclassified RouteClass = iota
	// ClassProtected paths require a credential.
	ClassProtected
	// ClassPublicOnly paths bounce already-authenticated clients away.
	ClassPublicOnly
	// ClassAdmin paths require a credential and an admin account.
	ClassAdmin
)

// String returns the class name for logs.
func (c RouteClass) String() string {
	switch c {
	case ClassProtected:
		return "protected"
	case ClassPublicOnly:
		return "public-only"
	case ClassAdmin:
		return "admin"
	default:
		return "unclassified"
	}
}

// RouteTable holds the fixed route prefix lists and the guard's redirect
// targets.
type RouteTable struct {
	// Protected prefixes require a credential (default: /dashboard, /account, /settings).
	Protected []string `mapstructure:"protected"`
	// PublicOnly prefixes are for unauthenticated clients (default: /login, /register).
	PublicOnly []string `mapstructure:"public_only"`
	// Admin prefixes require an admin credential (default: /admin).
	Admin []string `mapstructure:"admin"`
	// LoginPath is where unauthenticated clients are sent (default: /login).
	LoginPath string `mapstructure:"login_path"`
	// LandingPath is the default authenticated landing page (default: /dashboard).
	LandingPath string `mapstructure:"landing_path"`
}

// ApplyDefaults sets default values for unset fields.
func (t *RouteTable) ApplyDefaults() {
	if t.Protected == nil {
		t.Protected = []string{"/dashboard", "/account", "/settings"}
	}
	if t.PublicOnly == nil {
		t.PublicOnly = []string{"/login", "/register"}
	}
	if t.Admin == nil {
		t.Admin = []string{"/admin"}
	}
	if t.LoginPath == "" {
		t.LoginPath = "/login"
	}
	if t.LandingPath == "" {
		t.LandingPath = "/dashboard"
	}
}

// Classify assigns a route class by prefix match. Admin wins over protected
// when prefixes overlap.
func (t *RouteTable) Classify(path string) RouteClass {
	if matchesPrefix(path, t.Admin) {
		return ClassAdmin
	}
	if matchesPrefix(path, t.Protected) {
		return ClassProtected
	}
	if matchesPrefix(path, t.PublicOnly) {
		return ClassPublicOnly
	}
	return ClassUnclassified
}

func matchesPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
