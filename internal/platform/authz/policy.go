// Package authz decides, per request path, whether the attached principal may proceed.
package authz

import (
	"log/slog"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	"restaurant_backend/internal/shared/apperror"
	"restaurant_backend/internal/shared/identity"
)

type requirementKind int

const (
	permitAll requirementKind = iota
	authenticated
	anyRole
)

// Requirement is what a rule demands of the request's principal.
type Requirement struct {
	kind  requirementKind
	roles []identity.Role
}

// PermitAll lets every request through, anonymous or not.
func PermitAll() Requirement { return Requirement{kind: permitAll} }

// Authenticated requires any verified principal.
func Authenticated() Requirement { return Requirement{kind: authenticated} }

// AnyRole requires a principal holding one of roles.
func AnyRole(roles ...identity.Role) Requirement {
	return Requirement{kind: anyRole, roles: roles}
}

// Rule binds a path pattern to a Requirement. A pattern ending in "/**" matches
// the prefix itself and everything below it; any other pattern matches exactly.
type Rule struct {
	Pattern string
	Require Requirement
}

func (r Rule) matches(p string) bool {
	if prefix, ok := strings.CutSuffix(r.Pattern, "/**"); ok {
		return prefix == "" || p == prefix || strings.HasPrefix(p, prefix+"/")
	}
	return p == r.Pattern
}

// Policy is an ordered rule list; the first matching rule decides.
type Policy struct {
	rules []Rule
}

// NewPolicy creates a Policy evaluated in the given order.
func NewPolicy(rules ...Rule) *Policy {
	return &Policy{rules: rules}
}

// PublicPatterns are reachable without a token.
var PublicPatterns = []string{
	"/api/auth/**",
	"/swagger-ui/**",
	"/swagger-ui.html/**",
	"/v3/api-docs/**",
	"/h2-console/**",
	"/api/public/**",
	"/api/info",
	"/api/contact",
	"/healthz",
}

// DefaultPolicy is the restaurant back office rule set.
func DefaultPolicy() *Policy {
	rules := make([]Rule, 0, len(PublicPatterns)+4)
	for _, p := range PublicPatterns {
		rules = append(rules, Rule{Pattern: p, Require: PermitAll()})
	}
	rules = append(rules,
		Rule{Pattern: "/api/menus", Require: AnyRole(identity.RoleClient, identity.RoleAdmin)},
		Rule{Pattern: "/api/commandes/**", Require: AnyRole(identity.RoleClient, identity.RoleAdmin)},
		Rule{Pattern: "/api/**", Require: AnyRole(identity.RoleAdmin)},
		Rule{Pattern: "/**", Require: Authenticated()},
	)
	return NewPolicy(rules...)
}

// Check evaluates requestPath for the principal (ok=false means anonymous).
// It returns nil, apperror.ErrUnauthenticated or apperror.ErrAccessDenied.
// Paths that are not in canonical form are denied.
func (p *Policy) Check(requestPath string, principal identity.Principal, ok bool) error {
	if requestPath == "" || path.Clean(requestPath) != requestPath {
		return deny(ok)
	}
	for _, r := range p.rules {
		if !r.matches(requestPath) {
			continue
		}
		switch r.Require.kind {
		case permitAll:
			return nil
		case authenticated:
			if !ok {
				return apperror.ErrUnauthenticated
			}
			return nil
		default:
			if !ok {
				return apperror.ErrUnauthenticated
			}
			if !principal.HasAnyRole(r.Require.roles...) {
				return apperror.ErrAccessDenied
			}
			return nil
		}
	}
	// No rule matched: deny.
	return deny(ok)
}

func deny(authenticated bool) error {
	if !authenticated {
		return apperror.ErrUnauthenticated
	}
	return apperror.ErrAccessDenied
}

// Enforce returns a Gin middleware rejecting requests the policy does not allow.
// It must run after the authentication gate. The matched route template is
// checked when there is one, so the policy sees the path the router dispatches on.
func (p *Policy) Enforce() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := identity.FromContext(c.Request.Context())
		target := c.FullPath()
		if target == "" {
			target = c.Request.URL.Path
		}
		if err := p.Check(target, principal, ok); err != nil {
			slog.Warn("request denied",
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"email", principal.Email,
				"role", principal.Role.String(),
				"reason", err.Error(),
				"remote_addr", c.ClientIP(),
			)
			_ = c.Error(err)
			c.Abort()
			return
		}
		c.Next()
	}
}
