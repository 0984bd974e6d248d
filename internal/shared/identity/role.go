// Package identity defines the authenticated principal shared by the token service,
// the authorization policy and the handlers.
package identity

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
)

// authorityPrefix is prepended to a role only when it is compared as an authority label.
const authorityPrefix = "ROLE_"

// Role is the closed set of roles an identity can hold.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleClient Role = "CLIENT"
)

// ErrUnknownRole is returned by ParseRole for anything outside {ADMIN, CLIENT}.
var ErrUnknownRole = errors.New("unknown role")

// ParseRole accepts "ADMIN"/"CLIENT" in any case, with or without the "ROLE_" prefix.
func ParseRole(s string) (Role, error) {
	v := strings.ToUpper(strings.TrimSpace(s))
	v = strings.TrimPrefix(v, authorityPrefix)
	switch Role(v) {
	case RoleAdmin, RoleClient:
		return Role(v), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

// Valid reports whether r is one of the enumerated roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleClient
}

// Authority returns the prefixed label ("ROLE_ADMIN") used at the authorization boundary.
func (r Role) Authority() string {
	return authorityPrefix + string(r)
}

func (r Role) String() string {
	return string(r)
}

// Value stores the role as its bare name.
func (r Role) Value() (driver.Value, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, string(r))
	}
	return string(r), nil
}

// Scan reads a role column. Legacy rows stored with the "ROLE_" prefix are accepted.
func (r *Role) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("identity: cannot scan %T into Role", src)
	}
	parsed, err := ParseRole(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
