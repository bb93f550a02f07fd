package common

import (
	"context"
	"strings"
)

// RoleAdmin grants access to the admin routes.
const RoleAdmin = "ADMIN"

// Principal is the operator identified by a verified bearer token.
type Principal struct {
	Subject  string `json:"id"`
	Username string `json:"username,omitempty"`
	Role     string `json:"role"`
}

// HasRole compares roles case-insensitively.
func (p Principal) HasRole(role string) bool {
	return role != "" && strings.EqualFold(p.Role, role)
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom returns the principal set by the auth middleware.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
