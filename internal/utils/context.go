// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

// contextKey is a private type for context keys. A dedicated type keeps the
// keys from colliding with string keys set by other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// PrincipalCtxKey is the key the HTTP layer stores the resolved
// [models.Principal] under.
var PrincipalCtxKey = contextKey("principal")

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p models.Principal) context.Context {
	return context.WithValue(ctx, PrincipalCtxKey, p)
}

// GetPrincipalFromContext returns the principal stored in ctx. A missing
// value yields the anonymous principal and ok == false.
func GetPrincipalFromContext(ctx context.Context) (models.Principal, bool) {
	p, ok := ctx.Value(PrincipalCtxKey).(models.Principal)
	if !ok {
		return models.Anonymous(), false
	}
	return p, true
}
