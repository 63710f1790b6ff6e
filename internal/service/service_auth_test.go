// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

func newTestAuthService() AuthService {
	return NewAuthService(config.App{
		TokenSignKey:  "auth-test-key",
		TokenIssuer:   "go-pass-vault-test",
		TokenDuration: time.Hour,
	}, logger.Nop())
}

func TestAuthService_IssueAndResolve(t *testing.T) {
	ctx := context.Background()
	auth := newTestAuthService()

	token, err := auth.IssueToken(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", token.PrincipalID)
	assert.NotEmpty(t, token.SignedString)

	principal, err := auth.ResolvePrincipal(ctx, "Bearer "+token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, models.User("alice"), principal)
	assert.True(t, principal.IsAuthenticated())

	principal, err = auth.ResolvePrincipal(ctx, "bearer "+token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "alice", principal.ID)
}

func TestAuthService_ResolvePrincipal(t *testing.T) {
	ctx := context.Background()
	auth := newTestAuthService()

	foreign, err := utils.GenerateJWTToken("go-pass-vault-test", "mallory", time.Hour, "another-key")
	require.NoError(t, err)
	otherIssuer, err := utils.GenerateJWTToken("someone-else", "mallory", time.Hour, "auth-test-key")
	require.NoError(t, err)

	tests := []struct {
		name    string
		header  string
		want    models.Principal
		wantErr error
	}{
		{name: "empty header is anonymous", header: "", want: models.Anonymous()},
		{name: "blank header is anonymous", header: "   ", want: models.Anonymous()},
		{name: "wrong scheme", header: "Basic YWxpY2U6cHc=", wantErr: ErrInvalidToken},
		{name: "garbage token", header: "Bearer not-a-jwt", wantErr: ErrInvalidToken},
		{name: "wrong signing key", header: "Bearer " + foreign.SignedString, wantErr: ErrInvalidToken},
		{name: "wrong issuer", header: "Bearer " + otherIssuer.SignedString, wantErr: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := auth.ResolvePrincipal(ctx, tt.header)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.False(t, got.IsAuthenticated())
		})
	}
}

func TestAuthService_IssueTokenRequiresPrincipal(t *testing.T) {
	_, err := newTestAuthService().IssueToken(context.Background(), " ")
	require.ErrorIs(t, err, ErrInvalidToken)
}
