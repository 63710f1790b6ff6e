// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// authService issues and verifies HS256 bearer tokens. The token subject is
// the principal ID; no user records are kept.
type authService struct {
	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match are rejected.
	tokenIssuer string

	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService from the token settings in cfg.
// The returned service is safe for concurrent use.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// IssueToken signs a token whose subject is principalID.
func (a *authService) IssueToken(ctx context.Context, principalID string) (models.Token, error) {
	if strings.TrimSpace(principalID) == "" {
		return models.Token{}, fmt.Errorf("%w: empty principal", ErrInvalidToken)
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, principalID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "authService.IssueToken").Msg("failed to sign token")
		return models.Token{}, fmt.Errorf("error issuing token: %w", err)
	}
	return token, nil
}

// ResolvePrincipal maps an Authorization header to a principal. A blank
// header is anonymous; a malformed, expired or foreign token is
// ErrInvalidToken rather than a silent downgrade to anonymous.
func (a *authService) ResolvePrincipal(ctx context.Context, authorizationHeader string) (models.Principal, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(authorizationHeader) == "" {
		return models.Anonymous(), nil
	}

	raw, err := utils.ParseBearerToken(authorizationHeader)
	if err != nil {
		log.Debug().Err(err).Str("func", "authService.ResolvePrincipal").Msg("malformed authorization header")
		return models.Principal{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	token, err := utils.ValidateAndParseJWTToken(raw, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Str("func", "authService.ResolvePrincipal").Msg("token rejected")
		return models.Principal{}, ErrInvalidToken
	}

	return models.User(token.PrincipalID), nil
}
