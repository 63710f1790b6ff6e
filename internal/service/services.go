// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
)

// Clock returns the current time. Services read time only through it.
type Clock func() time.Time

// IDGenerator mints record identifiers.
type IDGenerator interface {
	Generate() string
}

// Deps carries the collaborators shared by the services.
type Deps struct {
	Storages  *store.Storages
	Cipher    crypto.CipherService
	Hasher    crypto.PassphraseHasher
	Validator *validators.VaultValidator
	Clock     Clock
	IDs       IDGenerator
	Logger    *logger.Logger
}

// now returns the clock reading truncated to microseconds in UTC, the
// precision both SQL backends keep.
func (d Deps) now() time.Time {
	clock := d.Clock
	if clock == nil {
		clock = time.Now
	}
	return clock().UTC().Truncate(time.Microsecond)
}

type Services struct {
	Items   VaultItemService
	Folders FolderService
	Shares  ShareService
	Links   CollectionLinkService
	Auth    AuthService
}

// NewServices wires every service over storages. The default cipher key is
// resolved from cfg once, here.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, log *logger.Logger) (*Services, error) {
	cipher, err := crypto.NewScopedCipherService(crypto.NewKeyRing(cfg.Crypto), crypto.ScopeServer)
	if err != nil {
		return nil, fmt.Errorf("error creating cipher service: %w", err)
	}

	payloads, err := validators.NewPayloadValidator()
	if err != nil {
		return nil, fmt.Errorf("error compiling payload schemas: %w", err)
	}

	deps := Deps{
		Storages:  storages,
		Cipher:    cipher,
		Hasher:    crypto.NewPassphraseHasher(),
		Validator: validators.NewVaultValidator(payloads),
		Clock:     time.Now,
		IDs:       utils.NewUUIDGenerator(),
		Logger:    log,
	}

	return NewServicesWithDeps(deps, *cfg), nil
}

// NewServicesWithDeps wires every service over explicit collaborators.
func NewServicesWithDeps(deps Deps, cfg config.StructuredConfig) *Services {
	items := NewVaultItemValidationService(deps.Validator).Wrap(NewVaultItemService(deps))

	return &Services{
		Items:   items,
		Folders: NewFolderService(deps),
		Shares:  NewShareService(deps),
		Links:   NewCollectionLinkService(deps, cfg.Links),
		Auth:    NewAuthService(cfg.App, deps.Logger),
	}
}
