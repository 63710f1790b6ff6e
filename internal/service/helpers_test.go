// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

var (
	alice = models.User("alice")
	bob   = models.User("bob")
	carol = models.User("carol")
	anon  = models.Anonymous()
)

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type sequentialIDs struct {
	mu sync.Mutex
	n  int
}

func (g *sequentialIDs) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("id-%04d", g.n)
}

// fastArgon2 keeps passphrase tests quick.
var fastArgon2 = crypto.Argon2Params{Time: 1, Memory: 64, Threads: 1, KeyLen: 16, SaltLen: 8}

var testLinkTTL = config.Links{DefaultTTL: 24 * time.Hour, MaxTTL: 7 * 24 * time.Hour}

type fixture struct {
	ctx      context.Context
	clock    *fakeClock
	memory   *store.MemoryStore
	deps     Deps
	services *Services
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	clock := &fakeClock{now: baseTime}
	memory := store.NewMemoryStore()

	deps := Deps{
		Storages:  store.NewMemoryStorages(memory),
		Cipher:    crypto.NewCipherService(crypto.Key("service-test-key")),
		Hasher:    crypto.NewPassphraseHasherWithParams(fastArgon2),
		Validator: validators.NewVaultValidator(validators.MustNewPayloadValidator()),
		Clock:     clock.Now,
		IDs:       &sequentialIDs{},
		Logger:    logger.Nop(),
	}

	cfg := config.StructuredConfig{
		App: config.App{
			TokenSignKey:  "test-sign-key",
			TokenIssuer:   "go-pass-vault-test",
			TokenDuration: time.Hour,
		},
		Links: testLinkTTL,
	}

	return &fixture{
		ctx:      logger.Nop().WithContext(context.Background()),
		clock:    clock,
		memory:   memory,
		deps:     deps,
		services: NewServicesWithDeps(deps, cfg),
	}
}

func (f *fixture) createCredential(t *testing.T, owner models.Principal, title, password string) models.VaultItem {
	t.Helper()

	item, err := f.services.Items.Create(f.ctx, owner, models.NewItem{
		Title:   title,
		Payload: models.CredentialPayload{Username: "user", Password: password, Website: "https://example.com"},
	})
	require.NoError(t, err)
	return item
}

func (f *fixture) grant(t *testing.T, owner models.Principal, itemID string, to models.Principal, permission models.Permission) models.SharedItem {
	t.Helper()

	share, err := f.services.Shares.Grant(f.ctx, owner, itemID, to.ID, permission)
	require.NoError(t, err)
	return share
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }
