// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

func TestNewServices(t *testing.T) {
	storages := store.NewMemoryStorages(store.NewMemoryStore())

	t.Run("wires every service", func(t *testing.T) {
		cfg := &config.StructuredConfig{
			Crypto: config.Crypto{ServerKey: "server-key"},
			App:    config.App{TokenSignKey: "k", TokenIssuer: "i", TokenDuration: time.Hour},
			Links:  testLinkTTL,
		}

		services, err := NewServices(storages, cfg, logger.Nop())
		require.NoError(t, err)
		assert.NotNil(t, services.Items)
		assert.NotNil(t, services.Folders)
		assert.NotNil(t, services.Shares)
		assert.NotNil(t, services.Links)
		assert.NotNil(t, services.Auth)

		f := newFixture(t)
		item, err := services.Items.Create(f.ctx, alice, models.NewItem{
			Title:   "wired",
			Payload: models.NotePayload{Content: "hello"},
		})
		require.NoError(t, err)

		revealed, err := services.Items.Reveal(f.ctx, alice, item.ID)
		require.NoError(t, err)
		assert.Equal(t, models.NotePayload{Content: "hello"}, revealed.Payload)
	})

	t.Run("no cipher key", func(t *testing.T) {
		_, err := NewServices(storages, &config.StructuredConfig{}, logger.Nop())
		require.ErrorIs(t, err, crypto.ErrNoDefaultKey)
	})
}

func TestDeps_Now(t *testing.T) {
	d := Deps{Clock: func() time.Time {
		return time.Date(2026, 1, 2, 3, 4, 5, 123456789, time.FixedZone("UTC+3", 3*60*60))
	}}

	now := d.now()
	assert.Equal(t, time.UTC, now.Location())
	assert.Equal(t, time.Date(2026, 1, 2, 0, 4, 5, 123456000, time.UTC), now)

	assert.WithinDuration(t, time.Now(), Deps{}.now(), time.Minute)
}
