// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

func TestNewHandlers(t *testing.T) {
	buildInfo := models.NewAppBuildInfo("dev", "", "")

	t.Run("http address configured", func(t *testing.T) {
		h, err := NewHandlers(&service.Services{}, buildInfo, config.Server{HTTPAddress: ":8080"}, logger.Nop())

		require.NoError(t, err)
		assert.NotNil(t, h.HTTP)
	})

	t.Run("no address", func(t *testing.T) {
		h, err := NewHandlers(&service.Services{}, buildInfo, config.Server{}, logger.Nop())

		assert.ErrorIs(t, err, errNoHandlersAreCreated)
		assert.Nil(t, h)
	})
}
