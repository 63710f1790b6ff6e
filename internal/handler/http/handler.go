// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

type Handler struct {
	services  *service.Services
	buildInfo models.AppBuildInfo

	linkLimiter *multiLimiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Str("version", buildInfo.BuildVersion()).Msg("http handler created")
	return &Handler{
		services:    services,
		buildInfo:   buildInfo,
		linkLimiter: newMultiLimiter(linkConsumeRate, linkConsumeBurst, limiterIdleTTL),
		logger:      logger,
	}
}
