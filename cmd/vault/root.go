// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// cli holds what the subcommands share: the bound configuration flags and
// the build metadata.
type cli struct {
	flags     *config.Flags
	buildInfo models.AppBuildInfo
}

func newRootCmd(buildInfo models.AppBuildInfo) *cobra.Command {
	c := &cli{buildInfo: buildInfo}

	root := &cobra.Command{
		Use:   "vault",
		Short: "go-pass-vault - an encrypted vault for credentials and other secrets.",
		Long: `go-pass-vault stores typed secrets encrypted at rest, shares them with
per-item permissions, and collects or discloses them through bounded,
time-boxed links.

Configuration is read from defaults, a JSON file (--config or CONFIG),
environment variables and the flags below, later sources winning.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	c.flags = config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		c.newServeCmd(),
		c.newMigrateCmd(),
		c.newTokenCmd(),
		newGenerateCmd(),
		newStrengthCmd(),
		c.newVersionCmd(),
		newRemoteCmd(),
	)
	return root
}

// load merges the configuration and builds the process logger. Logs go to
// the command's stderr so stdout carries only results.
func (c *cli) load(cmd *cobra.Command, role string) (*config.StructuredConfig, *logger.Logger, error) {
	cfg, err := config.GetStructuredConfig(c.flags)
	if err != nil {
		return nil, nil, fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewLoggerWithWriter(cmd.ErrOrStderr(), role, cfg.App.LogLevel)
	log.Debug().Str("driver", string(cfg.Storage.Driver)).Str("address", cfg.Server.HTTPAddress).Msg("configs loaded")
	return cfg, log, nil
}
