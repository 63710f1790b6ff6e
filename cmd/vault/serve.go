// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/handler"
	"github.com/MKhiriev/go-pass-vault/internal/server"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

func (c *cli) newServeCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, log, err := c.load(cmd, "vault")
			if err != nil {
				return err
			}
			log.Info().Str("version", c.buildInfo.BuildVersion()).Str("commit", c.buildInfo.BuildCommit()).Msg("starting vault server")

			storages, err := store.NewStorages(ctx, cfg.Storage, migrate, log)
			if err != nil {
				return fmt.Errorf("error creating storages: %w", err)
			}
			defer storages.Close()

			services, err := service.NewServices(storages, cfg, log)
			if err != nil {
				return fmt.Errorf("error creating services: %w", err)
			}

			handlers, err := handler.NewHandlers(services, c.buildInfo, cfg.Server, log)
			if err != nil {
				return fmt.Errorf("error creating handlers: %w", err)
			}

			srv, err := server.NewServer(handlers, cfg.Server, log)
			if err != nil {
				return fmt.Errorf("error creating server: %w", err)
			}
			return srv.RunServer(ctx)
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", true, "Apply pending migrations before serving")
	return cmd
}
