// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

func (c *cli) newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations to the configured database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := c.load(cmd, "migrate")
			if err != nil {
				return err
			}

			if cfg.Storage.Driver == config.DriverMemory {
				fmt.Fprintln(cmd.OutOrStdout(), "memory storage has no schema; nothing to migrate")
				return nil
			}

			storages, err := store.NewStorages(cmd.Context(), cfg.Storage, true, log)
			if err != nil {
				return fmt.Errorf("error migrating %s storage: %w", cfg.Storage.Driver, err)
			}
			defer storages.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "%s schema is up to date\n", cfg.Storage.Driver)
			return nil
		},
	}
}
