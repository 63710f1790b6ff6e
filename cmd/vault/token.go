// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/service"
)

// newTokenCmd issues a bearer token for a principal. Identity is owned by
// whoever runs this command; the server keeps no user records.
func (c *cli) newTokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token <principal-id>",
		Short: "Issue a bearer token for a principal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := c.load(cmd, "token")
			if err != nil {
				return err
			}

			token, err := service.NewAuthService(cfg.App, log).IssueToken(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("error issuing token: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), token.SignedString)
			return nil
		},
	}
}
