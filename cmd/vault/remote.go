// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// remoteOptions locate a running server. They are independent of the
// server-side configuration.
type remoteOptions struct {
	address string
	token   string
	timeout time.Duration
}

func (o *remoteOptions) client(cmd *cobra.Command) (adapter.VaultClient, error) {
	log := logger.NewLoggerWithWriter(cmd.ErrOrStderr(), "remote", "warn")
	return adapter.NewHTTPVaultClient(adapter.Config{
		Address: o.address,
		Token:   o.token,
		Timeout: o.timeout,
	}, log)
}

func newRemoteCmd() *cobra.Command {
	opts := &remoteOptions{}

	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Talk to a running vault server",
	}
	cmd.PersistentFlags().StringVarP(&opts.address, "server", "s", "localhost:8080", "Server address (host:port or URL)")
	cmd.PersistentFlags().StringVarP(&opts.token, "token", "t", os.Getenv("VAULT_TOKEN"), "Bearer token (defaults to $VAULT_TOKEN)")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 15*time.Second, "Request timeout")

	cmd.AddCommand(
		newRemoteVersionCmd(opts),
		newRemoteLinksCmd(opts),
		newRemoteStatusCmd(opts),
		newRemoteSubmitCmd(opts),
		newRemoteOpenCmd(opts),
	)
	return cmd
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newRemoteVersionCmd(opts *remoteOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the server's build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := opts.client(cmd)
			if err != nil {
				return err
			}
			info, err := client.Version(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Server version: %s\nServer date: %s\nServer commit: %s\n", info.Version, info.Date, info.Commit)
			return nil
		},
	}
}

func newRemoteLinksCmd(opts *remoteOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "links",
		Short: "List the links owned by the token's principal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := opts.client(cmd)
			if err != nil {
				return err
			}
			links, err := client.ListLinks(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), links)
		},
	}
}

func newRemoteStatusCmd(opts *remoteOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status <link-id>",
		Short: "Show the public status of a link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client(cmd)
			if err != nil {
				return err
			}
			status, err := client.LinkStatus(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), status)
		},
	}
}

func newRemoteSubmitCmd(opts *remoteOptions) *cobra.Command {
	var (
		title      string
		passphrase string
		fields     map[string]string
	)

	cmd := &cobra.Command{
		Use:   "submit <link-id>",
		Short: "Submit an item through a collection link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client(cmd)
			if err != nil {
				return err
			}

			values := make(map[string]any, len(fields))
			for k, v := range fields {
				values[k] = v
			}

			id, err := client.Submit(cmd.Context(), args[0], adapter.SubmitRequest{
				Title:      title,
				Fields:     values,
				Passphrase: passphrase,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Item title")
	cmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "Link passphrase")
	cmd.Flags().StringToStringVarP(&fields, "field", "f", nil, "Payload field as name=value (repeatable)")
	return cmd
}

func newRemoteOpenCmd(opts *remoteOptions) *cobra.Command {
	var passphrase string

	cmd := &cobra.Command{
		Use:   "open <link-id>",
		Short: "Read the fields disclosed by a link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client(cmd)
			if err != nil {
				return err
			}
			disclosed, err := client.Open(cmd.Context(), args[0], passphrase)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), disclosed)
		},
	}

	cmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "Link passphrase")
	return cmd
}
