// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/generator"
)

// newStrengthCmd scores a password. Without an argument the password is
// read from the first line of stdin, which keeps it out of shell history.
func newStrengthCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "strength [password]",
		Short: "Assess the strength of a password",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var password string
			if len(args) == 1 {
				password = args[0]
			} else {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("error reading password from stdin: %w", err)
				}
				password = strings.TrimRight(line, "\r\n")
			}

			strength := generator.AssessStrength(password)

			out := cmd.OutOrStdout()
			if jsonOutput {
				return json.NewEncoder(out).Encode(strength)
			}
			fmt.Fprintf(out, "%s (%d/6)\n", labelColor(strength.Label)("%s", strength.Label), strength.Score)
			for _, f := range strength.Feedback {
				fmt.Fprintf(out, "  %s %s\n", color.CyanString("→"), f)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	return cmd
}

func labelColor(label string) func(format string, a ...any) string {
	switch label {
	case generator.LabelStrong:
		return color.GreenString
	case generator.LabelGood:
		return color.CyanString
	case generator.LabelFair:
		return color.YellowString
	default:
		return color.RedString
	}
}
