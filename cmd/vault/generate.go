// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/generator"
)

type generatedPassword struct {
	Password string             `json:"password"`
	Entropy  float64            `json:"entropy_bits"`
	Strength generator.Strength `json:"strength"`
}

func newGenerateCmd() *cobra.Command {
	var (
		opts       = generator.DefaultOptions()
		count      int
		jsonOutput bool
		noUpper    bool
		noLower    bool
		noDigits   bool
		noSymbols  bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate random passwords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.Uppercase, opts.Lowercase = !noUpper, !noLower
			opts.Digits, opts.Symbols = !noDigits, !noSymbols
			if count < 1 {
				return fmt.Errorf("count must be positive, got %d", count)
			}

			gen := generator.New()
			results := make([]generatedPassword, 0, count)
			for range count {
				password, err := gen.Generate(opts)
				if err != nil {
					return err
				}
				results = append(results, generatedPassword{
					Password: password,
					Entropy:  generator.EstimateEntropy(password, opts),
					Strength: generator.AssessStrength(password),
				})
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}
			for _, r := range results {
				fmt.Fprintln(out, r.Password)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.Length, "length", "l", generator.DefaultLength, "Password length")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of passwords to generate")
	cmd.Flags().BoolVar(&noUpper, "no-upper", false, "Exclude uppercase letters")
	cmd.Flags().BoolVar(&noLower, "no-lower", false, "Exclude lowercase letters")
	cmd.Flags().BoolVar(&noDigits, "no-digits", false, "Exclude digits")
	cmd.Flags().BoolVar(&noSymbols, "no-symbols", false, "Exclude symbols")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format with entropy and strength")
	return cmd
}
