// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package generator

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
)

// Character classes.
const (
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Digits    = "0123456789"
	// Symbols is every printable ASCII punctuation character.
	Symbols = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	// Alphanumeric is the fallback pool when no class is selected.
	Alphanumeric = Uppercase + Lowercase + Digits
)

const (
	// DefaultLength is used when Options.Length is zero.
	DefaultLength = 16

	// MaxLength is the longest password Generate produces.
	MaxLength = 512
)

// Options select the character classes and the length of a generated
// password.
type Options struct {
	Length    int  `json:"length"`
	Uppercase bool `json:"uppercase"`
	Lowercase bool `json:"lowercase"`
	Digits    bool `json:"digits"`
	Symbols   bool `json:"symbols"`
}

// DefaultOptions returns all classes at [DefaultLength].
func DefaultOptions() Options {
	return Options{
		Length:    DefaultLength,
		Uppercase: true,
		Lowercase: true,
		Digits:    true,
		Symbols:   true,
	}
}

// Pool returns the union of the selected classes, or [Alphanumeric] when
// none is selected. It is never empty.
func (o Options) Pool() string {
	var b strings.Builder
	if o.Uppercase {
		b.WriteString(Uppercase)
	}
	if o.Lowercase {
		b.WriteString(Lowercase)
	}
	if o.Digits {
		b.WriteString(Digits)
	}
	if o.Symbols {
		b.WriteString(Symbols)
	}
	if b.Len() == 0 {
		return Alphanumeric
	}
	return b.String()
}

// Generator produces passwords from a random byte source.
// It holds no mutable state and is safe for concurrent use when its source
// is, which crypto/rand.Reader is.
type Generator struct {
	random io.Reader
}

// New returns a Generator reading from crypto/rand.
func New() *Generator {
	return &Generator{random: rand.Reader}
}

// NewWithSource returns a Generator reading from random. It exists for tests;
// production code must use [New].
func NewWithSource(random io.Reader) *Generator {
	return &Generator{random: random}
}

// Generate returns a password of opts.Length characters drawn uniformly from
// opts.Pool(). A zero length selects [DefaultLength].
func (g *Generator) Generate(opts Options) (string, error) {
	length := opts.Length
	if length == 0 {
		length = DefaultLength
	}
	if length < 0 || length > MaxLength {
		return "", fmt.Errorf("%w: %d (allowed 1..%d)", ErrInvalidLength, opts.Length, MaxLength)
	}

	pool := opts.Pool()
	n := len(pool)

	// Bytes at or above limit are rejected so that b % n is uniform.
	limit := 256 - 256%n

	out := make([]byte, 0, length)
	buf := make([]byte, length+length/2)
	for len(out) < length {
		if _, err := io.ReadFull(g.random, buf); err != nil {
			return "", fmt.Errorf("%w: %w", ErrRandomSource, err)
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			out = append(out, pool[int(b)%n])
			if len(out) == length {
				break
			}
		}
	}

	return string(out), nil
}
