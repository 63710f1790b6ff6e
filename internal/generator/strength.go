// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package generator

import (
	"math"
	"unicode/utf8"
)

// Class sizes used by the entropy estimate.
const (
	uppercaseSize = 26
	lowercaseSize = 26
	digitsSize    = 10
	symbolsSize   = 32
	fallbackSize  = 62
)

// EstimateEntropy returns log2(charset) * length in bits, where charset sums
// the sizes of the classes declared in opts (62 when none is declared) and
// length counts runes.
//
// The estimate describes the generation settings, not the characters the
// password actually contains.
func EstimateEntropy(password string, opts Options) float64 {
	charset := 0
	if opts.Uppercase {
		charset += uppercaseSize
	}
	if opts.Lowercase {
		charset += lowercaseSize
	}
	if opts.Digits {
		charset += digitsSize
	}
	if opts.Symbols {
		charset += symbolsSize
	}
	if charset == 0 {
		charset = fallbackSize
	}

	return math.Log2(float64(charset)) * float64(utf8.RuneCountInString(password))
}

// Strength labels.
const (
	LabelWeak   = "weak"
	LabelFair   = "fair"
	LabelGood   = "good"
	LabelStrong = "strong"
)

// Feedback messages, one per failed check. The 12-character check has none.
const (
	FeedbackLength    = "Use at least 8 characters"
	FeedbackLowercase = "Add lowercase letters"
	FeedbackUppercase = "Add uppercase letters"
	FeedbackDigits    = "Add numbers"
	FeedbackSymbols   = "Add symbols"
)

// Strength is the outcome of [AssessStrength].
type Strength struct {
	// Score counts the passed checks, 0..6.
	Score    int      `json:"score"`
	Label    string   `json:"label"`
	Feedback []string `json:"feedback"`
}

// AssessStrength scores password with six checks: at least 8 characters,
// at least 12 characters, a lowercase letter, an uppercase letter, a digit,
// and a symbol. Letters and digits are the ASCII ones the generator draws
// from; every other rune, accented and non-Latin letters included, is a
// symbol. Length is counted in runes. The result depends only on password.
func AssessStrength(password string) Strength {
	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case 'a' <= r && r <= 'z':
			hasLower = true
		case 'A' <= r && r <= 'Z':
			hasUpper = true
		case '0' <= r && r <= '9':
			hasDigit = true
		default:
			hasSymbol = true
		}
	}
	length := utf8.RuneCountInString(password)

	s := Strength{Feedback: []string{}}
	check := func(ok bool, feedback string) {
		if ok {
			s.Score++
			return
		}
		if feedback != "" {
			s.Feedback = append(s.Feedback, feedback)
		}
	}

	check(length >= 8, FeedbackLength)
	check(length >= 12, "")
	check(hasLower, FeedbackLowercase)
	check(hasUpper, FeedbackUppercase)
	check(hasDigit, FeedbackDigits)
	check(hasSymbol, FeedbackSymbols)

	s.Label = label(s.Score)
	return s
}

func label(score int) string {
	switch {
	case score <= 2:
		return LabelWeak
	case score <= 3:
		return LabelFair
	case score <= 4:
		return LabelGood
	default:
		return LabelStrong
	}
}
