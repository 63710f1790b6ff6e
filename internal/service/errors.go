// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	// ErrPermissionDenied is returned when the acting principal lacks the
	// capability an operation needs. Nothing is changed.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrLinkUnusable is the sentinel every [*LinkUnusableError] unwraps to.
	ErrLinkUnusable = errors.New("collection link is unusable")

	ErrItemNotFound   = errors.New("vault item not found")
	ErrFolderNotFound = errors.New("folder not found")
	ErrShareNotFound  = errors.New("share not found")
	ErrLinkNotFound   = errors.New("collection link not found")

	ErrItemTrashed    = errors.New("vault item is trashed")
	ErrItemNotTrashed = errors.New("vault item is not trashed")

	ErrShareRevoked       = errors.New("share is already revoked")
	ErrShareExists        = errors.New("an active share already exists for this principal")
	ErrInvalidShareTarget = errors.New("an item cannot be shared with its owner or the granting principal")

	ErrLinkRevoked   = errors.New("collection link is already revoked")
	ErrWrongLinkKind = errors.New("operation does not match the link kind")

	ErrFolderCycle = errors.New("folder hierarchy would contain a cycle")

	ErrInvalidToken = errors.New("invalid token")
)

// LinkUnusableReason says why a link could not be consumed.
type LinkUnusableReason string

const (
	ReasonExpired            LinkUnusableReason = "expired"
	ReasonExhausted          LinkUnusableReason = "exhausted"
	ReasonRevoked            LinkUnusableReason = "revoked"
	ReasonPassphraseMismatch LinkUnusableReason = "passphrase_mismatch"
	ReasonAuthRequired       LinkUnusableReason = "auth_required"

	// ReasonUnavailable is the public form of expired, revoked and
	// passphrase_mismatch.
	ReasonUnavailable LinkUnusableReason = "unavailable"
)

// LinkUnusableError carries the specific reason a consumption attempt was
// rejected. Transports facing anonymous callers must report
// [LinkUnusableError.PublicReason] instead of Reason.
type LinkUnusableError struct {
	Reason LinkUnusableReason
}

func linkUnusable(reason LinkUnusableReason) error {
	return &LinkUnusableError{Reason: reason}
}

func (e *LinkUnusableError) Error() string {
	return fmt.Sprintf("%s: %s", ErrLinkUnusable, e.Reason)
}

func (e *LinkUnusableError) Unwrap() error {
	return ErrLinkUnusable
}

// PublicReason collapses the reasons that would let a caller guess the
// passphrase into [ReasonUnavailable].
func (e *LinkUnusableError) PublicReason() LinkUnusableReason {
	switch e.Reason {
	case ReasonExpired, ReasonRevoked, ReasonPassphraseMismatch:
		return ReasonUnavailable
	default:
		return e.Reason
	}
}

// LinkUnusableReasonOf extracts the reason from err, or "" when err is not
// a [*LinkUnusableError].
func LinkUnusableReasonOf(err error) LinkUnusableReason {
	var lue *LinkUnusableError
	if errors.As(err, &lue) {
		return lue.Reason
	}
	return ""
}
