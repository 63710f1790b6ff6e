// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// Permission is an ordered capability level granted on a single item.
// Every level includes all capabilities of the lower ones:
// view < reveal < edit < owner.
type Permission int

const (
	// PermissionNone is the zero value and grants nothing.
	PermissionNone Permission = iota

	// PermissionView allows reading item metadata.
	PermissionView

	// PermissionReveal additionally allows decrypting the payload.
	PermissionReveal

	// PermissionEdit additionally allows changing the item.
	PermissionEdit

	// PermissionOwner additionally allows trashing the item and managing
	// its grants and links.
	PermissionOwner
)

var permissionNames = map[Permission]string{
	PermissionNone:   "none",
	PermissionView:   "view",
	PermissionReveal: "reveal",
	PermissionEdit:   "edit",
	PermissionOwner:  "owner",
}

// Allows reports whether p satisfies an operation that needs required.
func (p Permission) Allows(required Permission) bool {
	return required != PermissionNone && p >= required
}

// IsValid reports whether p is one of the grantable levels.
func (p Permission) IsValid() bool {
	return p >= PermissionView && p <= PermissionOwner
}

// String implements [fmt.Stringer].
func (p Permission) String() string {
	if name, ok := permissionNames[p]; ok {
		return name
	}
	return fmt.Sprintf("permission(%d)", int(p))
}

// ParsePermission converts a level name such as "reveal" into a Permission.
func ParsePermission(s string) (Permission, error) {
	for p, name := range permissionNames {
		if name == s && p != PermissionNone {
			return p, nil
		}
	}
	return PermissionNone, fmt.Errorf("unknown permission %q", s)
}

// SharedItem grants SharedWithID a permission on ItemID, issued by OwnerID.
// Grants are never deleted; a non-nil RevokedAt permanently invalidates one.
type SharedItem struct {
	ID           string     `json:"id"`
	ItemID       string     `json:"item_id"`
	OwnerID      string     `json:"owner_id"`
	SharedWithID string     `json:"shared_with_id"`
	Permission   Permission `json:"permission"`
	CreatedAt    time.Time  `json:"created_at"`
	RevokedAt    *time.Time `json:"revoked_at,omitempty"`
}

// IsActive reports whether the grant has not been revoked.
func (s SharedItem) IsActive() bool {
	return s.RevokedAt == nil
}

// TableName returns the name of the database table associated with
// the SharedItem model.
func (SharedItem) TableName() string {
	return "shared_items"
}
