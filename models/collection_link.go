// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// LinkType distinguishes single-use links from reusable ones.
type LinkType string

const (
	// LinkTypeOneTime links accept exactly one consumption (MaxUses == 1).
	LinkTypeOneTime LinkType = "one-time"

	// LinkTypeMultiUse links accept up to MaxUses consumptions, or an
	// unlimited number when MaxUses is nil.
	LinkTypeMultiUse LinkType = "multi-use"
)

// IsValid reports whether t is a known link type.
func (t LinkType) IsValid() bool {
	return t == LinkTypeOneTime || t == LinkTypeMultiUse
}

// LinkState is the lifecycle state of a [CollectionLink]. Only
// [LinkStateRevoked] is stored; the other states are derived by
// [CollectionLink.State].
type LinkState string

const (
	LinkStateActive    LinkState = "active"
	LinkStateExpired   LinkState = "expired"
	LinkStateExhausted LinkState = "exhausted"
	LinkStateRevoked   LinkState = "revoked"

	// LinkStateLocked is what the public status of a passphrase link reports
	// while it is active, expired or revoked. Those states stay hidden until
	// a passphrase is presented.
	LinkStateLocked LinkState = "locked"
)

// CollectionLink is a bounded-use, time-boxed capability token. With a nil
// ItemID it lets an external party submit a new item of ItemType into the
// owner's vault. With ItemID set it discloses the allow-listed fields of an
// existing item.
type CollectionLink struct {
	ID      string  `json:"id"`
	OwnerID string  `json:"owner_id"`
	ItemID  *string `json:"item_id,omitempty"`

	LinkType LinkType `json:"link_type"`
	ItemType ItemType `json:"item_type"`

	// AllowedFields is the allow-list of payload fields a consumer may
	// populate or read.
	AllowedFields []string `json:"allowed_fields"`

	ExpiresAt   time.Time `json:"expires_at"`
	MaxUses     *int      `json:"max_uses,omitempty"`
	CurrentUses int       `json:"current_uses"`

	// PassphraseHash is an encoded argon2id hash. The plaintext passphrase is
	// never stored.
	PassphraseHash *string `json:"-"`
	RequiresAuth   bool    `json:"requires_auth"`

	// Presentation hints. They carry no security meaning.
	WebsiteURL       string `json:"website_url,omitempty"`
	SiteName         string `json:"site_name,omitempty"`
	SiteTagline      string `json:"site_tagline,omitempty"`
	CustomFaviconURL string `json:"custom_favicon_url,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
}

// TableName returns the name of the database table associated with
// the CollectionLink model.
func (CollectionLink) TableName() string {
	return "collection_links"
}

// State derives the link state at now. Revocation wins over expiry, and
// expiry wins over exhaustion, which is the order consumption checks them in.
func (l CollectionLink) State(now time.Time) LinkState {
	switch {
	case l.RevokedAt != nil:
		return LinkStateRevoked
	case now.After(l.ExpiresAt):
		return LinkStateExpired
	case l.MaxUses != nil && l.CurrentUses >= *l.MaxUses:
		return LinkStateExhausted
	default:
		return LinkStateActive
	}
}

// HasPassphrase reports whether consumption requires a passphrase.
func (l CollectionLink) HasPassphrase() bool {
	return l.PassphraseHash != nil && *l.PassphraseHash != ""
}

// IsDisclosure reports whether the link reads an existing item rather than
// collecting a new one.
func (l CollectionLink) IsDisclosure() bool {
	return l.ItemID != nil
}

// RemainingUses returns how many consumptions are left, or -1 when the link
// is unlimited.
func (l CollectionLink) RemainingUses() int {
	if l.MaxUses == nil {
		return -1
	}
	if left := *l.MaxUses - l.CurrentUses; left > 0 {
		return left
	}
	return 0
}

// NewCollectionLink carries the owner-supplied settings of a new link.
// A zero ExpiresAt selects the configured default lifetime.
type NewCollectionLink struct {
	ItemID           *string
	LinkType         LinkType
	ItemType         ItemType
	AllowedFields    []string
	ExpiresAt        time.Time
	MaxUses          *int
	Passphrase       string
	RequiresAuth     bool
	WebsiteURL       string
	SiteName         string
	SiteTagline      string
	CustomFaviconURL string
}

// LinkStatus is the public, secret-free view of a link.
type LinkStatus struct {
	ID                 string     `json:"id"`
	State              LinkState  `json:"state"`
	ItemType           ItemType   `json:"item_type"`
	AllowedFields      []string   `json:"allowed_fields"`
	ExpiresAt          *time.Time `json:"expires_at,omitempty"`
	RequiresPassphrase bool       `json:"requires_passphrase"`
	RequiresAuth       bool       `json:"requires_auth"`
	WebsiteURL         string     `json:"website_url,omitempty"`
	SiteName           string     `json:"site_name,omitempty"`
	SiteTagline        string     `json:"site_tagline,omitempty"`
	CustomFaviconURL   string     `json:"custom_favicon_url,omitempty"`
}

// LinkSubmission is an external contribution through a collection link.
// Fields outside the link's allow-list are dropped.
type LinkSubmission struct {
	Title      string
	Fields     map[string]any
	Passphrase string
}

// DisclosedItem is the allow-list scoped view of an item opened through a
// disclosure link.
type DisclosedItem struct {
	ItemID   string         `json:"item_id"`
	ItemType ItemType       `json:"item_type"`
	Title    string         `json:"title"`
	Fields   map[string]any `json:"fields"`
}
