// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Principal is the identity an operation is performed on behalf of.
// An anonymous principal has an empty ID.
type Principal struct {
	ID        string `json:"id"`
	Anonymous bool   `json:"anonymous"`
}

// Anonymous returns the principal of an unauthenticated caller.
func Anonymous() Principal {
	return Principal{Anonymous: true}
}

// User returns the authenticated principal identified by id.
func User(id string) Principal {
	return Principal{ID: id}
}

// IsAuthenticated reports whether the principal carries a stable identity.
func (p Principal) IsAuthenticated() bool {
	return !p.Anonymous && p.ID != ""
}

// Token is a signed bearer token issued for a principal.
type Token struct {
	SignedString string `json:"token"`
	PrincipalID  string `json:"principal_id"`
}
