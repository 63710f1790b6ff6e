// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the vault.
//
// It exposes route wiring, request handlers and middleware for the REST API.
// Request tracing, access logging, response compression and principal
// resolution are handled here before requests are delegated to the service
// layer. The package owns the mapping of service errors onto status codes;
// link consumption failures are always reported by their public reason.
package http
