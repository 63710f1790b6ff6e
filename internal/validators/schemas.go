// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "github.com/MKhiriev/go-pass-vault/models"

// schemaBaseURL prefixes the resource URL of every payload schema.
const schemaBaseURL = "https://go-pass-vault.dev/schemas/"

// Required strings must contain at least one non-whitespace character, so an
// empty or blank value is rejected instead of being stored.
const defsJSON = `
    "$defs": {
      "required_string": { "type": "string", "pattern": "\\S" },
      "custom_fields": {
        "type": "array",
        "items": {
          "type": "object",
          "required": ["name"],
          "properties": {
            "name":   { "$ref": "#/$defs/required_string" },
            "value":  { "type": "string" },
            "hidden": { "type": "boolean" }
          },
          "additionalProperties": false
        }
      }
    }`

// payloadSchemas holds one JSON Schema (draft 2020-12) per item type.
var payloadSchemas = map[models.ItemType]string{
	models.ItemTypeCredential: `{
    "$schema": "https://json-schema.org/draft/2020-12/schema",
    "type": "object",
    "required": ["password"],
    "properties": {
      "username":     { "type": "string" },
      "email":        { "type": "string" },
      "password":     { "$ref": "#/$defs/required_string" },
      "website":      { "type": "string" },
      "websites":     { "type": "array", "items": { "type": "string" } },
      "totp":         { "type": "string" },
      "notes":        { "type": "string" },
      "customFields": { "$ref": "#/$defs/custom_fields" }
    },
    "additionalProperties": false,` + defsJSON + `
  }`,

	models.ItemTypeCard: `{
    "$schema": "https://json-schema.org/draft/2020-12/schema",
    "type": "object",
    "required": ["cardholderName", "cardNumber", "expirationDate", "cvv"],
    "properties": {
      "cardholderName": { "$ref": "#/$defs/required_string" },
      "cardNumber":     { "$ref": "#/$defs/required_string" },
      "expirationDate": { "$ref": "#/$defs/required_string" },
      "cvv":            { "$ref": "#/$defs/required_string" },
      "pin":            { "type": "string" },
      "zip":            { "type": "string" },
      "notes":          { "type": "string" },
      "customFields":   { "$ref": "#/$defs/custom_fields" }
    },
    "additionalProperties": false,` + defsJSON + `
  }`,

	models.ItemTypeNote: `{
    "$schema": "https://json-schema.org/draft/2020-12/schema",
    "type": "object",
    "required": ["content"],
    "properties": {
      "content": { "$ref": "#/$defs/required_string" }
    },
    "additionalProperties": false,` + defsJSON + `
  }`,

	models.ItemTypeContact: `{
    "$schema": "https://json-schema.org/draft/2020-12/schema",
    "type": "object",
    "required": ["fullName"],
    "properties": {
      "fullName":     { "$ref": "#/$defs/required_string" },
      "email":        { "type": "string" },
      "phone":        { "type": "string" },
      "address":      { "type": "string" },
      "company":      { "type": "string" },
      "birthday":     { "type": "string" },
      "notes":        { "type": "string" },
      "customFields": { "$ref": "#/$defs/custom_fields" }
    },
    "additionalProperties": false,` + defsJSON + `
  }`,

	models.ItemTypeDocument: `{
    "$schema": "https://json-schema.org/draft/2020-12/schema",
    "type": "object",
    "required": ["filename", "fileUrl", "fileSize", "mimeType"],
    "properties": {
      "filename": { "$ref": "#/$defs/required_string" },
      "fileUrl":  { "$ref": "#/$defs/required_string" },
      "fileSize": { "type": "integer", "minimum": 0 },
      "mimeType": { "$ref": "#/$defs/required_string" },
      "notes":    { "type": "string" }
    },
    "additionalProperties": false,` + defsJSON + `
  }`,

	models.ItemTypePasskey: `{
    "$schema": "https://json-schema.org/draft/2020-12/schema",
    "type": "object",
    "required": ["credentialId", "deviceName", "publicKey"],
    "properties": {
      "credentialId": { "$ref": "#/$defs/required_string" },
      "deviceName":   { "$ref": "#/$defs/required_string" },
      "publicKey":    { "$ref": "#/$defs/required_string" },
      "relyingParty": { "type": "string" },
      "username":     { "type": "string" }
    },
    "additionalProperties": false,` + defsJSON + `
  }`,
}
