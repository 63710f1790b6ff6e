// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
)

// PayloadValidator checks decoded payloads against the JSON Schema of their
// item type. The schemas are compiled once; the validator is safe for
// concurrent use.
type PayloadValidator struct {
	schemas map[models.ItemType]*jsonschema.Schema
}

// NewPayloadValidator compiles the payload schemas of every item type.
func NewPayloadValidator() (*PayloadValidator, error) {
	c := jsonschema.NewCompiler()
	c.AssertFormat()

	compiled := make(map[models.ItemType]*jsonschema.Schema, len(payloadSchemas))
	for itemType, raw := range payloadSchemas {
		url := schemaBaseURL + string(itemType) + ".json"

		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("unmarshal %s schema: %w", itemType, err)
		}
		if err := c.AddResource(url, doc); err != nil {
			return nil, fmt.Errorf("add %s schema resource: %w", itemType, err)
		}

		schema, err := c.Compile(url)
		if err != nil {
			return nil, fmt.Errorf("compile %s schema: %w", itemType, err)
		}
		compiled[itemType] = schema
	}

	return &PayloadValidator{schemas: compiled}, nil
}

// MustNewPayloadValidator is like [NewPayloadValidator] but panics on error.
// The schemas are compile-time constants, so an error is a programming bug.
func MustNewPayloadValidator() *PayloadValidator {
	v, err := NewPayloadValidator()
	if err != nil {
		panic(err)
	}
	return v
}

// ValidatePayload checks that payload is the variant of itemType and that it
// satisfies the item type's required-field set. A failure is a *[FieldError].
func (v *PayloadValidator) ValidatePayload(ctx context.Context, itemType models.ItemType, payload models.Payload) error {
	if payload == nil {
		return NewFieldError(FieldPayload, "is required")
	}
	if !itemType.IsValid() {
		return NewFieldError(FieldItemType, "is not a supported item type")
	}
	if payload.ItemType() != itemType {
		return NewFieldError(FieldPayload, fmt.Sprintf("is a %s payload, want %s", payload.ItemType(), itemType))
	}

	schema, ok := v.schemas[itemType]
	if !ok {
		return NewFieldError(FieldItemType, "has no schema")
	}

	doc, err := toJSONValue(payload)
	if err != nil {
		return fmt.Errorf("%w: serialize payload: %w", ErrValidation, err)
	}

	if err := schema.Validate(doc); err != nil {
		return toFieldError(err)
	}
	return nil
}

// Validate implements [Validator] for a [models.Payload], using the payload's
// own type as the expected item type.
// ValidateDocument validates a loosely typed field map, such as an external
// submission, against the schema of itemType. It reports wrongly typed
// values as field errors where decoding into a payload struct would fail.
func (v *PayloadValidator) ValidateDocument(_ context.Context, itemType models.ItemType, fields map[string]any) error {
	schema, ok := v.schemas[itemType]
	if !ok {
		return NewFieldError(FieldItemType, "is not a supported item type")
	}

	if fields == nil {
		fields = map[string]any{}
	}
	doc, err := toJSONValue(fields)
	if err != nil {
		return fmt.Errorf("%w: serialize payload: %w", ErrValidation, err)
	}

	if err := schema.Validate(doc); err != nil {
		return toFieldError(err)
	}
	return nil
}

func (v *PayloadValidator) Validate(ctx context.Context, obj any, _ ...string) error {
	payload, ok := obj.(models.Payload)
	if !ok {
		return ErrUnsupportedType
	}
	return v.ValidatePayload(ctx, payload.ItemType(), models.Deref(payload))
}

// toJSONValue round-trips a Go value through JSON encoding/decoding so that
// numeric values become json.Number (required by the jsonschema library).
func toJSONValue(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return jsonschema.UnmarshalJSON(strings.NewReader(string(b)))
}

// toFieldError converts a jsonschema.ValidationError into the first violated
// field, ordered by field path so the result is deterministic.
func toFieldError(err error) error {
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	violations := collectViolations(verr)
	if len(violations) == 0 {
		return NewFieldError(FieldPayload, "is invalid")
	}

	sort.SliceStable(violations, func(i, j int) bool {
		return violations[i].Field < violations[j].Field
	})
	return violations[0]
}

// collectViolations walks a ValidationError tree and collects leaf errors
// with their instance locations.
func collectViolations(verr *jsonschema.ValidationError) []*FieldError {
	if len(verr.Causes) == 0 {
		return []*FieldError{leafViolation(verr)}
	}

	var violations []*FieldError
	for _, cause := range verr.Causes {
		violations = append(violations, collectViolations(cause)...)
	}
	return violations
}

func leafViolation(verr *jsonschema.ValidationError) *FieldError {
	path := strings.Join(verr.InstanceLocation, ".")
	join := func(name string) string {
		if path == "" {
			return name
		}
		return path + "." + name
	}

	switch k := verr.ErrorKind.(type) {
	case *kind.Required:
		if len(k.Missing) > 0 {
			return NewFieldError(join(k.Missing[0]), "is required")
		}
	case *kind.AdditionalProperties:
		if len(k.Properties) > 0 {
			return NewFieldError(join(k.Properties[0]), "is not allowed")
		}
	case *kind.Pattern:
		return NewFieldError(fieldOrPayload(path), "must not be blank")
	case *kind.Minimum:
		return NewFieldError(fieldOrPayload(path), "must not be negative")
	case *kind.Type:
		return NewFieldError(fieldOrPayload(path), "has the wrong type")
	}
	return NewFieldError(fieldOrPayload(path), "is invalid")
}

func fieldOrPayload(path string) string {
	if path == "" {
		return FieldPayload
	}
	return path
}
