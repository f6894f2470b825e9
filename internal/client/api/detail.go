package api

import (
	"encoding/json"
	"fmt"
	"strings"
)

// The backend reports errors as {"detail": ...} where detail is either
// a plain string or a list of field-level validation errors. Detail is
// the tagged union both shapes decode into, so display code can
// collapse them with one exhaustive switch instead of probing types.

type DetailKind int

const (
	DetailNone DetailKind = iota
	DetailString
	DetailFields
)

// FieldError is one entry of a field-level validation list.
type FieldError struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

// Field returns the innermost location element, the field name the
// message refers to.
func (f FieldError) Field() string {
	if len(f.Loc) == 0 {
		return "field"
	}
	return fmt.Sprint(f.Loc[len(f.Loc)-1])
}

// Detail is the decoded error payload.
type Detail struct {
	Kind   DetailKind
	Str    string
	Fields []FieldError
}

func (d *Detail) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*d = Detail{Kind: DetailString, Str: s}
		return nil
	}

	var fields []FieldError
	if err := json.Unmarshal(data, &fields); err == nil {
		*d = Detail{Kind: DetailFields, Fields: fields}
		return nil
	}

	// Unknown shape: treat as absent rather than failing the decode.
	*d = Detail{Kind: DetailNone}
	return nil
}

// Message collapses the union to a user-facing string. A string detail
// is used verbatim; field errors join as "field: msg" pairs separated
// by period-space; no detail yields an empty string.
func (d Detail) Message() string {
	switch d.Kind {
	case DetailString:
		return d.Str
	case DetailFields:
		parts := make([]string, 0, len(d.Fields))
		for _, f := range d.Fields {
			parts = append(parts, fmt.Sprintf("%s: %s", f.Field(), f.Msg))
		}
		return strings.Join(parts, ". ")
	default:
		return ""
	}
}

// ParseErrorBody decodes an error response body into its Detail. The
// second return reports whether the body was valid JSON of the
// expected envelope shape.
func ParseErrorBody(body []byte) (Detail, bool) {
	var envelope struct {
		Detail Detail `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return Detail{}, false
	}
	return envelope.Detail, true
}
