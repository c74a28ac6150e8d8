package importer

import (
	"fmt"
	"strconv"

	"taxsync/internal/hubspot"
)

// CoerceFunc converts a raw column value into the value submitted to the API.
type CoerceFunc func(string) interface{}

// FieldRule maps one source column to one target property. Rules are applied
// in order; when two rules share a target the later assignment wins, matching
// how the batch endpoint treats repeated property names.
type FieldRule struct {
	Source string
	Target string
	// Coerce, when set, transforms the non-empty raw value. Nil passes the
	// string through unchanged.
	Coerce CoerceFunc
}

// Mapping is an ordered field-name translation table.
type Mapping []FieldRule

// CoerceFloat parses the value as a float64. On parse failure the original
// string is passed through unchanged rather than failing the record.
func CoerceFloat(raw string) interface{} {
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}

// DefaultTaxMapping is the translation table for the jurisdiction-style tax
// CSV layout.
func DefaultTaxMapping() Mapping {
	return Mapping{
		{Source: "jurisdiction_desc", Target: "name"},
		{Source: "tax_percentage", Target: "rate", Coerce: CoerceFloat},
		{Source: "jurisdiction_id", Target: "externalId"},
	}
}

// DefaultRequiredColumns lists the columns DefaultTaxMapping expects in the
// input file.
func DefaultRequiredColumns() []string {
	return []string{"jurisdiction_id", "jurisdiction_desc", "tax_percentage"}
}

// Apply translates one record into target properties. Values that are empty
// or absent are omitted entirely so the remote system's existing fields are
// never overwritten with blanks.
func (m Mapping) Apply(record map[string]interface{}) hubspot.Properties {
	props := make(hubspot.Properties, len(m))
	for _, rule := range m {
		raw := valueToString(record[rule.Source])
		if raw == "" {
			// An empty later assignment still clears an earlier one for the
			// same target; the stripped key stays stripped.
			delete(props, rule.Target)
			continue
		}
		if rule.Coerce != nil {
			props[rule.Target] = rule.Coerce(raw)
		} else {
			props[rule.Target] = raw
		}
	}
	return props
}

// valueToString renders a record value for mapping. Nil becomes the empty
// string so absent columns are treated the same as blank ones.
func valueToString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}
