package server

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/fairpaycheck/fairpaycheck/internal/refdata"
)

// requiredFields are the request keys that must be present and non-blank,
// in the order they are reported back to the client.
var requiredFields = []string{"job_title", "country", "industry", "years_experience", "company_size"}

// requestSchema validates a raw score request. One validation pass
// collects every missing field and enum violation so the client sees them
// all at once instead of one per round trip.
type requestSchema struct {
	schema       *gojsonschema.Schema
	countries    []string
	companySizes []string
}

func compileRequestSchema(data *refdata.Dataset) (*requestSchema, error) {
	countries := data.CountryValues()
	sizes := data.CompanySizeValues()

	doc := map[string]any{
		"type":     "object",
		"required": requiredFields,
		"properties": map[string]any{
			// years_experience is coerced later, so it carries no type
			// constraint here.
			"job_title":    map[string]any{"minLength": 1},
			"industry":     map[string]any{"minLength": 1},
			"country":      map[string]any{"minLength": 1, "enum": countries},
			"company_size": map[string]any{"minLength": 1, "enum": sizes},
		},
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("compiling request schema: %w", err)
	}

	return &requestSchema{
		schema:       schema,
		countries:    countries,
		companySizes: sizes,
	}, nil
}

// validate returns a client-facing error message for an invalid request,
// or the empty string when the request is well-formed. Missing fields are
// reported before enum violations, matching the published API behavior.
func (rs *requestSchema) validate(raw map[string]any) (string, error) {
	result, err := rs.schema.Validate(gojsonschema.NewGoLoader(raw))
	if err != nil {
		return "", fmt.Errorf("validating request: %w", err)
	}

	if result.Valid() {
		return "", nil
	}

	missing := map[string]bool{}
	badCountry := false
	badSize := false

	for _, resErr := range result.Errors() {
		switch resErr.Type() {
		case "required":
			if prop, ok := resErr.Details()["property"].(string); ok {
				missing[prop] = true
			}
		case "string_gte", "min_length":
			// Blank required strings count as missing.
			missing[resErr.Field()] = true
		case "enum":
			switch resErr.Field() {
			case "country":
				badCountry = true
			case "company_size":
				badSize = true
			}
		}
	}

	if len(missing) > 0 {
		names := make([]string, 0, len(missing))
		for name := range missing {
			names = append(names, name)
		}
		sortByRequiredOrder(names)
		return fmt.Sprintf("Missing required fields: %s", strings.Join(names, ", ")), nil
	}

	if badCountry {
		return fmt.Sprintf("Invalid country. Must be one of: %s", strings.Join(rs.countries, ", ")), nil
	}

	if badSize {
		return fmt.Sprintf("Invalid company_size. Must be one of: %s", strings.Join(rs.companySizes, ", ")), nil
	}

	// Remaining schema errors concern fields the engine coerces anyway.
	return "", nil
}

// sortByRequiredOrder orders field names as they appear in requiredFields
// so error messages are deterministic.
func sortByRequiredOrder(names []string) {
	rank := make(map[string]int, len(requiredFields))
	for i, f := range requiredFields {
		rank[f] = i
	}
	sort.Slice(names, func(i, j int) bool {
		ri, iok := rank[names[i]]
		rj, jok := rank[names[j]]
		if iok && jok {
			return ri < rj
		}
		if iok != jok {
			return iok
		}
		return names[i] < names[j]
	})
}
