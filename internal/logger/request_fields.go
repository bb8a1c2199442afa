package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldCountry is the structured log field key for the request country.
	FieldCountry = "country"
	// FieldIndustry is the structured log field key for the request industry.
	FieldIndustry = "industry"
	// FieldCompanySize is the structured log field key for the company size.
	FieldCompanySize = "company_size"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields,
// trimming whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields safely attaches the provided fields to the logger.
// If the logger is nil or no fields are supplied, the input logger is
// returned unchanged, defaulting to a no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// RequestFields returns the standard fields describing a score request.
// The reported salary is deliberately never logged; only whether one was
// supplied. Empty values are omitted to keep entries compact.
func RequestFields(country, industry, companySize string, salaryProvided bool) []zap.Field {
	fields := StringFields(
		StringField{Key: FieldCountry, Value: country},
		StringField{Key: FieldIndustry, Value: industry},
		StringField{Key: FieldCompanySize, Value: companySize},
	)

	return append(fields, zap.Bool("salary_provided", salaryProvided))
}

// WithRequestFields attaches the standard score-request fields to the
// provided logger. If the logger is nil, a no-op logger is created to
// avoid panics.
func WithRequestFields(logger *zap.Logger, country, industry, companySize string, salaryProvided bool) *zap.Logger {
	fields := RequestFields(country, industry, companySize, salaryProvided)
	return WithFields(logger, fields...)
}
