package scoring

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Input is the fully coerced scoring request. Optional numeric fields are
// pointers so the calculators can tell "absent" from zero.
type Input struct {
	JobTitle          string
	Country           string
	Industry          string
	YearsExperience   int
	CompanySize       string
	Skills            string
	Salary            *float64
	YearsInRole       *int
	PromotionReceived bool
}

// wireInput mirrors the request payload before coercion. Loosely typed
// fields stay untyped here so a bad salary cannot fail the whole decode.
type wireInput struct {
	JobTitle          string `mapstructure:"job_title"`
	Country           string `mapstructure:"country"`
	Industry          string `mapstructure:"industry"`
	CompanySize       string `mapstructure:"company_size"`
	Skills            string `mapstructure:"skills"`
	YearsExperience   any    `mapstructure:"years_experience"`
	Salary            any    `mapstructure:"salary"`
	YearsInRole       any    `mapstructure:"years_in_role"`
	PromotionReceived any    `mapstructure:"promotion_received"`
}

// DecodeInput coerces a raw request mapping into an Input. Coercion is
// deliberately forgiving: years_experience falls back to 0 on parse
// failure, salary and years_in_role become absent, promotion_received
// defaults to false. Validation of enumerated values happens at the
// request boundary, not here.
func DecodeInput(raw map[string]any) (*Input, error) {
	var wire wireInput
	if err := weakDecode(raw, &wire); err != nil {
		return nil, fmt.Errorf("decoding score input: %w", err)
	}

	in := &Input{
		JobTitle:    wire.JobTitle,
		Country:     wire.Country,
		Industry:    wire.Industry,
		CompanySize: wire.CompanySize,
		Skills:      wire.Skills,
	}

	if years, ok := coerceInt(wire.YearsExperience); ok && years >= 0 {
		in.YearsExperience = years
	}
	if salary, ok := coerceFloat(wire.Salary); ok {
		in.Salary = &salary
	}
	if years, ok := coerceInt(wire.YearsInRole); ok && years >= 0 {
		in.YearsInRole = &years
	}
	if promoted, ok := coerceBool(wire.PromotionReceived); ok {
		in.PromotionReceived = promoted
	}

	return in, nil
}

// SalaryProvided reports whether a usable salary was supplied.
func (in *Input) SalaryProvided() bool {
	return in.Salary != nil && *in.Salary > 0
}

func weakDecode(v, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(v)
}

func coerceInt(v any) (int, bool) {
	if v == nil {
		return 0, false
	}
	var out int
	if err := weakDecode(v, &out); err != nil {
		return 0, false
	}
	return out, true
}

func coerceFloat(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	var out float64
	if err := weakDecode(v, &out); err != nil {
		return 0, false
	}
	return out, true
}

func coerceBool(v any) (bool, bool) {
	if v == nil {
		return false, false
	}
	var out bool
	if err := weakDecode(v, &out); err != nil {
		return false, false
	}
	return out, true
}
