package refdata

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Currency describes the currency used in a supported country.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// Option is a value/label pair for the enumerations exposed to clients.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// RoleKeywords binds a role category to the title keywords that select it.
// The catalog is an ordered slice because the first matching category wins;
// a map would make resolution order undefined.
type RoleKeywords struct {
	Category string
	Keywords []string
}

// SkillPremium is a single entry of the high-demand skill table.
type SkillPremium struct {
	Name   string
	Weight float64
}

// ExperienceBand maps an inclusive range of years to an experience tier.
type ExperienceBand struct {
	Tier string
	Min  int
	Max  int
}

// ScoreWeights holds the point cap of every score component plus the
// neutral baseline.
type ScoreWeights struct {
	Market      float64 `json:"market"`
	Experience  float64 `json:"experience"`
	Skills      float64 `json:"skills"`
	Company     float64 `json:"company"`
	Progression float64 `json:"progression"`
	Timing      float64 `json:"timing"`
	Baseline    float64 `json:"baseline"`
}

// VerdictThresholds are the lower score bounds of the verdict tiers,
// evaluated high to low.
type VerdictThresholds struct {
	LikelyUnderpaid   float64 `json:"likely_underpaid"`
	PossiblyUnderpaid float64 `json:"possibly_underpaid"`
	FairlyPaid        float64 `json:"fairly_paid"`
}

// RegionMultipliers adjust the company-size component for developed vs
// emerging markets.
type RegionMultipliers struct {
	Developed float64 `json:"developed"`
	Emerging  float64 `json:"emerging"`
}

// Dataset bundles every static market table the scoring engine reads.
// It is built once at startup and never mutated afterwards, so it is safe
// to share across any number of concurrent requests without locking.
type Dataset struct {
	Version        string
	UpdatedDisplay string
	Disclaimer     string

	MarketIndex     map[string]float64
	ExchangeRates   map[string]float64
	Currencies      map[string]Currency
	SalaryRounding  map[string]int
	EmergingMarkets []string
	Region          RegionMultipliers

	Countries    []Option
	Industries   []Option
	CompanySizes []Option

	RoleCatalog          []RoleKeywords
	RoleMedians          map[string]map[string]float64
	SkillPremiums        []SkillPremium
	RoleSkillSuggestions map[string][]string
	DemandTrends         map[string]float64
	IndustryMultipliers  map[string]float64
	Reliability          map[string]string
	ExperienceBands      []ExperienceBand

	Weights    ScoreWeights
	Thresholds VerdictThresholds
}

// DefaultCategory is the fallback role category when no keyword matches.
const DefaultCategory = "default"

// CurrencyFor returns the currency metadata for a country, defaulting to
// US dollars for unknown countries.
func (d *Dataset) CurrencyFor(country string) Currency {
	if c, ok := d.Currencies[country]; ok {
		return c
	}
	return Currency{Code: "USD", Symbol: "$", Name: "US Dollar"}
}

// RoundingUnit returns the salary rounding unit for a currency code,
// defaulting to 1000.
func (d *Dataset) RoundingUnit(currency string) int {
	if unit, ok := d.SalaryRounding[currency]; ok {
		return unit
	}
	return 1000
}

// ExchangeRate returns the USD exchange rate for a currency code,
// defaulting to 1.0.
func (d *Dataset) ExchangeRate(currency string) float64 {
	if rate, ok := d.ExchangeRates[currency]; ok {
		return rate
	}
	return 1.0
}

// CountryIndex returns the market index (CMI) for a country, defaulting
// to 1.0.
func (d *Dataset) CountryIndex(country string) float64 {
	if cmi, ok := d.MarketIndex[country]; ok {
		return cmi
	}
	return 1.0
}

// IndustryMultiplier returns the pay multiplier for an industry,
// defaulting to 1.0 when the industry is unknown.
func (d *Dataset) IndustryMultiplier(industry string) float64 {
	if m, ok := d.IndustryMultipliers[industry]; ok {
		return m
	}
	return 1.0
}

// DemandTrend returns the demand trend for a role category in [-1, 1],
// falling back to the default category trend.
func (d *Dataset) DemandTrend(category string) float64 {
	if t, ok := d.DemandTrends[category]; ok {
		return t
	}
	return d.DemandTrends[DefaultCategory]
}

// IsEmerging reports whether a country is classified as an emerging market.
func (d *Dataset) IsEmerging(country string) bool {
	for _, c := range d.EmergingMarkets {
		if c == country {
			return true
		}
	}
	return false
}

// CountryValues returns the valid country codes in declaration order.
func (d *Dataset) CountryValues() []string {
	return optionValues(d.Countries)
}

// CompanySizeValues returns the valid company sizes in declaration order.
func (d *Dataset) CompanySizeValues() []string {
	return optionValues(d.CompanySizes)
}

func optionValues(opts []Option) []string {
	values := make([]string, 0, len(opts))
	for _, o := range opts {
		values = append(values, o.Value)
	}
	return values
}

// Validate checks the structural invariants of the dataset: positive
// component caps and a theoretical score maximum of exactly 100 points.
func (d *Dataset) Validate() error {
	w := d.Weights
	caps := map[string]float64{
		"market":      w.Market,
		"experience":  w.Experience,
		"skills":      w.Skills,
		"company":     w.Company,
		"progression": w.Progression,
		"timing":      w.Timing,
	}

	total := w.Baseline
	for name, c := range caps {
		if c <= 0 {
			return fmt.Errorf("score weight %q must be positive, got %v", name, c)
		}
		total += c
	}

	if total != 100 {
		return fmt.Errorf("score weights plus baseline must total 100, got %v", total)
	}

	if len(d.RoleCatalog) == 0 {
		return fmt.Errorf("role catalog is empty")
	}
	if _, ok := d.RoleMedians[DefaultCategory]; !ok {
		return fmt.Errorf("role medians are missing the %q category", DefaultCategory)
	}
	if len(d.ExperienceBands) == 0 {
		return fmt.Errorf("experience bands are empty")
	}

	return nil
}

// overrides is the shape of an optional external data file. Only the
// tables present in the file replace their defaults.
type overrides struct {
	Version             string                        `json:"version"`
	UpdatedDisplay      string                        `json:"updated_display"`
	MarketIndex         map[string]float64            `json:"market_index"`
	ExchangeRates       map[string]float64            `json:"exchange_rates"`
	RoleMedians         map[string]map[string]float64 `json:"role_medians_usd"`
	IndustryMultipliers map[string]float64            `json:"industry_multipliers"`
	DemandTrends        map[string]float64            `json:"demand_trends"`
}

// LoadFile builds the default dataset and merges the JSON override file on
// top of it, so market tables can be refreshed without a new build. The
// merged dataset is validated before being returned.
func LoadFile(path string) (*Dataset, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("reference data file path is empty")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading reference data from file %q: %w", path, err)
	}

	var ov overrides
	if err := json.Unmarshal(raw, &ov); err != nil {
		return nil, fmt.Errorf("parsing reference data file %q: %w", path, err)
	}

	d := Default()
	if ov.Version != "" {
		d.Version = ov.Version
	}
	if ov.UpdatedDisplay != "" {
		d.UpdatedDisplay = ov.UpdatedDisplay
	}
	if len(ov.MarketIndex) > 0 {
		d.MarketIndex = ov.MarketIndex
	}
	if len(ov.ExchangeRates) > 0 {
		d.ExchangeRates = ov.ExchangeRates
	}
	if len(ov.RoleMedians) > 0 {
		d.RoleMedians = ov.RoleMedians
	}
	if len(ov.IndustryMultipliers) > 0 {
		d.IndustryMultipliers = ov.IndustryMultipliers
	}
	if len(ov.DemandTrends) > 0 {
		d.DemandTrends = ov.DemandTrends
	}

	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("reference data file %q: %w", path, err)
	}

	return d, nil
}
