package scoring

import (
	"fmt"
	"math"
	"strconv"
)

// MarketMedian resolves the localized market-median salary for a role
// category, experience tier, country and industry. Every lookup has a
// fallback, so the resolver always produces a numeric value: unknown
// categories use the default table, a missing tier uses mid, unknown
// industries and countries multiply by 1.0.
func (e *Engine) MarketMedian(category, tier, country, industry string) (float64, string) {
	medians, ok := e.data.RoleMedians[category]
	if !ok {
		medians = e.data.RoleMedians[defaultCategory]
	}
	base, ok := medians[tier]
	if !ok {
		base = medians["mid"]
	}

	adjusted := base * e.data.IndustryMultiplier(industry)
	adjusted *= e.data.CountryIndex(country)

	currency := e.data.CurrencyFor(country).Code
	local := adjusted / e.data.ExchangeRate(currency)

	return local, currency
}

// NormalizeToUSD converts a local salary to a USD-equivalent comparable
// across countries: salary × exchange rate ÷ country market index.
func (e *Engine) NormalizeToUSD(salary float64, country string) float64 {
	currency := e.data.CurrencyFor(country).Code
	rate := e.data.ExchangeRate(currency)
	cmi := e.data.CountryIndex(country)

	return (salary * rate) / cmi
}

// salaryRange derives the fair-pay band around a market median: -10% to
// +10%, each bound rounded to the currency's rounding unit.
func (e *Engine) salaryRange(median float64, currency string) (float64, float64) {
	return e.roundSalary(median*0.9, currency), e.roundSalary(median*1.1, currency)
}

// roundSalary rounds an amount half-up to the nearest multiple of the
// currency's rounding unit (1000 for USD, 10000 for INR, and so on).
func (e *Engine) roundSalary(amount float64, currency string) float64 {
	unit := float64(e.data.RoundingUnit(currency))
	return math.Floor(amount/unit+0.5) * unit
}

// formatSalary renders an amount as {symbol}{thousands-grouped integer},
// e.g. $142,000.
func (e *Engine) formatSalary(amount float64, country string) string {
	symbol := e.data.CurrencyFor(country).Symbol
	return fmt.Sprintf("%s%s", symbol, groupThousands(int64(math.Round(amount))))
}

func groupThousands(n int64) string {
	negative := n < 0
	if negative {
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}

	if negative {
		return "-" + string(out)
	}
	return string(out)
}

func clamp(value, min, max float64) float64 {
	return math.Max(min, math.Min(value, max))
}
