package scoring

import "strings"

// marketContext carries the resolved classification shared by the score
// components of a single evaluation.
type marketContext struct {
	category string
	tier     string
	median   float64
	currency string
}

// component is a single scoring step. Components are declared in a fixed
// order; that order doubles as the tie-break for reason ranking.
type component struct {
	name string
	eval func(e *Engine, in *Input, mc *marketContext) float64
}

// components run sequentially; each is a pure function of the input and
// the resolved market context, clamped to its own point cap.
var components = []component{
	{name: "market", eval: (*Engine).scoreMarket},
	{name: "experience", eval: (*Engine).scoreExperience},
	{name: "skills", eval: (*Engine).scoreSkills},
	{name: "company", eval: (*Engine).scoreCompany},
	{name: "progression", eval: (*Engine).scoreProgression},
	{name: "timing", eval: (*Engine).scoreTiming},
}

// Expected pay multipliers per experience tier, used by the experience
// component.
var tierMultipliers = map[string]float64{
	"junior":    0.7,
	"mid":       0.9,
	"senior":    1.1,
	"lead":      1.25,
	"principal": 1.4,
}

// Base underpaid likelihood per company size; smaller companies tend to
// pay below market.
var companySizeScores = map[string]float64{
	"small":  0.7,
	"medium": 0.5,
	"large":  0.3,
}

// scoreMarket compares the normalized salary against the normalized market
// median. A missing salary yields the neutral half-cap score.
func (e *Engine) scoreMarket(in *Input, mc *marketContext) float64 {
	max := e.data.Weights.Market

	if !in.SalaryProvided() {
		return max * 0.5
	}

	rate := e.data.ExchangeRate(mc.currency)
	cmi := e.data.CountryIndex(in.Country)

	normalizedSalary := (*in.Salary * rate) / cmi
	normalizedMedian := (mc.median * rate) / cmi

	gap := 0.0
	if normalizedMedian > 0 {
		gap = (normalizedMedian - normalizedSalary) / normalizedMedian
	}
	gap = clamp(gap, 0, 1)

	return clamp(gap*max, 0, max)
}

// scoreExperience measures the mismatch between the tier-adjusted expected
// salary and the reported one. Without a salary it degrades to a
// years-only estimate at half weight.
func (e *Engine) scoreExperience(in *Input, mc *marketContext) float64 {
	max := e.data.Weights.Experience

	if !in.SalaryProvided() {
		yearsFactor := minFloat(float64(in.YearsExperience)/15, 1.0)
		return yearsFactor * max * 0.5
	}

	multiplier, ok := tierMultipliers[mc.tier]
	if !ok {
		multiplier = 1.0
	}
	expected := mc.median * multiplier

	gap := 0.0
	if expected > 0 {
		gap = (expected - *in.Salary) / expected
	}
	gap = clamp(gap, 0, 1)

	return clamp(gap*max, 0, max)
}

// scoreSkills weighs the listed skills against the premium table. Skills
// split on comma or semicolon; an exact table hit counts full weight, a
// bidirectional substring hit counts at a 0.7 penalty.
func (e *Engine) scoreSkills(in *Input, _ *marketContext) float64 {
	max := e.data.Weights.Skills

	skills := splitSkills(in.Skills)
	if len(skills) == 0 {
		return max * 0.3
	}

	totalPremium := 0.0
	matched := 0

	for _, skill := range skills {
		if weight, ok := e.exactSkill(skill); ok {
			totalPremium += weight
			matched++
			continue
		}

		// Known false-positive risk: the substring check also matches
		// unintended fragments, e.g. "ai" inside "mail". Kept for
		// compatibility with the published scores.
		for _, known := range e.data.SkillPremiums {
			if strings.Contains(skill, known.Name) || strings.Contains(known.Name, skill) {
				totalPremium += known.Weight * 0.7
				matched++
				break
			}
		}
	}

	if matched == 0 {
		return max * 0.4
	}

	avgPremium := totalPremium / float64(matched)
	countBonus := minFloat(float64(matched)/5, 1.0)

	score := avgPremium * max * (0.5 + 0.5*countBonus)

	return clamp(score, 0, max)
}

// scoreCompany scores by company size, adjusted by the regional company
// multiplier for emerging markets.
func (e *Engine) scoreCompany(in *Input, _ *marketContext) float64 {
	max := e.data.Weights.Company

	base, ok := companySizeScores[in.CompanySize]
	if !ok {
		base = 0.5
	}

	rcm := e.data.Region.Developed
	if e.data.IsEmerging(in.Country) {
		rcm = e.data.Region.Emerging
	}

	return clamp(base*max*rcm, 0, max)
}

// scoreProgression scores stagnation risk from time in the current role
// and promotion history. A missing years-in-role counts as zero.
func (e *Engine) scoreProgression(in *Input, _ *marketContext) float64 {
	max := e.data.Weights.Progression

	yearsInRole := 0
	if in.YearsInRole != nil {
		yearsInRole = *in.YearsInRole
	}
	yearsFactor := minFloat(float64(yearsInRole)/5, 1.0)

	promotionFactor := 0.7
	if in.PromotionReceived {
		promotionFactor = 0.3
	}

	score := (yearsFactor*0.6 + promotionFactor*0.4) * max

	return clamp(score, 0, max)
}

// scoreTiming converts the role category's demand trend from [-1, 1] into
// points: hot roles are more likely to be underpaid at their current
// employer.
func (e *Engine) scoreTiming(_ *Input, mc *marketContext) float64 {
	max := e.data.Weights.Timing

	trend := e.data.DemandTrend(mc.category)
	score := ((trend + 1) / 2) * max

	return clamp(score, 0, max)
}

func (e *Engine) exactSkill(skill string) (float64, bool) {
	for _, known := range e.data.SkillPremiums {
		if known.Name == skill {
			return known.Weight, true
		}
	}
	return 0, false
}

func splitSkills(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';'
	})

	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		if skill := strings.ToLower(strings.TrimSpace(part)); skill != "" {
			skills = append(skills, skill)
		}
	}
	return skills
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
