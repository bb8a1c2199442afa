package scoring

import (
	"fmt"
	"sort"
)

// Confidence levels, ordered from least to most reliable.
const (
	ConfidenceLow    = "Low"
	ConfidenceMedium = "Medium"
	ConfidenceHigh   = "High"
)

// Verdict machine codes.
const (
	VerdictLikelyUnderpaid   = "likely_underpaid"
	VerdictPossiblyUnderpaid = "possibly_underpaid"
	VerdictFairlyPaid        = "fairly_paid"
	VerdictFairlyOverpaid    = "fairly_overpaid"
)

var fillerReasons = []string{
	"Market conditions vary significantly across regions and industries.",
	"Individual circumstances and company policies affect compensation.",
	"Consider discussing your contributions with your manager during performance reviews.",
}

// verdictFor maps a total score to its label and machine code, checking
// thresholds high to low.
func (e *Engine) verdictFor(score float64) (string, string) {
	t := e.data.Thresholds
	switch {
	case score >= t.LikelyUnderpaid:
		return "Likely underpaid", VerdictLikelyUnderpaid
	case score >= t.PossiblyUnderpaid:
		return "Possibly underpaid", VerdictPossiblyUnderpaid
	case score >= t.FairlyPaid:
		return "Fairly paid", VerdictFairlyPaid
	default:
		return "Likely fairly or overpaid", VerdictFairlyOverpaid
	}
}

// confidenceFor rates the assessment's reliability. It starts from the
// country's data-reliability tier and only ever downgrades: one step when
// no salary was supplied, one more when the role resolved to the default
// category. The floor is Low.
func (e *Engine) confidenceFor(salaryProvided bool, country, category string) string {
	confidence := ConfidenceMedium

	switch e.data.Reliability[country] {
	case "high":
		confidence = ConfidenceHigh
	case "low":
		confidence = ConfidenceLow
	}

	if !salaryProvided {
		if confidence == ConfidenceHigh {
			confidence = ConfidenceMedium
		} else {
			confidence = ConfidenceLow
		}
	}

	if category == defaultCategory {
		switch confidence {
		case ConfidenceHigh:
			confidence = ConfidenceMedium
		case ConfidenceMedium:
			confidence = ConfidenceLow
		}
	}

	return confidence
}

type reasonCandidate struct {
	priority float64
	text     string
}

// generateReasons builds the top-3 explanation list. Components whose raw
// sub-score clears its threshold contribute a candidate sentence;
// candidates are ranked by sub-score descending with a stable sort, so
// ties keep component declaration order. Generic fillers complete the list
// without duplicates.
func (e *Engine) generateReasons(scores map[string]float64, in *Input) []string {
	var candidates []reasonCandidate

	add := func(priority float64, text string) {
		candidates = append(candidates, reasonCandidate{priority: priority, text: text})
	}

	if market := scores["market"]; market > 20 {
		add(market, "Your current salary appears below the market median for similar roles in your location.")
	} else if market > 10 {
		add(market, "Your salary is slightly below market expectations for your role and location.")
	}

	if experience := scores["experience"]; experience > 14 {
		add(experience, fmt.Sprintf("With %d+ years of experience, your compensation may not reflect your seniority level.", in.YearsExperience))
	} else if experience > 8 {
		add(experience, "Your experience level suggests you may be positioned for higher compensation.")
	}

	if skills := scores["skills"]; skills > 10 {
		add(skills, "Your skill set includes high-demand capabilities that typically command premium pay.")
	}

	if company := scores["company"]; company > 6 {
		add(company, "Smaller companies in your region often pay less than larger organizations for similar roles.")
	}

	if progression := scores["progression"]; progression > 6 {
		if in.YearsInRole != nil && *in.YearsInRole > 2 {
			add(progression, fmt.Sprintf("Being in the same role for %d+ years without promotion may indicate stagnant compensation.", *in.YearsInRole))
		} else {
			add(progression, "Your career progression pattern suggests potential for better compensation elsewhere.")
		}
	}

	if timing := scores["timing"]; timing > 7 {
		add(timing, "Your role category is currently in high demand, which often creates pay gaps for existing employees.")
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].priority > candidates[j].priority
	})

	reasons := make([]string, 0, 3)
	for _, c := range candidates {
		if len(reasons) == 3 {
			break
		}
		reasons = append(reasons, c.text)
	}

	for len(reasons) < 3 {
		for _, filler := range fillerReasons {
			if !containsString(reasons, filler) {
				reasons = append(reasons, filler)
				break
			}
		}
	}

	return reasons[:3]
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
