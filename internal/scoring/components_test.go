package scoring

import (
	"math"
	"testing"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func usaContext(e *Engine, category, tier string) *marketContext {
	median, currency := e.MarketMedian(category, tier, "USA", "technology")
	return &marketContext{category: category, tier: tier, median: median, currency: currency}
}

func TestScoreMarketNeutralWithoutSalary(t *testing.T) {
	e := newTestEngine()
	in := &Input{Country: "USA"}

	got := e.scoreMarket(in, usaContext(e, "engineering", "senior"))
	if got != 15 {
		t.Fatalf("scoreMarket without salary = %v, want 15", got)
	}
}

func TestScoreMarketGap(t *testing.T) {
	e := newTestEngine()
	mc := usaContext(e, "engineering", "senior") // median 140000

	in := &Input{Country: "USA", Salary: floatPtr(95000)}
	got := e.scoreMarket(in, mc)
	want := (140000.0 - 95000.0) / 140000.0 * 30

	if math.Abs(got-want) > 0.001 {
		t.Fatalf("scoreMarket = %v, want %v", got, want)
	}

	// Salary above the median clamps to zero, never negative.
	in.Salary = floatPtr(220000)
	if got := e.scoreMarket(in, mc); got != 0 {
		t.Fatalf("scoreMarket above median = %v, want 0", got)
	}

	// Salary of zero counts as absent.
	in.Salary = floatPtr(0)
	if got := e.scoreMarket(in, mc); got != 15 {
		t.Fatalf("scoreMarket with zero salary = %v, want 15", got)
	}
}

func TestScoreExperienceWithoutSalary(t *testing.T) {
	e := newTestEngine()
	mc := usaContext(e, "engineering", "senior")

	// min(8/15, 1) × 20 × 0.5
	in := &Input{Country: "USA", YearsExperience: 8}
	got := e.scoreExperience(in, mc)
	want := 8.0 / 15.0 * 20 * 0.5

	if math.Abs(got-want) > 0.001 {
		t.Fatalf("scoreExperience = %v, want %v", got, want)
	}

	// Years factor saturates at 15 years.
	in.YearsExperience = 40
	if got := e.scoreExperience(in, mc); got != 10 {
		t.Fatalf("scoreExperience at 40 years = %v, want 10", got)
	}
}

func TestScoreExperienceTierMultiplier(t *testing.T) {
	e := newTestEngine()
	mc := usaContext(e, "engineering", "senior") // median 140000, senior ×1.1

	in := &Input{Country: "USA", YearsExperience: 8, Salary: floatPtr(95000)}
	got := e.scoreExperience(in, mc)

	expected := 140000.0 * 1.1
	want := (expected - 95000.0) / expected * 20

	if math.Abs(got-want) > 0.001 {
		t.Fatalf("scoreExperience = %v, want %v", got, want)
	}
}

func TestScoreSkillsFallbacks(t *testing.T) {
	e := newTestEngine()

	// Empty skill text scores cap × 0.3.
	if got := e.scoreSkills(&Input{Skills: ""}, nil); got != 4.5 {
		t.Fatalf("empty skills = %v, want 4.5", got)
	}
	if got := e.scoreSkills(&Input{Skills: " ; , "}, nil); got != 4.5 {
		t.Fatalf("blank skills = %v, want 4.5", got)
	}

	// Listed but unrecognized skills score cap × 0.4.
	if got := e.scoreSkills(&Input{Skills: "underwater basket weaving"}, nil); got != 6 {
		t.Fatalf("unrecognized skills = %v, want 6", got)
	}
}

func TestScoreSkillsExactMatches(t *testing.T) {
	e := newTestEngine()

	// python 0.8, aws 0.85, kubernetes 0.9 → avg 0.85, 3 matches →
	// bonus 0.5 + 0.5×(3/5) = 0.8 → 0.85 × 15 × 0.8.
	in := &Input{Skills: "Python,AWS,Kubernetes"}
	got := e.scoreSkills(in, nil)
	want := 0.85 * 15 * 0.8

	if math.Abs(got-want) > 0.001 {
		t.Fatalf("scoreSkills = %v, want %v", got, want)
	}
}

func TestScoreSkillsSubstringPenalty(t *testing.T) {
	e := newTestEngine()

	// "python3" is not an exact table entry, but contains "python":
	// 0.8 × 0.7 premium, one match → bonus 0.5 + 0.5×0.2 = 0.6.
	got := e.scoreSkills(&Input{Skills: "python3"}, nil)
	want := 0.8 * 0.7 * 15 * 0.6

	if math.Abs(got-want) > 0.001 {
		t.Fatalf("scoreSkills = %v, want %v", got, want)
	}
}

func TestScoreSkillsKnownFalsePositive(t *testing.T) {
	e := newTestEngine()

	// Documented compatibility quirk: "mailchimp" contains "ai" and
	// matches the AI premium via the substring rule.
	got := e.scoreSkills(&Input{Skills: "mailchimp"}, nil)
	want := 0.95 * 0.7 * 15 * 0.6

	if math.Abs(got-want) > 0.001 {
		t.Fatalf("scoreSkills = %v, want %v", got, want)
	}
}

func TestScoreCompany(t *testing.T) {
	e := newTestEngine()

	cases := []struct {
		size    string
		country string
		want    float64
	}{
		{"small", "USA", 7},
		{"medium", "USA", 5},
		{"large", "USA", 3},
		// Emerging market multiplier 0.8.
		{"small", "India", 5.6},
		{"large", "India", 2.4},
		// Unknown size behaves like medium.
		{"huge", "USA", 5},
	}

	for _, tc := range cases {
		in := &Input{CompanySize: tc.size, Country: tc.country}
		got := e.scoreCompany(in, nil)
		if math.Abs(got-tc.want) > 0.001 {
			t.Fatalf("scoreCompany(%s, %s) = %v, want %v", tc.size, tc.country, got, tc.want)
		}
	}
}

func TestScoreProgression(t *testing.T) {
	e := newTestEngine()

	// Absent years-in-role counts as zero; no promotion → 0.7 factor.
	got := e.scoreProgression(&Input{}, nil)
	if math.Abs(got-2.8) > 0.001 {
		t.Fatalf("scoreProgression default = %v, want 2.8", got)
	}

	// Five years without promotion saturates the years factor.
	got = e.scoreProgression(&Input{YearsInRole: intPtr(5)}, nil)
	if math.Abs(got-8.8) > 0.001 {
		t.Fatalf("scoreProgression(5y) = %v, want 8.8", got)
	}

	// A recent promotion lowers the risk.
	got = e.scoreProgression(&Input{YearsInRole: intPtr(5), PromotionReceived: true}, nil)
	if math.Abs(got-7.2) > 0.001 {
		t.Fatalf("scoreProgression(5y, promoted) = %v, want 7.2", got)
	}
}

func TestScoreTiming(t *testing.T) {
	e := newTestEngine()

	// Engineering trend 0.7 → (1.7/2) × 10.
	got := e.scoreTiming(nil, &marketContext{category: "engineering"})
	if math.Abs(got-8.5) > 0.001 {
		t.Fatalf("scoreTiming(engineering) = %v, want 8.5", got)
	}

	// Unknown categories use the default trend 0.3.
	got = e.scoreTiming(nil, &marketContext{category: "astronautics"})
	if math.Abs(got-6.5) > 0.001 {
		t.Fatalf("scoreTiming(unknown) = %v, want 6.5", got)
	}
}

func TestComponentsRespectCaps(t *testing.T) {
	e := newTestEngine()

	caps := map[string]float64{
		"market":      30,
		"experience":  20,
		"skills":      15,
		"company":     10,
		"progression": 10,
		"timing":      10,
	}

	extremes := []*Input{
		{JobTitle: "Engineer", Country: "USA", Industry: "technology", CompanySize: "large"},
		{JobTitle: "Engineer", Country: "India", Industry: "other", YearsExperience: 100, CompanySize: "small",
			Salary: floatPtr(0), YearsInRole: intPtr(50)},
		{JobTitle: "x", Country: "Atlantis", Industry: "piracy", YearsExperience: 0, CompanySize: "huge",
			Salary: floatPtr(1), Skills: "ai,ml,machine learning,kubernetes,rust,cybersecurity"},
	}

	for _, in := range extremes {
		category := e.CategorizeRole(in.JobTitle)
		tier := e.ExperienceTier(in.YearsExperience)
		median, currency := e.MarketMedian(category, tier, in.Country, in.Industry)
		mc := &marketContext{category: category, tier: tier, median: median, currency: currency}

		for _, c := range components {
			score := c.eval(e, in, mc)
			if score < 0 || score > caps[c.name] {
				t.Fatalf("component %s = %v out of [0, %v]", c.name, score, caps[c.name])
			}
		}
	}
}
