package scoring

import (
	"math"

	"go.uber.org/zap"

	"github.com/fairpaycheck/fairpaycheck/internal/refdata"
)

const defaultCategory = refdata.DefaultCategory

// Engine evaluates score requests against an immutable reference dataset.
// It holds no mutable state, so a single Engine serves any number of
// concurrent requests.
type Engine struct {
	data   *refdata.Dataset
	logger *zap.Logger
}

// New creates an Engine over the given dataset. A nil logger is replaced
// with a no-op logger.
func New(data *refdata.Dataset, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{data: data, logger: logger}
}

// Data exposes the engine's reference dataset for read-only use by callers
// such as the metadata endpoint.
func (e *Engine) Data() *refdata.Dataset {
	return e.data
}

// SalaryRange is the suggested fair-pay band in local currency.
type SalaryRange struct {
	Min          float64 `json:"min"`
	Max          float64 `json:"max"`
	Currency     string  `json:"currency"`
	FormattedMin string  `json:"formatted_min"`
	FormattedMax string  `json:"formatted_max"`
}

// Breakdown carries the per-component sub-scores of a result, rounded to
// one decimal for serialization.
type Breakdown struct {
	Market      float64 `json:"market"`
	Experience  float64 `json:"experience"`
	Skills      float64 `json:"skills"`
	Company     float64 `json:"company"`
	Progression float64 `json:"progression"`
	Timing      float64 `json:"timing"`
	Baseline    float64 `json:"baseline"`
}

// Trace records how the request was classified, returned for debugging.
type Trace struct {
	RoleCategory    string  `json:"role_category"`
	ExperienceLevel string  `json:"experience_level"`
	MarketMedian    float64 `json:"market_median"`
}

// Result is the complete outcome of one evaluation. It is created once
// per request and never mutated or stored.
type Result struct {
	Version     string      `json:"version"`
	Score       int         `json:"score"`
	Verdict     string      `json:"verdict"`
	VerdictCode string      `json:"verdict_code"`
	Confidence  string      `json:"confidence"`
	SalaryRange SalaryRange `json:"salary_range"`
	Reasons     []string    `json:"reasons"`
	DataUpdated string      `json:"data_updated"`
	Disclaimer  string      `json:"disclaimer"`
	Breakdown   Breakdown   `json:"score_breakdown"`
	Debug       Trace       `json:"debug"`
}

// Evaluate runs the full scoring pipeline: classify the input, resolve the
// market median, run every score component in declaration order, then
// aggregate into the total score, verdict, confidence, fair-pay range and
// reasons. It never fails; every lookup degrades to a documented default.
func (e *Engine) Evaluate(in *Input) *Result {
	category := e.CategorizeRole(in.JobTitle)
	tier := e.ExperienceTier(in.YearsExperience)

	median, currency := e.MarketMedian(category, tier, in.Country, in.Industry)

	mc := &marketContext{
		category: category,
		tier:     tier,
		median:   median,
		currency: currency,
	}

	scores := make(map[string]float64, len(components))
	total := e.data.Weights.Baseline

	for _, c := range components {
		score := c.eval(e, in, mc)
		scores[c.name] = score
		total += score

		e.logger.Debug("score component",
			zap.String("name", c.name),
			zap.Float64("score", score),
		)
	}

	total = clamp(total, 0, 100)

	verdict, code := e.verdictFor(total)
	confidence := e.confidenceFor(in.SalaryProvided(), in.Country, category)

	minSalary, maxSalary := e.salaryRange(median, currency)

	e.logger.Debug("evaluation complete",
		zap.String("role_category", category),
		zap.String("experience_level", tier),
		zap.Float64("market_median", median),
		zap.Float64("total", total),
		zap.String("verdict_code", code),
	)

	return &Result{
		Version:     "1.0",
		Score:       int(math.Round(total)),
		Verdict:     verdict,
		VerdictCode: code,
		Confidence:  confidence,
		SalaryRange: SalaryRange{
			Min:          minSalary,
			Max:          maxSalary,
			Currency:     currency,
			FormattedMin: e.formatSalary(minSalary, in.Country),
			FormattedMax: e.formatSalary(maxSalary, in.Country),
		},
		Reasons:     e.generateReasons(scores, in),
		DataUpdated: e.data.UpdatedDisplay,
		Disclaimer:  e.data.Disclaimer,
		Breakdown: Breakdown{
			Market:      round1(scores["market"]),
			Experience:  round1(scores["experience"]),
			Skills:      round1(scores["skills"]),
			Company:     round1(scores["company"]),
			Progression: round1(scores["progression"]),
			Timing:      round1(scores["timing"]),
			Baseline:    e.data.Weights.Baseline,
		},
		Debug: Trace{
			RoleCategory:    category,
			ExperienceLevel: tier,
			MarketMedian:    math.Round(median),
		},
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
