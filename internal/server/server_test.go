package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairpaycheck/fairpaycheck/internal/refdata"
	"github.com/fairpaycheck/fairpaycheck/internal/scoring"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	engine := scoring.New(refdata.Default(), nil)
	s, err := New(engine, nil, ":0")
	require.NoError(t, err)
	return s
}

func doJSON(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestScoreHappyPath(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/score", `{
		"job_title": "Senior Software Engineer",
		"country": "USA",
		"industry": "technology",
		"years_experience": 8,
		"company_size": "large",
		"skills": "Python,AWS,Kubernetes",
		"salary": 95000
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decodeBody(t, rec)
	assert.Equal(t, "1.0", body["version"])
	assert.Equal(t, "possibly_underpaid", body["verdict_code"])
	assert.Equal(t, "High", body["confidence"])
	assert.NotEmpty(t, body["verdict"])
	assert.NotEmpty(t, body["disclaimer"])
	assert.NotEmpty(t, body["data_updated"])

	score, ok := body["score"].(float64)
	require.True(t, ok, "score missing or not numeric")
	assert.GreaterOrEqual(t, score, 45.0)
	assert.Less(t, score, 70.0)

	reasons, ok := body["reasons"].([]any)
	require.True(t, ok)
	assert.Len(t, reasons, 3)

	salaryRange, ok := body["salary_range"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "USD", salaryRange["currency"])
	assert.Equal(t, "$126,000", salaryRange["formatted_min"])
	assert.Equal(t, "$154,000", salaryRange["formatted_max"])

	breakdown, ok := body["score_breakdown"].(map[string]any)
	require.True(t, ok)
	for _, key := range []string{"market", "experience", "skills", "company", "progression", "timing", "baseline"} {
		assert.Contains(t, breakdown, key)
	}

	debug, ok := body["debug"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "engineering", debug["role_category"])
	assert.Equal(t, "senior", debug["experience_level"])
	assert.InDelta(t, 140000.0, debug["market_median"], 0.5)
}

func TestScoreMissingSingleField(t *testing.T) {
	s := newTestServer(t)

	// industry left out entirely.
	rec := doJSON(t, s, http.MethodPost, "/api/v1/score", `{
		"job_title": "Engineer",
		"country": "USA",
		"years_experience": 5,
		"company_size": "medium"
	}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Missing required fields: industry", body["error"])
	assert.Equal(t, "1.0", body["version"])
}

func TestScoreMissingFieldsListedInOrder(t *testing.T) {
	s := newTestServer(t)

	// job_title blank counts as missing alongside the absent fields, and
	// the message lists them in the request-contract order.
	rec := doJSON(t, s, http.MethodPost, "/api/v1/score", `{
		"job_title": "",
		"country": "USA",
		"company_size": "medium"
	}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Missing required fields: job_title, industry, years_experience", body["error"])
}

func TestScoreBlankCountryIsMissingNotInvalid(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/score", `{
		"job_title": "Engineer",
		"country": "",
		"industry": "technology",
		"years_experience": 5,
		"company_size": "medium"
	}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Missing required fields: country", body["error"])
}

func TestScoreInvalidCountry(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/score", `{
		"job_title": "Engineer",
		"country": "Atlantis",
		"industry": "technology",
		"years_experience": 5,
		"company_size": "medium"
	}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	msg, ok := body["error"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(msg, "Invalid country. Must be one of: "), "got %q", msg)
	assert.Contains(t, msg, "USA")
	assert.Contains(t, msg, "India")
}

func TestScoreInvalidCompanySize(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/score", `{
		"job_title": "Engineer",
		"country": "USA",
		"industry": "technology",
		"years_experience": 5,
		"company_size": "gigantic"
	}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Invalid company_size. Must be one of: small, medium, large", body["error"])
}

func TestScoreMissingReportedBeforeEnum(t *testing.T) {
	s := newTestServer(t)

	// Both a missing field and an invalid enum value: the missing field
	// wins.
	rec := doJSON(t, s, http.MethodPost, "/api/v1/score", `{
		"job_title": "Engineer",
		"country": "Atlantis",
		"years_experience": 5,
		"company_size": "medium"
	}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Missing required fields: industry", body["error"])
}

func TestScoreInvalidJSON(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/score", `{"job_title": `)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Invalid JSON in request body", body["error"])
}

func TestScoreLooseFieldTypes(t *testing.T) {
	s := newTestServer(t)

	// Numeric fields arrive as strings; unparsable optionals degrade
	// instead of erroring.
	rec := doJSON(t, s, http.MethodPost, "/api/v1/score", `{
		"job_title": "Engineer",
		"country": "USA",
		"industry": "technology",
		"years_experience": "8",
		"company_size": "large",
		"salary": "about 95k"
	}`)

	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	// Salary did not parse, so confidence drops below High.
	assert.Equal(t, "Medium", body["confidence"])
	debug, ok := body["debug"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "senior", debug["experience_level"])
}

func TestScoreMethodNotAllowed(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/api/v1/score", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestMetadata(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/api/v1/metadata", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.NotEmpty(t, body["data_version"])
	assert.NotEmpty(t, body["data_updated"])

	countries, ok := body["countries"].([]any)
	require.True(t, ok)
	assert.NotEmpty(t, countries)
	first, ok := countries[0].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, first, "value")
	assert.Contains(t, first, "label")

	sizes, ok := body["company_sizes"].([]any)
	require.True(t, ok)
	assert.Len(t, sizes, 3)

	suggestions, ok := body["role_skill_suggestions"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, suggestions, "engineering")

	currencies, ok := body["country_currencies"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, currencies, "India")
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "ok", body["status"])
}
