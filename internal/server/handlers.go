package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/fairpaycheck/fairpaycheck/internal/logger"
	"github.com/fairpaycheck/fairpaycheck/internal/scoring"
)

const (
	apiVersion          = "1.0"
	genericErrorMessage = "An error occurred while processing your request."
	maxBodyBytes        = 64 << 10
)

// handleScore runs one evaluation: decode the raw payload, validate the
// request shape, coerce the input, score it.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&raw); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	clientErr, err := s.schema.validate(raw)
	if err != nil {
		s.logger.Error("request validation failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, genericErrorMessage)
		return
	}
	if clientErr != "" {
		s.errorResponse(w, http.StatusBadRequest, clientErr)
		return
	}

	in, err := scoring.DecodeInput(raw)
	if err != nil {
		s.logger.Error("decoding score input failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, genericErrorMessage)
		return
	}

	result := s.engine.Evaluate(in)

	reqLogger := logger.WithRequestFields(s.logger, in.Country, in.Industry, in.CompanySize, in.SalaryProvided())
	reqLogger.Info("score calculated",
		zap.Int("score", result.Score),
		zap.String("verdict_code", result.VerdictCode),
		zap.String("confidence", result.Confidence),
	)

	s.jsonResponse(w, http.StatusOK, result)
}

// handleMetadata serves the enumerations and suggestion tables a client
// needs to build its form.
func (s *Server) handleMetadata(w http.ResponseWriter, _ *http.Request) {
	data := s.engine.Data()

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"data_version":           data.Version,
		"data_updated":           data.UpdatedDisplay,
		"countries":              data.Countries,
		"industries":             data.Industries,
		"company_sizes":          data.CompanySizes,
		"country_currencies":     data.Currencies,
		"role_skill_suggestions": data.RoleSkillSuggestions,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
