// Package api exposes the REST interface: domain analysis, health and a
// read-only view of the active scoring configuration. Handlers contain no
// scoring logic; they translate HTTP to the analyzer service and back.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/analyzer"
	"github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/cache"
	"github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/domain"
	"github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/validate"
)

// Handler holds dependencies for API handlers.
type Handler struct {
	svc     *analyzer.Service
	cache   cache.Cache
	cfg     *domain.Config
	version string
}

// NewHandler creates a new API handler.
func NewHandler(svc *analyzer.Service, resultCache cache.Cache, cfg *domain.Config, version string) *Handler {
	return &Handler{
		svc:     svc,
		cache:   resultCache,
		cfg:     cfg,
		version: version,
	}
}

// AnalyzeRequest is the request body for POST /analyze.
type AnalyzeRequest struct {
	Domain string `json:"domain"`
}

// Analyze handles POST /analyze. Status mapping: 200 for any completed
// analysis, 400 for an invalid domain, 422 for a schema violation, 500 for
// anything unexpected.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
			"error": "invalid JSON request body",
		})
		return
	}
	if strings.TrimSpace(req.Domain) == "" {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
			"error": "domain is required",
		})
		return
	}

	result, err := h.svc.Analyze(r.Context(), req.Domain)
	if err != nil {
		if errors.Is(err, validate.ErrInvalidDomain) {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error": err.Error(),
			})
			return
		}
		slog.Error("analysis failed", "domain", req.Domain, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "internal server error",
		})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// ActiveRulesResponse is the read-only view of the scoring configuration.
type ActiveRulesResponse struct {
	Weights            map[domain.RuleID]int `json:"weights"`
	Thresholds         domain.RiskThresholds `json:"thresholds"`
	SuspiciousKeywords []string              `json:"suspicious_keywords"`
	RiskyTLDs          []string              `json:"risky_tlds"`
	KeywordCap         int                   `json:"keyword_cap"`
}

// ActiveRules handles GET /config/rules.
func (h *Handler) ActiveRules(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ActiveRulesResponse{
		Weights:            h.cfg.RiskWeights.All(),
		Thresholds:         h.cfg.RiskThresholds,
		SuspiciousKeywords: h.cfg.SuspiciousKeywords,
		RiskyTLDs:          h.cfg.RiskyTLDs,
		KeywordCap:         h.cfg.KeywordCap,
	})
}

// Health returns server health status.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := "healthy"

	if h.cache != nil {
		if err := h.cache.Ping(r.Context()); err != nil {
			status = "degraded"
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":  status,
		"version": h.version,
	})
}

// Ready returns whether the server is ready to accept traffic.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"ready": "true",
	})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
