package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alquilerapp/rent-service/internal/models"
	"github.com/alquilerapp/rent-service/internal/repository"
	"github.com/alquilerapp/rent-service/internal/service"
	"github.com/sirupsen/logrus"
)

// Describer generates a plain-language description of a calculation.
type Describer interface {
	GenerateDescription(ctx context.Context, prompt string) (string, error)
}

// Handler is the thin HTTP envelope over the calculation core.
type Handler struct {
	svc *service.Service
	gen Describer
	log *logrus.Logger
}

// NewHandler initializes a new handler.
func NewHandler(svc *service.Service, gen Describer, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, gen: gen, log: log}
}

// Calculate handles POST /api/calculate.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		InitialAmount float64 `json:"initial_amount"`
		StartDate     string  `json:"start_date"`
		PeriodMonths  int     `json:"period_months"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.InitialAmount <= 0 {
		writeError(w, http.StatusBadRequest, "initial_amount must be positive")
		return
	}
	if body.PeriodMonths < 1 {
		writeError(w, http.StatusBadRequest, "period_months must be at least 1")
		return
	}
	startDate, err := models.ParseDate(body.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "start_date must be a YYYY-MM-DD date")
		return
	}

	input := models.CalculationInput{
		InitialAmount: body.InitialAmount,
		StartDate:     startDate,
		PeriodMonths:  body.PeriodMonths,
	}
	result, err := h.svc.CalculateRent(r.Context(), input)
	if err != nil {
		if errors.Is(err, repository.ErrUpstreamUnavailable) {
			h.log.Errorf("Calculation failed: %v", err)
			writeError(w, http.StatusBadGateway, "the price index provider is unavailable")
			return
		}
		h.log.Errorf("Calculation failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// IndexSeries handles GET /api/ipc. It serves the memoized series, acting
// as a same-origin proxy for the front-end chart.
func (h *Handler) IndexSeries(w http.ResponseWriter, r *http.Request) {
	series, err := h.svc.IndexSeries(r.Context())
	if err != nil {
		h.log.Errorf("IPC proxy failed: %v", err)
		writeError(w, http.StatusBadGateway, "the price index provider is unavailable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]models.IndexSeries{"data": series})
}

// Describe handles POST /api/describe.
func (h *Handler) Describe(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Prompt string `json:"prompt"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Prompt == "" {
		writeError(w, http.StatusBadRequest, "prompt is required")
		return
	}

	text, err := h.gen.GenerateDescription(r.Context(), body.Prompt)
	if err != nil {
		h.log.Errorf("Description generation failed: %v", err)
		writeError(w, http.StatusInternalServerError, "description generation failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"text": text})
}

// Health handles GET /healthz.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
