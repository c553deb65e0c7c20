package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"bike-rental-billing/internal/billing"
	"bike-rental-billing/internal/logger"
	"bike-rental-billing/internal/service"

	"github.com/gorilla/mux"
)

const maxBodyBytes = 1 << 20

// QuoteHandler serves the pricing API
type QuoteHandler struct {
	pricingSvc service.PricingService
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(pricingSvc service.PricingService) *QuoteHandler {
	return &QuoteHandler{
		pricingSvc: pricingSvc,
	}
}

type planQuoteRequest struct {
	Plan            string `json:"plan"`
	DurationSeconds int64  `json:"duration_seconds"`
}

type singleQuoteRequest struct {
	DurationSeconds int64 `json:"duration_seconds"`
}

type groupQuoteRequest struct {
	DurationsSeconds []int64 `json:"durations_seconds"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// HandleListPlans handles GET /api/v1/plans
func (h *QuoteHandler) HandleListPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.pricingSvc.ListPlans(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plans)
}

// HandlePlanQuote handles POST /api/v1/quotes/plan
func (h *QuoteHandler) HandlePlanQuote(w http.ResponseWriter, r *http.Request) {
	var req planQuoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Plan == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "plan is required"})
		return
	}

	quote, err := h.pricingSvc.PlanCost(r.Context(), req.Plan, req.DurationSeconds)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

// HandleSingleQuote handles POST /api/v1/quotes/single
func (h *QuoteHandler) HandleSingleQuote(w http.ResponseWriter, r *http.Request) {
	var req singleQuoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	quote, err := h.pricingSvc.SingleRentalBestPrice(r.Context(), req.DurationSeconds)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

// HandleGroupQuote handles POST /api/v1/quotes/group
func (h *QuoteHandler) HandleGroupQuote(w http.ResponseWriter, r *http.Request) {
	var req groupQuoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	quote, err := h.pricingSvc.GroupRentalBestPrice(r.Context(), req.DurationsSeconds)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

// HandleHealth handles GET /healthz
func (h *QuoteHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return false
	}
	return true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, billing.ErrInvalidDuration), errors.Is(err, service.ErrDurationOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUnknownPlan):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error("Quote request failed", "error", err)
		writeJSON(w, status, errorResponse{Error: "internal error"})
		return
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to write response", "error", err)
	}
}

// RegisterQuoteRoutes registers the pricing HTTP endpoints
func RegisterQuoteRoutes(router *mux.Router, pricingSvc service.PricingService) {
	handler := NewQuoteHandler(pricingSvc)
	router.HandleFunc("/healthz", handler.HandleHealth).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/plans", handler.HandleListPlans).Methods("GET")
	api.HandleFunc("/quotes/plan", handler.HandlePlanQuote).Methods("POST")
	api.HandleFunc("/quotes/single", handler.HandleSingleQuote).Methods("POST")
	api.HandleFunc("/quotes/group", handler.HandleGroupQuote).Methods("POST")
}
