package reportshandler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"payrollms/internal/domain/reports"
	"payrollms/internal/transport/http/api"
	"payrollms/internal/transport/http/middleware"
	"payrollms/internal/transport/http/shared"
)

type Handler struct {
	Reports *reports.Service
}

func NewHandler(svc *reports.Service) *Handler {
	return &Handler{Reports: svc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Get("/dashboard", h.handleDashboard)
		r.Get("/summary", h.handleSummary)
		r.Get("/top-earners", h.handleTopEarners)
		r.Get("/employees/{employeeID}/history", h.handleEmployeeHistory)
	})
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	dash, err := h.Reports.Dashboard(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "dashboard_failed", "failed to build dashboard", reqID)
		return
	}
	api.Success(w, dash, reqID)
}

// handleSummary returns the monthly summary together with the
// per-department breakdown.
func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	month, year := shared.ParsePeriod(r)
	summary, err := h.Reports.MonthlySummary(r.Context(), month, year)
	if err != nil {
		h.failReports(w, err, reqID)
		return
	}
	breakdown, err := h.Reports.DepartmentBreakdown(r.Context(), month, year)
	if err != nil {
		h.failReports(w, err, reqID)
		return
	}

	api.Success(w, map[string]any{
		"month":       month,
		"year":        year,
		"summary":     summary,
		"departments": breakdown,
	}, reqID)
}

func (h *Handler) handleTopEarners(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	month, year := shared.ParsePeriod(r)
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	earners, err := h.Reports.TopEarners(r.Context(), month, year, limit)
	if err != nil {
		h.failReports(w, err, reqID)
		return
	}
	api.Success(w, earners, reqID)
}

func (h *Handler) handleEmployeeHistory(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	hist, err := h.Reports.EmployeeHistory(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		h.failReports(w, err, reqID)
		return
	}
	api.Success(w, hist, reqID)
}

func (h *Handler) failReports(w http.ResponseWriter, err error, reqID string) {
	switch {
	case errors.Is(err, reports.ErrInvalidPeriod):
		api.Fail(w, http.StatusBadRequest, "invalid_period", "month and year query parameters are required", reqID)
	case errors.Is(err, reports.ErrEmployeeNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", reqID)
	default:
		api.Fail(w, http.StatusInternalServerError, "reports_error", "report generation failed", reqID)
	}
}
