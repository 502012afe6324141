package payrollhandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"payrollms/internal/domain/payroll"
	"payrollms/internal/export"
	"payrollms/internal/transport/http/api"
	"payrollms/internal/transport/http/middleware"
	"payrollms/internal/transport/http/shared"
)

type Handler struct {
	Payroll *payroll.Service
}

func NewHandler(svc *payroll.Service) *Handler {
	return &Handler{Payroll: svc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Post("/generate", h.handleGenerate)
		r.Post("/generate-all", h.handleGenerateAll)
		r.Get("/export", h.handleExportRegister)
		r.Route("/{payrollID}", func(r chi.Router) {
			r.Get("/", h.handleGet)
			r.Get("/payslip", h.handlePayslip)
			r.Post("/approve", h.handleApprove)
			r.Post("/pay", h.handlePay)
		})
	})
}

type generateRequest struct {
	EmployeeID      string  `json:"employeeId"`
	Month           int     `json:"month"`
	Year            int     `json:"year"`
	OtherDeductions float64 `json:"otherDeductions"`
}

type generateAllRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

type payRequest struct {
	PaymentDate string `json:"paymentDate"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload generateRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "employee id is required")
	v.Period("month", payload.Month, "year", payload.Year)
	v.NonNegative("otherDeductions", payload.OtherDeductions)
	if v.Reject(w, reqID) {
		return
	}

	rec, err := h.Payroll.Generate(r.Context(), payload.EmployeeID, payload.Month, payload.Year, payload.OtherDeductions)
	if err != nil {
		h.failPayroll(w, err, reqID)
		return
	}
	api.Created(w, rec, reqID)
}

func (h *Handler) handleGenerateAll(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload generateAllRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	v.Period("month", payload.Month, "year", payload.Year)
	if v.Reject(w, reqID) {
		return
	}

	result, err := h.Payroll.GenerateAll(r.Context(), payload.Month, payload.Year)
	if err != nil {
		h.failPayroll(w, err, reqID)
		return
	}
	api.Success(w, result, reqID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	rec, err := h.Payroll.Get(r.Context(), chi.URLParam(r, "payrollID"))
	if err != nil {
		h.failPayroll(w, err, reqID)
		return
	}
	api.Success(w, rec, reqID)
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	payrollID := chi.URLParam(r, "payrollID")
	if err := h.Payroll.Approve(r.Context(), payrollID); err != nil {
		h.failPayroll(w, err, reqID)
		return
	}

	rec, err := h.Payroll.Get(r.Context(), payrollID)
	if err != nil {
		h.failPayroll(w, err, reqID)
		return
	}
	api.Success(w, rec, reqID)
}

func (h *Handler) handlePay(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload payRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
			return
		}
	}

	var paymentDate *time.Time
	if payload.PaymentDate != "" {
		v := shared.NewValidator()
		parsed, ok := v.Date("paymentDate", payload.PaymentDate)
		if v.Reject(w, reqID) {
			return
		}
		if ok {
			paymentDate = &parsed
		}
	}

	payrollID := chi.URLParam(r, "payrollID")
	if err := h.Payroll.MarkPaid(r.Context(), payrollID, paymentDate); err != nil {
		h.failPayroll(w, err, reqID)
		return
	}

	rec, err := h.Payroll.Get(r.Context(), payrollID)
	if err != nil {
		h.failPayroll(w, err, reqID)
		return
	}
	api.Success(w, rec, reqID)
}

func (h *Handler) handleExportRegister(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	month, year := shared.ParsePeriod(r)
	v := shared.NewValidator()
	v.Period("month", month, "year", year)
	if v.Reject(w, reqID) {
		return
	}

	rows, err := h.Payroll.Register(r.Context(), month, year)
	if err != nil {
		h.failPayroll(w, err, reqID)
		return
	}

	filename := fmt.Sprintf("payroll_register_%04d_%02d.csv", year, month)
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := export.WriteRegister(w, rows); err != nil {
		// headers are already out; nothing sensible left to send
		return
	}
}

func (h *Handler) handlePayslip(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	payrollID := chi.URLParam(r, "payrollID")
	rec, err := h.Payroll.Get(r.Context(), payrollID)
	if err != nil {
		h.failPayroll(w, err, reqID)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="payslip_`+payrollID+`.pdf"`)
	if err := export.WritePayslip(w, rec); err != nil {
		return
	}
}

func (h *Handler) failPayroll(w http.ResponseWriter, err error, reqID string) {
	switch {
	case errors.Is(err, payroll.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "payroll record not found", reqID)
	case errors.Is(err, payroll.ErrEmployeeNotFound):
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found or inactive", reqID)
	case errors.Is(err, payroll.ErrNoRoleAssigned):
		api.Fail(w, http.StatusConflict, "no_role", "employee has no role assigned", reqID)
	case errors.Is(err, payroll.ErrDuplicatePeriod):
		api.Fail(w, http.StatusConflict, "duplicate_period", "payroll already generated for this period", reqID)
	case errors.Is(err, payroll.ErrInvalidPeriod):
		api.Fail(w, http.StatusBadRequest, "invalid_period", "month must be between 1 and 12", reqID)
	case errors.Is(err, payroll.ErrNegativeDeduction):
		api.Fail(w, http.StatusBadRequest, "negative_deduction", "other deductions must be non-negative", reqID)
	default:
		api.Fail(w, http.StatusInternalServerError, "payroll_error", "payroll operation failed", reqID)
	}
}
