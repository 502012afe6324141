package corehandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"payrollms/internal/domain/department"
	"payrollms/internal/domain/employee"
	"payrollms/internal/domain/role"
	"payrollms/internal/transport/http/api"
	"payrollms/internal/transport/http/middleware"
	"payrollms/internal/transport/http/shared"
)

// Handler serves the organizational entities: departments, roles and
// employees.
type Handler struct {
	Departments *department.Service
	Roles       *role.Service
	Employees   *employee.Service
}

func NewHandler(departments *department.Service, roles *role.Service, employees *employee.Service) *Handler {
	return &Handler{Departments: departments, Roles: roles, Employees: employees}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/departments", func(r chi.Router) {
		r.Get("/", h.handleListDepartments)
		r.Post("/", h.handleCreateDepartment)
		r.Route("/{departmentID}", func(r chi.Router) {
			r.Get("/", h.handleGetDepartment)
			r.Patch("/", h.handleUpdateDepartment)
			r.Delete("/", h.handleDeleteDepartment)
		})
	})
	r.Route("/roles", func(r chi.Router) {
		r.Get("/", h.handleListRoles)
		r.Post("/", h.handleCreateRole)
		r.Route("/{roleID}", func(r chi.Router) {
			r.Get("/", h.handleGetRole)
			r.Patch("/", h.handleUpdateRole)
			r.Delete("/", h.handleDeleteRole)
		})
	})
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleListEmployees)
		r.Get("/search", h.handleSearchEmployees)
		r.Post("/", h.handleCreateEmployee)
		r.Route("/{employeeID}", func(r chi.Router) {
			r.Get("/", h.handleGetEmployee)
			r.Patch("/", h.handleUpdateEmployee)
			r.Post("/deactivate", h.handleDeactivateEmployee)
			r.Post("/activate", h.handleActivateEmployee)
		})
	})
}

func idParam(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil && id > 0
}

// --- departments ---

type departmentRequest struct {
	Name        string  `json:"name"`
	Code        string  `json:"code"`
	Budget      float64 `json:"budget"`
	Description string  `json:"description"`
}

type departmentUpdateRequest struct {
	Name        *string  `json:"name"`
	Code        *string  `json:"code"`
	Budget      *float64 `json:"budget"`
	Description *string  `json:"description"`
}

func (h *Handler) handleListDepartments(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	departments, err := h.Departments.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "department_list_failed", "failed to list departments", reqID)
		return
	}
	if departments == nil {
		departments = []department.Department{}
	}
	api.Success(w, departments, reqID)
}

func (h *Handler) handleCreateDepartment(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload departmentRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	v.Required("code", payload.Code, "code is required")
	v.NonNegative("budget", payload.Budget)
	if v.Reject(w, reqID) {
		return
	}

	id, err := h.Departments.Create(r.Context(), department.Department{
		Name:        payload.Name,
		Code:        payload.Code,
		Budget:      payload.Budget,
		Description: payload.Description,
	})
	if err != nil {
		h.failDepartment(w, err, reqID)
		return
	}

	dept, err := h.Departments.Get(r.Context(), id)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "department_read_failed", "failed to read department", reqID)
		return
	}
	api.Created(w, dept, reqID)
}

func (h *Handler) handleGetDepartment(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	id, ok := idParam(r, "departmentID")
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "department id must be a positive integer", reqID)
		return
	}

	dept, err := h.Departments.Get(r.Context(), id)
	if err != nil {
		h.failDepartment(w, err, reqID)
		return
	}
	api.Success(w, dept, reqID)
}

func (h *Handler) handleUpdateDepartment(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	id, ok := idParam(r, "departmentID")
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "department id must be a positive integer", reqID)
		return
	}

	var payload departmentUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	if payload.Budget != nil {
		v.NonNegative("budget", *payload.Budget)
	}
	if v.Reject(w, reqID) {
		return
	}

	err := h.Departments.Update(r.Context(), id, department.UpdateFields{
		Name:        payload.Name,
		Code:        payload.Code,
		Budget:      payload.Budget,
		Description: payload.Description,
	})
	if err != nil {
		h.failDepartment(w, err, reqID)
		return
	}

	dept, err := h.Departments.Get(r.Context(), id)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "department_read_failed", "failed to read department", reqID)
		return
	}
	api.Success(w, dept, reqID)
}

func (h *Handler) handleDeleteDepartment(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	id, ok := idParam(r, "departmentID")
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "department id must be a positive integer", reqID)
		return
	}

	if err := h.Departments.Delete(r.Context(), id); err != nil {
		h.failDepartment(w, err, reqID)
		return
	}
	api.Success(w, map[string]any{"deleted": true}, reqID)
}

func (h *Handler) failDepartment(w http.ResponseWriter, err error, reqID string) {
	switch {
	case errors.Is(err, department.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "department not found", reqID)
	case errors.Is(err, department.ErrNameTaken):
		api.Fail(w, http.StatusConflict, "name_taken", "department name already exists", reqID)
	case errors.Is(err, department.ErrCodeTaken):
		api.Fail(w, http.StatusConflict, "code_taken", "department code already exists", reqID)
	case errors.Is(err, department.ErrHasEmployees):
		api.Fail(w, http.StatusConflict, "has_employees", "department still has employees assigned", reqID)
	case errors.Is(err, department.ErrNoFields):
		api.Fail(w, http.StatusBadRequest, "no_fields", "no update fields provided", reqID)
	default:
		api.Fail(w, http.StatusInternalServerError, "department_error", "department operation failed", reqID)
	}
}

// --- roles ---

type roleRequest struct {
	Title              string  `json:"title"`
	BaseSalary         float64 `json:"baseSalary"`
	HousingAllowance   float64 `json:"housingAllowance"`
	TransportAllowance float64 `json:"transportAllowance"`
	MedicalAllowance   float64 `json:"medicalAllowance"`
	OtherAllowance     float64 `json:"otherAllowance"`
	Description        string  `json:"description"`
}

type roleUpdateRequest struct {
	Title              *string  `json:"title"`
	BaseSalary         *float64 `json:"baseSalary"`
	HousingAllowance   *float64 `json:"housingAllowance"`
	TransportAllowance *float64 `json:"transportAllowance"`
	MedicalAllowance   *float64 `json:"medicalAllowance"`
	OtherAllowance     *float64 `json:"otherAllowance"`
	Description        *string  `json:"description"`
}

func (h *Handler) handleListRoles(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	roles, err := h.Roles.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "role_list_failed", "failed to list roles", reqID)
		return
	}
	if roles == nil {
		roles = []role.Role{}
	}
	api.Success(w, roles, reqID)
}

func (h *Handler) handleCreateRole(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload roleRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	v.Required("title", payload.Title, "title is required")
	v.NonNegative("baseSalary", payload.BaseSalary)
	v.NonNegative("housingAllowance", payload.HousingAllowance)
	v.NonNegative("transportAllowance", payload.TransportAllowance)
	v.NonNegative("medicalAllowance", payload.MedicalAllowance)
	v.NonNegative("otherAllowance", payload.OtherAllowance)
	if v.Reject(w, reqID) {
		return
	}

	id, err := h.Roles.Create(r.Context(), role.Role{
		Title:              payload.Title,
		BaseSalary:         payload.BaseSalary,
		HousingAllowance:   payload.HousingAllowance,
		TransportAllowance: payload.TransportAllowance,
		MedicalAllowance:   payload.MedicalAllowance,
		OtherAllowance:     payload.OtherAllowance,
		Description:        payload.Description,
	})
	if err != nil {
		h.failRole(w, err, reqID)
		return
	}

	created, err := h.Roles.Get(r.Context(), id)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "role_read_failed", "failed to read role", reqID)
		return
	}
	api.Created(w, created, reqID)
}

func (h *Handler) handleGetRole(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	id, ok := idParam(r, "roleID")
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "role id must be a positive integer", reqID)
		return
	}

	found, err := h.Roles.Get(r.Context(), id)
	if err != nil {
		h.failRole(w, err, reqID)
		return
	}
	api.Success(w, found, reqID)
}

func (h *Handler) handleUpdateRole(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	id, ok := idParam(r, "roleID")
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "role id must be a positive integer", reqID)
		return
	}

	var payload roleUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	for field, value := range map[string]*float64{
		"baseSalary":         payload.BaseSalary,
		"housingAllowance":   payload.HousingAllowance,
		"transportAllowance": payload.TransportAllowance,
		"medicalAllowance":   payload.MedicalAllowance,
		"otherAllowance":     payload.OtherAllowance,
	} {
		if value != nil {
			v.NonNegative(field, *value)
		}
	}
	if v.Reject(w, reqID) {
		return
	}

	err := h.Roles.Update(r.Context(), id, role.UpdateFields{
		Title:              payload.Title,
		BaseSalary:         payload.BaseSalary,
		HousingAllowance:   payload.HousingAllowance,
		TransportAllowance: payload.TransportAllowance,
		MedicalAllowance:   payload.MedicalAllowance,
		OtherAllowance:     payload.OtherAllowance,
		Description:        payload.Description,
	})
	if err != nil {
		h.failRole(w, err, reqID)
		return
	}

	updated, err := h.Roles.Get(r.Context(), id)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "role_read_failed", "failed to read role", reqID)
		return
	}
	api.Success(w, updated, reqID)
}

func (h *Handler) handleDeleteRole(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	id, ok := idParam(r, "roleID")
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "role id must be a positive integer", reqID)
		return
	}

	if err := h.Roles.Delete(r.Context(), id); err != nil {
		h.failRole(w, err, reqID)
		return
	}
	api.Success(w, map[string]any{"deleted": true}, reqID)
}

func (h *Handler) failRole(w http.ResponseWriter, err error, reqID string) {
	switch {
	case errors.Is(err, role.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "role not found", reqID)
	case errors.Is(err, role.ErrTitleTaken):
		api.Fail(w, http.StatusConflict, "title_taken", "role title already exists", reqID)
	case errors.Is(err, role.ErrHasEmployees):
		api.Fail(w, http.StatusConflict, "has_employees", "role still has employees assigned", reqID)
	case errors.Is(err, role.ErrNoFields):
		api.Fail(w, http.StatusBadRequest, "no_fields", "no update fields provided", reqID)
	default:
		api.Fail(w, http.StatusInternalServerError, "role_error", "role operation failed", reqID)
	}
}

// --- employees ---

type employeeRequest struct {
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	DateOfBirth  string  `json:"dateOfBirth"`
	DateJoined   string  `json:"dateJoined"`
	RoleID       *int64  `json:"roleId"`
	DepartmentID *int64  `json:"departmentId"`
	BankAccount  string  `json:"bankAccount"`
	BankName     string  `json:"bankName"`
}

type employeeUpdateRequest struct {
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	Phone        *string `json:"phone"`
	DateOfBirth  *string `json:"dateOfBirth"`
	DateJoined   *string `json:"dateJoined"`
	RoleID       *int64  `json:"roleId"`
	DepartmentID *int64  `json:"departmentId"`
	BankAccount  *string `json:"bankAccount"`
	BankName     *string `json:"bankName"`
}

func (h *Handler) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	page := shared.ParsePagination(r, 0, 500)
	filter := employee.Filter{Limit: page.Limit, Offset: page.Offset}
	if raw := r.URL.Query().Get("active"); raw != "" {
		filter.ActiveOnly = raw == "true" || raw == "1"
	}
	if raw := r.URL.Query().Get("department"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			filter.DepartmentID = &id
		}
	}
	if raw := r.URL.Query().Get("role"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			filter.RoleID = &id
		}
	}

	employees, err := h.Employees.List(r.Context(), filter)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_list_failed", "failed to list employees", reqID)
		return
	}
	if employees == nil {
		employees = []employee.Employee{}
	}
	api.Success(w, employees, reqID)
}

func (h *Handler) handleSearchEmployees(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	term := strings.TrimSpace(r.URL.Query().Get("q"))
	if term == "" {
		api.Fail(w, http.StatusBadRequest, "missing_term", "query parameter q is required", reqID)
		return
	}

	employees, err := h.Employees.Search(r.Context(), term)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_search_failed", "failed to search employees", reqID)
		return
	}
	if employees == nil {
		employees = []employee.Employee{}
	}
	api.Success(w, employees, reqID)
}

func (h *Handler) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload employeeRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	v.Required("firstName", payload.FirstName, "first name is required")
	v.Required("lastName", payload.LastName, "last name is required")
	v.Required("email", payload.Email, "email is required")
	v.Email("email", payload.Email)
	v.Required("dateJoined", payload.DateJoined, "date joined is required")

	var dateJoined time.Time
	if payload.DateJoined != "" {
		dateJoined, _ = v.Date("dateJoined", payload.DateJoined)
	}
	var dateOfBirth *time.Time
	if payload.DateOfBirth != "" {
		if parsed, ok := v.Date("dateOfBirth", payload.DateOfBirth); ok {
			dateOfBirth = &parsed
		}
	}
	if v.Reject(w, reqID) {
		return
	}

	employeeID, err := h.Employees.Create(r.Context(), employee.Employee{
		FirstName:    payload.FirstName,
		LastName:     payload.LastName,
		Email:        payload.Email,
		Phone:        payload.Phone,
		DateOfBirth:  dateOfBirth,
		DateJoined:   dateJoined,
		RoleID:       payload.RoleID,
		DepartmentID: payload.DepartmentID,
		BankAccount:  payload.BankAccount,
		BankName:     payload.BankName,
	})
	if err != nil {
		h.failEmployee(w, err, reqID)
		return
	}

	created, err := h.Employees.Get(r.Context(), employeeID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_read_failed", "failed to read employee", reqID)
		return
	}
	api.Created(w, created, reqID)
}

func (h *Handler) handleGetEmployee(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	emp, err := h.Employees.Get(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		h.failEmployee(w, err, reqID)
		return
	}
	api.Success(w, emp, reqID)
}

func (h *Handler) handleUpdateEmployee(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload employeeUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	fields := employee.UpdateFields{
		FirstName:    payload.FirstName,
		LastName:     payload.LastName,
		Phone:        payload.Phone,
		RoleID:       payload.RoleID,
		DepartmentID: payload.DepartmentID,
		BankAccount:  payload.BankAccount,
		BankName:     payload.BankName,
	}
	if payload.DateOfBirth != nil {
		if parsed, ok := v.Date("dateOfBirth", *payload.DateOfBirth); ok {
			fields.DateOfBirth = &parsed
		}
	}
	if payload.DateJoined != nil {
		if parsed, ok := v.Date("dateJoined", *payload.DateJoined); ok {
			fields.DateJoined = &parsed
		}
	}
	if v.Reject(w, reqID) {
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	if err := h.Employees.Update(r.Context(), employeeID, fields); err != nil {
		h.failEmployee(w, err, reqID)
		return
	}

	updated, err := h.Employees.Get(r.Context(), employeeID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_read_failed", "failed to read employee", reqID)
		return
	}
	api.Success(w, updated, reqID)
}

func (h *Handler) handleDeactivateEmployee(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	if err := h.Employees.Deactivate(r.Context(), chi.URLParam(r, "employeeID")); err != nil {
		h.failEmployee(w, err, reqID)
		return
	}
	api.Success(w, map[string]any{"active": false}, reqID)
}

func (h *Handler) handleActivateEmployee(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	if err := h.Employees.Activate(r.Context(), chi.URLParam(r, "employeeID")); err != nil {
		h.failEmployee(w, err, reqID)
		return
	}
	api.Success(w, map[string]any{"active": true}, reqID)
}

func (h *Handler) failEmployee(w http.ResponseWriter, err error, reqID string) {
	switch {
	case errors.Is(err, employee.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", reqID)
	case errors.Is(err, employee.ErrEmailTaken):
		api.Fail(w, http.StatusConflict, "email_taken", "email already exists", reqID)
	case errors.Is(err, employee.ErrNoFields):
		api.Fail(w, http.StatusBadRequest, "no_fields", "no update fields provided", reqID)
	case errors.Is(err, employee.ErrIDGenerationFailed):
		api.Fail(w, http.StatusConflict, "id_collision", "employee id generation failed, retry", reqID)
	default:
		api.Fail(w, http.StatusBadRequest, "employee_error", err.Error(), reqID)
	}
}
