package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hrweb-ph/payroll-backend-go/internal/domain/employee"
	"github.com/hrweb-ph/payroll-backend-go/internal/handler/http/response"
	"github.com/shopspring/decimal"
)

type EmployeeHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	ListActive(w http.ResponseWriter, r *http.Request)
}

// Employees are provisioned upstream, so this handler only reads.
type employeeHandlerImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeHandler(employeeRepo employee.EmployeeRepository) EmployeeHandler {
	return &employeeHandlerImpl{employeeRepo: employeeRepo}
}

type employeeResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Department   *string         `json:"department"`
	JobTitle     *string         `json:"job_title"`
	PayType      string          `json:"pay_type"`
	BasicRate    decimal.Decimal `json:"basic_rate"`
	PayAllowance decimal.Decimal `json:"pay_allowance"`
	IsTaxable    bool            `json:"is_taxable"`
	IsActive     bool            `json:"is_active"`
}

func mapEmployeeToResponse(e employee.Employee) employeeResponse {
	return employeeResponse{
		ID:           e.ID,
		Name:         e.Name,
		Department:   e.Department,
		JobTitle:     e.JobTitle,
		PayType:      string(e.PayType),
		BasicRate:    e.BasicRate,
		PayAllowance: e.PayAllowance,
		IsTaxable:    e.IsTaxable,
		IsActive:     e.IsActive,
	}
}

func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	emp, err := h.employeeRepo.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, mapEmployeeToResponse(emp))
}

func (h *employeeHandlerImpl) ListActive(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeRepo.GetActive(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]employeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}

	response.Success(w, responses)
}
