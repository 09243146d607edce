package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hrweb-ph/payroll-backend-go/internal/domain/summary"
	"github.com/hrweb-ph/payroll-backend-go/internal/handler/http/response"
)

type SummaryHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	Post(w http.ResponseWriter, r *http.Request)
	Lock(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type summaryHandlerImpl struct {
	summaryService summary.SummaryService
}

func NewSummaryHandler(summaryService summary.SummaryService) SummaryHandler {
	return &summaryHandlerImpl{summaryService: summaryService}
}

func (h *summaryHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req summary.GenerateSummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.summaryService.GenerateSummary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Period summary generated", result)
}

func (h *summaryHandlerImpl) Post(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Summary ID is required", nil)
		return
	}

	result, err := h.summaryService.PostSummary(r.Context(), id, actorID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Period summary posted", result)
}

func (h *summaryHandlerImpl) Lock(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Summary ID is required", nil)
		return
	}

	result, err := h.summaryService.LockSummary(r.Context(), id, actorID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Period summary locked", result)
}

func (h *summaryHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Summary ID is required", nil)
		return
	}

	result, err := h.summaryService.GetSummary(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *summaryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	filter := summary.SummaryFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Year:       queryParamInt(r, "year"),
		Month:      queryParamInt(r, "month"),
		PeriodType: queryParam(r, "period_type"),
		Status:     queryParam(r, "status"),
		Page:       page,
		Limit:      limit,
	}

	result, err := h.summaryService.ListSummaries(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Summaries, response.PageMeta(result.Page, result.Limit, result.TotalCount))
}
