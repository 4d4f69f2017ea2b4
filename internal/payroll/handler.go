package payroll

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/frahmantamala/hr-payroll/internal/transport"
	"github.com/frahmantamala/hr-payroll/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	CreatePayroll(dto PayrollDTO) (*Payroll, error)
	UpdatePayroll(id int64, dto PayrollDTO) (*Payroll, error)
	GetPayroll(id int64) (*Payroll, error)
	ListPayroll() ([]*ListRecord, *Summary, error)
	DeletePayroll(id int64) (*int64, error)
	Overview() ([]*OverviewRow, error)
	GetProjectPayroll(projectID int64) (*ProjectPayroll, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

func (h *Handler) ListPayroll(w http.ResponseWriter, r *http.Request) {
	records, summary, err := h.Service.ListPayroll()
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, "failed to list payroll")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"payroll_records": records,
		"summary":         summary,
	})
}

func (h *Handler) GetPayroll(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid payroll ID")
		return
	}

	p, err := h.Service.GetPayroll(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) CreatePayroll(w http.ResponseWriter, r *http.Request) {
	var dto PayrollDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.Service.CreatePayroll(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, p)
}

func (h *Handler) UpdatePayroll(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid payroll ID")
		return
	}

	var dto PayrollDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.Service.UpdatePayroll(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, p)
}

// DeletePayroll removes the record and echoes the project id it belonged to,
// so the client can navigate back to that project's payroll page.
func (h *Handler) DeletePayroll(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid payroll ID")
		return
	}

	projectID, err := h.Service.DeletePayroll(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "deleted",
		"project_id": projectID,
	})
}

func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Service.Overview()
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, "failed to build payroll overview")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"projects": rows})
}

func (h *Handler) ProjectPayroll(w http.ResponseWriter, r *http.Request) {
	projectID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid project ID")
		return
	}

	page, err := h.Service.GetProjectPayroll(projectID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, page)
}
