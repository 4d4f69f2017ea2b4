package report

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/frahmantamala/hr-payroll/internal/auth"
	"github.com/frahmantamala/hr-payroll/internal/transport"
	"github.com/frahmantamala/hr-payroll/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	Generate(dto GenerateDTO, createdBy string) (*Report, error)
	ListReports() ([]*Report, error)
	View(id int64) (*Report, interface{}, error)
	Download(id int64) (*Document, error)
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

func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.Service.ListReports()
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, "failed to list reports")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"reports": reports})
}

func (h *Handler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	var dto GenerateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	createdBy := "Unknown"
	if sess, ok := auth.SessionFromContext(r.Context()); ok {
		createdBy = sess.Username
	}

	rep, err := h.Service.Generate(dto, createdBy)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, rep)
}

func (h *Handler) ViewReport(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid report ID")
		return
	}

	rep, payload, err := h.Service.View(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"report": rep,
		"data":   payload,
	})
}

// DownloadReport streams the report as a CSV attachment.
func (h *Handler) DownloadReport(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid report ID")
		return
	}

	doc, err := h.Service.Download(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename()))
	w.WriteHeader(http.StatusOK)

	if err := doc.WriteCSV(w); err != nil {
		h.Logger.Error("failed to stream report csv", "error", err, "report_id", id)
	}
}
