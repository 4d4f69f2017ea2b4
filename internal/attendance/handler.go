package attendance

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/frahmantamala/hr-payroll/internal/transport"
	"github.com/frahmantamala/hr-payroll/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	ListForDate(date time.Time) ([]*Record, error)
	RecordAttendance(dto AttendanceDTO) (*Attendance, error)
	UpdateAttendance(id int64, dto AttendanceDTO) (*Attendance, error)
	DeleteAttendance(id int64) error
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

// ListAttendance handles GET /attendance?date=YYYY-MM-DD, defaulting to today.
func (h *Handler) ListAttendance(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		dateStr = time.Now().Format(time.DateOnly)
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "date must be formatted YYYY-MM-DD")
		return
	}

	records, err := h.Service.ListForDate(date)
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, "failed to list attendance")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"date":    dateStr,
		"records": records,
	})
}

func (h *Handler) RecordAttendance(w http.ResponseWriter, r *http.Request) {
	var dto AttendanceDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	att, err := h.Service.RecordAttendance(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, att)
}

func (h *Handler) UpdateAttendance(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid attendance ID")
		return
	}

	var dto AttendanceDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	att, err := h.Service.UpdateAttendance(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, att)
}

func (h *Handler) DeleteAttendance(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid attendance ID")
		return
	}

	if err := h.Service.DeleteAttendance(id); err != nil {
		h.WriteError(w, http.StatusInternalServerError, "failed to delete attendance record")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
