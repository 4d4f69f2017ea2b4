package project

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
	ListProjects() ([]*Project, error)
	GetProject(id int64) (*Project, error)
	CreateProject(dto ProjectDTO) (*Project, error)
	UpdateProject(id int64, dto ProjectDTO) (*Project, error)
	EditProject(id int64, dto ProjectDTO) (*Project, error)
	DeleteProject(id int64) error
	GetRoster(projectID int64) ([]*RosterEmployee, error)
	GetAssignedIDs(projectID int64) ([]int64, error)
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

func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.Service.ListProjects()
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, "failed to list projects")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"projects": projects})
}

// GetProject returns one project with its assigned employee ids, for edit forms.
func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid project ID")
		return
	}

	p, err := h.Service.GetProject(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	assigned, err := h.Service.GetAssignedIDs(id)
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, "failed to load assignments")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"project":  p,
		"assigned": assigned,
	})
}

func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var dto ProjectDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.Service.CreateProject(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, p)
}

func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid project ID")
		return
	}

	var dto ProjectDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.Service.UpdateProject(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, p)
}

// EditProject updates fields and replaces the assignment roster.
func (h *Handler) EditProject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid project ID")
		return
	}

	var dto ProjectDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.Service.EditProject(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid project ID")
		return
	}

	if err := h.Service.DeleteProject(id); err != nil {
		h.WriteError(w, http.StatusInternalServerError, "failed to delete project")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// GetRoster handles GET /projects/{id}/employees as a JSON roster.
func (h *Handler) GetRoster(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid project ID")
		return
	}

	roster, err := h.Service.GetRoster(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, roster)
}
