package api

import (
	"net/http"

	"github.com/clovehq/momtrack/internal/api/respond"
	"github.com/clovehq/momtrack/internal/services"
)

// DirectoryHandler serves the fixed user and department directories.
type DirectoryHandler struct {
	svc *services.DirectoryService
}

func NewDirectoryHandler(svc *services.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{svc: svc}
}

// ListUsers GET /api/users
func (h *DirectoryHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users := h.svc.Users()
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"users": users, "count": len(users)})
}

// ListDepartments GET /api/departments
func (h *DirectoryHandler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	deps := h.svc.Departments()
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"departments": deps, "count": len(deps)})
}
