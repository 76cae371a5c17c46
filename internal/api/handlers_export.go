package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/clovehq/momtrack/internal/api/respond"
	"github.com/clovehq/momtrack/internal/api/validate"
	"github.com/clovehq/momtrack/internal/export"
	"github.com/clovehq/momtrack/internal/services"
)

// ExportHandler triggers document exports for single meetings and for
// whole month buckets.
type ExportHandler struct {
	svc      *services.MeetingService
	exporter *export.Exporter
}

func NewExportHandler(svc *services.MeetingService, exporter *export.Exporter) *ExportHandler {
	return &ExportHandler{svc: svc, exporter: exporter}
}

// ExportMeeting POST /api/meetings/{meetingId}/export
func (h *ExportHandler) ExportMeeting(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["meetingId"]
	if err := validate.MeetingID(id); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	m, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	res, err := h.exporter.ExportMeeting(*m)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, res)
}

// ExportMonth POST /api/exports/months/{month}
func (h *ExportHandler) ExportMonth(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["month"]
	if err := validate.MonthKey(key); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	bucket, err := h.svc.Month(r.Context(), key)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	res, err := h.exporter.ExportMonth(*bucket)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, res)
}
