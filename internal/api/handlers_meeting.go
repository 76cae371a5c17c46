// Package api is the HTTP transport: thin handlers over the application
// services, a mux router, and shared respond/recovery/validate helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/clovehq/momtrack/internal/api/respond"
	"github.com/clovehq/momtrack/internal/api/validate"
	"github.com/clovehq/momtrack/internal/export"
	"github.com/clovehq/momtrack/internal/model"
	"github.com/clovehq/momtrack/internal/report"
	"github.com/clovehq/momtrack/internal/services"
)

// MeetingHandler serves the meeting collection, the dashboard, the month
// archive, and the per-meeting report views.
type MeetingHandler struct {
	svc     *services.MeetingService
	builder *report.Builder
}

func NewMeetingHandler(svc *services.MeetingService, builder *report.Builder) *MeetingHandler {
	return &MeetingHandler{svc: svc, builder: builder}
}

// writeServiceError maps service errors onto HTTP status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		respond.WriteNotFound(w, err.Error())
	case errors.Is(err, model.ErrValidation):
		respond.WriteBadRequest(w, err.Error())
	case errors.Is(err, model.ErrConflict):
		respond.WriteError(w, http.StatusConflict, err.Error())
	default:
		respond.WriteInternalError(w, err.Error())
	}
}

// ListMeetings GET /api/meetings
func (h *MeetingHandler) ListMeetings(w http.ResponseWriter, r *http.Request) {
	ms, err := h.svc.Collection(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"meetings": ms, "count": len(ms)})
}

// UpsertMeeting POST /api/meetings
//
// The body is a raw meeting record; any subset of fields is accepted and
// missing ones are filled by normalization. A body without an id creates
// a new meeting.
func (h *MeetingHandler) UpsertMeeting(w http.ResponseWriter, r *http.Request) {
	var rec model.RawMeeting
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if rec.ID != "" {
		if err := validate.MeetingID(rec.ID); err != nil {
			respond.WriteBadRequest(w, err.Error())
			return
		}
	}
	out, err := h.svc.Upsert(r.Context(), rec)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// GetMeeting GET /api/meetings/{meetingId}
func (h *MeetingHandler) GetMeeting(w http.ResponseWriter, r *http.Request) {
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
	respond.WriteJSON(w, http.StatusOK, m)
}

// GetReport GET /api/meetings/{meetingId}/report
//
// Returns the formatted minutes document as plain text.
func (h *MeetingHandler) GetReport(w http.ResponseWriter, r *http.Request) {
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
	respond.WriteText(w, http.StatusOK, h.builder.Build(*m))
}

// GetMail GET /api/meetings/{meetingId}/mail
//
// Returns the pieces of a share-by-mail draft: subject, body, CC list,
// and the safe attachment filename. The document itself cannot ride in
// a mail draft, so the body carries the manual-attach instructions.
func (h *MeetingHandler) GetMail(w http.ResponseWriter, r *http.Request) {
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
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"subject":  h.builder.MailSubject(*m),
		"body":     h.builder.Build(*m) + "\n\n" + export.ManualAttachNote,
		"cc":       h.builder.CCForDepartment(m.Department),
		"filename": h.builder.Filename(*m),
	})
}

// GetDashboard GET /api/dashboard
func (h *MeetingHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Dashboard(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, d)
}

// ListMonths GET /api/months
func (h *MeetingHandler) ListMonths(w http.ResponseWriter, r *http.Request) {
	buckets, err := h.svc.Months(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"months": buckets, "count": len(buckets)})
}
