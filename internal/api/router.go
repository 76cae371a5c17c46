package api

import (
	"github.com/gorilla/mux"

	"github.com/clovehq/momtrack/internal/api/recovery"
	"github.com/clovehq/momtrack/internal/export"
	"github.com/clovehq/momtrack/internal/report"
	"github.com/clovehq/momtrack/internal/services"
	"github.com/clovehq/momtrack/internal/store"
)

// NewRouter creates the HTTP router with all API routes.
func NewRouter(
	meetings *services.MeetingService,
	directory *services.DirectoryService,
	builder *report.Builder,
	exporter *export.Exporter,
	st store.Store,
) *mux.Router {
	router := mux.NewRouter()

	// Global middlewares
	router.Use(recovery.Middleware)

	// Create handlers
	healthHandler := NewHealthHandler(st)
	meetingHandler := NewMeetingHandler(meetings, builder)
	exportHandler := NewExportHandler(meetings, exporter)
	directoryHandler := NewDirectoryHandler(directory)

	// Health endpoints
	router.HandleFunc("/api/health", healthHandler.CheckHealth).Methods("GET")
	router.HandleFunc("/api/health/db", healthHandler.CheckStorageHealth).Methods("GET")

	// Meeting endpoints
	router.HandleFunc("/api/meetings", meetingHandler.ListMeetings).Methods("GET")
	router.HandleFunc("/api/meetings", meetingHandler.UpsertMeeting).Methods("POST")
	router.HandleFunc("/api/meetings/{meetingId}", meetingHandler.GetMeeting).Methods("GET")
	router.HandleFunc("/api/meetings/{meetingId}/report", meetingHandler.GetReport).Methods("GET")
	router.HandleFunc("/api/meetings/{meetingId}/mail", meetingHandler.GetMail).Methods("GET")
	router.HandleFunc("/api/meetings/{meetingId}/export", exportHandler.ExportMeeting).Methods("POST")

	// Dashboard and archive endpoints
	router.HandleFunc("/api/dashboard", meetingHandler.GetDashboard).Methods("GET")
	router.HandleFunc("/api/months", meetingHandler.ListMonths).Methods("GET")
	router.HandleFunc("/api/exports/months/{month}", exportHandler.ExportMonth).Methods("POST")

	// Directory endpoints
	router.HandleFunc("/api/users", directoryHandler.ListUsers).Methods("GET")
	router.HandleFunc("/api/departments", directoryHandler.ListDepartments).Methods("GET")

	return router
}
