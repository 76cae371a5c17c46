package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clovehq/momtrack/internal/events"
	"github.com/clovehq/momtrack/internal/export"
	"github.com/clovehq/momtrack/internal/model"
	"github.com/clovehq/momtrack/internal/normalize"
	"github.com/clovehq/momtrack/internal/report"
	"github.com/clovehq/momtrack/internal/seed"
	"github.com/clovehq/momtrack/internal/services"
)

type memStore struct {
	recs []model.RawMeeting
	bus  *events.Bus
}

func (f *memStore) Load(ctx context.Context) ([]model.RawMeeting, error) {
	out := make([]model.RawMeeting, len(f.recs))
	copy(out, f.recs)
	return out, nil
}

func (f *memStore) Upsert(ctx context.Context, rec model.RawMeeting) error {
	for i := range f.recs {
		if f.recs[i].ID == rec.ID {
			f.recs[i] = rec
			return nil
		}
	}
	f.recs = append(f.recs, rec)
	return nil
}

func (f *memStore) Subscribe(fn func()) func() { return f.bus.Subscribe(fn) }
func (f *memStore) Close() error               { return nil }

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	st := &memStore{bus: events.NewBus()}
	users := seed.Users()
	svc := services.NewMeetingService(st, normalize.New(users), seed.Meetings(), zerolog.Nop()).
		WithClock(func() time.Time { return time.Date(2024, 12, 16, 12, 0, 0, 0, time.UTC) })
	directory := services.NewDirectoryService(users, seed.Departments())

	builder := report.NewBuilder()
	exporter := export.New(builder, nil, t.TempDir())

	srv := httptest.NewServer(NewRouter(svc, directory, builder, exporter, st))
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, out interface{}) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(t)

	var body map[string]string
	resp := getJSON(t, srv.URL+"/api/health", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", body["status"])

	resp = getJSON(t, srv.URL+"/api/health/db", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListMeetings(t *testing.T) {
	srv := newTestServer(t)

	var body struct {
		Count    int             `json:"count"`
		Meetings []model.Meeting `json:"meetings"`
	}
	resp := getJSON(t, srv.URL+"/api/meetings", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 5, body.Count)
	assert.Equal(t, "Q4 Sprint Planning", body.Meetings[0].Title)
}

func TestGetMeeting(t *testing.T) {
	srv := newTestServer(t)

	var m model.Meeting
	resp := getJSON(t, srv.URL+"/api/meetings/2", &m)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Design System Review", m.Title)

	resp = getJSON(t, srv.URL+"/api/meetings/unknown-id", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = getJSON(t, srv.URL+"/api/meetings/bad%20id!", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpsertMeeting(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/meetings", "application/json",
		strings.NewReader(`{"title":"Vendor Sync","attendees":["Alice","Bob"],"date":"2024-12-20"}`))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var m model.Meeting
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&m))
	assert.True(t, strings.HasPrefix(m.ID, "local-"), m.ID)
	assert.Equal(t, "Vendor Sync", m.Title)
	require.Len(t, m.Attendees, 2)
	assert.Equal(t, "local-att-0", m.Attendees[0].ID)

	// the new record shows up in the collection
	var body struct {
		Count int `json:"count"`
	}
	getJSON(t, srv.URL+"/api/meetings", &body)
	assert.Equal(t, 6, body.Count)
}

func TestUpsertMeetingRejectsInvalidJSON(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/meetings", "application/json", strings.NewReader(`{nope`))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetReportIsPlainText(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/meetings/1/report")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Dear Team,")
	assert.Contains(t, string(data), "Reference Number : AICCC/MOM/2024/12/15/1")
}

func TestGetMailDraft(t *testing.T) {
	srv := newTestServer(t)

	var body struct {
		Subject  string   `json:"subject"`
		Body     string   `json:"body"`
		CC       []string `json:"cc"`
		Filename string   `json:"filename"`
	}
	resp := getJSON(t, srv.URL+"/api/meetings/1/mail", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "MoM: Q4 Sprint Planning", body.Subject)
	assert.Equal(t, "Meeting-Q4_Sprint_Planning", body.Filename)
	assert.Contains(t, body.Body, "Regards,")
	assert.Contains(t, body.Body, "Please attach it manually")
	assert.Equal(t, []string{"engineering@organization.in", "aiccc@organization.in"}, body.CC)
}

func TestDashboardEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var d services.Dashboard
	resp := getJSON(t, srv.URL+"/api/dashboard", &d)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 5, d.TotalMeetings)
	assert.Len(t, d.TodaysMeetings, 1)
}

func TestMonthsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var body struct {
		Count  int                 `json:"count"`
		Months []model.MonthBucket `json:"months"`
	}
	resp := getJSON(t, srv.URL+"/api/months", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 1, body.Count)
	assert.Equal(t, "2024-12", body.Months[0].Key)
}

func TestExportEndpoints(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/meetings/1/export", "application/json", nil)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res export.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.True(t, strings.HasSuffix(res.Path, ".txt"), res.Path)

	resp2, err := http.Post(srv.URL+"/api/exports/months/2024-12", "application/json", nil)
	require.NoError(t, err)
	defer func() { _ = resp2.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp2.StatusCode)

	// malformed month keys are rejected before any lookup
	resp3, err := http.Post(srv.URL+"/api/exports/months/2024-13", "application/json", nil)
	require.NoError(t, err)
	defer func() { _ = resp3.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp3.StatusCode)

	resp4, err := http.Post(srv.URL+"/api/exports/months/2030-01", "application/json", nil)
	require.NoError(t, err)
	defer func() { _ = resp4.Body.Close() }()
	assert.Equal(t, http.StatusNotFound, resp4.StatusCode)
}

func TestDirectoryEndpoints(t *testing.T) {
	srv := newTestServer(t)

	var users struct {
		Count int          `json:"count"`
		Users []model.User `json:"users"`
	}
	resp := getJSON(t, srv.URL+"/api/users", &users)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 6, users.Count)
	assert.Equal(t, "Sarah Chen", users.Users[0].Name)

	var deps struct {
		Count int `json:"count"`
	}
	resp = getJSON(t, srv.URL+"/api/departments", &deps)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 5, deps.Count)
}
