package export

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clovehq/momtrack/internal/model"
	"github.com/clovehq/momtrack/internal/normalize"
	"github.com/clovehq/momtrack/internal/report"
	"github.com/clovehq/momtrack/internal/seed"
)

type failingRenderer struct{}

func (failingRenderer) Render([]string) ([]byte, error) { return nil, errors.New("rasterizer down") }
func (failingRenderer) Ext() string                     { return ".pdf" }

func testMeeting(t *testing.T) model.Meeting {
	t.Helper()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return normalize.New(seed.Users()).NormalizeAll(seed.Meetings(), now)[0]
}

func TestWrapRespectsWidth(t *testing.T) {
	long := strings.Repeat("word ", 40)
	for _, row := range wrap(strings.TrimSpace(long), PageWidth) {
		assert.LessOrEqual(t, len(row), PageWidth)
	}
}

func TestWrapMeasuresRunesNotBytes(t *testing.T) {
	// multi-byte bullet: 90 runes but 92 bytes must stay on one row
	line := "• " + strings.Repeat("a", PageWidth-2)
	rows := wrap(line, PageWidth)
	require.Len(t, rows, 1)

	wide := strings.Repeat("•", PageWidth+1)
	rows = wrap(wide, PageWidth)
	require.Len(t, rows, 2)
	assert.Equal(t, PageWidth, utf8.RuneCountInString(rows[0]))
}

func TestWrapUnbreakableRun(t *testing.T) {
	rows := wrap(strings.Repeat("x", PageWidth*2+5), PageWidth)
	require.Len(t, rows, 3)
	assert.Len(t, rows[0], PageWidth)
}

func TestPaginateAlwaysYieldsAPage(t *testing.T) {
	assert.Len(t, Paginate(""), 1)
}

func TestPaginateSplitsAtPageHeight(t *testing.T) {
	text := strings.TrimSuffix(strings.Repeat("line\n", PageHeight+1), "\n")
	pages := Paginate(text)
	require.Len(t, pages, 2)
	assert.Equal(t, PageHeight, strings.Count(pages[0], "\n")+1)
}

func TestExportMeetingWritesDocument(t *testing.T) {
	dir := t.TempDir()
	e := New(report.NewBuilder(), nil, dir)

	res, err := e.ExportMeeting(testMeeting(t))
	require.NoError(t, err)
	assert.False(t, res.FellBack)
	assert.True(t, strings.HasSuffix(res.Path, "Meeting-Q4_Sprint_Planning.txt"), res.Path)
	assert.GreaterOrEqual(t, res.Pages, 1)

	data, err := os.ReadFile(res.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "MINUTES OF MEETING (MoM)")
	assert.Contains(t, string(data), "Dear Team,")
}

func TestExportFallsBackToTextOnRendererFailure(t *testing.T) {
	dir := t.TempDir()
	e := New(report.NewBuilder(), failingRenderer{}, dir)

	res, err := e.ExportMeeting(testMeeting(t))
	require.NoError(t, err)
	assert.True(t, res.FellBack)
	assert.Equal(t, ManualAttachNote, res.Note)
	assert.True(t, strings.HasSuffix(res.Path, ".txt"), res.Path)

	_, err = os.Stat(res.Path)
	require.NoError(t, err)
}

func TestExportMonthBundlesMeetings(t *testing.T) {
	dir := t.TempDir()
	e := New(report.NewBuilder(), nil, dir)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	ms := normalize.New(seed.Users()).NormalizeAll(seed.Meetings(), now)

	res, err := e.ExportMonth(model.MonthBucket{Key: "2024-12", Label: "December 2024", Meetings: ms})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(res.Path, "Meetings-December_2024.txt"), res.Path)
	assert.GreaterOrEqual(t, res.Pages, len(ms))

	data, err := os.ReadFile(res.Path)
	require.NoError(t, err)
	for _, m := range ms {
		assert.Contains(t, string(data), "Meeting ID: "+m.ID)
	}
}

func TestExportEmptyMonthStillWritesFile(t *testing.T) {
	dir := t.TempDir()
	e := New(report.NewBuilder(), nil, dir)

	res, err := e.ExportMonth(model.MonthBucket{Key: "2030-01", Label: "January 2030"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Pages)
}
