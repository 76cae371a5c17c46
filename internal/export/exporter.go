// Package export orchestrates document exports: it builds the report
// text, paginates it, hands the pages to a renderer, and writes the
// result to the export directory. A failing renderer degrades to the
// plain-text fallback with manual-attach instructions rather than
// failing the whole operation; only a failure in the fallback path
// surfaces as an error.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/clovehq/momtrack/internal/model"
	"github.com/clovehq/momtrack/internal/report"
)

// ManualAttachNote is appended to share/mail bodies when the document
// could not be produced by the primary renderer and was downloaded
// instead of attached automatically.
const ManualAttachNote = "IMPORTANT:\n" +
	"The meeting document has been downloaded to your device.\n" +
	"Please attach it manually before sending this email."

// Result reports where an export landed and whether the fallback
// renderer was used.
type Result struct {
	Path     string `json:"path"`
	Pages    int    `json:"pages"`
	FellBack bool   `json:"fellBack"`
	Note     string `json:"note,omitempty"`
}

// Exporter writes rendered documents for single meetings and month
// batches.
type Exporter struct {
	builder  *report.Builder
	renderer Renderer
	outDir   string
}

// New creates an exporter. renderer may be nil, in which case the
// bundled text renderer is used directly (no fallback step possible
// beyond it).
func New(b *report.Builder, renderer Renderer, outDir string) *Exporter {
	if renderer == nil {
		renderer = TextRenderer{}
	}
	return &Exporter{builder: b, renderer: renderer, outDir: outDir}
}

// pageHeader is the banner printed above each meeting's report in the
// rendered document.
func (e *Exporter) pageHeader(m model.Meeting) string {
	rule := strings.Repeat("-", PageWidth)
	title := "MINUTES OF MEETING (MoM)"
	pad := (PageWidth - len(title)) / 2
	return strings.Repeat(" ", pad) + title + "\n" +
		fmt.Sprintf("Reference Number: %s | Meeting ID: %s", e.builder.ReferenceNo(m), m.ID) + "\n" +
		rule
}

func (e *Exporter) meetingPages(m model.Meeting) []string {
	return Paginate(e.pageHeader(m) + "\n" + e.builder.Build(m))
}

// ExportMeeting renders one meeting to {Filename}{ext} in the export
// directory.
func (e *Exporter) ExportMeeting(m model.Meeting) (Result, error) {
	return e.write(e.builder.Filename(m), e.meetingPages(m))
}

// ExportMonth renders every meeting in the bucket, one page group per
// meeting, into a single {MonthFilename}{ext} document.
func (e *Exporter) ExportMonth(bucket model.MonthBucket) (Result, error) {
	var pages []string
	for _, m := range bucket.Meetings {
		pages = append(pages, e.meetingPages(m)...)
	}
	if len(pages) == 0 {
		pages = []string{""}
	}
	return e.write(e.builder.MonthFilename(bucket.Key), pages)
}

func (e *Exporter) write(base string, pages []string) (Result, error) {
	job := uuid.NewString()

	data, err := e.renderer.Render(pages)
	ext := e.renderer.Ext()
	fellBack := false
	note := ""
	if err != nil {
		log.Warn().Err(err).Str("job", job).Msg("document renderer failed, falling back to plain text")
		fb := TextRenderer{}
		data, err = fb.Render(pages)
		if err != nil {
			return Result{}, fmt.Errorf("render fallback: %w", err)
		}
		ext = fb.Ext()
		fellBack = true
		note = ManualAttachNote
	}

	path := filepath.Join(e.outDir, base+ext)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return Result{}, fmt.Errorf("write export: %w", err)
	}

	log.Info().Str("job", job).Str("path", path).Int("pages", len(pages)).Bool("fallback", fellBack).Msg("export written")
	return Result{Path: path, Pages: len(pages), FellBack: fellBack, Note: note}, nil
}
