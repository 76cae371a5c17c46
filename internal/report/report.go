// Package report renders a canonical meeting into the plain-text Minutes
// of Meeting document. The same text is served for on-screen preview,
// share/mail bodies, and as the source for file export, and must stay
// byte-identical across those paths for the same meeting.
package report

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/clovehq/momtrack/internal/dates"
	"github.com/clovehq/momtrack/internal/model"
)

// Organization constants carried from the issuing office. Venue is a
// fixed literal in the document layout.
const (
	DefaultOrgName = "AICCC"
	DefaultVenue   = "AICCC Room, APCRDA Project Office, Lingayapalem"
)

const fallbackKeyPoint = "Timely follow-up required as per agreed timeline"

// Builder is a pure formatter: no state beyond configuration, no clock.
type Builder struct {
	OrgName string
	Venue   string
	// CC maps department name to the distribution list; unknown
	// departments fall back to the "General" entry.
	CC map[string][]string
}

// NewBuilder returns a Builder with the organization defaults and the
// department-wise distribution table.
func NewBuilder() *Builder {
	return &Builder{
		OrgName: DefaultOrgName,
		Venue:   DefaultVenue,
		CC: map[string][]string{
			"General":     {"aiccc@organization.in"},
			"Engineering": {"engineering@organization.in", "aiccc@organization.in"},
			"Planning":    {"planning@organization.in", "aiccc@organization.in"},
			"Finance":     {"finance@organization.in", "aiccc@organization.in"},
		},
	}
}

// CCForDepartment looks up the distribution list for a department,
// falling back to the General list for unknown or blank names. The
// result is never nil for a configured table.
func (b *Builder) CCForDepartment(dept string) []string {
	key := strings.TrimSpace(dept)
	if key == "" {
		key = "General"
	}
	list, ok := b.CC[key]
	if !ok {
		list = b.CC["General"]
	}
	out := make([]string, 0, len(list))
	for _, v := range list {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// ReferenceNo returns the stored reference number, or synthesizes
// {Org}/MOM/{yyyy}/{MM}/{dd}/{id}. The date component comes from the
// meeting date, falling back to the creation timestamp so the result is
// a pure function of the meeting.
func (b *Builder) ReferenceNo(m model.Meeting) string {
	if m.ReferenceNo != "" {
		return m.ReferenceNo
	}
	d, ok := dates.Parse(m.Date)
	if !ok {
		d, ok = dates.Parse(m.CreatedAt)
	}
	if !ok {
		d = time.Unix(0, 0).UTC()
	}
	return fmt.Sprintf("%s/MOM/%s/%s", b.OrgName, d.Format("2006/01/02"), m.ID)
}

// Build renders the full MoM document.
func (b *Builder) Build(m model.Meeting) string {
	dateStr := formatMeetingDate(m.Date)
	timeStr := formatMeetingTime(m.Time)

	attendees := attendeeNames(m)
	agenda := strings.TrimSpace(m.Agenda)
	meetingWith := compactFilled(m.MeetingWith)
	summaryPoints := compactFilled(m.SummaryPoints)
	keyPoints := compactFilled(m.KeyPoints)

	title := m.Title
	if title == "" {
		title = "Meeting"
	}
	department := m.Department
	if department == "" {
		department = "General"
	}
	preparedBy := strings.TrimSpace(m.PreparedBy)
	if preparedBy == "" {
		preparedBy = b.OrgName
	}

	statusText := "Pending Approval"
	approvedBy := "Pending Approval"
	if m.IsApproved {
		statusText = "Approved"
		approvedBy = "Approved Authority"
	}

	meetingWithLine := title
	if len(meetingWith) > 0 {
		meetingWithLine = strings.Join(meetingWith, ", ")
	}

	ccList := b.CCForDepartment(m.Department)
	ccLine := "Not specified"
	if len(ccList) > 0 {
		ccLine = strings.Join(ccList, ", ")
	}

	lines := []string{
		"Dear Team,",
		"",
		"Please find below the Minutes of Meeting (MoM) for your kind information and necessary action:",
		"",
		"Reference Number : " + b.ReferenceNo(m),
		"Meeting ID       : " + m.ID,
		"",
		"Meeting Title    : " + title,
		"Department       : " + department,
		"Status           : " + statusText,
		"",
		"Key Points:",
	}
	lines = append(lines, bullets(keyPoints)...)
	lines = append(lines,
		"",
		"Date             : "+dateStr,
		"Time             : "+timeStr,
		"Venue            : "+b.Venue,
		"Meeting With     : "+meetingWithLine,
		"",
		"CC (Department-wise): "+ccLine,
		"",
		"",
		"Participants:",
	)
	lines = append(lines, bullets(attendees)...)
	lines = append(lines,
		"",
		"",
		"Agenda:",
		orLine(agenda, "No specific agenda was documented."),
		"",
		"",
		"Action Items:",
		b.actionLines(m.ActionItems, keyPoints),
		"",
		"",
		"Summary Points:",
	)
	lines = append(lines, bullets(summaryPoints)...)
	lines = append(lines,
		"",
		"Prepared By      : "+preparedBy+" (Organization: "+b.OrgName+")",
		"Approved By      : "+approvedBy,
		"",
		"This MoM is issued for information and compliance.",
		"",
		"Regards,",
		b.OrgName+" Team",
	)
	return strings.Join(lines, "\n")
}

// actionLines renders each item as a numbered block; the key point shown
// under an item is picked by positional index into the meeting's key
// points, with a generic follow-up line when none corresponds.
func (b *Builder) actionLines(items []model.ActionItem, keyPoints []string) string {
	if len(items) == 0 {
		return "No action items were recorded for this meeting."
	}
	blocks := make([]string, 0, len(items))
	for i, it := range items {
		desc := strings.TrimSpace(it.Description)
		if desc == "" {
			desc = "Action item"
		}
		due := "Not specified"
		if d, ok := dates.Parse(it.DueDate); ok {
			due = d.Format("02 Jan 2006")
		}
		status := strings.TrimSpace(it.Status)
		if status == "" {
			status = model.StatusPending
		}
		assigned := personName(it.ResponsiblePerson)
		followUp := personName(it.FollowUpPerson)

		kp := fallbackKeyPoint
		if i < len(keyPoints) && keyPoints[i] != "" {
			kp = keyPoints[i]
		}

		blocks = append(blocks,
			fmt.Sprintf("%d. %s\n", i+1, desc)+
				"   Assigned To : "+assigned+"\n"+
				"   Follow Up   : "+followUp+"\n"+
				"   Due Date    : "+due+"\n"+
				"   Status      : "+status+"\n"+
				"   Key Points  :\n"+
				"   • "+kp)
	}
	return strings.Join(blocks, "\n\n")
}

// MailSubject is the fixed subject line for share/mail payloads.
func (b *Builder) MailSubject(m model.Meeting) string {
	title := m.Title
	if title == "" {
		title = "Meeting"
	}
	return "MoM: " + title
}

var unsafeRunes = regexp.MustCompile(`[^\w\-]+`)

const maxFilenameLen = 80

// safeFilename replaces runs of characters outside [A-Za-z0-9_-] with a
// single underscore and bounds the length.
func safeFilename(name string) string {
	if name == "" {
		name = "file"
	}
	s := unsafeRunes.ReplaceAllString(name, "_")
	if len(s) > maxFilenameLen {
		s = s[:maxFilenameLen]
	}
	return s
}

// Filename derives the export file base name for a single meeting from
// its title, falling back to the identifier.
func (b *Builder) Filename(m model.Meeting) string {
	base := m.Title
	if strings.TrimSpace(base) == "" {
		base = m.ID
	}
	return safeFilename("Meeting-" + base)
}

// MonthFilename derives the export file base name for a month batch.
func (b *Builder) MonthFilename(monthKey string) string {
	return safeFilename("Meetings-" + dates.MonthLabel(monthKey))
}

func attendeeNames(m model.Meeting) []string {
	names := make([]string, 0, len(m.Attendees))
	for _, a := range m.Attendees {
		if n := strings.TrimSpace(a.Name); n != "" {
			names = append(names, n)
		}
	}
	return names
}

func personName(p model.PersonRef) string {
	if n := strings.TrimSpace(p.Name); n != "" {
		return n
	}
	return "Not assigned"
}

func bullets(items []string) []string {
	if len(items) == 0 {
		return []string{"• Not specified"}
	}
	out := make([]string, len(items))
	for i, v := range items {
		out[i] = "• " + v
	}
	return out
}

func orLine(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func compactFilled(list []string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if t := strings.TrimSpace(v); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func formatMeetingDate(v string) string {
	if d, ok := dates.Parse(v); ok {
		return d.Format("Monday, 02 January 2006")
	}
	return "Not specified"
}

func formatMeetingTime(v string) string {
	t := strings.TrimSpace(v)
	if t == "" {
		return "Not specified"
	}
	if parsed, err := time.Parse("15:04", t); err == nil {
		return parsed.Format("3:04 PM")
	}
	return t
}
