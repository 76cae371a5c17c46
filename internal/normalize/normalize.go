// Package normalize converts raw partial meeting records into the
// canonical Meeting shape. The pipeline is pure and total: given any
// input it produces a fully-populated Meeting without error, applying
// for each field (1) the canonical shape when present, (2) known legacy
// shapes, (3) a fixed default. All parse failures are absorbed here;
// nothing downstream sees a partially-filled record.
package normalize

import (
	"fmt"
	"strings"
	"time"

	"github.com/clovehq/momtrack/internal/dates"
	"github.com/clovehq/momtrack/internal/model"
)

// Defaults applied when a field is absent or unusable.
const (
	DefaultTitle       = "Untitled Meeting"
	DefaultTime        = "—"
	DefaultDepartment  = "General"
	DefaultPersonName  = "Not Assigned"
	DefaultCreatorName = "AICCC"
	DefaultCreatorMail = "aiccc@organization.in"
)

// Pipeline resolves action-item person references against the known user
// directory. It holds no mutable state and is safe for concurrent use.
type Pipeline struct {
	usersByID map[string]model.User
}

// New builds a pipeline over the given user directory.
func New(users []model.User) *Pipeline {
	byID := make(map[string]model.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	return &Pipeline{usersByID: byID}
}

// Normalize produces the canonical Meeting for a raw record. The now
// parameter stands in for the wall clock so the function stays pure:
// it substitutes absent creation timestamps and unparseable due dates.
// The input record is never mutated.
func (p *Pipeline) Normalize(raw model.RawMeeting, now time.Time) model.Meeting {
	m := model.Meeting{
		ID:            raw.ID,
		Title:         orDefault(raw.Title, DefaultTitle),
		Description:   orDefault(raw.Description, ""),
		Date:          orDefault(raw.Date, safeTimestamp("", now)),
		Time:          orDefault(raw.Time, DefaultTime),
		Department:    orDefault(raw.Department, DefaultDepartment),
		Attendees:     normalizeAttendees(raw.Attendees),
		MeetingWith:   copyList(raw.MeetingWith),
		Agenda:        raw.Agenda.String(),
		SummaryPoints: copyList(raw.SummaryPoints),
		KeyPoints:     copyList(raw.KeyPoints),
		ActionItems:   p.normalizeActionItems(raw.ActionItems, now),
		PreparedBy:    firstNonEmpty(raw.PreparedByName.String(), raw.PreparedBy.String()),
		IsApproved:    bool(raw.IsApproved),
		CreatedAt:     safeTimestamp(deref(raw.CreatedAt), now),
		ReferenceNo:   raw.ReferenceNo.String(),
	}

	if len(m.MeetingWith) == 0 {
		m.MeetingWith = []string{m.Title}
	}

	if raw.CreatedBy != nil {
		m.CreatedBy = model.Creator{
			Name:  raw.CreatedBy.Name.String(),
			Email: raw.CreatedBy.Email.String(),
		}
	} else {
		m.CreatedBy = model.Creator{Name: DefaultCreatorName, Email: DefaultCreatorMail}
	}
	return m
}

// NormalizeAll maps Normalize over a merged raw collection, preserving order.
func (p *Pipeline) NormalizeAll(raws []model.RawMeeting, now time.Time) []model.Meeting {
	out := make([]model.Meeting, len(raws))
	for i, r := range raws {
		out[i] = p.Normalize(r, now)
	}
	return out
}

func normalizeAttendees(list model.AttendeeList) []model.Attendee {
	out := make([]model.Attendee, 0, len(list))
	for i, a := range list {
		if a.FromName {
			// bare-name entries get stable surrogate identifiers
			out = append(out, model.Attendee{
				ID:         fmt.Sprintf("local-att-%d", i),
				Name:       a.Name.String(),
				Department: DefaultDepartment,
			})
			continue
		}
		att := model.Attendee{
			ID:         a.ID.String(),
			Name:       a.Name.String(),
			Department: a.Department.String(),
		}
		if att.ID == "" {
			att.ID = fmt.Sprintf("att-%d", i)
		}
		if att.Name == "" {
			att.Name = "Unknown"
		}
		if att.Department == "" {
			att.Department = DefaultDepartment
		}
		out = append(out, att)
	}
	return out
}

func (p *Pipeline) normalizeActionItems(items model.RawActionItemList, now time.Time) []model.ActionItem {
	out := make([]model.ActionItem, 0, len(items))
	for i, it := range items {
		id := fmt.Sprintf("ai-%d", i)
		if it.ID != nil {
			id = it.ID.String()
		}
		out = append(out, model.ActionItem{
			ID:                id,
			Description:       it.Description.String(),
			DueDate:           safeTimestamp(it.DueDate.String(), now),
			Status:            normalizeStatus(it.Status.String()),
			Priority:          normalizePriority(it.Priority.String()),
			ResponsiblePerson: p.resolvePerson(it.ResponsiblePersonName.String(), it.ResponsiblePerson, it.ResponsiblePersonID.String()),
			FollowUpPerson:    p.resolvePerson(it.FollowUpPersonName.String(), it.FollowUpPerson, it.FollowUpPersonID.String()),
		})
	}
	return out
}

// resolvePerson applies the documented precedence: manually-typed name,
// then embedded person object, then directory lookup by identifier, then
// the "Not Assigned" placeholder.
func (p *Pipeline) resolvePerson(manualName string, embedded *model.RawPerson, refID string) model.PersonRef {
	if name := strings.TrimSpace(manualName); name != "" {
		return model.PersonRef{ID: "local", Name: name}
	}
	if embedded != nil {
		ref := model.PersonRef{ID: embedded.ID.String(), Name: embedded.Name.String()}
		if ref.ID == "" {
			ref.ID = "na"
		}
		if ref.Name == "" {
			ref.Name = DefaultPersonName
		}
		return ref
	}
	if refID != "" {
		if u, ok := p.usersByID[refID]; ok {
			return model.PersonRef{ID: u.ID, Name: u.Name}
		}
	}
	return model.PersonRef{ID: "na", Name: DefaultPersonName}
}

func normalizeStatus(s string) string {
	switch s {
	case model.StatusPending, model.StatusInProgress, model.StatusCompleted:
		return s
	default:
		return model.StatusPending
	}
}

func normalizePriority(s string) string {
	switch s {
	case model.PriorityLow, model.PriorityMedium, model.PriorityHigh:
		return s
	default:
		return model.PriorityMedium
	}
}

// safeTimestamp parses any known date shape and re-renders it as RFC3339
// UTC; absent or unparseable input yields the current timestamp, so the
// pipeline never emits an invalid creation or due date.
func safeTimestamp(v string, now time.Time) string {
	if t, ok := dates.Parse(v); ok {
		return t.UTC().Format(time.RFC3339)
	}
	return now.UTC().Format(time.RFC3339)
}

func orDefault(v *model.FlexString, def string) string {
	if v == nil {
		return def
	}
	return v.String()
}

func deref(v *model.FlexString) string {
	if v == nil {
		return ""
	}
	return v.String()
}

func copyList(l model.StringList) []string {
	out := make([]string, len(l))
	copy(out, l)
	return out
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
