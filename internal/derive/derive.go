// Package derive computes read-only views over the merged canonical
// collection. Every query is a pure function of its inputs (including
// the clock, passed explicitly) and is re-evaluated from scratch on each
// change notification; no incremental indexes are kept at this scale.
// Sorts are stable, so equal keys retain a deterministic relative order.
package derive

import (
	"sort"
	"time"

	"github.com/clovehq/momtrack/internal/dates"
	"github.com/clovehq/momtrack/internal/model"
)

// meetingDate parses a meeting's date, treating unparseable values as the
// epoch so they sort before everything real but never vanish from views.
func meetingDate(m model.Meeting) time.Time {
	if t, ok := dates.Parse(m.Date); ok {
		return t
	}
	return time.Unix(0, 0).UTC()
}

// TodaysMeetings returns meetings dated on now's calendar day.
func TodaysMeetings(meetings []model.Meeting, now time.Time) []model.Meeting {
	out := []model.Meeting{}
	for _, m := range meetings {
		if t, ok := dates.Parse(m.Date); ok && dates.SameDay(t, now) {
			out = append(out, m)
		}
	}
	return out
}

// UpcomingMeetings returns meetings strictly after now, ascending by date.
func UpcomingMeetings(meetings []model.Meeting, now time.Time) []model.Meeting {
	out := []model.Meeting{}
	for _, m := range meetings {
		if meetingDate(m).After(now) {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return meetingDate(out[i]).Before(meetingDate(out[j]))
	})
	return out
}

// OverdueActionItems flattens items across all meetings whose due date is
// strictly before now and whose status is not completed. Completed items
// are excluded regardless of due date.
func OverdueActionItems(meetings []model.Meeting, now time.Time) []model.AnnotatedActionItem {
	out := []model.AnnotatedActionItem{}
	for _, m := range meetings {
		for _, it := range m.ActionItems {
			if it.Status == model.StatusCompleted {
				continue
			}
			if due, ok := dates.Parse(it.DueDate); ok && due.Before(now) {
				out = append(out, annotate(it, m))
			}
		}
	}
	return out
}

// PendingActionItems flattens every not-completed item (overdue and
// in-progress included), annotated with its parent meeting.
func PendingActionItems(meetings []model.Meeting) []model.AnnotatedActionItem {
	out := []model.AnnotatedActionItem{}
	for _, m := range meetings {
		for _, it := range m.ActionItems {
			if it.Status != model.StatusCompleted {
				out = append(out, annotate(it, m))
			}
		}
	}
	return out
}

// GroupByMonth partitions meetings into year-month buckets. Buckets are
// ordered most recent month first; within a bucket meetings sort
// descending by date. Unparseable dates bucket under now's month, so
// every meeting lands in exactly one bucket.
func GroupByMonth(meetings []model.Meeting, now time.Time) []model.MonthBucket {
	byKey := map[string][]model.Meeting{}
	for _, m := range meetings {
		t, ok := dates.Parse(m.Date)
		if !ok {
			t = now
		}
		k := dates.MonthKey(t)
		byKey[k] = append(byKey[k], m)
	}

	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	out := make([]model.MonthBucket, 0, len(keys))
	for _, k := range keys {
		ms := byKey[k]
		sort.SliceStable(ms, func(i, j int) bool {
			return meetingDate(ms[i]).After(meetingDate(ms[j]))
		})
		out = append(out, model.MonthBucket{Key: k, Label: dates.MonthLabel(k), Meetings: ms})
	}
	return out
}

// Health tallies action-item counts across the collection. Overdue uses
// the same rule as OverdueActionItems.
func Health(meetings []model.Meeting, now time.Time) model.TaskHealth {
	var h model.TaskHealth
	for _, m := range meetings {
		for _, it := range m.ActionItems {
			h.Total++
			switch it.Status {
			case model.StatusCompleted:
				h.Completed++
			case model.StatusInProgress:
				h.InProgress++
			default:
				h.Pending++
			}
			if it.Status != model.StatusCompleted {
				if due, ok := dates.Parse(it.DueDate); ok && due.Before(now) {
					h.Overdue++
				}
			}
		}
	}
	return h
}

func annotate(it model.ActionItem, m model.Meeting) model.AnnotatedActionItem {
	return model.AnnotatedActionItem{ActionItem: it, MeetingID: m.ID, MeetingTitle: m.Title}
}
