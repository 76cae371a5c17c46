package model

// ActionItem status values. Unrecognized input normalizes to StatusPending.
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// ActionItem priority values. Unrecognized input normalizes to PriorityMedium.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// User is a member of the seed directory. The directory is read-only;
// meetings reference users by name or id but never mutate them.
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department"`
	IsApproved bool   `json:"isApproved"`
}

// Department is a named grouping with a display color, owned by seed data.
type Department struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Attendee is the canonical attendee shape after normalization.
type Attendee struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
}

// PersonRef is a resolved responsible/follow-up person on an action item.
type PersonRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ActionItem is a tracked task arising from a meeting. It has no identity
// outside its parent meeting: edits happen by re-saving the meeting, and
// removal happens by omission on the next save.
type ActionItem struct {
	ID                string    `json:"id"`
	Description       string    `json:"description"`
	DueDate           string    `json:"dueDate"`
	Status            string    `json:"status"`
	Priority          string    `json:"priority"`
	ResponsiblePerson PersonRef `json:"responsiblePerson"`
	FollowUpPerson    PersonRef `json:"followUpPerson"`
}

// Creator identifies who authored a meeting record.
type Creator struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Meeting is the canonical, fully-defaulted record produced by the
// normalization pipeline. Every list field is non-nil and every scalar
// carries its documented fallback, so downstream consumers never need
// defensive access.
type Meeting struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Date          string       `json:"date"`
	Time          string       `json:"time"`
	Department    string       `json:"department"`
	Attendees     []Attendee   `json:"attendees"`
	MeetingWith   []string     `json:"meetingWith"`
	Agenda        string       `json:"agenda"`
	SummaryPoints []string     `json:"summaryPoints"`
	KeyPoints     []string     `json:"keyPoints"`
	ActionItems   []ActionItem `json:"actionItems"`
	CreatedBy     Creator      `json:"createdBy"`
	PreparedBy    string       `json:"preparedBy"`
	IsApproved    bool         `json:"isApproved"`
	CreatedAt     string       `json:"createdAt"`
	ReferenceNo   string       `json:"referenceNo,omitempty"`
}

// AnnotatedActionItem is an action item paired with its parent meeting,
// used by the derivation queries that flatten items across meetings.
type AnnotatedActionItem struct {
	ActionItem
	MeetingID    string `json:"meetingId"`
	MeetingTitle string `json:"meetingTitle"`
}

// TaskHealth aggregates action-item counts across the merged collection.
type TaskHealth struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	InProgress int `json:"inProgress"`
	Pending    int `json:"pending"`
	Overdue    int `json:"overdue"`
}

// MonthBucket is one calendar month of meetings, sorted descending by date.
type MonthBucket struct {
	Key      string    `json:"key"`   // "2006-01"
	Label    string    `json:"label"` // "January 2006"
	Meetings []Meeting `json:"meetings"`
}
