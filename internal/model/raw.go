package model

import "encoding/json"

// Raw* types are the loosely-typed boundary shape for persisted and seed
// meeting records. Two generations of writers have touched the storage
// slot, so every field is optional and several carry more than one legal
// JSON shape. All custom decoders below are total: they absorb shape
// mismatches by falling back to the zero value instead of returning an
// error, so one odd field never rejects a whole record. Defaulting into
// the canonical Meeting shape happens in the normalize package, not here.

// FlexString decodes a JSON string and treats any other value as "".
type FlexString string

func (s *FlexString) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		*s = ""
		return nil
	}
	*s = FlexString(v)
	return nil
}

func (s FlexString) String() string { return string(s) }

// FlexBool coerces any JSON value the way JavaScript's Boolean() does:
// false, 0, "", and null are false, everything else is true.
type FlexBool bool

func (f *FlexBool) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		*f = false
		return nil
	}
	switch t := v.(type) {
	case bool:
		*f = FlexBool(t)
	case float64:
		*f = t != 0
	case string:
		*f = t != ""
	case nil:
		*f = false
	default:
		// objects and arrays are truthy
		*f = true
	}
	return nil
}

// FlexID decodes a string or numeric identifier; numbers keep their
// decimal rendering so a record written with id 1 matches seed id "1".
// Any other shape decodes to "" (and the record is later dropped by the
// merge for lacking an identifier).
type FlexID string

func (s *FlexID) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err == nil {
		*s = FlexID(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err == nil {
		*s = FlexID(num.String())
		return nil
	}
	*s = ""
	return nil
}

// StringList accepts only a JSON array; anything else decodes to nil.
// Non-string elements inside the array are dropped.
type StringList []string

func (l *StringList) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		*l = nil
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, m := range raw {
		var s string
		if err := json.Unmarshal(m, &s); err == nil {
			out = append(out, s)
		}
	}
	*l = out
	return nil
}

// RawAttendee holds one attendee entry. FromName marks entries that were
// stored as bare name strings (the current authoring flow) as opposed to
// the richer objects found in seed data.
type RawAttendee struct {
	ID         FlexString `json:"id,omitempty"`
	Name       FlexString `json:"name,omitempty"`
	Department FlexString `json:"department,omitempty"`
	FromName   bool       `json:"-"`
}

// AttendeeList accepts both legal attendee shapes: a list of names and a
// list of objects. Like the original, the first element decides which
// shape the whole list is read as.
type AttendeeList []RawAttendee

func (l *AttendeeList) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		*l = nil
		return nil
	}
	if len(raw) == 0 {
		*l = AttendeeList{}
		return nil
	}

	var first string
	if err := json.Unmarshal(raw[0], &first); err == nil {
		// names-only list
		out := make(AttendeeList, 0, len(raw))
		for _, m := range raw {
			var name string
			if err := json.Unmarshal(m, &name); err != nil {
				name = ""
			}
			out = append(out, RawAttendee{Name: FlexString(name), FromName: true})
		}
		*l = out
		return nil
	}

	out := make(AttendeeList, 0, len(raw))
	for _, m := range raw {
		var a RawAttendee
		// tolerant fields; a non-object element leaves the zero value
		_ = json.Unmarshal(m, &a)
		out = append(out, a)
	}
	*l = out
	return nil
}

// MarshalJSON writes the list back in the shape it arrived in so upserts
// round-trip without rewriting the stored representation.
func (l AttendeeList) MarshalJSON() ([]byte, error) {
	allNames := len(l) > 0
	for _, a := range l {
		if !a.FromName {
			allNames = false
			break
		}
	}
	if allNames {
		names := make([]string, len(l))
		for i, a := range l {
			names[i] = string(a.Name)
		}
		return json.Marshal(names)
	}
	type obj RawAttendee
	objs := make([]obj, len(l))
	for i, a := range l {
		objs[i] = obj(a)
	}
	return json.Marshal(objs)
}

// RawPerson is an embedded responsible/follow-up person object.
type RawPerson struct {
	ID   FlexString `json:"id,omitempty"`
	Name FlexString `json:"name,omitempty"`
}

// RawCreator is the loosely-typed createdBy field.
type RawCreator struct {
	Name  FlexString `json:"name,omitempty"`
	Email FlexString `json:"email,omitempty"`
}

// RawActionItem carries every field name any writer has used for action
// items, including the legacy id-reference fields and the manually-typed
// name fields from the authoring form.
type RawActionItem struct {
	ID          *FlexString `json:"id,omitempty"`
	Description FlexString  `json:"description,omitempty"`
	Title       FlexString  `json:"title,omitempty"`
	DueDate     FlexString  `json:"dueDate,omitempty"`
	Status      FlexString  `json:"status,omitempty"`
	Priority    FlexString  `json:"priority,omitempty"`

	ResponsiblePerson *RawPerson `json:"responsiblePerson,omitempty"`
	FollowUpPerson    *RawPerson `json:"followUpPerson,omitempty"`

	ResponsiblePersonID FlexString `json:"responsiblePersonId,omitempty"`
	FollowUpPersonID    FlexString `json:"followUpPersonId,omitempty"`

	ResponsiblePersonName FlexString `json:"responsiblePersonName,omitempty"`
	FollowUpPersonName    FlexString `json:"followUpPersonName,omitempty"`
}

// RawActionItemList accepts only a JSON array; malformed elements decode
// to a zero item rather than failing the record.
type RawActionItemList []RawActionItem

func (l *RawActionItemList) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		*l = nil
		return nil
	}
	out := make(RawActionItemList, 0, len(raw))
	for _, m := range raw {
		var it RawActionItem
		_ = json.Unmarshal(m, &it)
		out = append(out, it)
	}
	*l = out
	return nil
}

// RawMeeting is a persisted or seed meeting record before normalization.
// Only the identifier is required; pointer fields distinguish absent from
// present-but-empty where the defaulting rules care.
type RawMeeting struct {
	ID          string      `json:"id"`
	Title       *FlexString `json:"title,omitempty"`
	Description *FlexString `json:"description,omitempty"`
	Date        *FlexString `json:"date,omitempty"`
	Time        *FlexString `json:"time,omitempty"`
	Department  *FlexString `json:"department,omitempty"`

	Attendees     AttendeeList      `json:"attendees,omitempty"`
	MeetingWith   StringList        `json:"meetingWith,omitempty"`
	Agenda        FlexString        `json:"agenda,omitempty"`
	SummaryPoints StringList        `json:"summaryPoints,omitempty"`
	KeyPoints     StringList        `json:"keyPoints,omitempty"`
	ActionItems   RawActionItemList `json:"actionItems,omitempty"`

	CreatedBy      *RawCreator `json:"createdBy,omitempty"`
	PreparedByName FlexString  `json:"preparedByName,omitempty"`
	PreparedBy     FlexString  `json:"preparedBy,omitempty"`
	IsApproved     FlexBool    `json:"isApproved,omitempty"`
	CreatedAt      *FlexString `json:"createdAt,omitempty"`
	ReferenceNo    FlexString  `json:"referenceNo,omitempty"`
}

// UnmarshalJSON decodes the identifier through FlexID so a non-string id
// degrades like every other field instead of rejecting the whole record.
func (m *RawMeeting) UnmarshalJSON(b []byte) error {
	type alias RawMeeting
	aux := struct {
		ID FlexID `json:"id"`
		*alias
	}{alias: (*alias)(m)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	m.ID = string(aux.ID)
	return nil
}
