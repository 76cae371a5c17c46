package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawMeetingDecodeAbsorbsShapeMismatches(t *testing.T) {
	blob := `{
		"id": "m1",
		"attendees": ["Alice", "Bob"],
		"actionItems": "not-an-array",
		"keyPoints": {"oops": true},
		"meetingWith": ["Vendor", 42, "Contractor"],
		"isApproved": "yes"
	}`

	var rec RawMeeting
	require.NoError(t, json.Unmarshal([]byte(blob), &rec))

	require.Len(t, rec.Attendees, 2)
	assert.True(t, rec.Attendees[0].FromName)
	assert.Equal(t, "Alice", rec.Attendees[0].Name.String())

	assert.Nil(t, rec.ActionItems)
	assert.Nil(t, rec.KeyPoints)
	assert.Equal(t, StringList{"Vendor", "Contractor"}, rec.MeetingWith)
	assert.True(t, bool(rec.IsApproved))
}

func TestAttendeeListObjectShape(t *testing.T) {
	blob := `[{"id":"7","name":"Ravi","department":"Planning"},{"name":"Kiran"}]`

	var list AttendeeList
	require.NoError(t, json.Unmarshal([]byte(blob), &list))
	require.Len(t, list, 2)
	assert.False(t, list[0].FromName)
	assert.Equal(t, "7", list[0].ID.String())
	assert.Equal(t, "Planning", list[0].Department.String())
	assert.Equal(t, "Kiran", list[1].Name.String())
}

func TestAttendeeListRoundTripsNameShape(t *testing.T) {
	var list AttendeeList
	require.NoError(t, json.Unmarshal([]byte(`["Alice","Bob"]`), &list))

	out, err := json.Marshal(list)
	require.NoError(t, err)
	assert.JSONEq(t, `["Alice","Bob"]`, string(out))
}

func TestFlexBoolTruthiness(t *testing.T) {
	cases := map[string]bool{
		`false`:     false,
		`0`:         false,
		`""`:        false,
		`null`:      false,
		`true`:      true,
		`1`:         true,
		`"no"`:      true,
		`{"a":1}`:   true,
		`[1,2]`:     true,
		`not-json~`: false,
	}
	for in, want := range cases {
		var b FlexBool
		if err := b.UnmarshalJSON([]byte(in)); err != nil {
			t.Fatalf("FlexBool(%s): unexpected error %v", in, err)
		}
		if bool(b) != want {
			t.Fatalf("FlexBool(%s) = %v, want %v", in, b, want)
		}
	}
}

func TestRawMeetingIDToleratesNonStringShapes(t *testing.T) {
	cases := map[string]string{
		`{"id":"local-7"}`:      "local-7",
		`{"id":1}`:              "1",
		`{"id":2.5}`:            "2.5",
		`{"id":{"weird":true}}`: "",
		`{"id":null}`:           "",
		`{"title":"no id"}`:     "",
	}
	for blob, want := range cases {
		var rec RawMeeting
		require.NoError(t, json.Unmarshal([]byte(blob), &rec), blob)
		assert.Equal(t, want, rec.ID, blob)
	}
}

func TestFlexStringNonStringDecodesEmpty(t *testing.T) {
	var s FlexString
	require.NoError(t, s.UnmarshalJSON([]byte(`42`)))
	assert.Equal(t, "", s.String())
}
