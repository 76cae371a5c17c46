package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clovehq/momtrack/internal/model"
	"github.com/clovehq/momtrack/internal/seed"
)

func fs(v string) *model.FlexString {
	f := model.FlexString(v)
	return &f
}

func TestMergePersistedOverridesSeed(t *testing.T) {
	seedRecs := seed.Meetings()
	persisted := []model.RawMeeting{
		{ID: "1", Title: fs("Edited Sprint Planning")},
		{ID: "local-100", Title: fs("New Local Meeting")},
	}

	got := Merge(seedRecs, persisted)
	require.Len(t, got, 6)

	// override keeps the seed record's position
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "Edited Sprint Planning", got[0].Title.String())

	// persisted-only records append after the seed set
	assert.Equal(t, "local-100", got[5].ID)
}

func TestMergeDropsRecordsWithoutID(t *testing.T) {
	got := Merge(nil, []model.RawMeeting{{}, {ID: "a"}})
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestMergeIsIdempotent(t *testing.T) {
	seedRecs := seed.Meetings()
	persisted := []model.RawMeeting{{ID: "2", Title: fs("Replaced")}}

	once := Merge(seedRecs, persisted)
	twice := Merge(Merge(seedRecs, nil), persisted)
	assert.Equal(t, once, twice)
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	seedRecs := []model.RawMeeting{{ID: "1", Title: fs("original")}}
	persisted := []model.RawMeeting{{ID: "1", Title: fs("edited")}}

	_ = Merge(seedRecs, persisted)
	assert.Equal(t, "original", seedRecs[0].Title.String())
}

func TestMergeLastDuplicateWins(t *testing.T) {
	persisted := []model.RawMeeting{
		{ID: "x", Title: fs("first")},
		{ID: "x", Title: fs("second")},
	}
	got := Merge(nil, persisted)
	require.Len(t, got, 1)
	assert.Equal(t, "second", got[0].Title.String())
}
