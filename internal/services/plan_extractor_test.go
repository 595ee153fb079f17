package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodtrip/pkg/utils"
)

func TestExtractPlanFencedBlock(t *testing.T) {
	extractor := NewPlanExtractor()

	raw := "Sure, here is your itinerary!\n```json\n" +
		`{"aiEmpathy":"Have a calm trip","tags":["healing"],"plans":[{"day":1,"schedule":[{"time":"09:00","place":"Beach","placeId":"p1"}]}]}` +
		"\n```\nEnjoy!"

	plan, err := extractor.ExtractPlan(raw)
	require.NoError(t, err)
	assert.Equal(t, "Have a calm trip", plan.AiEmpathy)
	assert.Equal(t, []string{"healing"}, plan.Tags)
	require.Len(t, plan.Plans, 1)
	require.Len(t, plan.Plans[0].Schedule, 1)
	assert.Equal(t, "p1", plan.Plans[0].Schedule[0].PlaceID)
}

func TestExtractPlanBareJSONWithProse(t *testing.T) {
	extractor := NewPlanExtractor()

	raw := `Of course! {"plans":[{"day":1,"schedule":[{"time":"10:00","place":"Museum {of} Art","placeId":"m1"}]}]} hope that helps`

	plan, err := extractor.ExtractPlan(raw)
	require.NoError(t, err)
	require.Len(t, plan.Plans, 1)
	assert.Equal(t, "Museum {of} Art", plan.Plans[0].Schedule[0].Place)
}

func TestExtractPlanTrailingCommas(t *testing.T) {
	extractor := NewPlanExtractor()

	raw := "```json\n" + `{
  "plans": [
    {"day": 1, "schedule": [
      {"time": "09:00", "place": "Park", "placeId": "p1",},
    ],},
  ],
}` + "\n```"

	plan, err := extractor.ExtractPlan(raw)
	require.NoError(t, err)
	require.Len(t, plan.Plans, 1)
	assert.Equal(t, "Park", plan.Plans[0].Schedule[0].Place)
}

func TestExtractPlanKeyedDayMap(t *testing.T) {
	extractor := NewPlanExtractor()

	// Older map-of-days shape with named segments instead of a schedule list.
	raw := `{
  "day2": {"sights": [{"time":"09:00","place":"Temple","placeId":"t1"}],
           "lunch": [{"time":"12:00","place":"Noodles","placeId":"n1"}],
           "dinner": [{"time":"18:00","place":"BBQ","placeId":"b1"}]},
  "day1": {"sights": [{"time":"09:00","place":"Harbor","placeId":"h1"}]}
}`

	plan, err := extractor.ExtractPlan(raw)
	require.NoError(t, err)
	require.Len(t, plan.Plans, 2)

	// Days are sorted by key number and renumbered from 1.
	assert.Equal(t, 1, plan.Plans[0].Day)
	assert.Equal(t, "Harbor", plan.Plans[0].Schedule[0].Place)
	assert.Equal(t, 2, plan.Plans[1].Day)

	// Segment ordering is morning to evening.
	day2 := plan.Plans[1].Schedule
	require.Len(t, day2, 3)
	assert.Equal(t, "Temple", day2[0].Place)
	assert.Equal(t, "Noodles", day2[1].Place)
	assert.Equal(t, "BBQ", day2[2].Place)
}

func TestExtractPlanRenumbersGappyDays(t *testing.T) {
	extractor := NewPlanExtractor()

	raw := `{"plans":[
  {"day":5,"schedule":[{"time":"09:00","place":"B","placeId":"b"}]},
  {"day":2,"schedule":[{"time":"09:00","place":"A","placeId":"a"}]}
]}`

	plan, err := extractor.ExtractPlan(raw)
	require.NoError(t, err)
	require.Len(t, plan.Plans, 2)
	assert.Equal(t, 1, plan.Plans[0].Day)
	assert.Equal(t, "A", plan.Plans[0].Schedule[0].Place)
	assert.Equal(t, 2, plan.Plans[1].Day)
	assert.Equal(t, "B", plan.Plans[1].Schedule[0].Place)
}

func TestExtractPlanAlternateItemKeys(t *testing.T) {
	extractor := NewPlanExtractor()

	raw := `{"plans":[{"day":1,"schedule":[{"time":"09:00","name":"Falls","place_id":"f1","ai_comment":"roaring water","latitude":37.51,"longitude":127.04}]}]}`

	plan, err := extractor.ExtractPlan(raw)
	require.NoError(t, err)
	item := plan.Plans[0].Schedule[0]
	assert.Equal(t, "Falls", item.Place)
	assert.Equal(t, "f1", item.PlaceID)
	assert.Equal(t, "roaring water", item.AiComment)
	require.NotNil(t, item.Latitude)
	assert.InDelta(t, 37.51, *item.Latitude, 0.0001)
	require.NotNil(t, item.Longitude)
	assert.InDelta(t, 127.04, *item.Longitude, 0.0001)
}

func TestExtractPlanNoJSON(t *testing.T) {
	extractor := NewPlanExtractor()

	_, err := extractor.ExtractPlan("I cannot help with that request.")
	require.Error(t, err)

	var extractionErr *utils.ExtractionError
	assert.True(t, errors.As(err, &extractionErr))
}

func TestExtractPlanSnippetIsBounded(t *testing.T) {
	extractor := NewPlanExtractor()

	long := make([]byte, 1000)
	for i := range long {
		long[i] = 'x'
	}
	_, err := extractor.ExtractPlan(string(long))
	require.Error(t, err)

	var extractionErr *utils.ExtractionError
	require.True(t, errors.As(err, &extractionErr))
	assert.LessOrEqual(t, len(extractionErr.Snippet), 203)
}

func TestExtractPlanMalformedShapes(t *testing.T) {
	extractor := NewPlanExtractor()

	cases := []struct {
		name string
		raw  string
	}{
		{"plans is a string", `{"plans":"tomorrow"}`},
		{"no plans no day keys", `{"aiEmpathy":"hi","tags":[]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := extractor.ExtractPlan(tc.raw)
			require.Error(t, err)

			var malformed *utils.MalformedPlanError
			assert.True(t, errors.As(err, &malformed))
		})
	}
}

func TestExtractPlanUnbalancedBraces(t *testing.T) {
	extractor := NewPlanExtractor()

	_, err := extractor.ExtractPlan(`{"plans":[{"day":1`)
	require.Error(t, err)
}

func TestExtractPlanSkipsItemsWithoutIdentity(t *testing.T) {
	extractor := NewPlanExtractor()

	raw := `{"plans":[{"day":1,"schedule":[
  {"time":"09:00"},
  {"time":"10:00","place":"Garden","placeId":"g1"}
]}]}`

	plan, err := extractor.ExtractPlan(raw)
	require.NoError(t, err)
	require.Len(t, plan.Plans[0].Schedule, 1)
	assert.Equal(t, "g1", plan.Plans[0].Schedule[0].PlaceID)
}
