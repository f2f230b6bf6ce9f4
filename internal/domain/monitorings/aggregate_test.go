package monitorings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func boolPtr(v bool) *bool { return &v }
func intPtr(v int) *int    { return &v }

func TestAggregate_Empty_AllZero(t *testing.T) {
	assert.Equal(t, Report{}, Aggregate(nil))
	assert.Equal(t, Report{}, Aggregate([]Monitoring{}))
}

func TestAggregate_VomitAndPills(t *testing.T) {
	items := []Monitoring{
		{Date: day(1), Vomit: true, AmPill: true, PmPill: true, Urination: 3, Defecation: 2},
		{Date: day(2), Vomit: false, AmPill: true, PmPill: true, Urination: 3, Defecation: 2},
	}

	r := Aggregate(items)

	assert.Equal(t, 2, r.Days)
	assert.Equal(t, 1, r.VomitCount)
	assert.Equal(t, 2, r.AmPillTrue)
	assert.Equal(t, 2, r.PmPillTrue)
	assert.Equal(t, 3.0, r.UrinationAvg)
	assert.Equal(t, 2.0, r.DefecationAvg)
}

func TestAggregate_AveragesRoundedAndOptionalDenominators(t *testing.T) {
	items := []Monitoring{
		{Date: day(1), Weight: 4.0, WalkCnt: 1, CustomSymptom: boolPtr(true), CustomSymptomName: "cough", CustomInt: intPtr(3), CustomIntName: "water"},
		{Date: day(2), Weight: 0, WalkCnt: 2},
		{Date: day(3), Weight: 4.5, WalkCnt: 2, CustomSymptom: boolPtr(false), CustomSymptomName: "sneeze", CustomInt: intPtr(4)},
	}

	r := Aggregate(items)

	assert.Equal(t, 3, r.Days)
	// peso 0 no cuenta
	assert.Equal(t, 4.25, r.WeightAvg)
	assert.Equal(t, 1.67, r.WalkAvg)

	assert.Equal(t, 2, r.CustomSymptomCount)
	assert.Equal(t, 1, r.CustomSymptomTrue)
	assert.Equal(t, "sneeze", r.CustomSymptomName)

	assert.Equal(t, 2, r.CustomIntCount)
	assert.Equal(t, 3.5, r.CustomIntAvg)
	assert.Equal(t, "water", r.CustomIntName)
}

func TestParseRange(t *testing.T) {
	s, e, err := ParseRange("20240101", "20240108")
	require.NoError(t, err)
	assert.Equal(t, day(1), s)
	assert.Equal(t, day(8), e)

	cases := []struct {
		name       string
		start, end string
	}{
		{"six days", "20240101", "20240107"},
		{"reversed", "20240108", "20240101"},
		{"bad start", "2024-01-01", "20240108"},
		{"bad end", "20240101", "202401"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := ParseRange(tc.start, tc.end)
			assert.Error(t, err)
		})
	}
}
