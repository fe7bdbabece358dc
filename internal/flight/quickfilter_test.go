package flight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyQuickFilters(t *testing.T) {
	flights := sampleFlights()

	tests := []struct {
		name   string
		active []QuickFilterID
		want   []string
	}{
		{"none", nil, []string{"f1", "f2", "f3", "f4", "f5"}},
		{"direct", []QuickFilterID{QuickDirect}, []string{"f1", "f3"}},
		{"morning", []QuickFilterID{QuickMorning}, []string{"f1", "f4"}},
		{"evening wraps past midnight", []QuickFilterID{QuickEvening}, []string{"f3", "f5"}},
		{"budget", []QuickFilterID{QuickBudget}, []string{"f2", "f4"}},
		{"short", []QuickFilterID{QuickShort}, []string{"f1", "f2", "f3"}},
		{"eco skips missing emissions", []QuickFilterID{QuickEco}, []string{"f1", "f3"}},
		{"direct and morning", []QuickFilterID{QuickDirect, QuickMorning}, []string{"f1"}},
		{"unknown ignored", []QuickFilterID{"weekend"}, []string{"f1", "f2", "f3", "f4", "f5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(ApplyQuickFilters(flights, tt.active)))
		})
	}
}

func TestApplyQuickFilters_UnreadableDeparture(t *testing.T) {
	f := record("x", "AA", 100, "2h 0m", 0, "n/a", "n/a")

	assert.Empty(t, ApplyQuickFilters([]FlightRecord{f}, []QuickFilterID{QuickMorning}))
	assert.Empty(t, ApplyQuickFilters([]FlightRecord{f}, []QuickFilterID{QuickEvening}))
}

func TestApplyQuickFilters_EstimatedEmissionsNotEco(t *testing.T) {
	f := record("x", "AA", 100, "2h 0m", 0, "08:00", "10:00")
	f.CarbonEmissions = intPtr(160)
	f.EmissionsEstimated = true

	assert.Empty(t, ApplyQuickFilters([]FlightRecord{f}, []QuickFilterID{QuickEco}))
}

func TestQuickFilterCounts_IndependentOfOtherActive(t *testing.T) {
	flights := sampleFlights()

	plain := QuickFilterCounts(flights, nil)
	withActive := QuickFilterCounts(flights, []QuickFilterID{QuickDirect, QuickBudget})

	require.Len(t, plain, 6)
	require.Len(t, withActive, 6)
	for i := range plain {
		assert.Equal(t, plain[i].ID, withActive[i].ID)
		assert.Equal(t, plain[i].Count, withActive[i].Count, "count for %s", plain[i].ID)
	}

	want := map[QuickFilterID]int{
		QuickDirect:  2,
		QuickMorning: 2,
		QuickEvening: 2,
		QuickBudget:  2,
		QuickShort:   3,
		QuickEco:     2,
	}
	for _, c := range withActive {
		assert.Equal(t, want[c.ID], c.Count, "count for %s", c.ID)
		assert.Equal(t, c.ID == QuickDirect || c.ID == QuickBudget, c.Active)
		assert.NotEmpty(t, c.Label)
	}
}

func TestQuickFilterID_IsValid(t *testing.T) {
	assert.True(t, QuickEco.IsValid())
	assert.False(t, QuickFilterID("cheap").IsValid())
	assert.Equal(t, "Under $300", QuickBudget.Label())
}
