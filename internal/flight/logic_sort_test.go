package flight

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortFlights_Cheapest(t *testing.T) {
	got := SortFlights(sampleFlights(), SortCheapest)
	assert.Equal(t, []string{"f4", "f2", "f3", "f1", "f5"}, ids(got))
}

func TestSortFlights_Fastest(t *testing.T) {
	got := SortFlights(sampleFlights(), SortFastest)
	assert.Equal(t, []string{"f5", "f1", "f3", "f2", "f4"}, ids(got))
}

func TestSortFlights_Best(t *testing.T) {
	// f1: 4.5+33+0=37.5, f2: 2.8+43.5+50=96.3, f3: 3.2+36=39.2,
	// f4: 1.99+58+100=159.99, f5: 6.1+31+150=187.1
	got := SortFlights(sampleFlights(), SortBest)
	assert.Equal(t, []string{"f1", "f3", "f2", "f4", "f5"}, ids(got))
}

func TestSortFlights_UnknownOptionSortsAsBest(t *testing.T) {
	flights := sampleFlights()
	assert.Equal(t, ids(SortFlights(flights, SortBest)), ids(SortFlights(flights, "popular")))
}

func TestSortFlights_StableOnTies(t *testing.T) {
	flights := []FlightRecord{
		record("a", "AA", 300, "3h 0m", 0, "08:00", "11:00"),
		record("b", "UA", 200, "3h 0m", 0, "09:00", "12:00"),
		record("c", "DL", 300, "3h 0m", 0, "10:00", "13:00"),
		record("d", "NK", 200, "3h 0m", 0, "11:00", "14:00"),
	}

	assert.Equal(t, []string{"b", "d", "a", "c"}, ids(SortFlights(flights, SortCheapest)))
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(SortFlights(flights, SortFastest)))
}

func TestSortFlights_UnparseableDurationLast(t *testing.T) {
	flights := []FlightRecord{
		record("bad", "AA", 100, "about a day", 0, "08:00", "11:00"),
		record("slow", "UA", 200, "20h 0m", 0, "09:00", "12:00"),
		record("quick", "DL", 300, "1h 5m", 0, "10:00", "13:00"),
	}

	assert.Equal(t, []string{"quick", "slow", "bad"}, ids(SortFlights(flights, SortFastest)))
	assert.Equal(t, []string{"quick", "slow", "bad"}, ids(SortFlights(Normalize(flights), SortFastest)))
}

func TestSortFlights_DoesNotMutateInput(t *testing.T) {
	flights := sampleFlights()
	before := ids(flights)

	_ = SortFlights(flights, SortCheapest)
	assert.Equal(t, before, ids(flights))
}

func TestSortFlights_Empty(t *testing.T) {
	assert.Empty(t, SortFlights(nil, SortBest))
}

func TestBestScore(t *testing.T) {
	f := record("x", "AA", 250, "2h 30m", 1, "08:00", "10:30")
	assert.InDelta(t, 2.5+15+50, BestScore(f), 1e-9)
}
