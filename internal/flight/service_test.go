package flight

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"travel/pkg/cache"
	"travel/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Del(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type MockFlightClient struct {
	mock.Mock
}

func (m *MockFlightClient) SearchFlights(ctx context.Context, req SearchRequest) ([]FlightRecord, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]FlightRecord), args.Error(1)
}

func validRequest() SearchRequest {
	return SearchRequest{
		Origin:        "jfk",
		Destination:   "lax",
		DepartureDate: "2025-06-01",
		Passengers:    1,
	}
}

func newTestService(client FlightClient, c cache.Cache) *Service {
	return NewService(client, c, 10, logger.NewNop())
}

func TestService_SearchFlights_CacheMiss(t *testing.T) {
	client := new(MockFlightClient)
	c := new(MockCache)
	s := newTestService(client, c)

	client.On("SearchFlights", mock.Anything, mock.MatchedBy(func(r SearchRequest) bool {
		return r.Origin == "JFK" && r.Destination == "LAX" && r.CabinClass == CabinEconomy
	})).Return(sampleFlights(), nil).Once()
	c.On("Get", mock.Anything, mock.AnythingOfType("string")).Return("", cache.ErrMiss).Once()
	c.On("Set", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("string"), 10*time.Minute).Return(nil).Once()

	resp, err := s.SearchFlights(context.Background(), validRequest())
	require.NoError(t, err)

	assert.False(t, resp.Metadata.CacheHit)
	assert.Equal(t, uint32(5), resp.Metadata.TotalResults)
	assert.Equal(t, "JFK", resp.SearchCriteria.Origin)
	assert.NotEmpty(t, resp.Metadata.CacheKey)
	for _, f := range resp.Flights {
		assert.Positive(t, f.DurationMinutes)
	}
	client.AssertExpectations(t)
	c.AssertExpectations(t)
}

func TestService_SearchFlights_CacheHit(t *testing.T) {
	client := new(MockFlightClient)
	c := new(MockCache)
	s := newTestService(client, c)

	cached, err := json.Marshal(SearchResponse{
		SearchCriteria: SearchCriteria{Origin: "JFK", Destination: "LAX"},
		Metadata:       Metadata{TotalResults: 5},
		Flights:        sampleFlights(),
	})
	require.NoError(t, err)
	c.On("Get", mock.Anything, mock.AnythingOfType("string")).Return(string(cached), nil).Once()

	resp, err := s.SearchFlights(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, resp.Metadata.CacheHit)
	assert.Len(t, resp.Flights, 5)
	client.AssertNotCalled(t, "SearchFlights", mock.Anything, mock.Anything)
}

func TestService_SearchFlights_SameKeyForEquivalentRequests(t *testing.T) {
	s := newTestService(new(MockFlightClient), new(MockCache))

	a := validRequest().normalized()
	b := SearchRequest{Origin: " JFK", Destination: "LAX ", DepartureDate: "2025-06-01", CabinClass: "Economy"}.normalized()
	assert.Equal(t, s.generateCacheKey(a), s.generateCacheKey(b))

	b.ReturnDate = "2025-06-08"
	assert.NotEqual(t, s.generateCacheKey(a), s.generateCacheKey(b))
}

func TestService_SearchFlights_UpstreamError(t *testing.T) {
	client := new(MockFlightClient)
	c := new(MockCache)
	s := newTestService(client, c)

	c.On("Get", mock.Anything, mock.Anything).Return("", cache.ErrMiss).Once()
	client.On("SearchFlights", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused")).Once()

	resp, err := s.SearchFlights(context.Background(), validRequest())
	assert.Nil(t, resp)

	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadGateway, appErr.Status)
	assert.Equal(t, ErrorCodeUpstreamFailure, appErr.Code)
	c.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_SearchFlights_CacheErrorFallsThrough(t *testing.T) {
	client := new(MockFlightClient)
	c := new(MockCache)
	s := newTestService(client, c)

	c.On("Get", mock.Anything, mock.Anything).Return("", errors.New("redis down")).Once()
	c.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()
	client.On("SearchFlights", mock.Anything, mock.Anything).Return(sampleFlights(), nil).Once()

	resp, err := s.SearchFlights(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Len(t, resp.Flights, 5)
}

func TestService_SearchFlights_Validation(t *testing.T) {
	s := newTestService(new(MockFlightClient), new(MockCache))

	tests := []struct {
		name   string
		mutate func(*SearchRequest)
	}{
		{"short origin", func(r *SearchRequest) { r.Origin = "JF" }},
		{"same airports", func(r *SearchRequest) { r.Destination = "JFK" }},
		{"bad date", func(r *SearchRequest) { r.DepartureDate = "01/06/2025" }},
		{"return before departure", func(r *SearchRequest) { r.ReturnDate = "2025-05-01" }},
		{"too many passengers", func(r *SearchRequest) { r.Passengers = 10 }},
		{"unknown cabin", func(r *SearchRequest) { r.CabinClass = "cargo" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			_, err := s.SearchFlights(context.Background(), req)
			assert.True(t, IsValidationError(err), "got %v", err)
		})
	}
}

func TestService_SearchFlights_Superseded(t *testing.T) {
	client := new(MockFlightClient)
	c := new(MockCache)
	s := newTestService(client, c)

	release := make(chan struct{})
	c.On("Get", mock.Anything, mock.Anything).Return("", cache.ErrMiss)
	c.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	client.On("SearchFlights", mock.Anything, mock.MatchedBy(func(r SearchRequest) bool {
		return r.Destination == "LAX"
	})).Run(func(mock.Arguments) { <-release }).Return(sampleFlights(), nil).Once()
	client.On("SearchFlights", mock.Anything, mock.MatchedBy(func(r SearchRequest) bool {
		return r.Destination == "SFO"
	})).Return(sampleFlights(), nil).Once()

	slow := validRequest()
	slow.SessionID = "session-1"

	type result struct {
		resp *SearchResponse
		err  error
	}
	done := make(chan result, 1)
	go func() {
		resp, err := s.SearchFlights(context.Background(), slow)
		done <- result{resp, err}
	}()

	require.Eventually(t, func() bool {
		s.searches.mu.Lock()
		defer s.searches.mu.Unlock()
		slot, ok := s.searches.slots["session-1"]
		return ok && slot.inflight == 1
	}, time.Second, time.Millisecond)

	fast := validRequest()
	fast.Destination = "SFO"
	fast.SessionID = "session-1"
	resp, err := s.SearchFlights(context.Background(), fast)
	require.NoError(t, err)
	assert.Equal(t, "SFO", resp.SearchCriteria.Destination)

	close(release)
	got := <-done
	assert.Nil(t, got.resp)
	assert.ErrorIs(t, got.err, ErrSupersededSearch)
	c.AssertNumberOfCalls(t, "Set", 2)
}

func TestService_Results_Pipeline(t *testing.T) {
	client := new(MockFlightClient)
	c := new(MockCache)
	s := newTestService(client, c)

	c.On("Get", mock.Anything, mock.Anything).Return("", cache.ErrMiss)
	c.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	client.On("SearchFlights", mock.Anything, mock.Anything).Return(sampleFlights(), nil)

	filters := FilterInput{Stops: []int{0, 1}}
	resp, err := s.Results(context.Background(), ResultsRequest{
		SearchRequest: validRequest(),
		Filters:       &filters,
		QuickFilters:  []QuickFilterID{QuickShort, QuickBudget},
		Sort:          SortCheapest,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"f2"}, ids(resp.Flights))
	assert.True(t, resp.Flights[0].IsBestDeal)
	assert.Equal(t, uint32(1), resp.Metadata.TotalResults)
	assert.Equal(t, [2]float64{199, 610}, resp.PriceBounds)
	assert.Len(t, resp.Airlines, 4)
	assert.Equal(t, 1, resp.ActiveFilterCount)
	assert.Equal(t, SortCheapest, resp.Sort)
	require.Len(t, resp.PriceGraph, 3)

	counts := make(map[QuickFilterID]int)
	for _, qc := range resp.QuickFilters {
		counts[qc.ID] = qc.Count
	}
	assert.Equal(t, 2, counts[QuickDirect])
	assert.Equal(t, 1, counts[QuickBudget])
	assert.Equal(t, 3, counts[QuickShort])
}

func TestService_Results_PartialFiltersKeepDefaults(t *testing.T) {
	client := new(MockFlightClient)
	c := new(MockCache)
	s := newTestService(client, c)

	c.On("Get", mock.Anything, mock.Anything).Return("", cache.ErrMiss)
	c.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	client.On("SearchFlights", mock.Anything, mock.Anything).Return(sampleFlights(), nil)

	var req ResultsRequest
	body := `{"origin":"JFK","destination":"LAX","departure_date":"2026-11-20","filters":{"stops":[0]}}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	resp, err := s.Results(context.Background(), req)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"f1", "f3"}, ids(resp.Flights))
	assert.Equal(t, [2]float64{199, 610}, resp.Filters.PriceRange)
	assert.Equal(t, [2]int{0, 1440}, resp.Filters.DepartureTimeRange)
	assert.Equal(t, [2]int{0, 1440}, resp.Filters.ArrivalTimeRange)
	assert.Equal(t, 1, resp.ActiveFilterCount)
}

func TestService_Results_Defaults(t *testing.T) {
	client := new(MockFlightClient)
	c := new(MockCache)
	s := newTestService(client, c)

	c.On("Get", mock.Anything, mock.Anything).Return("", cache.ErrMiss)
	c.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	client.On("SearchFlights", mock.Anything, mock.Anything).Return(sampleFlights(), nil)

	resp, err := s.Results(context.Background(), ResultsRequest{SearchRequest: validRequest(), Sort: "popular"})
	require.NoError(t, err)

	assert.Equal(t, SortBest, resp.Sort)
	assert.Equal(t, []string{"f1", "f3", "f2", "f4", "f5"}, ids(resp.Flights))
	assert.Equal(t, DefaultFilterState([2]float64{199, 610}), resp.Filters)
	assert.Zero(t, resp.ActiveFilterCount)
	for _, f := range resp.Flights {
		require.NotNil(t, f.CarbonEmissions)
	}
}

func TestService_Results_RejectsBadInput(t *testing.T) {
	s := newTestService(new(MockFlightClient), new(MockCache))

	bad := FilterInput{Stops: []int{5}}
	_, err := s.Results(context.Background(), ResultsRequest{SearchRequest: validRequest(), Filters: &bad})
	assert.True(t, IsValidationError(err))

	inverted := FilterInput{DepartureTimeRange: &[2]int{600, 300}}
	_, err = s.Results(context.Background(), ResultsRequest{SearchRequest: validRequest(), Filters: &inverted})
	assert.True(t, IsValidationError(err))

	_, err = s.Results(context.Background(), ResultsRequest{
		SearchRequest: validRequest(),
		QuickFilters:  []QuickFilterID{"redeye"},
	})
	assert.True(t, IsValidationError(err))
}

func TestService_InvalidateCache(t *testing.T) {
	c := new(MockCache)
	s := newTestService(new(MockFlightClient), c)

	key := s.generateCacheKey(validRequest().normalized())
	c.On("Del", mock.Anything, key).Return(nil).Once()

	require.NoError(t, s.InvalidateCache(context.Background(), validRequest()))
	c.AssertExpectations(t)
}
