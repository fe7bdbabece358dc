package flight

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"travel/pkg/cache"
	"travel/pkg/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "travel/internal/flight"

// FlightClient fetches raw results for one search from the data provider.
type FlightClient interface {
	SearchFlights(ctx context.Context, req SearchRequest) ([]FlightRecord, error)
}

type Service struct {
	flightClient FlightClient
	cache        cache.Cache
	ttl          time.Duration
	logger       logger.Logger
	tracer       trace.Tracer
	cacheLookups metric.Int64Counter
	searches     *searchGenerations
}

func NewService(flightClient FlightClient, cache cache.Cache, ttlMinutes int, log logger.Logger) *Service {
	s := &Service{
		flightClient: flightClient,
		cache:        cache,
		ttl:          time.Duration(ttlMinutes) * time.Minute,
		logger:       log,
		tracer:       otel.Tracer(instrumentationName),
		searches:     newSearchGenerations(),
	}

	counter, err := otel.Meter(instrumentationName).Int64Counter(
		"flight.search.cache",
		metric.WithDescription("search result cache lookups"),
	)
	if err != nil {
		log.Warn("cache lookup counter unavailable", logger.Err(err))
	}
	s.cacheLookups = counter
	return s
}

// generateCacheKey creates a deterministic key from search parameters
func (s *Service) generateCacheKey(req SearchRequest) string {
	key := fmt.Sprintf("flight:%s:%s:%s:%s:%d:%s",
		req.Origin,
		req.Destination,
		req.DepartureDate,
		req.ReturnDate,
		req.Passengers,
		req.CabinClass,
	)

	hash := sha256.Sum256([]byte(key))
	return fmt.Sprintf("flight:search:%x", hash[:16])
}

// SearchFlights returns the normalized result set for a search, from cache
// when possible.
func (s *Service) SearchFlights(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	req = req.normalized()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	gen := s.searches.begin(req.SessionID)
	resp, err := s.load(ctx, req)
	current := s.searches.finish(req.SessionID, gen)
	if err != nil {
		return nil, err
	}
	if !current {
		s.logger.Warn("search superseded by a newer one",
			logger.Field{Key: "session_id", Value: req.SessionID},
			logger.Field{Key: "cache_key", Value: resp.Metadata.CacheKey},
		)
		return nil, ErrSupersededSearch
	}
	return resp, nil
}

func (s *Service) load(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	cacheKey := s.generateCacheKey(req)

	ctx, span := s.tracer.Start(ctx, "flight.search", trace.WithAttributes(
		attribute.String("flight.origin", req.Origin),
		attribute.String("flight.destination", req.Destination),
		attribute.String("flight.departure_date", req.DepartureDate),
	))
	defer span.End()

	cached, err := s.cache.Get(ctx, cacheKey)
	switch {
	case err == nil && cached != "":
		var response SearchResponse
		if err := json.Unmarshal([]byte(cached), &response); err == nil {
			s.countLookup(ctx, true)
			span.SetAttributes(attribute.Bool("flight.cache_hit", true))
			response.Metadata.CacheHit = true
			response.Metadata.CacheKey = cacheKey
			return &response, nil
		}
		s.logger.Error("Failed to unmarshal cached data", logger.Err(err), logger.Field{Key: "cache_key", Value: cacheKey})
	case err != nil && !errors.Is(err, cache.ErrMiss):
		s.logger.Warn("cache lookup failed", logger.Err(err), logger.Field{Key: "cache_key", Value: cacheKey})
	}
	s.countLookup(ctx, false)

	s.logger.Info("Cache miss for search",
		logger.Field{Key: "cache_key", Value: cacheKey},
		logger.Field{Key: "route", Value: req.Origin + "->" + req.Destination},
	)

	startTime := time.Now()
	flights, err := s.flightClient.SearchFlights(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "upstream search failed")
		s.logger.Error("upstream search failed", logger.Err(err), logger.Field{Key: "cache_key", Value: cacheKey})
		return nil, NewUpstreamError(err)
	}
	flights = Normalize(flights)

	response := &SearchResponse{
		SearchCriteria: req.criteria(),
		Metadata: Metadata{
			TotalResults: uint32(len(flights)),
			SearchTimeMs: uint32(time.Since(startTime).Milliseconds()),
			CacheHit:     false,
			CacheKey:     cacheKey,
		},
		Flights: flights,
	}

	responseBytes, err := json.Marshal(response)
	if err != nil {
		s.logger.Error("Failed to marshal response", logger.Err(err))
		return response, nil // Return response even if caching fails
	}
	if err := s.cache.Set(ctx, cacheKey, string(responseBytes), s.ttl); err != nil {
		s.logger.Error("Failed to cache response", logger.Err(err), logger.Field{Key: "cache_key", Value: cacheKey})
	}

	return response, nil
}

func (s *Service) countLookup(ctx context.Context, hit bool) {
	if s.cacheLookups == nil {
		return
	}
	s.cacheLookups.Add(ctx, 1, metric.WithAttributes(attribute.Bool("hit", hit)))
}

// Results runs the display pipeline over one search:
// structural filters, quick filters, badges, then ordering.
func (s *Service) Results(ctx context.Context, req ResultsRequest) (*ResultsResponse, error) {
	if req.Filters != nil {
		if err := req.Filters.Validate(); err != nil {
			return nil, err
		}
	}
	for _, id := range req.QuickFilters {
		if !id.IsValid() {
			return nil, NewValidationError("unknown quick filter: " + string(id))
		}
	}

	sortOpt := req.Sort
	if !sortOpt.IsValid() {
		if sortOpt != "" {
			s.logger.Warn("invalid_sort_criteria", logger.Field{Key: "sort", Value: string(sortOpt)})
		}
		sortOpt = SortBest
	}

	search, err := s.SearchFlights(ctx, req.SearchRequest)
	if err != nil {
		return nil, err
	}

	raw := search.Flights
	bounds := PriceBounds(raw)
	state := DefaultFilterState(bounds)
	if req.Filters != nil {
		state = req.Filters.Resolve(bounds)
	}

	structural := ApplyFilters(raw, state)
	counts := QuickFilterCounts(structural, req.QuickFilters)
	visible := Annotate(ApplyQuickFilters(structural, req.QuickFilters))
	visible = SortFlights(visible, sortOpt)

	metadata := search.Metadata
	metadata.TotalResults = uint32(len(visible))

	return &ResultsResponse{
		SearchCriteria:    search.SearchCriteria,
		Metadata:          metadata,
		Filters:           state,
		Sort:              sortOpt,
		PriceBounds:       bounds,
		Airlines:          AvailableAirlines(raw),
		QuickFilters:      counts,
		ActiveFilterCount: ActiveFilterCount(state, bounds),
		PriceGraph:        PriceGraph(structural),
		Flights:           visible,
	}, nil
}

// InvalidateCache manually invalidates cache for a specific route
func (s *Service) InvalidateCache(ctx context.Context, req SearchRequest) error {
	req = req.normalized()
	if err := req.Validate(); err != nil {
		return err
	}
	cacheKey := s.generateCacheKey(req)
	s.logger.Info("Invalidating cache", logger.Field{Key: "cache_key", Value: cacheKey})
	return s.cache.Del(ctx, cacheKey)
}
