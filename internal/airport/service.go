package airport

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"time"

	"travel/pkg/cache"
	"travel/pkg/logger"
)

const (
	minKeywordLength    = 2
	nearbyRadiusMiles   = 150
	suggestionKeyPrefix = "airport:suggest:"
)

var ErrInvalidCoordinates = errors.New("latitude must be within [-90,90] and longitude within [-180,180]")

// LocationClient looks airports up in the upstream reference data.
type LocationClient interface {
	SearchLocations(ctx context.Context, keyword string) ([]Airport, error)
	NearbyAirports(ctx context.Context, lat, lon float64) ([]NearbyAirport, error)
}

type Service struct {
	client   LocationClient
	cache    cache.Cache
	ttl      time.Duration
	logger   logger.Logger
	fallback []Airport
}

func NewService(client LocationClient, c cache.Cache, ttlMinutes int, log logger.Logger) *Service {
	return &Service{
		client:   client,
		cache:    c,
		ttl:      time.Duration(ttlMinutes) * time.Minute,
		logger:   log,
		fallback: localAirports,
	}
}

// Suggest completes a search-form airport field. Suggestions are a
// convenience, so upstream failures yield an empty list instead of an error.
func (s *Service) Suggest(ctx context.Context, keyword string) []Airport {
	keyword = strings.TrimSpace(keyword)
	if len([]rune(keyword)) < minKeywordLength {
		return []Airport{}
	}

	key := suggestionKeyPrefix + strings.ToLower(keyword)
	cached, err := s.cache.Get(ctx, key)
	if err == nil {
		var airports []Airport
		if err := json.Unmarshal([]byte(cached), &airports); err == nil {
			return airports
		}
		s.logger.Error("Failed to unmarshal cached suggestions", logger.Field{Key: "cache_key", Value: key})
	} else if !errors.Is(err, cache.ErrMiss) {
		s.logger.Warn("cache lookup failed", logger.Err(err), logger.Field{Key: "cache_key", Value: key})
	}

	airports, err := s.client.SearchLocations(ctx, keyword)
	if err != nil {
		s.logger.Warn("airport suggestions unavailable", logger.Err(err), logger.Field{Key: "keyword", Value: keyword})
		return []Airport{}
	}
	if airports == nil {
		airports = []Airport{}
	}

	if data, err := json.Marshal(airports); err == nil {
		if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
			s.logger.Warn("failed to cache suggestions", logger.Err(err), logger.Field{Key: "cache_key", Value: key})
		}
	}
	return airports
}

// Nearby lists airports around a point. When the upstream fails or finds
// nothing, the built-in airport table within 150 miles is used, nearest first.
func (s *Service) Nearby(ctx context.Context, lat, lon float64) ([]NearbyAirport, error) {
	if !validCoordinates(lat, lon) {
		return nil, ErrInvalidCoordinates
	}

	airports, err := s.client.NearbyAirports(ctx, lat, lon)
	if err != nil {
		s.logger.Warn("nearby airports upstream failed, using local table", logger.Err(err))
	}
	if err != nil || len(airports) == 0 {
		airports = s.localNearby(lat, lon)
	}

	for i := range airports {
		airports[i].DrivingTime = EstimateDrivingTime(float64(airports[i].Distance))
	}
	return airports, nil
}

func (s *Service) localNearby(lat, lon float64) []NearbyAirport {
	nearby := make([]NearbyAirport, 0)
	for _, a := range s.fallback {
		d := DistanceMiles(lat, lon, a.Latitude, a.Longitude)
		if d > nearbyRadiusMiles {
			continue
		}
		nearby = append(nearby, NearbyAirport{Airport: a, Distance: int(d + 0.5)})
	}
	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].Distance < nearby[j].Distance
	})
	return nearby
}
