package flightclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"travel/internal/airport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const locationsFixture = `{
  "data": [
    {
      "subType": "AIRPORT", "name": "JOHN F KENNEDY INTL", "iataCode": "JFK",
      "geoCode": {"latitude": 40.63980, "longitude": -73.77890},
      "address": {"cityName": "NEW YORK", "countryName": "UNITED STATES OF AMERICA"},
      "distance": {"value": 20, "unit": "KM"}
    },
    {
      "subType": "AIRPORT", "name": "NEWARK", "iataCode": "EWR",
      "address": {"countryName": "UNITED STATES OF AMERICA"},
      "distance": {"value": 13, "unit": "MI"}
    },
    {"subType": "CITY", "name": "SOMEWHERE", "iataCode": ""}
  ]
}`

func newLocationsServer(t *testing.T, status int, check func(r *http.Request)) *httptest.Server {
	t.Helper()
	serve := func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		if check != nil {
			check(r)
		}
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(locationsFixture))
	}

	mux := http.NewServeMux()
	mux.HandleFunc(tokenPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok-123","token_type":"Bearer","expires_in":1799}`))
	})
	mux.HandleFunc(locationsPath, serve)
	mux.HandleFunc(nearbyAirportsPath, serve)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestAmadeusClient_SearchLocations(t *testing.T) {
	srv := newLocationsServer(t, http.StatusOK, func(r *http.Request) {
		assert.Equal(t, locationsPath, r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "new y", q.Get("keyword"))
		assert.Equal(t, "AIRPORT,CITY", q.Get("subType"))
		assert.Equal(t, "10", q.Get("page[limit]"))
	})

	got, err := newTestClient(srv.URL).SearchLocations(context.Background(), "new y")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, airport.Airport{
		Code: "JFK", Name: "JOHN F KENNEDY INTL", City: "NEW YORK", Country: "UNITED STATES OF AMERICA",
		Latitude: 40.6398, Longitude: -73.7789,
	}, got[0])
	assert.Equal(t, "NEWARK", got[1].City)
}

func TestAmadeusClient_NearbyAirports(t *testing.T) {
	srv := newLocationsServer(t, http.StatusOK, func(r *http.Request) {
		assert.Equal(t, nearbyAirportsPath, r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "40.7", q.Get("latitude"))
		assert.Equal(t, "-73.9", q.Get("longitude"))
		assert.Equal(t, "100", q.Get("radius"))
	})

	got, err := newTestClient(srv.URL).NearbyAirports(context.Background(), 40.7, -73.9)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "JFK", got[0].Code)
	assert.Equal(t, 12, got[0].Distance)
	assert.Equal(t, 13, got[1].Distance)
	assert.Empty(t, got[0].DrivingTime)
}

func TestAmadeusClient_Locations_Non200(t *testing.T) {
	srv := newLocationsServer(t, http.StatusBadGateway, nil)

	_, err := newTestClient(srv.URL).SearchLocations(context.Background(), "paris")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")

	_, err = newTestClient(srv.URL).NearbyAirports(context.Background(), 1, 2)
	assert.Error(t, err)
}
