package flightclient

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"travel/internal/airport"
	"travel/pkg/logger"
)

const (
	locationsPath        = "/v1/reference-data/locations"
	nearbyAirportsPath   = "/v1/reference-data/locations/airports"
	maxLocations         = 10
	nearbyRadiusKm       = 100
	distanceUnitKm       = "KM"
	locationSubTypeQuery = "AIRPORT,CITY"
)

type locationsResponse struct {
	Data []location `json:"data"`
}

type location struct {
	SubType  string          `json:"subType"`
	Name     string          `json:"name"`
	IataCode string          `json:"iataCode"`
	GeoCode  geoCode         `json:"geoCode"`
	Address  locationAddress `json:"address"`
	Distance *distance       `json:"distance"`
}

type geoCode struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type locationAddress struct {
	CityName    string `json:"cityName"`
	CountryName string `json:"countryName"`
}

type distance struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// SearchLocations implements airport.LocationClient with the Airport & City
// Search API.
func (a *AmadeusClient) SearchLocations(ctx context.Context, keyword string) ([]airport.Airport, error) {
	params := url.Values{
		"subType":     {locationSubTypeQuery},
		"keyword":     {keyword},
		"page[limit]": {strconv.Itoa(maxLocations)},
	}
	var apiResp locationsResponse
	if err := a.getJSON(ctx, locationsPath, params, "locations", &apiResp); err != nil {
		return nil, err
	}

	airports := make([]airport.Airport, 0, len(apiResp.Data))
	for _, l := range apiResp.Data {
		if l.IataCode == "" {
			continue
		}
		airports = append(airports, mapLocation(l))
	}
	return airports, nil
}

// NearbyAirports implements airport.LocationClient with the Airport Nearest
// Relevant API.
func (a *AmadeusClient) NearbyAirports(ctx context.Context, lat, lon float64) ([]airport.NearbyAirport, error) {
	params := url.Values{
		"latitude":    {strconv.FormatFloat(lat, 'f', -1, 64)},
		"longitude":   {strconv.FormatFloat(lon, 'f', -1, 64)},
		"radius":      {strconv.Itoa(nearbyRadiusKm)},
		"page[limit]": {strconv.Itoa(maxLocations)},
	}
	var apiResp locationsResponse
	if err := a.getJSON(ctx, nearbyAirportsPath, params, "nearby airports", &apiResp); err != nil {
		return nil, err
	}

	nearby := make([]airport.NearbyAirport, 0, len(apiResp.Data))
	for _, l := range apiResp.Data {
		miles := 0.0
		if l.Distance != nil {
			miles = l.Distance.Value
			if strings.EqualFold(l.Distance.Unit, distanceUnitKm) {
				miles = airport.KilometersToMiles(miles)
			}
		}
		nearby = append(nearby, airport.NearbyAirport{
			Airport:  mapLocation(l),
			Distance: int(miles + 0.5),
		})
	}
	a.logger.Debug("amadeus nearby airports mapped", logger.Field{Key: "count", Value: len(nearby)})
	return nearby, nil
}

// mapLocation falls back to the location name when the city is missing.
func mapLocation(l location) airport.Airport {
	city := l.Address.CityName
	if city == "" {
		city = l.Name
	}
	return airport.Airport{
		Code:      l.IataCode,
		Name:      l.Name,
		City:      city,
		Country:   l.Address.CountryName,
		Latitude:  l.GeoCode.Latitude,
		Longitude: l.GeoCode.Longitude,
	}
}
