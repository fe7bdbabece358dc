package main

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"time"
)

const mockToken = "mock-access-token"

type tokenResponse struct {
	Type        string `json:"type"`
	TokenType   string `json:"token_type"`
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	State       string `json:"state"`
}

type offersResponse struct {
	Meta struct {
		Count int `json:"count"`
	} `json:"meta"`
	Data []json.RawMessage `json:"data"`
}

// offerHeader holds just enough of an offer to filter it.
type offerHeader struct {
	Itineraries []struct {
		Segments []struct {
			Departure struct {
				IataCode string `json:"iataCode"`
				At       string `json:"at"`
			} `json:"departure"`
			Arrival struct {
				IataCode string `json:"iataCode"`
			} `json:"arrival"`
		} `json:"segments"`
	} `json:"itineraries"`
}

func TokenHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad form: "+err.Error(), http.StatusBadRequest)
		return
	}
	if r.PostForm.Get("grant_type") != "client_credentials" || r.PostForm.Get("client_id") == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid_client"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tokenResponse{
		Type:        "amadeusOAuth2Token",
		TokenType:   "Bearer",
		AccessToken: mockToken,
		ExpiresIn:   1799,
		State:       "approved",
	})
}

func FlightOffersHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if r.Header.Get("Authorization") != "Bearer "+mockToken {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	q := r.URL.Query()
	origin := q.Get("originLocationCode")
	destination := q.Get("destinationLocationCode")
	departureDate := q.Get("departureDate")

	// Fixture offers carry fixed dates; the date only has to be well formed.
	if departureDate != "" {
		if _, err := time.Parse("2006-01-02", departureDate); err != nil {
			http.Error(w, "Invalid departureDate", http.StatusBadRequest)
			return
		}
	}

	data, err := os.ReadFile("mock/files/amadeus_flight_offers.json")
	if err != nil {
		http.Error(w, "Failed to read flight data: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var fileResponse offersResponse
	if err := json.Unmarshal(data, &fileResponse); err != nil {
		http.Error(w, "Failed to parse flight data: "+err.Error(), http.StatusInternalServerError)
		return
	}

	filtered := make([]json.RawMessage, 0, len(fileResponse.Data))
	for _, raw := range fileResponse.Data {
		var o offerHeader
		if err := json.Unmarshal(raw, &o); err != nil || len(o.Itineraries) == 0 {
			continue
		}
		segs := o.Itineraries[0].Segments
		if len(segs) == 0 {
			continue
		}
		if origin != "" && !strings.EqualFold(segs[0].Departure.IataCode, origin) {
			continue
		}
		if destination != "" && !strings.EqualFold(segs[len(segs)-1].Arrival.IataCode, destination) {
			continue
		}
		filtered = append(filtered, raw)
	}

	delay := 50 + rand.Intn(51) // 50 to 100ms
	time.Sleep(time.Duration(delay) * time.Millisecond)

	var resp offersResponse
	resp.Meta.Count = len(filtered)
	resp.Data = filtered

	w.Header().Set("Content-Type", "application/vnd.amadeus+json")
	json.NewEncoder(w).Encode(resp)
}

type locationsFile struct {
	Data []map[string]any `json:"data"`
}

func readLocations(w http.ResponseWriter, r *http.Request) ([]map[string]any, bool) {
	if r.Header.Get("Authorization") != "Bearer "+mockToken {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil, false
	}
	data, err := os.ReadFile("mock/files/amadeus_locations.json")
	if err != nil {
		http.Error(w, "Failed to read location data: "+err.Error(), http.StatusInternalServerError)
		return nil, false
	}
	var f locationsFile
	if err := json.Unmarshal(data, &f); err != nil {
		http.Error(w, "Failed to parse location data: "+err.Error(), http.StatusInternalServerError)
		return nil, false
	}
	return f.Data, true
}

// LocationsHandler matches the keyword against IATA code, name and city.
func LocationsHandler(w http.ResponseWriter, r *http.Request) {
	locations, ok := readLocations(w, r)
	if !ok {
		return
	}
	keyword := strings.ToUpper(r.URL.Query().Get("keyword"))

	matched := make([]map[string]any, 0)
	for _, l := range locations {
		city := ""
		if addr, ok := l["address"].(map[string]any); ok {
			city, _ = addr["cityName"].(string)
		}
		code, _ := l["iataCode"].(string)
		name, _ := l["name"].(string)
		if strings.HasPrefix(code, keyword) || strings.Contains(name, keyword) || strings.Contains(city, keyword) {
			matched = append(matched, l)
		}
	}

	w.Header().Set("Content-Type", "application/vnd.amadeus+json")
	json.NewEncoder(w).Encode(map[string]any{"meta": map[string]int{"count": len(matched)}, "data": matched})
}

// NearbyAirportsHandler returns the first three fixture airports with fixed distances.
func NearbyAirportsHandler(w http.ResponseWriter, r *http.Request) {
	locations, ok := readLocations(w, r)
	if !ok {
		return
	}
	if len(locations) > 3 {
		locations = locations[:3]
	}
	for i, l := range locations {
		l["distance"] = map[string]any{"value": 15 + i*12, "unit": "KM"}
	}

	w.Header().Set("Content-Type", "application/vnd.amadeus+json")
	json.NewEncoder(w).Encode(map[string]any{"meta": map[string]int{"count": len(locations)}, "data": locations})
}
