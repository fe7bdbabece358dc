package flightclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"travel/internal/flight"
	"travel/pkg/logger"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	tokenPath        = "/v1/security/oauth2/token"
	flightOffersPath = "/v2/shopping/flight-offers"
	maxOffers        = 50
	logoURLFormat    = "https://images.kiwi.com/airlines/64/%s.png"
)

// AmadeusClient implements flight.FlightClient against the Amadeus Self-Service
// flight offers API.
type AmadeusClient struct {
	httpClient *http.Client
	baseURL    string
	logger     logger.Logger
}

// NewAmadeusClient wraps httpClient with a client-credentials token source.
// Tokens are fetched lazily and reused until they expire.
func NewAmadeusClient(httpClient *http.Client, baseURL, clientID, clientSecret string, log logger.Logger) *AmadeusClient {
	baseURL = strings.TrimRight(baseURL, "/")
	cc := clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     baseURL + tokenPath,
		AuthStyle:    oauth2.AuthStyleInParams,
	}

	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
	authed := cc.Client(ctx)
	authed.Timeout = httpClient.Timeout

	return &AmadeusClient{
		httpClient: authed,
		baseURL:    baseURL,
		logger:     log,
	}
}

type offersResponse struct {
	Data []offer `json:"data"`
}

type offer struct {
	ID                     string             `json:"id"`
	Itineraries            []itinerary        `json:"itineraries"`
	Price                  offerPrice         `json:"price"`
	ValidatingAirlineCodes []string           `json:"validatingAirlineCodes"`
	TravelerPricings       []travelerPricing  `json:"travelerPricings"`
	PricingOptions         offerPricingOption `json:"pricingOptions"`
}

type itinerary struct {
	Duration string    `json:"duration"`
	Segments []segment `json:"segments"`
}

type segment struct {
	Departure    endpoint `json:"departure"`
	Arrival      endpoint `json:"arrival"`
	CarrierCode  string   `json:"carrierCode"`
	Number       string   `json:"number"`
	Duration     string   `json:"duration"`
	Aircraft     aircraft `json:"aircraft"`
	Co2Emissions []co2    `json:"co2Emissions"`
}

type endpoint struct {
	IataCode string `json:"iataCode"`
	Terminal string `json:"terminal"`
	At       string `json:"at"`
}

type aircraft struct {
	Code string `json:"code"`
}

type co2 struct {
	Weight     int    `json:"weight"`
	WeightUnit string `json:"weightUnit"`
}

type offerPrice struct {
	Currency   string `json:"currency"`
	Total      string `json:"total"`
	GrandTotal string `json:"grandTotal"`
}

type offerPricingOption struct {
	RefundableFare bool `json:"refundableFare"`
}

type travelerPricing struct {
	FareDetailsBySegment []fareDetail `json:"fareDetailsBySegment"`
}

type fareDetail struct {
	IncludedCheckedBags *checkedBags `json:"includedCheckedBags"`
}

type checkedBags struct {
	Quantity int `json:"quantity"`
}

var travelClasses = map[string]string{
	flight.CabinPremiumEconomy: "PREMIUM_ECONOMY",
	flight.CabinBusiness:       "BUSINESS",
	flight.CabinFirst:          "FIRST",
}

func (a *AmadeusClient) SearchFlights(ctx context.Context, req flight.SearchRequest) ([]flight.FlightRecord, error) {
	params := url.Values{}
	params.Set("originLocationCode", req.Origin)
	params.Set("destinationLocationCode", req.Destination)
	params.Set("departureDate", req.DepartureDate)
	params.Set("adults", strconv.FormatUint(uint64(req.Passengers), 10))
	params.Set("currencyCode", "USD")
	params.Set("max", strconv.Itoa(maxOffers))
	if req.ReturnDate != "" {
		params.Set("returnDate", req.ReturnDate)
	}
	if class, ok := travelClasses[req.CabinClass]; ok {
		params.Set("travelClass", class)
	}

	var apiResp offersResponse
	if err := a.getJSON(ctx, flightOffersPath, params, "flight offers", &apiResp); err != nil {
		return nil, err
	}

	flights := make([]flight.FlightRecord, 0, len(apiResp.Data))
	for _, o := range apiResp.Data {
		rec, ok := mapOffer(o)
		if !ok {
			a.logger.Warn("skipping offer without segments", logger.Field{Key: "offer_id", Value: o.ID})
			continue
		}
		flights = append(flights, rec)
	}
	a.logger.Debug("amadeus offers mapped",
		logger.Field{Key: "received", Value: len(apiResp.Data)},
		logger.Field{Key: "mapped", Value: len(flights)},
	)
	return flights, nil
}

// getJSON issues an authenticated GET and decodes a 200 response into out.
func (a *AmadeusClient) getJSON(ctx context.Context, path string, params url.Values, what string, out any) error {
	reqURL := fmt.Sprintf("%s%s?%s", a.baseURL, path, params.Encode())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("amadeus: build request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("amadeus: %s call failed: %w", what, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("amadeus: %s returned status %d", what, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("amadeus: decode %s: %w", what, err)
	}
	return nil
}

// mapOffer converts the outbound itinerary of an offer.
func mapOffer(o offer) (flight.FlightRecord, bool) {
	if len(o.Itineraries) == 0 || len(o.Itineraries[0].Segments) == 0 {
		return flight.FlightRecord{}, false
	}
	itin := o.Itineraries[0]
	first := itin.Segments[0]
	last := itin.Segments[len(itin.Segments)-1]

	code := first.CarrierCode
	if len(o.ValidatingAirlineCodes) > 0 && o.ValidatingAirlineCodes[0] != "" {
		code = o.ValidatingAirlineCodes[0]
	}

	segments := make([]flight.Segment, 0, len(itin.Segments))
	emissions, haveEmissions := 0, false
	for _, s := range itin.Segments {
		segments = append(segments, flight.Segment{
			Departure:    flight.SegmentPoint{Airport: s.Departure.IataCode, Time: clock(s.Departure.At), Terminal: s.Departure.Terminal},
			Arrival:      flight.SegmentPoint{Airport: s.Arrival.IataCode, Time: clock(s.Arrival.At), Terminal: s.Arrival.Terminal},
			Duration:     displayDuration(s.Duration),
			CarrierCode:  s.CarrierCode,
			FlightNumber: s.CarrierCode + s.Number,
			Aircraft:     aircraftCode(s.Aircraft),
		})
		for _, c := range s.Co2Emissions {
			emissions += c.Weight
			haveEmissions = true
		}
	}

	minutes, _ := parseISODuration(itin.Duration)
	rec := flight.FlightRecord{
		ID: o.ID,
		Airline: flight.Airline{
			Code: code,
			Name: airlineName(code),
			Logo: fmt.Sprintf(logoURLFormat, code),
		},
		Segments:        segments,
		TotalDuration:   displayDuration(itin.Duration),
		DurationMinutes: minutes,
		Stops:           len(itin.Segments) - 1,
		Price: flight.Price{
			Amount:   offerAmount(o.Price),
			Currency: o.Price.Currency,
		},
		DepartureTime: clock(first.Departure.At),
		ArrivalTime:   clock(last.Arrival.At),
		Origin:        first.Departure.IataCode,
		Destination:   last.Arrival.IataCode,
		IsRefundable:  o.PricingOptions.RefundableFare,
	}
	if haveEmissions {
		rec.CarbonEmissions = &emissions
	}
	if bags := checkedBagsOf(o); bags != nil {
		rec.BaggageAllowance = &flight.Baggage{CarryOn: true, Checked: bags.Quantity}
	}
	return rec, true
}

func checkedBagsOf(o offer) *checkedBags {
	for _, tp := range o.TravelerPricings {
		for _, fd := range tp.FareDetailsBySegment {
			if fd.IncludedCheckedBags != nil {
				return fd.IncludedCheckedBags
			}
		}
	}
	return nil
}

func offerAmount(p offerPrice) float64 {
	raw := p.GrandTotal
	if raw == "" {
		raw = p.Total
	}
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return amount
}

// clock extracts "HH:MM" from a local timestamp like 2025-06-01T10:30:00.
func clock(at string) string {
	_, t, ok := strings.Cut(at, "T")
	if !ok || len(t) < 5 {
		return at
	}
	return t[:5]
}

func aircraftCode(a aircraft) string {
	if a.Code == "" {
		return "Unknown"
	}
	return a.Code
}

// displayDuration renders an ISO-8601 duration the way records show it.
// Unreadable input is passed through so the record sorts as unknown.
func displayDuration(iso string) string {
	minutes, ok := parseISODuration(iso)
	if !ok {
		return iso
	}
	return flight.FormatDuration(minutes)
}
