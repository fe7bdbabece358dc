package flight

func intPtr(v int) *int { return &v }

func record(id, code string, price float64, duration string, stops int, dep, arr string) FlightRecord {
	return FlightRecord{
		ID:            id,
		Airline:       Airline{Code: code, Name: airlineNames[code]},
		TotalDuration: duration,
		Stops:         stops,
		Price:         Price{Amount: price, Currency: "USD"},
		DepartureTime: dep,
		ArrivalTime:   arr,
		Origin:        "JFK",
		Destination:   "LAX",
	}
}

var airlineNames = map[string]string{
	"AA": "American Airlines",
	"UA": "United Airlines",
	"DL": "Delta Air Lines",
	"B6": "JetBlue Airways",
	"NK": "Spirit Airlines",
	"F9": "Frontier Airlines",
	"WN": "Southwest Airlines",
	"AS": "Alaska Airlines",
	"BA": "British Airways",
}

// sampleFlights is a small mixed result set covering every stop bucket,
// both halves of the day and one record without emissions.
func sampleFlights() []FlightRecord {
	a := record("f1", "AA", 450, "5h 30m", 0, "08:00", "11:30")
	a.CarbonEmissions = intPtr(180)
	b := record("f2", "UA", 280, "7h 15m", 1, "13:45", "21:00")
	b.CarbonEmissions = intPtr(220)
	c := record("f3", "DL", 320, "6h 0m", 0, "19:30", "22:30")
	c.CarbonEmissions = intPtr(170)
	d := record("f4", "NK", 199, "9h 40m", 2, "05:15", "14:55")
	e := record("f5", "AA", 610, "5h 10m", 3, "22:10", "03:20")
	e.CarbonEmissions = intPtr(260)
	return Normalize([]FlightRecord{a, b, c, d, e})
}

func ids(flights []FlightRecord) []string {
	out := make([]string, len(flights))
	for i, f := range flights {
		out[i] = f.ID
	}
	return out
}
