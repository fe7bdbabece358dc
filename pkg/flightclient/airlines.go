package flightclient

var airlineNames = map[string]string{
	"AA": "American Airlines",
	"UA": "United Airlines",
	"DL": "Delta Air Lines",
	"WN": "Southwest Airlines",
	"B6": "JetBlue Airways",
	"AS": "Alaska Airlines",
	"NK": "Spirit Airlines",
	"F9": "Frontier Airlines",
	"BA": "British Airways",
	"LH": "Lufthansa",
	"AF": "Air France",
	"EK": "Emirates",
	"QF": "Qantas",
	"SQ": "Singapore Airlines",
	"CX": "Cathay Pacific",
	"QR": "Qatar Airways",
	"TK": "Turkish Airlines",
	"EY": "Etihad Airways",
}

// airlineName falls back to the carrier code for carriers we have no name for.
func airlineName(code string) string {
	if name, ok := airlineNames[code]; ok {
		return name
	}
	return code
}
