package airport

// localAirports answers nearby searches when the upstream cannot.
var localAirports = []Airport{
	{Code: "JFK", Name: "John F. Kennedy International Airport", City: "New York", Country: "USA", Latitude: 40.6413, Longitude: -73.7781},
	{Code: "LAX", Name: "Los Angeles International Airport", City: "Los Angeles", Country: "USA", Latitude: 33.9425, Longitude: -118.4081},
	{Code: "ORD", Name: "O'Hare International Airport", City: "Chicago", Country: "USA", Latitude: 41.9742, Longitude: -87.9073},
	{Code: "DFW", Name: "Dallas/Fort Worth International Airport", City: "Dallas", Country: "USA", Latitude: 32.8998, Longitude: -97.0403},
	{Code: "DEN", Name: "Denver International Airport", City: "Denver", Country: "USA", Latitude: 39.8561, Longitude: -104.6737},
	{Code: "SFO", Name: "San Francisco International Airport", City: "San Francisco", Country: "USA", Latitude: 37.6213, Longitude: -122.379},
	{Code: "SEA", Name: "Seattle-Tacoma International Airport", City: "Seattle", Country: "USA", Latitude: 47.4502, Longitude: -122.3088},
	{Code: "ATL", Name: "Hartsfield-Jackson Atlanta International Airport", City: "Atlanta", Country: "USA", Latitude: 33.6407, Longitude: -84.4277},
	{Code: "BOS", Name: "Boston Logan International Airport", City: "Boston", Country: "USA", Latitude: 42.3656, Longitude: -71.0096},
	{Code: "MIA", Name: "Miami International Airport", City: "Miami", Country: "USA", Latitude: 25.7959, Longitude: -80.287},
	{Code: "LGA", Name: "LaGuardia Airport", City: "New York", Country: "USA", Latitude: 40.7769, Longitude: -73.874},
	{Code: "EWR", Name: "Newark Liberty International Airport", City: "Newark", Country: "USA", Latitude: 40.6895, Longitude: -74.1745},
	{Code: "PHX", Name: "Phoenix Sky Harbor International Airport", City: "Phoenix", Country: "USA", Latitude: 33.4373, Longitude: -112.0078},
	{Code: "IAH", Name: "George Bush Intercontinental Airport", City: "Houston", Country: "USA", Latitude: 29.9902, Longitude: -95.3368},
	{Code: "LAS", Name: "Harry Reid International Airport", City: "Las Vegas", Country: "USA", Latitude: 36.084, Longitude: -115.1537},
	{Code: "MCO", Name: "Orlando International Airport", City: "Orlando", Country: "USA", Latitude: 28.4312, Longitude: -81.3081},
	{Code: "MSP", Name: "Minneapolis-Saint Paul International Airport", City: "Minneapolis", Country: "USA", Latitude: 44.8848, Longitude: -93.2223},
	{Code: "DTW", Name: "Detroit Metropolitan Airport", City: "Detroit", Country: "USA", Latitude: 42.2162, Longitude: -83.3554},
	{Code: "PHL", Name: "Philadelphia International Airport", City: "Philadelphia", Country: "USA", Latitude: 39.8744, Longitude: -75.2424},
	{Code: "CLT", Name: "Charlotte Douglas International Airport", City: "Charlotte", Country: "USA", Latitude: 35.214, Longitude: -80.9431},
}
