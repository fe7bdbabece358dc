package budget

var builtinDestinations = []Destination{
	{
		ID:                 "japan",
		Name:               "Tokyo",
		Country:            "Japan",
		Region:             "Asia",
		Description:        "Experience the perfect blend of ancient traditions and cutting-edge technology in Japan's vibrant capital.",
		AverageFlightPrice: 1200,
		Currency:           "JPY",
		BestTimeToVisit:    "March-May, September-November",
		Language:           "Japanese",
		Timezone:           "JST (UTC+9)",
		AverageCosts:       AverageCosts{Accommodation: 100, Meals: 40, Transportation: 15, Activities: 30},
		Attractions: []Attraction{
			{ID: "1", Name: "Senso-ji Temple", Description: "Tokyo's oldest and most significant Buddhist temple.", Category: "Culture", EstimatedCost: 0, Duration: "2-3 hours"},
			{ID: "2", Name: "Shibuya Crossing", Description: "The world's busiest pedestrian crossing.", Category: "Landmark", EstimatedCost: 0, Duration: "1 hour"},
			{ID: "3", Name: "teamLab Borderless", Description: "Immersive digital art museum experience.", Category: "Entertainment", EstimatedCost: 30, Duration: "3-4 hours"},
		},
		Tips: []string{
			"Get a Suica or Pasmo card for easy transportation",
			"Learn basic Japanese phrases - locals appreciate the effort",
			"Carry cash - many places don't accept cards",
			"Visit convenience stores for affordable, quality food",
		},
	},
	{
		ID:                 "france",
		Name:               "Paris",
		Country:            "France",
		Region:             "Europe",
		Description:        "The City of Light awaits with world-class art, cuisine, and timeless romance.",
		AverageFlightPrice: 800,
		Currency:           "EUR",
		BestTimeToVisit:    "April-June, September-October",
		Language:           "French",
		Timezone:           "CET (UTC+1)",
		AverageCosts:       AverageCosts{Accommodation: 150, Meals: 50, Transportation: 10, Activities: 25},
		Attractions: []Attraction{
			{ID: "1", Name: "Eiffel Tower", Description: "Iconic iron lattice tower and symbol of Paris.", Category: "Landmark", EstimatedCost: 25, Duration: "2-3 hours"},
			{ID: "2", Name: "Louvre Museum", Description: "World's largest art museum, home to the Mona Lisa.", Category: "Culture", EstimatedCost: 17, Duration: "4-6 hours"},
			{ID: "3", Name: "Montmartre", Description: "Charming hilltop neighborhood with Sacré-Cœur.", Category: "Neighborhood", EstimatedCost: 0, Duration: "3-4 hours"},
		},
		Tips: []string{
			"Book museum tickets online to skip lines",
			"Learn basic French greetings",
			"Metro is the fastest way to get around",
			"Tipping is not expected but appreciated",
		},
	},
	{
		ID:                 "italy",
		Name:               "Rome",
		Country:            "Italy",
		Region:             "Europe",
		Description:        "Walk through millennia of history in the Eternal City.",
		AverageFlightPrice: 750,
		Currency:           "EUR",
		BestTimeToVisit:    "April-June, September-October",
		Language:           "Italian",
		Timezone:           "CET (UTC+1)",
		AverageCosts:       AverageCosts{Accommodation: 120, Meals: 45, Transportation: 8, Activities: 20},
		Attractions: []Attraction{
			{ID: "1", Name: "Colosseum", Description: "Ancient amphitheater and iconic symbol of Rome.", Category: "History", EstimatedCost: 16, Duration: "2-3 hours"},
			{ID: "2", Name: "Vatican Museums", Description: "World-renowned art collection including the Sistine Chapel.", Category: "Culture", EstimatedCost: 20, Duration: "4-5 hours"},
			{ID: "3", Name: "Trevi Fountain", Description: "Baroque masterpiece and Rome's largest fountain.", Category: "Landmark", EstimatedCost: 0, Duration: "30 minutes"},
		},
		Tips: []string{
			"Wear comfortable shoes - you'll walk a lot",
			"Book Vatican tickets well in advance",
			"Avoid tourist trap restaurants near attractions",
			"Validate your bus/metro tickets before boarding",
		},
	},
	{
		ID:                 "thailand",
		Name:               "Bangkok",
		Country:            "Thailand",
		Region:             "Asia",
		Description:        "Discover ornate temples, vibrant street life, and incredible cuisine.",
		AverageFlightPrice: 900,
		Currency:           "THB",
		BestTimeToVisit:    "November-February",
		Language:           "Thai",
		Timezone:           "ICT (UTC+7)",
		AverageCosts:       AverageCosts{Accommodation: 50, Meals: 15, Transportation: 5, Activities: 10},
		Attractions: []Attraction{
			{ID: "1", Name: "Grand Palace", Description: "Stunning royal complex with the Emerald Buddha.", Category: "Culture", EstimatedCost: 15, Duration: "3-4 hours"},
			{ID: "2", Name: "Chatuchak Market", Description: "One of the world's largest weekend markets.", Category: "Shopping", EstimatedCost: 0, Duration: "4-6 hours"},
			{ID: "3", Name: "Wat Arun", Description: "Temple of Dawn with stunning riverside views.", Category: "Culture", EstimatedCost: 3, Duration: "1-2 hours"},
		},
		Tips: []string{
			"Dress modestly when visiting temples",
			"Use the BTS Skytrain to avoid traffic",
			"Negotiate prices at markets",
			"Stay hydrated - it's hot and humid",
		},
	},
	{
		ID:                 "spain",
		Name:               "Barcelona",
		Country:            "Spain",
		Region:             "Europe",
		Description:        "Gaudí's masterpieces, Mediterranean beaches, and vibrant nightlife.",
		AverageFlightPrice: 700,
		Currency:           "EUR",
		BestTimeToVisit:    "May-June, September-October",
		Language:           "Spanish, Catalan",
		Timezone:           "CET (UTC+1)",
		AverageCosts:       AverageCosts{Accommodation: 100, Meals: 35, Transportation: 8, Activities: 20},
		Attractions: []Attraction{
			{ID: "1", Name: "Sagrada Familia", Description: "Gaudí's unfinished masterpiece basilica.", Category: "Architecture", EstimatedCost: 26, Duration: "2-3 hours"},
			{ID: "2", Name: "Park Güell", Description: "Whimsical park with Gaudí's colorful mosaics.", Category: "Park", EstimatedCost: 10, Duration: "2-3 hours"},
			{ID: "3", Name: "La Boqueria Market", Description: "Famous food market on Las Ramblas.", Category: "Food", EstimatedCost: 0, Duration: "1-2 hours"},
		},
		Tips: []string{
			"Book Sagrada Familia tickets months in advance",
			"Siesta time (2-5pm) - many shops close",
			"Dinner starts late - around 9pm",
			"Watch out for pickpockets on Las Ramblas",
		},
	},
	{
		ID:                 "australia",
		Name:               "Sydney",
		Country:            "Australia",
		Region:             "Oceania",
		Description:        "Stunning harbor, iconic landmarks, and beautiful beaches.",
		AverageFlightPrice: 1500,
		Currency:           "AUD",
		BestTimeToVisit:    "September-November, March-May",
		VisaRequired:       true,
		Language:           "English",
		Timezone:           "AEST (UTC+10)",
		AverageCosts:       AverageCosts{Accommodation: 150, Meals: 50, Transportation: 15, Activities: 40},
		Attractions: []Attraction{
			{ID: "1", Name: "Sydney Opera House", Description: "Iconic performing arts venue on the harbor.", Category: "Landmark", EstimatedCost: 40, Duration: "2-3 hours"},
			{ID: "2", Name: "Bondi Beach", Description: "Famous beach with great surfing and coastal walks.", Category: "Beach", EstimatedCost: 0, Duration: "4-6 hours"},
			{ID: "3", Name: "Harbour Bridge Climb", Description: "Climb to the top for panoramic views.", Category: "Adventure", EstimatedCost: 200, Duration: "3-4 hours"},
		},
		Tips: []string{
			"Apply for ETA visa before traveling",
			"Use Opal card for public transport",
			"Slip, slop, slap - sun protection is essential",
			"Tap water is safe to drink",
		},
	},
}
