// Package seed holds the fixed sample catalog used by POST /seed to
// bootstrap an empty database for demos and local development.
package seed

import "github.com/jayxvj/k2k-world/internal/domain"

// Destinations is the sample catalog, inserted in order by the seed
// endpoint. Slugs must stay unique; re-seeding reports duplicates per item.
var Destinations = []domain.Destination{
	{
		Name:             "Kashmir - Paradise on Earth",
		Slug:             "kashmir",
		Price:            25000,
		Duration:         "6 Days / 5 Nights",
		ShortDescription: "Experience the breathtaking beauty of Dal Lake, Mughal gardens, and snow-capped mountains in the crown of India.",
		Description:      "Kashmir, often called 'Paradise on Earth', offers stunning landscapes, serene lakes, and rich cultural heritage. This tour takes you through Srinagar's famous Dal Lake, the beautiful valleys of Pahalgam and Gulmarg, and the pristine meadows that make Kashmir unforgettable.",
		Highlights: []string{
			"Shikara ride on Dal Lake",
			"Stay in traditional houseboats",
			"Visit Mughal Gardens - Nishat, Shalimar",
			"Gondola ride in Gulmarg",
			"Betaab Valley exploration",
		},
		Images: []string{
			"https://images.unsplash.com/photo-1609920658906-8223bd289001?w=800",
			"https://images.unsplash.com/photo-1605640840605-14ac1855827b?w=800",
		},
		Itinerary: []domain.ItineraryDay{
			{Day: 1, Title: "Arrival in Srinagar", Description: "Arrive at Srinagar airport, transfer to houseboat. Evening Shikara ride on Dal Lake."},
			{Day: 2, Title: "Srinagar Sightseeing", Description: "Visit Mughal Gardens - Nishat Bagh, Shalimar Bagh, Chashme Shahi. Explore Shankaracharya Temple."},
			{Day: 3, Title: "Gulmarg Excursion", Description: "Full day trip to Gulmarg. Enjoy Gondola ride to Apharwat Peak. Return to Srinagar."},
			{Day: 4, Title: "Pahalgam Day Trip", Description: "Drive to Pahalgam. Visit Betaab Valley, Aru Valley, and Chandanwari. Return to Srinagar."},
			{Day: 5, Title: "Sonmarg Visit", Description: "Excursion to Sonmarg. Visit Thajiwas Glacier. Return to Srinagar for overnight stay."},
			{Day: 6, Title: "Departure", Description: "After breakfast, transfer to Srinagar airport for your onward journey."},
		},
		Inclusions: []string{
			"5 nights accommodation (2 nights houseboat + 3 nights hotel)",
			"Daily breakfast and dinner",
			"All transfers and sightseeing by private vehicle",
		},
		Exclusions: []string{
			"Airfare",
			"Gondola tickets",
			"Personal expenses",
		},
		Featured:       true,
		ShowOnHomepage: true,
		Rating:         4.8,
	},
	{
		Name:             "Manali - Himalayan Adventure",
		Slug:             "manali",
		Price:            18000,
		Duration:         "5 Days / 4 Nights",
		ShortDescription: "Adventure and serenity in the heart of Himachal: Solang Valley, Rohtang Pass, and old Manali charm.",
		Description:      "Manali blends adventure sports with Himalayan calm. Paraglide over Solang Valley, cross the Atal Tunnel to Sissu, walk the orchards of old Manali, and end your days by the Beas river.",
		Highlights: []string{
			"Paragliding in Solang Valley",
			"Atal Tunnel and Sissu excursion",
			"Hadimba Temple visit",
			"Old Manali cafes and walks",
		},
		Images: []string{
			"https://images.unsplash.com/photo-1626621341517-bbf3d9990a23?w=800",
		},
		Itinerary: []domain.ItineraryDay{
			{Day: 1, Title: "Arrival in Manali", Description: "Check in, acclimatize, evening walk along Mall Road."},
			{Day: 2, Title: "Solang Valley", Description: "Adventure day: paragliding, zorbing, ropeway. Evening at leisure."},
			{Day: 3, Title: "Atal Tunnel and Sissu", Description: "Drive through Atal Tunnel to Sissu waterfall and Lahaul views."},
			{Day: 4, Title: "Local Sightseeing", Description: "Hadimba Temple, Manu Temple, Vashisht hot springs, old Manali."},
			{Day: 5, Title: "Departure", Description: "Breakfast and onward journey."},
		},
		Inclusions: []string{
			"4 nights hotel accommodation",
			"Daily breakfast",
			"Private cab for all sightseeing",
		},
		Exclusions: []string{
			"Adventure activity fees",
			"Lunch and dinner",
		},
		Featured:       true,
		ShowOnHomepage: true,
		Rating:         4.6,
	},
	{
		Name:             "Goa - Beaches & Beyond",
		Slug:             "goa",
		Price:            15000,
		Duration:         "4 Days / 3 Nights",
		ShortDescription: "Sun, sand, and Portuguese heritage on India's favourite coastline.",
		Description:      "From the buzzing beaches of North Goa to the quiet sands of the south, this tour covers the forts, churches, markets, and nightlife that make Goa a year-round favourite.",
		Highlights: []string{
			"Baga and Calangute beaches",
			"Fort Aguada at sunset",
			"Old Goa churches - Basilica of Bom Jesus",
			"Anjuna flea market",
		},
		Images: []string{
			"https://images.unsplash.com/photo-1512343879784-a960bf40e7f2?w=800",
		},
		Itinerary: []domain.ItineraryDay{
			{Day: 1, Title: "Arrival", Description: "Check in near Baga beach, evening by the sea."},
			{Day: 2, Title: "North Goa", Description: "Fort Aguada, Candolim, Calangute, Baga. Nightlife at Tito's lane."},
			{Day: 3, Title: "Old Goa and Panjim", Description: "Basilica of Bom Jesus, Se Cathedral, Fontainhas walk, river cruise."},
			{Day: 4, Title: "Departure", Description: "Beach morning and onward journey."},
		},
		Inclusions: []string{
			"3 nights hotel accommodation",
			"Daily breakfast",
			"Airport transfers",
		},
		Exclusions: []string{
			"Water sports",
			"Cruise tickets",
		},
		Featured:       false,
		ShowOnHomepage: true,
		Rating:         4.4,
	},
	{
		Name:             "Kerala - God's Own Country",
		Slug:             "kerala",
		Price:            22000,
		Duration:         "6 Days / 5 Nights",
		ShortDescription: "Backwaters, hill stations, and spice gardens across Munnar, Thekkady, and Alleppey.",
		Description:      "A classic Kerala circuit: tea estates of Munnar, wildlife of Thekkady, a houseboat night on the Alleppey backwaters, and the colonial lanes of Fort Kochi.",
		Highlights: []string{
			"Houseboat stay in Alleppey",
			"Munnar tea plantation walk",
			"Periyar wildlife sanctuary",
			"Kathakali performance in Kochi",
		},
		Images: []string{
			"https://images.unsplash.com/photo-1602216056096-3b40cc0c9944?w=800",
		},
		Itinerary: []domain.ItineraryDay{
			{Day: 1, Title: "Arrival in Kochi", Description: "Fort Kochi walk, Chinese fishing nets, Kathakali show."},
			{Day: 2, Title: "Kochi to Munnar", Description: "Scenic drive with waterfall stops, evening in town."},
			{Day: 3, Title: "Munnar", Description: "Tea museum, Mattupetty dam, Eravikulam National Park."},
			{Day: 4, Title: "Munnar to Thekkady", Description: "Spice garden tour, Periyar lake boat ride."},
			{Day: 5, Title: "Alleppey Houseboat", Description: "Board a houseboat, cruise the backwaters, overnight on board."},
			{Day: 6, Title: "Departure", Description: "Disembark and transfer to Kochi airport."},
		},
		Inclusions: []string{
			"5 nights accommodation including houseboat",
			"Daily breakfast, all meals on houseboat",
			"Private vehicle throughout",
		},
		Exclusions: []string{
			"Airfare",
			"Entry tickets",
		},
		Featured:       true,
		ShowOnHomepage: true,
		Rating:         4.9,
	},
	{
		Name:             "Rajasthan - Royal Heritage",
		Slug:             "rajasthan",
		Price:            28000,
		Duration:         "7 Days / 6 Nights",
		ShortDescription: "Palaces, forts, and desert nights across Jaipur, Jodhpur, and Jaisalmer.",
		Description:      "Live the royal life: the pink city of Jaipur, the blue lanes of Jodhpur, and a camel safari into the Thar dunes outside golden Jaisalmer, staying in heritage havelis along the way.",
		Highlights: []string{
			"Amber Fort elephant ride",
			"Mehrangarh Fort and the blue city",
			"Camel safari and desert camp",
			"Heritage haveli stays",
		},
		Images: []string{
			"https://images.unsplash.com/photo-1477587458883-47145ed94245?w=800",
		},
		Itinerary: []domain.ItineraryDay{
			{Day: 1, Title: "Arrival in Jaipur", Description: "City Palace and Hawa Mahal, evening bazaar walk."},
			{Day: 2, Title: "Jaipur Forts", Description: "Amber Fort, Jaigarh, Nahargarh sunset point."},
			{Day: 3, Title: "Jaipur to Jodhpur", Description: "Drive via Ajmer and Pushkar, evening at leisure."},
			{Day: 4, Title: "Jodhpur", Description: "Mehrangarh Fort, Jaswant Thada, clock tower market."},
			{Day: 5, Title: "Jodhpur to Jaisalmer", Description: "Golden city arrival, sunset at Gadisar lake."},
			{Day: 6, Title: "Jaisalmer and Desert Camp", Description: "Fort and havelis, camel safari to Sam dunes, folk night."},
			{Day: 7, Title: "Departure", Description: "Return transfer after breakfast."},
		},
		Inclusions: []string{
			"6 nights accommodation including desert camp",
			"Daily breakfast and dinner",
			"Private air-conditioned vehicle",
		},
		Exclusions: []string{
			"Monument entry fees",
			"Camera charges",
		},
		Featured:       false,
		ShowOnHomepage: true,
		Rating:         4.7,
	},
	{
		Name:             "Delhi & Agra - Golden Triangle Express",
		Slug:             "delhi-agra",
		Price:            12000,
		Duration:         "3 Days / 2 Nights",
		ShortDescription: "The capital's landmarks and the Taj Mahal in one compact getaway.",
		Description:      "A quick heritage escape covering Delhi's Mughal and colonial landmarks before an early-morning Taj Mahal visit and Agra Fort, ideal for a long weekend.",
		Highlights: []string{
			"Sunrise at the Taj Mahal",
			"Red Fort and Jama Masjid",
			"Qutub Minar and Humayun's Tomb",
		},
		Images: []string{
			"https://images.unsplash.com/photo-1564507592333-c60657eea523?w=800",
		},
		Itinerary: []domain.ItineraryDay{
			{Day: 1, Title: "Delhi Sightseeing", Description: "Red Fort, Jama Masjid, Rajpath, India Gate, Humayun's Tomb."},
			{Day: 2, Title: "Delhi to Agra", Description: "Drive to Agra, Agra Fort, Mehtab Bagh sunset view of the Taj."},
			{Day: 3, Title: "Taj Mahal and Return", Description: "Sunrise Taj Mahal visit, return to Delhi for departure."},
		},
		Inclusions: []string{
			"2 nights hotel accommodation",
			"Daily breakfast",
			"Private vehicle and tolls",
		},
		Exclusions: []string{
			"Monument entry fees",
			"Guide charges",
		},
		Featured:       false,
		ShowOnHomepage: false,
		Rating:         4.3,
	},
	{
		Name:             "Hyderabad - City of Pearls",
		Slug:             "hyderabad",
		Price:            10000,
		Duration:         "3 Days / 2 Nights",
		ShortDescription: "Charminar, Golconda, and the home of authentic Hyderabadi biryani.",
		Description:      "Hyderabad pairs Nizami heritage with a modern tech skyline. Wander Laad Bazaar under the Charminar, catch the Golconda light and sound show, and spend a full day on the sets of Ramoji Film City.",
		Highlights: []string{
			"Charminar and Laad Bazaar",
			"Golconda Fort light and sound show",
			"Ramoji Film City",
			"Hussain Sagar lake drive",
			"Hyderabadi biryani trail",
		},
		Images: []string{
			"https://images.unsplash.com/photo-1593693397690-362cb9666fc2?w=800",
		},
		Itinerary: []domain.ItineraryDay{
			{Day: 1, Title: "Arrival in Hyderabad", Description: "Check in, Hussain Sagar and Birla Mandir, evening on Necklace Road."},
			{Day: 2, Title: "Old City Sightseeing", Description: "Charminar, Mecca Masjid, Laad Bazaar, Salar Jung Museum, Golconda light show."},
			{Day: 3, Title: "Ramoji Film City", Description: "Full day guided tour, evening transfer for departure."},
		},
		Inclusions: []string{
			"2 nights hotel accommodation",
			"Daily breakfast",
			"Ramoji Film City guided tour",
		},
		Exclusions: []string{
			"Airfare or train tickets",
			"Lunch and dinner",
		},
		Featured:       false,
		ShowOnHomepage: true,
		Rating:         4.5,
	},
	{
		Name:             "Kanyakumari - Southern Tip",
		Slug:             "kanyakumari",
		Price:            14000,
		Duration:         "4 Days / 3 Nights",
		ShortDescription: "Three seas meet at India's southern tip, framed by famous sunrises and sunsets.",
		Description:      "Where the Bay of Bengal, the Arabian Sea, and the Indian Ocean converge. Ferry out to the Vivekananda Rock Memorial, watch the sun rise and set over open water, and cover Trivandrum's temples on the way.",
		Highlights: []string{
			"Vivekananda Rock Memorial ferry",
			"Thiruvalluvar Statue",
			"Sunrise and sunset points",
			"Suchindram Temple",
		},
		Images: []string{
			"https://images.unsplash.com/photo-1609920658906-8223bd289001?w=800",
		},
		Itinerary: []domain.ItineraryDay{
			{Day: 1, Title: "Arrival via Trivandrum", Description: "Padmanabhaswamy Temple and museum, drive to Kanyakumari."},
			{Day: 2, Title: "Kanyakumari Sightseeing", Description: "Sunrise viewing, Vivekananda Rock, Thiruvalluvar Statue, beach sunset."},
			{Day: 3, Title: "Temples and Leisure", Description: "Kumari Amman Temple, Gandhi Memorial, Suchindram, afternoon on the beach."},
			{Day: 4, Title: "Departure", Description: "Transfer to Trivandrum after breakfast."},
		},
		Inclusions: []string{
			"3 nights hotel accommodation",
			"Daily breakfast",
			"Ferry to Vivekananda Rock",
		},
		Exclusions: []string{
			"Airfare or train tickets",
			"Lunch and dinner",
		},
		Featured:       false,
		ShowOnHomepage: true,
		Rating:         4.6,
	},
	{
		Name:             "Mumbai - City of Dreams",
		Slug:             "mumbai",
		Price:            11000,
		Duration:         "3 Days / 2 Nights",
		ShortDescription: "Colonial landmarks, Bollywood, and street food in India's restless financial capital.",
		Description:      "The city that never sleeps: the Gateway of India and Colaba's colonial lanes, a ferry to the Elephanta Caves, a Bollywood studio tour, and sunset chaat on Juhu Beach.",
		Highlights: []string{
			"Gateway of India",
			"Marine Drive at sunset",
			"Elephanta Caves ferry",
			"Bollywood studio tour",
			"Juhu Beach street food",
		},
		Images: []string{
			"https://images.unsplash.com/photo-1566552881560-0be862a7c445?w=800",
		},
		Itinerary: []domain.ItineraryDay{
			{Day: 1, Title: "Arrival in Mumbai", Description: "Gateway of India, Colaba Causeway, sunset on Marine Drive."},
			{Day: 2, Title: "Mumbai Sightseeing", Description: "Elephanta Caves ferry, Haji Ali, Siddhivinayak, evening studio tour."},
			{Day: 3, Title: "Juhu and Departure", Description: "Juhu Beach morning, Linking Road shopping, airport transfer."},
		},
		Inclusions: []string{
			"2 nights hotel accommodation",
			"Daily breakfast",
			"Elephanta ferry and studio tour",
		},
		Exclusions: []string{
			"Airfare",
			"Lunch and dinner",
		},
		Featured:       false,
		ShowOnHomepage: true,
		Rating:         4.5,
	},
	{
		Name:             "Pune - Oxford of the East",
		Slug:             "pune",
		Price:            9000,
		Duration:         "3 Days / 2 Nights",
		ShortDescription: "Maratha forts, old wadas, and cafe culture in Maharashtra's student city.",
		Description:      "A compact weekend circuit: Shaniwar Wada and the Dagdusheth temple in the old town, a morning trek up Sinhagad Fort, and an easy afternoon among the cafes of Koregaon Park.",
		Highlights: []string{
			"Shaniwar Wada",
			"Sinhagad Fort trek",
			"Aga Khan Palace",
			"Koregaon Park cafes",
		},
		Images: []string{
			"https://images.unsplash.com/photo-1605640840605-14ac1855827b?w=800",
		},
		Itinerary: []domain.ItineraryDay{
			{Day: 1, Title: "Arrival in Pune", Description: "Shaniwar Wada, Dagdusheth Halwai Temple, evening in Koregaon Park."},
			{Day: 2, Title: "Forts and Palaces", Description: "Morning Sinhagad trek, Aga Khan Palace, evening on FC Road."},
			{Day: 3, Title: "Museums and Departure", Description: "Raja Dinkar Kelkar Museum, Pataleshwar caves, onward transfer."},
		},
		Inclusions: []string{
			"2 nights hotel accommodation",
			"Daily breakfast",
			"All transfers by private vehicle",
		},
		Exclusions: []string{
			"Airfare or train tickets",
			"Lunch and dinner",
		},
		Featured:       false,
		ShowOnHomepage: true,
		Rating:         4.4,
	},
}
