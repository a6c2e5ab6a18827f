package location

import (
	"sort"

	"eventhub/models"
)

// fallbackCities are served when Overpass is unreachable, largest first.
var fallbackCities = []string{
	"Mumbai", "Delhi", "Bangalore", "Hyderabad", "Ahmedabad",
	"Chennai", "Kolkata", "Surat", "Pune", "Jaipur",
	"Lucknow", "Kanpur", "Nagpur", "Indore", "Thane",
	"Bhopal", "Visakhapatnam", "Pimpri-Chinchwad", "Patna", "Vadodara",
	"Ghaziabad", "Ludhiana", "Agra", "Nashik", "Faridabad",
	"Meerut", "Rajkot", "Kalyan-Dombivli", "Vasai-Virar", "Varanasi",
	"Srinagar", "Aurangabad", "Dhanbad", "Amritsar", "Navi Mumbai",
	"Allahabad", "Ranchi", "Howrah", "Coimbatore", "Jabalpur",
	"Gwalior", "Vijayawada", "Jodhpur", "Madurai", "Raipur",
	"Kota", "Guwahati", "Chandigarh", "Solapur", "Hubli-Dharwad",
}

// fallbackAreas holds curated localities keyed by canonical city name.
var fallbackAreas = map[string][]string{
	"mumbai": {
		"Andheri", "Bandra", "Borivali", "Colaba", "Dadar", "Goregaon", "Juhu",
		"Kandivali", "Lower Parel", "Malad", "Powai", "Santacruz", "Worli",
	},
	"delhi": {
		"Chanakyapuri", "Connaught Place", "Dwarka", "Greater Kailash", "Hauz Khas",
		"Janakpuri", "Karol Bagh", "Lajpat Nagar", "Noida Sector 18", "Pitampura",
		"Rajouri Garden", "Rohini", "Saket", "Vasant Kunj",
	},
	"bangalore": {
		"BTM Layout", "Electronic City", "HSR Layout", "Indiranagar", "Jayanagar",
		"JP Nagar", "Koramangala", "Malleshwaram", "Marathahalli", "Rajajinagar",
		"Whitefield", "Yelahanka",
	},
	"hyderabad": {
		"Banjara Hills", "Begumpet", "Gachibowli", "HITEC City", "Jubilee Hills",
		"Kondapur", "Kukatpally", "Madhapur", "Miyapur", "Secunderabad", "Somajiguda",
	},
	"ahmedabad": {
		"Bodakdev", "Chandkheda", "Maninagar", "Navrangpura", "Prahlad Nagar",
		"Satellite", "SG Highway", "Thaltej", "Vastrapur",
	},
	"chennai": {
		"Adyar", "Anna Nagar", "Besant Nagar", "Mylapore", "Nungambakkam",
		"OMR", "Porur", "T Nagar", "Tambaram", "Velachery",
	},
	"kolkata": {
		"Ballygunge", "Behala", "Dum Dum", "Garia", "Gariahat", "New Town",
		"Park Street", "Salt Lake", "Tollygunge",
	},
	"surat": {
		"Adajan", "Athwa", "Citylight", "Katargam", "Pal", "Piplod", "Varachha", "Vesu",
	},
	"pune": {
		"Aundh", "Baner", "Hadapsar", "Hinjewadi", "Kalyani Nagar", "Kharadi",
		"Koregaon Park", "Kothrud", "Viman Nagar", "Wakad",
	},
	"jaipur": {
		"Bani Park", "C-Scheme", "Malviya Nagar", "Mansarovar", "Raja Park",
		"Tonk Road", "Vaishali Nagar", "Vidhyadhar Nagar",
	},
	"lucknow": {
		"Aliganj", "Alambagh", "Gomti Nagar", "Hazratganj", "Indira Nagar",
		"Jankipuram", "Mahanagar",
	},
	"kanpur": {
		"Civil Lines", "Govind Nagar", "Kakadeo", "Kidwai Nagar", "Swaroop Nagar",
	},
	"nagpur": {
		"Civil Lines", "Dharampeth", "Manish Nagar", "Ramdaspeth", "Sadar", "Sitabuldi",
	},
	"indore": {
		"Bhawarkua", "Palasia", "Rajwada", "Sapna Sangeeta", "Vijay Nagar", "AB Road",
	},
	"thane": {
		"Ghodbunder Road", "Hiranandani Estate", "Kolshet", "Majiwada", "Naupada", "Vartak Nagar",
	},
	"bhopal": {
		"Arera Colony", "Bairagarh", "Kolar Road", "MP Nagar", "New Market", "Shahpura",
	},
	"visakhapatnam": {
		"Dwaraka Nagar", "Gajuwaka", "MVP Colony", "Madhurawada", "Rushikonda", "Seethammadhara",
	},
	"patna": {
		"Bailey Road", "Boring Road", "Kankarbagh", "Patliputra", "Rajendra Nagar",
	},
	"vadodara": {
		"Alkapuri", "Akota", "Fatehgunj", "Gotri", "Manjalpur", "Sayajigunj",
	},
	"ludhiana": {
		"BRS Nagar", "Civil Lines", "Model Town", "Sarabha Nagar", "Pakhowal Road",
	},
	"agra": {
		"Dayal Bagh", "Fatehabad Road", "Kamla Nagar", "Sanjay Place", "Tajganj",
	},
	"nashik": {
		"College Road", "Gangapur Road", "Indira Nagar", "Nashik Road", "Panchavati",
	},
	"coimbatore": {
		"Gandhipuram", "Peelamedu", "RS Puram", "Race Course", "Saibaba Colony", "Singanallur",
	},
	"kochi": {
		"Edappally", "Fort Kochi", "Kakkanad", "Kaloor", "MG Road", "Marine Drive", "Vyttila",
	},
	"chandigarh": {
		"Sector 17", "Sector 22", "Sector 35", "Manimajra", "Industrial Area",
	},
	"guwahati": {
		"Beltola", "Dispur", "Ganeshguri", "Paltan Bazaar", "Six Mile", "Zoo Road",
	},
	"gurgaon": {
		"DLF Phase 1", "DLF Phase 3", "Golf Course Road", "MG Road", "Sohna Road", "Sushant Lok",
	},
	"navi mumbai": {
		"Airoli", "Belapur", "Kharghar", "Nerul", "Panvel", "Vashi",
	},
	"varanasi": {
		"Assi", "Bhelupur", "Cantonment", "Godowlia", "Lanka", "Sigra",
	},
	"mysore": {
		"Gokulam", "Hebbal", "Jayalakshmipuram", "Kuvempunagar", "Vijayanagar",
	},
	"thiruvananthapuram": {
		"Kazhakoottam", "Kowdiar", "Pattom", "Sasthamangalam", "Technopark", "Vazhuthacaud",
	},
	"goa": {
		"Anjuna", "Baga", "Calangute", "Candolim", "Margao", "Panaji", "Vasco da Gama",
	},
}

func toPlaces(names []string) []models.Place {
	places := make([]models.Place, 0, len(names))
	for _, n := range names {
		places = append(places, models.Place{Name: n})
	}
	return places
}

// FallbackCities returns the static city list.
func FallbackCities() []models.Place {
	return toPlaces(fallbackCities)
}

// FallbackAreas returns the curated areas for city, or an empty list for unknown cities.
func FallbackAreas(city string) []models.Place {
	return toPlaces(fallbackAreas[NormalizeCity(city)])
}

// CuratedCities lists the canonical cities that have a curated area list.
func CuratedCities() []string {
	out := make([]string, 0, len(fallbackAreas))
	for city := range fallbackAreas {
		out = append(out, city)
	}
	sort.Strings(out)
	return out
}
