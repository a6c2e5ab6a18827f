package location

import (
	"eventhub/utils"
)

// cityAliases maps alternate spellings and satellite towns to the canonical key
// used for cache keys and fallback lookups.
var cityAliases = map[string]string{
	"bengaluru":     "bangalore",
	"bombay":        "mumbai",
	"madras":        "chennai",
	"calcutta":      "kolkata",
	"new delhi":     "delhi",
	"noida":         "delhi",
	"greater noida": "delhi",
	"gurugram":      "gurgaon",
	"poona":         "pune",
	"mysuru":        "mysore",
	"trivandrum":    "thiruvananthapuram",
	"vizag":         "visakhapatnam",
	"baroda":        "vadodara",
	"cochin":        "kochi",
	"ernakulam":     "kochi",
	"banaras":       "varanasi",
	"benares":       "varanasi",
	"secunderabad":  "hyderabad",
	"prayagraj":     "allahabad",
	"pondicherry":   "puducherry",
	"panaji":        "goa",
}

// adjacentCities lists canonical cities within common event-travel distance of each other.
var adjacentCities = map[string][]string{
	"delhi":            {"gurgaon", "faridabad", "ghaziabad"},
	"gurgaon":          {"delhi", "faridabad"},
	"faridabad":        {"delhi", "gurgaon"},
	"ghaziabad":        {"delhi"},
	"mumbai":           {"thane", "navi mumbai", "kalyan-dombivli", "vasai-virar"},
	"thane":            {"mumbai", "navi mumbai", "kalyan-dombivli"},
	"navi mumbai":      {"mumbai", "thane"},
	"pune":             {"pimpri-chinchwad"},
	"pimpri-chinchwad": {"pune"},
	"bangalore":        {"mysore"},
	"mysore":           {"bangalore"},
	"kolkata":          {"howrah"},
	"howrah":           {"kolkata"},
	"ahmedabad":        {"gandhinagar", "vadodara"},
	"vadodara":         {"ahmedabad"},
	"chandigarh":       {"mohali", "panchkula"},
	"chennai":          {"puducherry"},
	"kochi":            {"thiruvananthapuram"},
	"lucknow":          {"kanpur"},
	"kanpur":           {"lucknow"},
	"jaipur":           {"ajmer"},
	"indore":           {"bhopal", "ujjain"},
	"bhopal":           {"indore"},
}

// NormalizeCity folds case and diacritics and resolves known aliases,
// so "Bengaluru" and "bangalore" produce the same key.
func NormalizeCity(name string) string {
	key := utils.Fold(name)
	if canonical, ok := cityAliases[key]; ok {
		return canonical
	}
	return key
}

// CityID is the stable identifier of a city in the locations API.
func CityID(name string) string {
	return utils.Slug(NormalizeCity(name))
}

// AliasesOf returns every alias that resolves to the canonical form of city, excluding the canonical name.
func AliasesOf(city string) []string {
	canonical := NormalizeCity(city)
	var out []string
	for alias, target := range cityAliases {
		if target == canonical {
			out = append(out, alias)
		}
	}
	return out
}

// AdjacentCities returns the canonical neighbours of city.
func AdjacentCities(city string) []string {
	return adjacentCities[NormalizeCity(city)]
}

// IsAdjacent reports whether two cities are listed as neighbours.
func IsAdjacent(a, b string) bool {
	nb := NormalizeCity(b)
	for _, c := range AdjacentCities(a) {
		if c == nb {
			return true
		}
	}
	return false
}

// SameCity compares two city names after alias resolution.
func SameCity(a, b string) bool {
	na := NormalizeCity(a)
	return na != "" && na == NormalizeCity(b)
}

func citiesCacheKey() string {
	return "cities_india"
}

func areasCacheKey(city string) string {
	return "areas_" + NormalizeCity(city)
}
