package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCity(t *testing.T) {
	cases := map[string]string{
		"Bengaluru":   "bangalore",
		" bangalore ": "bangalore",
		"NOIDA":       "delhi",
		"New  Delhi":  "delhi",
		"Gurugram":    "gurgaon",
		"Indore":      "indore",
		"":            "",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeCity(in), in)
	}
}

func TestCityHelpers(t *testing.T) {
	assert.Equal(t, "navi-mumbai", CityID("Navi Mumbai"))
	assert.Equal(t, "bangalore", CityID("Bengaluru"))
	assert.True(t, SameCity("Noida", "delhi"))
	assert.False(t, SameCity("", ""))
	assert.True(t, IsAdjacent("Gurugram", "Delhi"))
	assert.False(t, IsAdjacent("Mumbai", "Delhi"))
	assert.ElementsMatch(t, []string{"bengaluru"}, AliasesOf("Bangalore"))
}

func TestFallbackData(t *testing.T) {
	assert.Len(t, FallbackCities(), 50)
	assert.GreaterOrEqual(t, len(CuratedCities()), 30)
	for _, city := range CuratedCities() {
		assert.NotEmpty(t, FallbackAreas(city), city)
	}
}
