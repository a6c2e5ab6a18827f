package models

// Place is a named locality returned by the Overpass client.
type Place struct {
	Name string `json:"name"`
}

// City is a searchable city entry.
type City struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Area is a locality inside a city.
type Area struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	CityID string `json:"cityId"`
}
