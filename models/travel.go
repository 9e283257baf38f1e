package models

import (
	"encoding/json"
	"math"
)

// Place is one scheduled stop in a generated travel plan.
// Lat/Lng are NaN when the upstream payload carried no usable coordinate;
// such stops are kept in the schedule but are not plottable on the map.
type Place struct {
	ID          string  `json:"id" bson:"id"`
	Day         int     `json:"day" bson:"day"`
	StartTime   string  `json:"startTime" bson:"startTime"`
	EndTime     string  `json:"endTime" bson:"endTime"`
	Name        string  `json:"name" bson:"name"`
	Lat         float64 `json:"lat" bson:"lat"`
	Lng         float64 `json:"lng" bson:"lng"`
	Address     string  `json:"address" bson:"address"`
	Rating      float64 `json:"rating" bson:"rating"`
	Phone       string  `json:"phone,omitempty" bson:"phone,omitempty"`
	Description string  `json:"description,omitempty" bson:"description,omitempty"`
}

// MarshalJSON emits null for NaN coordinates since encoding/json
// rejects NaN float values outright.
func (p Place) MarshalJSON() ([]byte, error) {
	type alias Place
	aux := struct {
		alias
		Lat    any `json:"lat"`
		Lng    any `json:"lng"`
		Rating any `json:"rating,omitempty"`
	}{alias: alias(p)}

	if !math.IsNaN(p.Lat) {
		aux.Lat = p.Lat
	}
	if !math.IsNaN(p.Lng) {
		aux.Lng = p.Lng
	}
	if !math.IsNaN(p.Rating) {
		aux.Rating = p.Rating
	}
	return json.Marshal(aux)
}

// Plottable reports whether the place has real coordinates.
func (p Place) Plottable() bool {
	return !math.IsNaN(p.Lat) && !math.IsNaN(p.Lng)
}

// DayPlan groups the stops of a single day, ordered by start time.
type DayPlan struct {
	Day    int     `json:"day"`
	Places []Place `json:"places"`
}

// Trip is a persisted travel plan generated from one prompt.
type Trip struct {
	TripID    string  `json:"tripid" bson:"tripid"`
	UserID    string  `json:"user_id" bson:"user_id"`
	Prompt    string  `json:"prompt" bson:"prompt"`
	CreatedAt int64   `json:"createdAt" bson:"createdAt"`
	Places    []Place `json:"places" bson:"places"`
}
