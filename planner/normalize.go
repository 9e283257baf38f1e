package planner

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"wandr/models"
)

// ParseEnvelope unpacks the upstream plan response. The contract is
// {"result": "<JSON-encoded array of stops>"}: the body is parsed once for
// the envelope and once for the embedded string. Either parse failing
// degrades to no stops rather than an error.
func ParseEnvelope(body []byte) []models.Place {
	var envelope struct {
		Result string `json:"result"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return []models.Place{}
	}
	return NormalizePlaces([]byte(envelope.Result))
}

// NormalizePlaces coerces a raw itinerary array into typed places.
// Upstream models are sloppy about field types, so every field is coerced
// individually: numeric strings become numbers, anything unusable becomes
// NaN for coordinates and a zero value elsewhere. Only a payload that is
// not an array at all yields an empty result.
func NormalizePlaces(raw []byte) []models.Place {
	var entries []map[string]any
	if err := json.Unmarshal(raw, &entries); err != nil {
		return []models.Place{}
	}

	places := make([]models.Place, 0, len(entries))
	for _, e := range entries {
		places = append(places, models.Place{
			ID:          asID(e["id"]),
			Day:         asInt(e["day"]),
			StartTime:   asString(e["startTime"]),
			EndTime:     asString(e["endTime"]),
			Name:        asString(e["name"]),
			Lat:         asFloat(e["lat"]),
			Lng:         asFloat(e["lng"]),
			Address:     asString(e["address"]),
			Rating:      asFloat(e["rating"]),
			Phone:       asString(e["phone"]),
			Description: asString(e["description"]),
		})
	}
	return places
}

// asFloat coerces a decoded JSON value to float64, NaN when it cannot.
func asFloat(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(val), 64); err == nil {
			return f
		}
	}
	return math.NaN()
}

func asInt(v any) int {
	switch val := v.(type) {
	case float64:
		return int(val)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(val)); err == nil {
			return n
		}
	}
	return 0
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

// asID keeps stop identifiers as strings; upstream sends them as either
// numbers or strings.
func asID(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	}
	return ""
}
