package models

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceMarshalNaNCoordinates(t *testing.T) {
	p := Place{ID: "x", Day: 1, Name: "Mystery spot", Lat: math.NaN(), Lng: math.NaN(), Rating: math.NaN()}

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Nil(t, out["lat"])
	assert.Nil(t, out["lng"])
	assert.NotContains(t, out, "rating")
}

func TestPlaceMarshalRealCoordinates(t *testing.T) {
	p := Place{ID: "x", Lat: 48.86, Lng: 2.35, Rating: 4.2}

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	assert.InDelta(t, 48.86, out["lat"].(float64), 1e-9)
	assert.InDelta(t, 2.35, out["lng"].(float64), 1e-9)
	assert.InDelta(t, 4.2, out["rating"].(float64), 1e-9)
}

func TestPlottable(t *testing.T) {
	assert.True(t, Place{Lat: 1, Lng: 2}.Plottable())
	assert.False(t, Place{Lat: math.NaN(), Lng: 2}.Plottable())
	assert.False(t, Place{Lat: 1, Lng: math.NaN()}.Plottable())
}
