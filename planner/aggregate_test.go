package planner

import (
	"testing"

	"wandr/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByDayOrdersDaysAndStops(t *testing.T) {
	places := []models.Place{
		{ID: "a", Day: 2, StartTime: "10:00", Name: "Museum"},
		{ID: "b", Day: 1, StartTime: "11:30", Name: "Lunch"},
		{ID: "c", Day: 1, StartTime: "09:00", Name: "Walk"},
	}

	plans := GroupByDay(places)

	require.Len(t, plans, 2)
	assert.Equal(t, 1, plans[0].Day)
	assert.Equal(t, 2, plans[1].Day)

	require.Len(t, plans[0].Places, 2)
	assert.Equal(t, "c", plans[0].Places[0].ID)
	assert.Equal(t, "b", plans[0].Places[1].ID)

	require.Len(t, plans[1].Places, 1)
	assert.Equal(t, "a", plans[1].Places[0].ID)
}

func TestGroupByDayStableOnEqualStartTimes(t *testing.T) {
	places := []models.Place{
		{ID: "first", Day: 1, StartTime: "09:00"},
		{ID: "second", Day: 1, StartTime: "09:00"},
		{ID: "third", Day: 1, StartTime: "09:00"},
	}

	plans := GroupByDay(places)

	require.Len(t, plans, 1)
	require.Len(t, plans[0].Places, 3)
	assert.Equal(t, "first", plans[0].Places[0].ID)
	assert.Equal(t, "second", plans[0].Places[1].ID)
	assert.Equal(t, "third", plans[0].Places[2].ID)
}

func TestGroupByDayEmpty(t *testing.T) {
	plans := GroupByDay(nil)
	assert.Empty(t, plans)
}
