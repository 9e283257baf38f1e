package planner

import (
	"sort"

	"wandr/models"
)

// NoPlansMessage is what clients render for an empty schedule.
const NoPlansMessage = "No plans available."

// GroupByDay partitions stops into per-day schedules for display: days in
// ascending order, stops within a day in non-decreasing start-time order.
// Start times are zero-padded HH:MM strings, so plain string comparison
// sorts them correctly. Stops with equal start times keep their input
// order.
func GroupByDay(places []models.Place) []models.DayPlan {
	grouped := make(map[int][]models.Place)
	for _, p := range places {
		grouped[p.Day] = append(grouped[p.Day], p)
	}

	days := make([]int, 0, len(grouped))
	for day := range grouped {
		days = append(days, day)
	}
	sort.Ints(days)

	plans := make([]models.DayPlan, 0, len(days))
	for _, day := range days {
		stops := grouped[day]
		sort.SliceStable(stops, func(i, j int) bool {
			return stops[i].StartTime < stops[j].StartTime
		})
		plans = append(plans, models.DayPlan{Day: day, Places: stops})
	}
	return plans
}
