package itinerary

import (
	"fmt"
	"time"

	"github.com/FACorreiaa/go-travel-itinerary-ai/internal/types"
)

const calendarDateLayout = "2006-01-02"

// defaultAccommodationCost is charged when the request carries no budget.
const defaultAccommodationCost = 100

type templateActivity struct {
	time        string
	activity    string
	description string
	cost        float64
}

// dailyActivityTemplate is the fixed per-day schedule of the fallback
// itinerary. Order matters: activities are emitted day-major, then in
// template order, and consumers rely on that grouping.
var dailyActivityTemplate = []templateActivity{
	{time: "09:00", activity: "Breakfast at local cafe", description: "Start your day with local cuisine", cost: 15},
	{time: "10:30", activity: "City walking tour", description: "Explore the main attractions", cost: 25},
	{time: "14:00", activity: "Lunch", description: "Local restaurant", cost: 20},
	{time: "16:00", activity: "Museum visit", description: "Cultural experience", cost: 30},
	{time: "19:00", activity: "Dinner", description: "Fine dining experience", cost: 40},
}

// generateFallbackItinerary builds a deterministic template itinerary
// when the model is unavailable or its output cannot be parsed. It is
// total over valid inputs from resolveDateRange: no external calls, no
// failure path.
func generateFallbackItinerary(destination string, startDate, endDate time.Time, durationDays int, budget float64, travelers int) *types.Itinerary {
	placeholder := types.Location{
		Name:        destination,
		Coordinates: types.Coordinates{Lat: 0.0, Lng: 0.0},
	}

	activities := make([]types.Activity, 0, durationDays*len(dailyActivityTemplate))
	for day := 0; day < durationDays; day++ {
		date := startDate.AddDate(0, 0, day).Format(calendarDateLayout)
		for _, entry := range dailyActivityTemplate {
			activities = append(activities, types.Activity{
				Date:        date,
				Time:        entry.time,
				Activity:    entry.activity,
				Description: entry.description,
				Location:    placeholder,
				Cost:        entry.cost,
				Duration:    120,
			})
		}
	}

	accommodationCost := float64(defaultAccommodationCost)
	if budget > 0 {
		accommodationCost = budget * 0.4
	}

	accommodations := []types.Accommodation{{
		Name:             fmt.Sprintf("Hotel in %s", destination),
		CheckIn:          startDate.Format(calendarDateLayout),
		CheckOut:         endDate.Format(calendarDateLayout),
		Location:         placeholder,
		Cost:             accommodationCost,
		BookingReference: "",
	}}

	return &types.Itinerary{
		Activities:     activities,
		Accommodations: accommodations,
	}
}
