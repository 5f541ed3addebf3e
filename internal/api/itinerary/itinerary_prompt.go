package itinerary

import "fmt"

// itineraryPromptTemplate steers the model toward output that matches
// the response schema by spelling the target JSON shape out inline.
const itineraryPromptTemplate = `You are a travel planning assistant. Create a detailed travel itinerary based on the following information:

Destination: %s
Start Date: %s
End Date: %s
Duration: %d days
Budget: $%.2f
Number of Travelers: %d
Travel Style: %s

User Preferences: %s

Create a day-by-day itinerary with:
1. Daily activities with specific times
2. Descriptions for each activity
3. Estimated costs
4. Recommended locations
5. Accommodation suggestions

Format the response as JSON with the following structure:
{
  "activities": [
    {
      "date": "YYYY-MM-DD",
      "time": "HH:MM",
      "activity": "Activity name",
      "description": "Detailed description",
      "location": {
        "name": "Location name",
        "coordinates": {"lat": 0.0, "lng": 0.0}
      },
      "cost": 0,
      "duration": 120
    }
  ],
  "accommodations": [
    {
      "name": "Hotel name",
      "checkIn": "YYYY-MM-DD",
      "checkOut": "YYYY-MM-DD",
      "location": {
        "name": "Location name",
        "coordinates": {"lat": 0.0, "lng": 0.0}
      },
      "cost": 0,
      "bookingReference": ""
    }
  ]
}

Itinerary:`

// buildItineraryPrompt renders the instruction template. Pure string
// substitution: same inputs always produce the same prompt.
func buildItineraryPrompt(destination, startDate, endDate string, durationDays int, budget float64, travelers int, travelStyle, preferences string) string {
	if preferences == "" {
		preferences = "No specific preferences"
	}
	return fmt.Sprintf(itineraryPromptTemplate,
		destination, startDate, endDate, durationDays, budget, travelers, travelStyle, preferences)
}
