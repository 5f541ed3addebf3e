package types

// ItineraryRequest is the boundary input for itinerary generation.
// Budget, Travelers and UserPreferences are optional; defaults are
// applied by the service (budget 0, travelers 1, travelStyle
// "mid-range").
type ItineraryRequest struct {
	Destination     string          `json:"destination"`
	StartDate       string          `json:"startDate"`
	EndDate         string          `json:"endDate"`
	Budget          float64         `json:"budget"`
	Travelers       int             `json:"travelers"`
	Preferences     string          `json:"preferences"`
	UserPreferences UserPreferences `json:"userPreferences"`
}

type UserPreferences struct {
	TravelStyle string `json:"travelStyle"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Location carries placeholder coordinates (0, 0) unless the model
// supplies real ones.
type Location struct {
	Name        string      `json:"name"`
	Coordinates Coordinates `json:"coordinates"`
}

// Activity is a single timed entry of an itinerary day.
// Date is a calendar date (YYYY-MM-DD), Time is HH:MM and Duration is
// in minutes.
type Activity struct {
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Activity    string   `json:"activity"`
	Description string   `json:"description"`
	Location    Location `json:"location"`
	Cost        float64  `json:"cost"`
	Duration    int      `json:"duration"`
}

type Accommodation struct {
	Name             string   `json:"name"`
	CheckIn          string   `json:"checkIn"`
	CheckOut         string   `json:"checkOut"`
	Location         Location `json:"location"`
	Cost             float64  `json:"cost"`
	BookingReference string   `json:"bookingReference"`
}

// Itinerary is the full response structure. Activities keep insertion
// order from generation (day-major, then template order); consumers
// rely on that chronological grouping.
type Itinerary struct {
	Activities     []Activity      `json:"activities"`
	Accommodations []Accommodation `json:"accommodations"`
}
