package entities

// ItineraryStop is one timed stop in a single-day food itinerary.
// Latitude and longitude are model estimates, good enough for map pins.
type ItineraryStop struct {
	TimeSlot        string  `json:"time_slot"`
	TimeRange       string  `json:"time_range"`
	RestaurantName  string  `json:"restaurant_name"`
	Neighborhood    string  `json:"neighborhood"`
	Dish            string  `json:"dish"`
	DishDescription string  `json:"dish_description"`
	CulturalContext string  `json:"cultural_context"`
	WalkingNote     string  `json:"walking_note"`
	Lat             float64 `json:"lat"`
	Lng             float64 `json:"lng"`
	DishImageURL    string  `json:"dish_image_url"`
}

// DayPlan is the payload returned by the single-day itinerary pipeline.
type DayPlan struct {
	City        string          `json:"city"`
	Preferences string          `json:"preferences,omitempty"`
	Stops       []ItineraryStop `json:"stops"`
}
