package entities

// MapStop is a geolocated stop on a multi-day food map. TimeSlot and
// TimeRange are optional and empty for stops without a fixed schedule.
type MapStop struct {
	Name            string  `json:"name"`
	Neighborhood    string  `json:"neighborhood"`
	CuisineType     string  `json:"cuisine_type"`
	Lat             float64 `json:"lat"`
	Lng             float64 `json:"lng"`
	SignatureDish   string  `json:"signature_dish"`
	DishDescription string  `json:"dish_description"`
	DishImageURL    string  `json:"dish_image_url"`
	WhyLocal        string  `json:"why_local"`
	TimeSlot        string  `json:"time_slot,omitempty"`
	TimeRange       string  `json:"time_range,omitempty"`
}

// DayItinerary groups the stops planned for one day of a food map.
type DayItinerary struct {
	Day   int       `json:"day"`
	Label string    `json:"label"`
	Stops []MapStop `json:"stops"`
}

// FoodMap is the payload returned by the multi-day map pipeline. Stops holds
// the same records as Days flattened in visit order (day 1 first, in slot
// order); consumers rely on both representations.
type FoodMap struct {
	City  string         `json:"city"`
	Days  []DayItinerary `json:"days"`
	Stops []MapStop      `json:"stops"`
}
