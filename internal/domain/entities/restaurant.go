package entities

// Restaurant is a single restaurant recommendation extracted from web context.
type Restaurant struct {
	Name         string `json:"name"`
	Neighborhood string `json:"neighborhood"`
	CuisineType  string `json:"cuisine_type"`
	VibeTagline  string `json:"vibe_tagline"`
	WhyLocal     string `json:"why_local"`
	URL          string `json:"url"`
}

// RestaurantRecommendations is the payload returned by the restaurant search pipeline.
type RestaurantRecommendations struct {
	City        string       `json:"city"`
	Preferences string       `json:"preferences,omitempty"`
	Restaurants []Restaurant `json:"restaurants"`
}
