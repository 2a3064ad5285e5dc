package entities

// Dish is a signature dish served by a specific restaurant.
// ImageURL stays empty when enrichment is disabled or the lookup failed.
type Dish struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	MealType    string `json:"meal_type"`
	ImageQuery  string `json:"image_query"`
	ImageURL    string `json:"image_url"`
}

// DishMenu is the payload returned by the dish lookup pipeline.
type DishMenu struct {
	Restaurant string `json:"restaurant"`
	City       string `json:"city"`
	Dishes     []Dish `json:"dishes"`
}
