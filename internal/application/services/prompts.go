package services

import (
	"fmt"
	"strings"
)

const restaurantSystemPrompt = `You are a local food guide who knows where residents actually eat, not where tourists queue. Return ONLY valid JSON with this schema:
{
  "restaurants": [
    {
      "name": string,
      "neighborhood": string,
      "cuisine_type": string,
      "vibe_tagline": string (one short punchy phrase),
      "why_local": string (1-2 sentences on why locals love it),
      "url": string (best link found in the context, official site or article)
    }
  ]
}
Recommend 4-6 restaurants drawn only from the provided web context. Prefer neighborhood spots over chains. Keep every field populated; use an empty string when a value is unknown.`

const dishSystemPrompt = `You are a menu expert describing the signature dishes of one specific restaurant. Return ONLY valid JSON with this schema:
{
  "dishes": [
    {
      "name": string,
      "description": string (1-2 appetizing sentences),
      "meal_type": string (one of: breakfast, lunch, dinner, dessert, snack, drink),
      "image_query": string (a short photo search phrase for this dish, e.g. "tonkotsu ramen bowl")
    }
  ]
}
List 3-6 dishes drawn only from the provided context. Keep every field populated.`

const itinerarySystemPrompt = `You are a walking food tour planner building one perfect eating day in a city. Return ONLY valid JSON with this schema:
{
  "stops": [
    {
      "time_slot": string (e.g. "Breakfast", "Mid-morning coffee", "Lunch"),
      "time_range": string (e.g. "8:30-9:30"),
      "restaurant_name": string,
      "neighborhood": string,
      "dish": string,
      "dish_description": string,
      "cultural_context": string (1 sentence on why this food matters here),
      "walking_note": string (how to get to the next stop, or "" for the last),
      "lat": number (best estimate),
      "lng": number (best estimate),
      "image_query": string (short photo search phrase for the dish)
    }
  ]
}
Plan 4-6 stops ordered from morning to night, walkable where possible, drawn from the provided context. Keep every field populated.`

const foodMapSystemPrompt = `You are a food cartographer planning a multi-day eating map of a city. Return ONLY valid JSON with this schema:
{
  "days": [
    {
      "day": number (1-based),
      "label": string (a short theme for the day, e.g. "Old town classics"),
      "stops": [
        {
          "name": string,
          "neighborhood": string,
          "cuisine_type": string,
          "lat": number (best estimate),
          "lng": number (best estimate),
          "signature_dish": string,
          "dish_description": string,
          "why_local": string (1 sentence),
          "time_slot": string (e.g. "Lunch", or ""),
          "time_range": string (e.g. "12:00-13:30", or ""),
          "image_query": string (short photo search phrase for the dish)
        }
      ]
    }
  ]
}
Plan exactly the requested number of days with 3-5 stops each, ordered by time slot within a day, drawn from the provided context. Keep every field populated.`

func buildRestaurantUserPrompt(city, preferences, webContext string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "City: %s\n", city)
	if preferences != "" {
		fmt.Fprintf(&sb, "Diner preferences: %s\n", preferences)
	}
	fmt.Fprintf(&sb, "\nWeb context:\n%s\n", webContext)
	return sb.String()
}

func buildDishUserPrompt(restaurant, city, pageText, webContext string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Restaurant: %s\nCity: %s\n", restaurant, city)
	if pageText != "" {
		fmt.Fprintf(&sb, "\nRestaurant page text:\n%s\n", pageText)
	}
	fmt.Fprintf(&sb, "\nWeb context:\n%s\n", webContext)
	return sb.String()
}

func buildItineraryUserPrompt(city, preferences, webContext string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "City: %s\n", city)
	if preferences != "" {
		fmt.Fprintf(&sb, "Diner preferences: %s\n", preferences)
	}
	fmt.Fprintf(&sb, "\nWeb context:\n%s\n", webContext)
	return sb.String()
}

func buildFoodMapUserPrompt(city string, days int, webContext string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "City: %s\nNumber of days: %d\n", city, days)
	fmt.Fprintf(&sb, "\nWeb context:\n%s\n", webContext)
	return sb.String()
}
