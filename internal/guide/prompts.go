package guide

import (
	"context"
	"fmt"
)

// CountryGuide returns a markdown travel guide for a country.
func (c *Client) CountryGuide(ctx context.Context, country string) string {
	prompt := fmt.Sprintf(`Provide a vibrant and comprehensive travel guide for %s. Focus heavily on:
    1. The Travel Vibe & Spirit (What it's like to roam here)
    2. Top 5 Must-Visit Places. For EACH place, include:
       - A high-quality image using this format: ![Place Name](https://loremflickr.com/800/500/PlaceName,landmark,vacation/all)
       - A "Why Visit" section explaining what makes it special and fun.
    3. Essential Travel Tips (Transport, safety, local secrets)
    4. Must-Do Activities & Experiences (Hiking, nightlife, shopping, etc.)
    5. Food & Drink (The best local spots to eat like a local)

    Format the response in Markdown with an engaging, adventurous storytelling tone. Ensure images are placed right before or after the description of each place.`, country)

	text, err := c.generate(ctx, c.cfg.GuideModel, generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		Tools:    []tool{{GoogleSearch: &struct{}{}}},
	})
	if err != nil {
		return c.fallback("country_guide", "Sorry, I couldn't find information for that country.", err)
	}
	return text
}

// RealTimeTravelInfo returns current flight, hotel, and cab pricing between
// two locations.
func (c *Client) RealTimeTravelInfo(ctx context.Context, from, to string) string {
	prompt := fmt.Sprintf(`Find real-time travel information from %s to %s.
    Include estimated flight prices, popular hotels in %s with current price ranges, and typical cab fares (Uber/local) within %s.
    Use current data if possible.`, from, to, to, to)

	text, err := c.generate(ctx, c.cfg.GuideModel, generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		Tools:    []tool{{GoogleSearch: &struct{}{}}},
	})
	if err != nil {
		return c.fallback("travel_info", "Could not retrieve real-time travel info.", err)
	}
	return text
}

// PlanItinerary returns a day-by-day itinerary for a destination.
func (c *Client) PlanItinerary(ctx context.Context, destination string, days int, interests string) string {
	prompt := fmt.Sprintf(`Create a detailed %d-day travel itinerary for %s focusing on %s.
    For each day, provide a morning, afternoon, and evening activity with locations and brief descriptions.`, days, destination, interests)

	text, err := c.generate(ctx, c.cfg.GuideModel, generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		Tools:    []tool{{GoogleSearch: &struct{}{}}},
	})
	if err != nil {
		return c.fallback("itinerary", "Could not generate an itinerary.", err)
	}
	return text
}

// SearchPlacesNearby returns places matching a query, optionally anchored to
// coordinates.
func (c *Client) SearchPlacesNearby(ctx context.Context, query string, lat, lng *float64) string {
	req := generateRequest{
		Contents: []content{{Parts: []part{{Text: fmt.Sprintf("Find %s nearby.", query)}}}},
		Tools:    []tool{{GoogleMaps: &struct{}{}}},
	}
	if lat != nil && lng != nil {
		req.ToolConfig = &toolConfig{
			RetrievalConfig: &retrievalConfig{
				LatLng: &latLng{Latitude: *lat, Longitude: *lng},
			},
		}
	}

	text, err := c.generate(ctx, c.cfg.SearchModel, req)
	if err != nil {
		return c.fallback("nearby_search", "No places found.", err)
	}
	return text
}
