package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/roams-app/roams-server/internal/guide"
)

// GuideHandlers exposes the content generation service over REST. The
// service is a black box: each handler formats a prompt, forwards it, and
// returns whatever markdown comes back. Generation failures surface as the
// operation's static fallback text, never as an HTTP error.
type GuideHandlers struct {
	guide *guide.Client
	log   *zerolog.Logger
}

// NewGuideHandlers creates a new guide handlers instance.
func NewGuideHandlers(g *guide.Client, logger *zerolog.Logger) *GuideHandlers {
	return &GuideHandlers{
		guide: g,
		log:   logger,
	}
}

// CountryGuideRequest represents the country guide request body.
type CountryGuideRequest struct {
	Country string `json:"country" binding:"required"`
}

// TravelInfoRequest represents the real-time travel info request body.
type TravelInfoRequest struct {
	From string `json:"from" binding:"required"`
	To   string `json:"to" binding:"required"`
}

// ItineraryRequest represents the itinerary request body.
type ItineraryRequest struct {
	Destination string `json:"destination" binding:"required"`
	Days        int    `json:"days" binding:"required,min=1,max=30"`
	Interests   string `json:"interests" binding:"required"`
}

// NearbyRequest represents the nearby-place search request body.
type NearbyRequest struct {
	Query string   `json:"query" binding:"required"`
	Lat   *float64 `json:"lat,omitempty"`
	Lng   *float64 `json:"lng,omitempty"`
}

// ContentResponse carries a markdown blob from the generation service.
type ContentResponse struct {
	Content string `json:"content"`
}

// CountryGuide handles country guide generation.
// POST /api/guide/country
func (h *GuideHandlers) CountryGuide(c *gin.Context) {
	var req CountryGuideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Msg("invalid country guide request")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	content := h.guide.CountryGuide(c.Request.Context(), req.Country)
	c.JSON(http.StatusOK, ContentResponse{Content: content})
}

// TravelInfo handles real-time travel info lookup.
// POST /api/guide/travel-info
func (h *GuideHandlers) TravelInfo(c *gin.Context) {
	var req TravelInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Msg("invalid travel info request")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	content := h.guide.RealTimeTravelInfo(c.Request.Context(), req.From, req.To)
	c.JSON(http.StatusOK, ContentResponse{Content: content})
}

// Itinerary handles itinerary planning.
// POST /api/guide/itinerary
func (h *GuideHandlers) Itinerary(c *gin.Context) {
	var req ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Msg("invalid itinerary request")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	content := h.guide.PlanItinerary(c.Request.Context(), req.Destination, req.Days, req.Interests)
	c.JSON(http.StatusOK, ContentResponse{Content: content})
}

// Nearby handles nearby-place search.
// POST /api/guide/nearby
func (h *GuideHandlers) Nearby(c *gin.Context) {
	var req NearbyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Msg("invalid nearby search request")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	content := h.guide.SearchPlacesNearby(c.Request.Context(), req.Query, req.Lat, req.Lng)
	c.JSON(http.StatusOK, ContentResponse{Content: content})
}
