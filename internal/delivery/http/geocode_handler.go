package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gogreen/tree-donation-service/internal/domain"
)

type GeocodeHandler struct {
	geocoder domain.Geocoder
}

func NewGeocodeHandler(geocoder domain.Geocoder) *GeocodeHandler {
	return &GeocodeHandler{geocoder: geocoder}
}

type geocodeResult struct {
	PlaceName string  `json:"place_name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Search proxies place autocomplete. Queries under three characters return
// an empty list without touching the upstream.
func (h *GeocodeHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if len(query) < 3 {
		c.JSON(http.StatusOK, gin.H{"results": []geocodeResult{}})
		return
	}

	found, err := h.geocoder.Search(c.Request.Context(), query, c.Query("country"))
	if err != nil {
		respondError(c, err)
		return
	}

	results := make([]geocodeResult, 0, len(found))
	for _, r := range found {
		results = append(results, geocodeResult{
			PlaceName: r.PlaceName,
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
		})
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}
