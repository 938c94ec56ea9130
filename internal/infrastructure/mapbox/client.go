package mapbox

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gogreen/tree-donation-service/internal/config"
	"github.com/gogreen/tree-donation-service/internal/domain"
)

type Client struct {
	baseURL     string
	accessToken string
	resultLimit int
	httpClient  *http.Client
}

func NewClient(cfg config.Mapbox, resultLimit int) *Client {
	if resultLimit <= 0 {
		resultLimit = 5
	}
	return &Client{
		baseURL:     cfg.BaseURL,
		accessToken: cfg.AccessToken,
		resultLimit: resultLimit,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *Client) Configured() bool { return c.accessToken != "" }

type geocodeResponse struct {
	Features []struct {
		PlaceName string    `json:"place_name"`
		Center    []float64 `json:"center"`
	} `json:"features"`
}

func (c *Client) Search(ctx context.Context, query, country string) ([]domain.GeocodeResult, error) {
	if !c.Configured() {
		return nil, domain.E(domain.KindUpstream, "mapbox token is missing on server")
	}

	endpoint := fmt.Sprintf("%s/geocoding/v5/mapbox.places/%s.json", c.baseURL, url.PathEscape(query))
	params := url.Values{}
	params.Set("access_token", c.accessToken)
	params.Set("autocomplete", "true")
	params.Set("limit", strconv.Itoa(c.resultLimit))
	params.Set("types", "place,locality,neighborhood,address")
	params.Set("language", "en")
	if country != "" {
		params.Set("country", strings.ToLower(country))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	response, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.Wrap(domain.KindUpstream, "unable to fetch locations", err)
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, domain.Wrap(domain.KindUpstream, "unable to fetch locations", err)
	}
	if response.StatusCode >= 400 {
		return nil, domain.E(domain.KindUpstream, "unable to fetch locations")
	}

	var payload geocodeResponse
	if err := json.Unmarshal(responseBodyBytes, &payload); err != nil {
		return nil, domain.Wrap(domain.KindUpstream, "unable to fetch locations", err)
	}

	results := make([]domain.GeocodeResult, 0, len(payload.Features))
	for _, feature := range payload.Features {
		if len(feature.Center) < 2 {
			continue
		}
		results = append(results, domain.GeocodeResult{
			PlaceName: feature.PlaceName,
			// Mapbox centers are [longitude, latitude].
			Latitude:  feature.Center[1],
			Longitude: feature.Center[0],
		})
	}

	return results, nil
}

// LiveMapURL points at the interactive street map centered on a pin.
func (c *Client) LiveMapURL(latitude, longitude *float64) string {
	if latitude == nil || longitude == nil || !c.Configured() {
		return ""
	}
	return fmt.Sprintf(
		"https://api.mapbox.com/styles/v1/mapbox/streets-v12.html?title=false&zoomwheel=true&access_token=%s#14/%v/%v",
		url.QueryEscape(c.accessToken), *latitude, *longitude,
	)
}

// SearchURL falls back to a free-text map search when no coordinates exist.
func (c *Client) SearchURL(latitude, longitude *float64, locationText string) string {
	if live := c.LiveMapURL(latitude, longitude); live != "" {
		return live
	}
	if locationText != "" {
		return "https://www.mapbox.com/search?query=" + url.QueryEscape(locationText)
	}
	return ""
}

// StaticMapURL renders a 720x360 preview with a pin, used in emails.
func (c *Client) StaticMapURL(latitude, longitude *float64) string {
	if latitude == nil || longitude == nil || !c.Configured() {
		return ""
	}
	return fmt.Sprintf(
		"https://api.mapbox.com/styles/v1/mapbox/streets-v12/static/pin-s+0f766e(%v,%v)/%v,%v,13,0/720x360?access_token=%s",
		*longitude, *latitude, *longitude, *latitude, c.accessToken,
	)
}
