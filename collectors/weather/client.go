// Package weather fetches current conditions from the OpenWeatherMap API.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"time"
)

const (
	// currentWeatherEndpoint is the OpenWeatherMap current weather API URL.
	currentWeatherEndpoint = "https://api.openweathermap.org/data/2.5/weather"

	// userAgent identifies hello in request headers.
	userAgent = "hello/0.1.0"

	// requestTimeout is the per-request timeout for the HTTP client.
	requestTimeout = 10 * time.Second

	// maxResponseBytes limits the response body size.
	maxResponseBytes = 1 << 20 // 1 MiB

	// UnitsImperial selects Fahrenheit.
	UnitsImperial = "imperial"
)

// Query holds the request parameters.
type Query struct {
	Location string
	Units    string
	Lang     string
	APIKey   string
}

// Conditions is the subset of the response the greeter displays.
type Conditions struct {
	Icon        string
	Main        string
	Temperature float64
	Units       string
}

// Degrees returns the temperature rounded to whole degrees with its unit,
// e.g. "12°C".
func (c Conditions) Degrees() string {
	unit := "C"
	if c.Units == UnitsImperial {
		unit = "F"
	}
	return fmt.Sprintf("%d°%s", int(math.Round(c.Temperature)), unit)
}

// Emoji returns the symbol for the condition icon code.
func (c Conditions) Emoji() string {
	return IconEmoji(c.Icon)
}

// Text returns the condition and temperature, e.g. "Clear 12°C".
func (c Conditions) Text() string {
	return c.Main + " " + c.Degrees()
}

type apiResponse struct {
	Weather []struct {
		Main string `json:"main"`
		Icon string `json:"icon"`
	} `json:"weather"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
}

// APIError represents a non-success HTTP response from OpenWeatherMap.
type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("weather API error: %s (body: %s)", e.Status, e.Body)
	}
	return fmt.Sprintf("weather API error: %s", e.Status)
}

// Client fetches current conditions.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient creates a Client configured with a 10-second timeout.
// If logger is nil, a no-op logger is used.
func NewClient(logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		baseURL: currentWeatherEndpoint,
		logger:  logger,
	}
}

// Current returns the current conditions for q. Any transport error,
// non-200 status or malformed body is returned as an error.
func (c *Client) Current(ctx context.Context, q Query) (Conditions, error) {
	params := url.Values{}
	params.Set("q", q.Location)
	params.Set("units", q.Units)
	params.Set("lang", q.Lang)
	params.Set("appid", q.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return Conditions{}, fmt.Errorf("creating weather request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("fetching weather", "location", q.Location, "units", q.Units)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Conditions{}, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return Conditions{}, fmt.Errorf("reading weather response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return Conditions{}, &APIError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(body),
		}
	}

	var parsed apiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Conditions{}, fmt.Errorf("parsing weather response: %w", err)
	}
	if len(parsed.Weather) == 0 {
		return Conditions{}, fmt.Errorf("weather response has no conditions")
	}

	return Conditions{
		Icon:        parsed.Weather[0].Icon,
		Main:        parsed.Weather[0].Main,
		Temperature: parsed.Main.Temp,
		Units:       q.Units,
	}, nil
}
