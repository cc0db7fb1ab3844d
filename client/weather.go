package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/smart-closet/closetctl/config"
	"github.com/smart-closet/closetctl/models"
)

// WeatherClient fetches current conditions from the external
// weather-by-coordinates service.
type WeatherClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	units      string
}

func NewWeatherClient(cfg config.WeatherConfig) *WeatherClient {
	return &WeatherClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		units:      cfg.Units,
	}
}

// weatherResponse is the declared shape of the service payload. Only the
// fields the suggestion flow needs are decoded; missing conditions are a
// contract violation and rejected at this boundary.
type weatherResponse struct {
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Main struct {
		FeelsLike float64 `json:"feels_like"`
	} `json:"main"`
}

// Current looks up conditions at the given coordinates. Callers that can
// tolerate missing weather should degrade to an unknown
// models.WeatherReading on error rather than failing their own flow.
func (w *WeatherClient) Current(ctx context.Context, lat, lon float64) (models.WeatherReading, error) {
	if w.apiKey == "" {
		return models.WeatherReading{}, fmt.Errorf("weather API key is not configured")
	}

	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(lat, 'f', 4, 64))
	query.Set("lon", strconv.FormatFloat(lon, 'f', 4, 64))
	query.Set("appid", w.apiKey)
	query.Set("units", w.units)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return models.WeatherReading{}, fmt.Errorf("build weather request: %w", err)
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return models.WeatherReading{}, fmt.Errorf("weather request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.WeatherReading{}, fmt.Errorf("weather service returned status %d", resp.StatusCode)
	}

	var payload weatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return models.WeatherReading{}, fmt.Errorf("decode weather response: %w", err)
	}
	if len(payload.Weather) == 0 {
		return models.WeatherReading{}, fmt.Errorf("weather response has no conditions")
	}

	return models.WeatherReading{
		Description: payload.Weather[0].Description,
		Icon:        payload.Weather[0].Icon,
		FeelsLike:   payload.Main.FeelsLike,
		Known:       true,
	}, nil
}
