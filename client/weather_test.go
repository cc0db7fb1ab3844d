package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smart-closet/closetctl/config"
)

func weatherClient(t *testing.T, handler http.HandlerFunc) *WeatherClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewWeatherClient(config.WeatherConfig{BaseURL: server.URL, APIKey: "k", Units: "metric"})
}

func TestWeatherCurrent_ParsesReading(t *testing.T) {
	w := weatherClient(t, func(rw http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "25.0330", r.URL.Query().Get("lat"))
		assert.Equal(t, "121.5654", r.URL.Query().Get("lon"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		rw.Write([]byte(`{"weather": [{"description": "light rain", "icon": "10d"}], "main": {"feels_like": 18.2}}`))
	})

	reading, err := w.Current(context.Background(), 25.0330, 121.5654)
	require.NoError(t, err)
	assert.True(t, reading.Known)
	assert.Equal(t, "light rain", reading.Description)
	assert.Equal(t, "10d", reading.Icon)
	assert.InDelta(t, 18.2, reading.FeelsLike, 0.001)
}

func TestWeatherCurrent_RejectsEmptyConditions(t *testing.T) {
	w := weatherClient(t, func(rw http.ResponseWriter, r *http.Request) {
		rw.Write([]byte(`{"weather": [], "main": {"feels_like": 18.2}}`))
	})

	_, err := w.Current(context.Background(), 0, 0)
	assert.Error(t, err)
}

func TestWeatherCurrent_NonOKStatus(t *testing.T) {
	w := weatherClient(t, func(rw http.ResponseWriter, r *http.Request) {
		http.Error(rw, "invalid key", http.StatusUnauthorized)
	})

	_, err := w.Current(context.Background(), 0, 0)
	assert.Error(t, err)
}

func TestWeatherCurrent_MissingAPIKey(t *testing.T) {
	w := NewWeatherClient(config.WeatherConfig{BaseURL: "http://127.0.0.1:1", Units: "metric"})

	_, err := w.Current(context.Background(), 0, 0)
	assert.Error(t, err)
}
