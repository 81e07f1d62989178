package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
)

// ErrUpstream is returned when the weather provider cannot answer the lookup.
// City-unknown and provider failure are not distinguished to the client.
var ErrUpstream = errors.New("upstream weather lookup failed")

// WeatherReport is the trimmed payload returned to API clients.
type WeatherReport struct {
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Weather   string  `json:"weather"`
	Humidity  int     `json:"humidity"`
	Wind      float64 `json:"wind"`
}

// openWeatherResponse mirrors the fields we read from the OpenWeatherMap
// current-weather endpoint.
type openWeatherResponse struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// WeatherService proxies current-weather lookups to OpenWeatherMap.
type WeatherService struct {
	client  *http.Client
	baseURL string
	apiKey  string
	logger  *logrus.Logger
}

// NewWeatherService builds a weather proxy. No client timeout is set: a hung
// upstream parks only the request that issued the lookup.
func NewWeatherService(baseURL, apiKey string, logger *logrus.Logger) *WeatherService {
	return &WeatherService{
		client:  &http.Client{},
		baseURL: baseURL,
		apiKey:  apiKey,
		logger:  logger,
	}
}

// Current fetches the current weather for a city, in metric units.
func (s *WeatherService) Current(ctx context.Context, city string) (*WeatherReport, error) {
	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", s.apiKey)
	q.Set("units", "metric")
	endpoint := fmt.Sprintf("%s/weather?%s", s.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		if s.logger != nil {
			s.logger.WithError(err).WithField("city", city).Warn("weather upstream unreachable")
		}
		return nil, ErrUpstream
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"city": city, "status": resp.StatusCode}).Warn("weather upstream error")
		}
		return nil, ErrUpstream
	}

	var raw openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		if s.logger != nil {
			s.logger.WithError(err).WithField("city", city).Warn("weather upstream returned bad payload")
		}
		return nil, ErrUpstream
	}

	report := &WeatherReport{
		City:      raw.Name,
		Country:   raw.Sys.Country,
		Temp:      raw.Main.Temp,
		FeelsLike: raw.Main.FeelsLike,
		Humidity:  raw.Main.Humidity,
		Wind:      raw.Wind.Speed,
	}
	if len(raw.Weather) > 0 {
		report.Weather = raw.Weather[0].Description
	}
	return report, nil
}
