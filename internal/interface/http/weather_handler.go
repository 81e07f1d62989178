package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dimasprs/skycast-api/internal/application"
	"github.com/dimasprs/skycast-api/internal/interface/middleware"
	"github.com/dimasprs/skycast-api/pkg/response"
)

type WeatherHandler struct {
	Weather  *application.WeatherService
	Accounts *application.AccountService
	Logger   *logrus.Logger
}

func NewWeatherHandler(weather *application.WeatherService, accounts *application.AccountService, logger *logrus.Logger) *WeatherHandler {
	return &WeatherHandler{Weather: weather, Accounts: accounts, Logger: logger}
}

// Current GET /api/weather?city=<name>
// Proxies the upstream lookup and records the search in the caller's history.
func (h *WeatherHandler) Current(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		response.Message(c, http.StatusBadRequest, "City name is required")
		return
	}

	report, err := h.Weather.Current(c.Request.Context(), city)
	if err != nil {
		// City unknown and provider failure are not distinguished.
		response.Message(c, http.StatusNotFound, "City not found or error fetching weather")
		return
	}

	userID := c.GetString(middleware.CtxUserIDKey)
	if _, err := h.Accounts.AddSearch(c.Request.Context(), userID, city); err != nil {
		// The lookup already succeeded; a failed history write must not fail it.
		if h.Logger != nil {
			h.Logger.WithError(err).WithFields(logrus.Fields{
				"user_id":    userID,
				"city":       city,
				"request_id": c.GetString("request_id"),
				"client_ip":  middleware.ClientIP(c),
			}).Warn("recording weather search failed")
		}
	}

	c.JSON(http.StatusOK, report)
}
