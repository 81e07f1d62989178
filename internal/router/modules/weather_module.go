package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/dimasprs/skycast-api/internal/interface/http"
	"github.com/dimasprs/skycast-api/internal/interface/middleware"
	"github.com/dimasprs/skycast-api/pkg/helpers"
)

// WeatherModule registers the bearer-protected weather proxy route.
type WeatherModule struct {
	Handler *handlers.WeatherHandler
	JWT     *helpers.JWTManager
}

func NewWeatherModule(h *handlers.WeatherHandler, jwt *helpers.JWTManager) *WeatherModule {
	return &WeatherModule{Handler: h, JWT: jwt}
}

func (m *WeatherModule) Register(rg *gin.RouterGroup) {
	rg.GET("/weather", middleware.Auth(m.JWT), m.Handler.Current)
}
