package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/dimasprs/skycast-api/internal/interface/http"
	"github.com/dimasprs/skycast-api/internal/interface/middleware"
	"github.com/dimasprs/skycast-api/pkg/helpers"
)

// ProfileModule registers bearer-protected profile routes.
type ProfileModule struct {
	Handler *handlers.ProfileHandler
	JWT     *helpers.JWTManager
}

func NewProfileModule(h *handlers.ProfileHandler, jwt *helpers.JWTManager) *ProfileModule {
	return &ProfileModule{Handler: h, JWT: jwt}
}

func (m *ProfileModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/profile")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.GET("", m.Handler.Get)
		auth.DELETE("", m.Handler.Delete)
	}
}
