package router

import (
	"github.com/dimasprs/skycast-api/internal/application"
	"github.com/dimasprs/skycast-api/internal/container"
	pginfra "github.com/dimasprs/skycast-api/internal/infrastructure/postgres"
	handlers "github.com/dimasprs/skycast-api/internal/interface/http"
	"github.com/dimasprs/skycast-api/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the router registry.
// This function should be called once during application startup to wire up all modules.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	jwt := container.GetJWT()

	repo := pginfra.NewUserRepository(container.GetPGPool())
	accounts := application.NewAccountService(repo, jwt, logger, cfg.BcryptCost)
	weather := application.NewWeatherService(cfg.OpenWeatherBaseURL, cfg.OpenWeatherAPIKey, logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(accounts, logger)))
	r.Add(modules.NewProfileModule(handlers.NewProfileHandler(accounts, logger), jwt))
	r.Add(modules.NewWeatherModule(handlers.NewWeatherHandler(weather, accounts, logger), jwt))
}
