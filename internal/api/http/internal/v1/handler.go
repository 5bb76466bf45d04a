package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/kaustubh03-ks/covid-19-analysis/internal/config"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/service"
)

// @title COVID-19 Analysis API
// @version 1.0
// @description Case, death and recovery statistics with derived epidemiological ratios

// @BasePath /api/v1

type Handler struct {
	services *service.Services
	config   *config.Config
}

func NewHandler(services *service.Services, config *config.Config) *Handler {
	return &Handler{
		services: services,
		config:   config,
	}
}

func (h *Handler) Init(api *gin.RouterGroup) {
	v1 := api.Group("v1")

	h.initDatasetRoutes(v1)
	h.initOverviewRoutes(v1)
	h.initCountriesRoutes(v1)
	h.initForecastRoutes(v1)
	h.initChartsRoutes(v1)
	h.initExportsRoutes(v1)
}
