package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initCountriesRoutes(api *gin.RouterGroup) {
	countries := api.Group("/countries")
	{
		countries.GET("", h.getCountries)
		countries.GET("/:country", h.getCountryAnalysis)
		countries.GET("/:country/epidemiology", h.getEpidemiology)
	}
	api.GET("/compare", h.getComparison)
}

type countriesResponse struct {
	Countries []string `json:"countries"`
	Default   string   `json:"default"`
}

// @Summary Get Countries
// @Tags Countries
// @Description Sorted list of countries present in the dataset
// @ModuleID getCountries
// @Produce  json
// @Success 200 {object} countriesResponse
// @Router /countries [get]
func (h *Handler) getCountries(c *gin.Context) {
	ctx := c.Request.Context()
	resp := countriesResponse{Countries: h.services.Countries.List(ctx)}
	resp.Default, _ = h.services.Countries.Default(ctx)
	c.JSON(http.StatusOK, resp)
}

// @Summary Get Country Analysis
// @Tags Countries
// @Description Latest totals, trend, daily growth and rates for one country
// @ModuleID getCountryAnalysis
// @Produce  json
// @Param country path string true "Country/Region as it appears in the dataset"
// @Param from query string false "First date, YYYY-MM-DD"
// @Param to query string false "Last date, YYYY-MM-DD"
// @Success 200 {object} domain.CountryAnalysis
// @Failure 400 {object} ValidationErrorStruct
// @Failure 404 {object} ErrorStruct
// @Router /countries/{country} [get]
func (h *Handler) getCountryAnalysis(c *gin.Context) {
	var q dateRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		validationErrorResponse(c, err)
		return
	}
	from, to, err := q.bounds()
	if err != nil {
		serviceErrorResponse(c, "parse dates", err)
		return
	}

	analysis, err := h.services.Countries.Analyze(c.Request.Context(), c.Param("country"), from, to)
	if err != nil {
		serviceErrorResponse(c, "analyze country", err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}

// @Summary Get Epidemiology
// @Tags Countries
// @Description Case fatality rate, recovery rate and active case ratio over time
// @ModuleID getEpidemiology
// @Produce  json
// @Param country path string true "Country/Region"
// @Success 200 {object} domain.Epidemiology
// @Failure 404 {object} ErrorStruct
// @Router /countries/{country}/epidemiology [get]
func (h *Handler) getEpidemiology(c *gin.Context) {
	epi, err := h.services.Epidemiology.Get(c.Request.Context(), c.Param("country"))
	if err != nil {
		serviceErrorResponse(c, "get epidemiology", err)
		return
	}
	c.JSON(http.StatusOK, epi)
}

type compareQuery struct {
	A string `form:"a"`
	B string `form:"b"`
}

// @Summary Compare Countries
// @Tags Countries
// @Description Latest rates and confirmed trend of two countries. b defaults to the country after a.
// @ModuleID getComparison
// @Produce  json
// @Param a query string false "First country, defaults to the dashboard default"
// @Param b query string false "Second country"
// @Success 200 {object} domain.Comparison
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Router /compare [get]
func (h *Handler) getComparison(c *gin.Context) {
	var q compareQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		validationErrorResponse(c, err)
		return
	}
	cmp, err := h.services.Epidemiology.Compare(c.Request.Context(), q.A, q.B)
	if err != nil {
		serviceErrorResponse(c, "compare countries", err)
		return
	}
	c.JSON(http.StatusOK, cmp)
}
