package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaustubh03-ks/covid-19-analysis/internal/chart"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/service"
)

func (h *Handler) initChartsRoutes(api *gin.RouterGroup) {
	api.GET("/charts/:kind", h.getChart)
}

type chartQuery struct {
	Country string `form:"country"`
	With    string `form:"with"`
	Horizon int    `form:"horizon" binding:"min=0,max=365"`
	Format  string `form:"format" binding:"omitempty,oneof=png svg"`
	dateRangeQuery
}

// @Summary Render Chart
// @Tags Charts
// @Description Server rendered chart image
// @ModuleID getChart
// @Produce  png
// @Produce  image/svg+xml
// @Param kind path string true "trend, growth, cfr, recovery, active, regions, compare-rates, compare-confirmed or forecast"
// @Param country query string false "Country/Region, empty for global charts"
// @Param with query string false "Second country for comparison charts"
// @Param from query string false "First date, YYYY-MM-DD"
// @Param to query string false "Last date, YYYY-MM-DD"
// @Param horizon query int false "Forecast days"
// @Param format query string false "png (default) or svg"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Router /charts/{kind} [get]
func (h *Handler) getChart(c *gin.Context) {
	kind, err := chart.ParseKind(c.Param("kind"))
	if err != nil {
		serviceErrorResponse(c, "parse chart kind", err)
		return
	}
	var q chartQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		validationErrorResponse(c, err)
		return
	}
	format, err := chart.ParseFormat(q.Format)
	if err != nil {
		serviceErrorResponse(c, "parse chart format", err)
		return
	}
	from, to, err := q.bounds()
	if err != nil {
		serviceErrorResponse(c, "parse dates", err)
		return
	}

	img, err := h.services.Charts.Render(c.Request.Context(), service.ChartRequest{
		Kind:    kind,
		Format:  format,
		Country: q.Country,
		With:    q.With,
		From:    from,
		To:      to,
		Horizon: q.Horizon,
	})
	if err != nil {
		serviceErrorResponse(c, "render chart", err)
		return
	}
	c.Header("Cache-Control", "public, max-age=300")
	c.Data(http.StatusOK, img.ContentType, img.Data)
}
