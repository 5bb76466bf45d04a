package pages

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kaustubh03-ks/covid-19-analysis/internal/analysis"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/chart"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/dataset"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/domain"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/service"
	"github.com/kaustubh03-ks/covid-19-analysis/pkg/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

type Handler struct {
	services *service.Services
}

func NewHandler(services *service.Services) *Handler {
	return &Handler{services: services}
}

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs()).ParseFS(templateFS, "templates/*.html")
}

func (h *Handler) Init(router *gin.Engine) {
	router.SetHTMLTemplate(template.Must(Templates()))

	router.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/overview") })
	router.GET("/overview", h.overview)
	router.GET("/countries", h.countries)
	router.GET("/epidemiology", h.epidemiology)
}

type nav struct {
	Path  string
	Title string
}

var navigation = []nav{
	{Path: "/overview", Title: "Global Overview"},
	{Path: "/countries", Title: "Country Analysis"},
	{Path: "/epidemiology", Title: "Epidemiological Analysis"},
}

type page struct {
	Title   string
	Active  string
	Nav     []nav
	Dataset domain.DatasetInfo
}

func (h *Handler) page(c *gin.Context, title, active string) page {
	return page{Title: title, Active: active, Nav: navigation, Dataset: h.services.Dataset.Info(c.Request.Context())}
}

type overviewPage struct {
	page
	Overview     *domain.Overview
	TrendChart   string
	RegionsChart string
}

func (h *Handler) overview(c *gin.Context) {
	o, err := h.services.Overview.Get(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "overview.html", overviewPage{
		page:         h.page(c, "Global Overview", "/overview"),
		Overview:     o,
		TrendChart:   chartURL(chart.KindTrend),
		RegionsChart: chartURL(chart.KindRegions),
	})
}

type countryQuery struct {
	Country string `form:"country"`
	From    string `form:"from" binding:"omitempty,isodate"`
	To      string `form:"to" binding:"omitempty,isodate"`
}

type countriesPage struct {
	page
	Countries   []string
	Query       countryQuery
	Analysis    *domain.CountryAnalysis
	TrendChart  string
	GrowthChart string
}

func (h *Handler) countries(c *gin.Context) {
	var q countryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.renderStatus(c, http.StatusBadRequest, "Dates must look like 2020-03-01.")
		return
	}
	from, err := optionalDate(q.From)
	if err != nil {
		h.renderError(c, err)
		return
	}
	to, err := optionalDate(q.To)
	if err != nil {
		h.renderError(c, err)
		return
	}

	ctx := c.Request.Context()
	a, err := h.services.Countries.Analyze(ctx, q.Country, from, to)
	if err != nil {
		h.renderError(c, err)
		return
	}
	q.Country = a.Country

	params := []string{"country", a.Country, "from", q.From, "to", q.To}
	c.HTML(http.StatusOK, "countries.html", countriesPage{
		page:        h.page(c, "Country Analysis", "/countries"),
		Countries:   h.services.Countries.List(ctx),
		Query:       q,
		Analysis:    a,
		TrendChart:  chartURL(chart.KindTrend, params...),
		GrowthChart: chartURL(chart.KindGrowth, params...),
	})
}

type epidemiologyQuery struct {
	Country string `form:"country"`
	Tab     string `form:"tab" binding:"omitempty,oneof=cfr recovery active compare"`
	With    string `form:"with"`
}

const tabCompare = "compare"

type tab struct {
	Key   string
	Title string
}

var tabs = []tab{
	{Key: string(analysis.CaseFatality), Title: "Case Fatality Analysis"},
	{Key: string(analysis.Recovery), Title: "Recovery Analysis"},
	{Key: string(analysis.ActiveCases), Title: "Active Case Analysis"},
	{Key: tabCompare, Title: "Comparative Analysis"},
}

var rateExplanations = map[analysis.RateKind]string{
	analysis.CaseFatality: "The share of confirmed cases that ended in death: deaths / confirmed × 100. A higher value points to more severe outcomes.",
	analysis.Recovery:     "The share of confirmed cases that have recovered: recovered / confirmed × 100.",
	analysis.ActiveCases:  "The share of confirmed cases that are still active: active / confirmed × 100. A falling ratio means cases are being resolved.",
}

type epidemiologyPage struct {
	page
	Countries   []string
	Country     string
	Tabs        []tab
	Tab         string
	Rate        analysis.RateKind
	Explanation string
	Latest      float64
	RateChart   string
	Comparison  *domain.Comparison
	Others      []string
	RatesChart  string
	LinesChart  string
}

func (h *Handler) epidemiology(c *gin.Context) {
	var q epidemiologyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.renderStatus(c, http.StatusBadRequest, "Unknown tab.")
		return
	}
	if q.Tab == "" {
		q.Tab = string(analysis.CaseFatality)
	}

	ctx := c.Request.Context()
	p := epidemiologyPage{
		page:      h.page(c, "Epidemiological Analysis", "/epidemiology"),
		Countries: h.services.Countries.List(ctx),
		Tabs:      tabs,
		Tab:       q.Tab,
	}

	if q.Tab == tabCompare {
		cmp, err := h.services.Epidemiology.Compare(ctx, q.Country, q.With)
		if err != nil {
			h.renderError(c, err)
			return
		}
		p.Country = cmp.First.Country
		p.Comparison = cmp
		for _, name := range p.Countries {
			if name != p.Country {
				p.Others = append(p.Others, name)
			}
		}
		params := []string{"country", cmp.First.Country, "with", cmp.Second.Country}
		p.RatesChart = chartURL(chart.KindCompareRates, params...)
		p.LinesChart = chartURL(chart.KindCompareConfirmed, params...)
		c.HTML(http.StatusOK, "epidemiology.html", p)
		return
	}

	epi, err := h.services.Epidemiology.Get(ctx, q.Country)
	if err != nil {
		h.renderError(c, err)
		return
	}
	kind := analysis.RateKind(q.Tab)
	p.Country = epi.Country
	p.Rate = kind
	p.Explanation = rateExplanations[kind]
	p.Latest = kind.Of(epi.Latest)
	p.RateChart = chartURL(chart.Kind(kind), "country", epi.Country)
	c.HTML(http.StatusOK, "epidemiology.html", p)
}

type errorPage struct {
	page
	Status  int
	Message string
}

func (h *Handler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUnknownCountry):
		h.renderStatus(c, http.StatusNotFound, "That country is not in the dataset.")
	case errors.Is(err, domain.ErrEmptySelection):
		h.renderStatus(c, http.StatusNotFound, "No observations match the selection.")
	case errors.Is(err, domain.ErrSameCountry):
		h.renderStatus(c, http.StatusBadRequest, "Choose two different countries to compare.")
	case errors.Is(err, domain.ErrMalformedValue):
		h.renderStatus(c, http.StatusBadRequest, "Dates must look like 2020-03-01.")
	default:
		logger.Error("render page failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
		h.renderStatus(c, http.StatusInternalServerError, "Something went wrong.")
	}
}

func (h *Handler) renderStatus(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", errorPage{
		page:    h.page(c, http.StatusText(status), ""),
		Status:  status,
		Message: message,
	})
}

// chartURL points an <img> at the chart API; params are key/value pairs, empty values are dropped.
func chartURL(kind chart.Kind, params ...string) string {
	v := url.Values{}
	for i := 0; i+1 < len(params); i += 2 {
		if params[i+1] != "" {
			v.Set(params[i], params[i+1])
		}
	}
	u := "/api/v1/charts/" + string(kind)
	if len(v) > 0 {
		u += "?" + v.Encode()
	}
	return u
}

func optionalDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return dataset.ParseDate(s)
}
