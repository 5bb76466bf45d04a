package pages

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaustubh03-ks/covid-19-analysis/internal/config"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/repository"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/service"
	"github.com/kaustubh03-ks/covid-19-analysis/pkg/validator"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Dataset.DefaultCountry = "US"
	cfg.Forecast = config.Forecast{Window: 30, Horizon: 14, MaxDays: 90}

	services := service.NewServices(service.Deps{
		Config: cfg,
		Store:  repository.NewStore(repository.NewCSVSource("../../../dataset/testdata/covid_sample.csv")),
	})
	require.NoError(t, services.Dataset.Reload(t.Context()))

	validator.RegisterGinValidator()
	router := gin.New()
	NewHandler(services).Init(router)
	return router
}

func get(r *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestTemplatesParse(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)
	for _, name := range []string{"overview.html", "countries.html", "epidemiology.html", "error.html", "header", "footer"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestPages(t *testing.T) {
	r := newTestRouter(t)

	t.Run("root redirects", func(t *testing.T) {
		w := get(r, "/")
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/overview", w.Header().Get("Location"))
	})

	t.Run("overview", func(t *testing.T) {
		w := get(r, "/overview")
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Global Overview")
		assert.Contains(t, body, `class="active">Global Overview`)
		assert.Contains(t, body, ">601<")
		assert.Contains(t, body, "Western Pacific")
		assert.Contains(t, body, "4.33%")
		assert.Contains(t, body, "/api/v1/charts/trend")
		assert.Contains(t, body, "/api/v1/charts/regions")
	})

	t.Run("countries defaults to US", func(t *testing.T) {
		w := get(r, "/countries")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Trends for US")
		assert.Contains(t, w.Body.String(), `<option value="US" selected>`)
	})

	t.Run("countries with range", func(t *testing.T) {
		w := get(r, "/countries?country=China&from=2020-01-23")
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Trends for China")
		assert.Contains(t, body, "/api/v1/charts/growth?country=China&amp;from=2020-01-23")
	})

	t.Run("unknown country", func(t *testing.T) {
		w := get(r, "/countries?country=Narnia")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "not in the dataset")
	})

	t.Run("bad date", func(t *testing.T) {
		w := get(r, "/countries?from=01-02-2020")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("epidemiology rate tab", func(t *testing.T) {
		w := get(r, "/epidemiology?country=Italy&tab=recovery")
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Recovery Rate Analysis for Italy")
		assert.Contains(t, body, "20.00%")
		assert.Contains(t, body, "/api/v1/charts/recovery?country=Italy")
	})

	t.Run("epidemiology defaults to cfr", func(t *testing.T) {
		w := get(r, "/epidemiology")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Case Fatality Rate Analysis for US")
	})

	t.Run("epidemiology compare", func(t *testing.T) {
		w := get(r, "/epidemiology?country=China&tab=compare")
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Comparative Analysis")
		assert.Contains(t, body, `<option value="Italy" selected>`)
		assert.Contains(t, body, "/api/v1/charts/compare-rates?country=China&amp;with=Italy")
	})

	t.Run("unknown tab", func(t *testing.T) {
		w := get(r, "/epidemiology?tab=deaths")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "1,234,567", formatCount(1234567))
	assert.Equal(t, "0", formatCount(0))
	assert.Equal(t, "3.57%", formatPercent(3.5714))
	assert.Equal(t, "/api/v1/charts/trend", chartURL("trend", "country", ""))
	assert.Equal(t, "/api/v1/charts/trend?country=South+Korea", chartURL("trend", "country", "South Korea"))
}
