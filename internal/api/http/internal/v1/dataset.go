package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaustubh03-ks/covid-19-analysis/internal/domain"
)

func (h *Handler) initDatasetRoutes(api *gin.RouterGroup) {
	api.GET("/dataset", h.getDataset)
}

type datasetResponse struct {
	domain.DatasetInfo
	DefaultCountry string `json:"default_country"`
}

// @Summary Get Dataset
// @Tags Dataset
// @Description Describe the loaded dataset snapshot
// @ModuleID getDataset
// @Produce  json
// @Success 200 {object} datasetResponse
// @Router /dataset [get]
func (h *Handler) getDataset(c *gin.Context) {
	ctx := c.Request.Context()
	resp := datasetResponse{DatasetInfo: h.services.Dataset.Info(ctx)}
	// an empty dataset has no default; the info is still useful
	resp.DefaultCountry, _ = h.services.Countries.Default(ctx)
	c.JSON(http.StatusOK, resp)
}
