package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initOverviewRoutes(api *gin.RouterGroup) {
	api.GET("/overview", h.getOverview)
}

// @Summary Get Global Overview
// @Tags Overview
// @Description Latest global totals, the global trend and the WHO region breakdown
// @ModuleID getOverview
// @Produce  json
// @Success 200 {object} domain.Overview
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /overview [get]
func (h *Handler) getOverview(c *gin.Context) {
	overview, err := h.services.Overview.Get(c.Request.Context())
	if err != nil {
		serviceErrorResponse(c, "get overview", err)
		return
	}
	c.JSON(http.StatusOK, overview)
}
