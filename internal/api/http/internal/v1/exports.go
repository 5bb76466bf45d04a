package v1

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaustubh03-ks/covid-19-analysis/internal/domain"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *Handler) initExportsRoutes(api *gin.RouterGroup) {
	api.GET("/export.xlsx", h.exportTable)
	exports := api.Group("/exports")
	{
		exports.POST("", h.createExport)
		exports.GET("/:id", h.getExport)
	}
}

// @Summary Export Table
// @Tags Exports
// @Description Observations and daily totals with derived ratios as an xlsx workbook
// @ModuleID exportTable
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param country query string false "Country/Region"
// @Param who_region query string false "WHO Region"
// @Param from query string false "First date, YYYY-MM-DD"
// @Param to query string false "Last date, YYYY-MM-DD"
// @Success 200 {file} binary
// @Failure 400 {object} ValidationErrorStruct
// @Failure 404 {object} ErrorStruct
// @Router /export.xlsx [get]
func (h *Handler) exportTable(c *gin.Context) {
	var q selectionQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		validationErrorResponse(c, err)
		return
	}
	var buf bytes.Buffer
	if err := h.services.Exports.Table(c.Request.Context(), q.selection(), &buf); err != nil {
		serviceErrorResponse(c, "export table", err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="covid-19.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// @Summary Queue Export
// @Tags Exports
// @Description Build the workbook in the background
// @ModuleID createExport
// @Accept  json
// @Produce  json
// @Param input body selectionQuery true "selection"
// @Success 202 {object} domain.ExportJob
// @Failure 400 {object} ValidationErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 503 {object} ErrorStruct
// @Router /exports [post]
func (h *Handler) createExport(c *gin.Context) {
	var q selectionQuery
	if err := c.ShouldBindJSON(&q); err != nil {
		validationErrorResponse(c, err)
		return
	}
	job, err := h.services.Exports.Enqueue(c.Request.Context(), q.selection())
	if err != nil {
		serviceErrorResponse(c, "queue export", err)
		return
	}
	c.JSON(http.StatusAccepted, job)
}

// @Summary Get Export
// @Tags Exports
// @Description Download a finished export, or its status while it is pending or after it failed
// @ModuleID getExport
// @Produce  json
// @Param id path string true "Export id"
// @Success 200 {file} binary
// @Success 202 {object} domain.ExportJob
// @Success 422 {object} domain.ExportJob
// @Failure 404 {object} ErrorStruct
// @Router /exports/{id} [get]
func (h *Handler) getExport(c *gin.Context) {
	id := c.Param("id")
	job, path, err := h.services.Exports.Status(c.Request.Context(), id)
	if err != nil {
		serviceErrorResponse(c, "get export", err)
		return
	}
	switch {
	case job.Status == domain.ExportFailed:
		c.JSON(http.StatusUnprocessableEntity, job)
		return
	case path == "":
		c.JSON(http.StatusAccepted, job)
		return
	}
	c.FileAttachment(path, "covid-19-"+id+".xlsx")
}
