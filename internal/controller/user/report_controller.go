package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/examcore/internal/controller"
	"github.com/lshigami/examcore/internal/dto"
	"github.com/lshigami/examcore/internal/service"
)

type ReportController struct {
	reportService service.ReportService
}

func NewReportController(rs service.ReportService) *ReportController {
	return &ReportController{reportService: rs}
}

// GetReport godoc
// @Summary (User) Get a report
// @Tags User - Reports
// @Produce json
// @Param id path int true "Report ID"
// @Success 200 {object} dto.ReportResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /reports/{id} [get]
func (c *ReportController) GetReport(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "id")
	if !ok {
		return
	}
	report, err := c.reportService.Get(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, report)
}

// ListReports godoc
// @Summary (User) List reports
// @Tags User - Reports
// @Produce json
// @Param userId query string false "Learner UUID"
// @Param assessmentId query int false "Assessment ID"
// @Param page query int false "Page, default 1"
// @Param limit query int false "Page size, default 20, max 100"
// @Success 200 {object} dto.Page[dto.ReportResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Router /reports [get]
func (c *ReportController) ListReports(ctx *gin.Context) {
	var q dto.ListReportsQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	page, err := c.reportService.List(ctx.Request.Context(), q)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, page)
}
