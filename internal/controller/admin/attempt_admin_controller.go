package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/examcore/internal/controller"
	"github.com/lshigami/examcore/internal/dto"
	"github.com/lshigami/examcore/internal/service"
	"github.com/rs/zerolog/log"
)

type AttemptAdminController struct {
	scoringService    service.ScoringService
	proctoringService service.ProctoringService
}

func NewAttemptAdminController(ss service.ScoringService, ps service.ProctoringService) *AttemptAdminController {
	return &AttemptAdminController{scoringService: ss, proctoringService: ps}
}

// RescoreAttempt godoc
// @Summary (Admin) Re-score a submitted attempt
// @Description Recomputes the report for the attempt; the existing report for the learner and assignment is updated in place.
// @Tags Admin - Attempts
// @Produce json
// @Param id path int true "Attempt ID"
// @Success 200 {object} dto.RescoreResponse
// @Failure 400 {object} dto.ErrorResponse "Attempt still in progress"
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/attempts/{id}/score [post]
func (c *AttemptAdminController) RescoreAttempt(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "id")
	if !ok {
		return
	}
	result, err := c.scoringService.Score(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	log.Info().Uint("attemptID", id).Uint("reportID", result.ReportID).Msg("Admin re-scored attempt")
	ctx.JSON(http.StatusOK, dto.RescoreResponse{Message: "Attempt re-scored", Result: *result})
}

// GetPenalty godoc
// @Summary (Admin) Proctoring penalty of an attempt
// @Tags Admin - Attempts
// @Produce json
// @Param id path int true "Attempt ID"
// @Success 200 {object} dto.PenaltyResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/attempts/{id}/penalty [get]
func (c *AttemptAdminController) GetPenalty(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "id")
	if !ok {
		return
	}
	penalty, err := c.proctoringService.ComputePenalty(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.PenaltyResponse{AttemptID: id, Penalty: penalty})
}
