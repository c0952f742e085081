package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/examcore/internal/controller"
	"github.com/lshigami/examcore/internal/dto"
	"github.com/lshigami/examcore/internal/service"
)

type ProctoringController struct {
	proctoringService service.ProctoringService
}

func NewProctoringController(ps service.ProctoringService) *ProctoringController {
	return &ProctoringController{proctoringService: ps}
}

// IngestLogs godoc
// @Summary (User) Upload proctoring events
// @Description Stores the events and auto-submits the attempt when a detector threshold is exceeded.
// @Tags User - Proctoring
// @Accept json
// @Produce json
// @Param body body dto.IngestProctoringLogsRequest true "Events"
// @Success 200 {object} dto.ProctoringTerminatedResponse "Threshold exceeded, attempt auto-submitted"
// @Success 201 {object} dto.ProctoringAckResponse "Events stored"
// @Failure 400 {object} dto.ErrorResponse "Validation, proctoring disabled or attempt not in progress"
// @Failure 404 {object} dto.ErrorResponse
// @Router /proctoring/logs [post]
func (c *ProctoringController) IngestLogs(ctx *gin.Context) {
	var req dto.IngestProctoringLogsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	res, err := c.proctoringService.IngestLogs(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	if res.Terminated != nil {
		ctx.JSON(http.StatusOK, res.Terminated)
		return
	}
	ctx.JSON(http.StatusCreated, res.Acknowledged)
}
