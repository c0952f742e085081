package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/examcore/internal/controller"
	"github.com/lshigami/examcore/internal/dto"
	"github.com/lshigami/examcore/internal/service"
)

type SubmissionController struct {
	submissionService service.SubmissionService
}

func NewSubmissionController(ss service.SubmissionService) *SubmissionController {
	return &SubmissionController{submissionService: ss}
}

// RecordSubmission godoc
// @Summary (User) Record an answer
// @Description Validates the question and options against the assessment and overwrites any earlier answer to the same question.
// @Tags User - Submissions
// @Accept json
// @Produce json
// @Param body body dto.RecordSubmissionRequest true "Answer"
// @Success 201 {object} dto.SubmissionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ids, option/question mismatch or attempt not in progress"
// @Failure 404 {object} dto.ErrorResponse
// @Router /submissions [post]
func (c *SubmissionController) RecordSubmission(ctx *gin.Context) {
	var req dto.RecordSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	sub, err := c.submissionService.RecordAnswer(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, sub)
}

// FinalSubmit godoc
// @Summary (User) Submit and score an attempt
// @Tags User - Submissions
// @Accept json
// @Produce json
// @Param body body dto.FinalSubmitRequest true "Attempt"
// @Success 200 {object} dto.FinalSubmitResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /submissions/final-submit [post]
func (c *SubmissionController) FinalSubmit(ctx *gin.Context) {
	var req dto.FinalSubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	resp, err := c.submissionService.FinalSubmit(ctx.Request.Context(), req.AttemptID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ListSubmissions godoc
// @Summary (User) List the answers of an attempt
// @Tags User - Submissions
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Success 200 {array} dto.SubmissionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /submissions/attempt/{attempt_id} [get]
func (c *SubmissionController) ListSubmissions(ctx *gin.Context) {
	attemptID, ok := controller.UintParam(ctx, "attempt_id")
	if !ok {
		return
	}
	subs, err := c.submissionService.ListByAttempt(ctx.Request.Context(), attemptID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, subs)
}
