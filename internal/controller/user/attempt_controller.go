package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lshigami/examcore/internal/apperror"
	"github.com/lshigami/examcore/internal/controller"
	"github.com/lshigami/examcore/internal/dto"
	"github.com/lshigami/examcore/internal/middleware"
	"github.com/lshigami/examcore/internal/service"
	"github.com/rs/zerolog/log"
)

type AttemptController struct {
	attemptService service.AttemptService
}

func NewAttemptController(as service.AttemptService) *AttemptController {
	return &AttemptController{attemptService: as}
}

// StartAttempt godoc
// @Summary (User) Start or resume an attempt
// @Description Returns the learner's in-progress attempt (200) or creates the next one (201) after checking scope, time window, status and attempt limit.
// @Tags User - Attempts
// @Accept json
// @Produce json
// @Param assignment_id path int true "Assignment ID"
// @Param body body dto.StartAttemptRequest false "Learner and scope (ignored when a bearer token carries them)"
// @Success 200 {object} dto.AttemptResponse "Resumed"
// @Success 201 {object} dto.AttemptResponse "Created"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Not assigned, outside the time window, inactive or limit reached"
// @Router /assignments/{assignment_id}/attempts [post]
func (c *AttemptController) StartAttempt(ctx *gin.Context) {
	assignmentID, ok := controller.UintParam(ctx, "assignment_id")
	if !ok {
		return
	}
	var req dto.StartAttemptRequest
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			controller.RespondBindError(ctx, err)
			return
		}
	}

	in := service.StartAttemptInput{
		AssignmentID: assignmentID,
		InstituteID:  req.InstituteID,
		BatchID:      req.BatchID,
		IPAddress:    ctx.ClientIP(),
		UserAgent:    ctx.Request.UserAgent(),
	}
	if scope, ok := middleware.ScopeFrom(ctx); ok {
		in.UserID, in.InstituteID, in.BatchID = scope.UserID, scope.InstituteID, scope.BatchID
	} else if req.UserID != "" {
		id, err := uuid.Parse(req.UserID)
		if err != nil {
			controller.RespondError(ctx, apperror.Validation("userId must be a UUID"))
			return
		}
		in.UserID = id
	}

	attempt, created, err := c.attemptService.StartOrResume(ctx.Request.Context(), in)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	ctx.JSON(status, attempt)
}

// SubmitAttempt godoc
// @Summary (User) Submit an attempt
// @Tags User - Attempts
// @Accept json
// @Produce json
// @Param id path int true "Attempt ID"
// @Param body body dto.SubmitAttemptRequest false "Submission flags"
// @Success 200 {object} dto.AttemptResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Already submitted"
// @Router /attempts/{id}/submit [post]
func (c *AttemptController) SubmitAttempt(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.SubmitAttemptRequest
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			controller.RespondBindError(ctx, err)
			return
		}
	}
	attempt, err := c.attemptService.Submit(ctx.Request.Context(), id, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, attempt)
}

// UpdateAttemptMeta godoc
// @Summary (User) Update attempt telemetry
// @Description Heartbeat fields and the in_progress/abandoned status switch.
// @Tags User - Attempts
// @Accept json
// @Produce json
// @Param id path int true "Attempt ID"
// @Param body body dto.UpdateAttemptMetaRequest true "Fields to update"
// @Success 200 {object} dto.AttemptResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /attempts/{id}/meta [patch]
func (c *AttemptController) UpdateAttemptMeta(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateAttemptMetaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	attempt, err := c.attemptService.UpdateMeta(ctx.Request.Context(), id, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, attempt)
}

// GetAttempt godoc
// @Summary (User) Get an attempt
// @Tags User - Attempts
// @Produce json
// @Param id path int true "Attempt ID"
// @Success 200 {object} dto.AttemptResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /attempts/{id} [get]
func (c *AttemptController) GetAttempt(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "id")
	if !ok {
		return
	}
	attempt, err := c.attemptService.Get(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, attempt)
}

// ListAttempts godoc
// @Summary (User) List attempts
// @Tags User - Attempts
// @Produce json
// @Param userId query string false "Learner UUID"
// @Param assignmentId query int false "Assignment ID"
// @Param status query string false "Attempt status"
// @Param from query string false "Started at or after (RFC3339)"
// @Param to query string false "Started at or before (RFC3339)"
// @Param page query int false "Page, default 1"
// @Param limit query int false "Page size, default 20, max 100"
// @Param offset query int false "Row offset, overrides page"
// @Success 200 {object} dto.Page[dto.AttemptResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Router /attempts [get]
func (c *AttemptController) ListAttempts(ctx *gin.Context) {
	var q dto.ListAttemptsQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	page, err := c.attemptService.List(ctx.Request.Context(), q)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	log.Debug().Int64("total", page.Total).Int("page", page.Page).Msg("Listed attempts")
	ctx.JSON(http.StatusOK, page)
}
