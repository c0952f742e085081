package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/lshigami/examcore/internal/apperror"
	"github.com/lshigami/examcore/internal/dto"
	"github.com/rs/zerolog/log"
)

// RespondError writes the error kind and its public detail with the matching status.
func RespondError(ctx *gin.Context, err error) {
	kind := apperror.KindOf(err)
	status := apperror.HTTPStatus(kind)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("Request failed")
	}
	ctx.JSON(status, dto.ErrorResponse{Error: string(kind), Details: apperror.PublicDetail(err)})
}

// RespondBindError reports a request body or query that failed binding.
func RespondBindError(ctx *gin.Context, err error) {
	resp := dto.ErrorResponse{Error: string(apperror.KindValidation), Details: "Invalid request"}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			resp.Fields = append(resp.Fields, fe.Namespace()+" failed "+fe.Tag())
		}
	} else {
		resp.Details = "Invalid request: malformed JSON or parameter"
	}
	log.Debug().Err(err).Str("path", ctx.FullPath()).Msg("Request binding failed")
	ctx.JSON(http.StatusBadRequest, resp)
}

// UintParam parses a positive integer path parameter, answering 400 when it is not one.
func UintParam(ctx *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil || v == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   string(apperror.KindValidation),
			Details: "Invalid " + name + " format",
		})
		return 0, false
	}
	return uint(v), true
}

// Health godoc
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
