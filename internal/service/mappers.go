package service

import (
	"github.com/jinzhu/copier"
	"github.com/lshigami/examcore/internal/dto"
	"github.com/lshigami/examcore/internal/model"
	"github.com/rs/zerolog/log"
)

func toAttemptResponse(a *model.Attempt) *dto.AttemptResponse {
	var resp dto.AttemptResponse
	if err := copier.Copy(&resp, a); err != nil {
		log.Error().Err(err).Uint("attemptID", a.ID).Msg("Failed to map attempt")
	}
	return &resp
}

func toAttemptResponses(attempts []model.Attempt) []dto.AttemptResponse {
	resp := make([]dto.AttemptResponse, 0, len(attempts))
	for i := range attempts {
		resp = append(resp, *toAttemptResponse(&attempts[i]))
	}
	return resp
}

func toSubmissionResponse(s *model.Submission) dto.SubmissionResponse {
	var resp dto.SubmissionResponse
	if err := copier.Copy(&resp, s); err != nil {
		log.Error().Err(err).Uint("submissionID", s.ID).Msg("Failed to map submission")
	}
	resp.SelectedOptions = append([]uint{}, s.SelectedOptions...)
	return resp
}

// Report is mapped by hand: its section scores live in a JSON column wrapper.
func toReportResponse(r *model.Report) dto.ReportResponse {
	scores := r.SectionScores.Data()
	if scores == nil {
		scores = map[string]float64{}
	}
	return dto.ReportResponse{
		ID:             r.ID,
		UserID:         r.UserID,
		AssignmentID:   r.AssignmentID,
		AssessmentID:   r.AssessmentID,
		AttemptID:      r.AttemptID,
		Score:          r.Score,
		MaxScore:       r.MaxScore,
		Percentage:     r.Percentage,
		IsPassed:       r.IsPassed,
		CorrectAnswers: r.CorrectAnswers,
		TotalQuestions: r.TotalQuestions,
		Penalty:        r.Penalty,
		SectionScores:  scores,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}
