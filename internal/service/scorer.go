package service

import (
	"context"
	"time"

	"github.com/lshigami/examcore/internal/apperror"
	"github.com/lshigami/examcore/internal/cache"
	"github.com/lshigami/examcore/internal/dto"
	"github.com/lshigami/examcore/internal/model"
	"github.com/lshigami/examcore/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

// Scorer turns a completed attempt into a Report. It always runs inside the
// caller's transaction so the status change and the report commit together.
type Scorer struct {
	cache *cache.Cache
}

func NewScorer(c *cache.Cache) *Scorer {
	return &Scorer{cache: c}
}

// ScoreAttempt reads submissions and proctoring counts through tx, never from
// the cache, and upserts the report for (user, assignment).
func (s *Scorer) ScoreAttempt(ctx context.Context, tx repository.Store, attempt *model.Attempt) (*dto.ScoreResult, error) {
	if !attempt.Status.Completed() {
		return nil, apperror.InvalidState("attempt %d is %s; only submitted attempts can be scored", attempt.ID, attempt.Status)
	}

	elig, err := loadEligibility(ctx, s.cache, tx, attempt.AssignmentID)
	if err != nil {
		return nil, err
	}
	shape, err := loadScoringShape(ctx, s.cache, tx, elig.AssessmentID)
	if err != nil {
		return nil, err
	}
	subs, err := tx.Submissions().ListByAttempt(ctx, attempt.ID)
	if err != nil {
		return nil, apperror.Translate(err, "submissions")
	}
	counts, err := tx.ProctoringLogs().CountByEventType(ctx, attempt.ID)
	if err != nil {
		return nil, apperror.Translate(err, "proctoring logs")
	}

	out := computeScore(shape, subs, penaltyFor(counts))

	report := &model.Report{
		UserID:         attempt.UserID,
		AssignmentID:   attempt.AssignmentID,
		AssessmentID:   elig.AssessmentID,
		AttemptID:      attempt.ID,
		Score:          out.FinalScore,
		MaxScore:       out.MaxPossibleScore,
		Percentage:     out.Percentage,
		IsPassed:       out.IsPassed,
		CorrectAnswers: out.CorrectAnswers,
		TotalQuestions: out.TotalQuestions,
		Penalty:        out.Penalty,
		SectionScores:  datatypes.NewJSONType(out.SectionScores),
		UpdatedAt:      time.Now().UTC(),
	}
	if err := tx.Reports().Upsert(ctx, report); err != nil {
		return nil, apperror.Translate(err, "report")
	}

	log.Info().
		Uint("attemptID", attempt.ID).
		Uint("reportID", report.ID).
		Float64("score", out.FinalScore).
		Float64("penalty", out.Penalty).
		Bool("passed", out.IsPassed).
		Msg("Attempt scored")

	return &dto.ScoreResult{
		AttemptID:        attempt.ID,
		ReportID:         report.ID,
		Score:            out.FinalScore,
		RawScore:         out.RawScore,
		Penalty:          out.Penalty,
		MaxPossibleScore: out.MaxPossibleScore,
		Percentage:       out.Percentage,
		IsPassed:         out.IsPassed,
		CorrectAnswers:   out.CorrectAnswers,
		TotalQuestions:   out.TotalQuestions,
		SectionScores:    out.SectionScores,
		Questions:        out.Questions,
	}, nil
}
