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

type SubmissionService interface {
	RecordAnswer(ctx context.Context, req dto.RecordSubmissionRequest) (*dto.SubmissionResponse, error)
	ListByAttempt(ctx context.Context, attemptID uint) ([]dto.SubmissionResponse, error)
	// FinalSubmit closes an in-progress attempt and scores it in one transaction.
	FinalSubmit(ctx context.Context, attemptID uint) (*dto.FinalSubmitResponse, error)
}

type submissionService struct {
	store  repository.Store
	cache  *cache.Cache
	scorer *Scorer
	now    func() time.Time
}

func NewSubmissionService(store repository.Store, c *cache.Cache, scorer *Scorer) SubmissionService {
	return &submissionService{store: store, cache: c, scorer: scorer, now: func() time.Time { return time.Now().UTC() }}
}

func (s *submissionService) RecordAnswer(ctx context.Context, req dto.RecordSubmissionRequest) (*dto.SubmissionResponse, error) {
	if req.AttemptID == 0 || req.QuestionID == 0 || req.SelectedOptions == nil {
		return nil, apperror.Validation("attemptId, questionId and selectedOptions are required")
	}

	var saved model.Submission
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		// The shared lock makes a concurrent submit wait for this write to commit.
		attempt, err := tx.Attempts().FindByIDForShare(ctx, req.AttemptID)
		if err != nil {
			return apperror.Translate(err, "attempt")
		}
		if attempt.Status != model.AttemptInProgress {
			return apperror.InvalidState("Cannot record answers for a %s attempt", attempt.Status)
		}

		elig, err := loadEligibility(ctx, s.cache, tx, attempt.AssignmentID)
		if err != nil {
			return err
		}
		key, err := loadAnswerKey(ctx, s.cache, tx, elig.AssessmentID)
		if err != nil {
			return err
		}
		if err := validateSelection(key, req.QuestionID, req.SelectedOptions); err != nil {
			return err
		}

		saved = model.Submission{
			AttemptID:       attempt.ID,
			QuestionID:      req.QuestionID,
			SelectedOptions: datatypes.NewJSONSlice(append([]uint{}, req.SelectedOptions...)),
			SubmittedAt:     s.now(),
		}
		if err := tx.Submissions().Upsert(ctx, &saved); err != nil {
			return apperror.Translate(err, "submission")
		}
		return nil
	})
	if err != nil {
		logServiceError(err, "RecordAnswer failed", "attemptID", req.AttemptID)
		return nil, err
	}

	s.cache.Invalidate(ctx, cache.SubmissionsKey(req.AttemptID))
	resp := toSubmissionResponse(&saved)
	return &resp, nil
}

// validateSelection checks the question belongs to the assessment and every
// option belongs to that question.
func validateSelection(key answerKeyIndex, questionID uint, options []uint) error {
	if !key.hasQuestion(questionID) {
		return apperror.Validation("Question %d not found in assessment", questionID)
	}
	for _, opt := range options {
		owner, ok := key.OptionQuestion[opt]
		if !ok {
			return apperror.Validation("Option %d not found", opt)
		}
		if owner != questionID {
			return apperror.Validation("Option %d does not belong to question %d", opt, questionID)
		}
	}
	return nil
}

func (s *submissionService) ListByAttempt(ctx context.Context, attemptID uint) ([]dto.SubmissionResponse, error) {
	return cache.Remember(ctx, s.cache, cache.SubmissionsKey(attemptID), cache.SubmissionsTTL, func(ctx context.Context) ([]dto.SubmissionResponse, error) {
		if _, err := s.store.Attempts().FindByID(ctx, attemptID); err != nil {
			return nil, apperror.Translate(err, "attempt")
		}
		subs, err := s.store.Submissions().ListByAttempt(ctx, attemptID)
		if err != nil {
			return nil, apperror.Translate(err, "submissions")
		}
		resp := make([]dto.SubmissionResponse, 0, len(subs))
		for i := range subs {
			resp = append(resp, toSubmissionResponse(&subs[i]))
		}
		return resp, nil
	})
}

func (s *submissionService) FinalSubmit(ctx context.Context, attemptID uint) (*dto.FinalSubmitResponse, error) {
	var (
		attempt *model.Attempt
		result  *dto.ScoreResult
	)
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		var err error
		attempt, err = tx.Attempts().FindByIDForUpdate(ctx, attemptID)
		if err != nil {
			return apperror.Translate(err, "attempt")
		}
		if attempt.Status != model.AttemptInProgress {
			return apperror.InvalidState("Attempt is %s, only in_progress attempts can be submitted", attempt.Status)
		}

		now := s.now()
		spent := int(now.Sub(attempt.StartedAt).Seconds())
		attempt.Status = model.AttemptSubmitted
		attempt.SubmittedAt = &now
		attempt.TotalTimeSpent = &spent
		if err := tx.Attempts().Update(ctx, attempt); err != nil {
			return apperror.Translate(err, "attempt")
		}

		result, err = s.scorer.ScoreAttempt(ctx, tx, attempt)
		return err
	})
	if err != nil {
		logServiceError(err, "FinalSubmit failed", "attemptID", attemptID)
		return nil, err
	}

	s.cache.Invalidate(ctx, cache.AttemptKeys(attemptID)...)
	s.cache.BumpNamespace(ctx, cache.AttemptListNamespace, cache.ReportListNamespace)
	log.Info().Uint("attemptID", attemptID).Uint("reportID", result.ReportID).Msg("Attempt final-submitted")

	return &dto.FinalSubmitResponse{
		Message: "Assessment submitted successfully",
		Attempt: *toAttemptResponse(attempt),
		Result:  *result,
	}, nil
}
