package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/examcore/internal/apperror"
	"github.com/lshigami/examcore/internal/cache"
	"github.com/lshigami/examcore/internal/dto"
	"github.com/lshigami/examcore/internal/model"
	"github.com/lshigami/examcore/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

// IngestResult holds exactly one of Terminated or Acknowledged.
type IngestResult struct {
	Terminated   *dto.ProctoringTerminatedResponse
	Acknowledged *dto.ProctoringAckResponse
}

type ProctoringService interface {
	IngestLogs(ctx context.Context, req dto.IngestProctoringLogsRequest) (*IngestResult, error)
	// ComputePenalty is the weighted sum of every event logged for the attempt.
	ComputePenalty(ctx context.Context, attemptID uint) (float64, error)
}

type proctoringService struct {
	store  repository.Store
	cache  *cache.Cache
	scorer *Scorer
	now    func() time.Time
}

func NewProctoringService(store repository.Store, c *cache.Cache, scorer *Scorer) ProctoringService {
	return &proctoringService{store: store, cache: c, scorer: scorer, now: func() time.Time { return time.Now().UTC() }}
}

func (s *proctoringService) IngestLogs(ctx context.Context, req dto.IngestProctoringLogsRequest) (*IngestResult, error) {
	if req.AttemptID == 0 {
		return nil, apperror.Validation("attemptId is required")
	}
	if len(req.Logs) == 0 {
		return nil, apperror.Validation("logs must be a non-empty array")
	}
	for _, l := range req.Logs {
		if l.EventType == "" || l.Timestamp == nil {
			return nil, apperror.Validation("Each log must have eventType and timestamp")
		}
	}

	var (
		counts map[string]int
		result IngestResult
	)
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		attempt, err := tx.Attempts().FindByIDForUpdate(ctx, req.AttemptID)
		if err != nil {
			return apperror.Translate(err, "attempt")
		}
		if attempt.Status != model.AttemptInProgress {
			return apperror.InvalidState("Cannot log events for a %s attempt", attempt.Status)
		}

		elig, err := loadEligibility(ctx, s.cache, tx, attempt.AssignmentID)
		if err != nil {
			return err
		}
		settings, err := loadSettings(ctx, s.cache, tx, elig.AssessmentID)
		if err != nil {
			return err
		}
		if settings == nil || !settings.EnableProctoring {
			return apperror.ProctoringDisabled("Proctoring is not enabled for this assessment")
		}

		entries := make([]model.ProctoringLog, 0, len(req.Logs))
		for _, l := range req.Logs {
			entry := model.ProctoringLog{
				LogID:     uuid.New(),
				AttemptID: attempt.ID,
				EventType: l.EventType,
				Timestamp: l.Timestamp.UTC(),
			}
			if len(l.Metadata) > 0 && string(l.Metadata) != "null" {
				entry.Metadata = datatypes.JSON(l.Metadata)
			}
			entries = append(entries, entry)
		}
		if err := tx.ProctoringLogs().CreateBatch(ctx, entries); err != nil {
			return apperror.Translate(err, "proctoring logs")
		}

		counts, err = tx.ProctoringLogs().CountByEventType(ctx, attempt.ID)
		if err != nil {
			return apperror.Translate(err, "proctoring logs")
		}

		v := firstViolation(settings, counts)
		if v == nil {
			result.Acknowledged = &dto.ProctoringAckResponse{
				Message:   "Proctoring logs saved successfully",
				TestEnded: false,
				LogsCount: len(entries),
				Warnings:  approachingWarnings(settings, counts),
			}
			return nil
		}

		now := s.now()
		spent := int(now.Sub(attempt.StartedAt).Seconds())
		attempt.Status = model.AttemptAutoSubmitted
		attempt.SubmittedAt = &now
		attempt.TotalTimeSpent = &spent
		if err := tx.Attempts().Update(ctx, attempt); err != nil {
			return apperror.Translate(err, "attempt")
		}
		score, err := s.scorer.ScoreAttempt(ctx, tx, attempt)
		if err != nil {
			return err
		}
		result.Terminated = &dto.ProctoringTerminatedResponse{
			Message:        fmt.Sprintf("Test auto-submitted due to %s violation", v.EventType),
			TestEnded:      true,
			ViolationType:  v.EventType,
			ViolationCount: v.Count,
			Threshold:      v.Threshold,
			Score:          score.Score,
			Percentage:     score.Percentage,
			IsPassed:       score.IsPassed,
			ReportID:       score.ReportID,
		}
		return nil
	})
	if err != nil {
		logServiceError(err, "IngestLogs failed", "attemptID", req.AttemptID)
		return nil, err
	}

	if result.Terminated != nil {
		s.cache.Invalidate(ctx, cache.AttemptKeys(req.AttemptID)...)
		s.cache.BumpNamespace(ctx, cache.AttemptListNamespace, cache.ReportListNamespace)
		log.Warn().
			Uint("attemptID", req.AttemptID).
			Str("violationType", result.Terminated.ViolationType).
			Int("count", result.Terminated.ViolationCount).
			Int("threshold", result.Terminated.Threshold).
			Msg("Attempt auto-submitted on proctoring violation")
	}
	s.cache.SetJSON(ctx, cache.ViolationCountsKey(req.AttemptID), counts, cache.ViolationCountsTTL)
	return &result, nil
}

func (s *proctoringService) ComputePenalty(ctx context.Context, attemptID uint) (float64, error) {
	if _, err := s.store.Attempts().FindByID(ctx, attemptID); err != nil {
		return 0, apperror.Translate(err, "attempt")
	}
	counts, err := cache.Remember(ctx, s.cache, cache.ViolationCountsKey(attemptID), cache.ViolationCountsTTL, func(ctx context.Context) (map[string]int, error) {
		counts, err := s.store.ProctoringLogs().CountByEventType(ctx, attemptID)
		if err != nil {
			return nil, apperror.Translate(err, "proctoring logs")
		}
		return counts, nil
	})
	if err != nil {
		return 0, err
	}
	return penaltyFor(counts), nil
}
