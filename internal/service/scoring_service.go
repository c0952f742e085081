package service

import (
	"context"

	"github.com/lshigami/examcore/internal/apperror"
	"github.com/lshigami/examcore/internal/cache"
	"github.com/lshigami/examcore/internal/dto"
	"github.com/lshigami/examcore/internal/repository"
)

type ScoringService interface {
	// Score recomputes the report of a submitted attempt. Running it again
	// updates the same report.
	Score(ctx context.Context, attemptID uint) (*dto.ScoreResult, error)
}

type scoringService struct {
	store  repository.Store
	cache  *cache.Cache
	scorer *Scorer
}

func NewScoringService(store repository.Store, c *cache.Cache, scorer *Scorer) ScoringService {
	return &scoringService{store: store, cache: c, scorer: scorer}
}

func (s *scoringService) Score(ctx context.Context, attemptID uint) (*dto.ScoreResult, error) {
	var result *dto.ScoreResult
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		attempt, err := tx.Attempts().FindByIDForUpdate(ctx, attemptID)
		if err != nil {
			return apperror.Translate(err, "attempt")
		}
		result, err = s.scorer.ScoreAttempt(ctx, tx, attempt)
		return err
	})
	if err != nil {
		logServiceError(err, "Score failed", "attemptID", attemptID)
		return nil, err
	}
	s.cache.BumpNamespace(ctx, cache.ReportListNamespace)
	return result, nil
}
