package service

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/examcore/internal/apperror"
	"github.com/lshigami/examcore/internal/cache"
	"github.com/lshigami/examcore/internal/dto"
	"github.com/lshigami/examcore/internal/model"
	"github.com/lshigami/examcore/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type StartAttemptInput struct {
	AssignmentID uint
	UserID       uuid.UUID
	InstituteID  uint
	BatchID      uint
	IPAddress    string
	UserAgent    string
}

type AttemptService interface {
	// StartOrResume returns the learner's in-progress attempt if there is one,
	// otherwise checks eligibility and creates the next attempt. created is
	// false when an existing attempt was resumed.
	StartOrResume(ctx context.Context, in StartAttemptInput) (attempt *dto.AttemptResponse, created bool, err error)
	Submit(ctx context.Context, attemptID uint, req dto.SubmitAttemptRequest) (*dto.AttemptResponse, error)
	UpdateMeta(ctx context.Context, attemptID uint, req dto.UpdateAttemptMetaRequest) (*dto.AttemptResponse, error)
	Get(ctx context.Context, attemptID uint) (*dto.AttemptResponse, error)
	List(ctx context.Context, q dto.ListAttemptsQuery) (*dto.Page[dto.AttemptResponse], error)
}

type attemptService struct {
	store repository.Store
	cache *cache.Cache
	now   func() time.Time
}

func NewAttemptService(store repository.Store, c *cache.Cache) AttemptService {
	return &attemptService{store: store, cache: c, now: func() time.Time { return time.Now().UTC() }}
}

func (s *attemptService) StartOrResume(ctx context.Context, in StartAttemptInput) (*dto.AttemptResponse, bool, error) {
	if in.AssignmentID == 0 || in.UserID == uuid.Nil || in.InstituteID == 0 || in.BatchID == 0 {
		return nil, false, apperror.Validation("assignmentId, userId, instituteId and batchId are required")
	}

	var (
		result  *model.Attempt
		created bool
	)
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		asg, err := tx.Assignments().FindInScope(ctx, in.AssignmentID, in.InstituteID, in.BatchID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.Forbidden("Assessment is not assigned to this institute and batch")
		}
		if err != nil {
			return apperror.Translate(err, "assignment")
		}

		elig, err := loadEligibility(ctx, s.cache, tx, asg.ID)
		if err != nil {
			return err
		}

		if err := tx.Attempts().LockSlot(ctx, asg.ID, in.UserID); err != nil {
			return apperror.Translate(err, "attempt")
		}
		existing, err := tx.Attempts().FindByAssignmentAndUser(ctx, asg.ID, in.UserID)
		if err != nil {
			return apperror.Translate(err, "attempt")
		}
		for i := range existing {
			if existing[i].Status == model.AttemptInProgress {
				result = &existing[i]
				return nil
			}
		}

		now := s.now()
		if err := elig.check(now, len(existing)); err != nil {
			return err
		}

		attempt := &model.Attempt{
			AssignmentID:  asg.ID,
			UserID:        in.UserID,
			AttemptNumber: len(existing) + 1,
			Status:        model.AttemptInProgress,
			StartedAt:     now,
		}
		if in.IPAddress != "" {
			attempt.IPAddress = &in.IPAddress
		}
		if in.UserAgent != "" {
			attempt.UserAgent = &in.UserAgent
		}
		if err := tx.Attempts().Create(ctx, attempt); err != nil {
			return apperror.Translate(err, "attempt")
		}
		result, created = attempt, true
		return nil
	})
	if err != nil {
		logServiceError(err, "StartOrResume failed", "assignmentID", in.AssignmentID)
		return nil, false, err
	}

	if created {
		s.cache.BumpNamespace(ctx, cache.AttemptListNamespace)
		log.Info().Uint("attemptID", result.ID).Uint("assignmentID", in.AssignmentID).Str("userID", in.UserID.String()).
			Int("attemptNumber", result.AttemptNumber).Msg("Attempt started")
	} else {
		log.Info().Uint("attemptID", result.ID).Str("userID", in.UserID.String()).Msg("Attempt resumed")
	}
	return toAttemptResponse(result), created, nil
}

func (s *attemptService) Submit(ctx context.Context, attemptID uint, req dto.SubmitAttemptRequest) (*dto.AttemptResponse, error) {
	var result *model.Attempt
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		attempt, err := tx.Attempts().FindByIDForUpdate(ctx, attemptID)
		if err != nil {
			return apperror.Translate(err, "attempt")
		}
		if attempt.Status.Terminal() {
			return apperror.Conflict("Attempt is already %s", attempt.Status)
		}

		now := s.now()
		attempt.Status = model.AttemptSubmitted
		if req.Auto {
			attempt.Status = model.AttemptAutoSubmitted
		}
		attempt.SubmittedAt = &now
		if req.TotalTimeSpent != nil {
			spent := *req.TotalTimeSpent
			attempt.TotalTimeSpent = &spent
		}
		if err := tx.Attempts().Update(ctx, attempt); err != nil {
			return apperror.Translate(err, "attempt")
		}
		result = attempt
		return nil
	})
	if err != nil {
		logServiceError(err, "Submit failed", "attemptID", attemptID)
		return nil, err
	}

	s.cache.Invalidate(ctx, cache.AttemptKeys(attemptID)...)
	s.cache.BumpNamespace(ctx, cache.AttemptListNamespace)
	log.Info().Uint("attemptID", attemptID).Str("status", string(result.Status)).Msg("Attempt submitted")
	return toAttemptResponse(result), nil
}

func (s *attemptService) UpdateMeta(ctx context.Context, attemptID uint, req dto.UpdateAttemptMetaRequest) (*dto.AttemptResponse, error) {
	var target model.AttemptStatus
	if req.Status != nil {
		target = model.AttemptStatus(*req.Status)
		if target != model.AttemptInProgress && target != model.AttemptAbandoned {
			return nil, apperror.Validation("status must be one of in_progress, abandoned")
		}
	}

	var result *model.Attempt
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		attempt, err := tx.Attempts().FindByIDForUpdate(ctx, attemptID)
		if err != nil {
			return apperror.Translate(err, "attempt")
		}
		if target != "" && target != attempt.Status {
			if attempt.Status.Terminal() {
				return apperror.InvalidState("Cannot move a %s attempt to %s", attempt.Status, target)
			}
			attempt.Status = target
		}
		if req.IPAddress != nil {
			attempt.IPAddress = req.IPAddress
		}
		if req.UserAgent != nil {
			attempt.UserAgent = req.UserAgent
		}
		if req.TotalTimeSpent != nil {
			spent := *req.TotalTimeSpent
			attempt.TotalTimeSpent = &spent
		}
		if err := tx.Attempts().Update(ctx, attempt); err != nil {
			return apperror.Translate(err, "attempt")
		}
		result = attempt
		return nil
	})
	if err != nil {
		logServiceError(err, "UpdateMeta failed", "attemptID", attemptID)
		return nil, err
	}

	s.cache.Invalidate(ctx, cache.AttemptKey(attemptID))
	if req.Status != nil {
		s.cache.BumpNamespace(ctx, cache.AttemptListNamespace)
	}
	return toAttemptResponse(result), nil
}

func (s *attemptService) Get(ctx context.Context, attemptID uint) (*dto.AttemptResponse, error) {
	return cache.Remember(ctx, s.cache, cache.AttemptKey(attemptID), cache.AttemptTTL, func(ctx context.Context) (*dto.AttemptResponse, error) {
		attempt, err := s.store.Attempts().FindByID(ctx, attemptID)
		if err != nil {
			return nil, apperror.Translate(err, "attempt")
		}
		return toAttemptResponse(attempt), nil
	})
}

func (s *attemptService) List(ctx context.Context, q dto.ListAttemptsQuery) (*dto.Page[dto.AttemptResponse], error) {
	page := q.Pagination.Normalize()
	filter := repository.AttemptFilter{
		AssignmentID: q.AssignmentID,
		Status:       model.AttemptStatus(q.Status),
		From:         q.From,
		To:           q.To,
	}
	params := url.Values{
		"page":  {strconv.Itoa(page.Page)},
		"limit": {strconv.Itoa(page.Limit)},
	}
	if q.UserID != "" {
		id, err := uuid.Parse(q.UserID)
		if err != nil {
			return nil, apperror.Validation("userId must be a UUID")
		}
		filter.UserID = &id
		params.Set("userId", id.String())
	}
	if q.AssignmentID != 0 {
		params.Set("assignmentId", strconv.FormatUint(uint64(q.AssignmentID), 10))
	}
	if q.Status != "" {
		params.Set("status", q.Status)
	}
	if q.From != nil {
		params.Set("from", q.From.UTC().Format(time.RFC3339))
	}
	if q.To != nil {
		params.Set("to", q.To.UTC().Format(time.RFC3339))
	}

	key := cache.ListKey(s.cache.Namespace(ctx, cache.AttemptListNamespace), params)
	return cache.Remember(ctx, s.cache, key, cache.ListTTL, func(ctx context.Context) (*dto.Page[dto.AttemptResponse], error) {
		attempts, total, err := s.store.Attempts().List(ctx, filter, page.Limit, page.SQLOffset())
		if err != nil {
			return nil, apperror.Translate(err, "attempts")
		}
		return &dto.Page[dto.AttemptResponse]{
			Data:  toAttemptResponses(attempts),
			Page:  page.Page,
			Limit: page.Limit,
			Total: total,
		}, nil
	})
}

// logServiceError logs unexpected failures at error level and expected
// business rejections at debug level.
func logServiceError(err error, msg, idField string, id uint) {
	if apperror.KindOf(err) == apperror.KindInternal {
		log.Error().Err(err).Uint(idField, id).Msg(msg)
		return
	}
	log.Debug().Err(err).Uint(idField, id).Msg(msg)
}
