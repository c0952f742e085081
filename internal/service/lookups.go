package service

import (
	"context"
	"errors"
	"time"

	"github.com/lshigami/examcore/internal/apperror"
	"github.com/lshigami/examcore/internal/cache"
	"github.com/lshigami/examcore/internal/model"
	"github.com/lshigami/examcore/internal/repository"
	"gorm.io/gorm"
)

// eligibility is the cached subset of an assessment needed to start attempts.
type eligibility struct {
	AssessmentID    uint                   `json:"assessmentId"`
	AttemptsAllowed int                    `json:"attemptsAllowed"`
	StartTime       *time.Time             `json:"startTime,omitempty"`
	EndTime         *time.Time             `json:"endTime,omitempty"`
	Status          model.AssessmentStatus `json:"status"`
}

// check runs the start conditions in order and fails on the first violation.
func (e eligibility) check(now time.Time, existing int) error {
	switch {
	case e.StartTime != nil && now.Before(*e.StartTime):
		return apperror.Forbidden("Assessment has not started yet")
	case e.EndTime != nil && now.After(*e.EndTime):
		return apperror.Forbidden("Assessment has ended")
	case e.Status == model.AssessmentInactive:
		return apperror.Forbidden("Assessment is not active")
	case e.AttemptsAllowed < 1:
		return apperror.Forbidden("Assessment does not allow any attempts")
	case existing >= e.AttemptsAllowed:
		return apperror.Forbidden("Maximum attempts (%d) reached", e.AttemptsAllowed)
	}
	return nil
}

// answerKeyIndex holds the id sets used to validate a submission.
type answerKeyIndex struct {
	QuestionIDs    []uint        `json:"questionIds"`
	OptionQuestion map[uint]uint `json:"optionQuestion"`
}

func (k answerKeyIndex) hasQuestion(id uint) bool {
	for _, q := range k.QuestionIDs {
		if q == id {
			return true
		}
	}
	return false
}

func loadEligibility(ctx context.Context, c *cache.Cache, tx repository.Store, assignmentID uint) (eligibility, error) {
	e, err := cache.Remember(ctx, c, cache.EligibilityKey(assignmentID), cache.EligibilityTTL, func(ctx context.Context) (eligibility, error) {
		asg, err := tx.Assignments().FindByID(ctx, assignmentID)
		if err != nil {
			return eligibility{}, apperror.Translate(err, "assignment")
		}
		a, err := tx.Assessments().FindByID(ctx, asg.AssessmentID)
		if err != nil {
			return eligibility{}, apperror.Translate(err, "assessment")
		}
		return eligibility{
			AssessmentID:    a.ID,
			AttemptsAllowed: a.AttemptsAllowed,
			StartTime:       a.StartTime,
			EndTime:         a.EndTime,
			Status:          a.Status,
		}, nil
	})
	return e, err
}

func loadAnswerKey(ctx context.Context, c *cache.Cache, tx repository.Store, assessmentID uint) (answerKeyIndex, error) {
	return cache.Remember(ctx, c, cache.AnswerKeyKey(assessmentID), cache.StructureTTL, func(ctx context.Context) (answerKeyIndex, error) {
		a, err := tx.Assessments().FindWithAnswerKey(ctx, assessmentID)
		if err != nil {
			return answerKeyIndex{}, apperror.Translate(err, "assessment")
		}
		idx := answerKeyIndex{OptionQuestion: make(map[uint]uint)}
		for _, sec := range a.Sections {
			for _, q := range sec.Questions {
				idx.QuestionIDs = append(idx.QuestionIDs, q.ID)
				for _, o := range q.Options {
					idx.OptionQuestion[o.ID] = q.ID
				}
			}
		}
		return idx, nil
	})
}

func loadScoringShape(ctx context.Context, c *cache.Cache, tx repository.Store, assessmentID uint) (*model.Assessment, error) {
	return cache.Remember(ctx, c, cache.ScoringShapeKey(assessmentID), cache.StructureTTL, func(ctx context.Context) (*model.Assessment, error) {
		a, err := tx.Assessments().FindWithAnswerKey(ctx, assessmentID)
		if err != nil {
			return nil, apperror.Translate(err, "assessment")
		}
		return a, nil
	})
}

// loadSettings returns nil settings when the assessment has none configured.
func loadSettings(ctx context.Context, c *cache.Cache, tx repository.Store, assessmentID uint) (*model.ProctoringSetting, error) {
	var settings model.ProctoringSetting
	if c.GetJSON(ctx, cache.SettingsKey(assessmentID), &settings) {
		return &settings, nil
	}
	found, err := tx.ProctoringSettings().FindByAssessment(ctx, assessmentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Translate(err, "proctoring settings")
	}
	c.SetJSON(ctx, cache.SettingsKey(assessmentID), found, cache.SettingsTTL)
	return found, nil
}
