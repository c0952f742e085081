package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/examcore/database/dbtest"
	"github.com/lshigami/examcore/internal/apperror"
	"github.com/lshigami/examcore/internal/cache"
	"github.com/lshigami/examcore/internal/model"
	"github.com/lshigami/examcore/internal/repository"
	"gorm.io/gorm"
)

const (
	testInstitute = 7
	testBatch     = 70
)

var testNow = time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

type fixture struct {
	t           *testing.T
	db          *gorm.DB
	cache       *cache.Cache
	assessment  *model.Assessment
	assignment  *model.AssessmentAssignment
	attempts    *attemptService
	submissions *submissionService
	proctoring  *proctoringService
	scoring     ScoringService
	reports     ReportService
}

// newFixture seeds a two-section assessment worth 7 weighted marks:
//
//	section 1 (weight 1): q1 single 2 marks, -1 negative; q2 multi 3 marks
//	section 2 (weight 2): q3 single 1 mark, -0.5 negative
func newFixture(t *testing.T, mutate func(a *model.Assessment)) *fixture {
	t.Helper()
	passing := 4.0
	a := &model.Assessment{
		Title:           "Physics midterm",
		Status:          model.AssessmentActive,
		AttemptsAllowed: 2,
		PassingMarks:    &passing,
		Sections: []model.Section{
			{Name: "Mechanics", SectionOrder: 1, Weightage: 1, Questions: []model.Question{
				{Type: model.QuestionSingleCorrect, QuestionOrder: 1, Marks: 2, NegativeMarks: 1, Options: []model.Option{
					{OptionText: "A", OptionOrder: 1, IsCorrect: true},
					{OptionText: "B", OptionOrder: 2},
				}},
				{Type: model.QuestionMultiCorrect, QuestionOrder: 2, Marks: 3, Options: []model.Option{
					{OptionText: "C", OptionOrder: 1, IsCorrect: true},
					{OptionText: "D", OptionOrder: 2, IsCorrect: true},
					{OptionText: "E", OptionOrder: 3},
				}},
			}},
			{Name: "Optics", SectionOrder: 2, Weightage: 2, Questions: []model.Question{
				{Type: model.QuestionSingleCorrect, QuestionOrder: 1, Marks: 1, NegativeMarks: 0.5, Options: []model.Option{
					{OptionText: "F", OptionOrder: 1, IsCorrect: true},
					{OptionText: "G", OptionOrder: 2},
				}},
			}},
		},
	}
	if mutate != nil {
		mutate(a)
	}

	db := dbtest.Open(t)
	asg := dbtest.SeedAssignment(t, db, a, testInstitute, testBatch)
	store := repository.NewStore(db)
	c := cache.New(cache.NewMemoryStore())
	scorer := NewScorer(c)
	clock := func() time.Time { return testNow }

	f := &fixture{
		t:          t,
		db:         db,
		cache:      c,
		assessment: a,
		assignment: asg,
		scoring:    NewScoringService(store, c, scorer),
		reports:    NewReportService(store, c),
	}
	f.attempts = NewAttemptService(store, c).(*attemptService)
	f.attempts.now = clock
	f.submissions = NewSubmissionService(store, c, scorer).(*submissionService)
	f.submissions.now = clock
	f.proctoring = NewProctoringService(store, c, scorer).(*proctoringService)
	f.proctoring.now = clock
	return f
}

func (f *fixture) question(section, index int) model.Question {
	return f.assessment.Sections[section].Questions[index]
}

func (f *fixture) option(section, question, index int) uint {
	return f.question(section, question).Options[index].ID
}

func (f *fixture) startInput(user uuid.UUID) StartAttemptInput {
	return StartAttemptInput{
		AssignmentID: f.assignment.ID,
		UserID:       user,
		InstituteID:  testInstitute,
		BatchID:      testBatch,
		IPAddress:    "10.0.0.1",
		UserAgent:    "test-agent",
	}
}

// start begins a fresh attempt and fails the test otherwise.
func (f *fixture) start(user uuid.UUID) uint {
	f.t.Helper()
	a, created, err := f.attempts.StartOrResume(context.Background(), f.startInput(user))
	if err != nil {
		f.t.Fatalf("StartOrResume: %v", err)
	}
	if !created {
		f.t.Fatalf("StartOrResume resumed attempt %d, expected a new one", a.ID)
	}
	return a.ID
}

func (f *fixture) reload(attemptID uint) model.Attempt {
	f.t.Helper()
	var a model.Attempt
	if err := f.db.First(&a, attemptID).Error; err != nil {
		f.t.Fatalf("reload attempt: %v", err)
	}
	return a
}

func (f *fixture) enableProctoring(s model.ProctoringSetting) {
	f.t.Helper()
	s.AssessmentID = f.assessment.ID
	s.EnableProctoring = true
	if err := f.db.Create(&s).Error; err != nil {
		f.t.Fatalf("seed proctoring settings: %v", err)
	}
}

func requireKind(t *testing.T, err error, want apperror.Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", want)
	}
	if got := apperror.KindOf(err); got != want {
		t.Fatalf("error kind = %s (%v), want %s", got, err, want)
	}
}
