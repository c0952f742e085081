package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/examcore/database/dbtest"
	"github.com/lshigami/examcore/internal/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func sampleAssessment() *model.Assessment {
	return &model.Assessment{
		Title:  "Algebra",
		Status: model.AssessmentActive,
		Sections: []model.Section{
			{Name: "B", SectionOrder: 2, Questions: []model.Question{
				{Type: model.QuestionSingleCorrect, QuestionOrder: 1, Marks: 1, Options: []model.Option{
					{OptionText: "x", OptionOrder: 2},
					{OptionText: "y", OptionOrder: 1, IsCorrect: true},
				}},
			}},
			{Name: "A", SectionOrder: 1, Questions: []model.Question{
				{Type: model.QuestionMultiCorrect, QuestionOrder: 2, Marks: 2},
				{Type: model.QuestionSingleCorrect, QuestionOrder: 1, Marks: 1},
			}},
		},
	}
}

func TestAssignmentFindInScope(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	asg := dbtest.SeedAssignment(t, db, sampleAssessment(), 1, 10)
	repo := NewAssignmentRepository(db)

	if _, err := repo.FindInScope(ctx, asg.ID, 1, 10); err != nil {
		t.Fatalf("FindInScope in scope: %v", err)
	}
	if _, err := repo.FindInScope(ctx, asg.ID, 1, 11); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("FindInScope other batch err = %v, want ErrRecordNotFound", err)
	}
}

func TestAssessmentFindWithAnswerKeyOrders(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	a := sampleAssessment()
	dbtest.SeedAssignment(t, db, a, 1, 1)

	got, err := NewAssessmentRepository(db).FindWithAnswerKey(ctx, a.ID)
	if err != nil {
		t.Fatalf("FindWithAnswerKey: %v", err)
	}
	if len(got.Sections) != 2 || got.Sections[0].Name != "A" {
		t.Fatalf("sections not ordered: %+v", got.Sections)
	}
	if q := got.Sections[0].Questions; len(q) != 2 || q[0].QuestionOrder != 1 {
		t.Fatalf("questions not ordered: %+v", q)
	}
	opts := got.Sections[1].Questions[0].Options
	if len(opts) != 2 || opts[0].OptionText != "y" || !opts[0].IsCorrect {
		t.Fatalf("options not loaded in order: %+v", opts)
	}
}

func TestSubmissionUpsertOverwrites(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	repo := NewSubmissionRepository(db)

	first := &model.Submission{AttemptID: 1, QuestionID: 5, SelectedOptions: datatypes.NewJSONSlice([]uint{1}), SubmittedAt: time.Now()}
	if err := repo.Upsert(ctx, first); err != nil {
		t.Fatalf("first Upsert: %v", err)
	}
	second := &model.Submission{AttemptID: 1, QuestionID: 5, SelectedOptions: datatypes.NewJSONSlice([]uint{2, 3}), SubmittedAt: time.Now()}
	if err := repo.Upsert(ctx, second); err != nil {
		t.Fatalf("second Upsert: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("upsert created a new row: %d != %d", second.ID, first.ID)
	}

	subs, err := repo.ListByAttempt(ctx, 1)
	if err != nil {
		t.Fatalf("ListByAttempt: %v", err)
	}
	if len(subs) != 1 || len(subs[0].SelectedOptions) != 2 || subs[0].SelectedOptions[1] != 3 {
		t.Fatalf("ListByAttempt = %+v", subs)
	}
}

func TestProctoringLogCountByEventType(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	repo := NewProctoringLogRepository(db)

	var logs []model.ProctoringLog
	for _, ev := range []string{model.EventTabSwitch, model.EventTabSwitch, model.EventRightClickDetected} {
		logs = append(logs, model.ProctoringLog{LogID: uuid.New(), AttemptID: 9, EventType: ev, Timestamp: time.Now()})
	}
	logs = append(logs, model.ProctoringLog{LogID: uuid.New(), AttemptID: 10, EventType: model.EventTabSwitch, Timestamp: time.Now()})
	if err := repo.CreateBatch(ctx, logs); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	counts, err := repo.CountByEventType(ctx, 9)
	if err != nil {
		t.Fatalf("CountByEventType: %v", err)
	}
	if counts[model.EventTabSwitch] != 2 || counts[model.EventRightClickDetected] != 1 || len(counts) != 2 {
		t.Fatalf("counts = %v", counts)
	}
}

func TestReportUpsertKeepsOneRow(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	repo := NewReportRepository(db)
	user := uuid.New()

	r1 := &model.Report{UserID: user, AssignmentID: 4, AssessmentID: 2, AttemptID: 1, Score: 3,
		SectionScores: datatypes.NewJSONType(map[string]float64{"1": 3})}
	if err := repo.Upsert(ctx, r1); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	r2 := &model.Report{UserID: user, AssignmentID: 4, AssessmentID: 2, AttemptID: 2, Score: 7,
		SectionScores: datatypes.NewJSONType(map[string]float64{"1": 7})}
	if err := repo.Upsert(ctx, r2); err != nil {
		t.Fatalf("second Upsert: %v", err)
	}
	if r2.ID != r1.ID {
		t.Fatalf("report id changed: %d -> %d", r1.ID, r2.ID)
	}

	reports, total, err := repo.List(ctx, ReportFilter{UserID: &user}, 20, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 || reports[0].Score != 7 || reports[0].AttemptID != 2 || reports[0].SectionScores.Data()["1"] != 7 {
		t.Fatalf("List = %d %+v", total, reports)
	}
}

func TestAttemptListFiltersAndPages(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	repo := NewAttemptRepository(db)
	alice, bob := uuid.New(), uuid.New()
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	for i, a := range []model.Attempt{
		{AssignmentID: 1, UserID: alice, AttemptNumber: 1, Status: model.AttemptSubmitted, StartedAt: start},
		{AssignmentID: 1, UserID: alice, AttemptNumber: 2, Status: model.AttemptInProgress, StartedAt: start.Add(time.Hour)},
		{AssignmentID: 1, UserID: bob, AttemptNumber: 1, Status: model.AttemptInProgress, StartedAt: start.Add(2 * time.Hour)},
	} {
		a := a
		if err := repo.Create(ctx, &a); err != nil {
			t.Fatalf("Create #%d: %v", i, err)
		}
	}

	got, total, err := repo.List(ctx, AttemptFilter{UserID: &alice}, 1, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 2 || len(got) != 1 || got[0].AttemptNumber != 2 {
		t.Fatalf("List(alice, limit 1) = %d %+v", total, got)
	}

	_, total, err = repo.List(ctx, AttemptFilter{Status: model.AttemptInProgress}, 20, 0)
	if err != nil || total != 2 {
		t.Fatalf("List(in_progress) total = %d, %v", total, err)
	}

	mine, err := repo.FindByAssignmentAndUser(ctx, 1, alice)
	if err != nil || len(mine) != 2 || mine[0].AttemptNumber != 1 {
		t.Fatalf("FindByAssignmentAndUser = %+v, %v", mine, err)
	}
}

func TestTransactionRollsBack(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	s := NewStore(db)
	boom := errors.New("boom")

	err := s.Transaction(ctx, func(tx Store) error {
		a := &model.Attempt{AssignmentID: 1, UserID: uuid.New(), AttemptNumber: 1, StartedAt: time.Now()}
		if err := tx.Attempts().Create(ctx, a); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Transaction err = %v", err)
	}
	var n int64
	db.Model(&model.Attempt{}).Count(&n)
	if n != 0 {
		t.Fatalf("rolled back transaction left %d attempts", n)
	}
}

func TestMirrorUpsertIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	repo := NewMirrorRepository(db)

	for _, name := range []string{"North", "North Campus"} {
		if err := repo.UpsertInstitute(ctx, &model.Institute{ID: 3, Name: name}); err != nil {
			t.Fatalf("UpsertInstitute: %v", err)
		}
	}
	var got []model.Institute
	db.Find(&got)
	if len(got) != 1 || got[0].Name != "North Campus" {
		t.Fatalf("institutes = %+v", got)
	}

	if err := repo.DeleteInstitute(ctx, 3); err != nil {
		t.Fatalf("DeleteInstitute: %v", err)
	}
	if err := repo.DeleteInstitute(ctx, 3); err != nil {
		t.Fatalf("second DeleteInstitute: %v", err)
	}

	id := uuid.New()
	if err := repo.UpsertUser(ctx, &model.User{UserID: id, Username: "amy"}); err != nil {
		t.Fatalf("UpsertUser: %v", err)
	}
	if err := repo.DeleteUser(ctx, id); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}
	var users int64
	db.Model(&model.User{}).Count(&users)
	if users != 0 {
		t.Fatalf("users left = %d", users)
	}
}
