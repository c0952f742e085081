package service

import (
	"testing"

	"github.com/lshigami/examcore/internal/model"
	"gorm.io/datatypes"
)

// scoringShape mirrors newFixture with fixed ids:
// section 10 (weight 1): q1 single [1*,2] 2 marks -1; q2 multi [3*,4*,5] 3 marks
// section 20 (weight 2): q3 single [6*,7] 1 mark -0.5
func scoringShape(policy model.ScoringPolicy, passing *float64) *model.Assessment {
	return &model.Assessment{
		ID:            1,
		ScoringPolicy: policy,
		PassingMarks:  passing,
		Sections: []model.Section{
			{ID: 10, Weightage: 1, Questions: []model.Question{
				{ID: 1, Type: model.QuestionSingleCorrect, Marks: 2, NegativeMarks: 1, Options: []model.Option{
					{ID: 1, IsCorrect: true}, {ID: 2},
				}},
				{ID: 2, Type: model.QuestionMultiCorrect, Marks: 3, Options: []model.Option{
					{ID: 3, IsCorrect: true}, {ID: 4, IsCorrect: true}, {ID: 5},
				}},
			}},
			{ID: 20, Weightage: 2, Questions: []model.Question{
				{ID: 3, Type: model.QuestionSingleCorrect, Marks: 1, NegativeMarks: 0.5, Options: []model.Option{
					{ID: 6, IsCorrect: true}, {ID: 7},
				}},
			}},
		},
	}
}

func answers(pairs map[uint][]uint) []model.Submission {
	var subs []model.Submission
	for q, opts := range pairs {
		subs = append(subs, model.Submission{AttemptID: 99, QuestionID: q, SelectedOptions: datatypes.NewJSONSlice(opts)})
	}
	return subs
}

func floatPtr(v float64) *float64 { return &v }

func TestComputeScore(t *testing.T) {
	tests := []struct {
		name         string
		policy       model.ScoringPolicy
		passing      *float64
		answers      map[uint][]uint
		penalty      float64
		wantRaw      float64
		wantFinal    float64
		wantPercent  float64
		wantCorrect  int
		wantPassed   bool
		wantSections map[string]float64
	}{
		{
			name:         "all correct",
			answers:      map[uint][]uint{1: {1}, 2: {4, 3}, 3: {6}},
			passing:      floatPtr(4),
			wantRaw:      7,
			wantFinal:    7,
			wantPercent:  100,
			wantCorrect:  3,
			wantPassed:   true,
			wantSections: map[string]float64{"10": 5, "20": 2},
		},
		{
			name:         "negative marks reduce the section",
			answers:      map[uint][]uint{1: {2}, 2: {3, 4}, 3: {7}},
			passing:      floatPtr(4),
			wantRaw:      2,
			wantFinal:    2,
			wantPercent:  28.57,
			wantCorrect:  1,
			wantSections: map[string]float64{"10": 2, "20": 0},
		},
		{
			name:         "section subtotal floored at zero",
			answers:      map[uint][]uint{1: {2}, 3: {6}},
			wantRaw:      2,
			wantFinal:    2,
			wantPercent:  28.57,
			wantCorrect:  1,
			wantPassed:   true,
			wantSections: map[string]float64{"10": 0, "20": 2},
		},
		{
			name:         "multi exact rejects an extra option",
			answers:      map[uint][]uint{2: {3, 4, 5}},
			wantSections: map[string]float64{"10": 0},
			wantPassed:   true,
		},
		{
			name:         "multi exact rejects a missing option",
			answers:      map[uint][]uint{2: {3}},
			wantSections: map[string]float64{"10": 0},
			wantPassed:   true,
		},
		{
			name:         "partial credit",
			policy:       model.ScoringPartial,
			answers:      map[uint][]uint{2: {3}},
			wantRaw:      1.5,
			wantFinal:    1.5,
			wantPercent:  21.43,
			wantSections: map[string]float64{"10": 1.5},
			wantPassed:   true,
		},
		{
			name:         "partial credit cancelled by a wrong option",
			policy:       model.ScoringPartial,
			answers:      map[uint][]uint{2: {3, 5}},
			wantSections: map[string]float64{"10": 0},
			wantPassed:   true,
		},
		{
			name:         "partial credit full match counts as correct",
			policy:       model.ScoringPartial,
			answers:      map[uint][]uint{2: {3, 4}},
			wantRaw:      3,
			wantFinal:    3,
			wantPercent:  42.86,
			wantCorrect:  1,
			wantSections: map[string]float64{"10": 3},
			wantPassed:   true,
		},
		{
			name:         "empty selection is unanswered",
			answers:      map[uint][]uint{1: {}},
			wantSections: map[string]float64{},
			wantPassed:   true,
		},
		{
			name:         "penalty floors the final score at zero",
			answers:      map[uint][]uint{2: {3, 4}},
			penalty:      10,
			wantRaw:      3,
			wantFinal:    0,
			wantPercent:  0,
			wantCorrect:  1,
			wantSections: map[string]float64{"10": 3},
			wantPassed:   true,
		},
		{
			name:         "failing below passing marks",
			answers:      map[uint][]uint{3: {6}},
			passing:      floatPtr(4),
			wantRaw:      2,
			wantFinal:    2,
			wantPercent:  28.57,
			wantCorrect:  1,
			wantSections: map[string]float64{"20": 2},
		},
		{
			name:         "no submissions",
			wantSections: map[string]float64{},
			wantPassed:   true,
		},
		{
			name:         "submission outside the assessment is ignored",
			answers:      map[uint][]uint{42: {1}},
			wantSections: map[string]float64{},
			wantPassed:   true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			policy := tc.policy
			if policy == "" {
				policy = model.ScoringExact
			}
			out := computeScore(scoringShape(policy, tc.passing), answers(tc.answers), tc.penalty)

			if out.RawScore != tc.wantRaw || out.FinalScore != tc.wantFinal {
				t.Errorf("raw/final = %v/%v, want %v/%v", out.RawScore, out.FinalScore, tc.wantRaw, tc.wantFinal)
			}
			if out.Percentage != tc.wantPercent {
				t.Errorf("percentage = %v, want %v", out.Percentage, tc.wantPercent)
			}
			if out.CorrectAnswers != tc.wantCorrect {
				t.Errorf("correct = %d, want %d", out.CorrectAnswers, tc.wantCorrect)
			}
			if out.IsPassed != tc.wantPassed {
				t.Errorf("passed = %v, want %v", out.IsPassed, tc.wantPassed)
			}
			if out.MaxPossibleScore != 7 || out.TotalQuestions != 3 {
				t.Errorf("max/total = %v/%d, want 7/3", out.MaxPossibleScore, out.TotalQuestions)
			}
			if len(out.SectionScores) != len(tc.wantSections) {
				t.Fatalf("sections = %v, want %v", out.SectionScores, tc.wantSections)
			}
			for id, want := range tc.wantSections {
				if got, ok := out.SectionScores[id]; !ok || got != want {
					t.Errorf("section %s = %v, want %v", id, got, want)
				}
			}
		})
	}
}

func TestComputeScoreDefaultsMarksAndWeight(t *testing.T) {
	a := &model.Assessment{Sections: []model.Section{
		{ID: 1, Questions: []model.Question{
			{ID: 1, Type: model.QuestionSingleCorrect, Options: []model.Option{{ID: 1, IsCorrect: true}}},
		}},
	}}
	out := computeScore(a, answers(map[uint][]uint{1: {1}}), 0)
	if out.MaxPossibleScore != 1 || out.FinalScore != 1 || out.Percentage != 100 {
		t.Fatalf("outcome = %+v", out)
	}
}

func TestComputeScoreUnknownTypeEarnsNothing(t *testing.T) {
	a := &model.Assessment{Sections: []model.Section{
		{ID: 1, Questions: []model.Question{
			{ID: 1, Type: "essay", Marks: 4, NegativeMarks: 2, Options: []model.Option{{ID: 1, IsCorrect: true}}},
		}},
	}}
	out := computeScore(a, answers(map[uint][]uint{1: {1}}), 0)
	if out.FinalScore != 0 || out.MaxPossibleScore != 4 || out.CorrectAnswers != 0 {
		t.Fatalf("outcome = %+v", out)
	}
}
