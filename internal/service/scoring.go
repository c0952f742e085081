package service

import (
	"math"
	"strconv"

	"github.com/lshigami/examcore/internal/dto"
	"github.com/lshigami/examcore/internal/model"
	"github.com/rs/zerolog/log"
)

type scoreOutcome struct {
	RawScore         float64
	Penalty          float64
	FinalScore       float64
	MaxPossibleScore float64
	Percentage       float64
	IsPassed         bool
	CorrectAnswers   int
	TotalQuestions   int
	SectionScores    map[string]float64
	Questions        []dto.QuestionResult
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func positiveOr(v, fallback float64) float64 {
	if v <= 0 {
		return fallback
	}
	return v
}

// computeScore marks every submission against the answer key. Section
// subtotals are floored at zero before they are summed; the penalty is
// taken off the sum and the final score is floored at zero again.
func computeScore(a *model.Assessment, subs []model.Submission, penalty float64) scoreOutcome {
	selected := make(map[uint][]uint, len(subs))
	for _, s := range subs {
		selected[s.QuestionID] = s.SelectedOptions
	}

	out := scoreOutcome{SectionScores: map[string]float64{}}
	known := make(map[uint]bool)
	for _, sec := range a.Sections {
		weight := positiveOr(sec.Weightage, 1)
		subtotal := 0.0
		answeredInSection := false

		for _, q := range sec.Questions {
			known[q.ID] = true
			out.TotalQuestions++
			weighted := positiveOr(q.Marks, 1) * weight
			out.MaxPossibleScore += weighted

			res := dto.QuestionResult{QuestionID: q.ID, SectionID: sec.ID}
			sel := dedupe(selected[q.ID])
			if len(sel) > 0 {
				res.Answered = true
				answeredInSection = true
				res.Correct, res.MarksAwarded = markQuestion(q, sel, weighted, weight, a.ScoringPolicy)
				if res.Correct {
					out.CorrectAnswers++
				}
				subtotal += res.MarksAwarded
			}
			out.Questions = append(out.Questions, res)
		}

		subtotal = round2(math.Max(0, subtotal))
		if answeredInSection {
			out.SectionScores[strconv.FormatUint(uint64(sec.ID), 10)] = subtotal
		}
		out.RawScore += subtotal
	}

	for _, s := range subs {
		if !known[s.QuestionID] {
			log.Warn().Uint("attemptID", s.AttemptID).Uint("questionID", s.QuestionID).Msg("Ignoring submission for a question outside the assessment")
		}
	}

	out.RawScore = round2(out.RawScore)
	out.Penalty = penalty
	out.FinalScore = round2(math.Max(0, out.RawScore-penalty))
	if out.MaxPossibleScore > 0 {
		out.Percentage = round2(out.FinalScore / out.MaxPossibleScore * 100)
	}
	passing := 0.0
	if a.PassingMarks != nil {
		passing = *a.PassingMarks
	}
	out.IsPassed = out.FinalScore >= passing
	return out
}

// markQuestion returns whether the answer is fully correct and the marks it earns.
// Wrong answers earn the negative marks scaled by the section weight.
func markQuestion(q model.Question, sel []uint, weighted, weight float64, policy model.ScoringPolicy) (bool, float64) {
	var correct []uint
	for _, o := range q.Options {
		if o.IsCorrect {
			correct = append(correct, o.ID)
		}
	}
	wrong := 0.0
	if q.NegativeMarks != 0 {
		wrong = -math.Abs(q.NegativeMarks) * weight
	}

	switch q.Type {
	case model.QuestionSingleCorrect:
		if len(correct) == 1 && len(sel) == 1 && sel[0] == correct[0] {
			return true, weighted
		}
		return false, wrong
	case model.QuestionMultiCorrect:
		if policy == model.ScoringPartial {
			fraction := partialFraction(correct, sel)
			if fraction <= 0 {
				return false, wrong
			}
			return fraction == 1, fraction * weighted
		}
		if sameSet(correct, sel) {
			return true, weighted
		}
		return false, wrong
	default:
		log.Warn().Uint("questionID", q.ID).Str("type", string(q.Type)).Msg("Unknown question type scored as zero")
		return false, 0
	}
}

// partialFraction is max(0, (correctSelected - incorrectSelected) / totalCorrect).
func partialFraction(correct, sel []uint) float64 {
	if len(correct) == 0 {
		return 0
	}
	isCorrect := make(map[uint]bool, len(correct))
	for _, id := range correct {
		isCorrect[id] = true
	}
	hits, misses := 0, 0
	for _, id := range sel {
		if isCorrect[id] {
			hits++
		} else {
			misses++
		}
	}
	return math.Max(0, float64(hits-misses)/float64(len(correct)))
}

func sameSet(a, b []uint) bool {
	if len(a) != len(b) {
		return false
	}
	in := make(map[uint]bool, len(a))
	for _, id := range a {
		in[id] = true
	}
	for _, id := range b {
		if !in[id] {
			return false
		}
	}
	return true
}

func dedupe(ids []uint) []uint {
	if len(ids) < 2 {
		return ids
	}
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
