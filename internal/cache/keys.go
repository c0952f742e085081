package cache

import (
	"fmt"
	"net/url"
	"time"
)

const (
	EligibilityTTL     = 60 * time.Second
	StructureTTL       = time.Hour
	SettingsTTL        = time.Hour
	ViolationCountsTTL = 5 * time.Minute
	AttemptTTL         = 2 * time.Minute
	SubmissionsTTL     = 5 * time.Minute
	ListTTL            = 60 * time.Second
)

const (
	AttemptListNamespace = "attempts:list"
	ReportListNamespace  = "reports:list"
)

func EligibilityKey(assignmentID uint) string {
	return fmt.Sprintf("assignment:%d:eligibility", assignmentID)
}

// AnswerKeyKey holds the question/option id sets used to validate submissions.
func AnswerKeyKey(assessmentID uint) string {
	return fmt.Sprintf("assessment:%d:answer_key", assessmentID)
}

// ScoringShapeKey holds sections, questions and options with correctness flags.
func ScoringShapeKey(assessmentID uint) string {
	return fmt.Sprintf("assessment:%d:scoring_shape", assessmentID)
}

func SettingsKey(assessmentID uint) string {
	return fmt.Sprintf("assessment:%d:proctoring_settings", assessmentID)
}

func ViolationCountsKey(attemptID uint) string {
	return fmt.Sprintf("attempt:%d:violation_counts", attemptID)
}

func AttemptKey(attemptID uint) string {
	return fmt.Sprintf("attempt:%d", attemptID)
}

func SubmissionsKey(attemptID uint) string {
	return fmt.Sprintf("submissions:attempt:%d", attemptID)
}

// AttemptKeys lists every per-attempt entry a state change can make stale.
func AttemptKeys(attemptID uint) []string {
	return []string{AttemptKey(attemptID), ViolationCountsKey(attemptID), SubmissionsKey(attemptID)}
}

// ListKey builds a page key under a versioned namespace from the query values.
func ListKey(versionedNS string, query url.Values) string {
	return versionedNS + ":" + query.Encode()
}
