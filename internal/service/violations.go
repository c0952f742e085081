package service

import (
	"fmt"

	"github.com/lshigami/examcore/internal/model"
)

// Penalty marks per logged event. Event types not listed cost defaultPenaltyWeight.
var penaltyWeights = map[string]float64{
	model.EventTabSwitch:          2,
	model.EventFaceNotDetected:    1,
	model.EventCopyPasteDetected:  5,
	model.EventSuspiciousActivity: 10,
}

const defaultPenaltyWeight = 1

func penaltyFor(counts map[string]int) float64 {
	total := 0.0
	for eventType, n := range counts {
		w, ok := penaltyWeights[eventType]
		if !ok {
			w = defaultPenaltyWeight
		}
		total += w * float64(n)
	}
	return total
}

type violationCheck struct {
	eventType string
	label     string
	enabled   func(s *model.ProctoringSetting) bool
	threshold func(s *model.ProctoringSetting) int
}

func intOr(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}

// violationChecks run in this order; the first one exceeded ends the attempt.
var violationChecks = []violationCheck{
	{
		eventType: model.EventTabSwitch,
		label:     "tab switches",
		enabled:   func(s *model.ProctoringSetting) bool { return s.TabSwitchDetection },
		threshold: func(s *model.ProctoringSetting) int { return s.MaxTabSwitches },
	},
	{
		eventType: model.EventFaceNotDetected,
		label:     "face detection violations",
		enabled:   func(s *model.ProctoringSetting) bool { return s.FaceDetection },
		threshold: func(s *model.ProctoringSetting) int { return intOr(s.SettingsJSON.Data().MaxFaceViolations, 5) },
	},
	{
		eventType: model.EventCopyPasteDetected,
		label:     "copy-paste violations",
		enabled:   func(s *model.ProctoringSetting) bool { return s.DisableCopyPaste },
		threshold: func(s *model.ProctoringSetting) int { return intOr(s.SettingsJSON.Data().MaxCopyPasteViolations, 3) },
	},
	{
		eventType: model.EventRightClickDetected,
		label:     "right-click violations",
		enabled:   func(s *model.ProctoringSetting) bool { return s.DisableRightClick },
		threshold: func(s *model.ProctoringSetting) int { return intOr(s.SettingsJSON.Data().MaxRightClickViolations, 10) },
	},
	{
		eventType: model.EventSuspiciousActivity,
		label:     "suspicious activities",
		enabled:   func(*model.ProctoringSetting) bool { return true },
		threshold: func(s *model.ProctoringSetting) int { return intOr(s.SettingsJSON.Data().MaxSuspiciousActivities, 1) },
	},
}

type violation struct {
	EventType string
	Count     int
	Threshold int
}

// firstViolation returns the first enabled check whose count is above its threshold.
func firstViolation(s *model.ProctoringSetting, counts map[string]int) *violation {
	for _, c := range violationChecks {
		if !c.enabled(s) {
			continue
		}
		limit := c.threshold(s)
		if n := counts[c.eventType]; n > limit {
			return &violation{EventType: c.eventType, Count: n, Threshold: limit}
		}
	}
	return nil
}

// approachingWarnings flags enabled detectors with one or two events left before they trip.
func approachingWarnings(s *model.ProctoringSetting, counts map[string]int) []string {
	warnings := []string{}
	for _, c := range violationChecks {
		n := counts[c.eventType]
		if !c.enabled(s) || n == 0 {
			continue
		}
		remaining := c.threshold(s) - n
		if remaining > 0 && remaining <= 2 {
			warnings = append(warnings, fmt.Sprintf("Warning: %d %s remaining before auto-submission", remaining, c.label))
		}
	}
	return warnings
}
