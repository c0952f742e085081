package service

import (
	"testing"

	"github.com/lshigami/examcore/internal/model"
	"gorm.io/datatypes"
)

func TestFirstViolation(t *testing.T) {
	tests := []struct {
		name     string
		settings model.ProctoringSetting
		counts   map[string]int
		want     *violation
	}{
		{
			name:     "tab switch wins over right click in check order",
			settings: model.ProctoringSetting{TabSwitchDetection: true, MaxTabSwitches: 3, DisableRightClick: true},
			counts:   map[string]int{model.EventTabSwitch: 4, model.EventRightClickDetected: 10},
			want:     &violation{EventType: model.EventTabSwitch, Count: 4, Threshold: 3},
		},
		{
			name:     "count equal to threshold does not trip",
			settings: model.ProctoringSetting{TabSwitchDetection: true, MaxTabSwitches: 3},
			counts:   map[string]int{model.EventTabSwitch: 3},
		},
		{
			name:     "disabled detector is ignored",
			settings: model.ProctoringSetting{MaxTabSwitches: 1},
			counts:   map[string]int{model.EventTabSwitch: 20},
		},
		{
			name:     "face threshold defaults to five",
			settings: model.ProctoringSetting{FaceDetection: true},
			counts:   map[string]int{model.EventFaceNotDetected: 6},
			want:     &violation{EventType: model.EventFaceNotDetected, Count: 6, Threshold: 5},
		},
		{
			name: "nested threshold overrides the default",
			settings: model.ProctoringSetting{
				DisableCopyPaste: true,
				SettingsJSON:     datatypes.NewJSONType(model.ViolationLimits{MaxCopyPasteViolations: 5}),
			},
			counts: map[string]int{model.EventCopyPasteDetected: 4},
		},
		{
			name:     "right click after copy paste",
			settings: model.ProctoringSetting{DisableCopyPaste: true, DisableRightClick: true},
			counts:   map[string]int{model.EventCopyPasteDetected: 4, model.EventRightClickDetected: 11},
			want:     &violation{EventType: model.EventCopyPasteDetected, Count: 4, Threshold: 3},
		},
		{
			name:     "suspicious activity is always checked",
			settings: model.ProctoringSetting{},
			counts:   map[string]int{model.EventSuspiciousActivity: 2},
			want:     &violation{EventType: model.EventSuspiciousActivity, Count: 2, Threshold: 1},
		},
		{
			name:     "zero tab switch threshold trips on the first switch",
			settings: model.ProctoringSetting{TabSwitchDetection: true},
			counts:   map[string]int{model.EventTabSwitch: 1},
			want:     &violation{EventType: model.EventTabSwitch, Count: 1, Threshold: 0},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := firstViolation(&tc.settings, tc.counts)
			switch {
			case tc.want == nil && got != nil:
				t.Fatalf("firstViolation = %+v, want none", *got)
			case tc.want != nil && got == nil:
				t.Fatalf("firstViolation = nil, want %+v", *tc.want)
			case tc.want != nil && *got != *tc.want:
				t.Fatalf("firstViolation = %+v, want %+v", *got, *tc.want)
			}
		})
	}
}

func TestApproachingWarnings(t *testing.T) {
	settings := &model.ProctoringSetting{TabSwitchDetection: true, MaxTabSwitches: 3, FaceDetection: true}

	if got := approachingWarnings(settings, map[string]int{}); len(got) != 0 {
		t.Fatalf("warnings with no events = %v", got)
	}
	got := approachingWarnings(settings, map[string]int{model.EventTabSwitch: 2, model.EventFaceNotDetected: 1})
	if len(got) != 1 || got[0] != "Warning: 1 tab switches remaining before auto-submission" {
		t.Fatalf("warnings = %v", got)
	}
	got = approachingWarnings(settings, map[string]int{model.EventFaceNotDetected: 3})
	if len(got) != 1 || got[0] != "Warning: 2 face detection violations remaining before auto-submission" {
		t.Fatalf("warnings = %v", got)
	}
}

func TestPenaltyFor(t *testing.T) {
	counts := map[string]int{
		model.EventTabSwitch:          2,
		model.EventFaceNotDetected:    1,
		model.EventCopyPasteDetected:  1,
		model.EventSuspiciousActivity: 1,
		model.EventRightClickDetected: 3,
		"fullscreen_exit":             2,
	}
	if got := penaltyFor(counts); got != 25 {
		t.Fatalf("penaltyFor = %v, want 25", got)
	}
	if got := penaltyFor(nil); got != 0 {
		t.Fatalf("penaltyFor(nil) = %v", got)
	}
}
