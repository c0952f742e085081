package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	EventTabSwitch          = "tab_switch"
	EventFaceNotDetected    = "face_not_detected"
	EventCopyPasteDetected  = "copy_paste_detected"
	EventRightClickDetected = "right_click_detected"
	EventSuspiciousActivity = "suspicious_activity"
)

// ViolationLimits is the nested settings object holding per-detector thresholds.
type ViolationLimits struct {
	MaxFaceViolations       int `json:"maxFaceViolations,omitempty"`
	MaxCopyPasteViolations  int `json:"maxCopyPasteViolations,omitempty"`
	MaxRightClickViolations int `json:"maxRightClickViolations,omitempty"`
	MaxSuspiciousActivities int `json:"maxSuspiciousActivities,omitempty"`
}

type ProctoringSetting struct {
	ID                    uint                                `gorm:"primarykey" json:"id"`
	AssessmentID          uint                                `json:"assessment_id" gorm:"not null;uniqueIndex"`
	EnableProctoring      bool                                `json:"enable_proctoring" gorm:"default:false"`
	FullScreenRequired    bool                                `json:"full_screen_required" gorm:"default:false"`
	DisableCopyPaste      bool                                `json:"disable_copy_paste" gorm:"default:false"`
	DisableRightClick     bool                                `json:"disable_right_click" gorm:"default:false"`
	TabSwitchDetection    bool                                `json:"tab_switch_detection" gorm:"default:false"`
	MaxTabSwitches        int                                 `json:"max_tab_switches" gorm:"default:0"`
	FaceDetection         bool                                `json:"face_detection" gorm:"default:false"`
	ScreenRecording       bool                                `json:"screen_recording" gorm:"default:false"`
	AutoSubmitOnViolation bool                                `json:"auto_submit_on_violation" gorm:"default:false"`
	WarningBeforeAction   bool                                `json:"warning_before_action" gorm:"default:true"`
	NotificationTarget    string                              `json:"notification_target,omitempty"`
	SettingsJSON          datatypes.JSONType[ViolationLimits] `json:"settings_json"`
	CreatedAt             time.Time                           `json:"created_at"`
}

// ProctoringLog is append-only.
type ProctoringLog struct {
	LogID     uuid.UUID      `gorm:"type:uuid;primaryKey" json:"log_id"`
	AttemptID uint           `json:"attempt_id" gorm:"not null;index"`
	EventType string         `json:"event_type" gorm:"size:64;not null;index"`
	Timestamp time.Time      `json:"timestamp" gorm:"not null"`
	Metadata  datatypes.JSON `json:"metadata,omitempty"`
}

func (ProctoringLog) TableName() string { return "proctoring_logs" }
