package dto

// ProctoringTerminatedResponse is returned when a log batch trips a threshold.
type ProctoringTerminatedResponse struct {
	Message        string  `json:"message"`
	TestEnded      bool    `json:"testEnded"`
	ViolationType  string  `json:"violationType"`
	ViolationCount int     `json:"violationCount"`
	Threshold      int     `json:"threshold"`
	Score          float64 `json:"score"`
	Percentage     float64 `json:"percentage"`
	IsPassed       bool    `json:"isPassed"`
	ReportID       uint    `json:"reportId"`
}

type ProctoringAckResponse struct {
	Message   string   `json:"message"`
	TestEnded bool     `json:"testEnded"`
	LogsCount int      `json:"logsCount"`
	Warnings  []string `json:"warnings"`
}
