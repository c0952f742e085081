package dto

type RescoreResponse struct {
	Message string      `json:"message"`
	Result  ScoreResult `json:"result"`
}

type PenaltyResponse struct {
	AttemptID uint    `json:"attemptId"`
	Penalty   float64 `json:"penalty"`
}
