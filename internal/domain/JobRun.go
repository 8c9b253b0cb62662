package domain

import "time"

type JobOutcome string

const (
	JobOutcomeCompleted JobOutcome = "completed"
	JobOutcomeContinued JobOutcome = "continued"
	JobOutcomeSkipped   JobOutcome = "skipped"
	JobOutcomeFailed    JobOutcome = "failed"
)

// JobLock é o lock com prazo de uma cadeia de execuções e o cursor persistido
type JobLock struct {
	Job         string    `json:"job"`
	Owner       string    `json:"owner"`
	LockedUntil time.Time `json:"locked_until"`
	Cursor      int       `json:"cursor"`
}

type JobRun struct {
	ID         int64      `json:"id"`
	Job        string     `json:"job"`
	RunID      string     `json:"run_id"`
	Outcome    JobOutcome `json:"outcome"`
	Processed  int        `json:"processed"`
	Cursor     int        `json:"cursor"`
	Message    string     `json:"message,omitempty"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt time.Time  `json:"finished_at"`
}
