package storage

import "time"

// Record is one successful generation. Records are expected to be
// appended in chronological order.
type Record struct {
	Timestamp   time.Time `json:"timestamp"`
	Service     string    `json:"service"`
	UserPrompt  string    `json:"user_prompt,omitempty"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description"`
}

// Recorder abstracts persistence of generation records.
// Implementations can be file-based, database, etc.
// LoadGenerations should return records in chronological order.
// AppendGeneration should atomically append a new record.
// Implementations must be safe for concurrent use.
type Recorder interface {
	AppendGeneration(rec Record) error
	LoadGenerations() ([]Record, error)
}
