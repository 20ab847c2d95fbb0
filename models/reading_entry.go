package models

import "time"

// ReadingEntry is one glucose reading kept in a session's chart history.
type ReadingEntry struct {
	Value   float64   `json:"value"`
	Context string    `json:"context"`
	Advice  string    `json:"advice"`
	TakenAt time.Time `json:"taken_at"`
}
