package models

import (
	"time"
)

// MoodEntry is a single journal submission. Entries are append-only:
// never mutated or deleted once stored.
type MoodEntry struct {
	ID             string    `json:"id" db:"id"`
	Mood           string    `json:"mood" db:"mood"`
	Journal        string    `json:"journal" db:"journal"`
	Sentiment      float64   `json:"sentiment" db:"sentiment"`
	ComfortMessage string    `json:"comfort_message" db:"comfort_message"`
	Suggestions    []string  `json:"suggestions" db:"suggestions"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// AIResponse is the transient product of the response generator. It is
// flattened into a MoodEntry before anything is persisted.
type AIResponse struct {
	Comfort     string   `json:"comfort"`
	Suggestions []string `json:"suggestions"`
}
