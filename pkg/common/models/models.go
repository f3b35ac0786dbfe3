package models

import "time"

// Intake models
type AssessRequest struct {
	AgeGroup string            `json:"age_group"`
	Symptoms []string          `json:"symptoms"` // selected symptom group names
	Answers  map[string]string `json:"answers,omitempty"`
}

// Style is the (background, foreground, border) presentation triple for a
// triage tier.
type Style struct {
	Background string `json:"background"`
	Foreground string `json:"foreground"`
	Border     string `json:"border"`
}

// Assessment is the interpreted outcome of one triage evaluation.
type Assessment struct {
	ID             string                 `json:"id"`
	Label          string                 `json:"label"`
	Tier           string                 `json:"tier"` // home-care, outpatient, emergency
	Style          Style                  `json:"style"`
	Recommendation string                 `json:"recommendation"`
	Notice         string                 `json:"notice"`
	RedFlagCount   int                    `json:"red_flag_count"`
	Record         map[string]interface{} `json:"record"`
	CreatedAt      time.Time              `json:"created_at"`
}

// Event Bus models
type Event struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"` // assessment.completed
	Source    string                 `json:"source"`
	Data      map[string]interface{} `json:"data"`
	Timestamp time.Time              `json:"timestamp"`
	Metadata  map[string]string      `json:"metadata,omitempty"`
}
