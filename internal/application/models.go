// internal/application/models.go
package application

import (
	"strings"
	"time"
)

// Canonical status vocabulary. Legacy casings ("Pending", "Under Review")
// from older data directories are folded in by NormalizeStatus.
const (
	StatusSubmitted          = "submitted"
	StatusInReview           = "in_review"
	StatusInterviewScheduled = "interview_scheduled"
	StatusSelected           = "selected"
	StatusRejected           = "rejected"
)

// Statuses lists the closed vocabulary in its narration order.
var Statuses = []string{
	StatusSubmitted,
	StatusInReview,
	StatusInterviewScheduled,
	StatusSelected,
	StatusRejected,
}

// Record is one application JSON file under the applications directory.
type Record struct {
	ApplicationID     string   `json:"application_id"`
	JobID             string   `json:"job_id,omitempty"`
	JobTitle          string   `json:"job_title,omitempty"`
	Name              string   `json:"name,omitempty"`
	Email             string   `json:"email,omitempty"`
	Phone             string   `json:"phone,omitempty"`
	DOB               string   `json:"dob,omitempty"`
	Skills            []string `json:"skills,omitempty"`
	Experience        string   `json:"experience,omitempty"`
	Status            string   `json:"status,omitempty"`
	UpdatedAt         string   `json:"updated_at,omitempty"`
	ResumeReviewed    string   `json:"resume_reviewed,omitempty"`
	ResponseTimeframe string   `json:"response_timeframe,omitempty"`
	RejectionReason   string   `json:"rejection_reason,omitempty"`
	ReapplyPossible   string   `json:"reapply_possible,omitempty"`
	Description       string   `json:"description,omitempty"`
}

// Summary is the narration-friendly projection used in listings.
type Summary struct {
	ApplicationID  string `json:"application_id"`
	JobTitle       string `json:"job_title"`
	Status         string `json:"status"`
	HumanStatus    string `json:"human_status"`
	UpdatedAt      string `json:"updated_at,omitempty"`
	UpdatedAtHuman string `json:"updated_at_human,omitempty"`
}

// ListResult is the outcome of listing a caller's applications by email.
type ListResult struct {
	Email        string    `json:"email"`
	Name         string    `json:"name,omitempty"`
	Count        int       `json:"count"`
	Applications []Summary `json:"applications"`
}

// Detail extends Summary with the identity fields kept for follow-up questions.
type Detail struct {
	Summary
	Name              string `json:"name,omitempty"`
	Email             string `json:"email,omitempty"`
	Phone             string `json:"phone,omitempty"`
	ResponseTimeframe string `json:"response_timeframe,omitempty"`
	Description       string `json:"description,omitempty"`
}

// StatusResult is the outcome of an application-id lookup.
type StatusResult struct {
	Found       bool    `json:"found"`
	Application *Detail `json:"application"`
}

// CreateRequest carries the arguments of the apply flow.
type CreateRequest struct {
	JobID      string
	Name       string
	DOB        string
	Email      string
	Phone      string
	Skills     []string
	Experience string
}

// CreateResult confirms a newly filed application.
type CreateResult struct {
	ApplicationID string `json:"application_id"`
	JobID         string `json:"job_id"`
	JobTitle      string `json:"job_title"`
	Status        string `json:"status"`
	Message       string `json:"message"`
}

// statusLines are the fixed phone-call sentences narrated for each status.
var statusLines = map[string]string{
	StatusSubmitted:          "We've received your application and will begin our review shortly. No action needed from you right now.",
	StatusInReview:           "Your application is currently under review by our recruiting team.",
	StatusInterviewScheduled: "Your interview has been scheduled. Let me know if you'd like any preparation guidance.",
	StatusSelected:           "Congratulations, your application has been selected. Our team will reach out with next steps.",
	StatusRejected:           "Unfortunately, we won't be moving forward with this application, but we appreciate your time. Thank you for your interest!",
}

const defaultStatusLine = "We're processing your application."

// NormalizeStatus folds raw status strings from any record variant into the
// canonical vocabulary. Values outside the vocabulary pass through in
// normalized form, so HumanStatus narrates them with the generic line
// instead of misreporting them as submitted.
func NormalizeStatus(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, " ", "_")
	switch s {
	case StatusSubmitted, "pending":
		return StatusSubmitted
	case StatusInReview, "under_review":
		return StatusInReview
	case StatusInterviewScheduled:
		return StatusInterviewScheduled
	case StatusSelected:
		return StatusSelected
	case StatusRejected:
		return StatusRejected
	default:
		return s
	}
}

// HumanStatus maps a canonical status to its narration sentence. Raw codes
// never reach the caller.
func HumanStatus(status string) string {
	if line, ok := statusLines[status]; ok {
		return line
	}
	return defaultStatusLine
}

// HumanDate renders an ISO-8601 timestamp as dd-mm-yyyy for speech, falling
// back to the raw string when it does not parse.
func HumanDate(ts string) string {
	if ts == "" {
		return ""
	}
	if t, err := time.Parse(time.RFC3339, ts); err == nil {
		return t.Format("02-01-2006")
	}
	trimmed := strings.TrimSuffix(ts, "Z")
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format("02-01-2006")
		}
	}
	return ts
}
