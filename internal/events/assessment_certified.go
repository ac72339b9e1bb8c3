package events

import "time"

const (
	AssessmentCertifiedTopic = "hr.assessment.certified.v1"
	AssessmentCertifiedType  = "assessment.certified"
)

type AssessmentCertifiedEvent struct {
	EventType       string     `json:"event_type"`
	CompanyID       string     `json:"company_id"`
	EmployeeID      string     `json:"employee_id"`
	AssessmentID    string     `json:"assessment_id"`
	AttemptID       string     `json:"attempt_id"`
	BadgeName       string     `json:"badge_name"`
	Score           int        `json:"score"`
	CertificationID string     `json:"certification_id,omitempty"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
	OccurredAt      time.Time  `json:"occurred_at"`
}
