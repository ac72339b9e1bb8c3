package assessment

type CreateAssessmentRequest struct {
	Title                     string  `json:"title" binding:"required,max=200"`
	Description               string  `json:"description"`
	DurationMinutes           int     `json:"duration_minutes" binding:"required,gt=0,lte=600"`
	PassScore                 int     `json:"pass_score" binding:"gte=0,lte=100"`
	MaxAttempts               int     `json:"max_attempts" binding:"gte=0"`
	BadgeName                 string  `json:"badge_name" binding:"required,max=120"`
	CertificationValidityDays int     `json:"certification_validity_days" binding:"gte=0"`
	SOPID                     *string `json:"sop_id" binding:"omitempty,uuid"`
}

type UpdateAssessmentRequest struct {
	Title                     *string `json:"title" binding:"omitempty,max=200"`
	Description               *string `json:"description"`
	DurationMinutes           *int    `json:"duration_minutes" binding:"omitempty,gt=0,lte=600"`
	PassScore                 *int    `json:"pass_score" binding:"omitempty,gte=0,lte=100"`
	MaxAttempts               *int    `json:"max_attempts" binding:"omitempty,gte=0"`
	BadgeName                 *string `json:"badge_name" binding:"omitempty,max=120"`
	CertificationValidityDays *int    `json:"certification_validity_days" binding:"omitempty,gte=0"`
}

type OptionInput struct {
	Label     string `json:"label" binding:"required,max=500"`
	IsCorrect bool   `json:"is_correct"`
}

type AddQuestionRequest struct {
	Type    string        `json:"type" binding:"required,oneof=SINGLE MULTI TRUE_FALSE"`
	Prompt  string        `json:"prompt" binding:"required"`
	Points  int           `json:"points" binding:"required,gt=0"`
	Options []OptionInput `json:"options" binding:"required,min=2,dive"`
}

type AnswersRequest struct {
	Answers map[string][]string `json:"answers" binding:"required"`
}

// SubmitRequest carries optional last-second answers.
type SubmitRequest struct {
	Answers map[string][]string `json:"answers"`
}

type ListFilter struct {
	Status string `form:"status" binding:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
}

type OptionResponse struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	IsCorrect *bool  `json:"is_correct,omitempty"`
}

type QuestionResponse struct {
	ID      string           `json:"id"`
	Type    string           `json:"type"`
	Prompt  string           `json:"prompt"`
	Points  int              `json:"points"`
	Options []OptionResponse `json:"options"`
}

type AssessmentResponse struct {
	ID                        string             `json:"id"`
	CompanyID                 string             `json:"company_id"`
	Title                     string             `json:"title"`
	Description               string             `json:"description"`
	DurationMinutes           int                `json:"duration_minutes"`
	PassScore                 int                `json:"pass_score"`
	MaxAttempts               int                `json:"max_attempts"`
	BadgeName                 string             `json:"badge_name"`
	CertificationValidityDays int                `json:"certification_validity_days"`
	SOPID                     *string            `json:"sop_id,omitempty"`
	Status                    string             `json:"status"`
	PublishedAt               *string            `json:"published_at,omitempty"`
	QuestionCount             int                `json:"question_count"`
	Questions                 []QuestionResponse `json:"questions,omitempty"`
}

type AttemptResponse struct {
	ID           string  `json:"id"`
	AssessmentID string  `json:"assessment_id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Status       string  `json:"status"`
	StartedAt    string  `json:"started_at"`
	ExpiresAt    string  `json:"expires_at"`
	SubmittedAt  *string `json:"submitted_at,omitempty"`
	Score        *int    `json:"score,omitempty"`
	EarnedPoints *int    `json:"earned_points,omitempty"`
	TotalPoints  int     `json:"total_points"`
	Passed       *bool   `json:"passed,omitempty"`
}

// AttemptView is what the employee sees while an attempt runs.
type AttemptView struct {
	Attempt          AttemptResponse     `json:"attempt"`
	Questions        []QuestionResponse  `json:"questions"`
	Answers          map[string][]string `json:"answers"`
	RemainingSeconds int64               `json:"remaining_seconds"`
	Resumed          bool                `json:"resumed"`
}

type QuestionResultResponse struct {
	QuestionID       string   `json:"question_id"`
	Chosen           []string `json:"chosen"`
	CorrectOptionIDs []string `json:"correct_option_ids"`
	Correct          bool     `json:"correct"`
	EarnedPoints     int      `json:"earned_points"`
}

// AttemptResult is returned once an attempt is finished.
type AttemptResult struct {
	Attempt       AttemptResponse          `json:"attempt"`
	Results       []QuestionResultResponse `json:"results"`
	BadgeAwarded  bool                     `json:"badge_awarded"`
	Certification *CertificationResponse   `json:"certification,omitempty"`
}

// AttemptDetail carries either the running view or the finished result.
type AttemptDetail struct {
	View   *AttemptView   `json:"view,omitempty"`
	Result *AttemptResult `json:"result,omitempty"`
}

type BadgeResponse struct {
	ID           string `json:"id"`
	AssessmentID string `json:"assessment_id"`
	AttemptID    string `json:"attempt_id"`
	BadgeName    string `json:"badge_name"`
	AwardedAt    string `json:"awarded_at"`
}

type CertificationResponse struct {
	ID           string `json:"id"`
	AssessmentID string `json:"assessment_id"`
	AttemptID    string `json:"attempt_id"`
	IssuedAt     string `json:"issued_at"`
	ExpiresAt    string `json:"expires_at"`
	Valid        bool   `json:"valid"`
}
