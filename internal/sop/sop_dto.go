package sop

type CreateSOPRequest struct {
	Title    string `json:"title" binding:"required,max=200"`
	Category string `json:"category" binding:"omitempty,max=80"`
	Content  string `json:"content" binding:"required"`
}

type UpdateSOPRequest struct {
	Title    *string `json:"title" binding:"omitempty,max=200"`
	Category *string `json:"category" binding:"omitempty,max=80"`
	Content  *string `json:"content"`
}

type ListFilter struct {
	Status   string `form:"status" binding:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
	Category string `form:"category"`
}

type SOPResponse struct {
	ID          string  `json:"id"`
	CompanyID   string  `json:"company_id"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Content     string  `json:"content"`
	Version     int     `json:"version"`
	Status      string  `json:"status"`
	PublishedAt *string `json:"published_at,omitempty"`
	CreatedBy   string  `json:"created_by"`
	UpdatedAt   string  `json:"updated_at"`
}

// PublishedSOPResponse is the cached employee view of a published document.
type PublishedSOPResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Content     string `json:"content"`
	Version     int    `json:"version"`
	PublishedAt string `json:"published_at"`
}

type AcknowledgementResponse struct {
	SOPID          string `json:"sop_id"`
	Version        int    `json:"version"`
	EmployeeID     string `json:"employee_id"`
	EmployeeName   string `json:"employee_name,omitempty"`
	AcknowledgedAt string `json:"acknowledged_at"`
}
