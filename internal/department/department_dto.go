package department

type CreateDepartmentRequest struct {
	Name        string `json:"name" binding:"required,max=150"`
	Description string `json:"description" binding:"max=1000"`
}

type UpdateDepartmentRequest struct {
	Name        string `json:"name" binding:"required,max=150"`
	Description string `json:"description" binding:"max=1000"`
}

type DepartmentResponse struct {
	ID          string `json:"id"`
	CompanyID   string `json:"company_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
