package employee

type CreateEmployeeRequest struct {
	FullName         string `json:"full_name" binding:"required,max=150"`
	Email            string `json:"email" binding:"required,email"`
	Phone            string `json:"phone" binding:"omitempty,max=30"`
	JobTitle         string `json:"job_title" binding:"omitempty,max=100"`
	DepartmentID     string `json:"department_id" binding:"omitempty,uuid"`
	HireDate         string `json:"hire_date" binding:"required"`
	EmploymentStatus string `json:"employment_status" binding:"omitempty,oneof=ACTIVE INACTIVE TERMINATED"`
}

type UpdateEmployeeRequest struct {
	FullName         string `json:"full_name" binding:"required,max=150"`
	Email            string `json:"email" binding:"required,email"`
	Phone            string `json:"phone" binding:"omitempty,max=30"`
	JobTitle         string `json:"job_title" binding:"omitempty,max=100"`
	DepartmentID     string `json:"department_id" binding:"omitempty,uuid"`
	HireDate         string `json:"hire_date" binding:"required"`
	EmploymentStatus string `json:"employment_status" binding:"required,oneof=ACTIVE INACTIVE TERMINATED"`
}

type EmployeeDepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type EmployeeResponse struct {
	ID               string                      `json:"id"`
	CompanyID        string                      `json:"company_id"`
	EmployeeNumber   string                      `json:"employee_number"`
	FullName         string                      `json:"full_name"`
	Email            string                      `json:"email"`
	Phone            string                      `json:"phone,omitempty"`
	JobTitle         string                      `json:"job_title,omitempty"`
	HireDate         string                      `json:"hire_date"`
	EmploymentStatus string                      `json:"employment_status"`
	DepartmentID     string                      `json:"department_id,omitempty"`
	Department       *EmployeeDepartmentResponse `json:"department,omitempty"`
}

type EmployeeOption struct {
	ID             string `json:"id"`
	FullName       string `json:"full_name"`
	EmployeeNumber string `json:"employee_number"`
}

// ListQuery filters and orders the employee list in memory before pagination.
type ListQuery struct {
	Q            string `form:"q"`
	Status       string `form:"status" binding:"omitempty,oneof=ACTIVE INACTIVE TERMINATED"`
	DepartmentID string `form:"department_id" binding:"omitempty,uuid"`
	SortBy       string `form:"sort_by" binding:"omitempty,oneof=name email employee_number hire_date"`
	SortDir      string `form:"sort_dir" binding:"omitempty,oneof=asc desc"`
}
