package payroll

type ComponentInput struct {
	Name   string `json:"name" binding:"required,max=120"`
	Amount int64  `json:"amount" binding:"gte=0"`
}

type GeneratePayrollRequest struct {
	EmployeeID string           `json:"employee_id" binding:"required,uuid"`
	Period     string           `json:"period" binding:"required"`
	Allowances []ComponentInput `json:"allowances" binding:"omitempty,dive"`
	Deductions []ComponentInput `json:"deductions" binding:"omitempty,dive"`
}

type ListFilter struct {
	Period     string `form:"period"`
	Status     string `form:"status" binding:"omitempty,oneof=DRAFT APPROVED PAID CANCELLED"`
	EmployeeID string `form:"employee_id"`
}

type PayrollItemResponse struct {
	Type   string `json:"type"`
	Name   string `json:"name"`
	Amount int64  `json:"amount"`
}

type PayrollResponse struct {
	ID                 string                `json:"id"`
	CompanyID          string                `json:"company_id"`
	EmployeeID         string                `json:"employee_id"`
	EmployeeName       string                `json:"employee_name,omitempty"`
	Period             string                `json:"period"`
	PeriodStart        string                `json:"period_start"`
	PeriodEnd          string                `json:"period_end"`
	BaseSalary         int64                 `json:"base_salary"`
	GrossSalary        int64                 `json:"gross_salary"`
	TotalDeduction     int64                 `json:"total_deduction"`
	Tax                int64                 `json:"tax"`
	NetSalary          int64                 `json:"net_salary"`
	Status             string                `json:"status"`
	CreatedBy          string                `json:"created_by"`
	ApprovedBy         *string               `json:"approved_by,omitempty"`
	ApprovedAt         *string               `json:"approved_at,omitempty"`
	PaidAt             *string               `json:"paid_at,omitempty"`
	PayslipGeneratedAt *string               `json:"payslip_generated_at,omitempty"`
	Items              []PayrollItemResponse `json:"items,omitempty"`
}

type BreakdownResponse struct {
	PayrollID      string                `json:"payroll_id"`
	Period         string                `json:"period"`
	Earnings       []PayrollItemResponse `json:"earnings"`
	Deductions     []PayrollItemResponse `json:"deductions"`
	Tax            int64                 `json:"tax"`
	GrossSalary    int64                 `json:"gross_salary"`
	TotalDeduction int64                 `json:"total_deduction"`
	NetSalary      int64                 `json:"net_salary"`
}

type PayslipRequestResponse struct {
	PayrollID   string `json:"payroll_id"`
	RequestedAt string `json:"requested_at"`
}

type PayslipFile struct {
	FileName string
	Content  []byte
}
