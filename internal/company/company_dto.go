package company

type RegisterRequest struct {
	CompanyName  string `json:"company_name" binding:"required,max=150"`
	CompanyEmail string `json:"company_email" binding:"required,email"`
	AdminName    string `json:"admin_name" binding:"required,max=150"`
	AdminEmail   string `json:"admin_email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
}

type RegisterResponse struct {
	Company        CompanyResponse `json:"company"`
	UserID         string          `json:"user_id"`
	EmployeeID     string          `json:"employee_id"`
	EmployeeNumber string          `json:"employee_number"`
}

type CompanyResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	TaxNumber string `json:"tax_number,omitempty"`
	IsActive  bool   `json:"is_active"`
}

type UpdateCompanyRequest struct {
	Name      string  `json:"name" binding:"omitempty,max=150"`
	Phone     *string `json:"phone" binding:"omitempty,max=30"`
	Address   *string `json:"address"`
	TaxNumber *string `json:"tax_number" binding:"omitempty,max=50"`
}
