package user

type CreateUserRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
}

type UpdateUserStatusRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

type ForceResetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

type UserResponse struct {
	ID             string `json:"id"`
	EmployeeID     string `json:"employee_id"`
	EmployeeNumber string `json:"employee_number,omitempty"`
	Email          string `json:"email"`
	IsActive       bool   `json:"is_active"`
	TOTPEnabled    bool   `json:"totp_enabled"`
	FullName       string `json:"full_name,omitempty"`
	LastLoginAt    string `json:"last_login_at,omitempty"`
	CreatedAt      string `json:"created_at"`
}
