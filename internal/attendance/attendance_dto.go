package attendance

type ClockInRequest struct {
	Latitude  *float64 `json:"latitude" binding:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" binding:"omitempty,longitude"`
	Source    string   `json:"source" binding:"omitempty,oneof=WEB MOBILE"`
	Notes     *string  `json:"notes" binding:"omitempty,max=500"`
}

type ClockOutRequest struct {
	Latitude  *float64 `json:"latitude" binding:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" binding:"omitempty,longitude"`
	Notes     *string  `json:"notes" binding:"omitempty,max=500"`
}

type CorrectAttendanceRequest struct {
	ClockIn  string  `json:"clock_in" binding:"required"`
	ClockOut string  `json:"clock_out" binding:"required"`
	Notes    *string `json:"notes" binding:"omitempty,max=500"`
}

// ListFilter dates are YYYY-MM-DD and inclusive.
type ListFilter struct {
	From       string `form:"from"`
	To         string `form:"to"`
	EmployeeID string `form:"employee_id"`
	Status     string `form:"status" binding:"omitempty,oneof=PRESENT LATE"`
}

type AttendanceResponse struct {
	ID           string   `json:"id"`
	CompanyID    string   `json:"company_id"`
	EmployeeID   string   `json:"employee_id"`
	EmployeeName string   `json:"employee_name,omitempty"`
	WorkDate     string   `json:"work_date"`
	ClockIn      string   `json:"clock_in"`
	ClockOut     *string  `json:"clock_out,omitempty"`
	ClockInLat   *float64 `json:"clock_in_lat,omitempty"`
	ClockInLong  *float64 `json:"clock_in_long,omitempty"`
	ClockOutLat  *float64 `json:"clock_out_lat,omitempty"`
	ClockOutLong *float64 `json:"clock_out_long,omitempty"`
	Status       string   `json:"status"`
	Source       string   `json:"source"`
	WorkMinutes  int      `json:"work_minutes"`
	Notes        *string  `json:"notes,omitempty"`
	CorrectedBy  *string  `json:"corrected_by,omitempty"`
}

type SummaryResponse struct {
	EmployeeID       string `json:"employee_id"`
	Month            string `json:"month"`
	DaysPresent      int    `json:"days_present"`
	DaysLate         int    `json:"days_late"`
	TotalWorkMinutes int    `json:"total_work_minutes"`
}
