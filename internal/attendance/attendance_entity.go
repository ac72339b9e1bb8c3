package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPresent = "PRESENT"
	StatusLate    = "LATE"

	SourceWeb    = "WEB"
	SourceMobile = "MOBILE"
	SourceAdmin  = "ADMIN"
)

// AttendanceLog is one employee's attendance for one local work date.
type AttendanceLog struct {
	ID            uuid.UUID    `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID     uuid.UUID    `gorm:"column:company_id;type:uuid;not null;uniqueIndex:uq_attendance_employee_date,priority:1"`
	EmployeeID    uuid.UUID    `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_attendance_employee_date,priority:2"`
	WorkDate      time.Time    `gorm:"column:work_date;type:date;not null;uniqueIndex:uq_attendance_employee_date,priority:3"`
	ClockIn       time.Time    `gorm:"column:clock_in;type:timestamptz;not null"`
	ClockOut      *time.Time   `gorm:"column:clock_out;type:timestamptz"`
	ClockInLat    *float64     `gorm:"column:clock_in_lat"`
	ClockInLong   *float64     `gorm:"column:clock_in_long"`
	ClockOutLat   *float64     `gorm:"column:clock_out_lat"`
	ClockOutLong  *float64     `gorm:"column:clock_out_long"`
	Source        string       `gorm:"column:source;type:varchar(10);not null;default:WEB"`
	Status        string       `gorm:"column:status;type:varchar(10);not null;default:PRESENT"`
	WorkMinutes   int          `gorm:"column:work_minutes;not null;default:0"`
	Notes         *string      `gorm:"column:notes;type:text"`
	CorrectedBy   *uuid.UUID   `gorm:"column:corrected_by;type:uuid"`
	CreatedAt     time.Time    `gorm:"column:created_at"`
	UpdatedAt     time.Time    `gorm:"column:updated_at"`
	Employee      *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (AttendanceLog) TableName() string {
	return "attendance_logs"
}

type EmployeeRef struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"column:full_name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
