package attendance

type ClockInRequest struct {
	Notes *string `json:"notes"`
}

type ClockOutRequest struct {
	Notes *string `json:"notes"`
}

// RecordRequest lets a supervisor register a worked day on behalf of a daily
// employee.
type RecordRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required,uuid"`
	Date       string  `json:"date" binding:"required"`
	Notes      *string `json:"notes"`
}

type ListFilter struct {
	EmployeeID string
	From       string
	To         string
}

type AttendanceResponse struct {
	ID             string  `json:"id"`
	CompanyID      string  `json:"company_id"`
	EmployeeID     string  `json:"employee_id"`
	AttendanceDate string  `json:"attendance_date"`
	ClockIn        string  `json:"clock_in"`
	ClockOut       *string `json:"clock_out,omitempty"`
	Status         string  `json:"status"`
	Source         string  `json:"source"`
	Notes          *string `json:"notes,omitempty"`
}
