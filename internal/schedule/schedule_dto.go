package schedule

type ListFilter struct {
	Date              string `form:"date"`
	From              string `form:"from"`
	To                string `form:"to"`
	EmployeeID        string `form:"employee_id"`
	ManPowerRequestID string `form:"man_power_request_id"`
	Visibility        string `form:"visibility"`
	Status            string `form:"status"`
}

type SetVisibilityRequest struct {
	Visibility string `json:"visibility" binding:"required,oneof=public private"`
}

type CreateChangeRequest struct {
	ScheduleID      string `json:"schedule_id" binding:"required,uuid"`
	RequestedStatus string `json:"requested_status" binding:"required,oneof=accepted rejected"`
	Reason          string `json:"reason" binding:"max=500"`
}

type RespondChangeRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approve reject"`
	Note     string `json:"note" binding:"max=500"`
}

type ChangeListFilter struct {
	ApprovalStatus string `form:"approval_status"`
	EmployeeID     string `form:"employee_id"`
}

type ScheduleResponse struct {
	ID                string `json:"id"`
	ManPowerRequestID string `json:"man_power_request_id"`
	EmployeeID        string `json:"employee_id"`
	SubSectionID      string `json:"sub_section_id"`
	ShiftID           string `json:"shift_id"`
	ShiftName         string `json:"shift_name,omitempty"`
	Date              string `json:"date"`
	Status            string `json:"status"`
	Visibility        string `json:"visibility"`
}

type ChangeResponse struct {
	ID              string  `json:"id"`
	ScheduleID      string  `json:"schedule_id"`
	EmployeeID      string  `json:"employee_id"`
	RequestedStatus string  `json:"requested_status"`
	Reason          string  `json:"reason,omitempty"`
	ApprovalStatus  string  `json:"approval_status"`
	RespondedBy     *string `json:"responded_by,omitempty"`
	ResponseNote    *string `json:"response_note,omitempty"`
	RespondedAt     *string `json:"responded_at,omitempty"`
	CreatedAt       string  `json:"created_at"`
}
