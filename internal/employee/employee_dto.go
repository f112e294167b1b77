package employee

type CreateEmployeeRequest struct {
	NIK           string   `json:"nik" binding:"required,max=32"`
	FullName      string   `json:"full_name" binding:"required"`
	Gender        string   `json:"gender" binding:"required,oneof=male female"`
	EmployeeType  string   `json:"employee_type" binding:"required,oneof=daily monthly"`
	SubSectionIDs []string `json:"sub_section_ids" binding:"omitempty,dive,uuid"`
	Priorities    []string `json:"priorities"`
}

type ListFilter struct {
	Status       string
	SubSectionID string
	Query        string
	IDs          []string
}

type DeactivateRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type SetPrioritiesRequest struct {
	Categories []string `json:"categories"`
}

type BulkDeactivateRequest struct {
	EmployeeIDs []string `json:"employee_ids" binding:"required,min=1"`
	Reason      string   `json:"reason" binding:"required"`
}

// BulkResetStatusesRequest resets every employee of the company when
// EmployeeIDs is empty.
type BulkResetStatusesRequest struct {
	EmployeeIDs []string `json:"employee_ids"`
}

type SubSectionRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type EmployeeResponse struct {
	ID                 string          `json:"id"`
	CompanyID          string          `json:"company_id"`
	NIK                string          `json:"nik"`
	FullName           string          `json:"full_name"`
	Gender             string          `json:"gender"`
	EmployeeType       string          `json:"employee_type"`
	Status             string          `json:"status"`
	DeactivationReason *string         `json:"deactivation_reason,omitempty"`
	DeactivatedAt      *string         `json:"deactivated_at,omitempty"`
	WorkStatus         string          `json:"work_status"`
	OnLeave            bool            `json:"on_leave"`
	SubSections        []SubSectionRef `json:"sub_sections"`
	Priorities         []string        `json:"priorities"`
	PriorityWeight     float64         `json:"priority_weight"`
}
