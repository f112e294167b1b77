package manpower

type CreateRequest struct {
	SubSectionID      string `json:"sub_section_id" binding:"required,uuid"`
	ShiftID           string `json:"shift_id" binding:"required,uuid"`
	Date              string `json:"date" binding:"required"`
	RequestedAmount   int    `json:"requested_amount" binding:"required,min=1,max=500"`
	MaleCount         int    `json:"male_count" binding:"min=0"`
	FemaleCount       int    `json:"female_count" binding:"min=0"`
	IsAdditional      bool   `json:"is_additional"`
	AllowCrossSection bool   `json:"allow_cross_section"`
	Notes             string `json:"notes" binding:"max=1000"`
}

type ListFilter struct {
	Date         string `form:"date"`
	Status       string `form:"status"`
	SubSectionID string `form:"sub_section_id"`
}

type AssignRequest struct {
	EmployeeIDs []string `json:"employee_ids" binding:"required,min=1,dive,uuid"`
}

type RejectRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

type CreateRecurringNeedRequest struct {
	SubSectionID      string `json:"sub_section_id" binding:"required,uuid"`
	ShiftID           string `json:"shift_id" binding:"required,uuid"`
	RequestedAmount   int    `json:"requested_amount" binding:"required,min=1,max=500"`
	MaleCount         int    `json:"male_count" binding:"min=0"`
	FemaleCount       int    `json:"female_count" binding:"min=0"`
	AllowCrossSection bool   `json:"allow_cross_section"`
	RRule             string `json:"rrule" binding:"required"`
	StartDate         string `json:"start_date" binding:"required"`
}

type GenerateRequest struct {
	From string `json:"from" binding:"required"`
	To   string `json:"to" binding:"required"`
}

type RequestResponse struct {
	ID                string  `json:"id"`
	Number            string  `json:"number"`
	SubSectionID      string  `json:"sub_section_id"`
	SubSectionName    string  `json:"sub_section_name,omitempty"`
	ShiftID           string  `json:"shift_id"`
	ShiftName         string  `json:"shift_name,omitempty"`
	Date              string  `json:"date"`
	RequestedAmount   int     `json:"requested_amount"`
	MaleCount         int     `json:"male_count"`
	FemaleCount       int     `json:"female_count"`
	IsAdditional      bool    `json:"is_additional"`
	AllowCrossSection bool    `json:"allow_cross_section"`
	Status            string  `json:"status"`
	Notes             string  `json:"notes,omitempty"`
	RejectionReason   *string `json:"rejection_reason,omitempty"`
}

type ScheduleSummary struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Status     string `json:"status"`
	Visibility string `json:"visibility"`
}

type FulfillmentResponse struct {
	Accepted        int `json:"accepted"`
	Male            int `json:"male"`
	Female          int `json:"female"`
	Remaining       int `json:"remaining"`
	RemainingMale   int `json:"remaining_male"`
	RemainingFemale int `json:"remaining_female"`
}

type RequestDetailResponse struct {
	RequestResponse
	Fulfillment FulfillmentResponse `json:"fulfillment"`
	Schedules   []ScheduleSummary   `json:"schedules"`
}

type CandidateResponse struct {
	EmployeeID      string   `json:"employee_id"`
	NIK             string   `json:"nik"`
	FullName        string   `json:"full_name"`
	Gender          string   `json:"gender"`
	EmployeeType    string   `json:"employee_type"`
	SameSubSection  bool     `json:"same_sub_section"`
	Priorities      []string `json:"priorities"`
	PriorityWeight  string   `json:"priority_weight"`
	WorkloadScore   string   `json:"workload_score"`
	AssessmentScore string   `json:"assessment_score"`
	TotalScore      string   `json:"total_score"`
}

type ExcludedResponse struct {
	EmployeeID string `json:"employee_id"`
	Reason     string `json:"reason"`
}

type CandidatesResponse struct {
	Request     RequestResponse     `json:"request"`
	Fulfillment FulfillmentResponse `json:"fulfillment"`
	Candidates  []CandidateResponse `json:"candidates"`
	Excluded    []ExcludedResponse  `json:"excluded"`
}

type AssignResponse struct {
	Request   RequestResponse   `json:"request"`
	Schedules []ScheduleSummary `json:"schedules"`
}

type ClearResponse struct {
	Request RequestResponse `json:"request"`
	Cleared int64           `json:"cleared"`
}

type RecurringNeedResponse struct {
	ID                string `json:"id"`
	SubSectionID      string `json:"sub_section_id"`
	ShiftID           string `json:"shift_id"`
	RequestedAmount   int    `json:"requested_amount"`
	MaleCount         int    `json:"male_count"`
	FemaleCount       int    `json:"female_count"`
	AllowCrossSection bool   `json:"allow_cross_section"`
	RRule             string `json:"rrule"`
	StartDate         string `json:"start_date"`
	Active            bool   `json:"active"`
}

const (
	GeneratedCreated = "created"
	GeneratedSkipped = "skipped"
	GeneratedFailed  = "failed"
)

type GeneratedItem struct {
	RecurringNeedID string `json:"recurring_need_id"`
	Date            string `json:"date"`
	Status          string `json:"status"`
	RequestID       string `json:"request_id,omitempty"`
	Number          string `json:"number,omitempty"`
	Code            string `json:"code,omitempty"`
	Message         string `json:"message,omitempty"`
}

type GenerateReport struct {
	Created int             `json:"created"`
	Skipped int             `json:"skipped"`
	Failed  int             `json:"failed"`
	Items   []GeneratedItem `json:"items"`
}
