package domain

// Resources guarded by RBACAuthorize. Each one maps to a row group in the
// permissions table.
const (
	ResourceManpowerRequest = "manpower_request"
	ResourceRecurringNeed   = "recurring_need"
	ResourceSchedule        = "schedule"
	ResourceScheduleChange  = "schedule_change"
	ResourceEmployee        = "employee"
	ResourceOrganization    = "organization"
	ResourceLeave           = "leave"
	ResourceAttendance      = "attendance"
	ResourceAssessment      = "assessment"
	ResourceRole            = "role"
)

const (
	ActionRead    = "read"
	ActionCreate  = "create"
	ActionUpdate  = "update"
	ActionDelete  = "delete"
	ActionApprove = "approve"
	ActionAssign  = "assign"
	ActionBulk    = "bulk"
	ActionRecord  = "record"
	ActionTake    = "take"
)

type Permission struct {
	Resource string
	Action   string
}

// Permissions is every pair a role can be granted.
var Permissions = []Permission{
	{ResourceManpowerRequest, ActionRead},
	{ResourceManpowerRequest, ActionCreate},
	{ResourceManpowerRequest, ActionDelete},
	{ResourceManpowerRequest, ActionAssign},
	{ResourceManpowerRequest, ActionApprove},
	{ResourceRecurringNeed, ActionRead},
	{ResourceRecurringNeed, ActionCreate},
	{ResourceSchedule, ActionRead},
	{ResourceSchedule, ActionUpdate},
	{ResourceScheduleChange, ActionRead},
	{ResourceScheduleChange, ActionApprove},
	{ResourceEmployee, ActionRead},
	{ResourceEmployee, ActionCreate},
	{ResourceEmployee, ActionUpdate},
	{ResourceEmployee, ActionBulk},
	{ResourceOrganization, ActionRead},
	{ResourceOrganization, ActionCreate},
	{ResourceLeave, ActionRead},
	{ResourceLeave, ActionCreate},
	{ResourceLeave, ActionApprove},
	{ResourceAttendance, ActionRead},
	{ResourceAttendance, ActionCreate},
	{ResourceAttendance, ActionRecord},
	{ResourceAssessment, ActionRead},
	{ResourceAssessment, ActionCreate},
	{ResourceAssessment, ActionTake},
	{ResourceRole, ActionRead},
}

type EnforceRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	CompanyID  string `json:"company_id"`
	Resource   string `json:"resource" binding:"required"`
	Action     string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

type RoleResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
}
