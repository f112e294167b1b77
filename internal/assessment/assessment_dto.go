package assessment

type RecordBlindTestRequest struct {
	EmployeeID string   `json:"employee_id" binding:"required,uuid"`
	Points     *float64 `json:"points" binding:"required"`
	TestedAt   string   `json:"tested_at"`
}

type RecordRatingRequest struct {
	EmployeeID string   `json:"employee_id" binding:"required,uuid"`
	Score      *float64 `json:"score" binding:"required"`
	Comment    string   `json:"comment"`
}

type AssignTestRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	TestName   string `json:"test_name" binding:"required,max=120"`
	DueDate    string `json:"due_date"`
}

type CompleteTestRequest struct {
	Points *float64 `json:"points" binding:"required"`
}

type BlindTestResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Points     float64 `json:"points"`
	TestedAt   string  `json:"tested_at"`
}

type RatingResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Score      float64 `json:"score"`
	Comment    string  `json:"comment,omitempty"`
	RatedAt    string  `json:"rated_at"`
}

type TestAssignmentResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	TestName     string  `json:"test_name"`
	Status       string  `json:"status"`
	AttemptCount int     `json:"attempt_count"`
	DueDate      *string `json:"due_date,omitempty"`
	Overdue      bool    `json:"overdue"`
	ResultID     *string `json:"result_id,omitempty"`
}

type SummaryResponse struct {
	EmployeeID      string             `json:"employee_id"`
	LatestBlindTest *BlindTestResponse `json:"latest_blind_test,omitempty"`
	LatestRating    *RatingResponse    `json:"latest_rating,omitempty"`
	Score           float64            `json:"score"`
}
