package leave

type ApplyLeaveRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	LeaveType  string `json:"leave_type" validate:"required,oneof=ANNUAL SICK UNPAID"`
	StartDate  string `json:"start_date" validate:"required"`
	EndDate    string `json:"end_date" validate:"required"`
	Reason     string `json:"reason"`
}

type LeaveResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	LeaveType    string  `json:"leave_type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	TotalDays    int     `json:"total_days"`
	Reason       string  `json:"reason,omitempty"`
	Status       string  `json:"status"`
	DecidedBy    *string `json:"decided_by,omitempty"`
	DecidedAt    *string `json:"decided_at,omitempty"`
	DecisionNote *string `json:"decision_note,omitempty"`
}

type BalanceResponse struct {
	LeaveType   string `json:"leave_type"`
	BalanceDays int    `json:"balance_days"`
}
