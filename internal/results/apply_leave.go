package results

import "github.com/leavedesk/leavedesk-mcp/internal/leave"

// ApplyLeaveToolResult represents the result of the apply_leave tool
type ApplyLeaveToolResult struct {
	Message   string               `json:"message"`
	Arguments ApplyLeaveToolArgs   `json:"arguments"`
	Request   *leave.LeaveResponse `json:"request,omitempty"`
}

// ApplyLeaveToolArgs represents the arguments for the apply_leave tool
type ApplyLeaveToolArgs struct {
	EmployeeID string `json:"employee_id"`
	LeaveType  string `json:"leave_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason,omitempty"`
}
