package results

import "github.com/leavedesk/leavedesk-mcp/internal/leave"

// GetLeaveHistoryToolResult represents the result of the get_leave_history tool
type GetLeaveHistoryToolResult struct {
	Message   string                  `json:"message"`
	Arguments GetLeaveHistoryToolArgs `json:"arguments"`
	Count     int                     `json:"count"`
	Requests  []leave.LeaveResponse   `json:"requests,omitempty"`
}

// GetLeaveHistoryToolArgs represents the arguments for the get_leave_history tool
type GetLeaveHistoryToolArgs struct {
	EmployeeID string `json:"employee_id"`
	Status     string `json:"status,omitempty"`
}
