package results

import "github.com/leavedesk/leavedesk-mcp/internal/leave"

// GetLeaveBalanceToolResult represents the result of the get_leave_balance tool
type GetLeaveBalanceToolResult struct {
	Message   string                  `json:"message"`
	Arguments GetLeaveBalanceToolArgs `json:"arguments"`
	Balances  []leave.BalanceResponse `json:"balances,omitempty"`
}

// GetLeaveBalanceToolArgs represents the arguments for the get_leave_balance tool
type GetLeaveBalanceToolArgs struct {
	EmployeeID string `json:"employee_id"`
	LeaveType  string `json:"leave_type,omitempty"`
}
