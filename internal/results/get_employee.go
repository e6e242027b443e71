package results

import (
	"github.com/leavedesk/leavedesk-mcp/internal/employee"
	"github.com/leavedesk/leavedesk-mcp/internal/leave"
)

// GetEmployeeToolResult represents the result of the get_employee tool
type GetEmployeeToolResult struct {
	Message   string                     `json:"message"`
	Arguments GetEmployeeToolArgs        `json:"arguments"`
	Employee  *employee.EmployeeResponse `json:"employee,omitempty"`
	Balances  []leave.BalanceResponse    `json:"balances,omitempty"`
}

// GetEmployeeToolArgs represents the arguments for the get_employee tool
type GetEmployeeToolArgs struct {
	EmployeeID string `json:"employee_id"`
}
