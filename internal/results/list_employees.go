package results

import "github.com/leavedesk/leavedesk-mcp/internal/employee"

// ListEmployeesToolResult represents the result of the list_employees tool
type ListEmployeesToolResult struct {
	Message   string                      `json:"message"`
	Arguments ListEmployeesToolArgs       `json:"arguments"`
	Count     int                         `json:"count"`
	Employees []employee.EmployeeResponse `json:"employees,omitempty"`
}

// ListEmployeesToolArgs represents the arguments for the list_employees tool
type ListEmployeesToolArgs struct {
	Department string `json:"department,omitempty"`
}
