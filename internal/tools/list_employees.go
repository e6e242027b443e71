package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/leavedesk/leavedesk-mcp/internal/employee"
	"github.com/leavedesk/leavedesk-mcp/internal/results"

	"github.com/mark3labs/mcp-go/mcp"
)

// ListEmployeesTool handles employee directory listings
type ListEmployeesTool struct {
	employeeService employee.Service
}

// NewListEmployeesTool creates a new list employees tool
func NewListEmployeesTool(employeeService employee.Service) *ListEmployeesTool {
	return &ListEmployeesTool{
		employeeService: employeeService,
	}
}

// GetTool returns the MCP tool definition
func (t *ListEmployeesTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolListEmployees,
		mcp.WithDescription("List all employees, optionally filtered by department"),
		mcp.WithString("department", mcp.Description("Only include employees from this department")),
	)
}

// Handle processes the tool request
func (t *ListEmployeesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	department := mcp.ParseString(req, "department", "")

	employees, err := t.employeeService.List(ctx, department)
	if err != nil {
		return mcp.NewToolResultError(errorMessage(err)), nil
	}

	toolResult := results.ListEmployeesToolResult{
		Message: fmt.Sprintf("Found %d employees.", len(employees)),
		Arguments: results.ListEmployeesToolArgs{
			Department: department,
		},
		Count:     len(employees),
		Employees: employees,
	}

	jsonBytes, err := json.MarshalIndent(toolResult, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal JSON: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonBytes)), nil
}
