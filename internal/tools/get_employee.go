package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/leavedesk/leavedesk-mcp/internal/employee"
	"github.com/leavedesk/leavedesk-mcp/internal/leave"
	"github.com/leavedesk/leavedesk-mcp/internal/results"

	"github.com/mark3labs/mcp-go/mcp"
)

// GetEmployeeTool handles single-employee lookups
type GetEmployeeTool struct {
	employeeService employee.Service
	leaveService    leave.Service
}

// NewGetEmployeeTool creates a new get employee tool
func NewGetEmployeeTool(employeeService employee.Service, leaveService leave.Service) *GetEmployeeTool {
	return &GetEmployeeTool{
		employeeService: employeeService,
		leaveService:    leaveService,
	}
}

// GetTool returns the MCP tool definition
func (t *GetEmployeeTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolGetEmployee,
		mcp.WithDescription("Get an employee's profile and remaining leave balances by their employee ID"),
		mcp.WithString("employee_id", mcp.Required(), mcp.Description("Employee ID, e.g. E001")),
	)
}

// Handle processes the tool request
func (t *GetEmployeeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	employeeID := mcp.ParseString(req, "employee_id", "")
	if employeeID == "" {
		return mcp.NewToolResultError("employee_id parameter is required"), nil
	}

	found, err := t.employeeService.GetByID(ctx, employeeID)
	if err != nil {
		return mcp.NewToolResultError(errorMessage(err)), nil
	}

	balances, err := t.leaveService.Balances(ctx, employeeID, "")
	if err != nil {
		return mcp.NewToolResultError(errorMessage(err)), nil
	}

	toolResult := results.GetEmployeeToolResult{
		Message: fmt.Sprintf("Found employee %s.", found.EmployeeID),
		Arguments: results.GetEmployeeToolArgs{
			EmployeeID: employeeID,
		},
		Employee: &found,
		Balances: balances,
	}

	jsonBytes, err := json.MarshalIndent(toolResult, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal JSON: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonBytes)), nil
}
