package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/leavedesk/leavedesk-mcp/internal/leave"
	"github.com/leavedesk/leavedesk-mcp/internal/results"

	"github.com/mark3labs/mcp-go/mcp"
)

// GetLeaveBalanceTool handles leave balance lookups
type GetLeaveBalanceTool struct {
	leaveService leave.Service
}

// NewGetLeaveBalanceTool creates a new get leave balance tool
func NewGetLeaveBalanceTool(leaveService leave.Service) *GetLeaveBalanceTool {
	return &GetLeaveBalanceTool{
		leaveService: leaveService,
	}
}

// GetTool returns the MCP tool definition
func (t *GetLeaveBalanceTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolGetLeaveBalance,
		mcp.WithDescription("Get the remaining leave balance for an employee, in days, optionally narrowed to one leave type"),
		mcp.WithString("employee_id", mcp.Required(), mcp.Description("Employee ID, e.g. E001")),
		mcp.WithString("leave_type",
			mcp.Description("Leave type to look up; omit to list every tracked type"),
			mcp.Enum(leave.TypeAnnual, leave.TypeSick, leave.TypeUnpaid),
		),
	)
}

// Handle processes the tool request
func (t *GetLeaveBalanceTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	employeeID := mcp.ParseString(req, "employee_id", "")
	if employeeID == "" {
		return mcp.NewToolResultError("employee_id parameter is required"), nil
	}
	leaveType := mcp.ParseString(req, "leave_type", "")

	balances, err := t.leaveService.Balances(ctx, employeeID, leaveType)
	if err != nil {
		return mcp.NewToolResultError(errorMessage(err)), nil
	}

	toolResult := results.GetLeaveBalanceToolResult{
		Message: fmt.Sprintf("Found %d leave balances for employee %s.", len(balances), employeeID),
		Arguments: results.GetLeaveBalanceToolArgs{
			EmployeeID: employeeID,
			LeaveType:  leaveType,
		},
		Balances: balances,
	}

	jsonBytes, err := json.MarshalIndent(toolResult, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal JSON: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonBytes)), nil
}
