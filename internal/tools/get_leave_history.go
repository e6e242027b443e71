package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/leavedesk/leavedesk-mcp/internal/leave"
	"github.com/leavedesk/leavedesk-mcp/internal/results"

	"github.com/mark3labs/mcp-go/mcp"
)

// GetLeaveHistoryTool handles leave history lookups for a single employee
type GetLeaveHistoryTool struct {
	leaveService leave.Service
}

// NewGetLeaveHistoryTool creates a new get leave history tool
func NewGetLeaveHistoryTool(leaveService leave.Service) *GetLeaveHistoryTool {
	return &GetLeaveHistoryTool{
		leaveService: leaveService,
	}
}

// GetTool returns the MCP tool definition
func (t *GetLeaveHistoryTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolGetLeaveHistory,
		mcp.WithDescription("Get the leave request history for an employee, newest first, optionally filtered by status"),
		mcp.WithString("employee_id", mcp.Required(), mcp.Description("Employee ID, e.g. E001")),
		mcp.WithString("status",
			mcp.Description("Only return requests in this status; omit for the full history"),
			mcp.Enum(leave.StatusPending, leave.StatusApproved, leave.StatusRejected, leave.StatusCancelled),
		),
	)
}

// Handle processes the tool request
func (t *GetLeaveHistoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	employeeID := mcp.ParseString(req, "employee_id", "")
	if employeeID == "" {
		return mcp.NewToolResultError("employee_id parameter is required"), nil
	}
	status := mcp.ParseString(req, "status", "")

	requests, err := t.leaveService.History(ctx, employeeID, status)
	if err != nil {
		return mcp.NewToolResultError(errorMessage(err)), nil
	}

	toolResult := results.GetLeaveHistoryToolResult{
		Arguments: results.GetLeaveHistoryToolArgs{
			EmployeeID: employeeID,
			Status:     status,
		},
		Count:    len(requests),
		Requests: requests,
	}
	if len(requests) == 0 {
		toolResult.Message = "No leave requests found. " +
			"The employee may not have applied for leave yet, or the status filter may be too narrow."
	} else {
		toolResult.Message = fmt.Sprintf("Found %d leave requests for employee %s.", len(requests), employeeID)
	}

	jsonBytes, err := json.MarshalIndent(toolResult, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal JSON: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonBytes)), nil
}
