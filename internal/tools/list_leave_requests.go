package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/leavedesk/leavedesk-mcp/internal/leave"
	"github.com/leavedesk/leavedesk-mcp/internal/results"

	"github.com/mark3labs/mcp-go/mcp"
)

// ListLeaveRequestsTool handles the approval-queue view across employees
type ListLeaveRequestsTool struct {
	leaveService leave.Service
}

// NewListLeaveRequestsTool creates a new list leave requests tool
func NewListLeaveRequestsTool(leaveService leave.Service) *ListLeaveRequestsTool {
	return &ListLeaveRequestsTool{
		leaveService: leaveService,
	}
}

// GetTool returns the MCP tool definition
func (t *ListLeaveRequestsTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolListLeaveRequests,
		mcp.WithDescription("List leave requests across all employees in one status, oldest start date first. "+
			"Defaults to PENDING, the queue an approver needs to work through."),
		mcp.WithString("status",
			mcp.Description("Status to list; defaults to PENDING"),
			mcp.Enum(leave.StatusPending, leave.StatusApproved, leave.StatusRejected, leave.StatusCancelled),
		),
		mcp.WithString("department", mcp.Description("Only include employees from this department")),
	)
}

// Handle processes the tool request
func (t *ListLeaveRequestsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	status := mcp.ParseString(req, "status", "")
	department := mcp.ParseString(req, "department", "")

	requests, err := t.leaveService.ListRequests(ctx, status, department)
	if err != nil {
		return mcp.NewToolResultError(errorMessage(err)), nil
	}

	shownStatus := status
	if shownStatus == "" {
		shownStatus = leave.StatusPending
	}
	toolResult := results.ListLeaveRequestsToolResult{
		Arguments: results.ListLeaveRequestsToolArgs{
			Status:     status,
			Department: department,
		},
		Count:    len(requests),
		Requests: requests,
	}
	if len(requests) == 0 {
		toolResult.Message = fmt.Sprintf("No %s leave requests found.", shownStatus)
	} else {
		toolResult.Message = fmt.Sprintf("Found %d %s leave requests.", len(requests), shownStatus)
	}

	jsonBytes, err := json.MarshalIndent(toolResult, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal JSON: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonBytes)), nil
}
