package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/leavedesk/leavedesk-mcp/internal/leave"
	"github.com/leavedesk/leavedesk-mcp/internal/results"

	"github.com/mark3labs/mcp-go/mcp"
)

// CancelLeaveTool handles cancelling pending or approved leave requests
type CancelLeaveTool struct {
	leaveService leave.Service
}

// NewCancelLeaveTool creates a new cancel leave tool
func NewCancelLeaveTool(leaveService leave.Service) *CancelLeaveTool {
	return &CancelLeaveTool{
		leaveService: leaveService,
	}
}

// GetTool returns the MCP tool definition
func (t *CancelLeaveTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolCancelLeave,
		mcp.WithDescription("Cancel a pending or approved leave request. Reserved days are returned to the employee's balance."),
		mcp.WithString("leave_id", mcp.Required(), mcp.Description("ID of the leave request to cancel")),
	)
}

// Handle processes the tool request
func (t *CancelLeaveTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	leaveID := mcp.ParseString(req, "leave_id", "")
	if leaveID == "" {
		return mcp.NewToolResultError("leave_id parameter is required"), nil
	}

	updated, err := t.leaveService.Cancel(ctx, leaveID)
	if err != nil {
		return mcp.NewToolResultError(errorMessage(err)), nil
	}

	toolResult := results.CancelLeaveToolResult{
		Message: fmt.Sprintf("Leave request %s cancelled.", updated.ID),
		Arguments: results.CancelLeaveToolArgs{
			LeaveID: leaveID,
		},
		Request: &updated,
	}

	jsonBytes, err := json.MarshalIndent(toolResult, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal JSON: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonBytes)), nil
}
