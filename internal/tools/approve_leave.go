package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/leavedesk/leavedesk-mcp/internal/leave"
	"github.com/leavedesk/leavedesk-mcp/internal/results"

	"github.com/mark3labs/mcp-go/mcp"
)

// ApproveLeaveTool handles approving pending leave requests
type ApproveLeaveTool struct {
	leaveService leave.Service
}

// NewApproveLeaveTool creates a new approve leave tool
func NewApproveLeaveTool(leaveService leave.Service) *ApproveLeaveTool {
	return &ApproveLeaveTool{
		leaveService: leaveService,
	}
}

// GetTool returns the MCP tool definition
func (t *ApproveLeaveTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolApproveLeave,
		mcp.WithDescription("Approve a pending leave request"),
		mcp.WithString("leave_id", mcp.Required(), mcp.Description("ID of the leave request to approve")),
		mcp.WithString("decided_by", mcp.Required(), mcp.Description("Identifier of the approver, e.g. a manager's employee ID")),
	)
}

// Handle processes the tool request
func (t *ApproveLeaveTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	leaveID := mcp.ParseString(req, "leave_id", "")
	if leaveID == "" {
		return mcp.NewToolResultError("leave_id parameter is required"), nil
	}
	decidedBy := mcp.ParseString(req, "decided_by", "")
	if decidedBy == "" {
		return mcp.NewToolResultError("decided_by parameter is required"), nil
	}

	updated, err := t.leaveService.Approve(ctx, leaveID, decidedBy)
	if err != nil {
		return mcp.NewToolResultError(errorMessage(err)), nil
	}

	toolResult := results.ApproveLeaveToolResult{
		Message: fmt.Sprintf("Leave request %s approved by %s.", updated.ID, decidedBy),
		Arguments: results.ApproveLeaveToolArgs{
			LeaveID:   leaveID,
			DecidedBy: decidedBy,
		},
		Request: &updated,
	}

	jsonBytes, err := json.MarshalIndent(toolResult, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal JSON: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonBytes)), nil
}
