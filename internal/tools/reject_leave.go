package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/leavedesk/leavedesk-mcp/internal/leave"
	"github.com/leavedesk/leavedesk-mcp/internal/results"

	"github.com/mark3labs/mcp-go/mcp"
)

// RejectLeaveTool handles rejecting pending leave requests
type RejectLeaveTool struct {
	leaveService leave.Service
}

// NewRejectLeaveTool creates a new reject leave tool
func NewRejectLeaveTool(leaveService leave.Service) *RejectLeaveTool {
	return &RejectLeaveTool{
		leaveService: leaveService,
	}
}

// GetTool returns the MCP tool definition
func (t *RejectLeaveTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolRejectLeave,
		mcp.WithDescription("Reject a pending leave request. Reserved days are returned to the employee's balance."),
		mcp.WithString("leave_id", mcp.Required(), mcp.Description("ID of the leave request to reject")),
		mcp.WithString("decided_by", mcp.Required(), mcp.Description("Identifier of the approver, e.g. a manager's employee ID")),
		mcp.WithString("note", mcp.Required(), mcp.Description("Reason for the rejection, shown to the employee")),
	)
}

// Handle processes the tool request
func (t *RejectLeaveTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	leaveID := mcp.ParseString(req, "leave_id", "")
	if leaveID == "" {
		return mcp.NewToolResultError("leave_id parameter is required"), nil
	}
	decidedBy := mcp.ParseString(req, "decided_by", "")
	if decidedBy == "" {
		return mcp.NewToolResultError("decided_by parameter is required"), nil
	}
	note := mcp.ParseString(req, "note", "")

	updated, err := t.leaveService.Reject(ctx, leaveID, decidedBy, note)
	if err != nil {
		return mcp.NewToolResultError(errorMessage(err)), nil
	}

	toolResult := results.RejectLeaveToolResult{
		Message: fmt.Sprintf("Leave request %s rejected by %s.", updated.ID, decidedBy),
		Arguments: results.RejectLeaveToolArgs{
			LeaveID:   leaveID,
			DecidedBy: decidedBy,
			Note:      note,
		},
		Request: &updated,
	}

	jsonBytes, err := json.MarshalIndent(toolResult, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal JSON: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonBytes)), nil
}
