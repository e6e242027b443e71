package results

import "github.com/leavedesk/leavedesk-mcp/internal/leave"

// ApproveLeaveToolResult represents the result of the approve_leave tool
type ApproveLeaveToolResult struct {
	Message   string               `json:"message"`
	Arguments ApproveLeaveToolArgs `json:"arguments"`
	Request   *leave.LeaveResponse `json:"request,omitempty"`
}

// ApproveLeaveToolArgs represents the arguments for the approve_leave tool
type ApproveLeaveToolArgs struct {
	LeaveID   string `json:"leave_id"`
	DecidedBy string `json:"decided_by"`
}
