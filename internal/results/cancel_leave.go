package results

import "github.com/leavedesk/leavedesk-mcp/internal/leave"

// CancelLeaveToolResult represents the result of the cancel_leave tool
type CancelLeaveToolResult struct {
	Message   string               `json:"message"`
	Arguments CancelLeaveToolArgs  `json:"arguments"`
	Request   *leave.LeaveResponse `json:"request,omitempty"`
}

// CancelLeaveToolArgs represents the arguments for the cancel_leave tool
type CancelLeaveToolArgs struct {
	LeaveID string `json:"leave_id"`
}
