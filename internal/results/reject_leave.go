package results

import "github.com/leavedesk/leavedesk-mcp/internal/leave"

// RejectLeaveToolResult represents the result of the reject_leave tool
type RejectLeaveToolResult struct {
	Message   string               `json:"message"`
	Arguments RejectLeaveToolArgs  `json:"arguments"`
	Request   *leave.LeaveResponse `json:"request,omitempty"`
}

// RejectLeaveToolArgs represents the arguments for the reject_leave tool
type RejectLeaveToolArgs struct {
	LeaveID   string `json:"leave_id"`
	DecidedBy string `json:"decided_by"`
	Note      string `json:"note"`
}
