package results

import "github.com/leavedesk/leavedesk-mcp/internal/leave"

// ListLeaveRequestsToolResult represents the result of the list_leave_requests tool
type ListLeaveRequestsToolResult struct {
	Message   string                    `json:"message"`
	Arguments ListLeaveRequestsToolArgs `json:"arguments"`
	Count     int                       `json:"count"`
	Requests  []leave.LeaveResponse     `json:"requests,omitempty"`
}

// ListLeaveRequestsToolArgs represents the arguments for the list_leave_requests tool
type ListLeaveRequestsToolArgs struct {
	Status     string `json:"status,omitempty"`
	Department string `json:"department,omitempty"`
}
