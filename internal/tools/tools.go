package tools

import (
	"errors"
	"fmt"

	"github.com/leavedesk/leavedesk-mcp/internal/apperror"
)

// Tool names
const (
	ToolGetLeaveBalance   = "get_leave_balance"
	ToolApplyLeave        = "apply_leave"
	ToolGetLeaveHistory   = "get_leave_history"
	ToolListLeaveRequests = "list_leave_requests"
	ToolApproveLeave      = "approve_leave"
	ToolRejectLeave       = "reject_leave"
	ToolCancelLeave       = "cancel_leave"
	ToolGetEmployee       = "get_employee"
	ToolListEmployees     = "list_employees"
)

// errorMessage renders an error for a tool error result. Domain errors keep
// their machine-readable code so a client can branch on it.
func errorMessage(err error) string {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return fmt.Sprintf("%s: %s", appErr.Code, appErr.Message)
	}
	return err.Error()
}
