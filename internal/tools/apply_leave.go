package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/leavedesk/leavedesk-mcp/internal/leave"
	"github.com/leavedesk/leavedesk-mcp/internal/results"

	"github.com/mark3labs/mcp-go/mcp"
)

// ApplyLeaveTool handles new leave applications
type ApplyLeaveTool struct {
	leaveService leave.Service
}

// NewApplyLeaveTool creates a new apply leave tool
func NewApplyLeaveTool(leaveService leave.Service) *ApplyLeaveTool {
	return &ApplyLeaveTool{
		leaveService: leaveService,
	}
}

// GetTool returns the MCP tool definition
func (t *ApplyLeaveTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolApplyLeave,
		mcp.WithDescription("Apply for leave on behalf of an employee. "+
			"Upon success the request is created in PENDING status and, for balance-tracked types, the days are reserved from the balance."),
		mcp.WithString("employee_id", mcp.Required(), mcp.Description("Employee ID, e.g. E001")),
		mcp.WithString("leave_type",
			mcp.Required(),
			mcp.Description("Type of leave being requested"),
			mcp.Enum(leave.TypeAnnual, leave.TypeSick, leave.TypeUnpaid),
		),
		mcp.WithString("start_date", mcp.Required(), mcp.Description("First day of leave in YYYY-MM-DD format")),
		mcp.WithString("end_date", mcp.Description("Last day of leave in YYYY-MM-DD format, inclusive; defaults to start_date for single-day leave")),
		mcp.WithString("reason", mcp.Description("Free-text reason for the leave")),
	)
}

// Handle processes the tool request
func (t *ApplyLeaveTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := results.ApplyLeaveToolArgs{
		EmployeeID: mcp.ParseString(req, "employee_id", ""),
		LeaveType:  mcp.ParseString(req, "leave_type", ""),
		StartDate:  mcp.ParseString(req, "start_date", ""),
		EndDate:    mcp.ParseString(req, "end_date", ""),
		Reason:     mcp.ParseString(req, "reason", ""),
	}
	if args.EndDate == "" {
		args.EndDate = args.StartDate
	}

	created, err := t.leaveService.Apply(ctx, leave.ApplyLeaveRequest{
		EmployeeID: args.EmployeeID,
		LeaveType:  args.LeaveType,
		StartDate:  args.StartDate,
		EndDate:    args.EndDate,
		Reason:     args.Reason,
	})
	if err != nil {
		return mcp.NewToolResultError(errorMessage(err)), nil
	}

	toolResult := results.ApplyLeaveToolResult{
		Message: fmt.Sprintf("Leave request %s submitted for %d days, awaiting approval.",
			created.ID, created.TotalDays),
		Arguments: args,
		Request:   &created,
	}

	jsonBytes, err := json.MarshalIndent(toolResult, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal JSON: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonBytes)), nil
}
