package leaveerrors

import (
	"github.com/leavedesk/leavedesk-mcp/internal/apperror"
)

var (
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal end_date",
	)
	ErrDateInPast = apperror.New(
		apperror.CodeInvalidInput,
		"cannot apply for leave starting in the past",
	)
	ErrLeaveOverlap = apperror.New(
		apperror.CodeConflict,
		"leave already exists in overlapping period",
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"invalid leave status transition",
	)
	ErrInsufficientBalance = apperror.New(
		apperror.CodeInsufficientBalance,
		"not enough leave balance for the requested period",
	)
	ErrBalanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"no leave balance recorded for this employee and leave type",
	)
	ErrDecidedByRequired = apperror.New(
		apperror.CodeInvalidInput,
		"decided_by is required",
	)
	ErrDecisionNoteRequired = apperror.New(
		apperror.CodeInvalidInput,
		"note is required when rejecting a leave request",
	)
)
