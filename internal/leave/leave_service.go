package leave

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/leavedesk/leavedesk-mcp/internal/apperror"
	employeeerrors "github.com/leavedesk/leavedesk-mcp/internal/employee/errors"
	leaveerrors "github.com/leavedesk/leavedesk-mcp/internal/leave/errors"
	"github.com/leavedesk/leavedesk-mcp/internal/store"
	"github.com/leavedesk/leavedesk-mcp/internal/util"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Apply(ctx context.Context, req ApplyLeaveRequest) (LeaveResponse, error)
	History(ctx context.Context, employeeID, status string) ([]LeaveResponse, error)
	ListRequests(ctx context.Context, status, department string) ([]LeaveResponse, error)
	Approve(ctx context.Context, id, decidedBy string) (LeaveResponse, error)
	Reject(ctx context.Context, id, decidedBy, note string) (LeaveResponse, error)
	Cancel(ctx context.Context, id string) (LeaveResponse, error)
	Balances(ctx context.Context, employeeID, leaveType string) ([]BalanceResponse, error)
}

type service struct {
	store    *store.Store
	repo     Repository
	clock    util.Clock
	validate *validator.Validate
	logger   *zap.Logger
}

func NewService(st *store.Store, repo Repository, clock util.Clock, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	if clock == nil {
		clock = &util.DefaultClock{}
	}
	return &service{
		store:    st,
		repo:     repo,
		clock:    clock,
		validate: apperror.NewValidator(),
		logger:   l,
	}
}

// Apply validates and persists a new leave request. The request row and the
// balance deduction land in one transaction, so a failed application leaves
// nothing behind.
func (s *service) Apply(ctx context.Context, req ApplyLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("apply leave requested",
		zap.String("employee_id", req.EmployeeID),
		zap.String("leave_type", req.LeaveType),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	if err := s.validate.Struct(req); err != nil {
		mapped := apperror.MapValidationError(err)
		s.logger.Warn("apply leave validation failed", zap.Error(mapped))
		return LeaveResponse{}, mapped
	}

	var l *Leave
	err := s.store.WriteTx(ctx, func(tx *sql.Tx) error {
		qtx := s.repo.WithTx(tx)

		exists, err := qtx.EmployeeExists(ctx, req.EmployeeID)
		if err != nil {
			return err
		}
		if !exists {
			return employeeerrors.ErrEmployeeNotFound
		}

		startDate, endDate, err := parseDateRange(req.StartDate, req.EndDate)
		if err != nil {
			return err
		}
		today := truncateToDay(s.clock.Now().UTC())
		if startDate.Before(today) {
			return leaveerrors.ErrDateInPast
		}

		overlap, err := qtx.HasOverlappingPeriod(ctx, req.EmployeeID, startDate, endDate, nil)
		if err != nil {
			return err
		}
		if overlap {
			return leaveerrors.ErrLeaveOverlap
		}

		totalDays := int(endDate.Sub(startDate).Hours()/24) + 1
		if BalanceTracked(req.LeaveType) {
			deducted, err := qtx.DeductBalance(ctx, req.EmployeeID, req.LeaveType, totalDays)
			if err != nil {
				return err
			}
			if !deducted {
				return leaveerrors.ErrInsufficientBalance
			}
		}

		now := s.clock.Now().UTC()
		l = &Leave{
			ID:         uuid.NewString(),
			EmployeeID: req.EmployeeID,
			LeaveType:  req.LeaveType,
			StartDate:  startDate,
			EndDate:    endDate,
			TotalDays:  totalDays,
			Reason:     req.Reason,
			Status:     StatusPending,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		return qtx.Create(ctx, l)
	})
	if err != nil {
		s.logRejection("apply leave", err,
			zap.String("employee_id", req.EmployeeID),
			zap.String("leave_type", req.LeaveType),
		)
		return LeaveResponse{}, err
	}

	s.logger.Info("apply leave success",
		zap.String("leave_id", l.ID),
		zap.String("employee_id", l.EmployeeID),
		zap.Int("total_days", l.TotalDays),
	)
	return mapToResponse(*l), nil
}

func (s *service) History(ctx context.Context, employeeID, status string) ([]LeaveResponse, error) {
	if status != "" && !IsValidStatus(status) {
		return nil, apperror.InvalidField("status")
	}

	exists, err := s.repo.EmployeeExists(ctx, employeeID)
	if err != nil {
		s.logger.Error("history employee check failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}
	if !exists {
		return nil, employeeerrors.ErrEmployeeNotFound
	}

	leaves, err := s.repo.FindAllByEmployee(ctx, employeeID, status)
	if err != nil {
		s.logger.Error("history query failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

// ListRequests is the approval-queue view. An empty status defaults to
// PENDING, the set an approver needs to act on.
func (s *service) ListRequests(ctx context.Context, status, department string) ([]LeaveResponse, error) {
	if status == "" {
		status = StatusPending
	}
	if !IsValidStatus(status) {
		return nil, apperror.InvalidField("status")
	}

	leaves, err := s.repo.FindAllByStatus(ctx, status, department)
	if err != nil {
		s.logger.Error("list requests query failed", zap.String("status", status), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) Approve(ctx context.Context, id, decidedBy string) (LeaveResponse, error) {
	return s.transitionStatus(ctx, id, StatusApproved, decidedBy, "")
}

func (s *service) Reject(ctx context.Context, id, decidedBy, note string) (LeaveResponse, error) {
	return s.transitionStatus(ctx, id, StatusRejected, decidedBy, note)
}

func (s *service) Cancel(ctx context.Context, id string) (LeaveResponse, error) {
	return s.transitionStatus(ctx, id, StatusCancelled, "", "")
}

func (s *service) transitionStatus(ctx context.Context, id, targetStatus, decidedBy, note string) (LeaveResponse, error) {
	s.logger.Debug("transition leave status requested",
		zap.String("leave_id", id),
		zap.String("target_status", targetStatus),
	)

	if targetStatus != StatusCancelled && decidedBy == "" {
		return LeaveResponse{}, leaveerrors.ErrDecidedByRequired
	}
	if targetStatus == StatusRejected && note == "" {
		return LeaveResponse{}, leaveerrors.ErrDecisionNoteRequired
	}

	var l *Leave
	err := s.store.WriteTx(ctx, func(tx *sql.Tx) error {
		qtx := s.repo.WithTx(tx)

		found, err := qtx.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return leaveerrors.ErrLeaveNotFound
			}
			return err
		}
		l = found

		if !isAllowedStatusTransition(l.Status, targetStatus) {
			return leaveerrors.ErrInvalidStatusTransition
		}

		now := s.clock.Now().UTC()
		l.Status = targetStatus
		l.UpdatedAt = now
		switch targetStatus {
		case StatusApproved:
			l.DecidedBy = &decidedBy
			l.DecidedAt = &now
			l.DecisionNote = nil
		case StatusRejected:
			l.DecidedBy = &decidedBy
			l.DecidedAt = &now
			l.DecisionNote = &note
		}
		// CANCELLED keeps any earlier decision fields; cancelling an
		// approved request should not erase who approved it.

		if err := qtx.Update(ctx, l); err != nil {
			return err
		}

		// Days were reserved at apply time, so a request leaving the
		// active set hands them back.
		if BalanceTracked(l.LeaveType) &&
			(targetStatus == StatusRejected || targetStatus == StatusCancelled) {
			return qtx.RefundBalance(ctx, l.EmployeeID, l.LeaveType, l.TotalDays)
		}
		return nil
	})
	if err != nil {
		s.logRejection("transition leave status", err,
			zap.String("leave_id", id),
			zap.String("target_status", targetStatus),
		)
		return LeaveResponse{}, err
	}

	s.logger.Info("transition leave status success",
		zap.String("leave_id", id),
		zap.String("status", targetStatus),
	)
	return mapToResponse(*l), nil
}

func (s *service) Balances(ctx context.Context, employeeID, leaveType string) ([]BalanceResponse, error) {
	if leaveType != "" && !IsValidType(leaveType) {
		return nil, apperror.InvalidField("leave_type")
	}

	exists, err := s.repo.EmployeeExists(ctx, employeeID)
	if err != nil {
		s.logger.Error("balance employee check failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}
	if !exists {
		return nil, employeeerrors.ErrEmployeeNotFound
	}

	if leaveType != "" {
		b, err := s.repo.GetBalance(ctx, employeeID, leaveType)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, leaveerrors.ErrBalanceNotFound
			}
			s.logger.Error("balance query failed", zap.String("employee_id", employeeID), zap.Error(err))
			return nil, err
		}
		return []BalanceResponse{{LeaveType: b.LeaveType, BalanceDays: b.BalanceDays}}, nil
	}

	balances, err := s.repo.ListBalances(ctx, employeeID)
	if err != nil {
		s.logger.Error("balance list failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}

	responses := make([]BalanceResponse, 0, len(balances))
	for _, b := range balances {
		responses = append(responses, BalanceResponse{LeaveType: b.LeaveType, BalanceDays: b.BalanceDays})
	}
	return responses, nil
}

// logRejection logs domain rejections at Warn and infrastructure failures
// at Error.
func (s *service) logRejection(op string, err error, fields ...zap.Field) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		s.logger.Warn(op+" rejected", append(fields, zap.String("code", appErr.Code), zap.Error(err))...)
		return
	}
	s.logger.Error(op+" failed", append(fields, zap.Error(err))...)
}

func isAllowedStatusTransition(currentStatus, targetStatus string) bool {
	switch currentStatus {
	case StatusPending:
		return targetStatus == StatusApproved ||
			targetStatus == StatusRejected ||
			targetStatus == StatusCancelled
	case StatusApproved:
		return targetStatus == StatusCancelled
	default:
		return false
	}
}

func parseDateRange(start, end string) (time.Time, time.Time, error) {
	startDate, err := parseDate(start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endDate, err := parseDate(end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if startDate.After(endDate) {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateRange
	}
	return startDate, endDate, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func mapToResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:         l.ID,
		EmployeeID: l.EmployeeID,
		LeaveType:  l.LeaveType,
		StartDate:  l.StartDate.Format(dateLayout),
		EndDate:    l.EndDate.Format(dateLayout),
		TotalDays:  l.TotalDays,
		Reason:     l.Reason,
		Status:     l.Status,
	}
	resp.DecidedBy = l.DecidedBy
	if l.DecidedAt != nil {
		v := l.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &v
	}
	resp.DecisionNote = l.DecisionNote
	return resp
}

func mapToListResponse(leaves []Leave) []LeaveResponse {
	responses := make([]LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		responses = append(responses, mapToResponse(l))
	}
	return responses
}
