package employee

import (
	"context"
	"database/sql"
	"errors"

	employeeerrors "github.com/leavedesk/leavedesk-mcp/internal/employee/errors"

	"go.uber.org/zap"
)

type Service interface {
	GetByID(ctx context.Context, employeeID string) (EmployeeResponse, error)
	List(ctx context.Context, department string) ([]EmployeeResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetByID(ctx context.Context, employeeID string) (EmployeeResponse, error) {
	if employeeID == "" {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	e, err := s.repo.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.Warn("employee not found", zap.String("employee_id", employeeID))
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		s.logger.Error("employee lookup failed", zap.String("employee_id", employeeID), zap.Error(err))
		return EmployeeResponse{}, err
	}
	return mapToResponse(*e), nil
}

func (s *service) List(ctx context.Context, department string) ([]EmployeeResponse, error) {
	employees, err := s.repo.FindAll(ctx, department)
	if err != nil {
		s.logger.Error("employee list failed", zap.String("department", department), zap.Error(err))
		return nil, err
	}

	responses := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, mapToResponse(e))
	}
	return responses, nil
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID: e.ID,
		FullName:   e.FullName,
		Department: e.Department,
	}
}
