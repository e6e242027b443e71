package employee_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/leavedesk/leavedesk-mcp/internal/employee"
	employeeerrors "github.com/leavedesk/leavedesk-mcp/internal/employee/errors"

	"github.com/stretchr/testify/assert"
)

type fakeEmployeeRepository struct {
	findByIDFn func(ctx context.Context, employeeID string) (*employee.Employee, error)
	findAllFn  func(ctx context.Context, department string) ([]employee.Employee, error)
}

func (f *fakeEmployeeRepository) FindByID(ctx context.Context, employeeID string) (*employee.Employee, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, employeeID)
	}
	return nil, sql.ErrNoRows
}

func (f *fakeEmployeeRepository) FindAll(ctx context.Context, department string) ([]employee.Employee, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, department)
	}
	return nil, nil
}

func TestEmployeeService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := &fakeEmployeeRepository{
			findByIDFn: func(ctx context.Context, employeeID string) (*employee.Employee, error) {
				assert.Equal(t, "E001", employeeID)
				return &employee.Employee{
					ID:         "E001",
					FullName:   "Alice Johnson",
					Department: "Engineering",
					CreatedAt:  time.Now().UTC(),
				}, nil
			},
		}
		svc := employee.NewService(repo)

		resp, err := svc.GetByID(ctx, "E001")

		assert.NoError(t, err)
		assert.Equal(t, "E001", resp.EmployeeID)
		assert.Equal(t, "Alice Johnson", resp.FullName)
		assert.Equal(t, "Engineering", resp.Department)
	})

	t.Run("negative empty id", func(t *testing.T) {
		svc := employee.NewService(&fakeEmployeeRepository{})

		_, err := svc.GetByID(ctx, "")

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
	})

	t.Run("negative not found", func(t *testing.T) {
		svc := employee.NewService(&fakeEmployeeRepository{})

		_, err := svc.GetByID(ctx, "E404")

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("negative repo error", func(t *testing.T) {
		repo := &fakeEmployeeRepository{
			findByIDFn: func(ctx context.Context, employeeID string) (*employee.Employee, error) {
				return nil, errors.New("db error")
			},
		}
		svc := employee.NewService(repo)

		_, err := svc.GetByID(ctx, "E001")

		assert.Error(t, err)
		assert.NotErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := &fakeEmployeeRepository{
			findAllFn: func(ctx context.Context, department string) ([]employee.Employee, error) {
				assert.Equal(t, "Product", department)
				return []employee.Employee{
					{ID: "E002", FullName: "Priya Sharma", Department: "Product"},
				}, nil
			},
		}
		svc := employee.NewService(repo)

		resp, err := svc.List(ctx, "Product")

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "E002", resp[0].EmployeeID)
	})

	t.Run("success empty result", func(t *testing.T) {
		repo := &fakeEmployeeRepository{
			findAllFn: func(ctx context.Context, department string) ([]employee.Employee, error) {
				return []employee.Employee{}, nil
			},
		}
		svc := employee.NewService(repo)

		resp, err := svc.List(ctx, "Legal")

		assert.NoError(t, err)
		assert.Empty(t, resp)
	})

	t.Run("negative repo error", func(t *testing.T) {
		repo := &fakeEmployeeRepository{
			findAllFn: func(ctx context.Context, department string) ([]employee.Employee, error) {
				return nil, errors.New("db error")
			},
		}
		svc := employee.NewService(repo)

		_, err := svc.List(ctx, "")

		assert.Error(t, err)
	})
}
