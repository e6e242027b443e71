package employee

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
)

var employeeTable = goqu.T("employees")

type Repository interface {
	FindByID(ctx context.Context, employeeID string) (*Employee, error)
	FindAll(ctx context.Context, department string) ([]Employee, error)
}

type employeeRow struct {
	EmployeeID string `db:"employee_id"`
	FullName   string `db:"full_name"`
	Department string `db:"department"`
	CreatedAt  string `db:"created_at"`
}

func (row employeeRow) toEntity() (Employee, error) {
	createdAt, err := time.Parse(time.RFC3339, row.CreatedAt)
	if err != nil {
		return Employee{}, fmt.Errorf("parsing created_at for employee %s: %w", row.EmployeeID, err)
	}
	return Employee{
		ID:         row.EmployeeID,
		FullName:   row.FullName,
		Department: row.Department,
		CreatedAt:  createdAt,
	}, nil
}

type repository struct {
	db *goqu.Database
}

func NewRepository(db *goqu.Database) Repository {
	return &repository{db: db}
}

func (r *repository) FindByID(ctx context.Context, employeeID string) (*Employee, error) {
	var row employeeRow
	found, err := r.db.From(employeeTable).
		Where(goqu.Ex{"employee_id": employeeID}).
		Prepared(true).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, sql.ErrNoRows
	}

	e, err := row.toEntity()
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindAll(ctx context.Context, department string) ([]Employee, error) {
	ds := r.db.From(employeeTable).Order(goqu.I("employee_id").Asc())
	if department != "" {
		ds = ds.Where(goqu.Ex{"department": department})
	}

	rows := make([]employeeRow, 0)
	if err := ds.Prepared(true).ScanStructsContext(ctx, &rows); err != nil {
		return nil, err
	}

	employees := make([]Employee, 0, len(rows))
	for _, row := range rows {
		e, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, nil
}
