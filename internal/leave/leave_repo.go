package leave

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
)

const dateLayout = "2006-01-02"

var (
	leaveTable     = goqu.T("leave_requests")
	balanceTable   = goqu.T("leave_balances")
	employeesTable = goqu.T("employees")

	leave_employeeId     = goqu.I("leave_requests.employee_id")
	leave_status         = goqu.I("leave_requests.status")
	leave_startDate      = goqu.I("leave_requests.start_date")
	employees_employeeId = goqu.I("employees.employee_id")
	employees_department = goqu.I("employees.department")
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *Leave) error
	FindByID(ctx context.Context, id string) (*Leave, error)
	FindAllByEmployee(ctx context.Context, employeeID, status string) ([]Leave, error)
	FindAllByStatus(ctx context.Context, status, department string) ([]Leave, error)
	Update(ctx context.Context, l *Leave) error
	EmployeeExists(ctx context.Context, employeeID string) (bool, error)
	HasOverlappingPeriod(ctx context.Context, employeeID string, startDate, endDate time.Time, excludeID *string) (bool, error)
	GetBalance(ctx context.Context, employeeID, leaveType string) (*Balance, error)
	ListBalances(ctx context.Context, employeeID string) ([]Balance, error)
	DeductBalance(ctx context.Context, employeeID, leaveType string, days int) (bool, error)
	RefundBalance(ctx context.Context, employeeID, leaveType string, days int) error
}

// goquDb is the slice of the goqu API the repository uses; both
// *goqu.Database and *goqu.TxDatabase satisfy it.
type goquDb interface {
	From(table ...interface{}) *goqu.SelectDataset
	Insert(table interface{}) *goqu.InsertDataset
	Update(table interface{}) *goqu.UpdateDataset
}

type leaveRow struct {
	ID           string         `db:"id"`
	EmployeeID   string         `db:"employee_id"`
	LeaveType    string         `db:"leave_type"`
	StartDate    string         `db:"start_date"`
	EndDate      string         `db:"end_date"`
	TotalDays    int            `db:"total_days"`
	Reason       string         `db:"reason"`
	Status       string         `db:"status"`
	DecidedBy    sql.NullString `db:"decided_by"`
	DecidedAt    sql.NullString `db:"decided_at"`
	DecisionNote sql.NullString `db:"decision_note"`
	CreatedAt    string         `db:"created_at"`
	UpdatedAt    string         `db:"updated_at"`
}

func (row leaveRow) toEntity() (Leave, error) {
	startDate, err := time.Parse(dateLayout, row.StartDate)
	if err != nil {
		return Leave{}, fmt.Errorf("parsing start_date of leave %s: %w", row.ID, err)
	}
	endDate, err := time.Parse(dateLayout, row.EndDate)
	if err != nil {
		return Leave{}, fmt.Errorf("parsing end_date of leave %s: %w", row.ID, err)
	}
	createdAt, err := time.Parse(time.RFC3339, row.CreatedAt)
	if err != nil {
		return Leave{}, fmt.Errorf("parsing created_at of leave %s: %w", row.ID, err)
	}
	updatedAt, err := time.Parse(time.RFC3339, row.UpdatedAt)
	if err != nil {
		return Leave{}, fmt.Errorf("parsing updated_at of leave %s: %w", row.ID, err)
	}

	l := Leave{
		ID:         row.ID,
		EmployeeID: row.EmployeeID,
		LeaveType:  row.LeaveType,
		StartDate:  startDate,
		EndDate:    endDate,
		TotalDays:  row.TotalDays,
		Reason:     row.Reason,
		Status:     row.Status,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
	if row.DecidedBy.Valid {
		v := row.DecidedBy.String
		l.DecidedBy = &v
	}
	if row.DecidedAt.Valid {
		t, err := time.Parse(time.RFC3339, row.DecidedAt.String)
		if err != nil {
			return Leave{}, fmt.Errorf("parsing decided_at of leave %s: %w", row.ID, err)
		}
		l.DecidedAt = &t
	}
	if row.DecisionNote.Valid {
		v := row.DecisionNote.String
		l.DecisionNote = &v
	}
	return l, nil
}

func leaveRecord(l *Leave) goqu.Record {
	return goqu.Record{
		"id":            l.ID,
		"employee_id":   l.EmployeeID,
		"leave_type":    l.LeaveType,
		"start_date":    l.StartDate.Format(dateLayout),
		"end_date":      l.EndDate.Format(dateLayout),
		"total_days":    l.TotalDays,
		"reason":        l.Reason,
		"status":        l.Status,
		"decided_by":    nullString(l.DecidedBy),
		"decided_at":    nullTimeString(l.DecidedAt),
		"decision_note": nullString(l.DecisionNote),
		"created_at":    l.CreatedAt.UTC().Format(time.RFC3339),
		"updated_at":    l.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func nullTimeString(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.UTC().Format(time.RFC3339), Valid: true}
}

type repository struct {
	db goquDb
}

func NewRepository(db *goqu.Database) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: goqu.NewTx("sqlite3", tx)}
}

func (r *repository) Create(ctx context.Context, l *Leave) error {
	_, err := r.db.Insert(leaveTable).
		Rows(leaveRecord(l)).
		Prepared(true).
		Executor().ExecContext(ctx)
	return err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Leave, error) {
	var row leaveRow
	found, err := r.db.From(leaveTable).
		Where(goqu.Ex{"id": id}).
		Prepared(true).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, sql.ErrNoRows
	}

	l, err := row.toEntity()
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID, status string) ([]Leave, error) {
	ds := r.db.From(leaveTable).
		Order(goqu.I("start_date").Desc(), goqu.I("created_at").Desc()).
		Where(goqu.Ex{"employee_id": employeeID})
	if status != "" {
		ds = ds.Where(goqu.Ex{"status": status})
	}
	return r.scanLeaves(ctx, ds)
}

// FindAllByStatus lists requests in one status, oldest start date first, the
// order an approver works through them. Filtering by department joins the
// employees table.
func (r *repository) FindAllByStatus(ctx context.Context, status, department string) ([]Leave, error) {
	ds := r.db.From(leaveTable).
		Select(leaveTable.All()).
		Where(leave_status.Eq(status)).
		Order(leave_startDate.Asc())
	if department != "" {
		ds = ds.Join(employeesTable, goqu.On(leave_employeeId.Eq(employees_employeeId))).
			Where(employees_department.Eq(department))
	}
	return r.scanLeaves(ctx, ds)
}

func (r *repository) scanLeaves(ctx context.Context, ds *goqu.SelectDataset) ([]Leave, error) {
	rows := make([]leaveRow, 0)
	if err := ds.Prepared(true).ScanStructsContext(ctx, &rows); err != nil {
		return nil, err
	}

	leaves := make([]Leave, 0, len(rows))
	for _, row := range rows {
		l, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, l)
	}
	return leaves, nil
}

func (r *repository) Update(ctx context.Context, l *Leave) error {
	res, err := r.db.Update(leaveTable).
		Set(leaveRecord(l)).
		Where(goqu.Ex{"id": l.ID}).
		Prepared(true).
		Executor().ExecContext(ctx)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	count, err := r.db.From(employeesTable).
		Where(goqu.Ex{"employee_id": employeeID}).
		Prepared(true).
		CountContext(ctx)
	return count > 0, err
}

func (r *repository) HasOverlappingPeriod(ctx context.Context, employeeID string, startDate, endDate time.Time, excludeID *string) (bool, error) {
	ds := r.db.From(leaveTable).
		Where(
			goqu.Ex{"employee_id": employeeID},
			goqu.I("status").NotIn(StatusCancelled, StatusRejected),
			goqu.L("NOT (end_date < ? OR start_date > ?)",
				startDate.Format(dateLayout), endDate.Format(dateLayout)),
		)
	if excludeID != nil && *excludeID != "" {
		ds = ds.Where(goqu.I("id").Neq(*excludeID))
	}

	count, err := ds.Prepared(true).CountContext(ctx)
	return count > 0, err
}

func (r *repository) GetBalance(ctx context.Context, employeeID, leaveType string) (*Balance, error) {
	var b Balance
	found, err := r.db.From(balanceTable).
		Where(goqu.Ex{"employee_id": employeeID, "leave_type": leaveType}).
		Prepared(true).
		ScanStructContext(ctx, &b)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, sql.ErrNoRows
	}
	return &b, nil
}

func (r *repository) ListBalances(ctx context.Context, employeeID string) ([]Balance, error) {
	balances := make([]Balance, 0)
	err := r.db.From(balanceTable).
		Where(goqu.Ex{"employee_id": employeeID}).
		Order(goqu.I("leave_type").Asc()).
		Prepared(true).
		ScanStructsContext(ctx, &balances)
	return balances, err
}

// DeductBalance atomically subtracts days from a balance, refusing to go
// negative. Returns false when the remaining balance is too small.
func (r *repository) DeductBalance(ctx context.Context, employeeID, leaveType string, days int) (bool, error) {
	res, err := r.db.Update(balanceTable).
		Set(goqu.Record{"balance_days": goqu.L("balance_days - ?", days)}).
		Where(
			goqu.Ex{"employee_id": employeeID, "leave_type": leaveType},
			goqu.I("balance_days").Gte(days),
		).
		Prepared(true).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *repository) RefundBalance(ctx context.Context, employeeID, leaveType string, days int) error {
	res, err := r.db.Update(balanceTable).
		Set(goqu.Record{"balance_days": goqu.L("balance_days + ?", days)}).
		Where(goqu.Ex{"employee_id": employeeID, "leave_type": leaveType}).
		Prepared(true).
		Executor().ExecContext(ctx)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
