package leave

import "time"

const (
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
	StatusCancelled = "CANCELLED"
)

const (
	TypeAnnual = "ANNUAL"
	TypeSick   = "SICK"
	TypeUnpaid = "UNPAID"
)

var (
	AllStatuses = []string{StatusPending, StatusApproved, StatusRejected, StatusCancelled}
	AllTypes    = []string{TypeAnnual, TypeSick, TypeUnpaid}
)

// BalanceTracked reports whether requests of this type draw down a balance.
// UNPAID leave has no balance to track.
func BalanceTracked(leaveType string) bool {
	return leaveType != TypeUnpaid
}

func IsValidStatus(status string) bool {
	for _, s := range AllStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func IsValidType(leaveType string) bool {
	for _, t := range AllTypes {
		if t == leaveType {
			return true
		}
	}
	return false
}

type Leave struct {
	ID           string
	EmployeeID   string
	LeaveType    string
	StartDate    time.Time
	EndDate      time.Time
	TotalDays    int
	Reason       string
	Status       string
	DecidedBy    *string
	DecidedAt    *time.Time
	DecisionNote *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Balance is one employee's remaining days for a single leave type.
type Balance struct {
	EmployeeID  string `db:"employee_id"`
	LeaveType   string `db:"leave_type"`
	BalanceDays int    `db:"balance_days"`
}
