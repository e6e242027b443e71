package leave_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/leavedesk/leavedesk-mcp/internal/leave"
	"github.com/leavedesk/leavedesk-mcp/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLeaveRepoTest(t *testing.T) (context.Context, leave.Repository) {
	t.Helper()
	ctx := context.Background()

	st, err := store.Open(filepath.Join(t.TempDir(), "leave_management.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.Setup(ctx))
	require.NoError(t, st.Seed(ctx))
	return ctx, leave.NewRepository(st.Goqu())
}

func mustDate(t *testing.T, v string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", v)
	require.NoError(t, err)
	return d
}

func newPendingLeave(t *testing.T, id, employeeID, leaveType, start, end string, days int) *leave.Leave {
	t.Helper()
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	return &leave.Leave{
		ID:         id,
		EmployeeID: employeeID,
		LeaveType:  leaveType,
		StartDate:  mustDate(t, start),
		EndDate:    mustDate(t, end),
		TotalDays:  days,
		Reason:     "trip",
		Status:     leave.StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestLeaveRepository_CreateAndFindByID(t *testing.T) {
	ctx, repo := setupLeaveRepoTest(t)

	created := newPendingLeave(t, "req-1", "E002", "ANNUAL", "2026-03-10", "2026-03-12", 3)
	require.NoError(t, repo.Create(ctx, created))

	found, err := repo.FindByID(ctx, "req-1")
	require.NoError(t, err)
	assert.Equal(t, "E002", found.EmployeeID)
	assert.Equal(t, "ANNUAL", found.LeaveType)
	assert.Equal(t, "2026-03-10", found.StartDate.Format("2006-01-02"))
	assert.Equal(t, "2026-03-12", found.EndDate.Format("2006-01-02"))
	assert.Equal(t, 3, found.TotalDays)
	assert.Equal(t, "trip", found.Reason)
	assert.Equal(t, leave.StatusPending, found.Status)
	assert.Nil(t, found.DecidedBy)
	assert.Nil(t, found.DecidedAt)
	assert.Nil(t, found.DecisionNote)

	_, err = repo.FindByID(ctx, "req-404")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestLeaveRepository_Update(t *testing.T) {
	ctx, repo := setupLeaveRepoTest(t)

	l := newPendingLeave(t, "req-1", "E002", "SICK", "2026-03-10", "2026-03-10", 1)
	require.NoError(t, repo.Create(ctx, l))

	decidedBy := "manager-1"
	decidedAt := time.Date(2026, 2, 2, 9, 30, 0, 0, time.UTC)
	note := "doctor confirmed"
	l.Status = leave.StatusRejected
	l.DecidedBy = &decidedBy
	l.DecidedAt = &decidedAt
	l.DecisionNote = &note
	l.UpdatedAt = decidedAt
	require.NoError(t, repo.Update(ctx, l))

	found, err := repo.FindByID(ctx, "req-1")
	require.NoError(t, err)
	assert.Equal(t, leave.StatusRejected, found.Status)
	if assert.NotNil(t, found.DecidedBy) {
		assert.Equal(t, "manager-1", *found.DecidedBy)
	}
	if assert.NotNil(t, found.DecidedAt) {
		assert.True(t, found.DecidedAt.Equal(decidedAt))
	}
	if assert.NotNil(t, found.DecisionNote) {
		assert.Equal(t, "doctor confirmed", *found.DecisionNote)
	}

	ghost := newPendingLeave(t, "req-404", "E002", "SICK", "2026-03-20", "2026-03-20", 1)
	assert.ErrorIs(t, repo.Update(ctx, ghost), sql.ErrNoRows)
}

func TestLeaveRepository_FindAllByEmployee(t *testing.T) {
	ctx, repo := setupLeaveRepoTest(t)

	// Seeded history for E001: Christmas 2024 and New Year's Day 2025, both
	// approved. Newest start date first.
	leaves, err := repo.FindAllByEmployee(ctx, "E001", "")
	require.NoError(t, err)
	require.Len(t, leaves, 2)
	assert.Equal(t, "2025-01-01", leaves[0].StartDate.Format("2006-01-02"))
	assert.Equal(t, "2024-12-25", leaves[1].StartDate.Format("2006-01-02"))

	approved, err := repo.FindAllByEmployee(ctx, "E001", leave.StatusApproved)
	require.NoError(t, err)
	assert.Len(t, approved, 2)

	pending, err := repo.FindAllByEmployee(ctx, "E001", leave.StatusPending)
	require.NoError(t, err)
	assert.Empty(t, pending)

	none, err := repo.FindAllByEmployee(ctx, "E002", "")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestLeaveRepository_FindAllByStatus(t *testing.T) {
	ctx, repo := setupLeaveRepoTest(t)

	require.NoError(t, repo.Create(ctx, newPendingLeave(t, "req-1", "E002", "ANNUAL", "2026-04-01", "2026-04-02", 2)))
	require.NoError(t, repo.Create(ctx, newPendingLeave(t, "req-2", "E003", "SICK", "2026-03-15", "2026-03-15", 1)))

	pending, err := repo.FindAllByStatus(ctx, leave.StatusPending, "")
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "req-2", pending[0].ID, "oldest start date comes first")
	assert.Equal(t, "req-1", pending[1].ID)

	product, err := repo.FindAllByStatus(ctx, leave.StatusPending, "Product")
	require.NoError(t, err)
	require.Len(t, product, 1)
	assert.Equal(t, "E002", product[0].EmployeeID)

	engineering, err := repo.FindAllByStatus(ctx, leave.StatusPending, "Engineering")
	require.NoError(t, err)
	assert.Empty(t, engineering)

	approved, err := repo.FindAllByStatus(ctx, leave.StatusApproved, "Engineering")
	require.NoError(t, err)
	assert.Len(t, approved, 2)
}

func TestLeaveRepository_EmployeeExists(t *testing.T) {
	ctx, repo := setupLeaveRepoTest(t)

	exists, err := repo.EmployeeExists(ctx, "E001")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.EmployeeExists(ctx, "E404")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLeaveRepository_HasOverlappingPeriod(t *testing.T) {
	ctx, repo := setupLeaveRepoTest(t)

	l := newPendingLeave(t, "req-1", "E002", "ANNUAL", "2026-03-10", "2026-03-12", 3)
	require.NoError(t, repo.Create(ctx, l))

	cases := []struct {
		name    string
		start   string
		end     string
		overlap bool
	}{
		{"same period", "2026-03-10", "2026-03-12", true},
		{"touches last day", "2026-03-12", "2026-03-15", true},
		{"surrounds", "2026-03-01", "2026-03-31", true},
		{"right after", "2026-03-13", "2026-03-14", false},
		{"right before", "2026-03-08", "2026-03-09", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			overlap, err := repo.HasOverlappingPeriod(ctx, "E002", mustDate(t, tc.start), mustDate(t, tc.end), nil)
			require.NoError(t, err)
			assert.Equal(t, tc.overlap, overlap)
		})
	}

	t.Run("other employee", func(t *testing.T) {
		overlap, err := repo.HasOverlappingPeriod(ctx, "E003", mustDate(t, "2026-03-10"), mustDate(t, "2026-03-12"), nil)
		require.NoError(t, err)
		assert.False(t, overlap)
	})

	t.Run("excluded request id", func(t *testing.T) {
		id := "req-1"
		overlap, err := repo.HasOverlappingPeriod(ctx, "E002", mustDate(t, "2026-03-10"), mustDate(t, "2026-03-12"), &id)
		require.NoError(t, err)
		assert.False(t, overlap)
	})

	t.Run("cancelled requests do not block", func(t *testing.T) {
		l.Status = leave.StatusCancelled
		require.NoError(t, repo.Update(ctx, l))

		overlap, err := repo.HasOverlappingPeriod(ctx, "E002", mustDate(t, "2026-03-10"), mustDate(t, "2026-03-12"), nil)
		require.NoError(t, err)
		assert.False(t, overlap)
	})
}

func TestLeaveRepository_Balances(t *testing.T) {
	ctx, repo := setupLeaveRepoTest(t)

	b, err := repo.GetBalance(ctx, "E001", "ANNUAL")
	require.NoError(t, err)
	assert.Equal(t, 18, b.BalanceDays)

	_, err = repo.GetBalance(ctx, "E001", "UNPAID")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	balances, err := repo.ListBalances(ctx, "E001")
	require.NoError(t, err)
	require.Len(t, balances, 2)
	assert.Equal(t, "ANNUAL", balances[0].LeaveType)
	assert.Equal(t, "SICK", balances[1].LeaveType)
}

func TestLeaveRepository_DeductAndRefundBalance(t *testing.T) {
	ctx, repo := setupLeaveRepoTest(t)

	deducted, err := repo.DeductBalance(ctx, "E003", "ANNUAL", 5)
	require.NoError(t, err)
	assert.True(t, deducted)

	b, err := repo.GetBalance(ctx, "E003", "ANNUAL")
	require.NoError(t, err)
	assert.Equal(t, 10, b.BalanceDays)

	deducted, err = repo.DeductBalance(ctx, "E003", "ANNUAL", 100)
	require.NoError(t, err)
	assert.False(t, deducted, "a deduction past zero must be refused")

	b, err = repo.GetBalance(ctx, "E003", "ANNUAL")
	require.NoError(t, err)
	assert.Equal(t, 10, b.BalanceDays)

	require.NoError(t, repo.RefundBalance(ctx, "E003", "ANNUAL", 5))
	b, err = repo.GetBalance(ctx, "E003", "ANNUAL")
	require.NoError(t, err)
	assert.Equal(t, 15, b.BalanceDays)

	assert.ErrorIs(t, repo.RefundBalance(ctx, "E003", "UNPAID", 1), sql.ErrNoRows)
}
