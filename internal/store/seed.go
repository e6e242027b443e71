package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Seed populates an empty database with the demo dataset: three employees,
// their per-type balances, and two historical approved leave days for E001.
// A database that already holds employees is left untouched, so reopening
// the same file never duplicates rows.
func (s *Store) Seed(ctx context.Context) error {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM employees").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		s.logger.Debug("database already seeded", zap.Int("employees", count))
		return nil
	}

	now := time.Now().UTC().Format(time.RFC3339)

	return s.WriteTx(ctx, func(tx *sql.Tx) error {
		tdb := goqu.NewTx("sqlite3", tx)

		if _, err := tdb.Insert("employees").Rows(
			goqu.Record{"employee_id": "E001", "full_name": "Alice Johnson", "department": "Engineering", "created_at": now},
			goqu.Record{"employee_id": "E002", "full_name": "Priya Sharma", "department": "Product", "created_at": now},
			goqu.Record{"employee_id": "E003", "full_name": "Marcus Chen", "department": "Finance", "created_at": now},
		).Executor().ExecContext(ctx); err != nil {
			return err
		}

		if _, err := tdb.Insert("leave_balances").Rows(
			goqu.Record{"employee_id": "E001", "leave_type": "ANNUAL", "balance_days": 18},
			goqu.Record{"employee_id": "E001", "leave_type": "SICK", "balance_days": 10},
			goqu.Record{"employee_id": "E002", "leave_type": "ANNUAL", "balance_days": 20},
			goqu.Record{"employee_id": "E002", "leave_type": "SICK", "balance_days": 10},
			goqu.Record{"employee_id": "E003", "leave_type": "ANNUAL", "balance_days": 15},
			goqu.Record{"employee_id": "E003", "leave_type": "SICK", "balance_days": 8},
		).Executor().ExecContext(ctx); err != nil {
			return err
		}

		// E001 already took Christmas and New Year's Day; the seeded ANNUAL
		// balance of 18 is the remainder after those two days.
		historical := []goqu.Record{
			seedRequest("E001", "2024-12-25", "Christmas Day", now),
			seedRequest("E001", "2025-01-01", "New Year's Day", now),
		}
		if _, err := tdb.Insert("leave_requests").Rows(historical...).Executor().ExecContext(ctx); err != nil {
			return err
		}

		s.logger.Info("seeded database",
			zap.Int("employees", 3),
			zap.Int("leave_requests", len(historical)),
		)
		return nil
	})
}

func seedRequest(employeeID, day, reason, now string) goqu.Record {
	return goqu.Record{
		"id":            uuid.NewString(),
		"employee_id":   employeeID,
		"leave_type":    "ANNUAL",
		"start_date":    day,
		"end_date":      day,
		"total_days":    1,
		"reason":        reason,
		"status":        "APPROVED",
		"decided_by":    "system",
		"decided_at":    now,
		"decision_note": nil,
		"created_at":    now,
		"updated_at":    now,
	}
}
