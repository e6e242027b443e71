package store

import "context"

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS employees (
		employee_id TEXT PRIMARY KEY,
		full_name   TEXT NOT NULL,
		department  TEXT NOT NULL,
		created_at  TEXT NOT NULL)`,

	`CREATE TABLE IF NOT EXISTS leave_balances (
		employee_id  TEXT NOT NULL REFERENCES employees(employee_id),
		leave_type   TEXT NOT NULL,
		balance_days INTEGER NOT NULL CHECK (balance_days >= 0),
		PRIMARY KEY (employee_id, leave_type))`,

	`CREATE TABLE IF NOT EXISTS leave_requests (
		id            TEXT PRIMARY KEY,
		employee_id   TEXT NOT NULL REFERENCES employees(employee_id),
		leave_type    TEXT NOT NULL,
		start_date    TEXT NOT NULL,
		end_date      TEXT NOT NULL,
		total_days    INTEGER NOT NULL,
		reason        TEXT NOT NULL DEFAULT '',
		status        TEXT NOT NULL,
		decided_by    TEXT,
		decided_at    TEXT,
		decision_note TEXT,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL)`,

	`CREATE INDEX IF NOT EXISTS idx_leave_requests_employee_dates
		ON leave_requests (employee_id, start_date)`,

	`CREATE INDEX IF NOT EXISTS idx_leave_requests_status
		ON leave_requests (status)`,
}

// Setup creates the schema. Statements are idempotent, so calling Setup on
// an existing database is safe.
func (s *Store) Setup(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	s.logger.Debug("schema ready")
	return nil
}
