package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/nicalabs/planilla/internal/domain"
)

// SQLite implements EmployeeStore and HistoryStore on a local database
// file. Use ":memory:" for an in-memory database in tests. The schema is
// auto-migrated on Open.
type SQLite struct {
	db *sql.DB
	mu sync.RWMutex
}

// Open opens (and if needed creates) the database at path.
func Open(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *SQLite) Close() error { return s.db.Close() }

func (s *SQLite) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS employees (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		name           TEXT NOT NULL,
		monthly_salary TEXT NOT NULL,
		hire_date      TEXT NOT NULL,
		vacation_taken TEXT NOT NULL DEFAULT '0'
	);
	CREATE TABLE IF NOT EXISTS history (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		kind       TEXT NOT NULL,
		input      TEXT NOT NULL,
		result     TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_history_created ON history(created_at);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// Save inserts the employee when ID is zero, otherwise updates in place.
func (s *SQLite) Save(ctx context.Context, e *domain.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == 0 {
		res, err := s.db.ExecContext(ctx,
			`INSERT INTO employees (name, monthly_salary, hire_date, vacation_taken) VALUES (?, ?, ?, ?)`,
			e.Name, e.MonthlySalary.String(), e.HireDate.Format("2006-01-02"), e.VacationTaken.String())
		if err != nil {
			return fmt.Errorf("failed to insert employee: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		e.ID = id
		return nil
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE employees SET name = ?, monthly_salary = ?, hire_date = ?, vacation_taken = ? WHERE id = ?`,
		e.Name, e.MonthlySalary.String(), e.HireDate.Format("2006-01-02"), e.VacationTaken.String(), e.ID)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Get fetches one employee by ID.
func (s *SQLite) Get(ctx context.Context, id int64) (*domain.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, monthly_salary, hire_date, vacation_taken FROM employees WHERE id = ?`, id)
	return scanEmployee(row)
}

// List returns all employees ordered by name.
func (s *SQLite) List(ctx context.Context) ([]domain.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, monthly_salary, hire_date, vacation_taken FROM employees ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *e)
	}
	return employees, rows.Err()
}

// Delete removes one employee by ID.
func (s *SQLite) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Append archives a calculation. History is append-only; there is no
// update or delete path.
func (s *SQLite) Append(ctx context.Context, entry *HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO history (kind, input, result, created_at) VALUES (?, ?, ?, ?)`,
		entry.Kind, string(entry.Input), string(entry.Result), entry.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to append history: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	entry.ID = id
	return nil
}

// Recent returns the most recent history entries, newest first.
func (s *SQLite) Recent(ctx context.Context, limit int) ([]HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, kind, input, result, created_at FROM history ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		var input, result, created string
		if err := rows.Scan(&e.ID, &e.Kind, &input, &result, &created); err != nil {
			return nil, err
		}
		e.Input = []byte(input)
		e.Result = []byte(result)
		if e.CreatedAt, err = time.Parse(time.RFC3339, created); err != nil {
			return nil, fmt.Errorf("bad history timestamp: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row scanner) (*domain.Employee, error) {
	var e domain.Employee
	var salary, hireDate, taken string
	if err := row.Scan(&e.ID, &e.Name, &salary, &hireDate, &taken); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan employee: %w", err)
	}
	var err error
	if e.MonthlySalary, err = decimal.NewFromString(salary); err != nil {
		return nil, fmt.Errorf("bad salary in database: %w", err)
	}
	if e.VacationTaken, err = decimal.NewFromString(taken); err != nil {
		return nil, fmt.Errorf("bad vacation count in database: %w", err)
	}
	if e.HireDate, err = time.Parse("2006-01-02", hireDate); err != nil {
		return nil, fmt.Errorf("bad hire date in database: %w", err)
	}
	return &e, nil
}
