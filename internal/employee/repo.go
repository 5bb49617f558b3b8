package employee

import (
	"context"
	"database/sql"
	"errors"

	"hrms/internal/store"
)

// Employee is a person on record. ID is the store's surrogate key and never
// leaves the process.
type Employee struct {
	ID         int64  `json:"-"`
	EmpID      string `json:"emp_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// Repository persists employees.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Insert writes a new employee. A clash on emp_id yields store.ErrDuplicateKey.
func (r *Repository) Insert(ctx context.Context, e Employee) (Employee, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO employee (emp_id, name, email, department)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, e.EmpID, e.Name, e.Email, e.Department)
	if err := row.Scan(&e.ID); err != nil {
		return Employee{}, store.MapError(err)
	}
	return e, nil
}

// GetByEmpID looks an employee up by its unique emp_id.
// found is false when no row matches.
func (r *Repository) GetByEmpID(ctx context.Context, empID string) (e Employee, found bool, err error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, emp_id, name, email, department
		FROM employee WHERE emp_id = $1
	`, empID)
	if err := row.Scan(&e.ID, &e.EmpID, &e.Name, &e.Email, &e.Department); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Employee{}, false, nil
		}
		return Employee{}, false, err
	}
	return e, true, nil
}

// List returns every employee in the store's natural order.
func (r *Repository) List(ctx context.Context) ([]Employee, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, emp_id, name, email, department FROM employee`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := []Employee{}
	for rows.Next() {
		var e Employee
		if err := rows.Scan(&e.ID, &e.EmpID, &e.Name, &e.Email, &e.Department); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// DeleteByEmpID removes the employee row. It reports whether a row was removed.
// Attendance rows for the same emp_id are left in place.
func (r *Repository) DeleteByEmpID(ctx context.Context, empID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM employee WHERE emp_id = $1`, empID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
