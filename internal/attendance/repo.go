package attendance

import (
	"context"
	"database/sql"
)

// Record is one attendance entry. Date and Status are free-form.
type Record struct {
	ID     int64
	EmpID  string
	Date   string
	Status string
}

// Entry is the client-facing view of a Record.
type Entry struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

// Repository persists attendance data.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Insert writes a new record. emp_id is not checked against employees.
func (r *Repository) Insert(ctx context.Context, rec Record) (Record, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO attendance (emp_id, date, status)
		VALUES ($1, $2, $3)
		RETURNING id
	`, rec.EmpID, rec.Date, rec.Status)
	if err := row.Scan(&rec.ID); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// ListByEmpID returns every record for empID in the store's natural order.
func (r *Repository) ListByEmpID(ctx context.Context, empID string) ([]Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, emp_id, date, status
		FROM attendance WHERE emp_id = $1
	`, empID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.EmpID, &rec.Date, &rec.Status); err != nil {
			return nil, err
		}
		res = append(res, rec)
	}
	return res, rows.Err()
}
