package attendance

import (
	"context"
	"fmt"

	"hrms/internal/apperror"
	"hrms/internal/validate"
)

// Fields is the fixed request schema for an attendance record.
var Fields = []string{"emp_id", "date", "status"}

// Service records and reports attendance.
type Service struct {
	repo *Repository
}

// NewService creates a service backed by a repository.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// FromPayload builds a Record field by field from a decoded JSON object.
func FromPayload(payload map[string]any) (Record, error) {
	if !validate.HasRequiredFields(payload, Fields...) {
		return Record{}, apperror.Validation(validate.MsgAllFieldsRequired)
	}
	vals, err := validate.DecodeFields(payload, Fields...)
	if err != nil {
		return Record{}, err
	}
	return Record{EmpID: vals["emp_id"], Date: vals["date"], Status: vals["status"]}, nil
}

// Mark stores a new attendance record. Unknown employees and repeated days
// are accepted.
func (s *Service) Mark(ctx context.Context, payload map[string]any) (Record, error) {
	rec, err := FromPayload(payload)
	if err != nil {
		return Record{}, err
	}
	rec, err = s.repo.Insert(ctx, rec)
	if err != nil {
		return Record{}, fmt.Errorf("insert attendance: %w", err)
	}
	return rec, nil
}

// ListForEmployee returns the date/status pairs recorded for empID.
// The result is empty, never nil, when nothing matches.
func (s *Service) ListForEmployee(ctx context.Context, empID string) ([]Entry, error) {
	records, err := s.repo.ListByEmpID(ctx, empID)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	entries := make([]Entry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, Entry{Date: rec.Date, Status: rec.Status})
	}
	return entries, nil
}
