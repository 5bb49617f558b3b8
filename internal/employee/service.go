package employee

import (
	"context"
	"fmt"

	"hrms/internal/apperror"
	"hrms/internal/store"
	"hrms/internal/validate"
)

// Fields is the fixed request schema for an employee.
var Fields = []string{"emp_id", "name", "email", "department"}

// Error messages returned to clients.
const (
	MsgDuplicate = "Duplicate Employee ID"
	MsgNotFound  = "Employee not found"
)

// Service applies the employee rules on top of the repository.
type Service struct {
	repo *Repository
}

// NewService creates a service backed by a repository.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// FromPayload builds an Employee field by field from a decoded JSON object.
func FromPayload(payload map[string]any) (Employee, error) {
	if !validate.HasRequiredFields(payload, Fields...) {
		return Employee{}, apperror.Validation(validate.MsgAllFieldsRequired)
	}
	vals, err := validate.DecodeFields(payload, Fields...)
	if err != nil {
		return Employee{}, err
	}
	if !validate.IsValidEmail(vals["email"]) {
		return Employee{}, apperror.Validation(validate.MsgInvalidEmail)
	}
	return Employee{
		EmpID:      vals["emp_id"],
		Name:       vals["name"],
		Email:      vals["email"],
		Department: vals["department"],
	}, nil
}

// Create validates payload and stores a new employee.
func (s *Service) Create(ctx context.Context, payload map[string]any) (Employee, error) {
	e, err := FromPayload(payload)
	if err != nil {
		return Employee{}, err
	}

	if _, found, err := s.repo.GetByEmpID(ctx, e.EmpID); err != nil {
		return Employee{}, fmt.Errorf("lookup employee: %w", err)
	} else if found {
		return Employee{}, apperror.Conflict(MsgDuplicate)
	}

	created, err := s.repo.Insert(ctx, e)
	if store.IsDuplicateKey(err) {
		// lost a race with a concurrent create
		return Employee{}, apperror.Conflict(MsgDuplicate)
	}
	if err != nil {
		return Employee{}, fmt.Errorf("insert employee: %w", err)
	}
	return created, nil
}

// List returns all employees.
func (s *Service) List(ctx context.Context) ([]Employee, error) {
	employees, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return employees, nil
}

// Get returns the employee with empID, if any.
func (s *Service) Get(ctx context.Context, empID string) (Employee, bool, error) {
	return s.repo.GetByEmpID(ctx, empID)
}

// Delete removes the employee with empID.
func (s *Service) Delete(ctx context.Context, empID string) error {
	if _, found, err := s.repo.GetByEmpID(ctx, empID); err != nil {
		return fmt.Errorf("lookup employee: %w", err)
	} else if !found {
		return apperror.NotFound(MsgNotFound)
	}

	removed, err := s.repo.DeleteByEmpID(ctx, empID)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if !removed {
		return apperror.NotFound(MsgNotFound)
	}
	return nil
}
