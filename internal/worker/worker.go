// Package worker consumes record-change events published by the API.
package worker

import (
	"context"

	"github.com/sirupsen/logrus"

	"hrms/internal/employee"
	"hrms/internal/metrics"
	"hrms/internal/queue"
)

// EmployeeLookup finds an employee by emp_id.
type EmployeeLookup interface {
	GetByEmpID(ctx context.Context, empID string) (employee.Employee, bool, error)
}

// Worker logs record-change events and flags attendance marked for
// employees that do not exist. It never writes to the store.
type Worker struct {
	q         queue.Queue
	employees EmployeeLookup
	log       logrus.FieldLogger
}

// New creates a worker reading from q.
func New(q queue.Queue, employees EmployeeLookup, log logrus.FieldLogger) *Worker {
	return &Worker{q: q, employees: employees, log: log}
}

// Run processes messages until ctx is done.
func (w *Worker) Run(ctx context.Context) error {
	messages, err := w.q.Consume(ctx)
	if err != nil {
		return err
	}
	w.log.Info("worker started, waiting for messages...")
	for msg := range messages {
		w.Handle(ctx, msg)
	}
	w.log.Info("worker stopped")
	return nil
}

// Handle processes one message.
func (w *Worker) Handle(ctx context.Context, msg queue.Message) {
	empID := string(msg.Body)
	entry := w.log.WithFields(logrus.Fields{
		"event_id": msg.ID,
		"type":     msg.Type,
		"emp_id":   empID,
	})
	metrics.EventsConsumed.WithLabelValues(msg.Type).Inc()

	switch msg.Type {
	case queue.EmployeeCreated, queue.EmployeeDeleted:
		entry.Info("employee record changed")
	case queue.AttendanceMarked:
		_, found, err := w.employees.GetByEmpID(ctx, empID)
		if err != nil {
			entry.WithError(err).Error("employee lookup failed")
			return
		}
		if !found {
			metrics.OrphanAttendance.Inc()
			entry.Warn("attendance marked for unknown employee")
			return
		}
		entry.Info("attendance marked")
	default:
		entry.Debug("ignoring unknown event type")
	}
}
