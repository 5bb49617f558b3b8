package attendance_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrms/internal/apperror"
	"hrms/internal/attendance"
	"hrms/internal/store"
)

func newTestService(t *testing.T) *attendance.Service {
	t.Helper()
	db, err := store.NewDB(context.Background(), store.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return attendance.NewService(attendance.NewRepository(db.Client))
}

func TestMark_UnknownEmployeeAccepted(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	rec, err := svc.Mark(ctx, map[string]any{"emp_id": "ghost", "date": "2024-01-01", "status": "Present"})
	require.NoError(t, err)
	assert.NotZero(t, rec.ID)

	entries, err := svc.ListForEmployee(ctx, "ghost")
	require.NoError(t, err)
	assert.Equal(t, []attendance.Entry{{Date: "2024-01-01", Status: "Present"}}, entries)
}

func TestMark_DuplicatesAllowed(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	payload := map[string]any{"emp_id": "E1", "date": "2024-01-01", "status": "Present"}
	_, err := svc.Mark(ctx, payload)
	require.NoError(t, err)

	payload["status"] = "Absent"
	_, err = svc.Mark(ctx, payload)
	require.NoError(t, err)

	entries, err := svc.ListForEmployee(ctx, "E1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []attendance.Entry{
		{Date: "2024-01-01", Status: "Present"},
		{Date: "2024-01-01", Status: "Absent"},
	}, entries)
}

func TestMark_MissingField(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, field := range attendance.Fields {
		payload := map[string]any{"emp_id": "E1", "date": "2024-01-01", "status": "Present"}
		delete(payload, field)

		_, err := svc.Mark(ctx, payload)
		var verr *apperror.ValidationError
		require.True(t, errors.As(err, &verr), field)
		assert.Equal(t, "All fields required", verr.Msg)
	}

	entries, err := svc.ListForEmployee(ctx, "E1")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMark_UnknownField(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Mark(context.Background(), map[string]any{
		"emp_id": "E1", "date": "2024-01-01", "status": "Present", "note": "late",
	})
	var verr *apperror.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Unknown field: note", verr.Msg)
}

func TestListForEmployee_Empty(t *testing.T) {
	svc := newTestService(t)

	entries, err := svc.ListForEmployee(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestListForEmployee_FiltersByEmpID(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Mark(ctx, map[string]any{"emp_id": "E1", "date": "d1", "status": "Present"})
	require.NoError(t, err)
	_, err = svc.Mark(ctx, map[string]any{"emp_id": "E2", "date": "d1", "status": "Absent"})
	require.NoError(t, err)

	entries, err := svc.ListForEmployee(ctx, "E2")
	require.NoError(t, err)
	assert.Equal(t, []attendance.Entry{{Date: "d1", Status: "Absent"}}, entries)
}
