package employee_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrms/internal/apperror"
	"hrms/internal/employee"
	"hrms/internal/store"
)

func newTestService(t *testing.T) (*employee.Service, *employee.Repository) {
	t.Helper()
	db, err := store.NewDB(context.Background(), store.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := employee.NewRepository(db.Client)
	return employee.NewService(repo), repo
}

func annPayload() map[string]any {
	return map[string]any{"emp_id": "E1", "name": "Ann", "email": "ann@x.com", "department": "Eng"}
}

func TestCreate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, annPayload())
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "E1", list[0].EmpID)
	assert.Equal(t, "Ann", list[0].Name)
	assert.Equal(t, "ann@x.com", list[0].Email)
	assert.Equal(t, "Eng", list[0].Department)
}

func TestCreate_MissingField(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, field := range employee.Fields {
		payload := annPayload()
		delete(payload, field)

		_, err := svc.Create(ctx, payload)
		var verr *apperror.ValidationError
		require.True(t, errors.As(err, &verr), field)
		assert.Equal(t, "All fields required", verr.Msg)
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreate_InvalidEmail(t *testing.T) {
	svc, _ := newTestService(t)

	for _, email := range []string{"bob", "bob@", "bob.com"} {
		payload := annPayload()
		payload["email"] = email

		_, err := svc.Create(context.Background(), payload)
		var verr *apperror.ValidationError
		require.True(t, errors.As(err, &verr), email)
		assert.Equal(t, "Invalid email", verr.Msg)
	}
}

func TestCreate_EmptyValuesAccepted(t *testing.T) {
	svc, _ := newTestService(t)

	payload := annPayload()
	payload["name"] = ""
	payload["department"] = ""

	_, err := svc.Create(context.Background(), payload)
	assert.NoError(t, err)
}

func TestCreate_UnknownField(t *testing.T) {
	svc, _ := newTestService(t)

	payload := annPayload()
	payload["salary"] = "lots"

	_, err := svc.Create(context.Background(), payload)
	var verr *apperror.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Unknown field: salary", verr.Msg)
}

func TestCreate_Duplicate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, annPayload())
	require.NoError(t, err)

	second := annPayload()
	second["name"] = "Impostor"
	_, err = svc.Create(ctx, second)

	var cerr *apperror.ConflictError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "Duplicate Employee ID", cerr.Msg)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ann", list[0].Name)
}

func TestInsert_UniqueConstraint(t *testing.T) {
	_, repo := newTestService(t)
	ctx := context.Background()

	e := employee.Employee{EmpID: "E1", Name: "Ann", Email: "ann@x.com", Department: "Eng"}
	_, err := repo.Insert(ctx, e)
	require.NoError(t, err)

	_, err = repo.Insert(ctx, e)
	assert.True(t, store.IsDuplicateKey(err))
}

func TestList_Empty(t *testing.T) {
	svc, _ := newTestService(t)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestDelete(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, annPayload())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "E1"))

	_, found, err := svc.Get(ctx, "E1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDelete_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.Delete(context.Background(), "nobody")
	var nerr *apperror.NotFoundError
	require.True(t, errors.As(err, &nerr))
	assert.Equal(t, "Employee not found", nerr.Msg)
}
