package repository

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/haleview/clinic-api/internal/errs"
	"github.com/haleview/clinic-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientRepositoryCreateAndGet(t *testing.T) {
	repo := NewPatientRepository(newTestPool(t))
	ctx := context.Background()

	created := seedPatient(t, repo, "John", "Doe", "john.doe@example.com")

	assert.Positive(t, created.ID)
	assert.Equal(t, "John", created.FirstName)
	assert.Equal(t, "Doe", created.LastName)
	assert.Equal(t, "john.doe@example.com", created.Email)
	assert.Equal(t, "1985-02-14", created.DateOfBirth.Format(model.DateLayout))
	require.NotNil(t, created.Address)
	assert.Equal(t, "12 Harbor Lane", *created.Address)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.UpdatedAt.IsZero())

	loaded, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, loaded.ID)
	assert.Equal(t, created.Email, loaded.Email)
}

func TestPatientRepositoryGetMissing(t *testing.T) {
	repo := NewPatientRepository(newTestPool(t))

	_, err := repo.GetByID(context.Background(), 9999)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "PATIENT_NOT_FOUND", httpErr.Code)
}

func TestPatientRepositoryDuplicateEmail(t *testing.T) {
	repo := NewPatientRepository(newTestPool(t))

	seedPatient(t, repo, "John", "Doe", "john.doe@example.com")
	_, err := repo.Create(context.Background(), &model.CreatePatientRequest{
		FirstName:   "Johnny",
		LastName:    "Doe",
		Email:       "john.doe@example.com",
		Phone:       "555-0199",
		DateOfBirth: model.NewDate(1990, time.June, 1),
	})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "PATIENT_ALREADY_EXISTS", httpErr.Code)

	// The rejected insert leaves no row behind.
	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPatientRepositoryGetByEmail(t *testing.T) {
	repo := NewPatientRepository(newTestPool(t))
	ctx := context.Background()

	created := seedPatient(t, repo, "John", "Doe", "john.doe@example.com")

	found, err := repo.GetByEmail(ctx, "john.doe@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)

	missing, err := repo.GetByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPatientRepositoryList(t *testing.T) {
	repo := NewPatientRepository(newTestPool(t))
	ctx := context.Background()

	john := seedPatient(t, repo, "John", "Doe", "john.doe@example.com")
	jane := seedPatient(t, repo, "Jane", "Smith", "jane.smith@example.com")
	alice := seedPatient(t, repo, "Alice", "Brown", "alice.brown@clinicmail.net")

	t.Run("returns all patients ordered by id", func(t *testing.T) {
		page, err := repo.List(ctx, "", 0, 100)
		require.NoError(t, err)
		require.Len(t, page, 3)
		assert.Equal(t, john.ID, page[0].ID)
		assert.Equal(t, jane.ID, page[1].ID)
		assert.Equal(t, alice.ID, page[2].ID)
	})

	t.Run("search matches last name case-insensitively", func(t *testing.T) {
		page, err := repo.List(ctx, "DOE", 0, 100)
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, john.ID, page[0].ID)
	})

	t.Run("search matches first name substring", func(t *testing.T) {
		page, err := repo.List(ctx, "jan", 0, 100)
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, jane.ID, page[0].ID)
	})

	t.Run("search matches email domain across patients", func(t *testing.T) {
		page, err := repo.List(ctx, "example.com", 0, 100)
		require.NoError(t, err)
		assert.Len(t, page, 2)
	})

	t.Run("pagination windows the result", func(t *testing.T) {
		page, err := repo.List(ctx, "", 1, 1)
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, jane.ID, page[0].ID)
	})

	t.Run("empty page is an empty slice", func(t *testing.T) {
		page, err := repo.List(ctx, "zzz-no-match", 0, 100)
		require.NoError(t, err)
		require.NotNil(t, page)
		assert.Empty(t, page)
	})
}

func TestPatientRepositoryUpdate(t *testing.T) {
	repo := NewPatientRepository(newTestPool(t))
	ctx := context.Background()

	created := seedPatient(t, repo, "John", "Doe", "john.doe@example.com")

	// now() advances between statements; the sleep keeps the comparison
	// safe on coarse clocks.
	time.Sleep(20 * time.Millisecond)

	t.Run("partial update changes only supplied fields", func(t *testing.T) {
		phone := "555-0777"
		updated, err := repo.Update(ctx, &model.UpdatePatientRequest{ID: created.ID, Phone: &phone})
		require.NoError(t, err)

		assert.Equal(t, "555-0777", updated.Phone)
		assert.Equal(t, "John", updated.FirstName)
		assert.Equal(t, "john.doe@example.com", updated.Email)
		assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	})

	t.Run("empty update still refreshes updated_at", func(t *testing.T) {
		before, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)

		time.Sleep(20 * time.Millisecond)

		updated, err := repo.Update(ctx, &model.UpdatePatientRequest{ID: created.ID})
		require.NoError(t, err)
		assert.True(t, updated.UpdatedAt.After(before.UpdatedAt))
		assert.Equal(t, before.Phone, updated.Phone)
	})

	t.Run("missing patient reports not found", func(t *testing.T) {
		first := "Ghost"
		_, err := repo.Update(ctx, &model.UpdatePatientRequest{ID: 9999, FirstName: &first})

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
	})
}

func TestPatientRepositoryDelete(t *testing.T) {
	pool := newTestPool(t)
	patients := NewPatientRepository(pool)
	appointments := NewAppointmentRepository(pool)
	ctx := context.Background()

	patient := seedPatient(t, patients, "John", "Doe", "john.doe@example.com")
	appointment := seedAppointment(t, appointments, patient.ID, time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC), model.StatusScheduled)

	require.NoError(t, patients.Delete(ctx, patient.ID))

	_, err := patients.GetByID(ctx, patient.ID)
	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)

	// Deleting the patient cascades to their appointments.
	_, err = appointments.GetByID(ctx, appointment.ID)
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)

	t.Run("missing patient reports not found", func(t *testing.T) {
		err := patients.Delete(ctx, 9999)

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
	})
}

func TestPatientRepositoryCount(t *testing.T) {
	repo := NewPatientRepository(newTestPool(t))
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	seedPatient(t, repo, "John", "Doe", "john.doe@example.com")
	seedPatient(t, repo, "Jane", "Smith", "jane.smith@example.com")

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
