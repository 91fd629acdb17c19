package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/haleview/clinic-api/internal/errs"
	"github.com/haleview/clinic-api/internal/model"
	"github.com/haleview/clinic-api/internal/sqlerr"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

var codePatientNotFound = "PATIENT_NOT_FOUND"

// patientColumns is the canonical column list; every patient query
// selects or returns exactly these, in this order, so scanPatient can
// be shared.
const patientColumns = `id, first_name, last_name, email, phone, date_of_birth, address, created_at, updated_at`

// PatientRepository persists patient records.
type PatientRepository struct {
	pool *pgxpool.Pool
}

func NewPatientRepository(pool *pgxpool.Pool) *PatientRepository {
	return &PatientRepository{pool: pool}
}

func scanPatient(row pgx.Row) (*model.Patient, error) {
	var p model.Patient
	err := row.Scan(
		&p.ID,
		&p.FirstName,
		&p.LastName,
		&p.Email,
		&p.Phone,
		&p.DateOfBirth,
		&p.Address,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new patient and returns the stored row with its
// assigned id and timestamps. A duplicate email surfaces as a conflict
// via the patients_email_key constraint; the constraint is the real
// guard, any service-level pre-check is advisory only.
func (r *PatientRepository) Create(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error) {
	query := fmt.Sprintf(`
		INSERT INTO patients (first_name, last_name, email, phone, date_of_birth, address)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s`, patientColumns)

	patient, err := scanPatient(r.pool.QueryRow(ctx, query,
		req.FirstName,
		req.LastName,
		req.Email,
		req.Phone,
		req.DateOfBirth,
		req.Address,
	))
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	return patient, nil
}

// GetByID fetches one patient or reports NotFound.
func (r *PatientRepository) GetByID(ctx context.Context, id int) (*model.Patient, error) {
	query := fmt.Sprintf(`SELECT %s FROM patients WHERE id = $1`, patientColumns)

	patient, err := scanPatient(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFoundError("Patient not found", true, &codePatientNotFound)
		}
		return nil, sqlerr.HandleError(err)
	}

	return patient, nil
}

// GetByEmail fetches a patient by exact email. It returns (nil, nil)
// when no patient has that email; absence is a normal answer here, not
// an error, because this backs the advisory uniqueness pre-check.
func (r *PatientRepository) GetByEmail(ctx context.Context, email string) (*model.Patient, error) {
	query := fmt.Sprintf(`SELECT %s FROM patients WHERE email = $1`, patientColumns)

	patient, err := scanPatient(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, sqlerr.HandleError(err)
	}

	return patient, nil
}

// List returns patients ordered by id ascending. When search is
// non-empty it keeps only patients whose first name, last name, or
// email contains the term, case-insensitively. skip/limit paginate the
// filtered ordering.
func (r *PatientRepository) List(ctx context.Context, search string, skip, limit int) ([]model.Patient, error) {
	var sb strings.Builder
	args := make([]any, 0, 3)

	fmt.Fprintf(&sb, `SELECT %s FROM patients`, patientColumns)

	if search != "" {
		args = append(args, "%"+search+"%")
		fmt.Fprintf(&sb, ` WHERE first_name ILIKE $%d OR last_name ILIKE $%d OR email ILIKE $%d`,
			len(args), len(args), len(args))
	}

	sb.WriteString(` ORDER BY id ASC`)

	args = append(args, skip)
	fmt.Fprintf(&sb, ` OFFSET $%d`, len(args))
	args = append(args, limit)
	fmt.Fprintf(&sb, ` LIMIT $%d`, len(args))

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	defer rows.Close()

	// Non-nil so an empty page serializes as [] rather than null.
	patients := make([]model.Patient, 0)
	for rows.Next() {
		patient, err := scanPatient(rows)
		if err != nil {
			return nil, sqlerr.HandleError(err)
		}
		patients = append(patients, *patient)
	}
	if err := rows.Err(); err != nil {
		return nil, sqlerr.HandleError(err)
	}

	return patients, nil
}

// Update applies only the fields present in req and refreshes
// updated_at. An empty partial payload still bumps updated_at, which
// mirrors how the update endpoint has always behaved.
func (r *PatientRepository) Update(ctx context.Context, req *model.UpdatePatientRequest) (*model.Patient, error) {
	sets := make([]string, 0, 6)
	args := make([]any, 0, 7)

	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.FirstName != nil {
		set("first_name", *req.FirstName)
	}
	if req.LastName != nil {
		set("last_name", *req.LastName)
	}
	if req.Email != nil {
		set("email", *req.Email)
	}
	if req.Phone != nil {
		set("phone", *req.Phone)
	}
	if req.DateOfBirth != nil {
		set("date_of_birth", *req.DateOfBirth)
	}
	if req.Address != nil {
		set("address", *req.Address)
	}

	sets = append(sets, "updated_at = now()")

	args = append(args, req.ID)
	query := fmt.Sprintf(`UPDATE patients SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), patientColumns)

	patient, err := scanPatient(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFoundError("Patient not found", true, &codePatientNotFound)
		}
		return nil, sqlerr.HandleError(err)
	}

	return patient, nil
}

// Delete removes a patient; the appointments_patient_id_fkey cascade
// removes every owned appointment in the same transaction.
func (r *PatientRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM patients WHERE id = $1`, id)
	if err != nil {
		return sqlerr.HandleError(err)
	}

	if tag.RowsAffected() == 0 {
		return errs.NewNotFoundError("Patient not found", true, &codePatientNotFound)
	}

	return nil
}

// Count returns the total number of patients.
func (r *PatientRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM patients`).Scan(&count); err != nil {
		return 0, sqlerr.HandleError(err)
	}
	return count, nil
}
