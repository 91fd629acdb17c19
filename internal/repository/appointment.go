package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/haleview/clinic-api/internal/errs"
	"github.com/haleview/clinic-api/internal/model"
	"github.com/haleview/clinic-api/internal/sqlerr"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

var codeAppointmentNotFound = "APPOINTMENT_NOT_FOUND"

// Appointment reads join the owning patient so responses can embed the
// patient summary without a second round trip.
const (
	appointmentColumns = `a.id, a.patient_id, a.appointment_date, a.reason, a.status, a.notes, a.created_at, a.updated_at,
		p.id, p.first_name, p.last_name, p.email`
	appointmentFrom = `FROM appointments a JOIN patients p ON p.id = a.patient_id`
)

// AppointmentFilter narrows List. Nil fields do not constrain; set
// fields combine conjunctively. Date selects the UTC calendar day,
// matched as the half-open window [00:00, 24:00) of that day.
type AppointmentFilter struct {
	PatientID *int
	Status    *model.AppointmentStatus
	Date      *model.Date
}

// AppointmentRepository persists appointment records.
type AppointmentRepository struct {
	pool *pgxpool.Pool
}

func NewAppointmentRepository(pool *pgxpool.Pool) *AppointmentRepository {
	return &AppointmentRepository{pool: pool}
}

func scanAppointment(row pgx.Row) (*model.Appointment, error) {
	var (
		a model.Appointment
		p model.PatientSummary
	)
	err := row.Scan(
		&a.ID,
		&a.PatientID,
		&a.AppointmentDate,
		&a.Reason,
		&a.Status,
		&a.Notes,
		&a.CreatedAt,
		&a.UpdatedAt,
		&p.ID,
		&p.FirstName,
		&p.LastName,
		&p.Email,
	)
	if err != nil {
		return nil, err
	}
	a.Patient = &p
	return &a, nil
}

// Create books an appointment and returns the stored row including the
// patient summary. A patient_id pointing at no patient surfaces as a
// foreign key violation from appointments_patient_id_fkey.
func (r *AppointmentRepository) Create(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	var id int
	err := r.pool.QueryRow(ctx, `
		INSERT INTO appointments (patient_id, appointment_date, reason, status, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		req.PatientID,
		req.AppointmentDate.Time,
		req.Reason,
		string(req.Status),
		req.Notes,
	).Scan(&id)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	// Re-read through the join to pick up the patient summary.
	return r.GetByID(ctx, id)
}

// GetByID fetches one appointment with its patient summary or reports
// NotFound.
func (r *AppointmentRepository) GetByID(ctx context.Context, id int) (*model.Appointment, error) {
	query := fmt.Sprintf(`SELECT %s %s WHERE a.id = $1`, appointmentColumns, appointmentFrom)

	appointment, err := scanAppointment(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFoundError("Appointment not found", true, &codeAppointmentNotFound)
		}
		return nil, sqlerr.HandleError(err)
	}

	return appointment, nil
}

// List returns appointments ordered by appointment_date ascending,
// filtered per filter and paginated by skip/limit.
func (r *AppointmentRepository) List(ctx context.Context, filter AppointmentFilter, skip, limit int) ([]model.Appointment, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, `SELECT %s %s`, appointmentColumns, appointmentFrom)

	where := make([]string, 0, 4)
	args := make([]any, 0, 6)

	if filter.PatientID != nil {
		args = append(args, *filter.PatientID)
		where = append(where, fmt.Sprintf("a.patient_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		where = append(where, fmt.Sprintf("a.status = $%d", len(args)))
	}
	if filter.Date != nil {
		day := filter.Date.Time
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
		args = append(args, start)
		where = append(where, fmt.Sprintf("a.appointment_date >= $%d", len(args)))
		args = append(args, start.AddDate(0, 0, 1))
		where = append(where, fmt.Sprintf("a.appointment_date < $%d", len(args)))
	}

	if len(where) > 0 {
		sb.WriteString(" WHERE " + strings.Join(where, " AND "))
	}

	sb.WriteString(" ORDER BY a.appointment_date ASC")

	args = append(args, skip)
	fmt.Fprintf(&sb, " OFFSET $%d", len(args))
	args = append(args, limit)
	fmt.Fprintf(&sb, " LIMIT $%d", len(args))

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	defer rows.Close()

	appointments := make([]model.Appointment, 0)
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, sqlerr.HandleError(err)
		}
		appointments = append(appointments, *appointment)
	}
	if err := rows.Err(); err != nil {
		return nil, sqlerr.HandleError(err)
	}

	return appointments, nil
}

// Update applies only the fields present in req and refreshes
// updated_at, then re-reads the joined row.
func (r *AppointmentRepository) Update(ctx context.Context, req *model.UpdateAppointmentRequest) (*model.Appointment, error) {
	sets := make([]string, 0, 5)
	args := make([]any, 0, 6)

	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.PatientID != nil {
		set("patient_id", *req.PatientID)
	}
	if req.AppointmentDate != nil {
		set("appointment_date", req.AppointmentDate.Time)
	}
	if req.Reason != nil {
		set("reason", *req.Reason)
	}
	if req.Status != nil {
		set("status", string(*req.Status))
	}
	if req.Notes != nil {
		set("notes", *req.Notes)
	}

	sets = append(sets, "updated_at = now()")

	args = append(args, req.ID)
	query := fmt.Sprintf(`UPDATE appointments SET %s WHERE id = $%d RETURNING id`,
		strings.Join(sets, ", "), len(args))

	var id int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFoundError("Appointment not found", true, &codeAppointmentNotFound)
		}
		return nil, sqlerr.HandleError(err)
	}

	return r.GetByID(ctx, id)
}

// Delete removes one appointment.
func (r *AppointmentRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return sqlerr.HandleError(err)
	}

	if tag.RowsAffected() == 0 {
		return errs.NewNotFoundError("Appointment not found", true, &codeAppointmentNotFound)
	}

	return nil
}

// Count returns the total number of appointments.
func (r *AppointmentRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM appointments`).Scan(&count); err != nil {
		return 0, sqlerr.HandleError(err)
	}
	return count, nil
}

// CountByStatus returns per-status appointment counts. Every known
// status is present in the result, zero when no rows carry it.
func (r *AppointmentRepository) CountByStatus(ctx context.Context) (map[model.AppointmentStatus]int, error) {
	counts := map[model.AppointmentStatus]int{
		model.StatusScheduled: 0,
		model.StatusCompleted: 0,
		model.StatusCancelled: 0,
	}

	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM appointments GROUP BY status`)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status model.AppointmentStatus
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, sqlerr.HandleError(err)
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, sqlerr.HandleError(err)
	}

	return counts, nil
}
