package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymdesk/internal/telemetry/tracing"
	"github.com/2beens/gymdesk/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type ListParams struct {
	UserID string
	Scope  string
	From   *time.Time
	To     *time.Time
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Add stores a new, open visit. The open-visit unique index rejects a second
// open visit of the same user with ErrAlreadyCheckedIn.
func (r *Repo) Add(ctx context.Context, record Record) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.attendance.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", record.UserID))

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO attendance_record (id, user_id, scope, check_in_time)
		VALUES ($1, $2, $3, $4)
	`,
		record.ID,
		record.UserID,
		record.Scope,
		record.CheckInTime,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrAlreadyCheckedIn
		}
		return nil, fmt.Errorf("insert attendance record: %w", err)
	}

	record.CheckOutTime = nil
	return &record, nil
}

func (r *Repo) Get(ctx context.Context, id uuid.UUID) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.attendance.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	record := &Record{}
	err = r.db.QueryRow(ctx, `
		SELECT id, user_id, scope, check_in_time, check_out_time
		FROM attendance_record
		WHERE id = $1
	`, id).Scan(
		&record.ID,
		&record.UserID,
		&record.Scope,
		&record.CheckInTime,
		&record.CheckOutTime,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("get attendance record [%s]: %w", id, err)
	}

	return record, nil
}

// SetCheckOut closes an open visit. A visit closed in the meantime yields ErrAlreadyCheckedOut.
func (r *Repo) SetCheckOut(ctx context.Context, id uuid.UUID, checkOutTime time.Time) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.attendance.checkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	record := &Record{}
	err = r.db.QueryRow(ctx, `
		UPDATE attendance_record
		SET check_out_time = $2
		WHERE id = $1 AND check_out_time IS NULL
		RETURNING id, user_id, scope, check_in_time, check_out_time
	`, id, checkOutTime).Scan(
		&record.ID,
		&record.UserID,
		&record.Scope,
		&record.CheckInTime,
		&record.CheckOutTime,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAlreadyCheckedOut
		}
		return nil, fmt.Errorf("check out attendance record [%s]: %w", id, err)
	}

	return record, nil
}

// List returns records matching the params, oldest check-in first.
func (r *Repo) List(ctx context.Context, params ListParams) (_ []Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.attendance.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", params.UserID))
	span.SetAttributes(attribute.String("scope", params.Scope))

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, scope, check_in_time, check_out_time
		FROM attendance_record
		WHERE ($1::text = '' OR user_id = $1)
		  AND ($2::text = '' OR scope = $2)
		  AND ($3::timestamptz IS NULL OR check_in_time >= $3)
		  AND ($4::timestamptz IS NULL OR check_in_time <= $4)
		ORDER BY check_in_time ASC
	`,
		params.UserID,
		params.Scope,
		params.From,
		params.To,
	)
	if err != nil {
		return nil, fmt.Errorf("list attendance records: %w", err)
	}
	defer rows.Close()

	records := make([]Record, 0)
	for rows.Next() {
		var record Record
		if err := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.Scope,
			&record.CheckInTime,
			&record.CheckOutTime,
		); err != nil {
			return nil, fmt.Errorf("scan attendance record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attendance records: %w", err)
	}

	span.SetAttributes(attribute.Int("count", len(records)))
	return records, nil
}
