package repository

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"bt2horizon/internal/domain"

	"github.com/jmoiron/sqlx"
)

// RequestRepository persists the lead/request audit trail. It runs raw
// SQL over sqlx; the queries stick to the subset both postgres and
// sqlite accept so the same code serves production and tests.
type RequestRepository struct {
	db *sqlx.DB
}

func NewRequestRepository(db *sqlx.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

// request_data is nullable; COALESCE to the JSON null literal so rows
// without a blob still scan into json.RawMessage.
const requestColumns = `
	id, user_id, request_type, title, description,
	status, payment_status, payment_info,
	payment_confirmed_at, payment_confirmed_by,
	COALESCE(request_data, 'null') AS request_data,
	admin_notes, created_at, updated_at`

// Create inserts a new request row.
func (r *RequestRepository) Create(ctx context.Context, req *domain.Request) error {
	now := time.Now().UTC()
	req.CreatedAt = now
	req.UpdatedAt = now
	if req.Status == "" {
		req.Status = domain.RequestPending
	}
	if req.PaymentStatus == "" {
		req.PaymentStatus = domain.PaymentNone
	}

	query := `
		INSERT INTO requests (
			user_id, request_type, title, description,
			status, payment_status, payment_info,
			request_data, admin_notes,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	return r.db.QueryRowContext(
		ctx, query,
		req.UserID, req.RequestType, req.Title, req.Description,
		req.Status, req.PaymentStatus, req.PaymentInfo,
		[]byte(req.RequestData), req.AdminNotes,
		req.CreatedAt, req.UpdatedAt,
	).Scan(&req.ID)
}

// GetByID retrieves a request; (nil, nil) when no row matches.
func (r *RequestRepository) GetByID(ctx context.Context, id int64) (*domain.Request, error) {
	var req domain.Request
	err := r.db.GetContext(ctx, &req, `SELECT `+requestColumns+` FROM requests WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// RequestFilter holds the additive list predicates. A nil UserID means
// no owner constraint; visibility is decided by the service before the
// filter reaches the query.
type RequestFilter struct {
	UserID      *int64
	RequestType string
	Status      string
}

// List returns matching requests newest first, filters applied in the
// query rather than over a full-table fetch.
func (r *RequestRepository) List(ctx context.Context, f RequestFilter) ([]*domain.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM requests WHERE 1=1`
	args := []any{}
	n := 0

	if f.UserID != nil {
		n++
		query += ` AND user_id = $` + itoa(n)
		args = append(args, *f.UserID)
	}
	if f.RequestType != "" {
		n++
		query += ` AND request_type = $` + itoa(n)
		args = append(args, f.RequestType)
	}
	if f.Status != "" {
		n++
		query += ` AND status = $` + itoa(n)
		args = append(args, f.Status)
	}
	query += ` ORDER BY created_at DESC`

	requests := []*domain.Request{}
	err := r.db.SelectContext(ctx, &requests, query, args...)
	return requests, err
}

// AdminUpdate is the admin-side mutation: status, notes and payment
// fields in one statement. Nil pointers leave a column untouched.
type AdminUpdate struct {
	Status             *domain.RequestStatus
	AdminNotes         *string
	PaymentStatus      *domain.RequestPaymentStatus
	PaymentInfo        *string
	PaymentConfirmedAt *time.Time
	PaymentConfirmedBy *int64
}

func (r *RequestRepository) ApplyAdminUpdate(ctx context.Context, id int64, u AdminUpdate) error {
	query := `UPDATE requests SET updated_at = $1`
	args := []any{time.Now().UTC()}
	n := 1

	set := func(col string, v any) {
		n++
		query += `, ` + col + ` = $` + itoa(n)
		args = append(args, v)
	}

	if u.Status != nil {
		set("status", *u.Status)
	}
	if u.AdminNotes != nil {
		set("admin_notes", *u.AdminNotes)
	}
	if u.PaymentStatus != nil {
		set("payment_status", *u.PaymentStatus)
	}
	if u.PaymentInfo != nil {
		set("payment_info", *u.PaymentInfo)
	}
	if u.PaymentConfirmedAt != nil {
		set("payment_confirmed_at", *u.PaymentConfirmedAt)
	}
	if u.PaymentConfirmedBy != nil {
		set("payment_confirmed_by", *u.PaymentConfirmedBy)
	}

	n++
	query += ` WHERE id = $` + itoa(n)
	args = append(args, id)

	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

// SetPaymentStatus is the single user-facing transition
// (payment_received).
func (r *RequestRepository) SetPaymentStatus(ctx context.Context, id int64, status domain.RequestPaymentStatus) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE requests SET payment_status = $1, updated_at = $2 WHERE id = $3`,
		status, time.Now().UTC(), id,
	)
	return err
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
