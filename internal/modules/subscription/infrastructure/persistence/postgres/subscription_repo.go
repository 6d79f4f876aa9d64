package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/TuaBBL/beatbookingslive/internal/modules/subscription/domain"
)

type PgSubscriptionRepository struct {
	db *sqlx.DB
}

func NewSubscriptionRepository(db *sqlx.DB) *PgSubscriptionRepository {
	return &PgSubscriptionRepository{db: db}
}

// GetByUserID returns nil, nil when the user has no subscription row
func (r *PgSubscriptionRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Subscription, error) {
	sub := &domain.Subscription{}
	query := `SELECT * FROM subscriptions WHERE user_id = $1`
	err := r.db.GetContext(ctx, sub, query, userID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// CreatePending upserts the user's row back to pending with a fresh order
// id. A free-forever grant is never downgraded here; the flag survives the
// upsert untouched.
func (r *PgSubscriptionRepository) CreatePending(ctx context.Context, sub *domain.Subscription) error {
	now := time.Now()
	sub.CreatedAt = now
	sub.UpdatedAt = now
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	sub.Status = domain.StatusPending

	query := `INSERT INTO subscriptions (id, user_id, status, razorpay_order_id, amount, currency, created_at, updated_at)
		VALUES (:id, :user_id, :status, :razorpay_order_id, :amount, :currency, :created_at, :updated_at)
		ON CONFLICT (user_id) DO UPDATE SET
			status = EXCLUDED.status,
			razorpay_order_id = EXCLUDED.razorpay_order_id,
			razorpay_payment_id = NULL,
			amount = EXCLUDED.amount,
			currency = EXCLUDED.currency,
			updated_at = EXCLUDED.updated_at`
	_, err := r.db.NamedExecContext(ctx, query, sub)
	return err
}

// Activate marks the user's subscription active and records the payment id
func (r *PgSubscriptionRepository) Activate(ctx context.Context, userID uuid.UUID, razorpayPaymentID string) error {
	query := `UPDATE subscriptions SET
			status = $2,
			razorpay_payment_id = $3,
			activated_at = NOW(),
			updated_at = NOW()
		WHERE user_id = $1`
	result, err := r.db.ExecContext(ctx, query, userID, domain.StatusActive, razorpayPaymentID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrSubscriptionMissing
	}
	return nil
}
