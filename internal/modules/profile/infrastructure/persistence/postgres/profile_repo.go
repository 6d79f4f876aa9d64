package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/TuaBBL/beatbookingslive/internal/modules/profile/domain"
)

type PgProfileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) *PgProfileRepository {
	return &PgProfileRepository{db: db}
}

// GetByUserID returns nil, nil when no profile row exists for the user
func (r *PgProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	profile := &domain.Profile{}
	query := `SELECT * FROM profiles WHERE id = $1`
	err := r.db.GetContext(ctx, profile, query, userID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// Save updates the profiles row and the mirrored columns on users inside a
// single transaction, so the two tables can never diverge on a write.
func (r *PgProfileRepository) Save(ctx context.Context, p *domain.Profile) error {
	p.UpdatedAt = time.Now()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	profileQuery := `UPDATE profiles
		SET full_name = :full_name, location = :location, state_territory = :state_territory,
			phone_number = :phone_number, profile_image_url = :profile_image_url,
			profile_completed = :profile_completed, updated_at = :updated_at
		WHERE id = :id`
	if _, err := tx.NamedExecContext(ctx, profileQuery, p); err != nil {
		return err
	}

	userQuery := `UPDATE users
		SET full_name = :full_name, location = :location, state_territory = :state_territory,
			phone_number = :phone_number, profile_image_url = :profile_image_url,
			profile_completed = :profile_completed, updated_at = :updated_at
		WHERE id = :id`
	if _, err := tx.NamedExecContext(ctx, userQuery, p); err != nil {
		return err
	}

	return tx.Commit()
}
