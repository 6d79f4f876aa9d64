package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/TuaBBL/beatbookingslive/internal/modules/artist/domain"
)

type PgCardRepository struct {
	db *sqlx.DB
}

func NewCardRepository(db *sqlx.DB) *PgCardRepository {
	return &PgCardRepository{db: db}
}

// GetByUserID returns nil, nil when the user has no card
func (r *PgCardRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Card, error) {
	card := &domain.Card{}
	query := `SELECT * FROM artist_cards WHERE user_id = $1`
	err := r.db.GetContext(ctx, card, query, userID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return card, nil
}

// GetProfileByUserID returns nil, nil when no artist profile exists
func (r *PgCardRepository) GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*domain.ArtistProfile, error) {
	profile := &domain.ArtistProfile{}
	query := `SELECT * FROM artist_profiles WHERE user_id = $1`
	err := r.db.GetContext(ctx, profile, query, userID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// Save inserts or updates the artist card and upserts the linked artist
// profile inside one transaction, closing the inconsistency window between
// the two writes. Returns true when a new card row was created.
func (r *PgCardRepository) Save(ctx context.Context, card *domain.Card, artistProfile *domain.ArtistProfile) (bool, error) {
	now := time.Now()
	card.UpdatedAt = now
	created := card.ID == 0

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	if created {
		card.CreatedAt = now
		insertQuery := `INSERT INTO artist_cards (
				user_id, name, stage_name, category, genre, location, locations, state_territories,
				about, cost, cost_type, image_url, additional_images, video_urls,
				youtube_link, instagram_link, facebook_link, soundcloud_link, mixcloud_link, spotify_link, tiktok_link,
				availability, rating, email, phone, created_at, updated_at)
			VALUES (
				:user_id, :name, :stage_name, :category, :genre, :location, :locations, :state_territories,
				:about, :cost, :cost_type, :image_url, :additional_images, :video_urls,
				:youtube_link, :instagram_link, :facebook_link, :soundcloud_link, :mixcloud_link, :spotify_link, :tiktok_link,
				:availability, :rating, :email, :phone, :created_at, :updated_at)
			RETURNING id`
		rows, err := sqlx.NamedQueryContext(ctx, tx, insertQuery, card)
		if err != nil {
			return false, err
		}
		if rows.Next() {
			if err := rows.Scan(&card.ID); err != nil {
				rows.Close()
				return false, err
			}
		}
		rows.Close()
	} else {
		updateQuery := `UPDATE artist_cards SET
				name = :name, stage_name = :stage_name, category = :category, genre = :genre,
				location = :location, locations = :locations, state_territories = :state_territories,
				about = :about, cost = :cost, cost_type = :cost_type, image_url = :image_url,
				additional_images = :additional_images, video_urls = :video_urls,
				youtube_link = :youtube_link, instagram_link = :instagram_link, facebook_link = :facebook_link,
				soundcloud_link = :soundcloud_link, mixcloud_link = :mixcloud_link, spotify_link = :spotify_link,
				tiktok_link = :tiktok_link, availability = :availability, email = :email, phone = :phone,
				updated_at = :updated_at
			WHERE id = :id`
		if _, err := tx.NamedExecContext(ctx, updateQuery, card); err != nil {
			return false, err
		}
	}

	artistProfile.ArtistCardID = card.ID
	artistProfile.UpdatedAt = now
	upsertQuery := `INSERT INTO artist_profiles (user_id, artist_card_id, email, phone, profile_completed, created_at, updated_at)
		VALUES (:user_id, :artist_card_id, :email, :phone, :profile_completed, :updated_at, :updated_at)
		ON CONFLICT (user_id) DO UPDATE SET
			artist_card_id = EXCLUDED.artist_card_id,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			profile_completed = EXCLUDED.profile_completed,
			updated_at = EXCLUDED.updated_at`
	if _, err := tx.NamedExecContext(ctx, upsertQuery, artistProfile); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return created, nil
}
