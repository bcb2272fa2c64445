package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Chendasum/7daymoneyflowreset/internal/domain/entities"
)

var ErrUserNotFound = errors.New("user not found")

// UserRepository provides access to user data in the database.
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository with the provided database pool.
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// FindByID returns the user with the given Telegram ID.
// Returns ErrUserNotFound if no such user exists.
func (r *UserRepository) FindByID(ctx context.Context, userID int64) (*entities.User, error) {
	query := `
    SELECT id, chat_id, username, is_paid, COALESCE(tier, ''), COALESCE(tier_price, 0), payment_date, created_at
    FROM users
    WHERE id = $1
    `

	var u entities.User
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&u.ID,
		&u.ChatID,
		&u.Username,
		&u.IsPaid,
		&u.Tier,
		&u.TierPrice,
		&u.PaymentDate,
		&u.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user %d: %w", userID, err)
	}

	return &u, nil
}

// Ensure inserts a new user or refreshes chat and username for an existing one.
// Payment fields are never touched here; they belong to the payment flow.
func (r *UserRepository) Ensure(ctx context.Context, user *entities.User) error {
	query := `
    INSERT INTO users (id, chat_id, username)
    VALUES ($1, $2, $3)
    ON CONFLICT (id) DO UPDATE
    SET chat_id = EXCLUDED.chat_id, username = EXCLUDED.username
    RETURNING is_paid, created_at
    `
	err := r.db.QueryRow(ctx, query, user.ID, user.ChatID, user.Username).
		Scan(&user.IsPaid, &user.CreatedAt)
	if err != nil {
		return fmt.Errorf("ensure user %d: %w", user.ID, err)
	}

	return nil
}
