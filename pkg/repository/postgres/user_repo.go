package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/synapse-hq/synapse/pkg/auth"
)

// UserRepository implements auth.UserRepository backed by PostgreSQL (pgx).
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// flagColumns whitelists the columns SetFlag may touch.
var flagColumns = map[auth.Flag]string{
	auth.FlagLinkedinConnected:   "linkedin_connected",
	auth.FlagResumeUploaded:      "resume_uploaded",
	auth.FlagVideoUploaded:       "video_uploaded",
	auth.FlagOnboardingCompleted: "onboarding_completed",
	auth.FlagAssessmentCompleted: "assessment_completed",
}

const userColumns = `id, email, password_hash, name, role,
	linkedin_connected, resume_uploaded, video_uploaded, onboarding_completed, assessment_completed,
	created_at`

func (r *UserRepository) Create(ctx context.Context, user auth.User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, name, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, user.ID, strings.ToLower(user.Email), user.PasswordHash, user.Name, string(user.Role), user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return auth.ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	return r.scanOne(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, strings.ToLower(email)))
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (auth.User, error) {
	return r.scanOne(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *UserRepository) SetName(ctx context.Context, id uuid.UUID, name string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE users SET name = $2 WHERE id = $1`, id, name)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return auth.ErrNotFound
	}
	return nil
}

func (r *UserRepository) SetFlag(ctx context.Context, id uuid.UUID, flag auth.Flag) error {
	col, ok := flagColumns[flag]
	if !ok {
		return fmt.Errorf("unknown user flag %q", flag)
	}
	tag, err := r.pool.Exec(ctx, `UPDATE users SET `+col+` = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return auth.ErrNotFound
	}
	return nil
}

func (r *UserRepository) scanOne(row pgx.Row) (auth.User, error) {
	var user auth.User
	var role string
	var createdAt time.Time
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Name, &role,
		&user.Flags.LinkedinConnected, &user.Flags.ResumeUploaded, &user.Flags.VideoUploaded,
		&user.Flags.OnboardingCompleted, &user.Flags.AssessmentCompleted, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.User{}, auth.ErrNotFound
		}
		return auth.User{}, err
	}
	user.Role = auth.Role(role)
	user.CreatedAt = createdAt.UTC()
	return user, nil
}
