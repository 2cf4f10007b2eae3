package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/synapse-hq/synapse/pkg/document"
	"github.com/synapse-hq/synapse/pkg/profile"
)

// ProfileRepository stores profiles and upload metadata.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

func (r *ProfileRepository) Get(ctx context.Context, userID uuid.UUID) (profile.Profile, error) {
	row := r.pool.QueryRow(ctx, `
SELECT user_id, linkedin_data, resume_file_id, video_file_id, resume_text,
       skills_analyzed, assessment_answers, updated_at
FROM profiles WHERE user_id = $1
`, userID)
	var p profile.Profile
	var updatedAt time.Time
	err := row.Scan(&p.UserID, &p.LinkedinData, &p.ResumeFileID, &p.VideoFileID, &p.ResumeText,
		&p.SkillsAnalyzed, &p.AssessmentAnswers, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.Profile{}, profile.ErrNotFound
		}
		return profile.Profile{}, err
	}
	p.UpdatedAt = updatedAt.UTC()
	return p, nil
}

func (r *ProfileRepository) UpsertLinkedin(ctx context.Context, userID uuid.UUID, data profile.LinkedinData, at time.Time) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO profiles (user_id, linkedin_data, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (user_id) DO UPDATE SET linkedin_data = EXCLUDED.linkedin_data, updated_at = EXCLUDED.updated_at
`, userID, data, at)
	return err
}

func (r *ProfileRepository) UpsertAssessment(ctx context.Context, userID uuid.UUID, answers profile.AssessmentAnswers, at time.Time) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO profiles (user_id, assessment_answers, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (user_id) DO UPDATE SET assessment_answers = EXCLUDED.assessment_answers, updated_at = EXCLUDED.updated_at
`, userID, answers, at)
	return err
}

// AttachUpload inserts the upload row and points the profile at it in one transaction.
func (r *ProfileRepository) AttachUpload(ctx context.Context, up profile.Upload, resumeText string) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
INSERT INTO uploads (id, owner_id, kind, filename, mime_type, size_bytes, storage_uri, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`, up.ID, up.OwnerID, string(up.Kind), up.Filename, up.MimeType, up.Size, up.StorageURI, up.CreatedAt); err != nil {
			return err
		}

		var q string
		args := []any{up.OwnerID, up.ID, up.CreatedAt}
		switch up.Kind {
		case document.KindResume:
			q = `
INSERT INTO profiles (user_id, resume_file_id, resume_text, updated_at)
VALUES ($1, $2, $4, $3)
ON CONFLICT (user_id) DO UPDATE SET resume_file_id = EXCLUDED.resume_file_id,
	resume_text = EXCLUDED.resume_text, updated_at = EXCLUDED.updated_at`
			args = append(args, resumeText)
		case document.KindVideo:
			q = `
INSERT INTO profiles (user_id, video_file_id, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (user_id) DO UPDATE SET video_file_id = EXCLUDED.video_file_id, updated_at = EXCLUDED.updated_at`
		default:
			return fmt.Errorf("unknown upload kind %q", up.Kind)
		}
		_, err := tx.Exec(ctx, q, args...)
		return err
	})
}

func (r *ProfileRepository) GetUpload(ctx context.Context, ownerID, id uuid.UUID) (profile.Upload, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, owner_id, kind, filename, mime_type, size_bytes, storage_uri, created_at
FROM uploads WHERE id = $1 AND owner_id = $2
`, id, ownerID)
	var up profile.Upload
	var kind string
	if err := row.Scan(&up.ID, &up.OwnerID, &kind, &up.Filename, &up.MimeType, &up.Size, &up.StorageURI, &up.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.Upload{}, profile.ErrUploadNotFound
		}
		return profile.Upload{}, err
	}
	up.Kind = document.Kind(kind)
	up.CreatedAt = up.CreatedAt.UTC()
	return up, nil
}

func (r *ProfileRepository) MarkSkillsAnalyzed(ctx context.Context, userID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO profiles (user_id, skills_analyzed, updated_at)
VALUES ($1, TRUE, now())
ON CONFLICT (user_id) DO UPDATE SET skills_analyzed = TRUE, updated_at = now()
`, userID)
	return err
}
