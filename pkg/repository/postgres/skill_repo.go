package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/synapse-hq/synapse/pkg/skill"
)

type SkillRepository struct {
	pool *pgxpool.Pool
}

func NewSkillRepository(pool *pgxpool.Pool) *SkillRepository {
	return &SkillRepository{pool: pool}
}

func (r *SkillRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]skill.Skill, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, user_id, name, strength, category, source, description, created_at
FROM skills WHERE user_id = $1
ORDER BY strength DESC, name
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []skill.Skill{}
	for rows.Next() {
		var s skill.Skill
		var category, source string
		var createdAt time.Time
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Strength, &category, &source, &s.Description, &createdAt); err != nil {
			return nil, err
		}
		s.Category = skill.Category(category)
		s.Source = skill.Source(source)
		s.CreatedAt = createdAt.UTC()
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SkillRepository) ReplaceForUser(ctx context.Context, userID uuid.UUID, skills []skill.Skill) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM skills WHERE user_id = $1`, userID); err != nil {
			return err
		}
		batch := &pgx.Batch{}
		for _, s := range skills {
			batch.Queue(`
INSERT INTO skills (id, user_id, name, strength, category, source, description, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`, s.ID, userID, s.Name, s.Strength, string(s.Category), string(s.Source), s.Description, s.CreatedAt)
		}
		return tx.SendBatch(ctx, batch).Close()
	})
}
