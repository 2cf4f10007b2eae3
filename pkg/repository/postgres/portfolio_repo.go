package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/synapse-hq/synapse/pkg/portfolio"
)

type PortfolioRepository struct {
	pool *pgxpool.Pool
}

func NewPortfolioRepository(pool *pgxpool.Pool) *PortfolioRepository {
	return &PortfolioRepository{pool: pool}
}

func (r *PortfolioRepository) Create(ctx context.Context, e portfolio.Entry) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO portfolio (id, user_id, project_id, title, role, description, cover_image_url, is_public, completed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`, e.ID, e.UserID, e.ProjectID, e.Title, e.Role, e.Description, e.CoverImageURL, e.IsPublic, e.CompletedAt)
	if isUniqueViolation(err) {
		return portfolio.ErrAlreadyInPortfolio
	}
	return err
}

func (r *PortfolioRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, publicOnly bool) ([]portfolio.Entry, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, user_id, project_id, title, role, description, cover_image_url, is_public, completed_at
FROM portfolio
WHERE user_id = $1 AND (is_public OR NOT $2)
ORDER BY completed_at DESC
`, ownerID, publicOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []portfolio.Entry{}
	for rows.Next() {
		var e portfolio.Entry
		if err := rows.Scan(&e.ID, &e.UserID, &e.ProjectID, &e.Title, &e.Role, &e.Description,
			&e.CoverImageURL, &e.IsPublic, &e.CompletedAt); err != nil {
			return nil, err
		}
		e.CompletedAt = e.CompletedAt.UTC()
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *PortfolioRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM portfolio WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return portfolio.ErrNotFound
	}
	return nil
}
