package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/synapse-hq/synapse/pkg/trajectory"
)

type TrajectoryRepository struct {
	pool *pgxpool.Pool
}

func NewTrajectoryRepository(pool *pgxpool.Pool) *TrajectoryRepository {
	return &TrajectoryRepository{pool: pool}
}

const trajectoryColumns = `id, user_id, title, description, growth_trend, match_percentage,
	required_skills, why_match, industry, salary_min, salary_max, created_at`

func scanTrajectory(row pgx.Row) (trajectory.Trajectory, error) {
	var t trajectory.Trajectory
	var trend string
	var salaryMin, salaryMax *int
	var createdAt time.Time
	if err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &trend, &t.MatchPercentage,
		&t.RequiredSkills, &t.WhyMatch, &t.Industry, &salaryMin, &salaryMax, &createdAt); err != nil {
		return trajectory.Trajectory{}, err
	}
	t.GrowthTrend = trajectory.GrowthTrend(trend)
	if salaryMin != nil && salaryMax != nil {
		t.SalaryRange = &trajectory.SalaryRange{Min: *salaryMin, Max: *salaryMax}
	}
	if t.RequiredSkills == nil {
		t.RequiredSkills = []string{}
	}
	t.CreatedAt = createdAt.UTC()
	return t, nil
}

func (r *TrajectoryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]trajectory.Trajectory, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+trajectoryColumns+`
FROM trajectories WHERE user_id = $1
ORDER BY match_percentage DESC, title
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []trajectory.Trajectory{}
	for rows.Next() {
		t, err := scanTrajectory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TrajectoryRepository) GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (trajectory.Trajectory, error) {
	t, err := scanTrajectory(r.pool.QueryRow(ctx, `
SELECT `+trajectoryColumns+` FROM trajectories WHERE id = $1 AND user_id = $2
`, id, ownerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return trajectory.Trajectory{}, trajectory.ErrNotFound
	}
	return t, err
}

func (r *TrajectoryRepository) ReplaceForUser(ctx context.Context, userID uuid.UUID, items []trajectory.Trajectory) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM trajectories WHERE user_id = $1`, userID); err != nil {
			return err
		}
		batch := &pgx.Batch{}
		for _, t := range items {
			var salaryMin, salaryMax *int
			if t.SalaryRange != nil {
				salaryMin, salaryMax = &t.SalaryRange.Min, &t.SalaryRange.Max
			}
			batch.Queue(`
INSERT INTO trajectories (`+trajectoryColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
`, t.ID, userID, t.Title, t.Description, string(t.GrowthTrend), t.MatchPercentage,
				t.RequiredSkills, t.WhyMatch, t.Industry, salaryMin, salaryMax, t.CreatedAt)
		}
		return tx.SendBatch(ctx, batch).Close()
	})
}
