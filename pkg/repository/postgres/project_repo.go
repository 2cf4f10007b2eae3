package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/synapse-hq/synapse/pkg/project"
)

// ProjectRepository stores projects and their single feedback row.
type ProjectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

const projectColumns = `id, user_id, trajectory_id, title, brief, role, status, resources,
	work_content, submitted_at, created_at, updated_at`

func scanProject(row pgx.Row) (project.Project, error) {
	var p project.Project
	var status string
	if err := row.Scan(&p.ID, &p.UserID, &p.TrajectoryID, &p.Title, &p.Brief, &p.Role, &status, &p.Resources,
		&p.WorkContent, &p.SubmittedAt, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrNotFound
		}
		return project.Project{}, err
	}
	p.Status = project.Status(status)
	if p.Resources == nil {
		p.Resources = []project.Resource{}
	}
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	if p.SubmittedAt != nil {
		t := p.SubmittedAt.UTC()
		p.SubmittedAt = &t
	}
	return p, nil
}

func (r *ProjectRepository) Create(ctx context.Context, p project.Project) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO projects (`+projectColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
`, p.ID, p.UserID, p.TrajectoryID, p.Title, p.Brief, p.Role, string(p.Status), p.Resources,
		p.WorkContent, p.SubmittedAt, p.CreatedAt, p.UpdatedAt)
	return err
}

func (r *ProjectRepository) GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (project.Project, error) {
	return scanProject(r.pool.QueryRow(ctx, `
SELECT `+projectColumns+` FROM projects WHERE id = $1 AND user_id = $2
`, id, ownerID))
}

func (r *ProjectRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]project.Project, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+projectColumns+` FROM projects WHERE user_id = $1 ORDER BY created_at DESC
`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []project.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProjectRepository) UpdateContent(ctx context.Context, ownerID, id uuid.UUID, content string, at time.Time) (project.Project, error) {
	p, err := scanProject(r.pool.QueryRow(ctx, `
UPDATE projects SET work_content = $3, status = 'in_progress', updated_at = $4
WHERE id = $1 AND user_id = $2 AND status IN ('not_started', 'in_progress')
RETURNING `+projectColumns, id, ownerID, content, at))
	if !errors.Is(err, project.ErrNotFound) {
		return p, err
	}
	// Either the project is missing or it is already past editing.
	cur, getErr := r.GetForOwner(ctx, ownerID, id)
	if getErr != nil {
		return project.Project{}, getErr
	}
	return project.Project{}, fmt.Errorf("%w: project is %s", project.ErrInvalidTransition, cur.Status)
}

// Submit locks the project row, records the submission and its feedback, then completes it.
func (r *ProjectRepository) Submit(ctx context.Context, ownerID, id uuid.UUID, fb project.Feedback, at time.Time) (project.Feedback, error) {
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		var status string
		err := tx.QueryRow(ctx, `SELECT status FROM projects WHERE id = $1 AND user_id = $2 FOR UPDATE`, id, ownerID).Scan(&status)
		if errors.Is(err, pgx.ErrNoRows) {
			return project.ErrNotFound
		}
		if err != nil {
			return err
		}
		if !project.Status(status).Submittable() {
			return fmt.Errorf("%w: project is %s", project.ErrInvalidTransition, status)
		}

		if _, err := tx.Exec(ctx, `
UPDATE projects SET status = 'submitted', submitted_at = $2, updated_at = $2 WHERE id = $1
`, id, at); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `
INSERT INTO feedback (id, project_id, user_id, overall_score, rubric, comments, general_feedback, next_steps, mentor_persona, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`, fb.ID, id, ownerID, fb.OverallScore, fb.Rubric, fb.Comments, fb.GeneralFeedback, fb.NextSteps, fb.MentorPersona, fb.CreatedAt); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: feedback already exists", project.ErrInvalidTransition)
			}
			return err
		}
		_, err = tx.Exec(ctx, `UPDATE projects SET status = 'completed', updated_at = $2 WHERE id = $1`, id, at)
		return err
	})
	if err != nil {
		return project.Feedback{}, err
	}
	fb.ProjectID = id
	fb.UserID = ownerID
	return fb, nil
}

func (r *ProjectRepository) GetFeedback(ctx context.Context, ownerID, projectID uuid.UUID) (project.Feedback, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, project_id, user_id, overall_score, rubric, comments, general_feedback, next_steps, mentor_persona, created_at
FROM feedback WHERE project_id = $1 AND user_id = $2
`, projectID, ownerID)
	var fb project.Feedback
	if err := row.Scan(&fb.ID, &fb.ProjectID, &fb.UserID, &fb.OverallScore, &fb.Rubric, &fb.Comments,
		&fb.GeneralFeedback, &fb.NextSteps, &fb.MentorPersona, &fb.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Feedback{}, project.ErrFeedbackNotFound
		}
		return project.Feedback{}, err
	}
	if fb.Comments == nil {
		fb.Comments = []project.Comment{}
	}
	if fb.NextSteps == nil {
		fb.NextSteps = []string{}
	}
	fb.CreatedAt = fb.CreatedAt.UTC()
	return fb, nil
}
