package portfolio

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/synapse-hq/synapse/pkg/project"
)

// Projects resolves the project an entry is derived from.
type Projects interface {
	Get(ctx context.Context, userID, id uuid.UUID) (project.Project, error)
}

type AddInput struct {
	ProjectID     uuid.UUID
	Title         string
	Role          string
	Description   string
	CoverImageURL string
	IsPublic      bool
}

type UseCase interface {
	List(ctx context.Context, userID uuid.UUID) ([]Entry, error)
	ListPublic(ctx context.Context, userID uuid.UUID) ([]Entry, error)
	Add(ctx context.Context, userID uuid.UUID, in AddInput) (Entry, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type service struct {
	repo     Repository
	projects Projects
}

func NewService(repo Repository, projects Projects) UseCase {
	return &service{repo: repo, projects: projects}
}

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]Entry, error) {
	return s.list(ctx, userID, false)
}

func (s *service) ListPublic(ctx context.Context, userID uuid.UUID) ([]Entry, error) {
	return s.list(ctx, userID, true)
}

func (s *service) list(ctx context.Context, userID uuid.UUID, publicOnly bool) ([]Entry, error) {
	items, err := s.repo.ListByOwner(ctx, userID, publicOnly)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Entry{}
	}
	return items, nil
}

// Add defaults empty title/role/description to the project's own values.
func (s *service) Add(ctx context.Context, userID uuid.UUID, in AddInput) (Entry, error) {
	p, err := s.projects.Get(ctx, userID, in.ProjectID)
	if err != nil {
		return Entry{}, err
	}
	if p.Status != project.StatusCompleted {
		return Entry{}, ErrProjectNotCompleted
	}
	e := Entry{
		ID:            uuid.New(),
		UserID:        userID,
		ProjectID:     p.ID,
		Title:         firstNonEmpty(in.Title, p.Title),
		Role:          firstNonEmpty(in.Role, p.Role),
		Description:   firstNonEmpty(in.Description, p.Brief),
		CoverImageURL: strings.TrimSpace(in.CoverImageURL),
		IsPublic:      in.IsPublic,
		CompletedAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return Entry{}, err
	}
	return e, nil
}

func (s *service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.DeleteForOwner(ctx, userID, id)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
