package trajectory

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UseCase lists and (re)generates career trajectories.
type UseCase interface {
	List(ctx context.Context, userID uuid.UUID) ([]Trajectory, error)
	Get(ctx context.Context, userID, id uuid.UUID) (Trajectory, error)
	Generate(ctx context.Context, userID uuid.UUID) ([]Trajectory, error)
}

type service struct {
	repo  Repository
	seeds []Trajectory
}

func NewService(repo Repository, seeds []Trajectory) UseCase {
	return &service{repo: repo, seeds: seeds}
}

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]Trajectory, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Trajectory{}
	}
	return items, nil
}

func (s *service) Get(ctx context.Context, userID, id uuid.UUID) (Trajectory, error) {
	return s.repo.GetForOwner(ctx, userID, id)
}

func (s *service) Generate(ctx context.Context, userID uuid.UUID) ([]Trajectory, error) {
	now := time.Now().UTC()
	out := make([]Trajectory, 0, len(s.seeds))
	for _, seed := range s.seeds {
		t := seed
		t.ID = uuid.New()
		t.UserID = userID
		t.CreatedAt = now
		t.RequiredSkills = append([]string{}, seed.RequiredSkills...)
		if seed.SalaryRange != nil {
			r := *seed.SalaryRange
			t.SalaryRange = &r
		}
		if err := t.Validate(); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := s.repo.ReplaceForUser(ctx, userID, out); err != nil {
		return nil, err
	}
	return out, nil
}
