package skill

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UseCase lists and (re)generates user skills.
type UseCase interface {
	List(ctx context.Context, userID uuid.UUID) ([]Skill, error)
	Generate(ctx context.Context, userID uuid.UUID) ([]Skill, error)
}

type service struct {
	repo   Repository
	marker AnalysisMarker
	seeds  []Skill
	log    *zap.Logger
}

// NewService uses seeds as the fixed set inserted by Generate.
func NewService(repo Repository, marker AnalysisMarker, seeds []Skill, log *zap.Logger) UseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &service{repo: repo, marker: marker, seeds: seeds, log: log}
}

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]Skill, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Skill{}
	}
	return items, nil
}

func (s *service) Generate(ctx context.Context, userID uuid.UUID) ([]Skill, error) {
	now := time.Now().UTC()
	out := make([]Skill, 0, len(s.seeds))
	for _, seed := range s.seeds {
		sk := seed
		sk.ID = uuid.New()
		sk.UserID = userID
		sk.CreatedAt = now
		if err := sk.Validate(); err != nil {
			return nil, err
		}
		out = append(out, sk)
	}
	if err := s.repo.ReplaceForUser(ctx, userID, out); err != nil {
		return nil, err
	}
	if s.marker != nil {
		if err := s.marker.MarkSkillsAnalyzed(ctx, userID); err != nil {
			s.log.Warn("mark skills analyzed", zap.String("user_id", userID.String()), zap.Error(err))
		}
	}
	return out, nil
}
