// Package dashboard assembles the home screen of a user.
package dashboard

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/synapse-hq/synapse/pkg/onboarding"
	"github.com/synapse-hq/synapse/pkg/portfolio"
	"github.com/synapse-hq/synapse/pkg/project"
	"github.com/synapse-hq/synapse/pkg/skill"
	"github.com/synapse-hq/synapse/pkg/trajectory"
)

type (
	Onboarding interface {
		Status(ctx context.Context, userID uuid.UUID) (onboarding.Status, error)
	}
	Skills interface {
		List(ctx context.Context, userID uuid.UUID) ([]skill.Skill, error)
	}
	Trajectories interface {
		List(ctx context.Context, userID uuid.UUID) ([]trajectory.Trajectory, error)
	}
	Projects interface {
		List(ctx context.Context, userID uuid.UUID) ([]project.Project, error)
	}
	Portfolio interface {
		List(ctx context.Context, userID uuid.UUID) ([]portfolio.Entry, error)
	}
)

type Stats struct {
	Skills            int `json:"skills"`
	Trajectories      int `json:"trajectories"`
	ProjectsActive    int `json:"projectsActive"`
	ProjectsCompleted int `json:"projectsCompleted"`
	PortfolioEntries  int `json:"portfolioEntries"`
}

// View is the dashboard payload. Limited views only carry onboarding status;
// full views always carry the four lists, empty or not.
type View struct {
	Onboarding   onboarding.Status       `json:"onboarding"`
	Limited      bool                    `json:"limited"`
	Skills       []skill.Skill           `json:"skills"`
	Trajectories []trajectory.Trajectory `json:"trajectories"`
	Projects     []project.Project       `json:"projects"`
	Portfolio    []portfolio.Entry       `json:"portfolio"`
	Stats        *Stats                  `json:"stats,omitempty"`
}

type UseCase interface {
	Get(ctx context.Context, userID uuid.UUID) (View, error)
}

type service struct {
	onboarding   Onboarding
	skills       Skills
	trajectories Trajectories
	projects     Projects
	portfolio    Portfolio
}

func NewService(o Onboarding, s Skills, t Trajectories, p Projects, pf Portfolio) UseCase {
	return &service{onboarding: o, skills: s, trajectories: t, projects: p, portfolio: pf}
}

func (s *service) Get(ctx context.Context, userID uuid.UUID) (View, error) {
	st, err := s.onboarding.Status(ctx, userID)
	if err != nil {
		return View{}, err
	}
	if !st.CanAccessDashboard {
		return View{Onboarding: st, Limited: true}, nil
	}

	v := View{Onboarding: st}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := s.skills.List(gctx, userID)
		v.Skills = orEmpty(items)
		return err
	})
	g.Go(func() error {
		items, err := s.trajectories.List(gctx, userID)
		v.Trajectories = orEmpty(items)
		return err
	})
	g.Go(func() error {
		items, err := s.projects.List(gctx, userID)
		v.Projects = orEmpty(items)
		return err
	})
	g.Go(func() error {
		items, err := s.portfolio.List(gctx, userID)
		v.Portfolio = orEmpty(items)
		return err
	})
	if err := g.Wait(); err != nil {
		return View{}, err
	}

	stats := &Stats{
		Skills:           len(v.Skills),
		Trajectories:     len(v.Trajectories),
		PortfolioEntries: len(v.Portfolio),
	}
	for _, p := range v.Projects {
		if p.Status == project.StatusCompleted {
			stats.ProjectsCompleted++
		} else {
			stats.ProjectsActive++
		}
	}
	v.Stats = stats
	return v, nil
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
