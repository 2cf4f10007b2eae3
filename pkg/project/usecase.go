package project

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/synapse-hq/synapse/pkg/trajectory"
)

// Trajectories resolves the trajectory a new project is attached to.
type Trajectories interface {
	GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (trajectory.Trajectory, error)
}

// Template is the fixed material a project gets: starter resources and the mentor review.
type Template struct {
	Resources []Resource
	Feedback  Feedback
}

type CreateInput struct {
	TrajectoryID uuid.UUID
	Title        string
	Brief        string
	Role         string
}

// UseCase drives the micro-internship lifecycle.
type UseCase interface {
	Create(ctx context.Context, userID uuid.UUID, in CreateInput) (Project, error)
	Get(ctx context.Context, userID, id uuid.UUID) (Project, error)
	List(ctx context.Context, userID uuid.UUID) ([]Project, error)
	UpdateContent(ctx context.Context, userID, id uuid.UUID, content string) (Project, error)
	Submit(ctx context.Context, userID, id uuid.UUID) (Feedback, error)
	Feedback(ctx context.Context, userID, id uuid.UUID) (Feedback, error)
}

type service struct {
	repo         Repository
	trajectories Trajectories
	tmpl         Template
	now          func() time.Time
}

func NewService(repo Repository, trajectories Trajectories, tmpl Template) UseCase {
	return &service{
		repo:         repo,
		trajectories: trajectories,
		tmpl:         tmpl,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, in CreateInput) (Project, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Brief = strings.TrimSpace(in.Brief)
	in.Role = strings.TrimSpace(in.Role)
	if in.Title == "" || in.Brief == "" || in.Role == "" {
		return Project{}, fmt.Errorf("%w: title, brief and role are required", ErrValidation)
	}
	if _, err := s.trajectories.GetForOwner(ctx, userID, in.TrajectoryID); err != nil {
		return Project{}, err
	}
	now := s.now()
	trajectoryID := in.TrajectoryID
	p := Project{
		ID:           uuid.New(),
		UserID:       userID,
		TrajectoryID: &trajectoryID,
		Title:        in.Title,
		Brief:        in.Brief,
		Role:         in.Role,
		Status:       StatusNotStarted,
		Resources:    append([]Resource{}, s.tmpl.Resources...),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return Project{}, err
	}
	return p, nil
}

func (s *service) Get(ctx context.Context, userID, id uuid.UUID) (Project, error) {
	return s.repo.GetForOwner(ctx, userID, id)
}

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]Project, error) {
	items, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Project{}
	}
	return items, nil
}

func (s *service) UpdateContent(ctx context.Context, userID, id uuid.UUID, content string) (Project, error) {
	p, err := s.repo.GetForOwner(ctx, userID, id)
	if err != nil {
		return Project{}, err
	}
	if !p.Status.Editable() {
		return Project{}, fmt.Errorf("%w: project is %s", ErrInvalidTransition, p.Status)
	}
	return s.repo.UpdateContent(ctx, userID, id, content, s.now())
}

func (s *service) Submit(ctx context.Context, userID, id uuid.UUID) (Feedback, error) {
	p, err := s.repo.GetForOwner(ctx, userID, id)
	if err != nil {
		return Feedback{}, err
	}
	if !p.Status.Submittable() {
		return Feedback{}, fmt.Errorf("%w: project is %s", ErrInvalidTransition, p.Status)
	}
	now := s.now()
	fb := s.tmpl.Feedback
	fb.ID = uuid.New()
	fb.ProjectID = id
	fb.UserID = userID
	fb.CreatedAt = now
	fb.Comments = append([]Comment{}, s.tmpl.Feedback.Comments...)
	fb.NextSteps = append([]string{}, s.tmpl.Feedback.NextSteps...)
	return s.repo.Submit(ctx, userID, id, fb, now)
}

func (s *service) Feedback(ctx context.Context, userID, id uuid.UUID) (Feedback, error) {
	if _, err := s.repo.GetForOwner(ctx, userID, id); err != nil {
		return Feedback{}, err
	}
	return s.repo.GetFeedback(ctx, userID, id)
}
