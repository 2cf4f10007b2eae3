package onboarding

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/synapse-hq/synapse/pkg/auth"
)

// Step is one stage of the onboarding flow.
type Step string

const (
	StepLinkedin  Step = "linkedin"
	StepResume    Step = "resume"
	StepVideo     Step = "video"
	StepCompleted Step = "completed"
)

var (
	ErrUnknownStep          = errors.New("unknown onboarding step")
	ErrOnboardingIncomplete = errors.New("linkedin, resume and video steps must be completed first")
)

// ParseStep converts a raw string into a Step.
func ParseStep(s string) (Step, error) {
	switch Step(s) {
	case StepLinkedin, StepResume, StepVideo, StepCompleted:
		return Step(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStep, s)
}

func (s Step) flag() auth.Flag {
	switch s {
	case StepLinkedin:
		return auth.FlagLinkedinConnected
	case StepResume:
		return auth.FlagResumeUploaded
	case StepVideo:
		return auth.FlagVideoUploaded
	default:
		return auth.FlagOnboardingCompleted
	}
}

// Status is the onboarding view of a user.
type Status struct {
	Flags              auth.Flags `json:"flags"`
	NextStep           Step       `json:"nextStep,omitempty"`
	CanAccessDashboard bool       `json:"canAccessDashboard"`
}

// StatusOf derives the onboarding status from user flags.
// The dashboard is only reachable once linkedin, resume and video are all done.
func StatusOf(f auth.Flags) Status {
	st := Status{Flags: f}
	st.CanAccessDashboard = f.LinkedinConnected && f.ResumeUploaded && f.VideoUploaded
	switch {
	case !f.LinkedinConnected:
		st.NextStep = StepLinkedin
	case !f.ResumeUploaded:
		st.NextStep = StepResume
	case !f.VideoUploaded:
		st.NextStep = StepVideo
	case !f.OnboardingCompleted:
		st.NextStep = StepCompleted
	}
	return st
}

// Users is the part of the user store onboarding needs.
type Users interface {
	GetByID(ctx context.Context, id uuid.UUID) (auth.User, error)
	SetFlag(ctx context.Context, id uuid.UUID, flag auth.Flag) error
}

// UseCase tracks onboarding progress.
type UseCase interface {
	Status(ctx context.Context, userID uuid.UUID) (Status, error)
	CompleteStep(ctx context.Context, userID uuid.UUID, step Step) (Status, error)
}

type service struct {
	users Users
}

func NewService(users Users) UseCase { return &service{users: users} }

func (s *service) Status(ctx context.Context, userID uuid.UUID) (Status, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return Status{}, err
	}
	return StatusOf(u.Flags), nil
}

func (s *service) CompleteStep(ctx context.Context, userID uuid.UUID, step Step) (Status, error) {
	if _, err := ParseStep(string(step)); err != nil {
		return Status{}, err
	}
	if step == StepCompleted {
		st, err := s.Status(ctx, userID)
		if err != nil {
			return Status{}, err
		}
		if !st.CanAccessDashboard {
			return st, ErrOnboardingIncomplete
		}
	}
	if err := s.users.SetFlag(ctx, userID, step.flag()); err != nil {
		return Status{}, err
	}
	return s.Status(ctx, userID)
}
