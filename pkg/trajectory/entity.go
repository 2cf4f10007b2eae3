package trajectory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type GrowthTrend string

const (
	TrendUp     GrowthTrend = "up"
	TrendDown   GrowthTrend = "down"
	TrendStable GrowthTrend = "stable"
)

type SalaryRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Trajectory is a suggested career path with a match score.
type Trajectory struct {
	ID              uuid.UUID    `json:"id"`
	UserID          uuid.UUID    `json:"userId"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	GrowthTrend     GrowthTrend  `json:"growthTrend"`
	MatchPercentage int          `json:"matchPercentage"`
	RequiredSkills  []string     `json:"requiredSkills"`
	WhyMatch        string       `json:"whyMatch"`
	Industry        string       `json:"industry"`
	SalaryRange     *SalaryRange `json:"salaryRange,omitempty"`
	CreatedAt       time.Time    `json:"createdAt"`
}

var (
	ErrNotFound          = errors.New("trajectory not found")
	ErrInvalidTrajectory = errors.New("invalid trajectory")
)

func (t Trajectory) Validate() error {
	if t.Title == "" {
		return fmt.Errorf("%w: empty title", ErrInvalidTrajectory)
	}
	if t.MatchPercentage < 0 || t.MatchPercentage > 100 {
		return fmt.Errorf("%w: %s match %d out of 0..100", ErrInvalidTrajectory, t.Title, t.MatchPercentage)
	}
	switch t.GrowthTrend {
	case TrendUp, TrendDown, TrendStable:
	default:
		return fmt.Errorf("%w: %s trend %q", ErrInvalidTrajectory, t.Title, t.GrowthTrend)
	}
	if r := t.SalaryRange; r != nil && (r.Min < 0 || r.Max < r.Min) {
		return fmt.Errorf("%w: %s salary range %d..%d", ErrInvalidTrajectory, t.Title, r.Min, r.Max)
	}
	return nil
}

// Repository persists trajectories per user.
type Repository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Trajectory, error)
	GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (Trajectory, error)
	// ReplaceForUser atomically removes all trajectories of the user and inserts the given ones.
	ReplaceForUser(ctx context.Context, userID uuid.UUID, items []Trajectory) error
}
