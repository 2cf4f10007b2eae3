package skill

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Category string

const (
	CategorySoft Category = "soft"
	CategoryHard Category = "hard"
)

type Source string

const (
	SourceResume   Source = "resume"
	SourceLinkedin Source = "linkedin"
	SourceVideo    Source = "video"
)

// Skill is a user competence with a 0-100 strength.
type Skill struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Name        string    `json:"name"`
	Strength    int       `json:"strength"`
	Category    Category  `json:"category"`
	Source      Source    `json:"source"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

var ErrInvalidSkill = errors.New("invalid skill")

// Validate checks ranges and enums.
func (s Skill) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidSkill)
	}
	if s.Strength < 0 || s.Strength > 100 {
		return fmt.Errorf("%w: %s strength %d out of 0..100", ErrInvalidSkill, s.Name, s.Strength)
	}
	switch s.Category {
	case CategorySoft, CategoryHard:
	default:
		return fmt.Errorf("%w: %s category %q", ErrInvalidSkill, s.Name, s.Category)
	}
	switch s.Source {
	case SourceResume, SourceLinkedin, SourceVideo:
	default:
		return fmt.Errorf("%w: %s source %q", ErrInvalidSkill, s.Name, s.Source)
	}
	return nil
}

// Repository persists skills per user.
type Repository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Skill, error)
	// ReplaceForUser atomically removes all skills of the user and inserts the given ones.
	ReplaceForUser(ctx context.Context, userID uuid.UUID, skills []Skill) error
}

// AnalysisMarker records on the profile that skills were generated.
type AnalysisMarker interface {
	MarkSkillsAnalyzed(ctx context.Context, userID uuid.UUID) error
}
