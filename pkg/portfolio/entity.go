package portfolio

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Entry is a portfolio item derived from a completed project.
type Entry struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"userId"`
	ProjectID     uuid.UUID `json:"projectId"`
	Title         string    `json:"title"`
	Role          string    `json:"role"`
	Description   string    `json:"description"`
	CoverImageURL string    `json:"coverImageUrl,omitempty"`
	IsPublic      bool      `json:"isPublic"`
	CompletedAt   time.Time `json:"completedAt"`
}

var (
	ErrNotFound            = errors.New("portfolio entry not found")
	ErrAlreadyInPortfolio  = errors.New("project is already in the portfolio")
	ErrProjectNotCompleted = errors.New("only completed projects can be added to the portfolio")
)

type Repository interface {
	// Create returns ErrAlreadyInPortfolio when the project already has an entry.
	Create(ctx context.Context, e Entry) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID, publicOnly bool) ([]Entry, error)
	DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error
}
