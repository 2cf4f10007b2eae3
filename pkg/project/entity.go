package project

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type ResourceType string

const (
	ResourceVideo   ResourceType = "video"
	ResourceArticle ResourceType = "article"
	ResourceCourse  ResourceType = "course"
)

type Resource struct {
	Title string       `json:"title"`
	URL   string       `json:"url"`
	Type  ResourceType `json:"type"`
}

// Project is a simulated micro-internship assignment tied to a trajectory.
type Project struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"userId"`
	TrajectoryID *uuid.UUID `json:"trajectoryId,omitempty"`
	Title        string     `json:"title"`
	Brief        string     `json:"brief"`
	Role         string     `json:"role"`
	Status       Status     `json:"status"`
	Resources    []Resource `json:"resources"`
	WorkContent  string     `json:"workContent,omitempty"`
	SubmittedAt  *time.Time `json:"submittedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

type Rubric struct {
	Clarity    int `json:"clarity"`
	Creativity int `json:"creativity"`
	Accuracy   int `json:"accuracy"`
}

type CommentType string

const (
	CommentPositive    CommentType = "positive"
	CommentImprovement CommentType = "improvement"
	CommentSuggestion  CommentType = "suggestion"
)

type Comment struct {
	Section string      `json:"section"`
	Comment string      `json:"comment"`
	Type    CommentType `json:"type"`
}

// Feedback is the mentor review generated once per submitted project.
type Feedback struct {
	ID              uuid.UUID `json:"id"`
	ProjectID       uuid.UUID `json:"projectId"`
	UserID          uuid.UUID `json:"userId"`
	OverallScore    int       `json:"overallScore"`
	Rubric          Rubric    `json:"rubric"`
	Comments        []Comment `json:"comments"`
	GeneralFeedback string    `json:"generalFeedback"`
	NextSteps       []string  `json:"nextSteps"`
	MentorPersona   string    `json:"mentorPersona"`
	CreatedAt       time.Time `json:"createdAt"`
}

var (
	ErrNotFound          = errors.New("project not found")
	ErrFeedbackNotFound  = errors.New("feedback not found")
	ErrInvalidTransition = errors.New("invalid project status transition")
	ErrValidation        = errors.New("invalid project")
)

// Repository persists projects and their feedback.
type Repository interface {
	Create(ctx context.Context, p Project) error
	GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (Project, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Project, error)
	// UpdateContent stores work content and moves the project to in_progress.
	// Returns ErrInvalidTransition when the project is already submitted/completed.
	UpdateContent(ctx context.Context, ownerID, id uuid.UUID, content string, at time.Time) (Project, error)
	// Submit moves the project submitted -> completed and stores fb, all in one transaction.
	Submit(ctx context.Context, ownerID, id uuid.UUID, fb Feedback, at time.Time) (Feedback, error)
	GetFeedback(ctx context.Context, ownerID, projectID uuid.UUID) (Feedback, error)
}
