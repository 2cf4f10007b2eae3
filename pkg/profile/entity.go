package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/synapse-hq/synapse/pkg/document"
)

type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description,omitempty"`
}

// LinkedinData is what the user connected or entered from their LinkedIn profile.
type LinkedinData struct {
	ProfileURL string       `json:"profileUrl"`
	Headline   string       `json:"headline"`
	Summary    string       `json:"summary,omitempty"`
	Experience []Experience `json:"experience"`
	Skills     []string     `json:"skills"`
}

// AssessmentAnswers are the multi-step career assessment answers.
type AssessmentAnswers struct {
	CareerGoal          string `json:"careerGoal,omitempty"`
	PrimaryMotivator    string `json:"primaryMotivator,omitempty"`
	FiveYearVision      string `json:"fiveYearVision,omitempty"`
	WeeklyHours         string `json:"weeklyHours,omitempty"`
	LearningStyle       string `json:"learningStyle,omitempty"`
	SkillConfidence     string `json:"skillConfidence,omitempty"`
	WorkEnvironment     string `json:"workEnvironment,omitempty"`
	UnconventionalRoles string `json:"unconventionalRoles,omitempty"`
	WorkEnergy          string `json:"workEnergy,omitempty"`
	MinSalary           string `json:"minSalary,omitempty"`
}

// Profile holds per-user career data; one per user.
type Profile struct {
	UserID            uuid.UUID          `json:"userId"`
	LinkedinData      *LinkedinData      `json:"linkedinData,omitempty"`
	ResumeFileID      *uuid.UUID         `json:"resumeFileId,omitempty"`
	VideoFileID       *uuid.UUID         `json:"videoFileId,omitempty"`
	ResumeText        string             `json:"-"`
	SkillsAnalyzed    bool               `json:"skillsAnalyzed"`
	AssessmentAnswers *AssessmentAnswers `json:"assessmentAnswers,omitempty"`
	UpdatedAt         time.Time          `json:"updatedAt"`
}

// Upload is the metadata of a stored resume or video file.
type Upload struct {
	ID         uuid.UUID     `json:"id"`
	OwnerID    uuid.UUID     `json:"ownerId"`
	Kind       document.Kind `json:"kind"`
	Filename   string        `json:"filename"`
	MimeType   string        `json:"mimeType"`
	Size       int64         `json:"size"`
	StorageURI string        `json:"-"`
	CreatedAt  time.Time     `json:"createdAt"`
}

var (
	ErrNotFound       = errors.New("profile not found")
	ErrUploadNotFound = errors.New("upload not found")
	ErrEmptyResume    = errors.New("resume contains no readable text")
	ErrInvalidData    = errors.New("invalid profile data")
)

// Repository persists profiles and upload metadata.
type Repository interface {
	Get(ctx context.Context, userID uuid.UUID) (Profile, error)
	UpsertLinkedin(ctx context.Context, userID uuid.UUID, data LinkedinData, at time.Time) error
	UpsertAssessment(ctx context.Context, userID uuid.UUID, answers AssessmentAnswers, at time.Time) error
	// AttachUpload stores the upload row and points the profile at it.
	// resumeText is only written for resume uploads.
	AttachUpload(ctx context.Context, up Upload, resumeText string) error
	GetUpload(ctx context.Context, ownerID, id uuid.UUID) (Upload, error)
	MarkSkillsAnalyzed(ctx context.Context, userID uuid.UUID) error
}
