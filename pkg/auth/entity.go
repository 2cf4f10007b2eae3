package auth

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleUser   Role = "user"
	RoleMember Role = "member"
)

// Flag names one onboarding/progress marker stored on the user record.
type Flag string

const (
	FlagLinkedinConnected   Flag = "linkedin_connected"
	FlagResumeUploaded      Flag = "resume_uploaded"
	FlagVideoUploaded       Flag = "video_uploaded"
	FlagOnboardingCompleted Flag = "onboarding_completed"
	FlagAssessmentCompleted Flag = "assessment_completed"
)

// Flags mirrors the boolean progress markers of a user.
type Flags struct {
	LinkedinConnected   bool `json:"linkedinConnected"`
	ResumeUploaded      bool `json:"resumeUploaded"`
	VideoUploaded       bool `json:"videoUploaded"`
	OnboardingCompleted bool `json:"onboardingCompleted"`
	AssessmentCompleted bool `json:"assessmentCompleted"`
}

// User is a domain entity representing a system user.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	Flags        Flags     `json:"flags"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (u User) IsAdmin() bool { return u.Role == RoleAdmin }
