// Package career builds career plans and gap analyses through the ML
// service from the user's stored profile.
package career

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/synapse-hq/synapse/pkg/cache"
	"github.com/synapse-hq/synapse/pkg/profile"
	"github.com/synapse-hq/synapse/pkg/skill"
)

var ErrDreamRoleRequired = errors.New("dream role is required")

// ML is the remote career model.
type ML interface {
	GenerateCareerPlan(ctx context.Context, profileData, quizData any) (json.RawMessage, error)
	GapAnalysis(ctx context.Context, userSkills []string, dreamRole, dreamCompany string) (json.RawMessage, error)
}

type Profiles interface {
	Get(ctx context.Context, userID uuid.UUID) (profile.Profile, error)
}

type Skills interface {
	List(ctx context.Context, userID uuid.UUID) ([]skill.Skill, error)
}

// PlanInput overrides the stored profile and assessment when set.
type PlanInput struct {
	ProfileData json.RawMessage
	QuizData    json.RawMessage
}

type GapInput struct {
	UserSkills   []string
	DreamRole    string
	DreamCompany string
}

type UseCase interface {
	Plan(ctx context.Context, userID uuid.UUID, in PlanInput) (json.RawMessage, error)
	GapAnalysis(ctx context.Context, userID uuid.UUID, in GapInput) (json.RawMessage, error)
}

// planProfile is the profile_data document sent to the model.
type planProfile struct {
	LinkedinURL string               `json:"linkedin_url,omitempty"`
	Headline    string               `json:"headline,omitempty"`
	Summary     string               `json:"summary,omitempty"`
	Experience  []profile.Experience `json:"experience"`
	Skills      []string             `json:"skills"`
	HasResume   bool                 `json:"has_resume"`
	HasVideo    bool                 `json:"has_video"`
	ResumeText  string               `json:"resume_text,omitempty"`
}

const maxResumeChars = 8000

type service struct {
	ml       ML
	profiles Profiles
	skills   Skills
	cache    cache.Cache
	ttl      time.Duration
	log      *zap.Logger
}

// NewService wires the use case. c may be nil to disable caching.
func NewService(ml ML, profiles Profiles, skills Skills, c cache.Cache, ttl time.Duration, log *zap.Logger) UseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &service{ml: ml, profiles: profiles, skills: skills, cache: c, ttl: ttl, log: log}
}

func (s *service) Plan(ctx context.Context, userID uuid.UUID, in PlanInput) (json.RawMessage, error) {
	var profileData, quizData any
	if len(in.ProfileData) > 0 && string(in.ProfileData) != "null" {
		profileData = in.ProfileData
	}
	if len(in.QuizData) > 0 && string(in.QuizData) != "null" {
		quizData = in.QuizData
	}
	if profileData == nil || quizData == nil {
		p, err := s.profiles.Get(ctx, userID)
		if err != nil {
			return nil, err
		}
		if profileData == nil {
			profileData = buildPlanProfile(p)
		}
		if quizData == nil {
			quizData = p.AssessmentAnswers
			if p.AssessmentAnswers == nil {
				quizData = profile.AssessmentAnswers{}
			}
		}
	}

	return s.cached(ctx, "career:plan:", []any{profileData, quizData}, func() (json.RawMessage, error) {
		return s.ml.GenerateCareerPlan(ctx, profileData, quizData)
	})
}

func (s *service) GapAnalysis(ctx context.Context, userID uuid.UUID, in GapInput) (json.RawMessage, error) {
	in.DreamRole = strings.TrimSpace(in.DreamRole)
	in.DreamCompany = strings.TrimSpace(in.DreamCompany)
	if in.DreamRole == "" {
		return nil, ErrDreamRoleRequired
	}
	if in.UserSkills == nil {
		items, err := s.skills.List(ctx, userID)
		if err != nil {
			return nil, err
		}
		in.UserSkills = make([]string, 0, len(items))
		for _, sk := range items {
			in.UserSkills = append(in.UserSkills, sk.Name)
		}
	}

	return s.cached(ctx, "career:gap:", in, func() (json.RawMessage, error) {
		return s.ml.GapAnalysis(ctx, in.UserSkills, in.DreamRole, in.DreamCompany)
	})
}

// cached keys results by a hash of the request document. Cache failures are
// logged and never fail the call.
func (s *service) cached(ctx context.Context, prefix string, req any, call func() (json.RawMessage, error)) (json.RawMessage, error) {
	if s.cache == nil {
		return call()
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	sum := sha256.Sum256(body)
	key := prefix + hex.EncodeToString(sum[:])

	if hit, err := s.cache.Get(ctx, key); err == nil {
		return json.RawMessage(hit), nil
	} else if !errors.Is(err, cache.ErrMiss) {
		s.log.Warn("career cache get", zap.String("key", key), zap.Error(err))
	}

	out, err := call()
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, out, s.ttl); err != nil {
		s.log.Warn("career cache set", zap.String("key", key), zap.Error(err))
	}
	return out, nil
}

func buildPlanProfile(p profile.Profile) planProfile {
	out := planProfile{
		Experience: []profile.Experience{},
		Skills:     []string{},
		HasResume:  p.ResumeFileID != nil,
		HasVideo:   p.VideoFileID != nil,
	}
	if d := p.LinkedinData; d != nil {
		out.LinkedinURL = d.ProfileURL
		out.Headline = d.Headline
		out.Summary = d.Summary
		if d.Experience != nil {
			out.Experience = d.Experience
		}
		if d.Skills != nil {
			out.Skills = d.Skills
		}
	}
	if text := []rune(p.ResumeText); len(text) > maxResumeChars {
		out.ResumeText = string(text[:maxResumeChars])
	} else {
		out.ResumeText = p.ResumeText
	}
	return out
}
