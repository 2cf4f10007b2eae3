package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/synapse-hq/synapse/pkg/auth"
	"github.com/synapse-hq/synapse/pkg/document"
	"github.com/synapse-hq/synapse/pkg/linkedin"
	"github.com/synapse-hq/synapse/pkg/onboarding"
)

// FileStore saves raw upload bytes.
type FileStore interface {
	Save(dir, name, ext string, data []byte) (string, error)
	Remove(uri string) error
}

// Steps records onboarding progress.
type Steps interface {
	CompleteStep(ctx context.Context, userID uuid.UUID, step onboarding.Step) (onboarding.Status, error)
}

// FlagSetter raises user progress flags.
type FlagSetter interface {
	SetFlag(ctx context.Context, id uuid.UUID, flag auth.Flag) error
}

type UploadInput struct {
	Filename string
	MimeType string
	Data     []byte
}

type UseCase interface {
	Get(ctx context.Context, userID uuid.UUID) (Profile, error)
	SaveLinkedin(ctx context.Context, userID uuid.UUID, data LinkedinData) (Profile, error)
	SaveAssessment(ctx context.Context, userID uuid.UUID, answers AssessmentAnswers) error
	GetAssessment(ctx context.Context, userID uuid.UUID) (*AssessmentAnswers, error)
	UploadResume(ctx context.Context, userID uuid.UUID, in UploadInput) (Upload, error)
	UploadVideo(ctx context.Context, userID uuid.UUID, in UploadInput) (Upload, error)
	File(ctx context.Context, userID uuid.UUID, kind document.Kind) (Upload, error)
}

type service struct {
	repo  Repository
	store FileStore
	steps Steps
	flags FlagSetter
	log   *zap.Logger
}

func NewService(repo Repository, store FileStore, steps Steps, flags FlagSetter, log *zap.Logger) UseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &service{repo: repo, store: store, steps: steps, flags: flags, log: log}
}

// Get returns an empty profile for users that have not stored anything yet.
func (s *service) Get(ctx context.Context, userID uuid.UUID) (Profile, error) {
	p, err := s.repo.Get(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return Profile{UserID: userID}, nil
	}
	return p, err
}

func (s *service) SaveLinkedin(ctx context.Context, userID uuid.UUID, data LinkedinData) (Profile, error) {
	data.ProfileURL = strings.TrimSpace(data.ProfileURL)
	if err := linkedin.CheckShape(data.ProfileURL); err != nil {
		return Profile{}, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	data.Headline = strings.TrimSpace(data.Headline)
	if data.Experience == nil {
		data.Experience = []Experience{}
	}
	if data.Skills == nil {
		data.Skills = []string{}
	}
	if err := s.repo.UpsertLinkedin(ctx, userID, data, time.Now().UTC()); err != nil {
		return Profile{}, err
	}
	if _, err := s.steps.CompleteStep(ctx, userID, onboarding.StepLinkedin); err != nil {
		return Profile{}, err
	}
	return s.Get(ctx, userID)
}

func (s *service) SaveAssessment(ctx context.Context, userID uuid.UUID, answers AssessmentAnswers) error {
	if err := s.repo.UpsertAssessment(ctx, userID, answers, time.Now().UTC()); err != nil {
		return err
	}
	return s.flags.SetFlag(ctx, userID, auth.FlagAssessmentCompleted)
}

func (s *service) GetAssessment(ctx context.Context, userID uuid.UUID) (*AssessmentAnswers, error) {
	p, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return p.AssessmentAnswers, nil
}

func (s *service) UploadResume(ctx context.Context, userID uuid.UUID, in UploadInput) (Upload, error) {
	if _, err := document.Check(document.KindResume, in.Filename, int64(len(in.Data))); err != nil {
		return Upload{}, err
	}
	text, err := document.ExtractText(in.Filename, in.Data)
	if err != nil {
		return Upload{}, fmt.Errorf("read resume: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return Upload{}, ErrEmptyResume
	}
	return s.upload(ctx, userID, document.KindResume, in, text, onboarding.StepResume)
}

func (s *service) UploadVideo(ctx context.Context, userID uuid.UUID, in UploadInput) (Upload, error) {
	return s.upload(ctx, userID, document.KindVideo, in, "", onboarding.StepVideo)
}

func (s *service) upload(ctx context.Context, userID uuid.UUID, kind document.Kind, in UploadInput, text string, step onboarding.Step) (Upload, error) {
	ext, err := document.Check(kind, in.Filename, int64(len(in.Data)))
	if err != nil {
		return Upload{}, err
	}
	id := uuid.New()
	uri, err := s.store.Save(string(kind), id.String(), ext, in.Data)
	if err != nil {
		return Upload{}, err
	}
	up := Upload{
		ID:         id,
		OwnerID:    userID,
		Kind:       kind,
		Filename:   in.Filename,
		MimeType:   in.MimeType,
		Size:       int64(len(in.Data)),
		StorageURI: uri,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.AttachUpload(ctx, up, text); err != nil {
		if rmErr := s.store.Remove(uri); rmErr != nil {
			s.log.Warn("remove orphaned upload", zap.String("uri", uri), zap.Error(rmErr))
		}
		return Upload{}, err
	}
	if _, err := s.steps.CompleteStep(ctx, userID, step); err != nil {
		return Upload{}, err
	}
	return up, nil
}

func (s *service) File(ctx context.Context, userID uuid.UUID, kind document.Kind) (Upload, error) {
	p, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Upload{}, ErrUploadNotFound
		}
		return Upload{}, err
	}
	var id *uuid.UUID
	switch kind {
	case document.KindResume:
		id = p.ResumeFileID
	case document.KindVideo:
		id = p.VideoFileID
	}
	if id == nil {
		return Upload{}, ErrUploadNotFound
	}
	return s.repo.GetUpload(ctx, userID, *id)
}
