package onboarding

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synapse-hq/synapse/pkg/auth"
)

type memUsers struct {
	users map[uuid.UUID]auth.User
}

func (m *memUsers) GetByID(_ context.Context, id uuid.UUID) (auth.User, error) {
	u, ok := m.users[id]
	if !ok {
		return auth.User{}, auth.ErrNotFound
	}
	return u, nil
}

func (m *memUsers) SetFlag(_ context.Context, id uuid.UUID, flag auth.Flag) error {
	u, ok := m.users[id]
	if !ok {
		return auth.ErrNotFound
	}
	switch flag {
	case auth.FlagLinkedinConnected:
		u.Flags.LinkedinConnected = true
	case auth.FlagResumeUploaded:
		u.Flags.ResumeUploaded = true
	case auth.FlagVideoUploaded:
		u.Flags.VideoUploaded = true
	case auth.FlagOnboardingCompleted:
		u.Flags.OnboardingCompleted = true
	case auth.FlagAssessmentCompleted:
		u.Flags.AssessmentCompleted = true
	}
	m.users[id] = u
	return nil
}

func TestStatusOf(t *testing.T) {
	cases := []struct {
		name  string
		flags auth.Flags
		next  Step
		full  bool
	}{
		{"fresh", auth.Flags{}, StepLinkedin, false},
		{"linkedin only", auth.Flags{LinkedinConnected: true}, StepResume, false},
		{"missing video", auth.Flags{LinkedinConnected: true, ResumeUploaded: true}, StepVideo, false},
		{"video without linkedin", auth.Flags{ResumeUploaded: true, VideoUploaded: true}, StepLinkedin, false},
		{"all uploaded", auth.Flags{LinkedinConnected: true, ResumeUploaded: true, VideoUploaded: true}, StepCompleted, true},
		{"done", auth.Flags{LinkedinConnected: true, ResumeUploaded: true, VideoUploaded: true, OnboardingCompleted: true}, "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := StatusOf(tc.flags)
			assert.Equal(t, tc.next, st.NextStep)
			assert.Equal(t, tc.full, st.CanAccessDashboard)
		})
	}
}

func TestCompleteStepFlow(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	svc := NewService(&memUsers{users: map[uuid.UUID]auth.User{id: {ID: id}}})

	_, err := svc.CompleteStep(ctx, id, StepCompleted)
	assert.ErrorIs(t, err, ErrOnboardingIncomplete)

	for _, step := range []Step{StepLinkedin, StepResume} {
		st, err := svc.CompleteStep(ctx, id, step)
		require.NoError(t, err)
		assert.False(t, st.CanAccessDashboard)
	}
	_, err = svc.CompleteStep(ctx, id, StepCompleted)
	assert.ErrorIs(t, err, ErrOnboardingIncomplete)

	st, err := svc.CompleteStep(ctx, id, StepVideo)
	require.NoError(t, err)
	assert.True(t, st.CanAccessDashboard)

	st, err = svc.CompleteStep(ctx, id, StepCompleted)
	require.NoError(t, err)
	assert.True(t, st.Flags.OnboardingCompleted)
	assert.Empty(t, st.NextStep)
}

func TestParseStep(t *testing.T) {
	s, err := ParseStep("video")
	require.NoError(t, err)
	assert.Equal(t, StepVideo, s)

	_, err = ParseStep("assessment")
	assert.ErrorIs(t, err, ErrUnknownStep)
}
