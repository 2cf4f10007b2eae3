package portfolio

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synapse-hq/synapse/pkg/project"
)

type memRepo struct {
	entries []Entry
}

func (m *memRepo) Create(_ context.Context, e Entry) error {
	for _, x := range m.entries {
		if x.ProjectID == e.ProjectID {
			return ErrAlreadyInPortfolio
		}
	}
	m.entries = append(m.entries, e)
	return nil
}

func (m *memRepo) ListByOwner(_ context.Context, ownerID uuid.UUID, publicOnly bool) ([]Entry, error) {
	var out []Entry
	for _, e := range m.entries {
		if e.UserID == ownerID && (!publicOnly || e.IsPublic) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memRepo) DeleteForOwner(_ context.Context, ownerID, id uuid.UUID) error {
	for i, e := range m.entries {
		if e.ID == id && e.UserID == ownerID {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

type memProjects map[uuid.UUID]project.Project

func (m memProjects) Get(_ context.Context, userID, id uuid.UUID) (project.Project, error) {
	p, ok := m[id]
	if !ok || p.UserID != userID {
		return project.Project{}, project.ErrNotFound
	}
	return p, nil
}

func TestAdd(t *testing.T) {
	ctx := context.Background()
	user := uuid.New()
	done := project.Project{ID: uuid.New(), UserID: user, Title: "Quest", Role: "Writer", Brief: "A side quest", Status: project.StatusCompleted}
	wip := project.Project{ID: uuid.New(), UserID: user, Status: project.StatusInProgress}
	repo := &memRepo{}
	svc := NewService(repo, memProjects{done.ID: done, wip.ID: wip})

	e, err := svc.Add(ctx, user, AddInput{ProjectID: done.ID, Description: "My best work", IsPublic: true})
	require.NoError(t, err)
	assert.Equal(t, "Quest", e.Title)
	assert.Equal(t, "Writer", e.Role)
	assert.Equal(t, "My best work", e.Description)
	assert.False(t, e.CompletedAt.IsZero())

	_, err = svc.Add(ctx, user, AddInput{ProjectID: done.ID})
	assert.ErrorIs(t, err, ErrAlreadyInPortfolio)

	_, err = svc.Add(ctx, user, AddInput{ProjectID: wip.ID})
	assert.ErrorIs(t, err, ErrProjectNotCompleted)

	_, err = svc.Add(ctx, uuid.New(), AddInput{ProjectID: done.ID})
	assert.ErrorIs(t, err, project.ErrNotFound)
}

func TestPublicListing(t *testing.T) {
	ctx := context.Background()
	user := uuid.New()
	a := project.Project{ID: uuid.New(), UserID: user, Title: "A", Status: project.StatusCompleted}
	b := project.Project{ID: uuid.New(), UserID: user, Title: "B", Status: project.StatusCompleted}
	svc := NewService(&memRepo{}, memProjects{a.ID: a, b.ID: b})

	_, err := svc.Add(ctx, user, AddInput{ProjectID: a.ID, IsPublic: true})
	require.NoError(t, err)
	private, err := svc.Add(ctx, user, AddInput{ProjectID: b.ID})
	require.NoError(t, err)

	all, err := svc.List(ctx, user)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	pub, err := svc.ListPublic(ctx, user)
	require.NoError(t, err)
	require.Len(t, pub, 1)
	assert.Equal(t, "A", pub[0].Title)

	require.NoError(t, svc.Delete(ctx, user, private.ID))
	assert.ErrorIs(t, svc.Delete(ctx, user, private.ID), ErrNotFound)

	empty, err := svc.ListPublic(ctx, uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, empty)
}
