package auth

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memUsers struct {
	mu   sync.Mutex
	byID map[uuid.UUID]User
}

func newMemUsers() *memUsers { return &memUsers{byID: map[uuid.UUID]User{}} }

func (m *memUsers) Create(_ context.Context, u User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.byID {
		if existing.Email == u.Email {
			return ErrUserAlreadyExists
		}
	}
	m.byID[u.ID] = u
	return nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (m *memUsers) GetByID(_ context.Context, id uuid.UUID) (User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (m *memUsers) SetName(_ context.Context, id uuid.UUID, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return ErrNotFound
	}
	u.Name = name
	m.byID[id] = u
	return nil
}

func (m *memUsers) SetFlag(context.Context, uuid.UUID, Flag) error { return nil }

type staticTokens struct{}

func (staticTokens) Generate(_ context.Context, u User) (string, error) {
	return "token-" + u.ID.String(), nil
}

func newTestService(repo UserRepository) AuthUseCase {
	svc := NewAuthService(repo, staticTokens{}).(*authService)
	svc.cost = bcrypt.MinCost
	return svc
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemUsers())

	res, err := svc.Register(ctx, "  Ada@Example.com ", "secret")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", res.User.Email)
	assert.Equal(t, RoleUser, res.User.Role)
	assert.Equal(t, "token-"+res.User.ID.String(), res.Token)
	assert.NotEqual(t, "secret", res.User.PasswordHash)

	login, err := svc.Login(ctx, "ADA@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, login.User.ID)
}

func TestRegisterDuplicate(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemUsers())

	_, err := svc.Register(ctx, "a@b.c", "x")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "a@b.c", "y")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestRegisterRejectsEmpty(t *testing.T) {
	svc := newTestService(newMemUsers())
	_, err := svc.Register(context.Background(), " ", "x")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemUsers())
	_, err := svc.Register(ctx, "a@b.c", "right")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "a@b.c", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@b.c", "right")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSetName(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemUsers())
	res, err := svc.Register(ctx, "a@b.c", "x")
	require.NoError(t, err)

	_, err = svc.SetName(ctx, res.User.ID, "   ")
	assert.ErrorIs(t, err, ErrInvalidName)

	u, err := svc.SetName(ctx, res.User.ID, " Ada Lovelace ")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", u.Name)
}
