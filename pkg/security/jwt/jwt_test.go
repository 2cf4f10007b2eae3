package jwt

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synapse-hq/synapse/pkg/auth"
)

func newApp(secret, issuer string) *fiber.App {
	app := fiber.New()
	app.Use(NewAuthMiddleware(secret, issuer))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		id, _ := c.Locals(LocalUserID).(string)
		role, _ := c.Locals(LocalRole).(string)
		return c.SendString(id + "|" + role)
	})
	return app
}

func call(t *testing.T, app *fiber.App, header string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestMiddlewareAcceptsGeneratedToken(t *testing.T) {
	gen := NewGenerator("s3cret", "synapse", time.Hour)
	user := auth.User{ID: uuid.New(), Role: auth.RoleMember}
	tok, err := gen.Generate(context.Background(), user)
	require.NoError(t, err)

	app := newApp("s3cret", "synapse")

	status, body := call(t, app, "Bearer "+tok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, user.ID.String()+"|member", body)

	status, _ = call(t, app, tok)
	assert.Equal(t, http.StatusOK, status)
}

func TestMiddlewareRejects(t *testing.T) {
	gen := NewGenerator("s3cret", "other-issuer", time.Hour)
	tok, err := gen.Generate(context.Background(), auth.User{ID: uuid.New()})
	require.NoError(t, err)
	expired, err := NewGenerator("s3cret", "synapse", -time.Minute).Generate(context.Background(), auth.User{ID: uuid.New()})
	require.NoError(t, err)

	app := newApp("s3cret", "synapse")

	cases := map[string]string{
		"missing":      "",
		"garbage":      "Bearer not-a-jwt",
		"wrong issuer": "Bearer " + tok,
		"expired":      "Bearer " + expired,
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			status, _ := call(t, app, header)
			assert.Equal(t, http.StatusUnauthorized, status)
		})
	}
}

func TestExtractToken(t *testing.T) {
	assert.Equal(t, "abc", extractToken("Bearer abc"))
	assert.Equal(t, "abc", extractToken("bearer   abc "))
	assert.Equal(t, "abc", extractToken("abc"))
	assert.Equal(t, "", extractToken("Bearer "))
}

func TestParseReturnsClaims(t *testing.T) {
	gen := NewGenerator("s3cret", "synapse", time.Hour)
	user := auth.User{ID: uuid.New(), Email: "ada@example.com", Role: auth.RoleUser}
	tok, err := gen.Generate(context.Background(), user)
	require.NoError(t, err)

	claims, err := Parse(tok, []byte("s3cret"), "synapse")
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "user", claims.Role)

	_, err = Parse(tok, []byte("other"), "synapse")
	assert.ErrorIs(t, err, ErrInvalidToken)

	claims, err = Parse(tok, []byte("s3cret"), "")
	require.NoError(t, err)
	assert.Equal(t, "synapse", claims.Issuer)
}
