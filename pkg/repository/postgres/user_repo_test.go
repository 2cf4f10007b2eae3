package postgres

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synapse-hq/synapse/pkg/auth"
)

func TestFlagColumnsMatchSchema(t *testing.T) {
	schema, err := os.ReadFile("../../storage/postgres/migrations/00001_init.sql")
	require.NoError(t, err)

	flags := []auth.Flag{
		auth.FlagLinkedinConnected,
		auth.FlagResumeUploaded,
		auth.FlagVideoUploaded,
		auth.FlagOnboardingCompleted,
		auth.FlagAssessmentCompleted,
	}
	require.Len(t, flagColumns, len(flags))
	for _, f := range flags {
		col, ok := flagColumns[f]
		require.True(t, ok, "flag %s has no column", f)
		assert.Contains(t, userColumns, col)
		assert.Contains(t, string(schema), col+" BOOLEAN")
	}
}

func TestSetFlagRejectsUnknownFlag(t *testing.T) {
	repo := NewUserRepository(nil)
	err := repo.SetFlag(context.Background(), uuid.New(), auth.Flag("admin; DROP TABLE users"))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "unknown user flag"))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(nil))
}
