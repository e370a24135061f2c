package client

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestInitDatabase(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "test.db")

	repos, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	require.NotNil(t, repos.FormState)

	// Migrations applied: the form_state table accepts writes.
	require.NoError(t, repos.FormState.Save(ctx, "registration", []byte(`{}`)))

	data, err := repos.FormState.Load(ctx, "registration")
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}
