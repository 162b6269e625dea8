package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renum/internal/domain"
)

func record(old, new string) domain.RenameRecord {
	return domain.RenameRecord{OldPath: old, NewPath: new}
}

func TestAddSession_EmptyRecordsIsNoOp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	repo, err := NewJSONRepository(path)
	require.NoError(t, err)

	id, err := repo.AddSession(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, id)
	assert.NoFileExists(t, path)
}

func TestAddSession_PersistsAndReloadsNewestFirst(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	ctx := context.Background()

	repo, err := NewJSONRepository(path)
	require.NoError(t, err)

	first, err := repo.AddSession(ctx, []domain.RenameRecord{record("/tmp/a", "/tmp/b")})
	require.NoError(t, err)
	second, err := repo.AddSession(ctx, []domain.RenameRecord{record("/tmp/c", "/tmp/d")})
	require.NoError(t, err)

	// A fresh repository on the same path sees the persisted state
	reloaded, err := NewJSONRepository(path)
	require.NoError(t, err)

	sessions, err := reloaded.Sessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, second, sessions[0].ID)
	assert.Equal(t, first, sessions[1].ID)
	assert.Equal(t, "/tmp/a", sessions[1].Files[0].OldPath)
	assert.Equal(t, "/tmp/b", sessions[1].Files[0].NewPath)
}

func TestNewJSONRepository_MissingFileStartsEmpty(t *testing.T) {
	repo, err := NewJSONRepository(filepath.Join(t.TempDir(), "nope", "history.json"))
	require.NoError(t, err)

	sessions, err := repo.Sessions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestNewJSONRepository_CorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	repo, err := NewJSONRepository(path)
	require.NoError(t, err)

	sessions, err := repo.Sessions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sessions)

	// The store stays writable after degrading
	_, err = repo.AddSession(context.Background(), []domain.RenameRecord{record("/tmp/a", "/tmp/b")})
	require.NoError(t, err)
}

func TestSession_NotFound(t *testing.T) {
	repo, err := NewJSONRepository(filepath.Join(t.TempDir(), "history.json"))
	require.NoError(t, err)

	_, err = repo.Session(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestClear_PersistsEmptyStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	ctx := context.Background()

	repo, err := NewJSONRepository(path)
	require.NoError(t, err)

	_, err = repo.AddSession(ctx, []domain.RenameRecord{record("/tmp/a", "/tmp/b")})
	require.NoError(t, err)

	require.NoError(t, repo.Clear(ctx))

	reloaded, err := NewJSONRepository(path)
	require.NoError(t, err)
	sessions, err := reloaded.Sessions(ctx)
	require.NoError(t, err)
	assert.Empty(t, sessions)
}
