package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renum/internal/domain"
)

func TestTraceOriginalName_MultiHop(t *testing.T) {
	dir := t.TempDir()
	repo := newTestRepo(t)
	ctx := context.Background()

	a := filepath.Join(dir, "a.jpg")
	b := filepath.Join(dir, "img_1.jpg")
	c := filepath.Join(dir, "photo_1.jpg")

	// Oldest session first: A→B, then B→C. AddSession prepends, so the
	// store ends up newest first.
	_, err := repo.AddSession(ctx, []domain.RenameRecord{{OldPath: a, NewPath: b}})
	require.NoError(t, err)
	_, err = repo.AddSession(ctx, []domain.RenameRecord{{OldPath: b, NewPath: c}})
	require.NoError(t, err)

	svc := NewHistoryService(repo)
	original, found, err := svc.TraceOriginalName(ctx, c)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "a.jpg", original)
}

func TestTraceOriginalName_SingleHop(t *testing.T) {
	dir := t.TempDir()
	repo := newTestRepo(t)
	ctx := context.Background()

	old := filepath.Join(dir, "vacation.jpg")
	renamed := filepath.Join(dir, "img_1.jpg")
	_, err := repo.AddSession(ctx, []domain.RenameRecord{{OldPath: old, NewPath: renamed}})
	require.NoError(t, err)

	svc := NewHistoryService(repo)
	original, found, err := svc.TraceOriginalName(ctx, renamed)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "vacation.jpg", original)
}

func TestTraceOriginalName_ChainWithinOneSession(t *testing.T) {
	dir := t.TempDir()
	repo := newTestRepo(t)
	ctx := context.Background()

	a := filepath.Join(dir, "a.jpg")
	b := filepath.Join(dir, "b.jpg")
	c := filepath.Join(dir, "c.jpg")

	// Both hops recorded in one session, with the newer hop first. The
	// cursor keeps scanning subsequent records of the same session after it
	// advances, so b→c followed by a→b still chains c back to a.
	_, err := repo.AddSession(ctx, []domain.RenameRecord{
		{OldPath: b, NewPath: c},
		{OldPath: a, NewPath: b},
	})
	require.NoError(t, err)

	svc := NewHistoryService(repo)
	original, found, err := svc.TraceOriginalName(ctx, c)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "a.jpg", original)
}

func TestTraceOriginalName_NoHistory(t *testing.T) {
	svc := NewHistoryService(newTestRepo(t))

	_, found, err := svc.TraceOriginalName(context.Background(), "/tmp/unknown.txt")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestHistoryService_SessionLookup(t *testing.T) {
	dir := t.TempDir()
	repo := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.AddSession(ctx, []domain.RenameRecord{
		{OldPath: filepath.Join(dir, "a.txt"), NewPath: filepath.Join(dir, "b.txt")},
	})
	require.NoError(t, err)

	svc := NewHistoryService(repo)

	session, err := svc.Session(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, session.ID)
	assert.Equal(t, 1, session.Count)

	_, err = svc.Session(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestHistoryService_Clear(t *testing.T) {
	dir := t.TempDir()
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.AddSession(ctx, []domain.RenameRecord{
		{OldPath: filepath.Join(dir, "a.txt"), NewPath: filepath.Join(dir, "b.txt")},
	})
	require.NoError(t, err)

	svc := NewHistoryService(repo)
	require.NoError(t, svc.Clear(ctx))

	sessions, err := svc.Sessions(ctx)
	require.NoError(t, err)
	assert.Empty(t, sessions)
}
