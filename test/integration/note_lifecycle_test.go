package integration

import (
	"context"
	"testing"

	"note-sharing-be/internal/dto"
	"note-sharing-be/internal/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	caller, workspaceId := env.createTenant(t)

	note, err := env.notes.Create(ctx, caller, &dto.CreateNoteRequest{
		Title:       "Quarterly planning",
		Content:     "First draft.",
		Tags:        []string{"planning", "q3"},
		WorkspaceId: workspaceId,
	})
	require.NoError(t, err)
	assert.Equal(t, "private", note.Visibility)
	assert.Equal(t, "draft", note.Status)
	assert.Nil(t, note.PublishedAt)
	assert.ElementsMatch(t, []string{"planning", "q3"}, note.Tags)

	t.Run("Publish stamps published_at once", func(t *testing.T) {
		status := "published"
		visibility := "public"
		published, err := env.notes.Update(ctx, caller, &dto.UpdateNoteRequest{
			Id:         note.Id,
			Status:     &status,
			Visibility: &visibility,
		})
		require.NoError(t, err)
		require.NotNil(t, published.PublishedAt)
		firstStamp := *published.PublishedAt

		// A later no-op status write must not move the stamp.
		again, err := env.notes.Update(ctx, caller, &dto.UpdateNoteRequest{
			Id:     note.Id,
			Status: &status,
		})
		require.NoError(t, err)
		require.NotNil(t, again.PublishedAt)
		assert.True(t, again.PublishedAt.Equal(firstStamp))
	})

	t.Run("Partial update keeps untouched fields", func(t *testing.T) {
		title := "Quarterly planning v2"
		updated, err := env.notes.Update(ctx, caller, &dto.UpdateNoteRequest{
			Id:    note.Id,
			Title: &title,
		})
		require.NoError(t, err)
		assert.Equal(t, "Quarterly planning v2", updated.Title)
		assert.Equal(t, "First draft.", updated.Content)
		assert.ElementsMatch(t, []string{"planning", "q3"}, updated.Tags)
	})

	t.Run("Empty tag slice clears associations", func(t *testing.T) {
		empty := []string{}
		updated, err := env.notes.Update(ctx, caller, &dto.UpdateNoteRequest{
			Id:   note.Id,
			Tags: &empty,
		})
		require.NoError(t, err)
		assert.Empty(t, updated.Tags)
	})

	t.Run("Every update writes a history snapshot", func(t *testing.T) {
		histories, err := env.history.List(ctx, caller, note.Id)
		require.NoError(t, err)
		// Publish, no-op status, title change, tag clear: four snapshots.
		require.Len(t, histories, 4)
		// Newest first; the most recent snapshot holds the v2 title.
		assert.Equal(t, "Quarterly planning v2", histories[0].Title)
		assert.Equal(t, "Quarterly planning", histories[3].Title)
	})

	t.Run("Restore brings content back and is undoable", func(t *testing.T) {
		histories, err := env.history.List(ctx, caller, note.Id)
		require.NoError(t, err)
		oldest := histories[len(histories)-1]

		restored, err := env.history.Restore(ctx, caller, oldest.Id)
		require.NoError(t, err)
		assert.Equal(t, "Quarterly planning", restored.Title)

		// The restore itself left a snapshot of the pre-restore state.
		after, err := env.history.List(ctx, caller, note.Id)
		require.NoError(t, err)
		require.Len(t, after, 5)
		assert.Equal(t, "Quarterly planning v2", after[0].Title)
	})

	t.Run("Delete removes the note", func(t *testing.T) {
		require.NoError(t, env.notes.Delete(ctx, caller, note.Id))

		_, err := env.notes.Show(ctx, &caller.CompanyId, note.Id)
		assert.True(t, apperr.IsNotFound(err))

		_, err = env.history.List(ctx, caller, note.Id)
		assert.True(t, apperr.IsNotFound(err))
	})
}

func TestShowVisibility(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	caller, workspaceId := env.createTenant(t)
	stranger, _ := env.createTenant(t)

	private, err := env.notes.Create(ctx, caller, &dto.CreateNoteRequest{
		Title:       "Internal memo",
		WorkspaceId: workspaceId,
	})
	require.NoError(t, err)

	public, err := env.notes.Create(ctx, caller, &dto.CreateNoteRequest{
		Title:       "Published announcement",
		Visibility:  "public",
		Status:      "published",
		WorkspaceId: workspaceId,
	})
	require.NoError(t, err)
	require.NotNil(t, public.PublishedAt)

	t.Run("Anonymous reads public published note", func(t *testing.T) {
		res, err := env.notes.Show(ctx, nil, public.Id)
		require.NoError(t, err)
		assert.Equal(t, public.Id, res.Id)
	})

	t.Run("Anonymous cannot read private note", func(t *testing.T) {
		_, err := env.notes.Show(ctx, nil, private.Id)
		assert.True(t, apperr.IsForbidden(err))
	})

	t.Run("Other company cannot read private note", func(t *testing.T) {
		_, err := env.notes.Show(ctx, &stranger.CompanyId, private.Id)
		assert.True(t, apperr.IsForbidden(err))
	})

	t.Run("Owning company reads private note", func(t *testing.T) {
		res, err := env.notes.Show(ctx, &caller.CompanyId, private.Id)
		require.NoError(t, err)
		assert.Equal(t, private.Id, res.Id)
	})

	t.Run("Public draft stays hidden", func(t *testing.T) {
		draft, err := env.notes.Create(ctx, caller, &dto.CreateNoteRequest{
			Title:       "Public but unfinished",
			Visibility:  "public",
			WorkspaceId: workspaceId,
		})
		require.NoError(t, err)

		_, err = env.notes.Show(ctx, nil, draft.Id)
		assert.True(t, apperr.IsForbidden(err))
	})
}
