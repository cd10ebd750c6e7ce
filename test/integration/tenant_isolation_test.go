package integration

import (
	"context"
	"testing"

	"note-sharing-be/internal/dto"
	"note-sharing-be/internal/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTenantIsolation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner, workspaceId := env.createTenant(t)
	intruder, _ := env.createTenant(t)

	note, err := env.notes.Create(ctx, owner, &dto.CreateNoteRequest{
		Title:       "Company A secret",
		WorkspaceId: workspaceId,
	})
	require.NoError(t, err)

	t.Run("Create in foreign workspace is rejected", func(t *testing.T) {
		_, err := env.notes.Create(ctx, intruder, &dto.CreateNoteRequest{
			Title:       "Sneaky note",
			WorkspaceId: workspaceId,
		})
		assert.True(t, apperr.IsUnauthorized(err))
	})

	t.Run("Update of foreign note is rejected", func(t *testing.T) {
		title := "Defaced"
		_, err := env.notes.Update(ctx, intruder, &dto.UpdateNoteRequest{
			Id:    note.Id,
			Title: &title,
		})
		assert.True(t, apperr.IsUnauthorized(err))
	})

	t.Run("Delete of foreign note is rejected", func(t *testing.T) {
		err := env.notes.Delete(ctx, intruder, note.Id)
		assert.True(t, apperr.IsUnauthorized(err))
	})

	t.Run("Foreign private listing is rejected", func(t *testing.T) {
		_, err := env.directory.ListPrivate(ctx, intruder, workspaceId, &dto.PrivateListQuery{})
		assert.True(t, apperr.IsUnauthorized(err))
	})

	t.Run("Foreign history access is rejected", func(t *testing.T) {
		_, err := env.history.List(ctx, intruder, note.Id)
		assert.True(t, apperr.IsUnauthorized(err))
	})

	t.Run("Owner still has full access", func(t *testing.T) {
		res, err := env.directory.ListPrivate(ctx, owner, workspaceId, &dto.PrivateListQuery{})
		require.NoError(t, err)
		require.Len(t, res.Data, 1)
		assert.Equal(t, note.Id, res.Data[0].Id)
	})
}
