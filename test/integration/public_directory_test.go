package integration

import (
	"context"
	"testing"

	"note-sharing-be/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicDirectory(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	callerA, workspaceA := env.createTenant(t)
	callerB, workspaceB := env.createTenant(t)

	// The directory is global, so scope this run with a unique marker
	// in every title and filter on it.
	marker := "dir-" + uuid.NewString()[:8]

	popular, err := env.notes.Create(ctx, callerA, &dto.CreateNoteRequest{
		Title:       marker + " popular",
		Visibility:  "public",
		Status:      "published",
		Tags:        []string{marker},
		WorkspaceId: workspaceA,
	})
	require.NoError(t, err)

	_, err = env.notes.Create(ctx, callerB, &dto.CreateNoteRequest{
		Title:       marker + " quiet",
		Visibility:  "public",
		Status:      "published",
		WorkspaceId: workspaceB,
	})
	require.NoError(t, err)

	// Neither of these may surface: one private published, one public draft.
	_, err = env.notes.Create(ctx, callerA, &dto.CreateNoteRequest{
		Title:       marker + " private",
		Visibility:  "private",
		Status:      "published",
		WorkspaceId: workspaceA,
	})
	require.NoError(t, err)
	_, err = env.notes.Create(ctx, callerB, &dto.CreateNoteRequest{
		Title:       marker + " draft",
		Visibility:  "public",
		WorkspaceId: workspaceB,
	})
	require.NoError(t, err)

	voter := env.addMember(t, callerB.CompanyId)
	_, err = env.votes.Cast(ctx, voter, popular.Id, &dto.VoteRequest{Kind: "upvote"})
	require.NoError(t, err)

	t.Run("Only public published notes across companies", func(t *testing.T) {
		res, err := env.directory.ListPublic(ctx, &dto.PublicListQuery{Query: marker})
		require.NoError(t, err)
		require.Len(t, res.Data, 2)
		assert.EqualValues(t, 2, res.Meta.Total)

		titles := []string{res.Data[0].Title, res.Data[1].Title}
		assert.ElementsMatch(t, []string{marker + " popular", marker + " quiet"}, titles)
	})

	t.Run("Tag filter narrows results", func(t *testing.T) {
		res, err := env.directory.ListPublic(ctx, &dto.PublicListQuery{Tag: marker})
		require.NoError(t, err)
		require.Len(t, res.Data, 1)
		assert.Equal(t, popular.Id, res.Data[0].Id)
	})

	t.Run("Sort by most upvotes", func(t *testing.T) {
		res, err := env.directory.ListPublic(ctx, &dto.PublicListQuery{
			Query: marker,
			Sort:  "most_upvotes",
		})
		require.NoError(t, err)
		require.Len(t, res.Data, 2)
		assert.Equal(t, popular.Id, res.Data[0].Id)
	})

	t.Run("Pagination envelope", func(t *testing.T) {
		res, err := env.directory.ListPublic(ctx, &dto.PublicListQuery{
			PageQuery: dto.PageQuery{Page: 1, Limit: 1},
			Query:     marker,
		})
		require.NoError(t, err)
		assert.Len(t, res.Data, 1)
		assert.Equal(t, 1, res.Meta.CurrentPage)
		assert.Equal(t, 2, res.Meta.LastPage)
		assert.EqualValues(t, 2, res.Meta.Total)
	})

	t.Run("Private listing filters by title", func(t *testing.T) {
		res, err := env.directory.ListPrivate(ctx, callerA, workspaceA, &dto.PrivateListQuery{Query: "popular"})
		require.NoError(t, err)
		require.Len(t, res.Data, 1)
		assert.Equal(t, popular.Id, res.Data[0].Id)
	})
}
