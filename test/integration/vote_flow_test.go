package integration

import (
	"context"
	"testing"

	"note-sharing-be/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoteStateMachine(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	caller, workspaceId := env.createTenant(t)
	voter := env.addMember(t, caller.CompanyId)

	note, err := env.notes.Create(ctx, caller, &dto.CreateNoteRequest{
		Title:       "Vote target",
		Visibility:  "public",
		Status:      "published",
		WorkspaceId: workspaceId,
	})
	require.NoError(t, err)

	upvote := &dto.VoteRequest{Kind: "upvote"}
	downvote := &dto.VoteRequest{Kind: "downvote"}

	t.Run("First vote casts", func(t *testing.T) {
		res, err := env.votes.Cast(ctx, voter, note.Id, upvote)
		require.NoError(t, err)
		assert.Equal(t, 1, res.UpvotesCount)
		assert.Equal(t, 0, res.DownvotesCount)
	})

	t.Run("Same kind toggles off", func(t *testing.T) {
		res, err := env.votes.Cast(ctx, voter, note.Id, upvote)
		require.NoError(t, err)
		assert.Equal(t, 0, res.UpvotesCount)
		assert.Equal(t, 0, res.DownvotesCount)
	})

	t.Run("Opposite kind switches in one step", func(t *testing.T) {
		_, err := env.votes.Cast(ctx, voter, note.Id, upvote)
		require.NoError(t, err)

		res, err := env.votes.Cast(ctx, voter, note.Id, downvote)
		require.NoError(t, err)
		assert.Equal(t, 0, res.UpvotesCount)
		assert.Equal(t, 1, res.DownvotesCount)
	})

	t.Run("Two voters are independent", func(t *testing.T) {
		second := env.addMember(t, caller.CompanyId)
		res, err := env.votes.Cast(ctx, second, note.Id, downvote)
		require.NoError(t, err)
		assert.Equal(t, 0, res.UpvotesCount)
		assert.Equal(t, 2, res.DownvotesCount)

		// First voter toggling off does not disturb the second voter.
		res, err = env.votes.Cast(ctx, voter, note.Id, downvote)
		require.NoError(t, err)
		assert.Equal(t, 1, res.DownvotesCount)
	})
}
