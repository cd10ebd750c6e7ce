package voting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransition(t *testing.T) {
	cases := []struct {
		name      string
		existing  State
		requested State
		wantState State
		wantDelta Delta
	}{
		{"first upvote", None, Upvote, Upvote, Delta{Up: 1}},
		{"first downvote", None, Downvote, Downvote, Delta{Down: 1}},
		{"toggle off upvote", Upvote, Upvote, None, Delta{Up: -1}},
		{"toggle off downvote", Downvote, Downvote, None, Delta{Down: -1}},
		{"switch up to down", Upvote, Downvote, Downvote, Delta{Up: -1, Down: 1}},
		{"switch down to up", Downvote, Upvote, Upvote, Delta{Up: 1, Down: -1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			state, delta := Transition(tc.existing, tc.requested)
			assert.Equal(t, tc.wantState, state)
			assert.Equal(t, tc.wantDelta, delta)
		})
	}
}

func TestToggleIsIdempotentOverTwoCalls(t *testing.T) {
	// Casting the same kind twice returns the counters to their
	// pre-first-vote values.
	state, first := Transition(None, Upvote)
	_, second := Transition(state, Upvote)

	assert.Zero(t, first.Up+second.Up)
	assert.Zero(t, first.Down+second.Down)
}

func TestSwitchPreservesTotalVotes(t *testing.T) {
	_, delta := Transition(Upvote, Downvote)
	assert.Zero(t, delta.Up+delta.Down)

	_, delta = Transition(Downvote, Upvote)
	assert.Zero(t, delta.Up+delta.Down)
}
