package voting

// State is the caller's current vote on a note.
type State string

const (
	None     State = "none"
	Upvote   State = "upvote"
	Downvote State = "downvote"
)

// Delta is the counter adjustment a transition produces. Both fields are
// in [-1, 1] and are applied to the note row in the same transaction as
// the vote row change.
type Delta struct {
	Up   int
	Down int
}

// Transition resolves a vote request against the caller's existing vote:
// no vote -> cast, same kind -> toggle off, different kind -> switch.
func Transition(existing, requested State) (State, Delta) {
	if existing == requested {
		// Toggle off: the vote row is removed.
		return None, kindDelta(requested, -1)
	}

	d := kindDelta(requested, +1)
	if existing != None {
		old := kindDelta(existing, -1)
		d.Up += old.Up
		d.Down += old.Down
	}
	return requested, d
}

func kindDelta(kind State, n int) Delta {
	if kind == Upvote {
		return Delta{Up: n}
	}
	return Delta{Down: n}
}
