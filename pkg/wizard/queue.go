package wizard

import (
	"sort"

	"structor/pkg/logx"
)

// Enqueue appends candidate questions to the pending queue, skipping any id
// already queued or already asked, then re-sorts the whole queue by priority
// descending with ties broken by id ascending. The deterministic ordering is
// required because multiple specialists may enqueue in the same refresh cycle.
// Returns the number of questions actually added.
func Enqueue(state *WizardState, questions []Question) int {
	if state == nil || len(questions) == 0 {
		return 0
	}
	if state.Queue == nil {
		state.Queue = make([]Question, 0, len(questions))
	}

	queued := make(map[string]bool, len(state.Queue))
	for i := range state.Queue {
		queued[state.Queue[i].ID] = true
	}
	asked := make(map[string]bool, len(state.Asked))
	for _, id := range state.Asked {
		asked[id] = true
	}

	added := 0
	for i := range questions {
		q := questions[i]
		if queued[q.ID] || asked[q.ID] {
			continue
		}
		state.Queue = append(state.Queue, q)
		queued[q.ID] = true
		added++
	}

	sort.SliceStable(state.Queue, func(i, j int) bool {
		if state.Queue[i].Priority != state.Queue[j].Priority {
			return state.Queue[i].Priority > state.Queue[j].Priority
		}
		return state.Queue[i].ID < state.Queue[j].ID
	})

	if added > 0 {
		logx.Debug("wizard", "Enqueued %d of %d candidate questions (queue depth %d)",
			added, len(questions), len(state.Queue))
	}
	return added
}

// Pop removes the head of the queue and makes it the pending question,
// setting CurrentQuestionID, AwaitingAnswerFor, and LastQuestion together.
// This is the only place allowed to set those three fields to a non-null
// value simultaneously. Returns nil when the queue is empty, which callers
// interpret as "this phase of intake is complete", not as an error.
func Pop(state *WizardState) *Question {
	if state == nil || len(state.Queue) == 0 {
		return nil
	}

	head := state.Queue[0]
	state.Queue = state.Queue[1:]

	state.CurrentQuestionID = head.ID
	state.AwaitingAnswerFor = head.ID
	snapshot := head
	state.LastQuestion = &snapshot

	return &snapshot
}

// MarkAsked records the id as presented (idempotent append) and clears the
// pending pointers. LastQuestion is intentionally left untouched: skip and
// normal answer handling clear it themselves, and going back repopulates it.
func MarkAsked(state *WizardState, id string) {
	if state == nil || id == "" {
		return
	}
	already := false
	for _, asked := range state.Asked {
		if asked == id {
			already = true
			break
		}
	}
	if !already {
		state.Asked = append(state.Asked, id)
	}
	state.CurrentQuestionID = ""
	state.AwaitingAnswerFor = ""
}

// RePose makes a previously asked question the pending one again, restoring
// the three pointer fields from the snapshot. Used by back navigation.
func RePose(state *WizardState, q *Question) {
	if state == nil || q == nil {
		return
	}
	snapshot := *q
	state.CurrentQuestionID = snapshot.ID
	state.AwaitingAnswerFor = snapshot.ID
	state.LastQuestion = &snapshot
}
