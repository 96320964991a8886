package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQuestion(id string, priority int) Question {
	return Question{
		ID:       id,
		Type:     TypeText,
		Priority: priority,
		Text: Text{
			LangEN: "Question " + id,
			LangPT: "Pergunta " + id,
		},
		SaveTo: SaveTo{Answers: "test." + id},
	}
}

func TestEnqueueOrdering(t *testing.T) {
	state := newWizardState("wf", "1.0", true)

	added := Enqueue(state, []Question{
		testQuestion("b", 100),
		testQuestion("a", 300),
		testQuestion("c", 300),
	})
	require.Equal(t, 3, added)

	// Priority descending, ties broken by id ascending.
	require.Len(t, state.Queue, 3)
	assert.Equal(t, "a", state.Queue[0].ID)
	assert.Equal(t, "c", state.Queue[1].ID)
	assert.Equal(t, "b", state.Queue[2].ID)
}

func TestEnqueueDeduplicates(t *testing.T) {
	state := newWizardState("wf", "1.0", true)

	Enqueue(state, []Question{testQuestion("a", 100)})
	added := Enqueue(state, []Question{testQuestion("a", 100), testQuestion("b", 50)})

	assert.Equal(t, 1, added)
	require.Len(t, state.Queue, 2)
}

func TestEnqueueSkipsAsked(t *testing.T) {
	state := newWizardState("wf", "1.0", true)
	state.Asked = []string{"a"}

	added := Enqueue(state, []Question{testQuestion("a", 100), testQuestion("b", 50)})

	assert.Equal(t, 1, added)
	require.Len(t, state.Queue, 1)
	assert.Equal(t, "b", state.Queue[0].ID)
}

func TestPopSetsPendingPointers(t *testing.T) {
	state := newWizardState("wf", "1.0", true)
	Enqueue(state, []Question{testQuestion("a", 100)})

	q := Pop(state)
	require.NotNil(t, q)
	assert.Equal(t, "a", q.ID)
	assert.Equal(t, "a", state.CurrentQuestionID)
	assert.Equal(t, "a", state.AwaitingAnswerFor)
	require.NotNil(t, state.LastQuestion)
	assert.Equal(t, "a", state.LastQuestion.ID)
	assert.Empty(t, state.Queue)
	assert.True(t, state.Pending())
}

func TestPopEmptyQueueReturnsNil(t *testing.T) {
	state := newWizardState("wf", "1.0", true)
	assert.Nil(t, Pop(state))
	assert.False(t, state.Pending())
}

func TestMarkAskedClearsPointersKeepsLastQuestion(t *testing.T) {
	state := newWizardState("wf", "1.0", true)
	Enqueue(state, []Question{testQuestion("a", 100)})
	Pop(state)

	MarkAsked(state, "a")

	assert.Equal(t, []string{"a"}, state.Asked)
	assert.Empty(t, state.CurrentQuestionID)
	assert.Empty(t, state.AwaitingAnswerFor)
	// LastQuestion survives for back navigation; answer handling clears it.
	assert.NotNil(t, state.LastQuestion)
	assert.False(t, state.Pending())
}

func TestMarkAskedIdempotent(t *testing.T) {
	state := newWizardState("wf", "1.0", true)

	MarkAsked(state, "a")
	MarkAsked(state, "a")

	assert.Equal(t, []string{"a"}, state.Asked)
}

func TestRePoseRestoresPending(t *testing.T) {
	state := newWizardState("wf", "1.0", true)
	q := testQuestion("a", 100)

	RePose(state, &q)

	assert.True(t, state.Pending())
	assert.Equal(t, "a", state.AwaitingAnswerFor)
	require.NotNil(t, state.LastQuestion)
	assert.Equal(t, "a", state.LastQuestion.ID)
}
