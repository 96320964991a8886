package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"structor/pkg/wizard"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)

	doc := wizard.NewDocument("business-structuring", "1.0", true)
	wizard.SetPath(doc.Answers, "country.mode", "BR")
	wizard.SetPath(doc.Answers, "finance.payment_methods", []string{"PIX", "BOLETO"})
	doc.Wizard.Asked = []string{"core.country_mode"}
	doc.Wizard.ActiveStage = wizard.StageDeepIntake

	require.NoError(t, s.Save("session-1", doc))

	loaded, err := s.Load("session-1")
	require.NoError(t, err)

	value, ok := wizard.GetPath(loaded.Answers, "country.mode")
	require.True(t, ok)
	assert.Equal(t, "BR", value)
	assert.Equal(t, []string{"core.country_mode"}, loaded.Wizard.Asked)
	assert.Equal(t, wizard.StageDeepIntake, loaded.Wizard.ActiveStage)

	// YAML round-trips lists as []any; context coercion handles it.
	ctx := wizard.BuildContext(loaded, "en", "GENERAL")
	assert.Equal(t, []string{"PIX", "BOLETO"}, ctx.AnswerStrings("finance.payment_methods"))
}

func TestLoadMissingSessionReturnsEmptyDocument(t *testing.T) {
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)

	doc, err := s.Load("never-saved")
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Nil(t, doc.Wizard)
}

func TestSaveRejectsBadSessionID(t *testing.T) {
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)

	doc := wizard.NewDocument("wf", "1.0", true)
	assert.Error(t, s.Save("", doc))
	assert.Error(t, s.Save("../escape", doc))
	assert.Error(t, s.Save("with spaces", doc))
}

func TestDeleteIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir)
	require.NoError(t, err)

	doc := wizard.NewDocument("wf", "1.0", true)
	require.NoError(t, s.Save("session-1", doc))
	require.NoError(t, s.Delete("session-1"))
	require.NoError(t, s.Delete("session-1"))

	_, statErr := os.Stat(filepath.Join(dir, "session-1.yaml"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestList(t *testing.T) {
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)

	doc := wizard.NewDocument("wf", "1.0", true)
	require.NoError(t, s.Save("beta", doc))
	require.NoError(t, s.Save("alpha", doc))

	ids, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, ids)
}
