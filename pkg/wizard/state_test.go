package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGetPath(t *testing.T) {
	m := make(map[string]any)

	SetPath(m, "country.mode", "BR")
	SetPath(m, "language", "pt")

	value, ok := GetPath(m, "country.mode")
	require.True(t, ok)
	assert.Equal(t, "BR", value)

	value, ok = GetPath(m, "language")
	require.True(t, ok)
	assert.Equal(t, "pt", value)

	_, ok = GetPath(m, "country.missing")
	assert.False(t, ok)
	_, ok = GetPath(m, "missing.entirely")
	assert.False(t, ok)
}

func TestSetPathOverwritesScalarIntermediate(t *testing.T) {
	m := map[string]any{"country": "BR"}

	SetPath(m, "country.mode", "US")

	value, ok := GetPath(m, "country.mode")
	require.True(t, ok)
	assert.Equal(t, "US", value)
}

func TestDeletePathPrunesEmptyParents(t *testing.T) {
	m := make(map[string]any)
	SetPath(m, "country.mode", "BR")

	DeletePath(m, "country.mode")

	// The emptied intermediate map is pruned too, so the top-level answered
	// check no longer sees the key.
	assert.False(t, TopLevelSet(m, "country.mode"))
	assert.Empty(t, m)
}

func TestDeletePathKeepsSiblings(t *testing.T) {
	m := make(map[string]any)
	SetPath(m, "country.mode", "BR")
	SetPath(m, "country.state", "SP")

	DeletePath(m, "country.mode")

	assert.True(t, TopLevelSet(m, "country.state"))
	_, ok := GetPath(m, "country.state")
	assert.True(t, ok)
	_, ok = GetPath(m, "country.mode")
	assert.False(t, ok)
}

func TestTopLevelSetIsShallow(t *testing.T) {
	m := make(map[string]any)
	SetPath(m, "industry.sector", "retail")

	// Any path under an existing top-level key counts as set.
	assert.True(t, TopLevelSet(m, "industry.sector"))
	assert.True(t, TopLevelSet(m, "industry.other.deep"))
	assert.False(t, TopLevelSet(m, "finance.runway"))
}

func TestEnsureWizardDefaultsPartialDocument(t *testing.T) {
	doc := &Document{}

	EnsureWizard(doc, "wf", "2.0", true)

	require.NotNil(t, doc.Answers)
	require.NotNil(t, doc.Company)
	require.NotNil(t, doc.Wizard)
	assert.Equal(t, "wf", doc.Wizard.WorkflowID)
	assert.Equal(t, "2.0", doc.Wizard.Version)
	assert.Equal(t, StageCoreIntake, doc.Wizard.ActiveStage)
	assert.True(t, doc.Wizard.DynamicEnabled)
}

func TestEnsureWizardRepairsNilSlices(t *testing.T) {
	doc := &Document{
		Answers: map[string]any{"language": "en"},
		Wizard:  &WizardState{},
	}

	EnsureWizard(doc, "wf", "1.0", false)

	assert.NotNil(t, doc.Wizard.Queue)
	assert.NotNil(t, doc.Wizard.Asked)
	assert.NotNil(t, doc.Wizard.HelpEvents)
	assert.Equal(t, StageCoreIntake, doc.Wizard.ActiveStage)
	// Existing answers are untouched.
	assert.Equal(t, "en", doc.Answers["language"])
}

func TestResetPreservesCompanyProfile(t *testing.T) {
	doc := NewDocument("wf", "1.0", true)
	doc.Answers["language"] = "pt"
	doc.Company["country"] = "BR"
	doc.Wizard.Asked = []string{"core.language"}

	doc.Reset("wf", "1.0", true)

	assert.Empty(t, doc.Answers)
	assert.Equal(t, "BR", doc.Company["country"])
	assert.Empty(t, doc.Wizard.Asked)
	assert.Equal(t, StageCoreIntake, doc.Wizard.ActiveStage)
}

func TestSpecialistStageHelpers(t *testing.T) {
	state := newWizardState("wf", "1.0", true)

	assert.False(t, state.InSpecialistStage())
	assert.Equal(t, StageCoreIntake, state.SpecialistStage())

	state.ActiveStage = StageSpecialistPrefix + "compliance"
	assert.True(t, state.InSpecialistStage())
	assert.Equal(t, "compliance", state.SpecialistStage())
}
