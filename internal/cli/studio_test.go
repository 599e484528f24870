package cli

import (
	"strings"
	"testing"

	"github.com/alexanderramin/stanza/internal/domain"
	"github.com/alexanderramin/stanza/internal/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStudioDriver(t *testing.T, form domain.FormKind, mood domain.Category, seed int64) *teatest.Driver {
	t.Helper()
	app := testApp(t)
	m := newStudioModel(app.composeUseCase(), app.analyzeUseCase(), form, mood, seed)
	d := teatest.New(t, m, teatest.WithSize(100, 40))
	d.DrainInit()
	return d
}

func studio(d *teatest.Driver) studioModel {
	return d.Model.(studioModel)
}

func TestStudio_InitComposes(t *testing.T) {
	d := newStudioDriver(t, domain.FormHaiku, "", 11)

	m := studio(d)
	require.NoError(t, m.err)
	require.NotNil(t, m.poem)
	assert.Len(t, m.poem.Lines, 3)
	assert.Contains(t, d.View(), "STANZA STUDIO")
	assert.Contains(t, d.View(), "HAIKU")
	assert.Contains(t, d.View(), "new poem")
}

func TestStudio_CyclesFormAndMood(t *testing.T) {
	d := newStudioDriver(t, domain.FormHaiku, "", 11)

	d.PressKey('f')
	assert.Len(t, studio(d).poem.Lines, 5)
	assert.Equal(t, domain.FormTanka, studio(d).poem.Form)

	d.PressTab()
	assert.Len(t, studio(d).poem.Lines, 14)

	d.PressKey('m')
	assert.Equal(t, domain.CategoryNature, studio(d).poem.Mood)
	assert.Contains(t, d.View(), "● nature")
}

func TestStudio_NextUsesNextSeed(t *testing.T) {
	d := newStudioDriver(t, domain.FormSonnet, "", 40)
	assert.Equal(t, int64(40), studio(d).poem.Seed)

	d.PressKey('n')
	assert.Equal(t, int64(41), studio(d).poem.Seed)

	// A second session with the same seed replays the same poems.
	e := newStudioDriver(t, domain.FormSonnet, "", 40)
	e.PressKey('n')
	assert.Equal(t, studio(d).poem.Lines, studio(e).poem.Lines)
}

func TestStudio_AnalysisToggle(t *testing.T) {
	d := newStudioDriver(t, domain.FormHaiku, "", 5)

	d.PressKey('a')
	m := studio(d)
	require.NotNil(t, m.report)
	assert.Equal(t, len(m.poem.Lines), m.report.Structure.Lines)
	assert.Contains(t, d.View(), "ANALYSIS")

	// New poems are analyzed while the panel is open.
	d.PressKey('n')
	require.NotNil(t, studio(d).report)

	d.PressKey('a')
	assert.NotContains(t, d.View(), "ANALYSIS")
}

func TestStudio_UnknownMoodIsKept(t *testing.T) {
	d := newStudioDriver(t, domain.FormHaiku, "weather", 2)

	assert.Equal(t, domain.Category("weather"), studio(d).poem.Mood)
	assert.True(t, strings.Contains(d.View(), "not in vocabulary"))
}

func TestStudio_Quit(t *testing.T) {
	d := newStudioDriver(t, domain.FormHaiku, "", 1)
	d.PressKey('q')
	assert.True(t, d.Quitting)
}
