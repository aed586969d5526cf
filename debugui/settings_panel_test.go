package debugui_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/stacker/debugui"
	"github.com/plus3/stacker/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestSettingsPanelStep(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.txt")
	s := settings.New()

	var applied []settings.Values
	panel := debugui.NewSettingsPanel(s, path, func(p settings.Provider) {
		applied = append(applied, p.Values())
	}, zaptest.NewLogger(t))

	require.NoError(t, panel.Step(settings.StartingLevel, 1))
	assert.Equal(t, 2, s.Values().StartingLevel)
	require.Len(t, applied, 1)
	assert.Equal(t, 2, applied[0].StartingLevel)

	require.NoError(t, panel.Step(settings.StartingLevel, -2))
	assert.Equal(t, 15, s.Values().StartingLevel, "stepping below the first choice wraps")

	require.NoError(t, panel.Step(settings.Hold, 1))
	assert.False(t, s.Values().HoldEnabled)

	loaded, err := settings.Load(path)
	require.NoError(t, err)
	assert.Equal(t, s.Encode(), loaded.Encode(), "every change is saved")

	require.NoError(t, panel.Reset())
	assert.Equal(t, settings.Defaults(), s.Values())
	assert.Equal(t, settings.Defaults(), applied[len(applied)-1])

	assert.ErrorIs(t, panel.Step(settings.Key(99), 1), settings.ErrOutOfRange)
}

func TestSettingsPanelSaveFailure(t *testing.T) {
	s := settings.New()
	missing := filepath.Join(t.TempDir(), "missing", "settings.txt")
	panel := debugui.NewSettingsPanel(s, missing, nil, nil)

	err := panel.Step(settings.Ghost, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.False(t, s.Values().GhostEnabled, "the change still applies when saving fails")
}
