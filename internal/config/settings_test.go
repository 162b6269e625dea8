package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renum/internal/domain"
)

func TestLoadSettings_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("RENUM_HOME", t.TempDir())

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, &Settings{}, settings)
}

func TestSaveAndLoadSettings_RoundTrip(t *testing.T) {
	t.Setenv("RENUM_HOME", t.TempDir())

	sep := "-"
	start := 100
	in := &Settings{
		BaseName:         "photo",
		Separator:        &sep,
		StartNumber:      &start,
		SortMethod:       "date_modified",
		ConflictStrategy: "skip",
		Padding:          "3",
	}
	require.NoError(t, SaveSettings(in))

	out, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLoadSettings_InvalidJSON(t *testing.T) {
	home := t.TempDir()
	t.Setenv("RENUM_HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte("{oops"), 0644))

	_, err := LoadSettings()
	assert.ErrorContains(t, err, "invalid settings.json")
}

func TestRenameConfig_DefaultsWhenEmpty(t *testing.T) {
	cfg := (&Settings{}).RenameConfig()
	assert.Equal(t, domain.DefaultRenameConfig(), cfg)
}

func TestRenameConfig_OverlaysPersistedValues(t *testing.T) {
	sep := ""
	start := 0
	settings := &Settings{
		BaseName:         "clip",
		Separator:        &sep,
		StartNumber:      &start,
		ConflictStrategy: "add_suffix",
		Padding:          "none",
	}

	cfg := settings.RenameConfig()
	assert.Equal(t, "clip", cfg.BaseName)
	assert.Equal(t, "", cfg.Separator, "empty separator is a real value, not an absent one")
	assert.Equal(t, 0, cfg.StartNumber)
	assert.Equal(t, domain.ConflictAddSuffix, cfg.ConflictStrategy)
	assert.Equal(t, domain.PaddingNone, cfg.Padding)
	assert.Equal(t, domain.DefaultSortMethod, cfg.SortMethod, "untouched fields keep their defaults")
}

func TestHistoryPathOrDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("RENUM_HOME", home)

	custom := &Settings{HistoryPath: "/tmp/elsewhere.json"}
	assert.Equal(t, "/tmp/elsewhere.json", custom.HistoryPathOrDefault())

	assert.Equal(t, DefaultHistoryPath(), (&Settings{}).HistoryPathOrDefault())
	assert.Equal(t, filepath.Join(home, "history.json"), (&Settings{}).HistoryPathOrDefault())
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "renames.json"), ExpandPath("~/renames.json"))
	assert.Equal(t, "/absolute/path.json", ExpandPath("/absolute/path.json"))
}
