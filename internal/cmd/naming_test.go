package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renum/internal/config"
	"renum/internal/domain"
)

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	return path
}

func TestCollectFiles_EmptySelection(t *testing.T) {
	_, err := collectFiles(nil, "")
	assert.ErrorContains(t, err, "no files selected")
}

func TestCollectFiles_FromDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt")
	writeFile(t, dir, "b.txt")

	files, err := collectFiles(nil, dir)
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestCollectFiles_MixedBatchKeepsInaccessibleFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt")
	missing := filepath.Join(dir, "missing.txt")

	files, err := collectFiles([]string{a, missing}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{a, missing}, files,
		"inaccessible files stay in the batch and surface as invalid plan entries")
}

func TestCollectFiles_NoAccessibleFilesRejected(t *testing.T) {
	dir := t.TempDir()
	_, err := collectFiles([]string{filepath.Join(dir, "gone.txt")}, "")
	assert.ErrorContains(t, err, "No accessible files")
}

func TestBuildConfig_FlagAtDefaultDefersToSettings(t *testing.T) {
	flags := NamingFlags{
		Base:       domain.DefaultBaseName,
		Separator:  domain.DefaultSeparator,
		Start:      domain.DefaultStartNumber,
		Sort:       string(domain.DefaultSortMethod),
		OnConflict: string(domain.DefaultConflictStrategy),
		Padding:    string(domain.DefaultPadding),
	}
	settings := &config.Settings{BaseName: "photo", ConflictStrategy: "skip"}

	cfg, err := flags.buildConfig(settings)
	require.NoError(t, err)
	assert.Equal(t, "photo", cfg.BaseName)
	assert.Equal(t, domain.ConflictSkip, cfg.ConflictStrategy)
}

func TestBuildConfig_ExplicitFlagOverridesSettings(t *testing.T) {
	flags := NamingFlags{
		Base:       "clip",
		Separator:  domain.DefaultSeparator,
		Start:      domain.DefaultStartNumber,
		Sort:       string(domain.DefaultSortMethod),
		OnConflict: string(domain.DefaultConflictStrategy),
		Padding:    string(domain.DefaultPadding),
	}
	settings := &config.Settings{BaseName: "photo"}

	cfg, err := flags.buildConfig(settings)
	require.NoError(t, err)
	assert.Equal(t, "clip", cfg.BaseName)
}

func TestBuildConfig_InvalidBaseNameIsHardError(t *testing.T) {
	flags := NamingFlags{
		Base:       "bad/name",
		Separator:  domain.DefaultSeparator,
		Start:      domain.DefaultStartNumber,
		Sort:       string(domain.DefaultSortMethod),
		OnConflict: string(domain.DefaultConflictStrategy),
		Padding:    string(domain.DefaultPadding),
	}

	_, err := flags.buildConfig(nil)
	assert.ErrorContains(t, err, "invalid base name")
}
