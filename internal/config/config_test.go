package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPassesValidateOnceInputFileSet(t *testing.T) {
	c := Default()
	c.InputFile = "program.dl"
	assert.NoError(t, c.Validate())
}

func TestValidateRejectsMissingInputFile(t *testing.T) {
	c := Default()
	assert.ErrorIs(t, c.Validate(), ErrMissingInputFile)
}

func TestValidateRejectsUnknownFunction(t *testing.T) {
	c := Default()
	c.InputFile = "program.dl"
	c.Function = "not_a_real_function"
	assert.ErrorIs(t, c.Validate(), ErrInvalidFunction)
}

func TestValidateRejectsUnknownModelOutput(t *testing.T) {
	c := Default()
	c.InputFile = "program.dl"
	c.ModelOutput = "not_a_real_mode"
	assert.ErrorIs(t, c.Validate(), ErrInvalidModelOutput)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadParsesYAMLOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tym.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input_file: program.dl\nverbose: true\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "program.dl", c.InputFile)
	assert.True(t, c.Verbose)
	assert.Equal(t, ModelOutputValuation, c.ModelOutput) // default preserved
}

func TestCheckFreshRejectsStaleConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tym.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input_file: program.dl\n"), 0o644))

	future := time.Now().Add(time.Hour)
	assert.ErrorIs(t, CheckFresh(path, future), ErrConfigFileStale)
}

func TestCheckFreshAcceptsFreshConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tym.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input_file: program.dl\n"), 0o644))

	past := time.Now().Add(-time.Hour)
	assert.NoError(t, CheckFresh(path, past))
}
