package main

import (
	"testing"

	"github.com/kevinawalsh/tym/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdDefaultsMatchSpec(t *testing.T) {
	cfg = config.Default()
	root := newRootCmd()
	require.NoError(t, root.ParseFlags([]string{"--input_file", "program.dl"}))
	require.NoError(t, root.PreRunE(root, nil))
	assert.Equal(t, "program.dl", cfg.InputFile)
	assert.Equal(t, config.ModelOutputValuation, cfg.ModelOutput)
	assert.NoError(t, cfg.Validate())
}

func TestRootCmdRejectsUnknownFunction(t *testing.T) {
	cfg = config.Default()
	cfg.InputFile = "program.dl"
	cfg.Function = "bogus"
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidFunction)
}
