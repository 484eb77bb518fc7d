package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readmetrics/readmetrics/pkg/config"
	"github.com/readmetrics/readmetrics/pkg/graphics"
)

func TestRenderOptions(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	cfg.Render.Locale = "en"
	cfg.Render.SymbolVersion = 2

	opts, err := renderOptions(cfg)
	require.NoError(t, err)

	assert.Equal(t, graphics.VersionTwo, opts.Symbols)
	assert.Equal(t, "en", opts.Translator.Locale())
	assert.Equal(t, "Morning", opts.Translator.T("Morning"))
}

func TestRenderOptions_BadSymbolVersion(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	cfg.Render.Locale = "en"
	cfg.Render.SymbolVersion = 7

	_, err := renderOptions(cfg)
	assert.ErrorIs(t, err, graphics.ErrUnknownSymbolVersion)
}

func TestNewRunCommand_Flags(t *testing.T) {
	t.Parallel()

	cmd := NewRunCommand()

	assert.Equal(t, "run", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("config"))
	assert.NotNil(t, cmd.Flags().Lookup("dry-run"))
}
