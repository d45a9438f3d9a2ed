package main

import (
	"testing"

	"github.com/splitview/splitview/internal/config"
	"github.com/splitview/splitview/internal/divider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewState_Defaults(t *testing.T) {
	cfg, err := config.DefaultConfig()
	require.NoError(t, err)

	state, err := newState(cfg)
	require.NoError(t, err)
	assert.True(t, state.Expanded)
	assert.Equal(t, 3.0, state.Config().MinimumBottomHeight)
}

func TestNewState_RejectsInvalidRange(t *testing.T) {
	cfg, err := config.DefaultConfig()
	require.NoError(t, err)
	require.NoError(t, cfg.Load("[split]\nrange = [0.9, 0.95]\n"))

	_, err = newState(cfg)
	assert.ErrorIs(t, err, divider.ErrInvalidConfig)
}

func TestNewState_RejectsMalformedRange(t *testing.T) {
	cfg, err := config.DefaultConfig()
	require.NoError(t, err)
	require.NoError(t, cfg.Load("[split]\nrange = [0.2]\n"))

	_, err = newState(cfg)
	assert.ErrorIs(t, err, divider.ErrInvalidConfig)
}
