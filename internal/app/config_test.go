package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	cfg, err := NewConfig(Config{ManifestPath: "patch.hcl", LogFormat: "text", LogLevel: "info"})
	require.NoError(t, err)
	assert.Equal(t, "patch.hcl", cfg.ManifestPath)
}

func TestNewConfig_RequiresManifestPath(t *testing.T) {
	_, err := NewConfig(Config{})
	assert.ErrorContains(t, err, "ManifestPath is a required configuration field")
}
