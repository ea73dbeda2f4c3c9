package manifest

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/nodewire/internal/ctxlog"
)

func testContext() context.Context {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return ctxlog.WithLogger(context.Background(), logger)
}

const sampleManifest = `
node "osc" {
  x = 40
  y = 80
  output "out" { capabilities = ["caps.Audio"] }
  parameter "freq" {
    capabilities = ["caps.Float"]
    default      = 440
  }
}

node "mixer" {
  input "left"  { capabilities = ["caps.Audio"] }
  input "right" { capabilities = ["caps.Audio"] }
  output "out"  { capabilities = ["caps.Audio"] }
}

wire {
  from = "osc.out"
  to   = "mixer.left"
}
`

func TestParse(t *testing.T) {
	f, err := NewLoader().Parse([]byte(sampleManifest), "sample.hcl")
	require.NoError(t, err)

	require.Len(t, f.Nodes, 2)
	require.Len(t, f.Wires, 1)

	osc := f.FindNode("osc")
	require.NotNil(t, osc)
	assert.Equal(t, 40.0, osc.X)
	assert.Equal(t, 80.0, osc.Y)
	require.Len(t, osc.Outputs, 1)
	assert.Equal(t, []string{"caps.Audio"}, osc.Outputs[0].Capabilities)

	require.Len(t, osc.Parameters, 1)
	freq := osc.Parameters[0]
	assert.Equal(t, "freq", freq.Name)
	assert.True(t, cty.NumberIntVal(440).RawEquals(freq.Default))

	mixer := f.FindNode("mixer")
	require.NotNil(t, mixer)
	assert.Len(t, mixer.Inputs, 2)
	require.NotNil(t, mixer.FindPort("left"))
	assert.Nil(t, mixer.FindPort("missing"))

	assert.Equal(t, "osc.out", f.Wires[0].From)
	assert.Equal(t, "mixer.left", f.Wires[0].To)
}

func TestParse_Errors(t *testing.T) {
	l := NewLoader()

	t.Run("syntax error", func(t *testing.T) {
		_, err := l.Parse([]byte(`node "a" {`), "broken.hcl")
		assert.ErrorContains(t, err, "failed to parse manifest")
	})

	t.Run("unknown block", func(t *testing.T) {
		_, err := l.Parse([]byte(`widget "a" {}`), "unknown.hcl")
		assert.ErrorContains(t, err, "failed to decode manifest")
	})
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "patches")
	require.NoError(t, os.Mkdir(sub, 0o755))

	writeFile := func(path, content string) {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	writeFile(filepath.Join(dir, "nodes.hcl"), `
node "osc" {
  output "out" { capabilities = ["caps.Audio"] }
}
node "mixer" {
  input "in" { capabilities = ["caps.Audio"] }
}
`)
	writeFile(filepath.Join(sub, "wires.hcl"), `
wire {
  from = "osc.out"
  to   = "mixer.in"
}
`)
	writeFile(filepath.Join(dir, "notes.txt"), "ignored")

	f, err := NewLoader().LoadDir(testContext(), dir)
	require.NoError(t, err)
	assert.Len(t, f.Nodes, 2)
	assert.Len(t, f.Wires, 1)
}

func TestLoadDir_Empty(t *testing.T) {
	f, err := NewLoader().LoadDir(testContext(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, f.Nodes)
	assert.Empty(t, f.Wires)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := NewLoader().LoadFile(filepath.Join(t.TempDir(), "nope.hcl"))
	assert.Error(t, err)
}
