package manifest

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/nodewire/internal/ctxlog"
	"github.com/vk/nodewire/internal/fsutil"
)

// Loader parses manifest files. The underlying hclparse.Parser is kept for
// the loader's lifetime so diagnostics can reference source ranges across
// files.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader returns a ready Loader.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// LoadFile parses a single manifest file.
func (l *Loader) LoadFile(path string) (*File, error) {
	hclFile, diags := l.parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse manifest file %s: %w", path, diags)
	}

	var f File
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &f); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode manifest file %s: %w", path, diags)
	}
	return &f, nil
}

// Parse decodes manifest source held in memory. The filename only labels
// diagnostics.
func (l *Loader) Parse(src []byte, filename string) (*File, error) {
	hclFile, diags := l.parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", filename, diags)
	}

	var f File
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &f); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode manifest %s: %w", filename, diags)
	}
	return &f, nil
}

// LoadDir finds and parses every .hcl file under the given path into one
// merged File.
func (l *Loader) LoadDir(ctx context.Context, dir string) (*File, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading manifests from path", "path", dir)

	files, err := fsutil.FindFilesByExtension(dir, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to find manifest files in %s: %w", dir, err)
	}

	merged := &File{}
	if len(files) == 0 {
		logger.Warn("No .hcl manifest files found in path, returning empty manifest", "path", dir)
		return merged, nil
	}

	for _, path := range files {
		f, err := l.LoadFile(path)
		if err != nil {
			return nil, err
		}
		merged.Nodes = append(merged.Nodes, f.Nodes...)
		merged.Wires = append(merged.Wires, f.Wires...)
	}

	return merged, nil
}
