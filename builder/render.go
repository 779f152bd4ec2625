package builder

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/qyvip/utoipa/spec"
)

// MarshalJSON renders a document as indented JSON. Map-backed blocks
// keep their insertion order.
func MarshalJSON(doc *spec.Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// MarshalYAML renders a document as YAML. Map-backed blocks keep their
// insertion order.
func MarshalYAML(doc *spec.Document) ([]byte, error) {
	return yaml.Marshal(doc)
}

// WriteFile renders a document to disk, picking the format from the
// file extension: .json, .yaml, or .yml.
func WriteFile(path string, doc *spec.Document) error {
	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		data, err = MarshalJSON(doc)
	case ".yaml", ".yml":
		data, err = MarshalYAML(doc)
	default:
		return fmt.Errorf("unsupported file extension %q: use .json, .yaml, or .yml", ext)
	}
	if err != nil {
		return fmt.Errorf("marshaling document: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
