package types

import (
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"
)

// ManifestFileNames are the manifest filenames recognized at a project
// root, in lookup order.
var ManifestFileNames = []string{"extension.yaml", "extension.yml"}

// Manifest is a read-only view over a parsed extension manifest. The wizard
// steps are decoded once here so validators never re-inspect raw step keys.
type Manifest struct {
	root  *ConfigNode
	steps []WizardStep
}

// ParseManifest reads and parses the manifest at the given path.
func ParseManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	m, err := ParseManifestBytes(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return m, nil
}

// FindManifest locates the manifest file at a project root.
func FindManifest(root string) (string, error) {
	for _, name := range ManifestFileNames {
		path := filepath.Join(root, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("no extension manifest found in %s (expected %s)", root, ManifestFileNames[0])
}

// ParseManifestBytes parses manifest content from memory.
func ParseManifestBytes(data []byte) (*Manifest, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	m := &Manifest{root: NewConfigNode(&node)}
	m.steps = decodeWizardSteps(m.setupNode())
	return m, nil
}

// Root returns the manifest's root node.
func (m *Manifest) Root() *ConfigNode {
	if m == nil {
		return nil
	}
	return m.root
}

// Extension returns the top-level extension block.
func (m *Manifest) Extension() *ConfigNode {
	return m.Root().Get("extension")
}

// Steps returns the decoded setup wizard steps in document order.
func (m *Manifest) Steps() []WizardStep {
	if m == nil {
		return nil
	}
	return m.steps
}

// setupNode returns the wizard step sequence, preferring the canonical
// extension.setup location over the legacy top-level setup key.
func (m *Manifest) setupNode() *ConfigNode {
	if setup := m.Extension().Get("setup"); !setup.IsAbsent() {
		return setup
	}
	return m.Root().Get("setup")
}

// ConfigurationKeys returns the set of keys declared under
// extension.configuration. Wizard collect references resolve against it.
func (m *Manifest) ConfigurationKeys() map[string]bool {
	cfg := m.Extension().Get("configuration")
	if !cfg.IsMapping() {
		return nil
	}
	keys := make(map[string]bool, cfg.Len())
	for _, k := range cfg.Keys() {
		keys[k] = true
	}
	return keys
}
