// Package testsuite is the golden-file test harness consumed by
// cmd/polarity (§6 CLI, supplemented from the original's
// test/test-runner/src/cli/run.rs). Cases are not discovered by scanning
// source files — there is no parser in this core (§1 Non-goals still
// exclude lexing/parsing) — so the suite is a small static registry of
// programmatically built modules, each checked against an expected
// output recorded in a YAML manifest, mirroring the teacher's
// eval_harness BenchmarkSpec loader.
package testsuite

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ManifestEntry pins one case's expected output, keyed by case name.
type ManifestEntry struct {
	Name     string `yaml:"name"`
	Expected string `yaml:"expected"`
}

// Manifest is the full golden-expectation file: testsuite/manifest.yaml.
type Manifest struct {
	Cases []ManifestEntry `yaml:"cases"`
}

// LoadManifest reads a manifest from path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}

// Save writes m back to path, used by --update-expected.
func (m *Manifest) Save(path string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Expected returns the recorded expectation for name, or "" with ok=false
// if the manifest has no entry for it yet.
func (m *Manifest) Expected(name string) (string, bool) {
	for _, e := range m.Cases {
		if e.Name == name {
			return e.Expected, true
		}
	}
	return "", false
}

// Set records or overwrites name's expected output.
func (m *Manifest) Set(name, expected string) {
	for i, e := range m.Cases {
		if e.Name == name {
			m.Cases[i].Expected = expected
			return
		}
	}
	m.Cases = append(m.Cases, ManifestEntry{Name: name, Expected: expected})
}
