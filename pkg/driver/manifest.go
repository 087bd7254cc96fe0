// Package driver hosts the embedding around the evaluator: the
// program.yml manifest describing a Lyre project and the fetcher that
// installs its git-sourced program libraries.
package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Manifest represents the parsed contents of program.yml.
type Manifest struct {
	Path         string
	Name         string
	Version      string
	Authors      []string
	Programs     map[string]*ProgramSpec
	ProgramOrder []string
	Dependencies map[string]*DependencySpec
}

// ProgramSpec describes a runnable program target: a JSON expression
// document produced by the front end.
type ProgramSpec struct {
	Name string
	Main string
}

// DependencySpec describes a git-sourced program library.
type DependencySpec struct {
	Git    string
	Tag    string
	Branch string
	Rev    string
}

// ValidationError aggregates manifest validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "manifest: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("manifest validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// ErrNoDefaultProgram is returned when a manifest defines no runnable entry.
var ErrNoDefaultProgram = errors.New("manifest: no default program defined")

// LoadManifest parses program.yml from disk, returning a validated manifest.
func LoadManifest(path string) (*Manifest, error) {
	if path == "" {
		return nil, fmt.Errorf("manifest: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("manifest: open %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var raw manifestFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("manifest: %s is empty", absPath)
		}
		return nil, fmt.Errorf("manifest: parse %s: %w", absPath, err)
	}

	manifest := raw.toManifest(absPath)
	if err := manifest.validate(); err != nil {
		return nil, err
	}
	return manifest, nil
}

func (m *Manifest) validate() error {
	var errs ValidationError
	if m.Name == "" {
		errs.Issues = append(errs.Issues, "name must be provided")
	}
	for i, author := range m.Authors {
		if author == "" {
			errs.Issues = append(errs.Issues, fmt.Sprintf("authors[%d] must be a non-empty string", i))
		}
	}
	for _, name := range m.ProgramOrder {
		spec := m.Programs[name]
		if spec == nil {
			continue
		}
		if spec.Main == "" {
			errs.Issues = append(errs.Issues, fmt.Sprintf("program %q requires a main entrypoint", spec.Name))
		}
	}
	for depName, dep := range m.Dependencies {
		if dep == nil {
			continue
		}
		if dep.Git == "" {
			errs.Issues = append(errs.Issues, fmt.Sprintf("dependencies.%s: a git source must be provided", depName))
		}
		pins := 0
		for _, pin := range []string{dep.Tag, dep.Branch, dep.Rev} {
			if pin != "" {
				pins++
			}
		}
		if pins > 1 {
			errs.Issues = append(errs.Issues, fmt.Sprintf("dependencies.%s: tag, branch and rev are mutually exclusive", depName))
		}
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

// DefaultProgram returns the program named "main", or the sole program
// when exactly one is defined.
func (m *Manifest) DefaultProgram() (*ProgramSpec, error) {
	if m == nil {
		return nil, ErrNoDefaultProgram
	}
	if spec, ok := m.Programs["main"]; ok && spec != nil {
		return spec, nil
	}
	if len(m.ProgramOrder) == 1 {
		if spec := m.Programs[m.ProgramOrder[0]]; spec != nil {
			return spec, nil
		}
	}
	return nil, ErrNoDefaultProgram
}

// FindProgram looks up a program target by name.
func (m *Manifest) FindProgram(name string) (*ProgramSpec, bool) {
	if m == nil {
		return nil, false
	}
	spec, ok := m.Programs[strings.TrimSpace(name)]
	return spec, ok && spec != nil
}

// EntryPath resolves a program's main document relative to the manifest.
func (m *Manifest) EntryPath(spec *ProgramSpec) string {
	if filepath.IsAbs(spec.Main) {
		return spec.Main
	}
	return filepath.Join(filepath.Dir(m.Path), spec.Main)
}

type manifestFile struct {
	Name         string        `yaml:"name"`
	Version      string        `yaml:"version"`
	Authors      []string      `yaml:"authors"`
	Programs     programMap    `yaml:"programs"`
	Dependencies dependencyMap `yaml:"dependencies"`
}

type programYAML struct {
	Main string `yaml:"main"`
}

type programMap struct {
	items []programMapEntry
}

type programMapEntry struct {
	name string
	spec *programYAML
}

// UnmarshalYAML preserves declaration order, which DefaultProgram and the
// CLI listing rely on.
func (pm *programMap) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == 0 {
		pm.items = nil
		return nil
	}
	if value.Kind == yaml.ScalarNode && value.Tag == "!!null" {
		pm.items = nil
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("manifest: programs must be a mapping")
	}
	items := make([]programMapEntry, 0, len(value.Content)/2)
	for i := 0; i < len(value.Content); i += 2 {
		keyNode := value.Content[i]
		valueNode := value.Content[i+1]

		var key string
		if err := keyNode.Decode(&key); err != nil {
			return err
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("manifest: programs must not use empty keys")
		}
		entry := new(programYAML)
		// A scalar value is shorthand for the main entrypoint.
		if valueNode.Kind == yaml.ScalarNode {
			if err := valueNode.Decode(&entry.Main); err != nil {
				return fmt.Errorf("manifest: program %q: %w", key, err)
			}
		} else if err := valueNode.Decode(entry); err != nil {
			return fmt.Errorf("manifest: program %q: %w", key, err)
		}
		items = append(items, programMapEntry{name: key, spec: entry})
	}
	pm.items = items
	return nil
}

type dependencyMap map[string]*DependencySpec

func (mf manifestFile) toManifest(path string) *Manifest {
	result := &Manifest{
		Path:         path,
		Name:         strings.TrimSpace(mf.Name),
		Version:      strings.TrimSpace(mf.Version),
		Authors:      append([]string(nil), mf.Authors...),
		Programs:     make(map[string]*ProgramSpec, len(mf.Programs.items)),
		ProgramOrder: make([]string, 0, len(mf.Programs.items)),
		Dependencies: make(map[string]*DependencySpec, len(mf.Dependencies)),
	}

	for name, dep := range mf.Dependencies {
		if dep == nil {
			continue
		}
		result.Dependencies[name] = &DependencySpec{
			Git:    strings.TrimSpace(dep.Git),
			Tag:    strings.TrimSpace(dep.Tag),
			Branch: strings.TrimSpace(dep.Branch),
			Rev:    strings.TrimSpace(dep.Rev),
		}
	}

	for _, item := range mf.Programs.items {
		if item.spec == nil {
			continue
		}
		name := strings.TrimSpace(item.name)
		if name == "" {
			continue
		}
		spec := &ProgramSpec{Name: name, Main: strings.TrimSpace(item.spec.Main)}
		if _, exists := result.Programs[name]; !exists {
			result.Programs[name] = spec
			result.ProgramOrder = append(result.ProgramOrder, name)
		}
	}
	return result
}

// UnmarshalYAML accepts either a bare git URL or the full mapping form.
func (d *DependencySpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		return value.Decode(&d.Git)
	}
	type plain struct {
		Git    string `yaml:"git"`
		Tag    string `yaml:"tag"`
		Branch string `yaml:"branch"`
		Rev    string `yaml:"rev"`
	}
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	d.Git = p.Git
	d.Tag = p.Tag
	d.Branch = p.Branch
	d.Rev = p.Rev
	return nil
}
