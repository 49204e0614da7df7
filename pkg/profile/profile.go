// Package profile loads operator-authored YAML generation profiles. A
// profile extends the built-in vocabularies with extra tokens and can deny
// generated output matching glob patterns; the built-in tables themselves
// are never mutated.
package profile

import (
	"errors"
	"fmt"
	"os"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"artifactgen/internal/names"
)

// VocabSpec lists extra tokens per vocabulary category. All fields are
// optional; present entries are appended to the defaults at load time.
type VocabSpec struct {
	Vendors         []string `yaml:"vendors"`
	Components      []string `yaml:"components"`
	ServiceSuffixes []string `yaml:"service_suffixes"`
	LogPrefixes     []string `yaml:"log_prefixes"`
	TempPrefixes    []string `yaml:"temp_prefixes"`
	BatchPrefixes   []string `yaml:"batch_prefixes"`
	ExePrefixes     []string `yaml:"exe_prefixes"`
	ExeSuffixes     []string `yaml:"exe_suffixes"`
	TaskActions     []string `yaml:"task_actions"`
	TaskTargets     []string `yaml:"task_targets"`
	ShareNames      []string `yaml:"share_names"`
	DirPrefixes     []string `yaml:"dir_prefixes"`
}

// Profile is one named generation profile.
type Profile struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Vocab       VocabSpec `yaml:"vocab"`
	Deny        []string  `yaml:"deny"`
	Count       int       `yaml:"count"`
	Seed        *uint64   `yaml:"seed"`

	Source string `yaml:"-"`
}

// FromYAML parses a raw YAML profile definition.
func FromYAML(data string) (*Profile, error) {
	trimmed := strings.TrimSpace(data)
	if trimmed == "" {
		return nil, errors.New("profile YAML is empty")
	}
	var prof Profile
	if err := yaml.Unmarshal([]byte(trimmed), &prof); err != nil {
		return nil, fmt.Errorf("failed to parse profile YAML: %w", err)
	}
	if prof.Name == "" {
		return nil, errors.New("profile missing required field 'name'")
	}
	for _, pat := range prof.Deny {
		if !doublestar.ValidatePattern(normalizeGlob(pat)) {
			return nil, fmt.Errorf("profile has invalid deny pattern %q", pat)
		}
	}
	return &prof, nil
}

// LoadFile loads a profile from a YAML file path.
func LoadFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}
	prof, err := FromYAML(string(data))
	if err != nil {
		return nil, err
	}
	prof.Source = path
	return prof, nil
}

// Denied reports whether a generated name or path matches any deny pattern.
// Matching is separator-insensitive so patterns work against backslash
// placement paths too. A nil profile denies nothing.
func (p *Profile) Denied(candidate string) bool {
	if p == nil {
		return false
	}
	unix := strings.TrimSuffix(normalizeGlob(candidate), "/")
	for _, pat := range p.Deny {
		if ok, err := doublestar.Match(normalizeGlob(pat), unix); err == nil && ok {
			return true
		}
	}
	return false
}

// ServiceNames returns the service generator with profile extras applied.
func (p *Profile) ServiceNames() names.ServiceNames {
	g := names.DefaultServiceNames()
	if p == nil {
		return g
	}
	g.Vendors = extend(g.Vendors, p.Vocab.Vendors)
	g.Components = extend(g.Components, p.Vocab.Components)
	g.Suffixes = extend(g.Suffixes, p.Vocab.ServiceSuffixes)
	return g
}

// FileNames returns the file-name generator with profile extras applied.
func (p *Profile) FileNames() names.FileNames {
	g := names.DefaultFileNames()
	if p == nil {
		return g
	}
	g.LogPrefixes = extend(g.LogPrefixes, p.Vocab.LogPrefixes)
	g.TempPrefixes = extend(g.TempPrefixes, p.Vocab.TempPrefixes)
	g.BatchPrefixes = extend(g.BatchPrefixes, p.Vocab.BatchPrefixes)
	g.ExePrefixes = extend(g.ExePrefixes, p.Vocab.ExePrefixes)
	g.ExeSuffixes = extend(g.ExeSuffixes, p.Vocab.ExeSuffixes)
	return g
}

// TaskNames returns the task-name generator with profile extras applied.
func (p *Profile) TaskNames() names.TaskNames {
	g := names.DefaultTaskNames()
	if p == nil {
		return g
	}
	g.Actions = extend(g.Actions, p.Vocab.TaskActions)
	g.Targets = extend(g.Targets, p.Vocab.TaskTargets)
	return g
}

// ShareNames returns the share/directory generator with profile extras
// applied.
func (p *Profile) ShareNames() names.ShareNames {
	g := names.DefaultShareNames()
	if p == nil {
		return g
	}
	g.Shares = extend(g.Shares, p.Vocab.ShareNames)
	g.DirPrefixes = extend(g.DirPrefixes, p.Vocab.DirPrefixes)
	return g
}

// extend copies base before appending so the default tables stay immutable.
func extend(base, extra []string) []string {
	if len(extra) == 0 {
		return base
	}
	out := make([]string, 0, len(base)+len(extra))
	out = append(out, base...)
	out = append(out, extra...)
	return out
}

func normalizeGlob(s string) string {
	return strings.ReplaceAll(s, `\`, "/")
}
