// Package specfile loads an ordered list of lexgen rules from a YAML file,
// grounded on projectdiscovery/alterx's config.go: os.ReadFile followed by
// yaml.Unmarshal into a typed struct.
package specfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arjunvelu/lexgen"
)

// Spec is the on-disk shape of a rule spec file.
type Spec struct {
	Rules []RuleSpec `yaml:"rules"`
}

// RuleSpec is one YAML rule entry.
type RuleSpec struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`
}

// Load reads and parses the spec file at path, returning its rules in the
// order they appear; rule order is significant to lexgen.New.
func Load(path string) ([]lexgen.Rule, error) {
	bin, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("specfile: reading %s: %w", path, err)
	}

	var spec Spec
	if err := yaml.Unmarshal(bin, &spec); err != nil {
		return nil, fmt.Errorf("specfile: parsing %s: %w", path, err)
	}

	rules := make([]lexgen.Rule, len(spec.Rules))
	for i, r := range spec.Rules {
		rules[i] = lexgen.Rule{Name: r.Name, Pattern: r.Pattern}
	}
	return rules, nil
}

// GenerateSample writes a small sample spec file to path.
func GenerateSample(path string) error {
	spec := Spec{Rules: []RuleSpec{
		{Name: "IF", Pattern: "if"},
		{Name: "ID", Pattern: "[a-z]+"},
		{Name: "WS", Pattern: " "},
	}}
	bin, err := yaml.Marshal(spec)
	if err != nil {
		return err
	}
	return os.WriteFile(path, bin, 0o644)
}
