// Package catalog holds the fixed sets of choices offered by the wizard.
package catalog

import (
	_ "embed"
	"fmt"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogContent []byte

// Option is one selectable entry of a catalog.
type Option struct {
	// Value is the identifier sent to the model.
	Value string `yaml:"value"`
	// Label is what the user sees.
	Label string `yaml:"label"`
	// Hint is an optional dimmed annotation, e.g. "recommended".
	Hint string `yaml:"hint,omitempty"`
}

// Catalog groups the option lists of every multi-select prompt.
type Catalog struct {
	Plugins       []Option `yaml:"plugins"`
	SyntaxServers []Option `yaml:"syntax_servers"`
	Themes        []Option `yaml:"themes"`
}

// Parse decodes and validates a YAML catalog.
func Parse(content []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(content, &c); err != nil {
		return Catalog{}, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

// Default returns the catalog shipped with the binary.
func Default() Catalog {
	c, err := Parse(defaultCatalogContent)
	if err != nil {
		// The embedded file is covered by tests.
		panic(err)
	}
	return c
}

// Validate reports empty lists, empty values and duplicate values.
func (c Catalog) Validate() error {
	lists := []struct {
		name    string
		options []Option
	}{
		{"plugins", c.Plugins},
		{"syntax_servers", c.SyntaxServers},
		{"themes", c.Themes},
	}

	for _, list := range lists {
		if len(list.options) == 0 {
			return fmt.Errorf("catalog %s is empty", list.name)
		}
		if _, ok := lo.Find(list.options, func(o Option) bool { return o.Value == "" }); ok {
			return fmt.Errorf("catalog %s has an option without a value", list.name)
		}
		if dups := lo.FindDuplicates(values(list.options)); len(dups) > 0 {
			return fmt.Errorf("catalog %s has duplicate values: %v", list.name, dups)
		}
	}

	return nil
}

// values returns the identifiers of options in catalog order.
func values(options []Option) []string {
	return lo.Map(options, func(o Option, _ int) string { return o.Value })
}
