package config

import (
	"fmt"
	"sort"
	"strings"
)

// Built-in variant names.
const (
	VariantReference = "reference"
	VariantElectoral = "electoral"
)

// variantAliases maps the historical single-letter names onto presets.
var variantAliases = map[string]string{
	"a": VariantReference,
	"b": VariantElectoral,
}

// variants are the two fixed harness setups. Both historically located
// their executable three directories above the harness's source
// directory; that location is now only the default and can be replaced
// with --path.
var variants = map[string]HarnessConfig{
	VariantReference: {
		Name:    "reference benchmark",
		Variant: VariantReference,
		Command: CommandConfig{
			Path:   "../../../reference_benchmark",
			Output: "discard",
		},
	},
	VariantElectoral: {
		Name:    "electoral method benchmark",
		Variant: VariantElectoral,
		Command: CommandConfig{
			Path:      "../../../quadelect",
			ArgString: "-m plurality -n 10000 -o results.txt",
			Output:    "inherit",
		},
	},
}

// DefaultVariant is used when nothing else is selected.
const DefaultVariant = VariantReference

// Variant returns a copy of the named preset. Names are case-insensitive
// and "a"/"b" are accepted.
func Variant(name string) (*HarnessConfig, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := variantAliases[key]; ok {
		key = alias
	}

	v, ok := variants[key]
	if !ok {
		return nil, fmt.Errorf("unknown variant %q (available: %s)", name, strings.Join(VariantNames(), ", "))
	}

	cfg := v
	cfg.Command.Args = append([]string(nil), v.Command.Args...)
	return &cfg, nil
}

// VariantNames lists the built-in presets in sorted order.
func VariantNames() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AliasFor returns the single-letter alias of a preset, or "".
func AliasFor(name string) string {
	for alias, target := range variantAliases {
		if target == name {
			return alias
		}
	}
	return ""
}
