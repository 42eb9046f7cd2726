package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is loaded from the working directory when it exists.
const DefaultConfigFile = "llmstxt.yaml"

// yamlLoader reads a YAML mapping of flag names to values. Flags given on
// the command line take precedence over the file.
//
//	seed: https://docs.example.com/
//	depth: 2
//	exclude: ["*.png", "*/blog/*"]
func yamlLoader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}

	return kong.ResolverFunc(func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		v, ok := values[flag.Name]
		if !ok || v == nil {
			return nil, nil
		}
		return flagValue(v), nil
	}), nil
}

// flagValue converts a decoded YAML value to the form kong parses flags
// from: lists stay lists, scalars become strings.
func flagValue(v any) any {
	list, ok := v.([]any)
	if !ok {
		return fmt.Sprint(v)
	}
	out := make([]any, len(list))
	for i, item := range list {
		out[i] = fmt.Sprint(item)
	}
	return out
}
