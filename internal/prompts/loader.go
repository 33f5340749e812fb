// Package prompts holds the embedded prompt templates used for draft
// generation. A template file is a JSON object of key to template text;
// placeholders have the form {{.Key}}.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"sync"
)

//go:embed *.json
var files embed.FS

// GenerationFile holds the resume draft template and the per-layout parts
// named "<layout>-contact", "<layout>-layout" and "<layout>-structure".
const GenerationFile = "generation.json"

// Set is one parsed template file.
type Set map[string]string

var loaded sync.Map // file name -> Set

// Load parses an embedded template file. Parsed files are cached.
func Load(name string) (Set, error) {
	if s, ok := loaded.Load(name); ok {
		return s.(Set), nil
	}
	data, err := files.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", name, err)
	}
	var s Set
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", name, err)
	}
	loaded.Store(name, s)
	return s, nil
}

// Get returns the template stored under key.
func (s Set) Get(key string) (string, error) {
	t, ok := s[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found", key)
	}
	return t, nil
}

// Keys returns the template keys in sorted order.
func (s Set) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

var placeholder = regexp.MustCompile(`\{\{\.(\w+)\}\}`)

// Fill replaces every {{.Key}} that has a value in data in a single pass, so
// placeholder-like text inside a value is left alone. Unknown placeholders
// are kept.
func Fill(template string, data map[string]string) string {
	return placeholder.ReplaceAllStringFunc(template, func(m string) string {
		if v, ok := data[m[3:len(m)-2]]; ok {
			return v
		}
		return m
	})
}

// Missing lists the placeholders in template without a value in data.
func Missing(template string, data map[string]string) []string {
	var out []string
	for _, m := range placeholder.FindAllStringSubmatch(template, -1) {
		if _, ok := data[m[1]]; !ok && !slices.Contains(out, m[1]) {
			out = append(out, m[1])
		}
	}
	return out
}

// Execute fills the template file[key] with data. It fails when a
// placeholder has no value.
func Execute(file, key string, data map[string]string) (string, error) {
	s, err := Load(file)
	if err != nil {
		return "", err
	}
	t, err := s.Get(key)
	if err != nil {
		return "", fmt.Errorf("%s: %w", file, err)
	}
	if missing := Missing(t, data); len(missing) > 0 {
		return "", fmt.Errorf("%s: prompt %q has no value for %s", file, key, strings.Join(missing, ", "))
	}
	return Fill(t, data), nil
}
