// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gen

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gogpu/vkcap/registry"
)

// set is the language-independent model of one generated type: the
// extensions of a single scope in table order, each with its resolved
// requirement alternatives.
type set struct {
	typeName string
	scope    registry.Scope
	fields   []field
}

// field is one boolean slot of a set.
type field struct {
	name         string // registry extension name
	goName       string // generated Go field name
	alternatives []alternative
}

// alternative is one satisfiable branch of a field's requirement DNF.
type alternative struct {
	apiVersion *uint32
	refs       []ref
}

// ref is a requirement reference resolved against the table.
type ref struct {
	name   string
	goName string
	scope  registry.Scope
}

// instanceNames returns the referenced instance-scope extension names
// in expression order.
func (a alternative) instanceNames() []string {
	return a.scopeNames(registry.ScopeInstance)
}

// deviceNames returns the referenced device-scope extension names in
// expression order.
func (a alternative) deviceNames() []string {
	return a.scopeNames(registry.ScopeDevice)
}

func (a alternative) scopeNames(scope registry.Scope) []string {
	var names []string
	for _, r := range a.refs {
		if r.scope == scope {
			names = append(names, r.name)
		}
	}
	return names
}

// typeNames maps a scope to its generated type name.
func typeName(scope registry.Scope) string {
	if scope == registry.ScopeInstance {
		return "InstanceExtensions"
	}
	return "DeviceExtensions"
}

// buildSet assembles the model for one scope from the frozen table.
// Every reference resolves against the complete table, so a referenced
// extension's scope is always known. Device extensions may reference
// instance extensions; the reverse never occurs in the registry and is
// rejected because the generated instance validator has no device set
// to check against.
func buildSet(table *registry.Table, scope registry.Scope) (*set, error) {
	s := &set{
		typeName: typeName(scope),
		scope:    scope,
	}

	for _, ext := range table.Extensions() {
		if ext.Scope != scope {
			continue
		}

		f := field{
			name:   ext.Name,
			goName: goFieldName(ext.Name),
		}

		for _, allOf := range ext.Requires {
			alt := alternative{apiVersion: allOf.APIVersion}

			for _, name := range allOf.Extensions {
				target, ok := table.Find(name)
				if !ok {
					// The table rejects dangling references in
					// Finish; reaching this is a programmer error.
					return nil, fmt.Errorf("gen: extension %q references unknown %q", ext.Name, name)
				}

				if scope == registry.ScopeInstance && target.Scope == registry.ScopeDevice {
					return nil, fmt.Errorf(
						"gen: instance extension %q depends on device extension %q: instance validation cannot check device state",
						ext.Name, name,
					)
				}

				alt.refs = append(alt.refs, ref{
					name:   target.Name,
					goName: goFieldName(target.Name),
					scope:  target.Scope,
				})
			}

			f.alternatives = append(f.alternatives, alt)
		}

		s.fields = append(s.fields, f)
	}

	return s, nil
}

// goFieldName derives the generated field name from a registry
// extension name: the VK_ prefix is dropped, the vendor tag is kept
// as-is, and the remaining words are joined in upper camel case.
// "VK_KHR_get_physical_device_properties2" becomes
// "KHRGetPhysicalDeviceProperties2".
func goFieldName(name string) string {
	parts := strings.Split(strings.TrimPrefix(name, "VK_"), "_")
	for i, part := range parts {
		if i == 0 {
			continue // vendor tag (KHR, EXT, NV, ...) is already upper case
		}
		parts[i] = capitalize(part)
	}
	return strings.Join(parts, "")
}

// capitalize upper-cases the first rune of a word.
func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return word
	}
	return string(unicode.ToUpper(r)) + word[size:]
}
