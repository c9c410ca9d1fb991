// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package registry

import (
	"fmt"
	"sort"

	"github.com/gogpu/vkcap/depends"
)

// Scope says where an extension is negotiated.
type Scope uint8

const (
	// ScopeInstance extensions are enabled when the instance is created.
	ScopeInstance Scope = iota

	// ScopeDevice extensions are enabled per logical device.
	ScopeDevice
)

// String returns the scope name as it appears in the registry's type
// attribute.
func (s Scope) String() string {
	switch s {
	case ScopeInstance:
		return "instance"
	case ScopeDevice:
		return "device"
	default:
		return fmt.Sprintf("Scope(%d)", uint8(s))
	}
}

// Extension is one extension record from the registry. Records are
// immutable once the table is built.
type Extension struct {
	// Name is the registry extension name, e.g. "VK_KHR_swapchain".
	Name string

	// Scope says whether this is an instance or a device extension.
	Scope Scope

	// DependsRaw is the raw depends attribute, or "" when the extension
	// has no dependencies. Kept for diagnostics.
	DependsRaw string

	// Requires is the dependency expression in disjunctive normal form.
	// A nil Requires means the extension is unconditionally available.
	Requires depends.AnyOf
}

// Builder accumulates registry records before the table is frozen.
type Builder struct {
	extensions []Extension
	formats    []Format
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddExtension records one extension.
func (b *Builder) AddExtension(ext Extension) {
	b.extensions = append(b.extensions, ext)
}

// Finish sorts the accumulated records by name, resolves every
// dependency reference against the complete name set, and freezes the
// result. An unresolvable reference is fatal: generated validation code
// built from a dangling name would be wrong.
func (b *Builder) Finish() (*Table, error) {
	extensions := make([]Extension, len(b.extensions))
	copy(extensions, b.extensions)

	// Sorted order drives every downstream iteration, so generated
	// output is reproducible byte for byte.
	sort.Slice(extensions, func(i, j int) bool {
		return extensions[i].Name < extensions[j].Name
	})

	index := make(map[string]int, len(extensions))
	for i, ext := range extensions {
		if prev, dup := index[ext.Name]; dup {
			return nil, fmt.Errorf("duplicate extension %q (records %d and %d)", ext.Name, prev, i)
		}
		index[ext.Name] = i
	}

	for _, ext := range extensions {
		for _, allOf := range ext.Requires {
			for _, name := range allOf.Extensions {
				if _, ok := index[name]; !ok {
					return nil, fmt.Errorf("extension %q depends on unknown extension %q", ext.Name, name)
				}
			}
		}
	}

	formats := make([]Format, len(b.formats))
	copy(formats, b.formats)
	sort.Slice(formats, func(i, j int) bool {
		return formats[i].Name < formats[j].Name
	})

	return &Table{extensions: extensions, index: index, formats: formats}, nil
}

// Table is the frozen, name-sorted registry. It is read-only and safe
// to share.
type Table struct {
	extensions []Extension
	index      map[string]int
	formats    []Format
}

// Find looks up an extension by name.
func (t *Table) Find(name string) (*Extension, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return &t.extensions[i], true
}

// Extensions returns all extensions in name order. The returned slice
// is shared; callers must not modify it.
func (t *Table) Extensions() []Extension {
	return t.extensions
}

// Formats returns all format records in name order. The returned slice
// is shared; callers must not modify it.
func (t *Table) Formats() []Format {
	return t.formats
}
