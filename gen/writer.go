// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gen

import (
	"fmt"
	"strings"

	"golang.org/x/tools/imports"

	"github.com/gogpu/vkcap/registry"
)

// Emit generates the Go source of the extension set type for one
// scope. The output is gofmt-formatted and stable: regenerating from
// byte-identical registry input yields byte-identical source.
func Emit(table *registry.Table, scope registry.Scope, options Options) ([]byte, error) {
	s, err := buildSet(table, scope)
	if err != nil {
		return nil, err
	}

	w := &writer{set: s, options: options}
	w.writeFile()

	// The writer already emits canonical formatting; the goimports
	// pass enforces it, catching emitter regressions instead of
	// shipping them.
	formatted, err := imports.Process(strings.ToLower(s.typeName)+".go", []byte(w.out.String()), nil)
	if err != nil {
		return nil, fmt.Errorf("gen: emitted %s source does not format: %w", s.typeName, err)
	}

	return formatted, nil
}

// writer renders one set model as Go source.
type writer struct {
	set     *set
	options Options

	out    strings.Builder
	indent int
}

// writeFile writes the complete generated file.
func (w *writer) writeFile() {
	w.writeHeader()
	w.writeType()
	w.writeFromNames()
	w.writeNames()
	w.writeValidate()
	w.writeMustValidate()
	w.writeIsEmpty()
	w.writeUnion()
	w.writeIntersection()
	w.writeContains()
	w.writeDifference()
}

func (w *writer) writeHeader() {
	w.writeLine("// Code generated by vkcapgen from %s. DO NOT EDIT.", w.options.Source)
	w.writeLine("")
	w.writeLine("package %s", w.options.PackageName)
}

// writeType writes the set struct with one documented boolean field per
// extension.
func (w *writer) writeType() {
	w.writeLine("")
	w.writeLine("// %s selects the %s extensions to enable, one", w.set.typeName, w.set.scope)
	w.writeLine("// boolean per extension known to the registry.")
	w.writeLine("type %s struct {", w.set.typeName)
	w.pushIndent()

	for i, f := range w.set.fields {
		if i > 0 {
			w.writeLine("")
		}

		w.writeLine("// Enable the %s extension.", f.name)

		if len(f.alternatives) > 0 {
			w.writeLine("//")
			w.writeLine("// Requires any of the following:")
			for _, alt := range f.alternatives {
				w.writeLine("//   - %s", describeAlternative(alt))
			}
		}

		w.writeLine("%s bool", f.goName)
	}

	w.popIndent()
	w.writeLine("}")
}

// describeAlternative renders one requirement alternative for a doc
// comment.
func describeAlternative(alt alternative) string {
	var names []string
	for _, r := range alt.refs {
		names = append(names, r.name)
	}

	switch {
	case alt.apiVersion != nil && len(names) > 0:
		return fmt.Sprintf("API version 1.%d or later, and all of the following extensions: %s",
			*alt.apiVersion, strings.Join(names, ", "))
	case alt.apiVersion != nil:
		return fmt.Sprintf("API version 1.%d or later", *alt.apiVersion)
	default:
		return "all of the following extensions: " + strings.Join(names, ", ")
	}
}

// writeFromNames writes the permissive constructor. Unknown names are
// deliberately skipped rather than rejected: enumerating a newer
// driver must never fail construction.
func (w *writer) writeFromNames() {
	w.writeLine("")
	w.writeLine("// %sFromNames builds a set from raw extension names.", w.set.typeName)
	w.writeLine("// Unknown names are silently ignored, so enumerating a newer driver")
	w.writeLine("// never fails construction.")
	w.writeLine("func %sFromNames(names []string) %s {", w.set.typeName, w.set.typeName)
	w.pushIndent()
	w.writeLine("var extensions %s", w.set.typeName)
	w.writeLine("")
	w.writeLine("for _, name := range names {")
	w.pushIndent()
	w.writeLine("switch name {")

	for _, f := range w.set.fields {
		w.writeLine("case %q:", f.name)
		w.pushIndent()
		w.writeLine("extensions.%s = true", f.goName)
		w.popIndent()
	}

	w.writeLine("}")
	w.popIndent()
	w.writeLine("}")
	w.writeLine("")
	w.writeLine("return extensions")
	w.popIndent()
	w.writeLine("}")
}

// writeNames writes the inverse of FromNames.
func (w *writer) writeNames() {
	w.writeLine("")
	w.writeLine("// Names returns the names of the enabled extensions in registry")
	w.writeLine("// order.")
	w.writeLine("func (e %s) Names() []string {", w.set.typeName)
	w.pushIndent()
	w.writeLine("var names []string")
	w.writeLine("")

	for _, f := range w.set.fields {
		w.writeLine("if e.%s {", f.goName)
		w.pushIndent()
		w.writeLine("names = append(names, %q)", f.name)
		w.popIndent()
		w.writeLine("}")
	}

	w.writeLine("")
	w.writeLine("return names")
	w.popIndent()
	w.writeLine("}")
}

// writeValidate compiles every non-empty requirement tree into a guard:
// if the extension is enabled but no alternative is satisfied, a
// *ValidationError describing all alternatives is returned.
func (w *writer) writeValidate() {
	w.writeLine("")

	if w.set.scope == registry.ScopeInstance {
		w.writeLine("// Validate checks that every enabled extension has its requirements")
		w.writeLine("// met, consulting apiVersion for core version floors. It returns a")
		w.writeLine("// *ValidationError naming the first offending extension.")
		w.writeLine("func (e %s) Validate(apiVersion Version) error {", w.set.typeName)
	} else {
		w.writeLine("// Validate checks that every enabled extension has its requirements")
		w.writeLine("// met, consulting instance for cross-scope requirements and")
		w.writeLine("// apiVersion for core version floors. It returns a *ValidationError")
		w.writeLine("// naming the first offending extension.")
		w.writeLine("func (e %s) Validate(instance InstanceExtensions, apiVersion Version) error {", w.set.typeName)
	}
	w.pushIndent()

	for _, f := range w.set.fields {
		if len(f.alternatives) == 0 {
			continue
		}

		// Enabled, and every alternative unsatisfied.
		w.writeLine("if e.%s &&", f.goName)
		w.pushIndent()
		for i, alt := range f.alternatives {
			clause := w.unsatisfiedClause(alt)
			if i == len(f.alternatives)-1 {
				w.writeLine("%s {", clause)
			} else {
				w.writeLine("%s &&", clause)
			}
		}

		w.writeLine("return &ValidationError{")
		w.pushIndent()
		w.writeLine("Context: %q,", w.set.typeName+"."+f.goName)
		w.writeLine("Problem: problemRequirements,")
		if w.set.scope == registry.ScopeInstance {
			w.writeLine("VUIDs:   instanceExtensionVUIDs,")
		} else {
			w.writeLine("VUIDs:   deviceExtensionVUIDs,")
		}
		w.writeLine("RequiresOneOf: []Requires{")
		w.pushIndent()
		for _, alt := range f.alternatives {
			w.writeLine("%s,", requiresCall(alt))
		}
		w.popIndent()
		w.writeLine("},")
		w.popIndent()
		w.writeLine("}")
		w.popIndent()
		w.writeLine("}")
		w.writeLine("")
	}

	w.writeLine("return nil")
	w.popIndent()
	w.writeLine("}")
}

// unsatisfiedClause renders the condition under which one alternative
// is not satisfied: version floor unmet, or any referenced extension
// disabled. Same-scope references check the receiver; cross-scope
// references check the caller-supplied instance set.
func (w *writer) unsatisfiedClause(alt alternative) string {
	var parts []string

	if alt.apiVersion != nil {
		parts = append(parts, fmt.Sprintf("apiVersion.Less(V1_%d)", *alt.apiVersion))
	}

	for _, r := range alt.refs {
		receiver := "e"
		if r.scope != w.set.scope {
			receiver = "instance"
		}
		parts = append(parts, "!"+receiver+"."+r.goName)
	}

	if len(parts) == 1 {
		return parts[0]
	}
	return "(" + strings.Join(parts, " || ") + ")"
}

// requiresCall renders one alternative as a requires(...) argument
// list, partitioning referenced extensions by scope.
func requiresCall(alt alternative) string {
	version := "nil"
	if alt.apiVersion != nil {
		version = fmt.Sprintf("&V1_%d", *alt.apiVersion)
	}

	return fmt.Sprintf("requires(%s, %s, %s)",
		version, stringSlice(alt.instanceNames()), stringSlice(alt.deviceNames()))
}

// stringSlice renders a []string literal, or nil for an empty list.
func stringSlice(names []string) string {
	if len(names) == 0 {
		return "nil"
	}

	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = fmt.Sprintf("%q", name)
	}
	return "[]string{" + strings.Join(quoted, ", ") + "}"
}

// writeMustValidate writes the panic-on-failure convenience wrapper.
func (w *writer) writeMustValidate() {
	w.writeLine("")
	w.writeLine("// MustValidate is like Validate but panics on failure. It is meant")
	w.writeLine("// for initialization paths where a requirement violation is a")
	w.writeLine("// programming error.")

	if w.set.scope == registry.ScopeInstance {
		w.writeLine("func (e %s) MustValidate(apiVersion Version) {", w.set.typeName)
		w.pushIndent()
		w.writeLine("if err := e.Validate(apiVersion); err != nil {")
	} else {
		w.writeLine("func (e %s) MustValidate(instance InstanceExtensions, apiVersion Version) {", w.set.typeName)
		w.pushIndent()
		w.writeLine("if err := e.Validate(instance, apiVersion); err != nil {")
	}

	w.pushIndent()
	w.writeLine("panic(err)")
	w.popIndent()
	w.writeLine("}")
	w.popIndent()
	w.writeLine("}")
}

// writeIsEmpty writes the all-false test.
func (w *writer) writeIsEmpty() {
	w.writeLine("")
	w.writeLine("// IsEmpty reports whether no extensions are enabled.")
	w.writeLine("func (e %s) IsEmpty() bool {", w.set.typeName)
	w.pushIndent()

	if len(w.set.fields) == 0 {
		w.writeLine("return true")
	} else {
		for i, f := range w.set.fields {
			switch {
			case len(w.set.fields) == 1:
				w.writeLine("return !e.%s", f.goName)
			case i == 0:
				w.writeLine("return !e.%s &&", f.goName)
				w.pushIndent()
			case i == len(w.set.fields)-1:
				w.writeLine("!e.%s", f.goName)
				w.popIndent()
			default:
				w.writeLine("!e.%s &&", f.goName)
			}
		}
	}

	w.popIndent()
	w.writeLine("}")
}

// writeBinaryOp writes a field-wise set operation producing a new set.
func (w *writer) writeBinaryOp(name string, doc []string, combine string) {
	w.writeLine("")
	for _, line := range doc {
		w.writeLine("// %s", line)
	}
	w.writeLine("func (e %s) %s(other %s) %s {", w.set.typeName, name, w.set.typeName, w.set.typeName)
	w.pushIndent()
	w.writeLine("var result %s", w.set.typeName)
	w.writeLine("")

	for _, f := range w.set.fields {
		w.writeLine("result.%s = %s", f.goName, fmt.Sprintf(combine, f.goName, f.goName))
	}

	w.writeLine("")
	w.writeLine("return result")
	w.popIndent()
	w.writeLine("}")
}

func (w *writer) writeUnion() {
	w.writeBinaryOp("Union", []string{
		"Union returns the set of extensions enabled in either e or other.",
	}, "e.%s || other.%s")
}

func (w *writer) writeIntersection() {
	w.writeBinaryOp("Intersection", []string{
		"Intersection returns the set of extensions enabled in both e and",
		"other.",
	}, "e.%s && other.%s")
}

func (w *writer) writeDifference() {
	w.writeBinaryOp("Difference", []string{
		"Difference returns the extensions enabled in e but not in other.",
	}, "e.%s && !other.%s")
}

// writeContains writes the subset test.
func (w *writer) writeContains() {
	w.writeLine("")
	w.writeLine("// Contains reports whether every extension enabled in other is also")
	w.writeLine("// enabled in e.")
	w.writeLine("func (e %s) Contains(other %s) bool {", w.set.typeName, w.set.typeName)
	w.pushIndent()

	if len(w.set.fields) == 0 {
		w.writeLine("return true")
	} else {
		for i, f := range w.set.fields {
			clause := fmt.Sprintf("(!other.%s || e.%s)", f.goName, f.goName)
			switch {
			case len(w.set.fields) == 1:
				w.writeLine("return %s", clause)
			case i == 0:
				w.writeLine("return %s &&", clause)
				w.pushIndent()
			case i == len(w.set.fields)-1:
				w.writeLine("%s", clause)
				w.popIndent()
			default:
				w.writeLine("%s &&", clause)
			}
		}
	}

	w.popIndent()
	w.writeLine("}")
}

// Output helpers, tab-indented for Go source.

// writeLine writes a line at the current indentation.
//
//nolint:goprintffuncname
func (w *writer) writeLine(format string, args ...any) {
	if format != "" {
		for i := 0; i < w.indent; i++ {
			w.out.WriteByte('\t')
		}
	}
	if len(args) == 0 {
		w.out.WriteString(format)
	} else {
		fmt.Fprintf(&w.out, format, args...)
	}
	w.out.WriteByte('\n')
}

// pushIndent increases indentation.
func (w *writer) pushIndent() {
	w.indent++
}

// popIndent decreases indentation.
func (w *writer) popIndent() {
	if w.indent > 0 {
		w.indent--
	}
}
