// Package gen emits Go source for per-scope extension sets.
//
// The emitter works from an intermediate model rather than from the
// registry directly: a set is "a named type with one boolean field per
// extension of one scope, plus derived operations", and each field
// carries its requirement alternatives with every referenced extension
// already resolved to its scope and Go field name. The model keeps the
// requirement algebra independent of the output language; the writer
// in this package is the Go renderer of that model.
//
// Output is deterministic: field order, case order, and validation
// order all derive from the name-sorted registry table, so identical
// registry input produces byte-identical source.
package gen
