// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package registry

// Format is the texel layout metadata for one VK_FORMAT_* value.
// Fields are pointers because the registry omits attributes that do not
// apply (e.g. packed width for non-packed formats).
type Format struct {
	// Name is the registry format name, e.g. "VK_FORMAT_R8G8B8A8_UNORM".
	Name string

	// EnumValue is the literal value of the corresponding enum
	// declaration, when the registry declares one.
	EnumValue string

	BlockSize      *uint32
	TexelsPerBlock *uint32
	Packed         *uint32

	R *Component
	G *Component
	B *Component
	A *Component
}

// Component is the bit layout of a single color component.
type Component struct {
	// Bits is the component width, nil for compressed formats.
	Bits *uint32

	// NumericFormat is the registry's numeric interpretation,
	// e.g. "UNORM", "SFLOAT", "SRGB".
	NumericFormat string
}

// formatOrInsert returns the record for name, creating it on first use.
// Format metadata arrives from two places in the document (the enum
// declarations and the formats block), so records are merged by name.
func (b *Builder) formatOrInsert(name string) *Format {
	for i := range b.formats {
		if b.formats[i].Name == name {
			return &b.formats[i]
		}
	}

	b.formats = append(b.formats, Format{Name: name})
	return &b.formats[len(b.formats)-1]
}
