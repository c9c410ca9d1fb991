// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gen

// Options configures source emission.
type Options struct {
	// PackageName is the package clause of the emitted files
	// (default: "ext").
	PackageName string

	// Source names the registry document in the generated-code header
	// (default: "vk.xml").
	Source string
}

// DefaultOptions returns the options used for the checked-in generated
// code.
func DefaultOptions() Options {
	return Options{
		PackageName: "ext",
		Source:      "vk.xml",
	}
}
