// Package vkcap generates typed Vulkan extension capability sets from
// the Khronos API registry.
//
// vkcap reads a vk.xml registry document and emits one Go source file
// per scope:
//   - InstanceExtensions — extensions enabled at instance creation
//   - DeviceExtensions — extensions enabled per logical device
//
// Each generated type carries one boolean per extension, a permissive
// FromNames constructor, set algebra (Union, Intersection, Difference,
// Contains), and a Validate method compiled from the registry's
// dependency expressions.
//
// The package provides a simple, high-level API for generation as well
// as lower-level access to the individual stages.
//
// Example usage:
//
//	f, err := os.Open("vk.xml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
//	output, err := vkcap.Generate(f)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("instance_extensions.go", output.Instance, 0o644)
//	os.WriteFile("device_extensions.go", output.Device, 0o644)
//
// For more control, use the registry and gen packages directly:
//
//	table, _ := registry.Extract(f)
//	src, _ := gen.Emit(table, registry.ScopeDevice, gen.DefaultOptions())
package vkcap

import (
	"fmt"
	"io"

	"github.com/gogpu/vkcap/gen"
	"github.com/gogpu/vkcap/registry"
)

// Output holds the generated source for both scopes.
type Output struct {
	// Instance is the gofmt-formatted source of the InstanceExtensions
	// type.
	Instance []byte

	// Device is the gofmt-formatted source of the DeviceExtensions
	// type.
	Device []byte
}

// Generate reads a vk.xml registry document and generates both
// extension set types using default options.
//
// This is the simplest way to run the generator. For more control, use
// GenerateWithOptions or the individual registry.Extract and gen.Emit
// functions.
func Generate(r io.Reader) (*Output, error) {
	return GenerateWithOptions(r, gen.DefaultOptions())
}

// GenerateWithOptions reads a vk.xml registry document and generates
// both extension set types with custom options.
//
// The generation pipeline is:
//  1. Extract the extension and format tables from the registry
//  2. Build the per-scope set model, resolving dependency references
//  3. Emit deterministic, gofmt-formatted Go source
func GenerateWithOptions(r io.Reader, opts gen.Options) (*Output, error) {
	table, err := registry.Extract(r)
	if err != nil {
		return nil, fmt.Errorf("extraction error: %w", err)
	}

	instance, err := gen.Emit(table, registry.ScopeInstance, opts)
	if err != nil {
		return nil, fmt.Errorf("instance generation error: %w", err)
	}

	device, err := gen.Emit(table, registry.ScopeDevice, opts)
	if err != nil {
		return nil, fmt.Errorf("device generation error: %w", err)
	}

	return &Output{Instance: instance, Device: device}, nil
}
