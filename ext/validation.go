// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ext

import (
	"fmt"
	"strings"
)

// Shared by every guard the generator emits.
const problemRequirements = "extension is enabled, but its requirements are not met"

var (
	instanceExtensionVUIDs = []string{"VUID-vkCreateInstance-ppEnabledExtensionNames-01388"}
	deviceExtensionVUIDs   = []string{"VUID-vkCreateDevice-ppEnabledExtensionNames-01387"}
)

// Requires is one way to satisfy an extension's requirements: run at
// least APIVersion (when set) and enable every listed extension, split
// by the scope it belongs to.
type Requires struct {
	APIVersion         *Version
	InstanceExtensions []string
	DeviceExtensions   []string
}

// requires builds one Requires alternative. Generated validators call
// it positionally.
func requires(apiVersion *Version, instanceExtensions, deviceExtensions []string) Requires {
	return Requires{
		APIVersion:         apiVersion,
		InstanceExtensions: instanceExtensions,
		DeviceExtensions:   deviceExtensions,
	}
}

// ValidationError reports an enabled extension whose requirements are
// not met. It is returned by the generated Validate methods and is
// printable as a user-facing configuration diagnostic.
type ValidationError struct {
	// Context names the offending field, e.g.
	// "DeviceExtensions.KHRSwapchain".
	Context string

	// Problem is a static description of what is wrong.
	Problem string

	// VUIDs are the valid-usage identifiers from the specification
	// that this check enforces.
	VUIDs []string

	// RequiresOneOf lists every way the requirement could be
	// satisfied; at least one must hold.
	RequiresOneOf []Requires
}

// Error implements the error interface with a single-line summary.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (VUIDs: %s)", e.Context, e.Problem, strings.Join(e.VUIDs, ", "))
}

// Verbose returns a multi-line report listing every unmet alternative.
func (e *ValidationError) Verbose() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s\n", e.Context, e.Problem)

	if len(e.RequiresOneOf) > 0 {
		sb.WriteString("requires one of:\n")

		for _, req := range e.RequiresOneOf {
			sb.WriteString("  all of the following:\n")

			if req.APIVersion != nil {
				fmt.Fprintf(&sb, "    - api version: %s\n", req.APIVersion)
			}
			for _, name := range req.InstanceExtensions {
				fmt.Fprintf(&sb, "    - instance extension: %s\n", name)
			}
			for _, name := range req.DeviceExtensions {
				fmt.Fprintf(&sb, "    - device extension: %s\n", name)
			}
		}
	}

	if len(e.VUIDs) > 0 {
		sb.WriteString("VUIDs:\n")
		for _, vuid := range e.VUIDs {
			fmt.Fprintf(&sb, "  - %s\n", vuid)
		}
	}

	return sb.String()
}
