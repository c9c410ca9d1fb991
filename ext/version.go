// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ext

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Version is a Vulkan core API version. Only the major and minor parts
// gate extension availability; patch versions never do.
type Version struct {
	Major uint32
	Minor uint32
}

// Core versions understood by the generated validators. These are
// variables only because generated code takes their addresses; they
// must never be reassigned.
var (
	V1_0 = Version{Major: 1, Minor: 0}
	V1_1 = Version{Major: 1, Minor: 1}
	V1_2 = Version{Major: 1, Minor: 2}
	V1_3 = Version{Major: 1, Minor: 3}
	V1_4 = Version{Major: 1, Minor: 4}
	V1_5 = Version{Major: 1, Minor: 5}
	V1_6 = Version{Major: 1, Minor: 6}
)

// Less reports whether v is an earlier version than other.
func (v Version) Less(other Version) bool {
	if v.Major != other.Major {
		return v.Major < other.Major
	}
	return v.Minor < other.Minor
}

// AtLeast reports whether v is other or later.
func (v Version) AtLeast(other Version) bool {
	return !v.Less(other)
}

// String returns the version as "major.minor".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// FromAPIVersion unpacks a VK_MAKE_API_VERSION-encoded value as
// reported by the driver. The variant and patch bits are discarded.
func FromAPIVersion(raw uint32) Version {
	return Version{
		Major: (raw >> 22) & 0x7f,
		Minor: (raw >> 12) & 0x3ff,
	}
}

// ParseVersion reads a human-entered version such as "1.3" or
// "1.3.290".
func ParseVersion(s string) (Version, error) {
	parsed, err := semver.NewVersion(s)
	if err != nil {
		return Version{}, fmt.Errorf("api version %q: %w", s, err)
	}

	return Version{
		Major: uint32(parsed.Major()),
		Minor: uint32(parsed.Minor()),
	}, nil
}
