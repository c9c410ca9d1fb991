// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package depends

import "testing"

// Expressions taken from the registry, worst case first.
var benchExpressions = []struct {
	name  string
	input string
}{
	{"flat", "VK_KHR_surface"},
	{"alternatives", "VK_KHR_get_physical_device_properties2,VK_VERSION_1_1"},
	{"nested", "((VK_KHR_get_physical_device_properties2+VK_KHR_dynamic_rendering),VK_VERSION_1_3)"},
	{"wide", "(VK_KHR_a,VK_KHR_b,VK_KHR_c)+(VK_KHR_d,VK_KHR_e)+VK_VERSION_1_2"},
}

func BenchmarkParse(b *testing.B) {
	for _, expr := range benchExpressions {
		b.Run(expr.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := Parse(expr.input); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
