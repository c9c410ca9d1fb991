// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstanceExtensionsFromNames(t *testing.T) {
	extensions := InstanceExtensionsFromNames([]string{
		"VK_KHR_surface",
		"VK_EXT_debug_utils",
	})

	assert.True(t, extensions.KHRSurface)
	assert.True(t, extensions.EXTDebugUtils)
	assert.False(t, extensions.KHRDisplay)
}

func TestFromNamesIgnoresUnknown(t *testing.T) {
	// A newer driver may report extensions the registry snapshot does
	// not know about; construction must not fail.
	extensions := InstanceExtensionsFromNames([]string{
		"VK_KHR_surface",
		"VK_KHR_portability_enumeration",
		"",
		"not an extension name",
	})

	assert.Equal(t, InstanceExtensions{KHRSurface: true}, extensions)
}

func TestNamesRegistryOrder(t *testing.T) {
	extensions := DeviceExtensionsFromNames([]string{
		"VK_KHR_swapchain",
		"VK_EXT_descriptor_indexing",
		"VK_KHR_maintenance3",
	})

	assert.Equal(t, []string{
		"VK_EXT_descriptor_indexing",
		"VK_KHR_maintenance3",
		"VK_KHR_swapchain",
	}, extensions.Names())
}

func TestNamesRoundTrip(t *testing.T) {
	extensions := DeviceExtensions{
		EXTShaderObject:        true,
		KHRDynamicRendering:    true,
		KHRDepthStencilResolve: true,
	}

	assert.Equal(t, extensions, DeviceExtensionsFromNames(extensions.Names()))
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, InstanceExtensions{}.IsEmpty())
	assert.True(t, DeviceExtensions{}.IsEmpty())
	assert.False(t, InstanceExtensions{KHRSurface: true}.IsEmpty())
	assert.False(t, DeviceExtensions{KHRSwapchain: true}.IsEmpty())
	assert.Nil(t, InstanceExtensions{}.Names())
}

func TestSetAlgebra(t *testing.T) {
	x := DeviceExtensions{KHRSwapchain: true, KHRMultiview: true}
	y := DeviceExtensions{KHRMultiview: true, KHRMaintenance2: true}

	t.Run("union", func(t *testing.T) {
		want := DeviceExtensions{KHRSwapchain: true, KHRMultiview: true, KHRMaintenance2: true}
		assert.Equal(t, want, x.Union(y))
		assert.Equal(t, x.Union(y), y.Union(x))
	})

	t.Run("intersection", func(t *testing.T) {
		want := DeviceExtensions{KHRMultiview: true}
		assert.Equal(t, want, x.Intersection(y))
		assert.Equal(t, x, x.Intersection(x.Union(y)))
	})

	t.Run("difference", func(t *testing.T) {
		assert.Equal(t, DeviceExtensions{KHRSwapchain: true}, x.Difference(y))
		assert.True(t, x.Difference(x).IsEmpty())
	})

	t.Run("contains", func(t *testing.T) {
		union := x.Union(y)
		assert.True(t, union.Contains(x))
		assert.True(t, union.Contains(y))
		assert.True(t, union.Contains(DeviceExtensions{}))
		assert.False(t, x.Contains(y))
	})
}

func TestInstanceValidate(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.NoError(t, InstanceExtensions{}.Validate(V1_0))
	})

	t.Run("no-requirements", func(t *testing.T) {
		extensions := InstanceExtensions{EXTDebugUtils: true, KHRSurface: true}
		assert.NoError(t, extensions.Validate(V1_0))
	})

	t.Run("missing-surface", func(t *testing.T) {
		extensions := InstanceExtensions{KHRWaylandSurface: true}

		err := extensions.Validate(V1_3)
		require.Error(t, err)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "InstanceExtensions.KHRWaylandSurface", verr.Context)
		assert.Equal(t, instanceExtensionVUIDs, verr.VUIDs)
		require.Len(t, verr.RequiresOneOf, 1)
		assert.Equal(t, []string{"VK_KHR_surface"}, verr.RequiresOneOf[0].InstanceExtensions)
	})

	t.Run("surface-present", func(t *testing.T) {
		extensions := InstanceExtensions{KHRWaylandSurface: true, KHRSurface: true}
		assert.NoError(t, extensions.Validate(V1_0))
	})

	t.Run("first-offender-wins", func(t *testing.T) {
		// Both display and wayland_surface are unsatisfied; fields are
		// checked in name order.
		extensions := InstanceExtensions{KHRDisplay: true, KHRWaylandSurface: true}

		var verr *ValidationError
		require.ErrorAs(t, extensions.Validate(V1_0), &verr)
		assert.Equal(t, "InstanceExtensions.KHRDisplay", verr.Context)
	})
}

func TestDeviceValidate(t *testing.T) {
	t.Run("cross-scope-missing", func(t *testing.T) {
		extensions := DeviceExtensions{KHRSwapchain: true}

		var verr *ValidationError
		require.ErrorAs(t, extensions.Validate(InstanceExtensions{}, V1_3), &verr)
		assert.Equal(t, "DeviceExtensions.KHRSwapchain", verr.Context)
		assert.Equal(t, deviceExtensionVUIDs, verr.VUIDs)
	})

	t.Run("cross-scope-present", func(t *testing.T) {
		extensions := DeviceExtensions{KHRSwapchain: true}
		instance := InstanceExtensions{KHRSurface: true}

		assert.NoError(t, extensions.Validate(instance, V1_0))
	})

	t.Run("version-floor-satisfies", func(t *testing.T) {
		// VK_EXT_shader_object needs either the extension pair or core
		// 1.3.
		extensions := DeviceExtensions{EXTShaderObject: true}

		assert.NoError(t, extensions.Validate(InstanceExtensions{}, V1_3))
		assert.Error(t, extensions.Validate(InstanceExtensions{}, V1_2))
	})

	t.Run("extension-pair-satisfies", func(t *testing.T) {
		extensions := DeviceExtensions{
			EXTShaderObject:        true,
			KHRDynamicRendering:    true,
			KHRDepthStencilResolve: true,
			KHRCreateRenderpass2:   true,
			KHRMultiview:           true,
			KHRMaintenance2:        true,
		}
		instance := InstanceExtensions{KHRGetPhysicalDeviceProperties2: true}

		assert.NoError(t, extensions.Validate(instance, V1_0))
	})

	t.Run("transitive-chain", func(t *testing.T) {
		// Acceleration structure requires 1.1 plus three extensions,
		// each carrying its own requirements.
		extensions := DeviceExtensions{
			KHRAccelerationStructure:  true,
			EXTDescriptorIndexing:     true,
			KHRBufferDeviceAddress:    true,
			KHRDeferredHostOperations: true,
			KHRMaintenance3:           true,
		}
		instance := InstanceExtensions{KHRGetPhysicalDeviceProperties2: true}

		assert.NoError(t, extensions.Validate(instance, V1_1))
		assert.Error(t, extensions.Validate(instance, V1_0))
	})

	t.Run("chain-missing-link", func(t *testing.T) {
		extensions := DeviceExtensions{
			KHRAccelerationStructure:  true,
			KHRBufferDeviceAddress:    true,
			KHRDeferredHostOperations: true,
		}

		var verr *ValidationError
		require.ErrorAs(t, extensions.Validate(InstanceExtensions{}, V1_1), &verr)
		assert.Equal(t, "DeviceExtensions.KHRAccelerationStructure", verr.Context)
		require.Len(t, verr.RequiresOneOf, 1)
		assert.Equal(t, &V1_1, verr.RequiresOneOf[0].APIVersion)
		assert.Equal(t, []string{
			"VK_EXT_descriptor_indexing",
			"VK_KHR_buffer_device_address",
			"VK_KHR_deferred_host_operations",
		}, verr.RequiresOneOf[0].DeviceExtensions)
	})

	t.Run("promoted-extension", func(t *testing.T) {
		// Multiview was promoted to core 1.1, so a 1.1 device needs no
		// instance support.
		extensions := DeviceExtensions{KHRMultiview: true}

		assert.NoError(t, extensions.Validate(InstanceExtensions{}, V1_1))
		assert.Error(t, extensions.Validate(InstanceExtensions{}, V1_0))
	})
}

func TestMustValidate(t *testing.T) {
	assert.NotPanics(t, func() {
		InstanceExtensions{KHRSurface: true}.MustValidate(V1_0)
	})
	assert.Panics(t, func() {
		DeviceExtensions{KHRSwapchain: true}.MustValidate(InstanceExtensions{}, V1_3)
	})
}
