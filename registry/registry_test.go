// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package registry

import (
	"os"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/vkcap/depends"
)

func loadTestTable(t *testing.T) *Table {
	t.Helper()

	f, err := os.Open("testdata/vk.xml")
	require.NoError(t, err)
	defer f.Close()

	table, err := Extract(f)
	require.NoError(t, err)
	return table
}

func TestExtract(t *testing.T) {
	table := loadTestTable(t)

	var instance, device int
	for _, ext := range table.Extensions() {
		switch ext.Scope {
		case ScopeInstance:
			instance++
		case ScopeDevice:
			device++
		}
	}

	assert.Equal(t, 7, instance)
	assert.Equal(t, 12, device)
}

func TestExtractSortsByName(t *testing.T) {
	table := loadTestTable(t)

	names := make([]string, 0, len(table.Extensions()))
	for _, ext := range table.Extensions() {
		names = append(names, ext.Name)
	}

	assert.True(t, sort.StringsAreSorted(names), "extensions not sorted: %v", names)
}

func TestExtractScopes(t *testing.T) {
	table := loadTestTable(t)

	surface, ok := table.Find("VK_KHR_surface")
	require.True(t, ok)
	assert.Equal(t, ScopeInstance, surface.Scope)
	assert.Empty(t, surface.DependsRaw)
	assert.Nil(t, surface.Requires)

	swapchain, ok := table.Find("VK_KHR_swapchain")
	require.True(t, ok)
	assert.Equal(t, ScopeDevice, swapchain.Scope)
	assert.Equal(t, "VK_KHR_surface", swapchain.DependsRaw)
	assert.Equal(t, depends.AnyOf{
		{Extensions: []string{"VK_KHR_surface"}},
	}, swapchain.Requires)
}

func TestExtractDependencies(t *testing.T) {
	table := loadTestTable(t)

	v3 := uint32(3)
	shaderObject, ok := table.Find("VK_EXT_shader_object")
	require.True(t, ok)
	assert.Equal(t, depends.AnyOf{
		{Extensions: []string{"VK_KHR_get_physical_device_properties2", "VK_KHR_dynamic_rendering"}},
		{APIVersion: &v3},
	}, shaderObject.Requires)

	v1 := uint32(1)
	accel, ok := table.Find("VK_KHR_acceleration_structure")
	require.True(t, ok)
	assert.Equal(t, depends.AnyOf{
		{APIVersion: &v1, Extensions: []string{
			"VK_EXT_descriptor_indexing",
			"VK_KHR_buffer_device_address",
			"VK_KHR_deferred_host_operations",
		}},
	}, accel.Requires)
}

func TestExtractFiltersUnsupported(t *testing.T) {
	table := loadTestTable(t)

	// supported="disabled" and supported="vulkansc" extensions never
	// reach the table.
	_, ok := table.Find("VK_EXT_extension_62")
	assert.False(t, ok)

	_, ok = table.Find("VK_NV_external_sci_sync2")
	assert.False(t, ok)

	// supported="vulkan,vulkansc" does.
	_, ok = table.Find("VK_KHR_surface")
	assert.True(t, ok)
}

func TestExtractFormats(t *testing.T) {
	table := loadTestTable(t)

	formats := table.Formats()
	require.Len(t, formats, 4)

	byName := make(map[string]Format, len(formats))
	for _, format := range formats {
		byName[format.Name] = format
	}

	rgba := byName["VK_FORMAT_R8G8B8A8_UNORM"]
	assert.Equal(t, "37", rgba.EnumValue)
	require.NotNil(t, rgba.BlockSize)
	assert.Equal(t, uint32(4), *rgba.BlockSize)
	require.NotNil(t, rgba.R)
	require.NotNil(t, rgba.R.Bits)
	assert.Equal(t, uint32(8), *rgba.R.Bits)
	assert.Equal(t, "UNORM", rgba.R.NumericFormat)
	assert.Nil(t, rgba.Packed)

	packed := byName["VK_FORMAT_A2B10G10R10_UNORM_PACK32"]
	require.NotNil(t, packed.Packed)
	assert.Equal(t, uint32(32), *packed.Packed)
	require.NotNil(t, packed.A)
	require.NotNil(t, packed.A.Bits)
	assert.Equal(t, uint32(2), *packed.A.Bits)

	// Compressed formats report bits="compressed"; the width is nil.
	bc1 := byName["VK_FORMAT_BC1_RGB_UNORM_BLOCK"]
	require.NotNil(t, bc1.R)
	assert.Nil(t, bc1.R.Bits)
	assert.Equal(t, "UNORM", bc1.R.NumericFormat)
	assert.Nil(t, bc1.A)

	// VK_FORMAT_UNDEFINED only has an enum declaration.
	undefined := byName["VK_FORMAT_UNDEFINED"]
	assert.Equal(t, "0", undefined.EnumValue)
	assert.Nil(t, undefined.BlockSize)
}

func TestExtractMalformedXML(t *testing.T) {
	_, err := Extract(strings.NewReader("<registry><extensions>"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed XML")
}

func TestExtractBadDependsExpression(t *testing.T) {
	const doc = `<registry><extensions>
		<extension name="VK_KHR_broken" type="device" depends="(VK_KHR_surface" supported="vulkan"/>
	</extensions></registry>`

	_, err := Extract(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `extension "VK_KHR_broken"`)
}

func TestBuilderDuplicate(t *testing.T) {
	builder := NewBuilder()
	builder.AddExtension(Extension{Name: "VK_KHR_surface", Scope: ScopeInstance})
	builder.AddExtension(Extension{Name: "VK_KHR_surface", Scope: ScopeInstance})

	_, err := builder.Finish()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate extension "VK_KHR_surface"`)
}

func TestBuilderDanglingReference(t *testing.T) {
	builder := NewBuilder()
	builder.AddExtension(Extension{
		Name:  "VK_KHR_swapchain",
		Scope: ScopeDevice,
		Requires: depends.AnyOf{
			{Extensions: []string{"VK_KHR_surface"}},
		},
	})

	_, err := builder.Finish()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `depends on unknown extension "VK_KHR_surface"`)
}

func TestTableFindMissing(t *testing.T) {
	table := loadTestTable(t)

	_, ok := table.Find("VK_KHR_no_such_extension")
	assert.False(t, ok)
}

func TestScopeString(t *testing.T) {
	assert.Equal(t, "instance", ScopeInstance.String())
	assert.Equal(t, "device", ScopeDevice.String())
	assert.Equal(t, "Scope(9)", Scope(9).String())
}
