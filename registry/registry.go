// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package registry

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gogpu/vkcap/depends"
)

// scanState tracks where the forward scan currently is in the document.
type scanState uint8

const (
	scanNone scanState = iota
	scanExtensions
	scanExtension
	scanFormats
	scanFormat
)

// Extract reads a vk.xml document and returns the frozen registry
// table. Extraction is fail-fast: a malformed document or dependency
// expression aborts with an error rather than producing a partial
// table.
func Extract(r io.Reader) (*Table, error) {
	builder := NewBuilder()

	state := scanNone
	var currentFormat string

	decoder := xml.NewDecoder(r)
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("registry: malformed XML: %w", err)
		}

		switch element := token.(type) {
		case xml.StartElement:
			switch {
			case element.Name.Local == "extensions":
				state = scanExtensions

			case element.Name.Local == "formats":
				state = scanFormats

			case element.Name.Local == "extension" && state == scanExtensions:
				state = scanExtension

				ext, ok, err := scanExtensionElement(element)
				if err != nil {
					return nil, err
				}
				if ok {
					builder.AddExtension(ext)
				}

			case element.Name.Local == "enum":
				// VK_FORMAT_* enum declarations carry the numeric
				// value of each format.
				name, ok := findAttr(element, "name")
				if !ok || !strings.HasPrefix(name, "VK_FORMAT_") {
					continue
				}
				value, ok := findAttr(element, "value")
				if !ok {
					continue
				}
				builder.formatOrInsert(name).EnumValue = value

			case element.Name.Local == "format" && state == scanFormats:
				name, ok := findAttr(element, "name")
				if !ok {
					continue
				}

				format := builder.formatOrInsert(name)
				format.BlockSize = uintAttr(element, "blockSize")
				format.TexelsPerBlock = uintAttr(element, "texelsPerBlock")
				format.Packed = uintAttr(element, "packed")

				currentFormat = name
				state = scanFormat

			case element.Name.Local == "component" && state == scanFormat:
				scanComponentElement(builder.formatOrInsert(currentFormat), element)
			}

		case xml.EndElement:
			switch element.Name.Local {
			case "extensions", "formats":
				state = scanNone
			case "extension":
				if state == scanExtension {
					state = scanExtensions
				}
			case "format":
				if state == scanFormat {
					state = scanFormats
				}
			}
		}
	}

	return builder.Finish()
}

// scanExtensionElement reads one extension element. The bool result is
// false for extensions filtered out by the supported attribute.
func scanExtensionElement(element xml.StartElement) (Extension, bool, error) {
	name, ok := findAttr(element, "name")
	if !ok {
		return Extension{}, false, nil
	}

	// Disabled and non-Vulkan (e.g. SC-only) extensions never appear
	// in the generated sets.
	supported, _ := findAttr(element, "supported")
	if !strings.Contains(supported, "vulkan") {
		return Extension{}, false, nil
	}

	scope := ScopeDevice
	if kind, ok := findAttr(element, "type"); ok && kind == "instance" {
		scope = ScopeInstance
	}

	ext := Extension{Name: name, Scope: scope}

	if raw, ok := findAttr(element, "depends"); ok {
		requires, err := depends.Parse(raw)
		if err != nil {
			return Extension{}, false, fmt.Errorf("extension %q: %w", name, err)
		}
		ext.DependsRaw = raw
		ext.Requires = requires
	}

	return ext, true, nil
}

// scanComponentElement merges one component element into a format.
func scanComponentElement(format *Format, element xml.StartElement) {
	name, ok := findAttr(element, "name")
	if !ok {
		return
	}

	numericFormat, _ := findAttr(element, "numericFormat")
	component := &Component{
		Bits:          uintAttr(element, "bits"),
		NumericFormat: numericFormat,
	}

	switch name {
	case "R":
		format.R = component
	case "G":
		format.G = component
	case "B":
		format.B = component
	case "A":
		format.A = component
	}
}

// findAttr returns the value of the named attribute.
func findAttr(element xml.StartElement, name string) (string, bool) {
	for _, attr := range element.Attr {
		if attr.Name.Local == name {
			return attr.Value, true
		}
	}
	return "", false
}

// uintAttr parses the named attribute as an unsigned integer, returning
// nil when the attribute is absent or non-numeric.
func uintAttr(element xml.StartElement, name string) *uint32 {
	value, ok := findAttr(element, name)
	if !ok {
		return nil
	}

	parsed, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return nil
	}

	result := uint32(parsed)
	return &result
}
