// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package shader generates the WGSL side of GPU lists and compiles shaders
// that read them.
//
// A list's binding differs between strategies: a runtime-sized storage
// array, or a fixed-size uniform array read at a dynamic offset. Declaration
// renders whichever one the device will use, together with a constant
// holding the batch size, so one shader source serves both:
//
//	decl := shader.ListDeclaration[instance.Disc](0, 0, "discs", "Disc", device)
//	src := shader.Module(instance.Disc{}.WGSL(), decl.WGSL(), body)
//	spirv, err := shader.Compile(src)
package shader

import (
	"fmt"
	"strings"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/vshapes/gpulist"
	"github.com/gogpu/vshapes/layout"
)

// Declaration describes the WGSL binding of one list.
type Declaration struct {
	Group   uint32
	Binding uint32
	// Name is the WGSL variable name.
	Name string
	// Type is the WGSL struct name of the elements.
	Type     string
	Strategy gpulist.Strategy
	// BatchSize is the uniform array length. Ignored for storage.
	BatchSize uint32
}

// ListDeclaration returns the declaration matching a gpulist.List[T] created
// on device with the same options.
func ListDeclaration[T layout.ShaderType](group, binding uint32, name, typeName string, device gpulist.Device, opts ...gpulist.Option) Declaration {
	d := Declaration{
		Group:    group,
		Binding:  binding,
		Name:     name,
		Type:     typeName,
		Strategy: gpulist.SelectStrategy(device.Limits(), opts...),
	}
	if n, ok := gpulist.BatchSize[T](device, opts...); ok {
		d.BatchSize = n
	}
	return d
}

// BatchSizeConstant is the name of the WGSL constant holding the batch size
// of the named list. It is 0 on the storage strategy.
func BatchSizeConstant(name string) string {
	return strings.ToUpper(name) + "_BATCH_SIZE"
}

// WGSL renders the batch size constant followed by the variable declaration.
func (d Declaration) WGSL() string {
	var sb strings.Builder
	switch d.Strategy {
	case gpulist.StrategyUniform:
		fmt.Fprintf(&sb, "const %s: u32 = %du;\n", BatchSizeConstant(d.Name), d.BatchSize)
		fmt.Fprintf(&sb, "@group(%d) @binding(%d) var<uniform> %s: array<%s, %d>;\n",
			d.Group, d.Binding, d.Name, d.Type, d.BatchSize)
	default:
		fmt.Fprintf(&sb, "const %s: u32 = 0u;\n", BatchSizeConstant(d.Name))
		fmt.Fprintf(&sb, "@group(%d) @binding(%d) var<storage, read> %s: array<%s>;\n",
			d.Group, d.Binding, d.Name, d.Type)
	}
	return sb.String()
}

// Module joins WGSL fragments into one source, in order.
func Module(parts ...string) string {
	var sb strings.Builder
	for _, p := range parts {
		sb.WriteString(p)
		if !strings.HasSuffix(p, "\n") {
			sb.WriteByte('\n')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Compile compiles WGSL source to SPIR-V words.
func Compile(src string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("shader: compile: %w", err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("shader: SPIR-V length %d is not a multiple of 4", len(spirvBytes))
	}

	// SPIR-V is little-endian 32-bit words
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}

// CreateModule compiles src and creates a HAL shader module from it.
func CreateModule(device hal.Device, label, src string) (hal.ShaderModule, error) {
	words, err := Compile(src)
	if err != nil {
		return nil, err
	}
	module, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: label,
		Source: hal.ShaderSource{
			SPIRV: words,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("shader: create module %s: %w", label, err)
	}
	return module, nil
}
