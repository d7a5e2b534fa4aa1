// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package instance

// ThicknessType selects the unit a shape's thickness is measured in.
type ThicknessType uint8

const (
	// ThicknessWorld measures thickness in world units.
	ThicknessWorld ThicknessType = iota
	// ThicknessPixels measures thickness in physical pixels.
	ThicknessPixels
	// ThicknessScreen measures thickness as a fraction of the screen height.
	ThicknessScreen
)

// Alignment selects how a shape is oriented relative to the camera. It is
// packed as a single bit.
type Alignment uint8

const (
	// AlignFlat keeps the shape in the plane given by its transform.
	AlignFlat Alignment = iota
	// AlignBillboard turns the shape to face the camera.
	AlignBillboard
)

// Cap is the end treatment of lines and arcs.
type Cap uint8

const (
	CapNone Cap = iota
	CapSquare
	CapRound
)

// Bit layout of the packed flags word, shared with the shaders.
const (
	flagThicknessShift = 0
	flagBillboardBit   = 1 << 2
	flagHollowBit      = 1 << 3
	flagCapShift       = 4
	flagArcBit         = 1 << 6

	flagTwoBits = 0b11
)

// Flags are the per-shape style switches, packed into one u32 on the GPU.
type Flags struct {
	Thickness ThicknessType
	Alignment Alignment
	Hollow    bool
	Cap       Cap
	// Arc limits a disc to the range between its start and end angles.
	Arc bool
}

// Pack encodes f as the u32 the shaders decode.
func (f Flags) Pack() uint32 {
	v := uint32(f.Thickness&flagTwoBits)<<flagThicknessShift |
		uint32(f.Cap&flagTwoBits)<<flagCapShift
	if f.Alignment == AlignBillboard {
		v |= flagBillboardBit
	}
	if f.Hollow {
		v |= flagHollowBit
	}
	if f.Arc {
		v |= flagArcBit
	}
	return v
}

// UnpackFlags decodes a packed flags word.
func UnpackFlags(v uint32) Flags {
	f := Flags{
		Thickness: ThicknessType((v >> flagThicknessShift) & flagTwoBits),
		Hollow:    v&flagHollowBit != 0,
		Cap:       Cap((v >> flagCapShift) & flagTwoBits),
		Arc:       v&flagArcBit != 0,
	}
	if v&flagBillboardBit != 0 {
		f.Alignment = AlignBillboard
	}
	return f
}

// flagsWGSL holds the shader side of the flag layout.
const flagsWGSL = `const FLAG_THICKNESS_MASK: u32 = 3u;
const FLAG_BILLBOARD: u32 = 4u;
const FLAG_HOLLOW: u32 = 8u;
const FLAG_CAP_SHIFT: u32 = 4u;
const FLAG_ARC: u32 = 64u;
`

// FlagsWGSL returns WGSL constants for decoding the flags member.
func FlagsWGSL() string {
	return flagsWGSL
}
