// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package instance

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"golang.org/x/image/math/f32"

	"github.com/gogpu/vshapes/layout"
)

func f32At(b []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b[off:]))
}

func u32At(b []byte, off int) uint32 {
	return binary.LittleEndian.Uint32(b[off:])
}

func testStyle() Style {
	return Style{
		Transform: Translation(3, 4, 5),
		Color:     f32.Vec4{0.1, 0.2, 0.3, 1},
		Thickness: 2,
		Flags:     Flags{Thickness: ThicknessPixels, Hollow: true},
	}
}

func checkStyle(t *testing.T, b []byte) {
	t.Helper()
	// Column 3 of the transform holds the translation.
	for i, want := range []float32{3, 4, 5, 1} {
		if got := f32At(b, 48+i*4); got != want {
			t.Errorf("transform[3][%d] = %v, want %v", i, got, want)
		}
	}
	if got := f32At(b, 64); got != 0.1 {
		t.Errorf("color.r = %v, want 0.1", got)
	}
	if got := f32At(b, 80); got != 2 {
		t.Errorf("thickness = %v, want 2", got)
	}
	if got := u32At(b, 84); got != testStyle().Flags.Pack() {
		t.Errorf("flags = %#x, want %#x", got, testStyle().Flags.Pack())
	}
}

func TestRecordStrides(t *testing.T) {
	tests := []struct {
		name    string
		stride  uint64
		uniform uint64
		want    uint64
	}{
		{"Disc", layout.Stride[Disc](), layout.UniformStride[Disc](), 112},
		{"Line", layout.Stride[Line](), layout.UniformStride[Line](), 128},
		{"Rect", layout.Stride[Rect](), layout.UniformStride[Rect](), 112},
		{"RegularPolygon", layout.Stride[RegularPolygon](), layout.UniformStride[RegularPolygon](), 112},
	}
	for _, tt := range tests {
		if tt.stride != tt.want || tt.uniform != tt.want {
			t.Errorf("%s: stride %d, uniform stride %d, want %d", tt.name, tt.stride, tt.uniform, tt.want)
		}
	}
}

func TestDiscLayout(t *testing.T) {
	b := layout.Encode(Disc{Style: testStyle(), Radius: 0.5, StartAngle: 1, EndAngle: 2})
	if len(b) != 112 {
		t.Fatalf("len = %d, want 112", len(b))
	}
	checkStyle(t, b)
	for off, want := range map[int]float32{88: 0.5, 92: 1, 96: 2} {
		if got := f32At(b, off); got != want {
			t.Errorf("f32 at %d = %v, want %v", off, got, want)
		}
	}
}

func TestLineLayout(t *testing.T) {
	b := layout.Encode(Line{Style: testStyle(), Start: f32.Vec3{1, 2, 3}, End: f32.Vec3{4, 5, 6}})
	if len(b) != 128 {
		t.Fatalf("len = %d, want 128", len(b))
	}
	checkStyle(t, b)
	// vec3 members are 16-byte aligned: start at 96, end at 112.
	for i := 0; i < 3; i++ {
		if got := f32At(b, 96+i*4); got != float32(i+1) {
			t.Errorf("start[%d] = %v", i, got)
		}
		if got := f32At(b, 112+i*4); got != float32(i+4) {
			t.Errorf("end[%d] = %v", i, got)
		}
	}
	for off := 88; off < 96; off++ {
		if b[off] != 0 {
			t.Fatalf("padding byte %d = %d, want 0", off, b[off])
		}
	}
}

func TestRectLayout(t *testing.T) {
	b := layout.Encode(Rect{Style: testStyle(), Size: f32.Vec2{10, 20}, CornerRadii: f32.Vec4{1, 2, 3, 4}})
	if len(b) != 112 {
		t.Fatalf("len = %d, want 112", len(b))
	}
	checkStyle(t, b)
	if f32At(b, 88) != 10 || f32At(b, 92) != 20 {
		t.Errorf("size = (%v, %v), want (10, 20)", f32At(b, 88), f32At(b, 92))
	}
	for i := 0; i < 4; i++ {
		if got := f32At(b, 96+i*4); got != float32(i+1) {
			t.Errorf("corner_radii[%d] = %v", i, got)
		}
	}
}

func TestRegularPolygonLayout(t *testing.T) {
	b := layout.Encode(RegularPolygon{Style: testStyle(), Sides: 6, Radius: 1.5, Roundness: 0.25})
	if len(b) != 112 {
		t.Fatalf("len = %d, want 112", len(b))
	}
	checkStyle(t, b)
	if got := u32At(b, 88); got != 6 {
		t.Errorf("sides = %d, want 6", got)
	}
	if f32At(b, 92) != 1.5 || f32At(b, 96) != 0.25 {
		t.Errorf("radius, roundness = %v, %v", f32At(b, 92), f32At(b, 96))
	}
}

func TestFlagsPack(t *testing.T) {
	tests := []struct {
		flags Flags
		want  uint32
	}{
		{Flags{}, 0},
		{Flags{Thickness: ThicknessScreen}, 0b10},
		{Flags{Alignment: AlignBillboard}, 0b100},
		{Flags{Hollow: true}, 0b1000},
		{Flags{Cap: CapRound}, 0b100000},
		{Flags{Arc: true}, 0b1000000},
		{Flags{Thickness: ThicknessPixels, Alignment: AlignBillboard, Hollow: true, Cap: CapSquare, Arc: true}, 0b1011101},
	}
	for _, tt := range tests {
		got := tt.flags.Pack()
		if got != tt.want {
			t.Errorf("%+v.Pack() = %#b, want %#b", tt.flags, got, tt.want)
		}
		if back := UnpackFlags(got); back != tt.flags {
			t.Errorf("UnpackFlags(%#b) = %+v, want %+v", got, back, tt.flags)
		}
	}
}

func TestFlagsRoundTripAllCombinations(t *testing.T) {
	for _, th := range []ThicknessType{ThicknessWorld, ThicknessPixels, ThicknessScreen} {
		for _, al := range []Alignment{AlignFlat, AlignBillboard} {
			for _, c := range []Cap{CapNone, CapSquare, CapRound} {
				for _, hollow := range []bool{false, true} {
					for _, arc := range []bool{false, true} {
						f := Flags{Thickness: th, Alignment: al, Hollow: hollow, Cap: c, Arc: arc}
						if got := UnpackFlags(f.Pack()); got != f {
							t.Errorf("UnpackFlags(%+v.Pack()) = %+v", f, got)
						}
					}
				}
			}
		}
	}
}

func TestFlagsFieldsDisjoint(t *testing.T) {
	fields := []struct {
		name string
		bits uint32
	}{
		{"thickness", Flags{Thickness: ThicknessScreen | ThicknessPixels}.Pack()},
		{"alignment", Flags{Alignment: AlignBillboard}.Pack()},
		{"hollow", Flags{Hollow: true}.Pack()},
		{"cap", Flags{Cap: CapRound | CapSquare}.Pack()},
		{"arc", Flags{Arc: true}.Pack()},
	}
	var seen uint32
	for _, f := range fields {
		if f.bits == 0 {
			t.Errorf("%s packs to zero", f.name)
		}
		if seen&f.bits != 0 {
			t.Errorf("%s bits %#b overlap earlier fields %#b", f.name, f.bits, seen)
		}
		seen |= f.bits
	}

	hollowFlat := UnpackFlags(Flags{Hollow: true}.Pack())
	if hollowFlat.Alignment != AlignFlat {
		t.Errorf("hollow flat shape decodes with Alignment %d", hollowFlat.Alignment)
	}
}

func TestFlagsWGSLMatchesPacking(t *testing.T) {
	src := FlagsWGSL()
	for _, want := range []string{
		"FLAG_THICKNESS_MASK: u32 = 3u;",
		"FLAG_BILLBOARD: u32 = 4u;",
		"FLAG_HOLLOW: u32 = 8u;",
		"FLAG_CAP_SHIFT: u32 = 4u;",
		"FLAG_ARC: u32 = 64u;",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("FlagsWGSL lacks %q", want)
		}
	}
	if got := (Flags{Alignment: AlignBillboard}).Pack(); got != 4 {
		t.Errorf("billboard bit = %d, want FLAG_BILLBOARD (4)", got)
	}
	if got := (Flags{Cap: CapRound}).Pack() >> 4; got != uint32(CapRound) {
		t.Errorf("cap field = %d, want %d at FLAG_CAP_SHIFT", got, CapRound)
	}
}

func TestWGSLMembers(t *testing.T) {
	tests := []struct {
		src     string
		name    string
		members []string
	}{
		{Disc{}.WGSL(), "Disc", []string{"radius: f32", "start_angle: f32", "end_angle: f32"}},
		{Line{}.WGSL(), "Line", []string{"start: vec3<f32>", "end: vec3<f32>"}},
		{Rect{}.WGSL(), "Rect", []string{"size: vec2<f32>", "corner_radii: vec4<f32>"}},
		{RegularPolygon{}.WGSL(), "RegularPolygon", []string{"sides: u32", "radius: f32", "roundness: f32"}},
	}
	for _, tt := range tests {
		if !strings.HasPrefix(tt.src, "struct "+tt.name+" {\n") {
			t.Errorf("%s: unexpected header in %q", tt.name, tt.src)
		}
		for _, m := range append([]string{"transform: mat4x4<f32>", "flags: u32"}, tt.members...) {
			if !strings.Contains(tt.src, m) {
				t.Errorf("%s: missing member %q", tt.name, m)
			}
		}
	}
}
