package main

import (
	"fmt"
	"io"
	"math"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"golang.org/x/image/math/f32"

	"github.com/gogpu/vshapes/gpulist"
	"github.com/gogpu/vshapes/gpulist/metrics"
	"github.com/gogpu/vshapes/instance"
	"github.com/gogpu/vshapes/layout"
	"github.com/gogpu/vshapes/shader"
)

type report struct {
	device  gpulist.Device
	queue   gpulist.Queue
	out     io.Writer
	count   int
	opts    []gpulist.Option
	wgsl    bool
	metrics bool
}

func (r report) run(shape string) error {
	switch shape {
	case "disc":
		return inspect(r, "discs", instance.Disc{}.WGSL(), "Disc", func(i int) instance.Disc {
			return instance.Disc{Style: style(i), Radius: 0.5, EndAngle: 2 * math.Pi}
		})
	case "line":
		return inspect(r, "lines", instance.Line{}.WGSL(), "Line", func(i int) instance.Line {
			return instance.Line{Style: style(i), End: f32.Vec3{1, 0, 0}}
		})
	case "rect":
		return inspect(r, "rects", instance.Rect{}.WGSL(), "Rect", func(i int) instance.Rect {
			return instance.Rect{Style: style(i), Size: f32.Vec2{1, 1}}
		})
	case "polygon":
		return inspect(r, "polygons", instance.RegularPolygon{}.WGSL(), "RegularPolygon", func(i int) instance.RegularPolygon {
			return instance.RegularPolygon{Style: style(i), Sides: uint32(3 + i%6), Radius: 0.5} //nolint:gosec // small
		})
	default:
		return fmt.Errorf("unknown shape %q (want disc, line, rect or polygon)", shape)
	}
}

// style lays instances out on a 32-wide grid with a hue ramp.
func style(i int) instance.Style {
	t := float32(i%32) / 32
	return instance.Style{
		Transform: instance.Translation(float32(i%32), float32(i/32), 0),
		Color:     f32.Vec4{t, 1 - t, 0.5, 1},
		Thickness: 0.1,
	}
}

func inspect[T layout.ShaderType](r report, name, structWGSL, typeName string, gen func(i int) T) error {
	opts := append([]gpulist.Option{gpulist.WithLabel(name)}, r.opts...)
	list, err := gpulist.New[T](r.device, opts...)
	if err != nil {
		return fmt.Errorf("create list: %w", err)
	}
	defer list.Release(r.device)

	var last gpulist.Index
	for i := 0; i < r.count; i++ {
		last = list.Push(gen(i))
	}
	if err := list.WriteBuffer(r.device, r.queue); err != nil {
		return fmt.Errorf("write buffer: %w", err)
	}
	s := list.Stats()

	fmt.Fprintf(r.out, "list:            %s\n", s.Label)
	fmt.Fprintf(r.out, "strategy:        %s\n", s.Strategy)
	fmt.Fprintf(r.out, "element stride:  %d\n", layout.Stride[T]())
	fmt.Fprintf(r.out, "elements:        %d\n", s.Written)
	if ub := list.Uniform(); ub != nil {
		fmt.Fprintf(r.out, "batch size:      %d\n", ub.BatchSize())
		fmt.Fprintf(r.out, "chunk size:      %d\n", ub.Size())
		fmt.Fprintf(r.out, "alignment:       %d\n", ub.Alignment())
		fmt.Fprintf(r.out, "chunks:          %d\n", ub.Chunks())
		fmt.Fprintf(r.out, "offsets:         %v\n", ub.Offsets())
	}
	fmt.Fprintf(r.out, "uploaded bytes:  %d\n", s.UploadedBytes)
	if b, ok := list.Binding(); ok {
		fmt.Fprintf(r.out, "binding size:    %d\n", b.Size)
	}
	if r.count > 0 {
		fmt.Fprintf(r.out, "last index:      %d offsets=%v\n", last.Index, last.DynamicOffsets())
	}

	if r.wgsl {
		decl := shader.ListDeclaration[T](0, 0, name, typeName, r.device, opts...)
		fmt.Fprintf(r.out, "\n%s", shader.Module(structWGSL, decl.WGSL()))
	}
	if r.metrics {
		return writeMetrics(r.out, s)
	}
	return nil
}

func writeMetrics(w io.Writer, s gpulist.Stats) error {
	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder("vshapes")
	if err := rec.Register(reg); err != nil {
		return err
	}
	rec.Observe(s)

	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	fmt.Fprintln(w)
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
