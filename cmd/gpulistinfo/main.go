// Command gpulistinfo shows how a GPU list lays out shape instances for a
// given set of device limits.
//
// It opens a noop device, pushes -count instances of the chosen shape and
// prints the strategy, batch size, chunk offsets and uploaded bytes:
//
//	gpulistinfo -shape disc -count 1000 -storage-buffers 0 -wgsl
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal/noop"

	"github.com/gogpu/vshapes"
	"github.com/gogpu/vshapes/gpulist"
)

func main() {
	var (
		shape          = flag.String("shape", "disc", "instance type: disc, line, rect or polygon")
		count          = flag.Int("count", 100, "instances to push")
		maxUniform     = flag.Uint("max-uniform", 65536, "max uniform buffer binding size")
		alignment      = flag.Uint("align", 256, "min uniform buffer offset alignment")
		storageBuffers = flag.Uint("storage-buffers", 8, "max storage buffers per shader stage (0 forces the uniform fallback)")
		configPath     = flag.String("config", "", "TOML list config file")
		forceUniform   = flag.Bool("force-uniform", false, "use the uniform strategy even with storage buffers")
		showWGSL       = flag.Bool("wgsl", false, "print the WGSL declaration of the list")
		showMetrics    = flag.Bool("metrics", false, "print the list metrics in Prometheus text format")
		verbose        = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		vshapes.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var opts []gpulist.Option
	if *configPath != "" {
		cfg, err := gpulist.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		opts = cfg.Options()
	}
	if *forceUniform {
		opts = append(opts, gpulist.WithForceUniform(true))
	}

	limits := gputypes.DefaultLimits()
	setLimit(&limits.MaxUniformBufferBindingSize, *maxUniform)
	setLimit(&limits.MinUniformBufferOffsetAlignment, *alignment)
	setLimit(&limits.MaxStorageBuffersPerShaderStage, *storageBuffers)

	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		log.Fatalf("Failed to create instance: %v", err)
	}
	defer instance.Destroy()
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		log.Fatal("No adapters")
	}
	openDev, err := adapters[0].Adapter.Open(0, limits)
	if err != nil {
		log.Fatalf("Failed to open device: %v", err)
	}
	defer openDev.Device.Destroy()

	r := report{
		device:  gpulist.NewHALDevice(openDev.Device, limits),
		queue:   gpulist.NewHALQueue(openDev.Queue),
		out:     os.Stdout,
		count:   *count,
		opts:    opts,
		wgsl:    *showWGSL,
		metrics: *showMetrics,
	}
	if err := r.run(*shape); err != nil {
		log.Fatal(err)
	}
}

// setLimit stores a flag value into a limit field of either width.
func setLimit[T ~uint32 | ~uint64](field *T, v uint) {
	*field = T(v) //nolint:gosec // flag value
}
