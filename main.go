package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/df07/go-pathtracer/pkg/config"
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/imageio"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/montecarlo"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run parses args, renders the selected scene and writes the image. Results
// go to stdout, progress and diagnostics to stderr.
func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "JSON render config file")
	var flags config.Flags
	fs.StringVar(&flags.Scene, "scene", "", "Scene to render: "+strings.Join(scene.Names(), ", "))
	fs.StringVar(&flags.Output, "o", "", "Output image (.png, .webp, .tga, .bmp, .tif)")
	fs.StringVar(&flags.Preview, "preview", "", "Also write a downscaled preview image to this path")
	fs.StringVar(&flags.Texture, "texture", "", "Image texture for scenes that use one")
	fs.IntVar(&flags.Width, "width", 0, "Image width in pixels (default: scene's)")
	fs.IntVar(&flags.Samples, "spp", 0, "Samples per pixel (default: scene's)")
	depth := fs.Int("depth", 0, "Maximum ray bounce depth (default: scene's)")
	fs.IntVar(&flags.MaxThreads, "threads", 0, "Maximum rendering threads")
	fs.Int64Var(&flags.Seed, "seed", 0, "Base random seed")
	integrate := fs.Int("integrate", 0, "Estimate the integral of x² over [0,2] with N samples and exit")
	list := fs.Bool("list", false, "List available scenes and exit")

	if err := fs.Parse(args); err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "depth" {
			flags.MaxDepth = depth
		}
	})

	if *list {
		for _, name := range scene.Names() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	if *integrate > 0 {
		sampler := core.NewSeededSampler(flags.Seed)
		fmt.Fprintf(stdout, "I = %.12f\n", montecarlo.XSquared(*integrate, sampler))
		return nil
	}

	cfg := config.Config{}
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cfg.Resolve(flags)
	if err := cfg.Validate(); err != nil {
		return err
	}

	return render(cfg, renderer.NewWriterLogger(stderr))
}

// render builds the configured scene, traces it and saves the result
func render(cfg config.Config, logger core.Logger) error {
	var opts scene.Options
	if cfg.Texture != "" {
		texture, err := imageio.LoadTexture(cfg.Texture)
		if err != nil {
			return err
		}
		opts.Texture = texture
	}

	s, err := scene.Create(cfg.Scene, opts)
	if err != nil {
		return err
	}

	tracer := integrator.NewPathTracingIntegrator(cfg.IntegratorConfig(s.IntegratorConfig))
	r := renderer.NewRenderer(cfg.CameraConfig(s.CameraConfig), tracer, cfg.RenderOptions(), logger)

	logger.Printf("Rendering %s scene...\n", s.Name)
	fb, stats := r.Render(s.World, s.Lights)
	logger.Printf("Render completed: %v\n", stats)

	logger.Printf("Writing file...\n")
	img := fb.Image()
	if err := imageio.Save(cfg.Output, img); err != nil {
		return err
	}
	if cfg.Preview != "" {
		if err := imageio.Save(cfg.Preview, imageio.Thumbnail(img, cfg.PreviewSize)); err != nil {
			return err
		}
	}

	logger.Printf("Done\n")
	return nil
}
