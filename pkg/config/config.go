package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/imageio"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Defaults applied by Resolve to fields left empty
const (
	DefaultScene       = "cornell"
	DefaultOutput      = "image.png"
	DefaultMaxThreads  = 8
	DefaultPreviewSize = 256
)

// Vec3 is a JSON array of three numbers
type Vec3 [3]float64

func (v Vec3) toCore() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// Config holds render settings. Camera and background fields are optional
// overrides: when unset the scene's own values are used.
type Config struct {
	// Output
	Scene       string `json:"scene"`
	Output      string `json:"output"`
	Preview     string `json:"preview"`
	PreviewSize int    `json:"preview_size"`
	Texture     string `json:"texture"`

	// Image and sampling
	AspectRatio     float64 `json:"aspect_ratio"`
	ImageWidth      int     `json:"image_width"`
	SamplesPerPixel int     `json:"samples_per_pixel"`
	MaxDepth        *int    `json:"max_depth"`

	// Camera
	VFov         float64  `json:"vfov"`
	LookFrom     *Vec3    `json:"lookfrom"`
	LookAt       *Vec3    `json:"lookat"`
	VUp          *Vec3    `json:"vup"`
	DefocusAngle *float64 `json:"defocus_angle"`
	FocusDist    float64  `json:"focus_dist"`

	// Background gradient
	BackgroundTop    *Vec3 `json:"background_top"`
	BackgroundBottom *Vec3 `json:"background_bottom"`

	// Scheduling
	MaxThreads         int   `json:"max_threads"`
	Seed               int64 `json:"seed"`
	ProgressIntervalMs int   `json:"progress_interval_ms"`
}

// Flags holds CLI flag values that override config file settings.
// Zero values mean "not given"; MaxDepth is nil unless the flag was set.
type Flags struct {
	Scene      string
	Output     string
	Preview    string
	Texture    string
	Width      int
	Samples    int
	MaxDepth   *int
	MaxThreads int
	Seed       int64
}

// Default returns the configuration used when no file is given
func Default() Config {
	cfg := Config{}
	cfg.Resolve(Flags{})
	return cfg
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve applies CLI overrides, then fills empty output and scheduling
// fields with defaults. Scene-dependent fields stay empty.
func (c *Config) Resolve(flags Flags) {
	if flags.Scene != "" {
		c.Scene = flags.Scene
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Preview != "" {
		c.Preview = flags.Preview
	}
	if flags.Texture != "" {
		c.Texture = flags.Texture
	}
	if flags.Width > 0 {
		c.ImageWidth = flags.Width
	}
	if flags.Samples > 0 {
		c.SamplesPerPixel = flags.Samples
	}
	if flags.MaxDepth != nil {
		depth := *flags.MaxDepth
		c.MaxDepth = &depth
	}
	if flags.MaxThreads > 0 {
		c.MaxThreads = flags.MaxThreads
	}
	if flags.Seed != 0 {
		c.Seed = flags.Seed
	}

	if c.Scene == "" {
		c.Scene = DefaultScene
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.PreviewSize <= 0 {
		c.PreviewSize = DefaultPreviewSize
	}
	if c.MaxThreads <= 0 {
		c.MaxThreads = DefaultMaxThreads
	}
	if c.ProgressIntervalMs <= 0 {
		c.ProgressIntervalMs = int(renderer.DefaultProgressInterval / time.Millisecond)
	}
}

// Validate rejects settings no render can use
func (c *Config) Validate() error {
	var errs []error
	if !imageio.SupportedExtension(c.Output) {
		errs = append(errs, fmt.Errorf("config: unsupported output format %q", c.Output))
	}
	if c.Preview != "" && !imageio.SupportedExtension(c.Preview) {
		errs = append(errs, fmt.Errorf("config: unsupported preview format %q", c.Preview))
	}
	if c.AspectRatio < 0 || c.ImageWidth < 0 || c.SamplesPerPixel < 0 || (c.MaxDepth != nil && *c.MaxDepth < 0) {
		errs = append(errs, errors.New("config: image and sampling settings must not be negative"))
	}
	if c.VFov < 0 || c.VFov >= 180 {
		errs = append(errs, fmt.Errorf("config: vfov %g outside [0, 180)", c.VFov))
	}
	if c.FocusDist < 0 {
		errs = append(errs, fmt.Errorf("config: focus_dist %g is negative", c.FocusDist))
	}
	return errors.Join(errs...)
}

// CameraConfig overlays the configured camera settings on a scene's camera
func (c *Config) CameraConfig(base renderer.CameraConfig) renderer.CameraConfig {
	if c.AspectRatio > 0 {
		base.AspectRatio = c.AspectRatio
	}
	if c.ImageWidth > 0 {
		base.ImageWidth = c.ImageWidth
	}
	if c.SamplesPerPixel > 0 {
		base.SamplesPerPixel = c.SamplesPerPixel
	}
	if c.VFov > 0 {
		base.VFov = c.VFov
	}
	if c.LookFrom != nil {
		base.LookFrom = c.LookFrom.toCore()
	}
	if c.LookAt != nil {
		base.LookAt = c.LookAt.toCore()
	}
	if c.VUp != nil {
		base.VUp = c.VUp.toCore()
	}
	if c.DefocusAngle != nil {
		base.DefocusAngle = *c.DefocusAngle
	}
	if c.FocusDist > 0 {
		base.FocusDist = c.FocusDist
	}
	return base
}

// IntegratorConfig overlays the configured depth and background on a scene's settings
func (c *Config) IntegratorConfig(base integrator.IntegratorConfig) integrator.IntegratorConfig {
	if c.MaxDepth != nil {
		base.MaxDepth = *c.MaxDepth
	}
	if c.BackgroundTop != nil {
		base.BackgroundTop = c.BackgroundTop.toCore()
	}
	if c.BackgroundBottom != nil {
		base.BackgroundBottom = c.BackgroundBottom.toCore()
	}
	return base
}

// RenderOptions returns the scheduling settings
func (c *Config) RenderOptions() renderer.RenderOptions {
	return renderer.RenderOptions{
		MaxThreads:       c.MaxThreads,
		Seed:             c.Seed,
		ProgressInterval: time.Duration(c.ProgressIntervalMs) * time.Millisecond,
	}
}
