// Command wallframe hangs a picture on a simulated wall.
//
// It decodes an input image, optionally draws a decorative frame border
// around it, renders the perspective depth effect, optionally upscales
// the result, and writes everything into a per-job output directory:
//
//	outputs/<job-id>/original.png
//	outputs/<job-id>/framed.png
//	outputs/<job-id>/framed_upscaled.png   (with -upscale > 1)
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/gogpu/wallframe"
)

// config mirrors the flags; a TOML file supplies defaults and flags
// override it.
type config struct {
	Style       string  `toml:"style"`
	Intensity   float64 `toml:"intensity"`
	Frame       string  `toml:"frame"`
	FrameWidth  int     `toml:"frame_width"`
	WallGray    float64 `toml:"wall_gray"`
	Upscale     int     `toml:"upscale"`
	OutputDir   string  `toml:"output_dir"`
	StyleConfig string  `toml:"style_config"`
}

func defaultConfig() config {
	return config{
		Style:     "realistic",
		Intensity: 1.0,
		Frame:     "brown",
		WallGray:  0.94,
		Upscale:   1,
		OutputDir: "outputs",
	}
}

func main() {
	cfg := defaultConfig()

	var (
		input      = flag.String("input", "", "input image (PNG or JPEG)")
		configPath = flag.String("config", "", "optional TOML config file")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.StringVar(&cfg.Style, "style", cfg.Style, "perspective style: subtle, realistic, dramatic")
	flag.Float64Var(&cfg.Intensity, "intensity", cfg.Intensity, "depth intensity multiplier")
	flag.StringVar(&cfg.Frame, "frame", cfg.Frame, "frame preset: brown, white, black, gold")
	flag.IntVar(&cfg.FrameWidth, "frame-width", cfg.FrameWidth, "frame border width in pixels (0 disables)")
	flag.Float64Var(&cfg.WallGray, "wall-gray", cfg.WallGray, "wall brightness in [0, 1]")
	flag.IntVar(&cfg.Upscale, "upscale", cfg.Upscale, "integer upscale factor for the result")
	flag.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "output directory root")
	flag.StringVar(&cfg.StyleConfig, "style-config", cfg.StyleConfig, "optional TOML style override file")
	flag.Parse()

	if *configPath != "" {
		if _, err := toml.DecodeFile(*configPath, &cfg); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		// Re-apply flags so the command line wins over the file.
		flag.Parse()
	}
	if *input == "" {
		log.Fatal("missing -input")
	}
	if *verbose {
		wallframe.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	style, err := wallframe.ParseStyle(cfg.Style)
	if err != nil {
		log.Fatalf("Bad style: %v", err)
	}

	front, err := wallframe.LoadPixmap(*input)
	if err != nil {
		log.Fatalf("Failed to load input: %v", err)
	}

	if cfg.FrameWidth > 0 {
		preset, err := wallframe.ParseFramePreset(cfg.Frame)
		if err != nil {
			log.Fatalf("Bad frame preset: %v", err)
		}
		front, err = wallframe.AddFrame(front, preset, cfg.FrameWidth, 1)
		if err != nil {
			log.Fatalf("Failed to frame image: %v", err)
		}
	}

	params, err := resolveStyleParams(style, cfg)
	if err != nil {
		log.Fatalf("Bad style parameters: %v", err)
	}

	wall, placement, err := wallframe.WallCanvasFor(front, params, wallframe.Gray(cfg.WallGray))
	if err != nil {
		log.Fatalf("Failed to build wall canvas: %v", err)
	}

	result, err := wallframe.Render(front, wall, placement, style,
		wallframe.WithStyleParams(params))
	if err != nil {
		log.Fatalf("Render failed: %v", err)
	}

	jobDir := filepath.Join(cfg.OutputDir, uuid.NewString())
	if err := os.MkdirAll(jobDir, 0o755); err != nil {
		log.Fatalf("Failed to create output dir: %v", err)
	}

	if err := front.SavePNG(filepath.Join(jobDir, "original.png")); err != nil {
		log.Fatalf("Failed to save original: %v", err)
	}
	if err := result.Canvas.SavePNG(filepath.Join(jobDir, "framed.png")); err != nil {
		log.Fatalf("Failed to save result: %v", err)
	}

	if cfg.Upscale > 1 {
		up, err := wallframe.Upscale(result.Canvas, cfg.Upscale)
		if err != nil {
			log.Fatalf("Upscale failed: %v", err)
		}
		if err := up.SavePNG(filepath.Join(jobDir, "framed_upscaled.png")); err != nil {
			log.Fatalf("Failed to save upscaled result: %v", err)
		}
	}

	log.Printf("Saved render to %s (style=%s depth_3d=%d)", jobDir, style, result.Params.Depth3D)
}

// resolveStyleParams merges the optional style-override file with the
// compiled presets.
func resolveStyleParams(style wallframe.Style, cfg config) (wallframe.StyleParams, error) {
	if cfg.StyleConfig == "" {
		return style.Params(cfg.Intensity)
	}
	sc, err := wallframe.LoadStyleConfig(cfg.StyleConfig)
	if err != nil {
		return wallframe.StyleParams{}, err
	}
	return sc.Resolve(style, cfg.Intensity)
}
