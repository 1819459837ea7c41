package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"cubeview/raster"
	"cubeview/scene"
)

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}

type options struct {
	configPath string
	cfg        scene.Config
	export     raster.ExportOptions
	verbose    bool
}

// override is one -set flag, applied after the config file.
type override struct {
	id    scene.ParamID
	value float64
}

func parseFlags(args []string) (options, error) {
	var opt options
	def := scene.DefaultConfig()

	fs := flag.NewFlagSet("cubeview", flag.ContinueOnError)
	fs.StringVar(&opt.configPath, "config", "", "JSON config file.")
	width := fs.Int("width", def.Width, "Canvas width in pixels.")
	height := fs.Int("height", def.Height, "Canvas height in pixels.")
	side := fs.Float64("side", def.Side, "Cube side length in world units.")
	auto := fs.Bool("auto", false, "Start with auto-rotation on.")
	var overrides []override
	fs.Func("set", "Set a start parameter, e.g. rotX=0.5 or persp=8. Repeatable.", func(s string) error {
		id, v, err := scene.ParseAssignment(s)
		if err != nil {
			return err
		}
		overrides = append(overrides, override{id, v})
		return nil
	})
	fs.StringVar(&opt.export.PNG, "export", "", "Render one frame to this PNG file and exit.")
	fs.StringVar(&opt.export.GIF, "gif", "", "Render an auto-rotating animation to this GIF file and exit.")
	fs.IntVar(&opt.export.Frames, "frames", 120, "Number of frames for -gif.")
	fs.BoolVar(&opt.export.HUD, "hud", false, "Print parameter readouts on exported images.")
	fs.BoolVar(&opt.verbose, "v", false, "Log input events.")
	if err := fs.Parse(args); err != nil {
		return opt, err
	}
	if err := opt.export.Validate(); err != nil {
		return opt, err
	}

	opt.cfg = def
	if opt.configPath != "" {
		cfg, err := scene.LoadConfig(opt.configPath)
		if err != nil {
			return opt, err
		}
		opt.cfg = cfg
	}

	// Explicit flags win over the config file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			opt.cfg.Width = *width
		case "height":
			opt.cfg.Height = *height
		case "side":
			opt.cfg.Side = *side
		case "auto":
			opt.cfg.AutoRotate = *auto
		}
	})
	for _, o := range overrides {
		opt.cfg.Override(o.id, o.value)
	}
	if err := opt.cfg.Validate(); err != nil {
		return opt, err
	}
	opt.export.Width, opt.export.Height = opt.cfg.Width, opt.cfg.Height
	return opt, nil
}

func run(opt options) error {
	ctl := scene.NewController(scene.NewRenderer(opt.cfg.Side), opt.cfg.StartParams())
	ctl.AutoRotate = opt.cfg.AutoRotate

	if opt.export.Enabled() {
		path, err := raster.Export(ctl, opt.export)
		if err != nil {
			return err
		}
		log.Printf("wrote %s (%dx%d)", path, opt.export.Width, opt.export.Height)
		return nil
	}

	runtime.LockOSThread()
	return runWindow(opt.cfg, ctl, opt.verbose)
}

func main() {
	opt, err := parseFlags(os.Args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := run(opt); err != nil {
		log.Fatalln(err)
	}
}
