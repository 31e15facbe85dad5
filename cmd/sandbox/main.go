package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/hubastard/sprig/engine"
	"github.com/hubastard/sprig/engine/assets"
	"github.com/hubastard/sprig/engine/colors"
	"github.com/hubastard/sprig/engine/core"
	"github.com/hubastard/sprig/engine/motion"
	"github.com/hubastard/sprig/engine/platform"
)

func main() {
	software := flag.Bool("software", false, "skip the OpenGL backend")
	shaders := flag.String("shaders", "", "directory with sprite.vert and sprite.frag overrides")
	count := flag.Int("sprites", 64, "number of wandering sprites")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	core.SetLogger(logger)

	cfg := engine.Config{
		Config: core.Config{
			Title:         "sprig sandbox",
			Width:         1280,
			Height:        720,
			VSync:         true,
			ClearColor:    colors.DarkGray,
			ForceSoftware: *software,
		},
		Logger: logger,
	}
	if *shaders != "" {
		vs, fs, err := assets.LoadShaderPair(*shaders)
		if err != nil {
			log.Fatal(err)
		}
		cfg.VertexShader, cfg.FragmentShader = vs, fs
	}

	win, err := platform.NewGLFWWindow("main", cfg.Config, nil)
	if err != nil {
		log.Fatal(err)
	}
	defer win.Destroy()
	if err := win.Register(core.DefaultSurfaces); err != nil {
		log.Fatal(err)
	}

	eng, err := engine.New("main", cfg)
	if err != nil {
		log.Fatal(err)
	}
	win.SetEventCallback(eng.HandleEvent)
	if err := eng.Init(); err != nil {
		log.Fatal(err)
	}
	defer eng.Shutdown()

	tweens := motion.New(eng.Sprites())
	eng.PushLayer(tweens)
	eng.PushLayer(NewLayer2D(eng, tweens, *count))
	eng.PushLayer(NewLayerDebug(eng, logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := eng.Run(ctx, win); err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
}
