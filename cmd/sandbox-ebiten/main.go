// Command sandbox-ebiten runs the engine on the software backend inside an
// ebiten window. Useful where no OpenGL 3.3 context is available.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/tanema/gween/ease"

	"github.com/hubastard/sprig/engine"
	"github.com/hubastard/sprig/engine/colors"
	"github.com/hubastard/sprig/engine/core"
	"github.com/hubastard/sprig/engine/motion"
	"github.com/hubastard/sprig/engine/platform/ebitenhost"
	"github.com/hubastard/sprig/engine/sprite"
)

func main() {
	count := flag.Int("sprites", 32, "number of sprites")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	core.SetLogger(logger)

	surfaces := core.NewSurfaces()
	host := ebitenhost.New("canvas", "sprig (software)", 960, 540)
	if err := surfaces.Register(host); err != nil {
		log.Fatal(err)
	}

	eng, err := engine.New("canvas", engine.Config{
		Config:   core.Config{ClearColor: colors.FromHex(0x1e1e2e), ForceSoftware: true},
		Surfaces: surfaces,
		Logger:   logger,
	})
	if err != nil {
		log.Fatal(err)
	}
	if err := eng.Init(); err != nil {
		log.Fatal(err)
	}
	defer eng.Shutdown()

	tweens := motion.New(eng.Sprites())
	eng.PushLayer(tweens)

	var ids []sprite.ID
	for i := 0; i < *count; i++ {
		s := eng.CreateSprite(engine.SpriteDesc{
			X:      float32(20 + (i%8)*110),
			Y:      float32(20 + (i/8)*110),
			Width:  48,
			Height: 48,
			Color:  colors.Random(),
		})
		ids = append(ids, s.ID)
	}

	// the sprite under the cursor follows it while the left button is held
	eng.OnFrame(func(e *engine.Engine, dt float64) {
		if e.IsKeyPressed(core.KeyEscape) {
			e.Stop()
			return
		}
		if e.IsMouseButtonPressed(core.MouseLeft) && len(ids) > 0 {
			mx, my := e.MousePosition()
			tweens.MoveTo(ids[0], mx-24, my-24, 0.15, ease.OutQuad)
		}
		if e.IsKeyPressed(core.KeySpace) {
			for _, id := range ids {
				e.SetSpriteColor(id, colors.Random())
			}
		}
	})

	if err := eng.Start(); err != nil {
		log.Fatal(err)
	}
	host.Attach(eng)
	if err := host.Run(); err != nil {
		log.Fatal(err)
	}
}
