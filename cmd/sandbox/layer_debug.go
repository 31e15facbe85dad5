package main

import (
	"log/slog"
	"runtime"

	"github.com/hubastard/sprig/engine"
	"github.com/hubastard/sprig/engine/core"
	"github.com/hubastard/sprig/engine/profiler"
)

// LayerDebug logs frame statistics once a second; Ctrl+P dumps profiler
// scopes (build with -tags profile).
type LayerDebug struct {
	e       *engine.Engine
	log     *slog.Logger
	elapsed float64
}

func NewLayerDebug(e *engine.Engine, log *slog.Logger) *LayerDebug {
	return &LayerDebug{e: e, log: log}
}

func (l *LayerDebug) OnUpdate(dt float64) {
	l.elapsed += dt
	if l.elapsed < 1 {
		return
	}
	l.elapsed = 0

	st := l.e.Stats()
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	l.log.Info("frame",
		"backend", l.e.BackendName(),
		"fps", l.e.FPS(),
		"frames", l.e.Frames(),
		"sprites", l.e.SpriteCount(),
		"draw_calls", st.DrawCalls,
		"quads", st.QuadCount,
		"vertices", st.TotalVertexCount(),
		"heap_mb", float64(mem.HeapAlloc)/(1<<20),
	)
}

func (l *LayerDebug) OnEvent(ev core.Event) bool {
	switch v := ev.(type) {
	case core.EventKey:
		if v.Down && v.Key == core.KeyP && (v.Mods&core.ModCtrl) != 0 {
			if !profiler.Enabled {
				l.log.Warn("profiler disabled, rebuild with -tags profile")
				return true
			}
			for _, s := range profiler.Snapshot() {
				l.log.Info("scope", "name", s.Name, "count", s.Count, "total", s.Total, "mean", s.Mean(), "max", s.Max)
			}
			profiler.Reset()
			return true
		}
	case core.EventResize:
		l.log.Debug("resize", "w", v.W, "h", v.H)
	}
	return false
}
