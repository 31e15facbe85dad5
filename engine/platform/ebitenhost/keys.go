package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hubastard/sprig/engine/core"
)

var keyTable = map[ebiten.Key]core.Key{
	ebiten.KeyW:           core.KeyW,
	ebiten.KeyA:           core.KeyA,
	ebiten.KeyS:           core.KeyS,
	ebiten.KeyD:           core.KeyD,
	ebiten.KeyQ:           core.KeyQ,
	ebiten.KeyE:           core.KeyE,
	ebiten.KeyR:           core.KeyR,
	ebiten.KeyF:           core.KeyF,
	ebiten.KeyP:           core.KeyP,
	ebiten.KeySpace:       core.KeySpace,
	ebiten.KeyEnter:       core.KeyEnter,
	ebiten.KeyEscape:      core.KeyEscape,
	ebiten.KeyTab:         core.KeyTab,
	ebiten.KeyBackspace:   core.KeyBackspace,
	ebiten.KeyArrowUp:     core.KeyArrowUp,
	ebiten.KeyArrowDown:   core.KeyArrowDown,
	ebiten.KeyArrowLeft:   core.KeyArrowLeft,
	ebiten.KeyArrowRight:  core.KeyArrowRight,
	ebiten.KeyShiftLeft:   core.KeyShiftLeft,
	ebiten.KeyControlLeft: core.KeyControlLeft,
	ebiten.KeyDigit0:      core.KeyDigit0,
	ebiten.KeyDigit1:      core.KeyDigit1,
	ebiten.KeyDigit2:      core.KeyDigit2,
	ebiten.KeyDigit3:      core.KeyDigit3,
}

var buttonTable = map[ebiten.MouseButton]core.MouseButton{
	ebiten.MouseButtonLeft:   core.MouseLeft,
	ebiten.MouseButtonMiddle: core.MouseMiddle,
	ebiten.MouseButtonRight:  core.MouseRight,
}

func translateKey(k ebiten.Key) core.Key {
	if key, ok := keyTable[k]; ok {
		return key
	}
	return core.KeyUnknown
}

func currentMods() core.Mod {
	var m core.Mod
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		m |= core.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		m |= core.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		m |= core.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		m |= core.ModSuper
	}
	return m
}
