package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/tileworld/ecs/component"
	"github.com/milk9111/tileworld/ecs/render"
)

func anyKeyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyKeyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// pollInput snapshots the keyboard and mouse for one tick.
func pollInput(camera *render.Camera) component.Input {
	mx, my := ebiten.CursorPosition()
	return component.Input{
		Up:    anyKeyPressed(ebiten.KeyW, ebiten.KeyArrowUp),
		Down:  anyKeyPressed(ebiten.KeyS, ebiten.KeyArrowDown),
		Left:  anyKeyPressed(ebiten.KeyA, ebiten.KeyArrowLeft),
		Right: anyKeyPressed(ebiten.KeyD, ebiten.KeyArrowRight),

		HealPressed:    anyKeyJustPressed(ebiten.KeyH),
		SpawnPressed:   inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		RespawnPressed: anyKeyJustPressed(ebiten.KeyR, ebiten.KeyEnter),
		QuitPressed:    anyKeyJustPressed(ebiten.KeyEscape, ebiten.KeyF12),

		Cursor: camera.ScreenToWorld(mx, my),
	}
}
