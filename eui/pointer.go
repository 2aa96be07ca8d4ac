package eui

import (
	"runtime"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/time/rate"
)

var (
	touchIDs     []ebiten.TouchID
	isWasm       = runtime.GOOS == "js" && runtime.GOARCH == "wasm"
	wheelLimiter = rate.NewLimiter(rate.Every(125*time.Millisecond), 1)
)

// pointerPosition returns the current pointer position. If a touch is
// active, the first touch is used. Otherwise the mouse cursor is.
func pointerPosition() (float32, float32) {
	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	var x, y int
	if len(touchIDs) > 0 {
		x, y = ebiten.TouchPosition(touchIDs[0])
	} else {
		x, y = ebiten.CursorPosition()
	}
	return float32(x), float32(y)
}

// pointerWheel returns the vertical wheel direction as -1, 0 or 1.
// Browsers deliver bursts of wheel events, so wasm builds are throttled.
func pointerWheel() int {
	_, wy := ebiten.Wheel()
	if wy == 0 {
		return 0
	}
	if isWasm && !wheelLimiter.Allow() {
		return 0
	}
	if wy > 0 {
		return 1
	}
	return -1
}

// pointerJustPressed reports whether the primary pointer was just pressed.
func pointerJustPressed() bool {
	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	if len(touchIDs) > 1 {
		return false
	}
	if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		return true
	}
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButton0)
}

// pointerPressed reports whether the primary pointer is held down.
func pointerPressed() bool {
	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	if len(touchIDs) > 1 {
		return false
	}
	if len(touchIDs) == 1 {
		return true
	}
	return ebiten.IsMouseButtonPressed(ebiten.MouseButton0)
}
