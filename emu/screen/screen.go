// Package screen presents a CHIP-8 display in a pixelgl window and reads the
// keypad from the keyboard.
package screen

import (
	"fmt"

	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/beanboi7/chyp8/emu/keypad"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
)

type Window struct {
	*pixelgl.Window
	KeyMap [cpu.KeyCount]pixelgl.Button
	scale  float64
	imd    *imdraw.IMDraw
}

// New opens a window scale times the size of the CHIP-8 display. It must be
// called from the function passed to pixelgl.Run.
func New(scale float64, layout keypad.Layout) (*Window, error) {
	if scale < 1 {
		scale = 1
	}

	keyMap, err := buttonsFor(layout)
	if err != nil {
		return nil, err
	}

	cfg := pixelgl.WindowConfig{
		Title:  "Chyp8",
		Bounds: pixel.R(0, 0, cpu.DisplayWidth*scale, cpu.DisplayHeight*scale),
		VSync:  false,
	}

	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	w := &Window{
		Window: win,
		KeyMap: keyMap,
		scale:  scale,
		imd:    imdraw.New(nil),
	}
	w.Render(cpu.Display{})
	return w, nil
}

// Keys returns the pressed state of every keypad key.
func (w *Window) Keys() [cpu.KeyCount]bool {
	var keys [cpu.KeyCount]bool
	for index, button := range w.KeyMap {
		keys[index] = w.Pressed(button)
	}
	return keys
}

var buttons = map[rune]pixelgl.Button{
	'0': pixelgl.Key0, '1': pixelgl.Key1, '2': pixelgl.Key2, '3': pixelgl.Key3,
	'4': pixelgl.Key4, '5': pixelgl.Key5, '6': pixelgl.Key6, '7': pixelgl.Key7,
	'8': pixelgl.Key8, '9': pixelgl.Key9,
	'a': pixelgl.KeyA, 'b': pixelgl.KeyB, 'c': pixelgl.KeyC, 'd': pixelgl.KeyD,
	'e': pixelgl.KeyE, 'f': pixelgl.KeyF, 'g': pixelgl.KeyG, 'h': pixelgl.KeyH,
	'i': pixelgl.KeyI, 'j': pixelgl.KeyJ, 'k': pixelgl.KeyK, 'l': pixelgl.KeyL,
	'm': pixelgl.KeyM, 'n': pixelgl.KeyN, 'o': pixelgl.KeyO, 'p': pixelgl.KeyP,
	'q': pixelgl.KeyQ, 'r': pixelgl.KeyR, 's': pixelgl.KeyS, 't': pixelgl.KeyT,
	'u': pixelgl.KeyU, 'v': pixelgl.KeyV, 'w': pixelgl.KeyW, 'x': pixelgl.KeyX,
	'y': pixelgl.KeyY, 'z': pixelgl.KeyZ,
}

func buttonsFor(layout keypad.Layout) ([cpu.KeyCount]pixelgl.Button, error) {
	var keyMap [cpu.KeyCount]pixelgl.Button
	for index, r := range layout {
		button, ok := buttons[r]
		if !ok {
			return keyMap, fmt.Errorf("%w: no button for key %q", keypad.ErrInvalidLayout, r)
		}
		keyMap[index] = button
	}
	return keyMap, nil
}
