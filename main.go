package main

import (
	"github.com/beanboi7/chyp8/cmd"

	"github.com/faiface/pixel/pixelgl"
)

func main() {
	pixelgl.Run(runChyp8)
}

// runChyp8 runs on the main thread, which pixelgl needs for its window calls.
func runChyp8() {
	cmd.Execute()
}
