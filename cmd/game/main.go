package main

import (
	"log"

	"github.com/Garsondee/Covert-Cue/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	g, err := game.New()
	if err != nil {
		log.Fatal(err)
	}
	ebiten.SetWindowTitle("Covert Cue")
	ebiten.SetWindowSize(1672, 848)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
