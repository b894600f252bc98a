package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pserwylo/beat-game/game"
	"github.com/pserwylo/beat-game/music"
	"github.com/pserwylo/beat-game/player"
)

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	sound, err := music.NewSound()
	if err != nil {
		// Non-fatal, game can run without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	defer sound.Close()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	game.New(screen, sound, player.SystemClock{}, rng).Run()
}
