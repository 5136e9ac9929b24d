package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Root-Wars/internal/audio"
	"github.com/Garsondee/Root-Wars/internal/game"
	"github.com/Garsondee/Root-Wars/internal/sim"
)

func main() {
	cfg := sim.DefaultConfig()
	var mute bool
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "RNG seed")
	flag.IntVar(&cfg.TargetEnemies, "enemies", cfg.TargetEnemies, "enemy count kept alive by reinforcements")
	flag.IntVar(&cfg.Explosives, "explosives", cfg.Explosives, "explosives in the arena")
	flag.BoolVar(&mute, "mute", false, "disable sound")
	flag.Parse()

	var sound *audio.SoundManager
	if !mute {
		sound = audio.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
		}
		defer sound.Cleanup()
	}

	g, err := game.New(cfg, sound)
	if err != nil {
		log.Fatal(err)
	}
	ebiten.SetWindowTitle("Root Wars")
	ebiten.SetWindowSize(g.WindowSize())
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
