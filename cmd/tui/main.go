package main

import (
	"flag"
	"log"

	"github.com/Garsondee/Root-Wars/internal/audio"
	"github.com/Garsondee/Root-Wars/internal/sim"
	"github.com/Garsondee/Root-Wars/internal/tui"
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
			// Non-fatal, the arena runs without sound.
			log.Printf("audio disabled: %v", err)
		}
		defer sound.Cleanup()
	}

	app, err := tui.New(cfg, sound)
	if err != nil {
		log.Fatal(err)
	}
	err = app.Run()
	app.Close()
	if err != nil {
		log.Fatal(err)
	}
}
