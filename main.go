package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/eiannone/keyboard"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"elevatorsim/building"
	"elevatorsim/config"
	"elevatorsim/elevator"
	"elevatorsim/logger"
	"elevatorsim/timer"
)

func main() {
	_ = godotenv.Load()

	level := zerolog.InfoLevel
	if s := os.Getenv("ELEVATORSIM_LOG_LEVEL"); s != "" {
		if parsed, err := zerolog.ParseLevel(s); err == nil {
			level = parsed
		}
	}
	log := logger.GetLoggerConfigured(level)

	path := os.Getenv("ELEVATORSIM_CONFIG")
	if path == "" {
		path = "elevatorsim.yaml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatal().Err(err).Msg("loading configuration")
	}

	b, err := building.New(cfg, timer.SystemClock{}, log, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("building simulation")
	}
	log.Info().Int("floors", cfg.Floors).Int("elevators", cfg.Elevators).Str("strategy", cfg.Strategy).Msg("simulation ready")

	if len(os.Args) > 1 && os.Args[1] == "demo" {
		runDemo(b, log)
		return
	}
	runInteractive(b, cfg, log)
}

// runDemo plays a short scripted sequence: two hall calls followed by a
// cabin request in each elevator.
func runDemo(b *building.Building, log *zerolog.Logger) {
	top := b.NumFloors() - 1
	steps := []func() error{
		func() error { return b.PressExternalButton(1, elevator.Up) },
		func() error { return b.PressExternalButton(top, elevator.Down) },
		func() error { return b.AddInternalRequest(1, 3) },
		func() error { return b.AddInternalRequest(2, 4) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			log.Error().Err(err).Msg("demo step failed")
		}
	}
	log.Info().Msg("demo finished")
}

func runInteractive(b *building.Building, cfg config.Config, log *zerolog.Logger) {
	if err := keyboard.Open(); err != nil {
		log.Fatal().Err(err).Msg("opening keyboard")
	}
	defer keyboard.Close()

	fmt.Println("keys: 0-9 select floor | arrow up/down hall call | e cycle elevator | c cabin request | q quit")

	selectedFloor := 0
	selectedElevator := 1

	for {
		char, key, err := keyboard.GetKey()
		if err != nil {
			log.Error().Err(err).Msg("reading key")
			return
		}

		switch {
		case char == 'q' || key == keyboard.KeyEsc:
			return

		case char >= '0' && char <= '9':
			n, _ := strconv.Atoi(string(char))
			if n < cfg.Floors {
				selectedFloor = n
				fmt.Printf("floor %d selected\n", selectedFloor)
			}

		case key == keyboard.KeyArrowUp || char == 'u':
			if err := b.PressExternalButton(selectedFloor, elevator.Up); err != nil {
				log.Error().Err(err).Msg("hall call")
			}

		case key == keyboard.KeyArrowDown || char == 'd':
			if err := b.PressExternalButton(selectedFloor, elevator.Down); err != nil {
				log.Error().Err(err).Msg("hall call")
			}

		case char == 'e':
			selectedElevator = selectedElevator%cfg.Elevators + 1
			fmt.Printf("elevator %d selected\n", selectedElevator)

		case char == 'c':
			if err := b.AddInternalRequest(selectedElevator, selectedFloor); err != nil {
				log.Error().Err(err).Msg("cabin request")
			}
		}
	}
}
