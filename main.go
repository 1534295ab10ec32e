package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"teeko/internal/teeko/cmd"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if err := teeko(); err != nil {
		log.Fatal().Err(err).Msg("teeko failed")
	}
}

func teeko() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
