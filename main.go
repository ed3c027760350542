package main

import (
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register rtmidi driver

	"github.com/PixPMusic/gopher-kontrol/internal/cli"
)

func main() {
	cli.Execute()
}
