package main

import (
	"os"

	"github.com/arthur-debert/edir/pkg/ui"
)

func main() {
	app := &App{StdinIsTerminal: ui.IsTerminal(os.Stdin)}
	os.Exit(Execute(app, os.Args[1:]))
}
