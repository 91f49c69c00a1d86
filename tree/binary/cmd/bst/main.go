// Command bst builds, prints and stress-tests binary search trees.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero"

func main() {
	app := cli.NewApp()
	app.Name = "bst"
	app.Usage = "build, print and stress-test binary search trees"
	app.Version = version

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Commands = []cli.Command{
		randomCommand,
		buildCommand,
		stressCommand,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(app.ErrWriter, "error: %s\n", err)
		os.Exit(1)
	}
}
