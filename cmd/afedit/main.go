package main

import (
	"fmt"
	"os"
)

var (
	version = "0.0.1-dev"
)

func main() {
	root := newRootCommand()

	root.AddCommand(newEditCommand())
	root.AddCommand(newMoveCommand())
	root.AddCommand(newEventsCommand())
	root.AddCommand(newPersonCommand())

	if err := root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
