package main

import (
	"os"
)

func main() {
	if err := SetupCommands(&App{}).Execute(); err != nil {
		os.Exit(1)
	}
}
