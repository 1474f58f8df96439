package main

import (
	"os"

	"github.com/yaya9689/examtrainer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
